// Package alphabet: YAML table reading.
//
// A table file is a YAML sequence of definitions. Two author styles are
// accepted and may be mixed:
//
//	# mapping form
//	- symbol: "ch"
//	  sort_base: 6
//	  accent_rank: 0
//	  case: 0
//
//	# compact form, the historical five-tuple
//	# [symbol, legacy_pattern|null, sort_base, accent_rank, case]
//	- ["ch", null, 6, 0, 0]
//
// Reading a table is the full extent of lifecycle handling here: no
// caching, no persistence, no mutation after New.

package alphabet

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML alphabet table from r and validates it via New.
func Load(r io.Reader) (*Alphabet, error) {
	var defs []SymbolDefinition
	if err := yaml.NewDecoder(r).Decode(&defs); err != nil {
		return nil, fmt.Errorf("alphabet: decode table: %w", err)
	}
	return New(defs)
}

// LoadFile reads a YAML alphabet table from path.
func LoadFile(path string) (*Alphabet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("alphabet: open table: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// UnmarshalYAML decodes a definition from either the mapping form or
// the compact five-element sequence form.
func (d *SymbolDefinition) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		// Alias type drops this method, so Decode uses the field tags.
		type plain SymbolDefinition
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*d = SymbolDefinition(p)
		return nil

	case yaml.SequenceNode:
		if len(node.Content) != 5 {
			return fmt.Errorf("line %d: compact definition needs 5 elements, got %d", node.Line, len(node.Content))
		}
		if err := node.Content[0].Decode(&d.Symbol); err != nil {
			return err
		}
		// Element 1 is null when the symbol has no legacy spelling.
		if node.Content[1].Tag != "!!null" {
			if err := node.Content[1].Decode(&d.LegacyPattern); err != nil {
				return err
			}
		}
		if err := node.Content[2].Decode(&d.SortBase); err != nil {
			return err
		}
		if err := node.Content[3].Decode(&d.AccentRank); err != nil {
			return err
		}
		return node.Content[4].Decode(&d.Case)

	default:
		return fmt.Errorf("line %d: definition must be a mapping or a 5-element sequence", node.Line)
	}
}
