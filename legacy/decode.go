package legacy

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/language/dene/alphabet"
)

// Codepage identifies a supported legacy single-byte codepage.
type Codepage int

const (
	// Windows1252 selects the Windows-1252 codepage, the usual carrier
	// of PC-era legacy fonts.
	Windows1252 Codepage = iota

	// MacRoman selects the Mac OS Roman codepage.
	MacRoman
)

// String returns the name of the codepage.
func (cp Codepage) String() string {
	switch cp {
	case Windows1252:
		return "Windows-1252"
	case MacRoman:
		return "Mac Roman"
	default:
		return "Codepage(?)"
	}
}

// ErrUnknownCodepage indicates a Codepage value outside the supported
// set.
var ErrUnknownCodepage = errors.New("legacy: unknown codepage")

// Decode converts raw legacy bytes in the given codepage to UTF-8 and
// then applies the table's legacy-pattern normalization. This is the
// complete ingestion path for winmac-era documents: byte decoding
// recovers the codepoints the legacy font displayed, Normalize maps
// those onto canonical alphabet symbols.
func Decode(a *alphabet.Alphabet, cp Codepage, raw []byte) (string, error) {
	var cm *charmap.Charmap
	switch cp {
	case Windows1252:
		cm = charmap.Windows1252
	case MacRoman:
		cm = charmap.Macintosh
	default:
		return "", fmt.Errorf("legacy: codepage %d: %w", int(cp), ErrUnknownCodepage)
	}

	decoded, err := cm.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("legacy: decode %v bytes: %w", cp, err)
	}
	return Normalize(a, string(decoded)), nil
}
