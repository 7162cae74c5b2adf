// Package legacy normalizes text from the winmac era — documents typed
// with single-byte "Dene fonts" that repurposed Windows-1252 or Mac
// Roman codepoints for special letters — into canonical alphabet
// symbols.
//
// Normalize applies the table's legacy-pattern rules to an already
// decoded string: every occurrence of each entry's pattern is rewritten
// to that entry's canonical symbol, strictly in table order. Order is
// part of the table's contract — legacy patterns may overlap, and later
// entries see the output of earlier ones.
//
// Decode is the full ingestion path for raw legacy bytes: it first
// decodes the Windows-1252 or Mac Roman byte stream to UTF-8 and then
// runs Normalize on the result.
package legacy
