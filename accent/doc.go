// Package accent reduces accented symbols to their unaccented base
// forms, preserving case.
//
// A symbol with AccentRank 0 is already its own base form and passes
// through without a table scan. Any other symbol resolves to the
// definition sharing its SortBase with AccentRank 0 and the same
// Case — accent removal keeps uppercase uppercase, which is the dual
// of case conversion (there the accent is held fixed and the case
// varies). A table lacking the base form fails with
// ErrNoUnaccentedForm; one offering several fails with
// ErrAmbiguousForm.
//
// Strip applies the reduction text-wide; stripping is idempotent.
package accent
