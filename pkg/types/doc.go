// Package types defines the error surface shared by the value codec and the
// evaluators.
//
// Errors carry a stable XQuery error code so callers can branch on the rule
// that was violated rather than on message text:
//
//	if errors.Is(err, types.ErrWrongItemType) { ... }
//
// This package has no dependencies beyond the standard library.
package types
