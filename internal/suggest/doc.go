// Package suggest ranks known names against an unknown one so that
// configuration errors can say "did you mean ...".
//
// Names are normalized (CamelCase split, separators stripped, lower-cased)
// before a Levenshtein similarity is computed, so "Required", "required"
// and "is_required" are all close to each other.
package suggest
