// Package mapping provides Mapping, a bidirectional many-to-many relation
// between identifier strings, and the helpers built on it.
//
// A Mapping is used to translate between identifier systems, e.g. Ensembl
// protein ids to canonical protein names, and to chain such systems through
// a shared key space with Merge.
//
// Invariant: for every forward entry key -> value there is a backward entry
// value -> key, and vice versa. Every mutating method preserves it.
//
// Lookups return sorted copies; callers may modify them freely.
//
// Remapping a list of identifiers comes in three flavours, differing only
// in what happens to the input string itself:
//
//	RemapKeepOriginal     // hits plus the original, always
//	RemapDiscardOriginal  // hits only
//	RemapCheckOriginal    // hits, or the original when there is no hit
//
// Identity is the trivial name index (every string maps to itself) and
// Registry is a per-species cache of loaded mappings.
package mapping
