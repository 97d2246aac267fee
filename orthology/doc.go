// Package orthology holds cross-species ortholog tables and answers
// ortholog queries by protein id or by protein name.
//
// A Store owns one table per ordered species pair. Tables are built lazily:
// the first query touching (s1, s2) calls a Loader once for the unordered
// pair and fills both orientations, so that
//
//	(s1, id1) -> (s2, id2) with sources S   iff   (s2, id2) -> (s1, id1) with sources S
//
// holds for every relationship in the Store.
//
// Every relationship carries a provenance set (Source). Loaded data keeps
// the source its Loader reported; AddManualOrtholog records SourceManual,
// but only for relationships that have no provenance yet.
//
// Species whose name starts with the fixture prefix ("test" by default) are
// served by the fixture Loader and resolve names through mapping.Identity.
//
// Missing data is not an error: a protein without orthologs yields an empty
// result. Loader failures are wrapped and returned.
package orthology
