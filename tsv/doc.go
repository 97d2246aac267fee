// Package tsv reads the tab-separated text forms of networks, identifier
// mappings and ortholog tables, and provides file-backed orthology loaders.
//
// Common conventions:
//   - A line starting with '!' is a comment.
//   - Blank lines are ignored.
//   - Fields are separated by a single tab (mappings accept any separator).
//   - A trailing '\r' is stripped so files written on Windows read the same.
package tsv
