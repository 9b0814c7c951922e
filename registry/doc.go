// Package registry deduplicates structures by their paired skeleton and
// counts how often each one was observed.
//
// What
//
//   - CanonicalKey: trim surrounding whitespace, validate, drop unpaired
//     positions. ".(()).\n" and "(())" share the key "(())".
//   - Registry.Add: atomic insert-or-increment. The tree of a new key is
//     built once; concurrent first inserts of the same key share that build.
//   - Get, Contains, Len, Total, Keys, Entries, Merge.
//
// Ordering
//
//	Keys and Entries are sorted by key length, then lexicographically.
//
// Concurrency
//
//	All methods are safe for concurrent use: reads take a shared lock,
//	counter updates an exclusive one. Trees returned by Get and Entries are
//	copies; editing them leaves the registry unchanged.
package registry
