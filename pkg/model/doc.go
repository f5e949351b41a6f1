// Package model implements the in-memory document value model: a tagged
// union Value, field paths and field masks, and ObjectValue, the
// path-addressable document value tree that every higher-level write,
// merge and patch operation is built on.
//
// The model is purely in-process. Serialization of values lives in
// pkg/codec; this package only manipulates the tree.
//
// Error handling follows a strict two-tier scheme. Precondition
// violations (mutating through an empty path, building a tree from a
// non-map value, extracting a local write time from a non-sentinel)
// are caller bugs and panic. Lookup misses are ordinary absences and
// are reported through an ok bool, never an error.
//
// An ObjectValue is not safe for concurrent mutation. Reads (Get,
// FieldMask, Equal, String) may run concurrently with each other but
// never with a Set, Delete or SetAll on the same tree.
package model
