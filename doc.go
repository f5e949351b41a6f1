// Package strata is the public entry point for the Strata library.
//
// It re-exports the document model (pkg/model) so that common usage
// needs a single import, alongside the serialization (pkg/codec) and
// change-watching (pkg/watch) layers.
//
// Philosophy:
//
// Strata treats a structured document as a path-addressable value
// tree. Every field is reachable through a dotted FieldPath, sparse
// updates apply through FieldMasks, and the tree itself is a
// copy-on-write Value union that callers can share freely.
//
// Features:
//
//   - **Path-addressable model**: Get/Set/Delete at any depth through FieldPath.
//   - **Sparse patches**: SetAll applies a FieldMask-selected subset of another document.
//   - **Pending writes**: server-timestamp sentinels record the local write time until resolved.
//   - **Deterministic ordering**: cross-type Compare and canonical string forms for every Value.
//   - **Format adapters**: YAML and JSON codecs plus glob-based path selection (pkg/codec).
//   - **Field-level watching**: filesystem watcher that diffs documents into per-field events (pkg/watch).
//
// Usage:
//
//	doc := strata.NewObjectValue()
//	doc.Set(strata.Path("user", "name"), strata.String("ada"))
//
//	if v, ok := doc.Get(strata.Path("user", "name")); ok {
//		fmt.Println(v.Text())
//	}
package strata
