// Package snapshot serializes whole graphs to a stable JSON document and
// restores them losslessly.
//
// The document keys vertices by their stringified ID and stores edges in
// canonical (smaller ID first) sorted order, so exporting the same graph
// twice yields identical bytes and export, import, re-export round-trips
// exactly. The periphery order and the next-ID counter are restored
// verbatim rather than recomputed, which preserves layouts that a hull
// recompute would reorder.
//
// [Capture] and [Restore] convert between [planar.Graph] and [Document];
// [Marshal], [Write], [WriteFile], [Read], and [ReadFile] wrap them with
// JSON encoding and file handling. Restore validates structure and returns
// [ErrMalformedSnapshot] for documents missing required fields or naming
// vertices that do not exist; it never returns a partially built graph.
//
// The same Document type carries bson tags, so snapshot stores can persist
// it to MongoDB without a parallel schema.
package snapshot
