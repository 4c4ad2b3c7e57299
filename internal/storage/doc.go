// Package storage provides the minidb record store.
//
// A RecordStore keeps every collection in memory and writes the whole
// state to a single snapshot file after each insert:
//
//   - Load: at Open, from the snapshot if present, else empty. An
//     unreadable snapshot is not fatal: the store starts empty in
//     recovery mode and the next commit overwrites the file.
//   - Insert: append to memory, then commit the full snapshot before
//     returning (write-through, no batching).
//   - SelectAll: memory only, no disk access.
//
// Every commit costs O(total data). This is a known ceiling of the
// full-snapshot design, not something the store tries to hide.
//
// A RecordStore is not safe for concurrent use, and the snapshot path must
// be owned by a single store instance.
package storage
