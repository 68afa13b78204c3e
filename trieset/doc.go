// Package trieset defines a concurrent set backed by a hash-indexed trie.
//
// The trie consists of interior nodes and leaves. Interior nodes fan out
// 16 ways on 4-bit slices of an item's 32-bit hash, taken from the least
// significant bits first. Leaves hold up to 32 items inline plus an
// unbounded overflow list.
//
// Interior nodes:
// --------------
//
//   - never locked;
//   - a child slot goes from empty to a leaf exactly once (compare-and-swap);
//   - a leaf slot is overwritten once more when the leaf is promoted.
//
// Leaves:
// ------
//
//   - one mutex each, held for every read or write of the leaf;
//   - a 32-bit presence bitmap tells which inline slots are live;
//   - the overflow list is used only by leaves that cannot be promoted
//     (all 32 hash bits consumed).
//
// Promotion:
// ---------
//
// Inserting into a full leaf (32 inline items) builds a new interior node
// one level deeper, replays the leaf's items into it, publishes it in place
// of the leaf and restarts the operation from the root:
//
//	[root d:0] --3--> [leaf: 32 items]
//
//	[root d:0] --3--> [interior d:1] --0--> [leaf]
//	                                 --7--> [leaf]
//	                                 --f--> [leaf]
//
// Enumeration walks the trie depth first with an explicit stack. Each leaf
// is copied into a scratch buffer under its lock and the copy is yielded
// after the lock is released, so every leaf is seen at a single instant
// but different leaves are seen at different instants.
//
// Sizing is tracked by a striped counter updated with the item's hash, so
// counter cells line up with the trie's own hot spots.
package trieset
