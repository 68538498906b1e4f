// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package hashlife3d

import "hash/maphash"

// Node is the unit of the hash-consed tree, owned and canonicalized by a
// World. Its Key is immutable after insertion; next and the GC mark bit
// (tracked by World, not here — see World.GC) are the only
// interior-mutable state.
//
// A *Node is itself the stable identity spec.md calls a "node reference":
// two references are the same node iff they are the same pointer, which
// World.get guarantees for any two equal keys.
type Node struct {
	Key NodeKey

	// next[0] caches compute_next at the single-step regime, next[1] at
	// the double-step (maximum generation) regime. nil means unset.
	next [2]*Node

	// id is assigned once by the owning World and used only to index
	// the GC mark bitset; it carries no identity meaning of its own.
	id uint64
}

// nodeHasher canonicalizes Nodes by Key alone — next and id are caches,
// not part of a Node's structural identity. Nodes are stored by value
// inside the hash table's own chain entries (see hashtable.Table); the
// stable *Node identity used throughout this package is the address of
// that stored value, handed out by Table.Insert.
type nodeHasher struct{}

func (nodeHasher) Hash(h *maphash.Hash, n Node) {
	nodeKeyHasher{}.Hash(h, n.Key)
}

func (nodeHasher) Equal(a, b Node) bool {
	return a.Key == b.Key
}
