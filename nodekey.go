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

// NodeKey is the structural identity of a Node. A Level of 0 denotes a
// Leaf, holding a 2x2x2 array of Blocks directly (indexed via
// childIndex); a Level above 0 denotes a Nonleaf, holding a 2x2x2 array
// of child references whose own key level equals Level-1.
//
// NodeKey is comparable: two keys are equal iff they are structurally
// equal, with child equality taken as reference (pointer) equality, not
// deep equality. That is safe, and required for hashing without
// recursing into subtree content, because every Node reachable through
// a Children slot is itself canonicalized (see World.get).
type NodeKey struct {
	Level    uint8
	Cells    [8]Block // valid when Level == 0
	Children [8]*Node // valid when Level > 0, each at level Level-1
}

// ChildLevel is the level of this key's children; valid only when
// Level > 0.
func (k NodeKey) ChildLevel() uint8 {
	return k.Level - 1
}

// isValid checks the level-consistency invariant: every child of a
// Nonleaf key has key level equal to the parent's child level. Leaves
// are trivially valid.
func (k NodeKey) isValid() bool {
	if k.Level == 0 {
		return true
	}
	for _, c := range k.Children {
		if c.Key.Level != k.ChildLevel() {
			return false
		}
	}
	return true
}

// sideLength returns the cube edge length at this key's level: 2^(L+1).
func (k NodeKey) sideLength() uint32 {
	return sideLengthForLevel(k.Level)
}

func sideLengthForLevel(level uint8) uint32 {
	return uint32(2) << level
}

// nodeKeyHasher hashes a NodeKey by writing its discriminant and either
// its raw cells (Leaf) or the identity of its children (Nonleaf) —
// never the children's own content. Hashing child identity rather than
// recursively hashing subtree contents is what keeps canonicalization
// O(1) per insert instead of O(subtree size); see
// _examples/rogpeppe-generic/anyunique's Handle.WriteHash for the same
// technique applied to a single canonicalized value.
type nodeKeyHasher struct{}

func (nodeKeyHasher) Hash(h *maphash.Hash, k NodeKey) {
	maphash.WriteComparable(h, k.Level)
	if k.Level == 0 {
		maphash.WriteComparable(h, k.Cells)
		return
	}
	maphash.WriteComparable(h, k.Children)
}

func (nodeKeyHasher) Equal(a, b NodeKey) bool {
	return a == b
}
