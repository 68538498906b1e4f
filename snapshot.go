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

// Snapshot is an immutable view of a world at some point in its
// history, rooted at a single canonical Node. Every mutating method
// returns a new Snapshot rather than changing the receiver in place;
// the previous Snapshot, and everything reachable from it, stays valid
// until Release, even after Set or Step has moved on to a different
// root.
//
// Snapshot is not safe for concurrent use on the same underlying World,
// per §5; independent Worlds may be driven from separate goroutines.
type Snapshot struct {
	world *World
	root  *Node
}

// CreateEmpty returns a Snapshot of an entirely empty world, rooted at
// the smallest Nonleaf node (level 1).
func (w *World) CreateEmpty() *Snapshot {
	root := emptyNode(w, 1)
	w.retainRoot(root)
	return &Snapshot{world: w, root: root}
}

func newSnapshot(w *World, root *Node) *Snapshot {
	w.retainRoot(root)
	return &Snapshot{world: w, root: root}
}

// Get reads the cell at absolute coordinate (x, y, z), relative to the
// world's fixed origin. Coordinates outside the snapshot's current root
// cube read as the zero Block, since any such cell is, by construction,
// still empty.
func (s *Snapshot) Get(x, y, z int32) Block {
	size := s.root.Key.sideLength()
	ux := uint32(x) + size/2
	uy := uint32(y) + size/2
	uz := uint32(z) + size/2
	if ux >= size || uy >= size || uz >= size {
		return 0
	}
	return getBlock(s.root, ux, uy, uz)
}

// Set returns a new Snapshot with the cell at absolute coordinate
// (x, y, z) set to block, expanding the root as many times as needed to
// bring that coordinate in range.
func (s *Snapshot) Set(x, y, z int32, block Block) *Snapshot {
	root := s.root
	for {
		size := root.Key.sideLength()
		ux := uint32(x) + size/2
		uy := uint32(y) + size/2
		uz := uint32(z) + size/2
		if ux < size && uy < size && uz < size {
			root = setBlockWithoutExpanding(s.world, root, ux, uy, uz, block)
			break
		}
		root = expandRoot(s.world, root)
	}
	return newSnapshot(s.world, root)
}

// Step returns a new Snapshot advanced by 2^log2GenerationCount
// generations under the world's rule.
func (s *Snapshot) Step(log2GenerationCount uint32) *Snapshot {
	root := Step(s.world, s.root, log2GenerationCount)
	return newSnapshot(s.world, root)
}

// Clone returns a Snapshot sharing this one's root, incrementing its
// refcount so that either Snapshot can be independently released without
// invalidating the other.
func (s *Snapshot) Clone() *Snapshot {
	return newSnapshot(s.world, s.root)
}

// Release decrements this snapshot's root's refcount. The underlying
// nodes are not actually reclaimed until the next call to World.GC.
func (s *Snapshot) Release() {
	if s.root == nil {
		return
	}
	s.world.releaseRoot(s.root)
	s.root = nil
}

// Level reports the level of the snapshot's current root, primarily
// useful for sizing a Substate request (see GetSubstate).
func (s *Snapshot) Level() uint8 {
	return s.root.Key.Level
}
