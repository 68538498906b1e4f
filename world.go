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

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/programmerjake/hashlife3d-go/hashtable"
)

// World owns every Node reachable from any live Snapshot. It is the sole
// authority for canonicalization (two structurally equal NodeKeys always
// resolve to the same *Node) and for destruction (a Node is freed only
// by GC, and only when unreachable from a snapshot root).
//
// A World is not safe for concurrent use; callers share one World across
// goroutines only under their own external synchronization, per §5.
type World struct {
	nodes        *hashtable.Table[Node, nodeHasher]
	snapshotRefs map[*Node]int
	nextID       uint64
	rule         RuleFunc

	emptyCache  map[uint8]*Node
	filledCache map[filledKey]*Node
}

type filledKey struct {
	block Block
	level uint8
}

// NewWorld returns a World with no live snapshots, stepped by rule
// whenever a Snapshot rooted in it calls Step.
func NewWorld(rule RuleFunc) *World {
	return &World{
		nodes:        hashtable.New[Node, nodeHasher](nodeHasher{}),
		snapshotRefs: make(map[*Node]int),
		rule:         rule,
		emptyCache:   make(map[uint8]*Node),
		filledCache:  make(map[filledKey]*Node),
	}
}

// get returns the canonical Node for key, creating it if it does not
// already exist. It panics if key violates the child-level invariant,
// mirroring the teacher's practice of panicking on precondition
// violations rather than threading an error return through a pure
// function that should never fail given correct callers.
func (w *World) get(key NodeKey) *Node {
	if !key.isValid() {
		panic(fmt.Sprintf("hashlife3d: invalid NodeKey at level %d", key.Level))
	}
	isNew, ref := w.nodes.Insert(Node{Key: key})
	if isNew {
		ref.id = w.nextID
		w.nextID++
	}
	return ref
}

// retainRoot increments root's snapshot refcount, keeping it (and
// everything reachable from it) alive across the next GC.
func (w *World) retainRoot(root *Node) {
	w.snapshotRefs[root]++
}

// releaseRoot decrements root's snapshot refcount. Once it reaches zero
// the root is no longer itself a GC source, though it may still survive
// GC as a descendant of some other live root.
func (w *World) releaseRoot(root *Node) {
	n := w.snapshotRefs[root]
	if n <= 1 {
		delete(w.snapshotRefs, root)
		return
	}
	w.snapshotRefs[root] = n - 1
}

// GC reclaims every Node unreachable from a live snapshot root, via the
// next cache and, for Nonleaf nodes, Children. Grounded on World::gc in
// the original implementation: a single mark pass over the id space
// followed by Table.Retain sweeping out everything unmarked.
func (w *World) GC() {
	marks := bitset.New(uint(w.nextID))
	var mark func(n *Node)
	mark = func(n *Node) {
		if n == nil || marks.Test(uint(n.id)) {
			return
		}
		marks.Set(uint(n.id))
		for _, next := range n.next {
			mark(next)
		}
		if n.Key.Level > 0 {
			for _, c := range n.Key.Children {
				mark(c)
			}
		}
	}
	for root := range w.snapshotRefs {
		mark(root)
	}
	w.nodes.Retain(func(n Node) bool {
		return marks.Test(uint(n.id))
	})
	for level, n := range w.emptyCache {
		if !marks.Test(uint(n.id)) {
			delete(w.emptyCache, level)
		}
	}
	for k, n := range w.filledCache {
		if !marks.Test(uint(n.id)) {
			delete(w.filledCache, k)
		}
	}
}
