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
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"
)

func TestGetCanonicalizesEqualKeys(t *testing.T) {
	w := NewWorld(IdentityRule)
	a := filledNode(w, 7, 2)
	b := filledNode(w, 7, 2)
	if a != b {
		t.Fatalf("filledNode(7, 2) returned distinct nodes for equal keys")
	}

	var key NodeKey
	key.Level = 2
	for i := range key.Children {
		key.Children[i] = a.Key.Children[i]
	}
	c := w.get(key)
	if c != a {
		t.Fatalf("World.get did not canonicalize a structurally equal key")
	}
}

// quickLeafCells generates a random set of leaf cell values, for use as
// a testing/quick.Generator — grounded, like step_test.go's
// quickLevel1Cells, on the teacher's custom quick.Generator types in
// tree_test.go.
type quickLeafCells [8]Block

func (quickLeafCells) Generate(rng *rand.Rand, size int) reflect.Value {
	var c quickLeafCells
	for i := range c {
		c[i] = Block(rng.Intn(8))
	}
	return reflect.ValueOf(c)
}

// TestGetCanonicalizesEqualKeysQuick is the quick.Check-driven
// counterpart to TestGetCanonicalizesEqualKeys: the equal-keys half of
// invariant 1 from spec.md §8 (two gets of one key return the same
// reference) checked over randomly generated leaf keys instead of one
// fixed example.
func TestGetCanonicalizesEqualKeysQuick(t *testing.T) {
	w := NewWorld(IdentityRule)
	f := func(cells quickLeafCells) bool {
		key := NodeKey{Cells: cells}
		a := w.get(key)
		b := w.get(key)
		return a == b
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestGetPanicsOnInconsistentChildLevels(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on an invalid NodeKey")
		}
	}()
	w := NewWorld(IdentityRule)
	bad := NodeKey{Level: 2}
	bad.Children[0] = emptyNode(w, 0) // wrong level: should be 1
	for i := 1; i < 8; i++ {
		bad.Children[i] = emptyNode(w, 1)
	}
	w.get(bad)
}

func TestEmptyAndFilledNodesAreCached(t *testing.T) {
	w := NewWorld(IdentityRule)
	e1 := emptyNode(w, 3)
	e2 := emptyNode(w, 3)
	if e1 != e2 {
		t.Fatalf("emptyNode(3) is not cached")
	}
	f1 := filledNode(w, 9, 3)
	f2 := filledNode(w, 9, 3)
	if f1 != f2 {
		t.Fatalf("filledNode(9, 3) is not cached")
	}
	if e1 == f1 {
		t.Fatalf("distinct empty and filled nodes compared equal")
	}
}

func TestGCKeepsReachableDropsUnreachable(t *testing.T) {
	w := NewWorld(IdentityRule)
	snap := w.CreateEmpty()
	defer snap.Release()

	// Build a node reachable only through a transient key, never attached
	// to any snapshot root.
	orphan := filledNode(w, 123, 1)
	orphanKey := orphan.Key

	before := w.nodes.Len()
	w.GC()
	after := w.nodes.Len()
	if after >= before {
		t.Fatalf("GC did not shrink the table: before=%d after=%d", before, after)
	}

	if _, ok := w.nodes.Get(Node{Key: orphanKey}); ok {
		t.Fatalf("GC kept an orphaned node alive")
	}
	if ref, ok := w.nodes.Get(Node{Key: snap.root.Key}); !ok || ref != snap.root {
		t.Fatalf("GC destroyed the live snapshot root")
	}
}

// TestReleaseAllSnapshotsThenGCEmptiesStore is spec.md §8 invariant 9
// ("dropping all snapshots, then GC, reduces store size to zero") and
// scenario F's closing assertion: once every outstanding Snapshot is
// released, nothing is reachable from the snapshot-refcount map, so a
// subsequent GC must reclaim the entire table.
func TestReleaseAllSnapshotsThenGCEmptiesStore(t *testing.T) {
	w := NewWorld(IdentityRule)
	snap := w.CreateEmpty()
	snaps := []*Snapshot{snap}
	for i := 0; i < 64; i++ {
		snap = snap.Set(int32(i)-32, int32(i)-32, int32(i)-32, Block(i+1))
		snaps = append(snaps, snap)
	}

	if before := w.nodes.Len(); before == 0 {
		t.Fatalf("setup: table is empty before any Release")
	}

	for _, s := range snaps {
		s.Release()
	}
	w.GC()

	if got := w.nodes.Len(); got != 0 {
		t.Fatalf("w.nodes.Len() = %d after releasing every snapshot and GC, want 0", got)
	}
}
