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

import "testing"

func TestCreateEmptyAllZero(t *testing.T) {
	w := NewWorld(IdentityRule)
	snap := w.CreateEmpty()
	defer snap.Release()
	for _, c := range [][3]int32{{0, 0, 0}, {1, 1, 1}, {-1, -1, -1}, {100, -100, 0}} {
		if got := snap.Get(c[0], c[1], c[2]); got != 0 {
			t.Fatalf("Get(%v) = %d on a fresh empty snapshot, want 0", c, got)
		}
	}
}

func TestSetThenGetRoundTrip(t *testing.T) {
	w := NewWorld(IdentityRule)
	snap := w.CreateEmpty()
	defer snap.Release()

	cases := []struct {
		coord [3]int32
		block Block
	}{
		{[3]int32{0, 0, 0}, 1},
		{[3]int32{3, -2, 1}, 42},
		{[3]int32{-50, 50, -50}, 7},
		{[3]int32{1000, -1000, 1000}, 99},
	}
	for _, c := range cases {
		snap = snap.Set(c.coord[0], c.coord[1], c.coord[2], c.block)
	}
	for _, c := range cases {
		if got := snap.Get(c.coord[0], c.coord[1], c.coord[2]); got != c.block {
			t.Fatalf("Get(%v) = %d, want %d", c.coord, got, c.block)
		}
	}
	// unrelated coordinates remain untouched
	if got := snap.Get(5, 5, 5); got != 0 {
		t.Fatalf("Set perturbed an unrelated cell: Get(5,5,5) = %d", got)
	}
}

func TestSetReturnsIndependentSnapshot(t *testing.T) {
	w := NewWorld(IdentityRule)
	before := w.CreateEmpty()
	defer before.Release()
	after := before.Set(0, 0, 0, 5)
	defer after.Release()

	if got := before.Get(0, 0, 0); got != 0 {
		t.Fatalf("Set mutated the receiver snapshot in place: before.Get(0,0,0) = %d", got)
	}
	if got := after.Get(0, 0, 0); got != 5 {
		t.Fatalf("after.Get(0,0,0) = %d, want 5", got)
	}
}

func TestStepAdvancesWithoutError(t *testing.T) {
	w := NewWorld(ConwayLikeRule)
	snap := w.CreateEmpty()
	defer snap.Release()
	// a small live cluster near the origin
	for _, c := range [][3]int32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 0}} {
		snap = snap.Set(c[0], c[1], c[2], 1)
	}
	next := snap.Step(0)
	defer next.Release()
	if next.Level() < snap.Level() {
		t.Fatalf("Step should never shrink the addressable level below the pre-step root")
	}
}

func TestCloneAndReleaseAreIndependent(t *testing.T) {
	w := NewWorld(IdentityRule)
	snap := w.CreateEmpty().Set(0, 0, 0, 3)
	clone := snap.Clone()
	snap.Release()
	if got := clone.Get(0, 0, 0); got != 3 {
		t.Fatalf("releasing one snapshot invalidated its independent clone: Get = %d, want 3", got)
	}
	clone.Release()
}
