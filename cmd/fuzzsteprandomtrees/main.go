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

// Command fuzzsteprandomtrees repeatedly builds a Snapshot from random
// cells placed near the origin, advances it with Step, and checks the
// result cell-for-cell against an independent, literal (non-memoized)
// simulation of the same rule applied one generation at a time. A
// mismatch means the Hashlife recursion and a plain simulation have
// disagreed, which should never happen.
package main

import (
	"fmt"
	"math/rand"

	"github.com/programmerjake/hashlife3d-go"
)

// clusterRadius bounds the region around the origin that receives random
// live cells on each attempt.
const clusterRadius = 4

// literalStep runs one generation of rule over get by hand, for every
// coordinate within radius of the origin, and returns a reader of the
// result. That reader returns the zero Block for every coordinate
// outside the radius, which mirrors Snapshot.Get's own "empty outside
// the root" semantics as long as
// radius is chosen wide enough that nothing alive ever reaches its
// border within the attempt's generation count.
func literalStep(get func(x, y, z int32) hashlife3d.Block, rule hashlife3d.RuleFunc, radius int32) func(x, y, z int32) hashlife3d.Block {
	type coord struct{ x, y, z int32 }
	next := make(map[coord]hashlife3d.Block)
	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			for z := -radius; z <= radius; z++ {
				var neighborhood [27]hashlife3d.Block
				for ix := -1; ix <= 1; ix++ {
					for iy := -1; iy <= 1; iy++ {
						for iz := -1; iz <= 1; iz++ {
							neighborhood[(ix+1)*9+(iy+1)*3+(iz+1)] = get(x+int32(ix), y+int32(iy), z+int32(iz))
						}
					}
				}
				if result := rule(neighborhood); result != 0 {
					next[coord{x, y, z}] = result
				}
			}
		}
	}
	return func(x, y, z int32) hashlife3d.Block {
		if v, ok := next[coord{x, y, z}]; ok {
			return v
		}
		return 0
	}
}

func main() {
	for attempt := 0; ; attempt++ {
		fmt.Println("attempt #", attempt)

		rng := rand.New(rand.NewSource(int64(attempt)))
		world := hashlife3d.NewWorld(hashlife3d.ConwayLikeRule)
		snap := world.CreateEmpty()

		liveCount := rng.Intn(20) + 1
		for i := 0; i < liveCount; i++ {
			x := int32(rng.Intn(2*clusterRadius+1) - clusterRadius)
			y := int32(rng.Intn(2*clusterRadius+1) - clusterRadius)
			z := int32(rng.Intn(2*clusterRadius+1) - clusterRadius)
			snap = snap.Set(x, y, z, hashlife3d.Block(rng.Intn(3)+1))
		}

		generations := rng.Intn(3) + 1
		reference := snap.Get
		for g := 0; g < generations; g++ {
			reference = literalStep(reference, hashlife3d.ConwayLikeRule, clusterRadius+int32(generations))
		}

		stepped := snap.Step(0)
		for g := 1; g < generations; g++ {
			stepped = stepped.Step(0)
		}

		for x := int32(-clusterRadius); x <= clusterRadius; x++ {
			for y := int32(-clusterRadius); y <= clusterRadius; y++ {
				for z := int32(-clusterRadius); z <= clusterRadius; z++ {
					got := stepped.Get(x, y, z)
					want := reference(x, y, z)
					if got != want {
						panic(fmt.Sprintf("attempt %d: Step disagreed with literal simulation at (%d,%d,%d): got %d want %d",
							attempt, x, y, z, got, want))
					}
				}
			}
		}

		stepped.Release()
		snap.Release()
		world.GC()
	}
}
