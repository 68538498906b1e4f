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
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// bruteforceState is a literal, non-memoized cellular automaton buffer
// used only to cross-check computeNext's memoized recursion. It mirrors
// the reference simulator in the original implementation: apply rule to
// every 3x3x3 window once, shrinking the addressable cube by 2 on every
// axis, with no caching or tree structure at all.
type bruteforceState struct {
	size  uint32
	cells []Block
}

func newBruteforceState(size uint32) *bruteforceState {
	return &bruteforceState{size: size, cells: make([]Block, int(size)*int(size)*int(size))}
}

func (b *bruteforceState) index(x, y, z uint32) int {
	return int(x) + int(b.size)*(int(y)+int(b.size)*int(z))
}

func (b *bruteforceState) get(x, y, z uint32) Block {
	return b.cells[b.index(x, y, z)]
}

func (b *bruteforceState) set(x, y, z uint32, block Block) {
	b.cells[b.index(x, y, z)] = block
}

func (b *bruteforceState) step(rule RuleFunc) *bruteforceState {
	if b.size < 2 {
		panic("hashlife3d: bruteforceState.step requires size >= 2")
	}
	next := newBruteforceState(b.size - 2)
	for z := uint32(0); z < next.size; z++ {
		for y := uint32(0); y < next.size; y++ {
			for x := uint32(0); x < next.size; x++ {
				var window [27]Block
				for iz := uint32(0); iz < 3; iz++ {
					for iy := uint32(0); iy < 3; iy++ {
						for ix := uint32(0); ix < 3; ix++ {
							window[neighborhoodIndex(int(ix), int(iy), int(iz))] = b.get(x+ix, y+iy, z+iz)
						}
					}
				}
				next.set(x, y, z, rule(window))
			}
		}
	}
	return next
}

// bruteforceFromNode reads every cell of node's own cube into a
// bruteforceState of matching size.
func bruteforceFromNode(node *Node) *bruteforceState {
	size := node.Key.sideLength()
	state := newBruteforceState(size)
	for x := uint32(0); x < size; x++ {
		for y := uint32(0); y < size; y++ {
			for z := uint32(0); z < size; z++ {
				state.set(x, y, z, getBlock(node, x, y, z))
			}
		}
	}
	return state
}

// computeNextExpected runs computeNext(node, log2GenerationCount) and
// separately computes the bruteforceState it ought to match, factored
// out of verifyComputeNext so that both the detailed t.Fatalf-based
// check and the quick.Check-driven property test in step_test.go share
// one reference computation instead of two copies that could drift
// apart. step_count = 2^children_level generations for a double step,
// or 2^log2GenerationCount generations otherwise, per
// Node::compute_next's own reference check in the original
// implementation.
func computeNextExpected(w *World, node *Node, log2GenerationCount uint32) (result *Node, want *bruteforceState) {
	result = computeNext(w, node, log2GenerationCount)
	double := isDoubleStep(node.Key.Level, log2GenerationCount)
	var stepCount uint32
	if double {
		stepCount = uint32(1) << node.Key.ChildLevel()
	} else {
		stepCount = uint32(1) << log2GenerationCount
	}
	state := bruteforceFromNode(node)
	for i := uint32(0); i < stepCount; i++ {
		state = state.step(w.rule)
	}
	rootSize := node.Key.sideLength()
	if !double {
		old := state
		state = newBruteforceState(rootSize / 2)
		offset := rootSize/4 - stepCount
		for x := uint32(0); x < state.size; x++ {
			for y := uint32(0); y < state.size; y++ {
				for z := uint32(0); z < state.size; z++ {
					state.set(x, y, z, old.get(x+offset, y+offset, z+offset))
				}
			}
		}
	}
	return result, state
}

// computeNextMatches reports whether every cell of want matches the
// corresponding cell of result.
func computeNextMatches(result *Node, want *bruteforceState) bool {
	for x := uint32(0); x < want.size; x++ {
		for y := uint32(0); y < want.size; y++ {
			for z := uint32(0); z < want.size; z++ {
				if getBlock(result, x, y, z) != want.get(x, y, z) {
					return false
				}
			}
		}
	}
	return true
}

// verifyComputeNext asserts that computeNext(node, log2GenerationCount)
// agrees, cell for cell, with repeated literal application of rule.
func verifyComputeNext(t *testing.T, w *World, node *Node, log2GenerationCount uint32) {
	t.Helper()
	result, state := computeNextExpected(w, node, log2GenerationCount)
	for x := uint32(0); x < state.size; x++ {
		for y := uint32(0); y < state.size; y++ {
			for z := uint32(0); z < state.size; z++ {
				got := getBlock(result, x, y, z)
				want := state.get(x, y, z)
				if got != want {
					t.Fatalf("computeNext mismatch at (%d,%d,%d): got %d want %d\nnode: %s",
						x, y, z, got, want, spew.Sdump(node.Key))
				}
			}
		}
	}
}
