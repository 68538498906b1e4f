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

// neighborhoodIndex flattens a 3x3x3 neighborhood coordinate, each axis
// in [0, 2], into an index of a [27]Block array: index = x*9 + y*3 + z,
// with the cell itself at (1, 1, 1).
func neighborhoodIndex(x, y, z int) int {
	return x*9 + y*3 + z
}

// RuleFunc computes the next state of the center cell of a 3x3x3
// neighborhood, indexed by neighborhoodIndex. A World is given its rule
// once, by NewWorld, and applies it on every Step/Snapshot.Step call;
// the rule cannot be changed afterwards, since cached step results are
// keyed by NodeKey alone and would not distinguish one rule from another.
type RuleFunc func(neighborhood [27]Block) Block

// IdentityRule leaves every cell unchanged; useful as a no-op fixture in
// tests that only exercise the tree structure, not any particular
// automaton.
func IdentityRule(neighborhood [27]Block) Block {
	return neighborhood[neighborhoodIndex(1, 1, 1)]
}

// ConwayLikeRule is a reference three-dimensional analogue of Conway's
// Life, provided as a test fixture rather than an engine default: a live
// cell (nonzero Block) survives with 4 to 5 live neighbors among the 26
// surrounding cells, and a dead cell becomes live with exactly 5 live
// neighbors.
func ConwayLikeRule(neighborhood [27]Block) Block {
	center := neighborhood[neighborhoodIndex(1, 1, 1)]
	live := 0
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				if x == 1 && y == 1 && z == 1 {
					continue
				}
				if neighborhood[neighborhoodIndex(x, y, z)] != 0 {
					live++
				}
			}
		}
	}
	if center != 0 {
		if live == 4 || live == 5 {
			return center
		}
		return 0
	}
	if live == 5 {
		return 1
	}
	return 0
}
