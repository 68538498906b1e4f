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

// isDoubleStep reports whether advancing a node at level by
// log2GenerationCount generations can be satisfied by its double-step
// cache slot: a node at level can advance by up to 2^(level-1)
// generations (log2OfMaxGenerationStep), and whenever the requested
// count meets or exceeds that maximum the node is advanced by exactly
// the maximum, as two rounds of child recursion instead of one — the
// core Hashlife speedup.
func isDoubleStep(level uint8, log2GenerationCount uint32) bool {
	return log2OfMaxGenerationStep(level) <= log2GenerationCount
}

// synthesizeSub returns the level-(node's child level) node occupying
// position (x, y, z) of the 3x3x3 grid of overlapping child-sized
// regions centered on node, each coordinate in [0, 2]. The eight corners
// (every coordinate 0 or 2) are node's own children; every other
// position is assembled from the adjacent grandchildren of two or more
// children, since no single existing node covers it.
func synthesizeSub(w *World, node *Node, x, y, z int) *Node {
	isCorner := (x == 0 || x == 2) && (y == 0 || y == 2) && (z == 0 || z == 2)
	if isCorner {
		return node.Key.Children[childIndex(x/2, y/2, z/2)]
	}
	newKey := NodeKey{Level: node.Key.ChildLevel()}
	for kx := 0; kx < 2; kx++ {
		for ky := 0; ky < 2; ky++ {
			for kz := 0; kz < 2; kz++ {
				gx, gy, gz := x+kx, y+ky, z+kz
				parent := node.Key.Children[childIndex(gx/2, gy/2, gz/2)]
				newKey.Children[childIndex(kx, ky, kz)] = parent.Key.Children[childIndex(gx%2, gy%2, gz%2)]
			}
		}
	}
	return w.get(newKey)
}

func buildInitialGrid(w *World, node *Node) (grid [3][3][3]*Node) {
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				grid[x][y][z] = synthesizeSub(w, node, x, y, z)
			}
		}
	}
	return grid
}

// computeNextBase handles a node whose children are Leaves: it
// assembles the 4x4x4 buffer of cells covered by node, then applies the
// world's rule to each of the eight overlapping 3x3x3 windows to produce
// the 2x2x2 result.
func computeNextBase(w *World, node *Node) *Node {
	var input [4][4][4]Block
	for ox := 0; ox < 2; ox++ {
		for oy := 0; oy < 2; oy++ {
			for oz := 0; oz < 2; oz++ {
				leaf := node.Key.Children[childIndex(ox, oy, oz)]
				for ix := 0; ix < 2; ix++ {
					for iy := 0; iy < 2; iy++ {
						for iz := 0; iz < 2; iz++ {
							input[ox*2+ix][oy*2+iy][oz*2+iz] = leaf.Key.Cells[childIndex(ix, iy, iz)]
						}
					}
				}
			}
		}
	}
	var nextKey NodeKey
	for dx := 0; dx < 2; dx++ {
		for dy := 0; dy < 2; dy++ {
			for dz := 0; dz < 2; dz++ {
				var window [27]Block
				for x := 0; x < 3; x++ {
					for y := 0; y < 3; y++ {
						for z := 0; z < 3; z++ {
							window[neighborhoodIndex(x, y, z)] = input[x+dx][y+dy][z+dz]
						}
					}
				}
				nextKey.Cells[childIndex(dx, dy, dz)] = w.rule(window)
			}
		}
	}
	return w.get(nextKey)
}

// computeNextDoubleStep advances node by applying compute_next to its
// 27-node initial grid, regrouping the 27 grandchild-level intermediate
// results into 8 overlapping child-level nodes, and applying
// compute_next to those a second time — two rounds of 2^(level-2)
// generations, the maximum a node at this level can report as a single
// logical step.
func computeNextDoubleStep(w *World, node *Node, log2GenerationCount uint32) *Node {
	grid := buildInitialGrid(w, node)
	var intermediate [3][3][3]*Node
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				intermediate[x][y][z] = computeNext(w, grid[x][y][z], log2GenerationCount)
			}
		}
	}
	childLevel := node.Key.ChildLevel()
	result := NodeKey{Level: childLevel}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				midKey := NodeKey{Level: childLevel}
				for kx := 0; kx < 2; kx++ {
					for ky := 0; ky < 2; ky++ {
						for kz := 0; kz < 2; kz++ {
							midKey.Children[childIndex(kx, ky, kz)] = intermediate[x+kx][y+ky][z+kz]
						}
					}
				}
				mid := w.get(midKey)
				result.Children[childIndex(x, y, z)] = computeNext(w, mid, log2GenerationCount)
			}
		}
	}
	return w.get(result)
}

// computeNextSingleStep advances node by applying compute_next to its
// 27-node initial grid only once, then re-extracting the centered
// 2x2x2 result from the resulting 3x3x3 grid of grandchild-level nodes —
// used whenever the caller asked for fewer generations than a full
// double step would produce.
func computeNextSingleStep(w *World, node *Node, log2GenerationCount uint32) *Node {
	grid := buildInitialGrid(w, node)
	var finalState [3][3][3]*Node
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				finalState[x][y][z] = computeNext(w, grid[x][y][z], log2GenerationCount)
			}
		}
	}
	childLevel := node.Key.ChildLevel()
	result := NodeKey{Level: childLevel}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				if childLevel == 1 {
					var leafKey NodeKey
					for kx := 0; kx < 2; kx++ {
						for ky := 0; ky < 2; ky++ {
							for kz := 0; kz < 2; kz++ {
								gx, gy, gz := 1+x*2+kx, 1+y*2+ky, 1+z*2+kz
								fn := finalState[gx/2][gy/2][gz/2]
								leafKey.Cells[childIndex(kx, ky, kz)] = fn.Key.Cells[childIndex(gx%2, gy%2, gz%2)]
							}
						}
					}
					result.Children[childIndex(x, y, z)] = w.get(leafKey)
				} else {
					subKey := NodeKey{Level: childLevel - 1}
					for kx := 0; kx < 2; kx++ {
						for ky := 0; ky < 2; ky++ {
							for kz := 0; kz < 2; kz++ {
								gx, gy, gz := 1+x*2+kx, 1+y*2+ky, 1+z*2+kz
								fn := finalState[gx/2][gy/2][gz/2]
								subKey.Children[childIndex(kx, ky, kz)] = fn.Key.Children[childIndex(gx%2, gy%2, gz%2)]
							}
						}
					}
					result.Children[childIndex(x, y, z)] = w.get(subKey)
				}
			}
		}
	}
	return w.get(result)
}

// computeNext returns the node resulting from advancing node — which
// must be a Nonleaf — by either 2^log2GenerationCount generations
// (single-step regime) or 2^(node.Key.Level-1) generations (double-step
// regime, whichever is smaller), memoized on node.next so repeated
// requests against the same node and regime cost O(1) after the first.
func computeNext(w *World, node *Node, log2GenerationCount uint32) *Node {
	if node.Key.Level == 0 {
		panic("hashlife3d: computeNext requires a nonleaf node")
	}
	double := isDoubleStep(node.Key.Level, log2GenerationCount)
	slot := 0
	if double {
		slot = 1
	}
	if cached := node.next[slot]; cached != nil {
		return cached
	}
	var result *Node
	switch {
	case node.Key.ChildLevel() == 0:
		result = computeNextBase(w, node)
	case double:
		result = computeNextDoubleStep(w, node, log2GenerationCount)
	default:
		result = computeNextSingleStep(w, node, log2GenerationCount)
	}
	node.next[slot] = result
	return result
}

// Step advances root by 2^log2GenerationCount generations under w's
// rule, growing the root (via expandRoot) until it is large enough to
// absorb the boundary effects of the step, computing the result, and
// then truncating back down to MaxLevel if growth pushed it past the
// bound.
func Step(w *World, root *Node, log2GenerationCount uint32) *Node {
	for {
		maxStep, ok := tryLog2OfMaxGenerationStep(root.Key.Level)
		if ok && maxStep > log2GenerationCount {
			break
		}
		root = expandRoot(w, root)
	}
	root = expandRoot(w, root)
	root = computeNext(w, root, log2GenerationCount)
	if root.Key.Level > MaxLevel {
		root = truncateRootTo(w, MaxLevel, root)
	}
	return root
}
