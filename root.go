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

// expandRoot returns a new root one level higher than root, with root's
// content shifted to the center of the larger cube and empty space
// filling the rest. Growing the root this way, rather than shifting
// coordinates, is what lets a snapshot's addressable region grow
// without bound while every existing Node stays canonical.
func expandRoot(w *World, root *Node) *Node {
	level := root.Key.Level
	var children [8]*Node
	if level == 0 {
		for x := 0; x < 2; x++ {
			for y := 0; y < 2; y++ {
				for z := 0; z < 2; z++ {
					var newKey NodeKey
					newKey.Cells[childIndex(1-x, 1-y, 1-z)] = root.Key.Cells[childIndex(x, y, z)]
					children[childIndex(x, y, z)] = w.get(newKey)
				}
			}
		}
	} else {
		empty := emptyNode(w, level-1)
		for x := 0; x < 2; x++ {
			for y := 0; y < 2; y++ {
				for z := 0; z < 2; z++ {
					newKey := NodeKey{Level: level}
					for i := range newKey.Children {
						newKey.Children[i] = empty
					}
					newKey.Children[childIndex(1-x, 1-y, 1-z)] = root.Key.Children[childIndex(x, y, z)]
					children[childIndex(x, y, z)] = w.get(newKey)
				}
			}
		}
	}
	return w.get(NodeKey{Level: level + 1, Children: children})
}

// truncateRoot returns a new root one level lower than root, keeping
// only the centered content — the inverse of expandRoot, and the way
// Step brings a result whose level exceeds MaxLevel back down to it.
// It panics if root is a Leaf.
func truncateRoot(w *World, root *Node) *Node {
	if root.Key.Level == 0 {
		panic("hashlife3d: can't truncate a leaf node")
	}
	if root.Key.ChildLevel() == 0 {
		var newKey NodeKey
		for x := 0; x < 2; x++ {
			for y := 0; y < 2; y++ {
				for z := 0; z < 2; z++ {
					child := root.Key.Children[childIndex(x, y, z)]
					newKey.Cells[childIndex(x, y, z)] = child.Key.Cells[childIndex(1-x, 1-y, 1-z)]
				}
			}
		}
		return w.get(newKey)
	}
	newKey := NodeKey{Level: root.Key.ChildLevel()}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for z := 0; z < 2; z++ {
				child := root.Key.Children[childIndex(x, y, z)]
				newKey.Children[childIndex(x, y, z)] = child.Key.Children[childIndex(1-x, 1-y, 1-z)]
			}
		}
	}
	return w.get(newKey)
}

// truncateRootTo repeatedly truncates root until it reaches level,
// which must not exceed root's current level.
func truncateRootTo(w *World, level uint8, root *Node) *Node {
	if level > root.Key.Level {
		panic("hashlife3d: truncateRootTo level exceeds root level")
	}
	for root.Key.Level > level {
		root = truncateRoot(w, root)
	}
	return root
}

// log2OfMaxGenerationStep reports the largest log2(generation count) a
// node at level can advance by in a single compute_next call: 2^(L-1)
// generations for a node built from children at level L-1. It panics
// for level 0, which is never stepped directly.
func log2OfMaxGenerationStep(level uint8) uint32 {
	if level == 0 {
		panic("hashlife3d: log2OfMaxGenerationStep undefined for level 0")
	}
	return uint32(level) - 1
}

// tryLog2OfMaxGenerationStep is the non-panicking form used by Step's
// root-growing loop, which must also handle a level-0 (Leaf) root.
func tryLog2OfMaxGenerationStep(level uint8) (step uint32, ok bool) {
	if level == 0 {
		return 0, false
	}
	return uint32(level) - 1, true
}
