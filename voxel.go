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

// getBlock reads the cell at local coordinate (x, y, z), each in
// [0, root's side length). It panics if any coordinate is out of range.
func getBlock(root *Node, x, y, z uint32) Block {
	for {
		size := root.Key.sideLength()
		if x >= size || y >= size || z >= size {
			panic("hashlife3d: getBlock coordinate out of range")
		}
		if root.Key.Level == 0 {
			return root.Key.Cells[childIndex(int(x), int(y), int(z))]
		}
		half := size / 2
		xi, yi, zi := int(x/half), int(y/half), int(z/half)
		x, y, z = x%half, y%half, z%half
		root = root.Key.Children[childIndex(xi, yi, zi)]
	}
}

// setBlockWithoutExpanding returns a new root with the cell at local
// coordinate (x, y, z) set to block, without changing the root's level.
// It panics if the coordinate falls outside the root's current cube;
// callers must expandRoot first when that might be the case.
func setBlockWithoutExpanding(w *World, root *Node, x, y, z uint32, block Block) *Node {
	size := root.Key.sideLength()
	if x >= size || y >= size || z >= size {
		panic("hashlife3d: setBlockWithoutExpanding coordinate out of range")
	}
	if root.Key.Level == 0 {
		newKey := root.Key
		newKey.Cells[childIndex(int(x), int(y), int(z))] = block
		return w.get(newKey)
	}
	half := size / 2
	xi, yi, zi := int(x/half), int(y/half), int(z/half)
	childX, childY, childZ := x%half, y%half, z%half
	newKey := root.Key
	idx := childIndex(xi, yi, zi)
	newKey.Children[idx] = setBlockWithoutExpanding(w, root.Key.Children[idx], childX, childY, childZ, block)
	return w.get(newKey)
}
