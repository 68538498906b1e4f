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

// emptyNode returns the canonical all-zero Node at level, building it
// from emptyNode(level-1) and caching the result so that repeated empty
// regions — the overwhelming majority of any sparse world — cost O(1)
// after the first request.
func emptyNode(w *World, level uint8) *Node {
	if n, ok := w.emptyCache[level]; ok {
		return n
	}
	var key NodeKey
	key.Level = level
	if level > 0 {
		child := emptyNode(w, level-1)
		for i := range key.Children {
			key.Children[i] = child
		}
	}
	n := w.get(key)
	w.emptyCache[level] = n
	return n
}

// filledNode returns the canonical Node at level whose every cell is
// block, built and cached the same way as emptyNode.
func filledNode(w *World, block Block, level uint8) *Node {
	fk := filledKey{block: block, level: level}
	if n, ok := w.filledCache[fk]; ok {
		return n
	}
	var key NodeKey
	key.Level = level
	if level == 0 {
		for i := range key.Cells {
			key.Cells[i] = block
		}
	} else {
		child := filledNode(w, block, level-1)
		for i := range key.Children {
			key.Children[i] = child
		}
	}
	n := w.get(key)
	w.filledCache[fk] = n
	return n
}
