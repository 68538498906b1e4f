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

// Package hashlife3d implements a hash-consed, memoized 3D cellular
// automaton engine, generalizing Gosper's Hashlife from 2D to 3D. The
// world is a tree of cubic regions of power-of-two edge length;
// identical regions, however many times they recur across space or
// time, are computed once and reused.
package hashlife3d

// Block is the opaque per-voxel cell value. The engine never inspects
// its bits; it is compared only for equality against the zero value
// (empty) and passed through to the collaborator-supplied RuleFunc.
type Block = uint32

// MaxLevel bounds the level of any live snapshot's root, per §6.4. The
// corresponding maximum cube side length is 2^(MaxLevel+1).
const MaxLevel = 20

// childIndex flattens a {0,1}^3 cube coordinate into an index of an
// [8]T array, used uniformly for both leaf cells and nonleaf children.
func childIndex(x, y, z int) int {
	return x*4 + y*2 + z
}
