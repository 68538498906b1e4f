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

import "math/bits"

// Substate is a handle to a cube-aligned region of a Snapshot, sized to
// exactly one Node's cube (sidePow2, as passed to Snapshot.GetSubstate).
// Two Substates compare Equal precisely when they denote the same
// canonical Node — the intended use, per
// _examples/original_source/src/chunk_cache.rs, is a renderer's cache
// keyed on a chunk's 3x3x3 Substate neighborhood: unchanged neighboring
// regions resolve to the same canonical node across generations, so an
// Equal neighborhood means the cached chunk mesh is still valid and can
// be skipped, without ever comparing voxel contents directly.
type Substate struct {
	world *World
	node  *Node
}

// levelForSidePow2 returns the NodeKey.Level whose cube has edge length
// sidePow2, panicking if sidePow2 is not a power of two of at least 2
// (a single cell is not addressable as a Substate).
func levelForSidePow2(sidePow2 uint32) uint8 {
	if sidePow2 < 2 || sidePow2&(sidePow2-1) != 0 {
		panic("hashlife3d: sidePow2 must be a power of two no smaller than 2")
	}
	return uint8(bits.TrailingZeros32(sidePow2)) - 1
}

// GetSubstate returns a handle to the sidePow2-cube region of s with its
// low corner at the absolute coordinate origin. origin must be aligned
// to a sidePow2 boundary of s's own coordinate grid. A requested region
// entirely outside s's current root resolves to the canonical empty
// node at the matching level, so two out-of-bounds (or otherwise
// all-empty) requests always compare Equal.
func (s *Snapshot) GetSubstate(origin [3]int32, sidePow2 uint32) Substate {
	level := levelForSidePow2(sidePow2)
	size := s.root.Key.sideLength()
	ux := uint32(origin[0]) + size/2
	uy := uint32(origin[1]) + size/2
	uz := uint32(origin[2]) + size/2
	if ux >= size || uy >= size || uz >= size ||
		ux+sidePow2 > size || uy+sidePow2 > size || uz+sidePow2 > size {
		return Substate{world: s.world, node: emptyNode(s.world, level)}
	}
	if ux%sidePow2 != 0 || uy%sidePow2 != 0 || uz%sidePow2 != 0 {
		panic("hashlife3d: GetSubstate origin is not aligned to sidePow2")
	}
	node := s.root
	for node.Key.Level > level {
		half := node.Key.sideLength() / 2
		xi, yi, zi := ux/half, uy/half, uz/half
		ux, uy, uz = ux%half, uy%half, uz%half
		node = node.Key.Children[childIndex(int(xi), int(yi), int(zi))]
	}
	return Substate{world: s.world, node: node}
}

// Equal reports whether s and other denote the same canonical node.
func (s Substate) Equal(other Substate) bool {
	return s.node == other.node
}

// GetCubePow2 reads the sidePow2-cube region of s starting at the local
// offset offset into out, a strided linear buffer: the block at local
// coordinate (x, y, z) within the requested region is written to
// out[x*strides[0] + y*strides[1] + z*strides[2]]. It panics if the
// requested region extends past s's own cube.
//
// Grounded on chunk_cache.rs's Blocks::stride/Blocks::get_index, which
// compute exactly this dot product against a fixed per-axis stride
// triple so a renderer can write several adjacent Substates into one
// shared oversized buffer without copying.
func (s Substate) GetCubePow2(offset [3]int32, sidePow2 uint32, strides [3]int, out []Block) {
	nodeSize := s.node.Key.sideLength()
	ox := uint32(offset[0])
	oy := uint32(offset[1])
	oz := uint32(offset[2])
	if ox+sidePow2 > nodeSize || oy+sidePow2 > nodeSize || oz+sidePow2 > nodeSize {
		panic("hashlife3d: GetCubePow2 region exceeds substate bounds")
	}
	for x := uint32(0); x < sidePow2; x++ {
		for y := uint32(0); y < sidePow2; y++ {
			for z := uint32(0); z < sidePow2; z++ {
				block := getBlock(s.node, ox+x, oy+y, oz+z)
				idx := int(x)*strides[0] + int(y)*strides[1] + int(z)*strides[2]
				out[idx] = block
			}
		}
	}
}
