// Copyright 2025 go-fastlanes Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fastlanes

// flOrder is the FastLanes row-group permutation. Rows are visited in
// groups of eight, and the groups are interleaved 0,4,2,6,1,5,3,7 so
// that successive rows of a lane land a uniform stride apart in the
// block. The permutation is an involution: applying it twice is the
// identity, so it doubles as its own inverse.
var flOrder = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

// blockOffset returns the logical block position of (row, lane 0);
// adding the lane number gives the full index:
//
//	index(row, lane) = flOrder[row/8]*16 + (row%8)*128 + lane
//
// For every base type this maps [0,T) x [0,LANES) bijectively onto
// [0,1024).
func blockOffset(row int) int {
	return flOrder[row>>3]*16 + (row&7)*128
}

// Per-type inverse tables: laneOfN[i] and rowOfN[i] recover the
// (lane, row) coordinates of logical element i. Derived once at
// startup from the index function; UnpackOne depends on them.
var (
	laneOf8, rowOf8   = inverseTables(8)
	laneOf16, rowOf16 = inverseTables(16)
	laneOf32, rowOf32 = inverseTables(32)
	laneOf64, rowOf64 = inverseTables(64)
)

// inverseTables inverts blockOffset for a t-bit element type. The
// index function keeps flOrder[row/8]*16 congruent to 0 modulo the
// lane count, so i mod LANES is always the lane, and the remaining
// terms separate because flOrder inverts itself.
func inverseTables(t int) (laneOf, rowOf [BlockLen]uint8) {
	lanes := BlockLen / t
	for i := 0; i < BlockLen; i++ {
		lane := i % lanes
		s := i / 128
		o := flOrder[(i-s*128-lane)/16]
		laneOf[i] = uint8(lane)
		rowOf[i] = uint8(o*8 + s)
	}
	return
}

// tablesFor selects the inverse tables for T.
func tablesFor[T Unsigned]() (laneOf, rowOf *[BlockLen]uint8) {
	switch typeBits[T]() {
	case 8:
		return &laneOf8, &rowOf8
	case 16:
		return &laneOf16, &rowOf16
	case 32:
		return &laneOf32, &rowOf32
	default:
		return &laneOf64, &rowOf64
	}
}
