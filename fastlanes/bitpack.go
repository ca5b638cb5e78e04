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

//go:generate go run ../cmd/flgen -output .

// Pack packs a block of 1024 elements into width bits each, writing
// exactly 1024*W/T words of T into out in the transposed FastLanes
// layout. Elements with more than width significant bits lose their
// high bits; that is the caller's contract, not an error.
//
// in must hold exactly 1024 elements and out exactly
// PackedLen[T](width) words; in and out must not overlap. Length and
// width violations panic; overlap is not checked. The kernels selected
// here never allocate and never read out.
func Pack[T Unsigned](width int, in, out []T) {
	t := typeBits[T]()
	checkWidth(width, t)
	if len(in) != BlockLen {
		panic("fastlanes: pack input must hold exactly 1024 elements")
	}
	if len(out) != BlockLen*width/t {
		panic("fastlanes: pack output must hold exactly 1024*W/T words")
	}
	switch in := any(in).(type) {
	case []uint8:
		pack8(width, in, any(out).([]uint8))
	case []uint16:
		pack16(width, in, any(out).([]uint16))
	case []uint32:
		pack32(width, in, any(out).([]uint32))
	case []uint64:
		pack64(width, in, any(out).([]uint64))
	}
}

// Unpack is the inverse of Pack: it expands a packed buffer of
// 1024*W/T words back into a block of 1024 elements, each
// zero-extended to T bits. At width 0 the packed buffer is empty and
// out is filled with zeros.
//
// in must hold exactly PackedLen[T](width) words and out exactly 1024
// elements; in and out must not overlap. Length and width violations
// panic; overlap is not checked.
func Unpack[T Unsigned](width int, in, out []T) {
	t := typeBits[T]()
	checkWidth(width, t)
	if len(in) != BlockLen*width/t {
		panic("fastlanes: unpack input must hold exactly 1024*W/T words")
	}
	if len(out) != BlockLen {
		panic("fastlanes: unpack output must hold exactly 1024 elements")
	}
	switch in := any(in).(type) {
	case []uint8:
		unpack8(width, in, any(out).([]uint8))
	case []uint16:
		unpack16(width, in, any(out).([]uint16))
	case []uint32:
		unpack32(width, in, any(out).([]uint32))
	case []uint64:
		unpack64(width, in, any(out).([]uint64))
	}
}

// UnpackOne reads back the element at the given logical index of a
// packed block without touching any other element. It is equivalent
// to Unpack followed by indexing, in constant time.
//
// packed must hold exactly PackedLen[T](width) words and index must be
// in [0, 1024). Violations panic.
func UnpackOne[T Unsigned](width int, packed []T, index int) T {
	t := typeBits[T]()
	checkWidth(width, t)
	if len(packed) != BlockLen*width/t {
		panic("fastlanes: packed input must hold exactly 1024*W/T words")
	}
	if index < 0 || index >= BlockLen {
		panic("fastlanes: index out of range")
	}
	if width == 0 {
		return 0
	}

	laneOf, rowOf := tablesFor[T]()
	lanes := BlockLen / t
	lane := int(laneOf[index])
	row := int(rowOf[index])

	if width == t {
		// Full width is a pure transpose; read the word directly.
		return packed[lanes*row+lane]
	}

	// The lane owns width words; row r occupies width bits starting
	// at bit r*width of that region. A value straddles at most two
	// words, and when it does, startWord+1 is still within the lane's
	// words because row < T and width < T.
	mask := T(1)<<width - 1
	startBit := row * width
	startWord := startBit / t
	loShift := startBit % t
	remaining := t - loShift

	lo := packed[lanes*startWord+lane] >> loShift
	if remaining >= width {
		return lo & mask
	}
	hi := packed[lanes*(startWord+1)+lane] << remaining
	return (lo | hi) & mask
}

func checkWidth(width, t int) {
	if width < 0 || width > t {
		panic("fastlanes: bit width out of range")
	}
}
