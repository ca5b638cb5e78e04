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

import (
	"fmt"
	"math/rand"
	"testing"
)

// randBlock fills a block with random values of at most width bits.
func randBlock[T Unsigned](rng *rand.Rand, width int) []T {
	mask := uint64(1)<<uint(width) - 1
	in := make([]T, BlockLen)
	for i := range in {
		in[i] = T(rng.Uint64() & mask)
	}
	return in
}

// widthMask is the T-typed mask of the given width.
func widthMask[T Unsigned](width int) T {
	if width == typeBits[T]() {
		return ^T(0)
	}
	return T(1)<<width - 1
}

// refPack packs a block one element at a time straight from the
// packed-layout bit formula: element i occupies width bits starting at
// bit rowOf[i]*width of lane laneOf[i]. The kernels must agree with
// this byte for byte.
func refPack[T Unsigned](width int, in []T) []T {
	t := typeBits[T]()
	lanes := BlockLen / t
	out := make([]T, BlockLen*width/t)
	if width == 0 {
		return out
	}
	laneOf, rowOf := tablesFor[T]()
	mask := widthMask[T](width)
	for i := 0; i < BlockLen; i++ {
		v := in[i] & mask
		bitPos := int(rowOf[i]) * width
		word := bitPos / t
		bit := bitPos % t
		lane := int(laneOf[i])
		out[lanes*word+lane] |= v << bit
		if bit+width > t {
			out[lanes*(word+1)+lane] |= v >> (t - bit)
		}
	}
	return out
}

func testRoundTrip[T Unsigned](t *testing.T) {
	bits := typeBits[T]()
	rng := rand.New(rand.NewSource(42))
	for width := 0; width <= bits; width++ {
		in := randBlock[T](rng, width)
		packed := make([]T, PackedLen[T](width))
		Pack(width, in, packed)

		if want := BlockLen * width / bits; len(packed) != want {
			t.Fatalf("width %d: packed length %d, want %d", width, len(packed), want)
		}

		out := make([]T, BlockLen)
		Unpack(width, packed, out)
		for i := range in {
			if out[i] != in[i] {
				t.Fatalf("width %d: round trip mismatch at %d: got %d, want %d", width, i, out[i], in[i])
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("uint8", testRoundTrip[uint8])
	t.Run("uint16", testRoundTrip[uint16])
	t.Run("uint32", testRoundTrip[uint32])
	t.Run("uint64", testRoundTrip[uint64])
}

func testLayoutContract[T Unsigned](t *testing.T) {
	bits := typeBits[T]()
	rng := rand.New(rand.NewSource(7))
	for width := 0; width <= bits; width++ {
		in := randBlock[T](rng, bits) // deliberately wider than width
		packed := make([]T, PackedLen[T](width))
		Pack(width, in, packed)
		want := refPack(width, in)
		for i := range want {
			if packed[i] != want[i] {
				t.Fatalf("width %d: word %d = %#x, want %#x", width, i, packed[i], want[i])
			}
		}
	}
}

func TestLayoutContract(t *testing.T) {
	t.Run("uint8", testLayoutContract[uint8])
	t.Run("uint16", testLayoutContract[uint16])
	t.Run("uint32", testLayoutContract[uint32])
	t.Run("uint64", testLayoutContract[uint64])
}

func testUnpackOneAgreement[T Unsigned](t *testing.T) {
	bits := typeBits[T]()
	rng := rand.New(rand.NewSource(99))
	for width := 0; width <= bits; width++ {
		in := randBlock[T](rng, width)
		packed := make([]T, PackedLen[T](width))
		Pack(width, in, packed)
		for trial := 0; trial < 64; trial++ {
			i := rng.Intn(BlockLen)
			if got := UnpackOne(width, packed, i); got != in[i] {
				t.Fatalf("width %d: UnpackOne(%d) = %d, want %d", width, i, got, in[i])
			}
		}
	}
}

func TestUnpackOneAgreement(t *testing.T) {
	t.Run("uint8", testUnpackOneAgreement[uint8])
	t.Run("uint16", testUnpackOneAgreement[uint16])
	t.Run("uint32", testUnpackOneAgreement[uint32])
	t.Run("uint64", testUnpackOneAgreement[uint64])
}

func TestPackedLen(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 0},
		{1, 32},
		{7, 224},
		{10, 320},
		{32, 1024},
	}
	for _, tt := range tests {
		if got := PackedLen[uint32](tt.width); got != tt.want {
			t.Errorf("PackedLen[uint32](%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
	if got := PackedLen[uint8](3); got != 384 {
		t.Errorf("PackedLen[uint8](3) = %d, want 384", got)
	}
	if got := PackedLen[uint64](33); got != 528 {
		t.Errorf("PackedLen[uint64](33) = %d, want 528", got)
	}
}

func TestZeroWidth(t *testing.T) {
	in := make([]uint32, BlockLen)
	for i := range in {
		in[i] = uint32(i) * 3
	}
	packed := make([]uint32, 0)
	Pack(0, in, packed)

	out := make([]uint32, BlockLen)
	out[17] = 12345 // must be overwritten
	Unpack(0, packed, out)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("out[%d] = %d, want 0", i, v)
		}
	}
	if got := UnpackOne(0, packed, 511); got != 0 {
		t.Errorf("UnpackOne at width 0 = %d, want 0", got)
	}
}

func TestTruncation(t *testing.T) {
	// Values wider than W silently lose their high bits.
	in := make([]uint32, BlockLen)
	for i := range in {
		in[i] = uint32(i % 128)
	}
	in[0] = 0xFFFFFFFF

	packed := make([]uint32, PackedLen[uint32](7))
	Pack(7, in, packed)
	out := make([]uint32, BlockLen)
	Unpack(7, packed, out)

	if out[0] != 127 {
		t.Errorf("out[0] = %d, want 127", out[0])
	}
	for i := 1; i < BlockLen; i++ {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestSequentialU32W10(t *testing.T) {
	in := make([]uint32, BlockLen)
	for i := range in {
		in[i] = uint32(i)
	}
	packed := make([]uint32, PackedLen[uint32](10))
	Pack(10, in, packed)
	if len(packed) != 320 {
		t.Fatalf("packed length %d, want 320", len(packed))
	}
	out := make([]uint32, BlockLen)
	Unpack(10, packed, out)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestModuloU8W3(t *testing.T) {
	in := make([]uint8, BlockLen)
	for i := range in {
		in[i] = uint8(i % 8)
	}
	packed := make([]uint8, PackedLen[uint8](3))
	Pack(3, in, packed)
	if len(packed) != 384 {
		t.Fatalf("packed length %d, want 384", len(packed))
	}
	out := make([]uint8, BlockLen)
	Unpack(3, packed, out)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestFullWidthU16IsTranspose(t *testing.T) {
	in := make([]uint16, BlockLen)
	for i := range in {
		in[i] = uint16(i * 2654435761)
	}
	packed := make([]uint16, PackedLen[uint16](16))
	Pack(16, in, packed)

	// At W = T packing degenerates to the FastLanes transpose: word w
	// of lane `lane` is the source element at index(w, lane).
	for w := 0; w < 16; w++ {
		for lane := 0; lane < lanes16; lane++ {
			if got, want := packed[w*lanes16+lane], in[blockOffset(w)+lane]; got != want {
				t.Fatalf("packed[%d*64+%d] = %d, want %d", w, lane, got, want)
			}
		}
	}

	out := make([]uint16, BlockLen)
	Unpack(16, packed, out)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestGoldenU64W33(t *testing.T) {
	in := make([]uint64, BlockLen)
	for i := range in {
		in[i] = (uint64(i) * 0x9E3779B97F4A7C15) & (1<<33 - 1)
	}
	packed := make([]uint64, PackedLen[uint64](33))
	Pack(33, in, packed)
	if len(packed) != 528 {
		t.Fatalf("packed length %d, want 528", len(packed))
	}

	out := make([]uint64, BlockLen)
	Unpack(33, packed, out)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}

	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 256; trial++ {
		i := rng.Intn(BlockLen)
		if got := UnpackOne(33, packed, i); got != in[i] {
			t.Fatalf("UnpackOne(%d) = %d, want %d", i, got, in[i])
		}
	}
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}

func TestContractViolationsPanic(t *testing.T) {
	in := make([]uint32, BlockLen)
	packed := make([]uint32, PackedLen[uint32](10))
	out := make([]uint32, BlockLen)

	tests := []struct {
		name string
		f    func()
	}{
		{"pack_width_too_large", func() { Pack(33, in, packed) }},
		{"pack_negative_width", func() { Pack(-1, in, packed) }},
		{"pack_short_input", func() { Pack(10, in[:100], packed) }},
		{"pack_short_output", func() { Pack(10, in, packed[:1]) }},
		{"unpack_short_input", func() { Unpack(10, packed[:1], out) }},
		{"unpack_short_output", func() { Unpack(10, packed, out[:100]) }},
		{"unpackone_bad_index", func() { UnpackOne(10, packed, BlockLen) }},
		{"unpackone_bad_width", func() { UnpackOne(64, packed, 0) }},
		{"packedlen_bad_width", func() { PackedLen[uint8](9) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustPanic(t, tt.name, tt.f)
		})
	}
}

func ExamplePack() {
	in := make([]uint32, BlockLen)
	for i := range in {
		in[i] = uint32(i % 1000)
	}
	packed := make([]uint32, PackedLen[uint32](10))
	Pack(10, in, packed)

	out := make([]uint32, BlockLen)
	Unpack(10, packed, out)
	fmt.Println(len(packed), out[999])
	// Output: 320 999
}
