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
	"math/rand"
	"testing"
)

func testFFORRoundTrip[T Unsigned](t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	const width = 6
	reference := T(100)

	in := make([]T, BlockLen)
	for i := range in {
		in[i] = reference + T(rng.Uint64()&(1<<width-1))
	}

	packed := make([]T, PackedLen[T](width))
	FFOR(width, reference, in, packed)
	out := make([]T, BlockLen)
	UnFFOR(width, reference, packed, out)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("round trip mismatch at %d: got %d, want %d", i, out[i], in[i])
		}
	}
}

func TestFFORRoundTrip(t *testing.T) {
	t.Run("uint8", testFFORRoundTrip[uint8])
	t.Run("uint16", testFFORRoundTrip[uint16])
	t.Run("uint32", testFFORRoundTrip[uint32])
	t.Run("uint64", testFFORRoundTrip[uint64])
}

func TestFFORWithMinReference(t *testing.T) {
	// The usual pipeline: reference = block minimum, width from a
	// MaxBits scan of the biased values.
	rng := rand.New(rand.NewSource(37))
	in := make([]uint32, BlockLen)
	for i := range in {
		in[i] = 1_000_000 + rng.Uint32()%4096
	}
	lo := in[0]
	for _, v := range in[1:] {
		if v < lo {
			lo = v
		}
	}

	biased := make([]uint32, BlockLen)
	for i, v := range in {
		biased[i] = v - lo
	}
	width := MaxBits(biased)
	if width > 12 {
		t.Fatalf("MaxBits = %d, want at most 12", width)
	}

	packed := make([]uint32, PackedLen[uint32](width))
	FFOR(width, lo, in, packed)
	out := make([]uint32, BlockLen)
	UnFFOR(width, lo, packed, out)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("mismatch at %d: got %d, want %d", i, out[i], in[i])
		}
	}
}

func TestMaxBits(t *testing.T) {
	tests := []struct {
		name string
		in   []uint32
		want int
	}{
		{"empty", nil, 0},
		{"zeros", []uint32{0, 0, 0}, 0},
		{"one", []uint32{1}, 1},
		{"mixed", []uint32{3, 200, 7}, 8},
		{"max", []uint32{0xFFFFFFFF}, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxBits(tt.in); got != tt.want {
				t.Errorf("MaxBits = %d, want %d", got, tt.want)
			}
		})
	}

	if got := MaxBits([]uint8{0x80}); got != 8 {
		t.Errorf("MaxBits uint8 = %d, want 8", got)
	}
	if got := MaxBits([]uint64{1 << 52}); got != 53 {
		t.Errorf("MaxBits uint64 = %d, want 53", got)
	}
}

func TestMaxBitsIsMinimalPackWidth(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	in := randBlock[uint32](rng, 17)
	in[100] = 1 << 16 // pin bit 16 so the widest element needs 17 bits
	width := MaxBits(in)
	if width != 17 {
		t.Fatalf("MaxBits = %d, want 17", width)
	}

	packed := make([]uint32, PackedLen[uint32](width))
	Pack(width, in, packed)
	out := make([]uint32, BlockLen)
	Unpack(width, packed, out)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("lossless at MaxBits violated at %d", i)
		}
	}

	// One bit narrower must truncate the pinned element.
	packed = make([]uint32, PackedLen[uint32](width-1))
	Pack(width-1, in, packed)
	Unpack(width-1, packed, out)
	if out[100] == in[100] {
		t.Error("packing below MaxBits should have truncated the pinned element")
	}
}
