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

func testDeltaRoundTrip[T Unsigned](t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	in := randBlock[T](rng, typeBits[T]())
	base := make([]T, Lanes[T]())
	for i := range base {
		base[i] = T(rng.Uint64())
	}

	deltas := make([]T, BlockLen)
	Delta(in, base, deltas)
	out := make([]T, BlockLen)
	Undelta(deltas, base, out)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("round trip mismatch at %d: got %d, want %d", i, out[i], in[i])
		}
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	t.Run("uint8", testDeltaRoundTrip[uint8])
	t.Run("uint16", testDeltaRoundTrip[uint16])
	t.Run("uint32", testDeltaRoundTrip[uint32])
	t.Run("uint64", testDeltaRoundTrip[uint64])
}

func TestDeltaIsLaneLocal(t *testing.T) {
	// Deltas are taken against the lane's previous element in
	// transposed order, seeded from base[lane] — never across lanes.
	in := make([]uint32, BlockLen)
	base := make([]uint32, lanes32)
	for lane := 0; lane < lanes32; lane++ {
		base[lane] = uint32(lane) * 1000
		v := base[lane]
		for row := 0; row < 32; row++ {
			v += uint32(row%5) + 1
			in[blockOffset(row)+lane] = v
		}
	}

	deltas := make([]uint32, BlockLen)
	Delta(in, base, deltas)
	for lane := 0; lane < lanes32; lane++ {
		for row := 0; row < 32; row++ {
			if got, want := deltas[blockOffset(row)+lane], uint32(row%5)+1; got != want {
				t.Fatalf("lane %d row %d: delta = %d, want %d", lane, row, got, want)
			}
		}
	}
}

func TestDeltaPackPipeline(t *testing.T) {
	// The point of the transposed delta: delta → pack → unpack →
	// undelta reproduces the input, with the packed width set by the
	// deltas rather than the values.
	in := make([]uint32, BlockLen)
	base := make([]uint32, lanes32)
	rng := rand.New(rand.NewSource(21))
	for lane := 0; lane < lanes32; lane++ {
		base[lane] = rng.Uint32() >> 8
		v := base[lane]
		for row := 0; row < 32; row++ {
			v += rng.Uint32() & 63
			in[blockOffset(row)+lane] = v
		}
	}

	deltas := make([]uint32, BlockLen)
	Delta(in, base, deltas)
	width := MaxBits(deltas)
	if width > 6 {
		t.Fatalf("MaxBits(deltas) = %d, want at most 6", width)
	}

	packed := make([]uint32, PackedLen[uint32](width))
	Pack(width, deltas, packed)

	unpacked := make([]uint32, BlockLen)
	Unpack(width, packed, unpacked)
	out := make([]uint32, BlockLen)
	Undelta(unpacked, base, out)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("pipeline mismatch at %d: got %d, want %d", i, out[i], in[i])
		}
	}
}

func TestDeltaBadBaseLength(t *testing.T) {
	in := make([]uint32, BlockLen)
	out := make([]uint32, BlockLen)
	mustPanic(t, "delta_short_base", func() { Delta(in, make([]uint32, 8), out) })
	mustPanic(t, "undelta_short_base", func() { Undelta(in, make([]uint32, 8), out) })
}
