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

func testTransposeRoundTrip[T Unsigned](t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	in := randBlock[T](rng, typeBits[T]())

	transposed := make([]T, BlockLen)
	Transpose(in, transposed)
	out := make([]T, BlockLen)
	Untranspose(transposed, out)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("round trip mismatch at %d: got %d, want %d", i, out[i], in[i])
		}
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	t.Run("uint8", testTransposeRoundTrip[uint8])
	t.Run("uint16", testTransposeRoundTrip[uint16])
	t.Run("uint32", testTransposeRoundTrip[uint32])
	t.Run("uint64", testTransposeRoundTrip[uint64])
}

func TestTransposeEqualsFullWidthPack(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	in := randBlock[uint32](rng, 32)

	transposed := make([]uint32, BlockLen)
	Transpose(in, transposed)
	packed := make([]uint32, PackedLen[uint32](32))
	Pack(32, in, packed)
	for i := range packed {
		if packed[i] != transposed[i] {
			t.Fatalf("word %d: pack = %d, transpose = %d", i, packed[i], transposed[i])
		}
	}
}

func TestTransposeIsPermutation(t *testing.T) {
	in := make([]uint16, BlockLen)
	for i := range in {
		in[i] = uint16(i)
	}
	out := make([]uint16, BlockLen)
	Transpose(in, out)

	seen := make([]bool, BlockLen)
	for _, v := range out {
		if seen[v] {
			t.Fatalf("element %d appears twice", v)
		}
		seen[v] = true
	}
}
