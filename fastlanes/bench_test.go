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

func benchmarkPack[T Unsigned](b *testing.B, width int) {
	rng := rand.New(rand.NewSource(1))
	in := randBlock[T](rng, width)
	out := make([]T, PackedLen[T](width))
	b.SetBytes(int64(BlockLen * typeBits[T]() / 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Pack(width, in, out)
	}
}

func benchmarkUnpack[T Unsigned](b *testing.B, width int) {
	rng := rand.New(rand.NewSource(1))
	in := randBlock[T](rng, width)
	packed := make([]T, PackedLen[T](width))
	Pack(width, in, packed)
	out := make([]T, BlockLen)
	b.SetBytes(int64(BlockLen * typeBits[T]() / 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Unpack(width, packed, out)
	}
}

func BenchmarkPack(b *testing.B) {
	for _, width := range []int{1, 3, 7, 8} {
		b.Run(fmt.Sprintf("uint8/w%d", width), func(b *testing.B) { benchmarkPack[uint8](b, width) })
	}
	for _, width := range []int{4, 10, 21, 32} {
		b.Run(fmt.Sprintf("uint32/w%d", width), func(b *testing.B) { benchmarkPack[uint32](b, width) })
	}
	for _, width := range []int{17, 33, 64} {
		b.Run(fmt.Sprintf("uint64/w%d", width), func(b *testing.B) { benchmarkPack[uint64](b, width) })
	}
}

func BenchmarkUnpack(b *testing.B) {
	for _, width := range []int{4, 10, 21, 32} {
		b.Run(fmt.Sprintf("uint32/w%d", width), func(b *testing.B) { benchmarkUnpack[uint32](b, width) })
	}
	for _, width := range []int{17, 33, 64} {
		b.Run(fmt.Sprintf("uint64/w%d", width), func(b *testing.B) { benchmarkUnpack[uint64](b, width) })
	}
}

func BenchmarkUnpackOne(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	in := randBlock[uint32](rng, 10)
	packed := make([]uint32, PackedLen[uint32](10))
	Pack(10, in, packed)
	b.ResetTimer()
	var sink uint32
	for i := 0; i < b.N; i++ {
		sink += UnpackOne(10, packed, i&(BlockLen-1))
	}
	_ = sink
}
