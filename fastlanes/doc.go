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

// Package fastlanes implements FastLanes-style bit packing for blocks
// of 1024 unsigned integers.
//
// A block of 1024 elements of a base type T (uint8, uint16, uint32 or
// uint64) is packed into W bits per element, producing exactly
// 1024*W/T words of T. The packed layout is transposed: the block is
// split into 1024/T independent lanes, and consecutive lanes occupy
// consecutive words, so the per-lane inner loops compile to stride-1
// code that an optimizing backend turns into wide SIMD operations. No
// intrinsics or assembly are involved.
//
// Basic usage:
//
//	in := make([]uint32, fastlanes.BlockLen)
//	// ... fill in; every element must fit in 10 bits ...
//	packed := make([]uint32, fastlanes.PackedLen[uint32](10))
//	fastlanes.Pack(10, in, packed)
//
//	out := make([]uint32, fastlanes.BlockLen)
//	fastlanes.Unpack(10, packed, out)
//
// Single elements can be read back without unpacking the block:
//
//	v := fastlanes.UnpackOne(10, packed, 42)
//
// Delta, FFOR and Transpose build on the same layout and are meant to
// be composed with Pack/Unpack by higher-level codecs.
//
// All routines are pure and allocation-free; concurrent callers on
// disjoint buffers need no coordination. Inputs and outputs must not
// overlap. Contract violations (wrong slice lengths, widths outside
// [0, T]) panic; value overflow does not — elements wider than W lose
// their high bits, as the caller is expected to have chosen W from a
// scan of the block.
package fastlanes
