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
	"os"
	"strconv"
)

// The kernels in this package are portable Go; how wide they actually
// run is up to the compiler's auto-vectorizer and the host CPU. The
// dispatch level reported here is informational — kernel behavior and
// the packed layout never depend on it — but callers and benchmarks
// can use it to understand what vector width to expect.

// DispatchLevel identifies the widest SIMD instruction set available
// to the auto-vectorized kernels on this host.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable SIMD.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit).
	DispatchNEON

	// DispatchSVE indicates ARM SVE (scalable vectors).
	DispatchSVE
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	case DispatchSVE:
		return "sve"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this host.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for the current
// level. Set by init() in dispatch_*.go files; 16 in scalar mode for
// consistency.
var currentWidth int

// CurrentLevel returns the widest SIMD instruction set detected.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current level,
// for example "avx2" or "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// HasSIMD returns true if hardware SIMD is available for the
// auto-vectorized kernels to exploit.
func HasSIMD() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv checks the FASTLANES_NO_SIMD environment variable. When
// set, detection reports scalar mode regardless of CPU capabilities,
// which is useful for comparative benchmarking and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("FASTLANES_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
