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

// Command flgen generates the width-specialized pack and unpack
// kernels of the fastlanes package.
//
// Usage:
//
//	flgen -output ../fastlanes -types 8,16,32,64
//
// Or via go:generate from the fastlanes package:
//
//	//go:generate go run ../cmd/flgen -output .
//
// For each element width T it produces z_packT.go and z_unpackT.go:
// one kernel per packed width W in [1, T] plus the dense runtime-width
// dispatcher. Keeping W a per-function constant is what lets the
// compiler unroll the shift schedule and auto-vectorize the lane loop,
// so the kernel family is generated rather than written generically.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	outputDir = flag.String("output", ".", "Output directory (default: current directory)")
	typeList  = flag.String("types", "8,16,32,64", "Comma-separated element bit widths to generate")
)

func main() {
	flag.Parse()

	types, err := parseTypes(*typeList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Types:     types,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated kernels for types: %s\n", *typeList)
}

func parseTypes(s string) ([]int, error) {
	var result []int
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		t, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid type width %q: %w", p, err)
		}
		switch t {
		case 8, 16, 32, 64:
		default:
			return nil, fmt.Errorf("unsupported type width %d (want 8, 16, 32 or 64)", t)
		}
		result = append(result, t)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no type widths specified")
	}
	return result, nil
}
