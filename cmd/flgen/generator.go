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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

// fileHeader opens every generated file: license, generated-code
// marker, package clause.
const fileHeader = `// Copyright 2025 go-fastlanes Authors
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

// Code generated by flgen. DO NOT EDIT.

package fastlanes

`

// Generator renders the kernel files for a set of element widths.
type Generator struct {
	OutputDir string
	Types     []int
}

// Run generates z_packT.go and z_unpackT.go for every requested T.
func (g *Generator) Run() error {
	for _, t := range g.Types {
		if err := g.writeFile(fmt.Sprintf("z_pack%d.go", t), g.packFile(t)); err != nil {
			return err
		}
		if err := g.writeFile(fmt.Sprintf("z_unpack%d.go", t), g.unpackFile(t)); err != nil {
			return err
		}
	}
	return nil
}

// writeFile formats the rendered source and writes it into the output
// directory. A formatting failure is reported but does not abort the
// run; the unformatted source is written so the problem is inspectable.
func (g *Generator) writeFile(name string, src []byte) error {
	path := filepath.Join(g.OutputDir, name)
	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: formatting %s failed: %v\n", name, err)
		formatted = src
	}
	if err := os.WriteFile(path, formatted, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

// packedLen is the packed word count for a (T, W) pair: 1024*W/T.
func packedLen(t, w int) int {
	return 1024 * w / t
}

// packFile renders the pack dispatcher and the pack kernel family for
// a T-bit element type.
func (g *Generator) packFile(t int) []byte {
	var b bytes.Buffer
	b.WriteString(fileHeader)

	fmt.Fprintf(&b, "// pack%d packs a block at a runtime-selected width by dispatching to\n", t)
	fmt.Fprintf(&b, "// the kernel specialized for it. Slice lengths are the caller's\n")
	fmt.Fprintf(&b, "// contract; the array conversions pin them.\n")
	fmt.Fprintf(&b, "func pack%d(width int, in, out []uint%d) {\n", t, t)
	fmt.Fprintf(&b, "\tswitch width {\n")
	fmt.Fprintf(&b, "\tcase 0:\n")
	fmt.Fprintf(&b, "\t\t// width 0 stores nothing\n")
	for w := 1; w <= t; w++ {
		fmt.Fprintf(&b, "\tcase %d:\n", w)
		fmt.Fprintf(&b, "\t\tpack%dw%d((*[1024]uint%d)(in), (*[%d]uint%d)(out))\n", t, w, t, packedLen(t, w), t)
	}
	fmt.Fprintf(&b, "\tdefault:\n")
	fmt.Fprintf(&b, "\t\tpanic(\"fastlanes: unsupported bit width\")\n")
	fmt.Fprintf(&b, "\t}\n")
	fmt.Fprintf(&b, "}\n")

	for w := 1; w <= t; w++ {
		fmt.Fprintf(&b, "\nfunc pack%dw%d(in *[1024]uint%d, out *[%d]uint%d) {\n", t, w, t, packedLen(t, w), t)
		fmt.Fprintf(&b, "\tconst w = %d\n", w)
		fmt.Fprintf(&b, "\tfor lane := 0; lane < lanes%d; lane++ {\n", t)
		fmt.Fprintf(&b, "\t\tvar word uint%d\n", t)
		fmt.Fprintf(&b, "\t\tshift := 0\n")
		fmt.Fprintf(&b, "\t\tk := 0\n")
		fmt.Fprintf(&b, "\t\tfor row := 0; row < %d; row++ {\n", t)
		fmt.Fprintf(&b, "\t\t\tv := in[blockOffset(row)+lane] & (1<<w - 1)\n")
		fmt.Fprintf(&b, "\t\t\tword |= v << shift\n")
		fmt.Fprintf(&b, "\t\t\tshift += w\n")
		fmt.Fprintf(&b, "\t\t\tif shift >= %d {\n", t)
		fmt.Fprintf(&b, "\t\t\t\tout[k*lanes%d+lane] = word\n", t)
		fmt.Fprintf(&b, "\t\t\t\tk++\n")
		fmt.Fprintf(&b, "\t\t\t\tshift -= %d\n", t)
		fmt.Fprintf(&b, "\t\t\t\tword = 0\n")
		fmt.Fprintf(&b, "\t\t\t\tif shift > 0 {\n")
		fmt.Fprintf(&b, "\t\t\t\t\tword = v >> (w - shift)\n")
		fmt.Fprintf(&b, "\t\t\t\t}\n")
		fmt.Fprintf(&b, "\t\t\t}\n")
		fmt.Fprintf(&b, "\t\t}\n")
		fmt.Fprintf(&b, "\t}\n")
		fmt.Fprintf(&b, "}\n")
	}
	return b.Bytes()
}

// unpackFile renders the unpack dispatcher and the unpack kernel
// family for a T-bit element type.
func (g *Generator) unpackFile(t int) []byte {
	var b bytes.Buffer
	b.WriteString(fileHeader)

	fmt.Fprintf(&b, "// unpack%d unpacks a block at a runtime-selected width by dispatching\n", t)
	fmt.Fprintf(&b, "// to the kernel specialized for it. Slice lengths are the caller's\n")
	fmt.Fprintf(&b, "// contract; the array conversions pin them.\n")
	fmt.Fprintf(&b, "func unpack%d(width int, in, out []uint%d) {\n", t, t)
	fmt.Fprintf(&b, "\tswitch width {\n")
	fmt.Fprintf(&b, "\tcase 0:\n")
	fmt.Fprintf(&b, "\t\tclear(out)\n")
	for w := 1; w <= t; w++ {
		fmt.Fprintf(&b, "\tcase %d:\n", w)
		fmt.Fprintf(&b, "\t\tunpack%dw%d((*[%d]uint%d)(in), (*[1024]uint%d)(out))\n", t, w, packedLen(t, w), t, t)
	}
	fmt.Fprintf(&b, "\tdefault:\n")
	fmt.Fprintf(&b, "\t\tpanic(\"fastlanes: unsupported bit width\")\n")
	fmt.Fprintf(&b, "\t}\n")
	fmt.Fprintf(&b, "}\n")

	for w := 1; w <= t; w++ {
		fmt.Fprintf(&b, "\nfunc unpack%dw%d(in *[%d]uint%d, out *[1024]uint%d) {\n", t, w, packedLen(t, w), t, t)
		fmt.Fprintf(&b, "\tconst w = %d\n", w)
		fmt.Fprintf(&b, "\tconst mask = 1<<w - 1\n")
		fmt.Fprintf(&b, "\tfor lane := 0; lane < lanes%d; lane++ {\n", t)
		fmt.Fprintf(&b, "\t\tshift := 0\n")
		fmt.Fprintf(&b, "\t\tk := 0\n")
		fmt.Fprintf(&b, "\t\tfor row := 0; row < %d; row++ {\n", t)
		fmt.Fprintf(&b, "\t\t\tv := in[k*lanes%d+lane] >> shift\n", t)
		fmt.Fprintf(&b, "\t\t\tshift += w\n")
		fmt.Fprintf(&b, "\t\t\tif shift > %d {\n", t)
		fmt.Fprintf(&b, "\t\t\t\tshift -= %d\n", t)
		fmt.Fprintf(&b, "\t\t\t\tk++\n")
		fmt.Fprintf(&b, "\t\t\t\tv |= in[k*lanes%d+lane] << (w - shift)\n", t)
		fmt.Fprintf(&b, "\t\t\t} else if shift == %d {\n", t)
		fmt.Fprintf(&b, "\t\t\t\tshift = 0\n")
		fmt.Fprintf(&b, "\t\t\t\tk++\n")
		fmt.Fprintf(&b, "\t\t\t}\n")
		fmt.Fprintf(&b, "\t\t\tout[blockOffset(row)+lane] = v & mask\n")
		fmt.Fprintf(&b, "\t\t}\n")
		fmt.Fprintf(&b, "\t}\n")
		fmt.Fprintf(&b, "}\n")
	}
	return b.Bytes()
}
