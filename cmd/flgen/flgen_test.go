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
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"all", "8,16,32,64", []int{8, 16, 32, 64}, false},
		{"spaces", " 8 , 32 ", []int{8, 32}, false},
		{"single", "16", []int{16}, false},
		{"unsupported", "8,24", nil, true},
		{"garbage", "eight", nil, true},
		{"empty", "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTypes(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseTypes(%q): expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTypes(%q): %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseTypes(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseTypes(%q)[%d] = %d, want %d", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGeneratedFilesAreValidGo(t *testing.T) {
	dir := t.TempDir()
	gen := &Generator{OutputDir: dir, Types: []int{8, 16, 32, 64}}
	if err := gen.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	fset := token.NewFileSet()
	for _, typ := range gen.Types {
		for _, kind := range []string{"pack", "unpack"} {
			name := fmt.Sprintf("z_%s%d.go", kind, typ)
			src, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("reading %s: %v", name, err)
			}
			if !strings.Contains(string(src), "Code generated by flgen. DO NOT EDIT.") {
				t.Errorf("%s: missing generated-code marker", name)
			}

			f, err := parser.ParseFile(fset, name, src, 0)
			if err != nil {
				t.Fatalf("parsing %s: %v", name, err)
			}
			if f.Name.Name != "fastlanes" {
				t.Errorf("%s: package %q, want fastlanes", name, f.Name.Name)
			}

			// Dispatcher plus one kernel per width in [1, T].
			wantFuncs := typ + 1
			if got := len(f.Decls); got != wantFuncs {
				t.Errorf("%s: %d declarations, want %d", name, got, wantFuncs)
			}
			for _, w := range []int{1, typ / 2, typ} {
				fn := fmt.Sprintf("%s%dw%d", kind, typ, w)
				if !strings.Contains(string(src), "func "+fn+"(") {
					t.Errorf("%s: missing kernel %s", name, fn)
				}
			}
		}
	}
}

func TestGeneratedDispatchCoversAllWidths(t *testing.T) {
	dir := t.TempDir()
	gen := &Generator{OutputDir: dir, Types: []int{16}}
	if err := gen.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	src, err := os.ReadFile(filepath.Join(dir, "z_pack16.go"))
	if err != nil {
		t.Fatal(err)
	}
	for w := 0; w <= 16; w++ {
		if !strings.Contains(string(src), fmt.Sprintf("\tcase %d:\n", w)) {
			t.Errorf("dispatch missing case %d", w)
		}
	}
	if !strings.Contains(string(src), "default:") {
		t.Error("dispatch missing default arm")
	}
}
