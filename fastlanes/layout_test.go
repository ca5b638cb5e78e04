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
	"testing"
)

func TestFlOrderInvolution(t *testing.T) {
	for i, o := range flOrder {
		if flOrder[o] != i {
			t.Errorf("flOrder[flOrder[%d]] = %d, want %d", i, flOrder[o], i)
		}
	}
}

func TestIndexBijection(t *testing.T) {
	for _, bits := range []int{8, 16, 32, 64} {
		t.Run(fmt.Sprintf("uint%d", bits), func(t *testing.T) {
			lanes := BlockLen / bits
			seen := make([]bool, BlockLen)
			for row := 0; row < bits; row++ {
				for lane := 0; lane < lanes; lane++ {
					i := blockOffset(row) + lane
					if i < 0 || i >= BlockLen {
						t.Fatalf("index(%d, %d) = %d out of range", row, lane, i)
					}
					if seen[i] {
						t.Fatalf("index(%d, %d) = %d already produced", row, lane, i)
					}
					seen[i] = true
				}
			}
			for i, ok := range seen {
				if !ok {
					t.Errorf("position %d never produced", i)
				}
			}
		})
	}
}

func TestInverseTablesMatchIndex(t *testing.T) {
	tables := []struct {
		bits   int
		laneOf *[BlockLen]uint8
		rowOf  *[BlockLen]uint8
	}{
		{8, &laneOf8, &rowOf8},
		{16, &laneOf16, &rowOf16},
		{32, &laneOf32, &rowOf32},
		{64, &laneOf64, &rowOf64},
	}
	for _, tab := range tables {
		t.Run(fmt.Sprintf("uint%d", tab.bits), func(t *testing.T) {
			lanes := BlockLen / tab.bits
			for row := 0; row < tab.bits; row++ {
				for lane := 0; lane < lanes; lane++ {
					i := blockOffset(row) + lane
					if got := int(tab.laneOf[i]); got != lane {
						t.Errorf("laneOf[%d] = %d, want %d", i, got, lane)
					}
					if got := int(tab.rowOf[i]); got != row {
						t.Errorf("rowOf[%d] = %d, want %d", i, got, row)
					}
				}
			}
		})
	}
}

func TestLanes(t *testing.T) {
	if got := Lanes[uint8](); got != 128 {
		t.Errorf("Lanes[uint8]() = %d, want 128", got)
	}
	if got := Lanes[uint16](); got != 64 {
		t.Errorf("Lanes[uint16]() = %d, want 64", got)
	}
	if got := Lanes[uint32](); got != 32 {
		t.Errorf("Lanes[uint32]() = %d, want 32", got)
	}
	if got := Lanes[uint64](); got != 16 {
		t.Errorf("Lanes[uint64]() = %d, want 16", got)
	}
}
