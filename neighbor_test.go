// Copyright 2022  Il Sub Bang
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

package cubepartition

import "testing"

func TestQuotient(t *testing.T) {
	n := 3
	is := []int{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7}
	qs := []int{-2, -2, -1, -1, -1, 0, 0, 0, 1, 1, 1, 2, 2}
	for k, i := range is {
		if got := Quotient(n, i); got != qs[k] {
			t.Errorf("Quotient(%d, %d) = %d, want %d", n, i, got, qs[k])
		}
	}
}

func TestRotateIJ(t *testing.T) {
	tests := []struct {
		n, i, j, rot, wantI, wantJ int
	}{
		{6, 2, 3, 0, 2, 3},
		{6, 2, 3, 1, 3, 5},
		{6, 2, 3, 2, 5, 4},
		{6, 2, 3, 3, 4, 2},
		{6, 1, 4, 0, 1, 4},
		{6, 1, 4, 1, 4, 6},
		{6, 1, 4, 2, 6, 3},
		{6, 1, 4, 3, 3, 1},
		{6, 0, 4, 1, 4, 7},
		{6, 0, 4, 2, 7, 3},
		{6, 0, 4, 3, 3, 0},
	}
	for _, tc := range tests {
		gotI, gotJ := RotateIJ(tc.n, tc.i, tc.j, tc.rot)
		if gotI != tc.wantI || gotJ != tc.wantJ {
			t.Errorf("RotateIJ(%d,%d,%d,%d) = (%d,%d), want (%d,%d)",
				tc.n, tc.i, tc.j, tc.rot, gotI, gotJ, tc.wantI, tc.wantJ)
		}
	}
}

func TestConvertNbrEIJ(t *testing.T) {
	tests := []struct {
		name                   string
		ne, ei, ej, panel      int
		wantEi, wantEj, wantP, wantRot int
	}{
		{"p1 interior", 6, 1, 3, 1, 1, 3, 1, 0},
		{"p1 east +1", 6, 7, 3, 1, 1, 3, 2, 0},
		{"p1 east +2panels", 6, 12, 3, 1, 6, 3, 2, 0},
		{"p1 west -1", 6, 0, 3, 1, 6, 3, 4, 0},
		{"p1 west wrap", 6, -5, 3, 1, 1, 3, 4, 0},
		{"p1 north", 6, 1, 7, 1, 1, 1, 6, 0},
		{"p1 south", 6, 1, 0, 1, 1, 6, 5, 0},
		{"p2 north rot3", 6, 1, 7, 2, 6, 1, 6, 3},
		{"p2 south rot1", 6, 1, 0, 2, 6, 6, 5, 1},
		{"p3 north rot2", 6, 1, 7, 3, 6, 6, 6, 2},
		{"p4 north rot1", 6, 1, 7, 4, 1, 6, 6, 1},
		{"p5 east rot3", 6, 7, 3, 5, 4, 1, 2, 3},
		{"p5 north", 6, 1, 7, 5, 1, 1, 1, 0},
		{"p5 south rot2", 6, 1, 0, 5, 6, 1, 3, 2},
		{"p5 ne3 for paper", 3, 3, -1, 5, 1, 2, 3, 2},
		{"p6 east rot1", 6, 7, 3, 6, 3, 6, 2, 1},
		{"p6 west rot3", 6, 0, 3, 6, 4, 6, 4, 3},
		{"p6 south rot2", 6, 1, 7, 6, 6, 6, 3, 2},
		{"p10-4 interior", 10, 6, 10, 4, 6, 10, 4, 0},
		{"p10-4 north rot1", 10, 6, 11, 4, 1, 5, 6, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ConvertNbrEIJ(tc.ne, tc.ei, tc.ej, tc.panel)
			want := NbrEIJ{tc.wantEi, tc.wantEj, tc.wantP, tc.wantRot}
			if got != want {
				t.Errorf("ConvertNbrEIJ(%d,%d,%d,%d) = %+v, want %+v",
					tc.ne, tc.ei, tc.ej, tc.panel, got, want)
			}
		})
	}
}

func TestConvertNbrEIJCorner(t *testing.T) {
	for panel := 1; panel <= NumPanels; panel++ {
		for _, c := range [][2]int{{0, 0}, {7, 0}, {0, 7}, {7, 7}} {
			got := ConvertNbrEIJ(6, c[0], c[1], panel)
			if got != cornerNbrEIJ {
				t.Errorf("ConvertNbrEIJ(6,%d,%d,%d) = %+v, want corner sentinel",
					c[0], c[1], panel, got)
			}
		}
	}
}
