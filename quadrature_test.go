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

func TestConvertNbrGIJ(t *testing.T) {
	const ne, ngq = 6, 4
	tests := []struct {
		name                       string
		gi, gj, ei, ej, panel      int
		wantGi, wantGj, wantEi, wantEj, wantPanel int
	}{
		{"p1 interior", 1, 1, 1, 3, 1, 1, 1, 1, 3, 1},
		{"p1 interior hi", 4, 4, 6, 3, 1, 4, 4, 6, 3, 1},
		{"p1 east +1elem", 8, 1, 6, 3, 1, 4, 1, 1, 3, 2},
		{"p1 east +2elem", 12, 1, 6, 3, 1, 4, 1, 2, 3, 2},
		{"p1 west -1elem", 0, 1, 1, 3, 1, 4, 1, 6, 3, 4},
		{"p1 north +1elem", 1, 8, 1, 6, 1, 1, 4, 1, 1, 6},
		{"p1 south -1elem", 1, 0, 1, 1, 1, 1, 4, 1, 6, 5},
		{"p2 east +1elem", 8, 1, 6, 3, 2, 4, 1, 1, 3, 3},
		{"p2 west -1elem", 0, 1, 1, 3, 2, 4, 1, 6, 3, 1},
		{"p2 north +1elem", 1, 8, 1, 6, 2, 1, 1, 6, 1, 6},
		{"p2 south -1elem", 1, 0, 1, 1, 2, 4, 4, 6, 6, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ConvertNbrGIJ(ne, ngq, tc.gi, tc.gj, tc.ei, tc.ej, tc.panel)
			want := NbrGIJ{tc.wantGi, tc.wantGj, tc.wantEi, tc.wantEj, tc.wantPanel}
			if got != want {
				t.Errorf("ConvertNbrGIJ(gi=%d,gj=%d,ei=%d,ej=%d,panel=%d) = %+v, want %+v",
					tc.gi, tc.gj, tc.ei, tc.ej, tc.panel, got, want)
			}
		})
	}
}

func TestConvertNbrGIJCorner(t *testing.T) {
	const ne, ngq = 6, 4
	for _, c := range [][2]int{{0, 0}, {25, 0}, {0, 25}, {25, 25}} {
		got := ConvertNbrGIJ(ne, ngq, c[0], c[1], 1, 1, 1)
		if got != cornerNbrGIJ {
			t.Errorf("ConvertNbrGIJ(gi=%d,gj=%d) = %+v, want corner sentinel", c[0], c[1], got)
		}
	}
}
