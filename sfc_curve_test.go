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

func matrixEqual(a, b *Matrix) bool {
	if a.N != b.N {
		return false
	}
	for i := range a.V {
		if a.V[i] != b.V[i] {
			return false
		}
	}
	return true
}

func TestTranspose(t *testing.T) {
	m := matrixFromRows([][]int{{1, 2}, {4, 3}})
	want := matrixFromRows([][]int{{1, 4}, {2, 3}})
	if got := Transpose(m); !matrixEqual(got, want) {
		t.Errorf("Transpose = %v, want %v", got.V, want.V)
	}
}

func TestRot2(t *testing.T) {
	m := matrixFromRows([][]int{{1, 2}, {4, 3}})
	want := matrixFromRows([][]int{{3, 4}, {2, 1}})
	if got := Rot2(m); !matrixEqual(got, want) {
		t.Errorf("Rot2 = %v, want %v", got.V, want.V)
	}
}

func TestInvX(t *testing.T) {
	m := matrixFromRows([][]int{{1, 2}, {4, 3}})
	want := matrixFromRows([][]int{{4, 3}, {1, 2}})
	if got := InvX(m); !matrixEqual(got, want) {
		t.Errorf("InvX = %v, want %v", got.V, want.V)
	}
}

func TestInvY(t *testing.T) {
	m := matrixFromRows([][]int{{1, 2}, {4, 3}})
	want := matrixFromRows([][]int{{2, 1}, {3, 4}})
	if got := InvY(m); !matrixEqual(got, want) {
		t.Errorf("InvY = %v, want %v", got.V, want.V)
	}
}

func TestHilbertOrientations(t *testing.T) {
	o0 := hilbertTile.ori[0]
	wantO1 := matrixFromRows([][]int{{1, 4}, {2, 3}})
	wantO2 := matrixFromRows([][]int{{3, 2}, {4, 1}})
	wantO3 := matrixFromRows([][]int{{3, 4}, {2, 1}})
	if !matrixEqual(hilbertTile.ori[1], wantO1) {
		t.Errorf("hilbert orientation 1 = %v, want %v", hilbertTile.ori[1].V, wantO1.V)
	}
	if !matrixEqual(hilbertTile.ori[2], wantO2) {
		t.Errorf("hilbert orientation 2 = %v, want %v", hilbertTile.ori[2].V, wantO2.V)
	}
	if !matrixEqual(hilbertTile.ori[3], wantO3) {
		t.Errorf("hilbert orientation 3 = %v, want %v", hilbertTile.ori[3].V, wantO3.V)
	}
	if o0.At(1, 1) != 1 || o0.At(2, 2) != 3 {
		t.Errorf("hilbert orientation 0 unexpected: %v", o0.V)
	}
}

func TestTileForFactor(t *testing.T) {
	for _, f := range []int{2, 3, 5} {
		tile, ok := tileForFactor(f)
		if !ok {
			t.Fatalf("tileForFactor(%d) not found", f)
		}
		if tile.n != f {
			t.Errorf("tileForFactor(%d).n = %d, want %d", f, tile.n, f)
		}
	}
	if _, ok := tileForFactor(7); ok {
		t.Errorf("tileForFactor(7) should not exist")
	}
}

func TestEntryExitCorners(t *testing.T) {
	tests := []struct {
		o          int
		entry, exit corner
	}{
		{0, cornerTL, cornerBL},
		{1, cornerTL, cornerTR},
		{2, cornerBR, cornerBL},
		{3, cornerBR, cornerTR},
	}
	for _, tc := range tests {
		entry, exit := entryExit(tc.o)
		if entry != tc.entry || exit != tc.exit {
			t.Errorf("entryExit(%d) = (%v,%v), want (%v,%v)", tc.o, entry, exit, tc.entry, tc.exit)
		}
	}
}
