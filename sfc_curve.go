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

// Matrix is a square n x n grid of ints, 1-based, used both for the
// fixed base tiles and for the panel curves assembled from them.
type Matrix struct {
	N int
	V []int
}

func NewMatrix(n int) *Matrix {
	return &Matrix{N: n, V: make([]int, n*n)}
}

func (m *Matrix) index(i, j int) int {
	return (i-1)*m.N + (j - 1)
}

func (m *Matrix) At(i, j int) int {
	return m.V[m.index(i, j)]
}

func (m *Matrix) Set(i, j, v int) {
	m.V[m.index(i, j)] = v
}

func (m *Matrix) clone() *Matrix {
	v := make([]int, len(m.V))
	copy(v, m.V)
	return &Matrix{N: m.N, V: v}
}

// Transpose swaps rows and columns: new(i,j) = old(j,i).
func Transpose(m *Matrix) *Matrix {
	out := NewMatrix(m.N)
	for i := 1; i <= m.N; i++ {
		for j := 1; j <= m.N; j++ {
			out.Set(i, j, m.At(j, i))
		}
	}
	return out
}

// Rot2 turns m 180 degrees: new(n+1-i, n+1-j) = old(i,j).
func Rot2(m *Matrix) *Matrix {
	out := NewMatrix(m.N)
	n := m.N
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			ni, nj := RotateIJ(n, i, j, 2)
			out.Set(ni, nj, m.At(i, j))
		}
	}
	return out
}

// InvX reverses the row axis: new(i,j) = old(n+1-i, j).
func InvX(m *Matrix) *Matrix {
	out := NewMatrix(m.N)
	n := m.N
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			out.Set(i, j, m.At(n+1-i, j))
		}
	}
	return out
}

// InvY reverses the column axis: new(i,j) = old(i, n+1-j).
func InvY(m *Matrix) *Matrix {
	out := NewMatrix(m.N)
	n := m.N
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			out.Set(i, j, m.At(i, n+1-j))
		}
	}
	return out
}

// corner identifies one of the four cells of a tile's boundary that an
// orientation enters or exits through.
type corner int

const (
	cornerTL corner = iota
	cornerTR
	cornerBL
	cornerBR
)

// baseTile holds the four fixed orientations of one recursive SFC tile
// family. The generator below (Transpose then Rot2) only works because
// orientation 0 always enters at the top-left and exits at the
// bottom-left, in every family.
type baseTile struct {
	n   int
	ori [4]*Matrix
}

// makeOrientations derives the four orientations of a tile family from
// its orientation-0 member: o1 = Transpose(o0), o2 = Rot2(o1),
// o3 = Rot2(o0).
func makeOrientations(o0 *Matrix) [4]*Matrix {
	o1 := Transpose(o0)
	o2 := Rot2(o1)
	o3 := Rot2(o0)
	return [4]*Matrix{o0, o1, o2, o3}
}

// entryExit returns the (entry, exit) corners of orientation o, which
// are the same for every tile family by construction of makeOrientations.
func entryExit(o int) (corner, corner) {
	switch o {
	case 0:
		return cornerTL, cornerBL
	case 1:
		return cornerTL, cornerTR
	case 2:
		return cornerBR, cornerBL
	default:
		return cornerBR, cornerTR
	}
}

func matrixFromRows(rows [][]int) *Matrix {
	n := len(rows)
	m := NewMatrix(n)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i+1, j+1, v)
		}
	}
	return m
}

// hilbertTile is the 2x2 base curve. Orientation 0 enters at the
// top-left and exits at the bottom-left; the other three follow from
// makeOrientations.
var hilbertTile = baseTile{n: 2, ori: makeOrientations(matrixFromRows([][]int{
	{1, 2},
	{4, 3},
}))}

// peanoTile is the 3x3 base curve: a continuous bijective path that,
// like the other two families, enters orientation 0 at the top-left and
// exits at the bottom-left.
var peanoTile = baseTile{n: 3, ori: makeOrientations(matrixFromRows([][]int{
	{1, 2, 3},
	{8, 7, 4},
	{9, 6, 5},
}))}

// cincoTile is the 5x5 "cinco" base curve, with the same entry and exit
// corners as the other two families.
var cincoTile = baseTile{n: 5, ori: makeOrientations(matrixFromRows([][]int{
	{1, 8, 9, 10, 11},
	{2, 7, 6, 13, 12},
	{3, 4, 5, 14, 15},
	{24, 23, 20, 19, 16},
	{25, 22, 21, 18, 17},
}))}

func tileForFactor(factor int) (*baseTile, bool) {
	switch factor {
	case 2:
		return &hilbertTile, true
	case 3:
		return &peanoTile, true
	case 5:
		return &cincoTile, true
	default:
		return nil, false
	}
}
