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

// NumPanels is the number of faces of the cubed sphere.
const NumPanels = 6

// ElemGrid is a dense [1..Ne, 1..Ne, 1..6] array of ints, the shape shared
// by the rank, lid, gid and color maps. Storage is element-axis fastest,
// panel slowest.
type ElemGrid struct {
	Ne     int
	Values []int
}

// NewElemGrid allocates a grid for a given Ne, zero-initialized.
func NewElemGrid(ne int) *ElemGrid {
	return &ElemGrid{Ne: ne, Values: make([]int, ne*ne*NumPanels)}
}

// NewElemGridFill allocates a grid for a given Ne, filled with v.
func NewElemGridFill(ne, v int) *ElemGrid {
	g := NewElemGrid(ne)
	for i := range g.Values {
		g.Values[i] = v
	}
	return g
}

func (g *ElemGrid) index(ei, ej, panel int) int {
	ne := g.Ne
	return (panel-1)*ne*ne + (ej-1)*ne + (ei - 1)
}

// At returns the value at 1-based (ei, ej, panel).
func (g *ElemGrid) At(ei, ej, panel int) int {
	return g.Values[g.index(ei, ej, panel)]
}

// Set stores v at 1-based (ei, ej, panel).
func (g *ElemGrid) Set(ei, ej, panel, v int) {
	g.Values[g.index(ei, ej, panel)] = v
}

// Box is the band partitioner's scratch array: a (2*Ne) x Ne grid of rank
// numbers, 0-based, initialized to -1. It is scoped to a single band-search
// call and never shared between them.
type Box struct {
	Nx, Ny int
	Values []int
}

// NewBox allocates an nx-by-ny scratch box filled with -1.
func NewBox(nx, ny int) *Box {
	b := &Box{Nx: nx, Ny: ny, Values: make([]int, nx*ny)}
	for i := range b.Values {
		b.Values[i] = -1
	}
	return b
}

func (b *Box) index(ix, iy int) int {
	return ix*b.Ny + iy
}

// At returns the rank at 0-based (ix, iy), or -1 if unfilled.
func (b *Box) At(ix, iy int) int {
	return b.Values[b.index(ix, iy)]
}

// Set stores rank r at 0-based (ix, iy).
func (b *Box) Set(ix, iy, r int) {
	b.Values[b.index(ix, iy)] = r
}
