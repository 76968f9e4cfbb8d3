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

// edge indexes into panelNeighbors
const (
	edgeEast = iota
	edgeWest
	edgeNorth
	edgeSouth
)

// panelEdge names the panel reached by crossing an edge and the rotation a
// vector defined on the source element picks up in doing so.
type panelEdge struct {
	panel int
	rot   int
}

// panelNeighbors is the fixed six-face adjacency table: the four
// equatorial panels wrap east/west among themselves with no rotation, and
// attach to the cap panels (5 south, 6 north) with the rotations fixed by
// convention there. The cap panels' own four edges are listed explicitly
// rather than derived, since the inversion is only true face-to-face (not
// simply "negate rot") once east/west are involved.
var panelNeighbors [NumPanels + 1][4]panelEdge

func init() {
	NeighborInit()
}

// NeighborInit (re)builds the fixed panel-rotation table. Go's package
// init() already does this once at program start; calling it again is
// safe and idempotent. The table is read-only after construction.
func NeighborInit() {
	panelNeighbors[1] = [4]panelEdge{
		edgeEast:  {2, 0},
		edgeWest:  {4, 0},
		edgeNorth: {6, 0},
		edgeSouth: {5, 0},
	}
	panelNeighbors[2] = [4]panelEdge{
		edgeEast:  {3, 0},
		edgeWest:  {1, 0},
		edgeNorth: {6, 3},
		edgeSouth: {5, 1},
	}
	panelNeighbors[3] = [4]panelEdge{
		edgeEast:  {4, 0},
		edgeWest:  {2, 0},
		edgeNorth: {6, 2},
		edgeSouth: {5, 2},
	}
	panelNeighbors[4] = [4]panelEdge{
		edgeEast:  {1, 0},
		edgeWest:  {3, 0},
		edgeNorth: {6, 1},
		edgeSouth: {5, 3},
	}
	panelNeighbors[5] = [4]panelEdge{
		edgeEast:  {2, 3},
		edgeWest:  {4, 1},
		edgeNorth: {1, 0},
		edgeSouth: {3, 2},
	}
	panelNeighbors[6] = [4]panelEdge{
		edgeEast:  {2, 1},
		edgeWest:  {4, 3},
		edgeNorth: {3, 2},
		edgeSouth: {1, 0},
	}
}

// Quotient returns the floored quotient of i by n: the unique q with
// q*n <= i < (q+1)*n, for any integer i including negatives.
func Quotient(n, i int) int {
	q := i / n
	r := i % n
	if r != 0 && (r < 0) != (n < 0) {
		q--
	}
	return q
}

// RotateIJ rotates 1-based (i, j) coordinates by rot quarter turns
// counter-clockwise inside an n x n grid. Inputs may lie outside [1, n];
// the formulas apply unchanged.
func RotateIJ(n, i, j, rot int) (int, int) {
	switch ((rot % 4) + 4) % 4 {
	case 1:
		return j, n + 1 - i
	case 2:
		return n + 1 - i, n + 1 - j
	case 3:
		return n + 1 - j, i
	default:
		return i, j
	}
}

// NbrEIJ is the result of ConvertNbrEIJ: the in-bounds element coordinate
// on the correct neighboring panel, and the rotation any vector defined on
// the source element must undergo to be expressed in that panel's frame.
type NbrEIJ struct {
	Ei, Ej, Panel, Rot int
}

// cornerNbrEIJ is the corner sentinel: diagonal cube-corner neighbors
// are undefined.
var cornerNbrEIJ = NbrEIJ{-1, -1, -1, -1}

// maxNbrHops bounds the single-edge multi-panel crossing loop in
// ConvertNbrEIJ. No valid query needs more than a handful of hops; it only
// guards against a runaway loop on a malformed input.
const maxNbrHops = 1024

// ConvertNbrEIJ maps a possibly out-of-bounds element coordinate on panel
// to the in-bounds coordinate on the correct neighboring panel, together
// with the accumulated rotation. A coordinate on the boundary (= 1 or =
// Ne) is in-bounds; 0 and Ne+1 are the first out-of-bounds values.
//
// Exactly one axis out of bounds is resolved by crossing the corresponding
// edge via panelNeighbors; if the result is still out of bounds (more than
// one panel-width crossed, e.g. ei = 2*Ne + k) the crossing repeats until
// both coordinates land in range. Both axes out of bounds at once is the
// undefined cube corner and yields the sentinel.
func ConvertNbrEIJ(ne, ei, ej, panel int) NbrEIJ {
	rot := 0
	for hop := 0; hop < maxNbrHops; hop++ {
		inEi := ei >= 1 && ei <= ne
		inEj := ej >= 1 && ej <= ne
		if inEi && inEj {
			return NbrEIJ{ei, ej, panel, rot}
		}
		if !inEi && !inEj {
			return cornerNbrEIJ
		}

		var edge int
		if !inEi {
			if ei > ne {
				edge, ei = edgeEast, ei-ne
			} else {
				edge, ei = edgeWest, ei+ne
			}
		} else {
			if ej > ne {
				edge, ej = edgeNorth, ej-ne
			} else {
				edge, ej = edgeSouth, ej+ne
			}
		}

		next := panelNeighbors[panel][edge]
		ei, ej = RotateIJ(ne, ei, ej, next.rot)
		panel = next.panel
		rot = (rot + next.rot) % 4
	}
	return cornerNbrEIJ
}
