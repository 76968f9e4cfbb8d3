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

import "sort"

// FindFactors returns the ascending list of prime factors of ne
// restricted to {2, 3, 5}. ErrUnfactorableNe is returned if ne has any
// other prime factor. ne == 1 returns an empty, non-error list.
func FindFactors(ne int) ([]int, error) {
	if ne < 1 {
		return nil, ErrUnfactorableNe
	}
	var factors []int
	n := ne
	for _, p := range [3]int{2, 3, 5} {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	if n != 1 {
		return nil, ErrUnfactorableNe
	}
	return factors, nil
}

// gridPoint is a 1-based macro-cell position inside a base tile's
// arrangement.
type gridPoint struct{ I, J int }

// travelDir is the direction of travel between two grid-adjacent points.
type travelDir int

const (
	dirNone travelDir = iota
	dirEast
	dirWest
	dirNorth
	dirSouth
)

func direction(a, b gridPoint) travelDir {
	switch {
	case b.J > a.J:
		return dirEast
	case b.J < a.J:
		return dirWest
	case b.I > a.I:
		return dirSouth
	default:
		return dirNorth
	}
}

func opposite(d travelDir) travelDir {
	switch d {
	case dirEast:
		return dirWest
	case dirWest:
		return dirEast
	case dirNorth:
		return dirSouth
	case dirSouth:
		return dirNorth
	default:
		return dirNone
	}
}

func sideCorners(d travelDir) [2]corner {
	switch d {
	case dirEast:
		return [2]corner{cornerTR, cornerBR}
	case dirWest:
		return [2]corner{cornerTL, cornerBL}
	case dirNorth:
		return [2]corner{cornerTL, cornerTR}
	default: // dirSouth
		return [2]corner{cornerBL, cornerBR}
	}
}

func facesDirection(d travelDir, c corner) bool {
	if d == dirNone {
		return true
	}
	sides := sideCorners(d)
	return c == sides[0] || c == sides[1]
}

// selectOrientation picks, among a tile family's four orientations, the
// one whose entry corner faces the direction the curve arrived from and
// whose exit corner faces the direction it leaves toward next,
// preferring an exact exit match over an exact entry match and breaking
// remaining ties toward the lower-numbered orientation. This keeps
// consecutive cells of the parent-level ordering adjacent across block
// seams.
func selectOrientation(dirIn, dirOut travelDir) int {
	best := 0
	bestExitMiss, bestEntryMiss := 2, 2
	for o := 0; o < 4; o++ {
		entry, exit := entryExit(o)
		exitMiss := 0
		if !facesDirection(dirOut, exit) {
			exitMiss = 1
		}
		entryMiss := 0
		if !facesDirection(opposite(dirIn), entry) {
			entryMiss = 1
		}
		if exitMiss < bestExitMiss || (exitMiss == bestExitMiss && entryMiss < bestEntryMiss) {
			best, bestExitMiss, bestEntryMiss = o, exitMiss, entryMiss
		}
	}
	return best
}

func positionsByValue(m *Matrix) []gridPoint {
	pts := make([]gridPoint, m.N*m.N)
	for i := 1; i <= m.N; i++ {
		for j := 1; j <= m.N; j++ {
			pts[m.At(i, j)-1] = gridPoint{i, j}
		}
	}
	return pts
}

// applyOrientation reorients an arbitrary square grid, not just a fixed
// base tile, so previously-assembled panel content can be re-entered
// from a different corner at each level of the recursive substitution.
func applyOrientation(m *Matrix, o int) *Matrix {
	switch o {
	case 0:
		return m.clone()
	case 1:
		return Transpose(m)
	case 2:
		return Rot2(Transpose(m))
	default:
		return Rot2(m)
	}
}

// MakePanelSFC builds one panel's Ne x Ne visit order: a bijection
// {1..Ne^2} -> {1..Ne}^2 assembled by recursive tile substitution over
// Ne's {2,3,5} factorization.
func MakePanelSFC(ne int) (*Matrix, error) {
	if ne == 1 {
		m := NewMatrix(1)
		m.Set(1, 1, 1)
		return m, nil
	}
	factors, err := FindFactors(ne)
	if err != nil {
		return nil, err
	}

	first, _ := tileForFactor(factors[0])
	current := first.ori[0].clone()

	for _, f := range factors[1:] {
		tile, _ := tileForFactor(f)
		positions := positionsByValue(tile.ori[0])
		s := current.N
		total := f * f
		newGrid := NewMatrix(s * f)

		for k := 1; k <= total; k++ {
			pos := positions[k-1]
			dirIn, dirOut := dirNone, dirNone
			if k > 1 {
				dirIn = direction(positions[k-2], pos)
			}
			if k < total {
				dirOut = direction(pos, positions[k])
			}
			o := selectOrientation(dirIn, dirOut)
			content := applyOrientation(current, o)

			rowStart := (pos.I - 1) * s
			colStart := (pos.J - 1) * s
			offset := (k - 1) * s * s
			for ci := 1; ci <= s; ci++ {
				for cj := 1; cj <= s; cj++ {
					newGrid.Set(rowStart+ci, colStart+cj, content.At(ci, cj)+offset)
				}
			}
		}
		current = newGrid
	}
	return current, nil
}

// CubeGid is the global SFC index of every element, values 1..6*Ne^2.
type CubeGid struct {
	Ne     int
	Panels [6]*Matrix
}

func (g *CubeGid) At(ei, ej, panel int) int {
	return g.Panels[panel-1].At(ei, ej)
}

// globalPanelOrder is the fixed order the panels are concatenated in
// along the global curve.
var globalPanelOrder = [6]int{1, 2, 6, 4, 5, 3}

// panelTransform returns the fixed per-panel orientation applied to the
// plain panel curve before concatenation, chosen so the concatenation
// points coincide and the stitched polyline stays continuous across
// panel seams: panels 1 and 2 have their column axis reversed (InvY),
// panels 3 and 5 are unchanged, panel 4 is orientation 2 with its row
// axis reversed (InvX), and panel 6 is orientation 3.
func panelTransform(base *Matrix, panel int) *Matrix {
	switch panel {
	case 1, 2:
		return InvY(base)
	case 4:
		return InvX(Rot2(Transpose(base)))
	case 6:
		return Rot2(base)
	default: // 3, 5
		return base.clone()
	}
}

// MakeGlobalSFC stitches the six panel curves into one global curve.
func MakeGlobalSFC(ne int) (*CubeGid, error) {
	base, err := MakePanelSFC(ne)
	if err != nil {
		return nil, err
	}
	n2 := ne * ne
	gid := &CubeGid{Ne: ne}
	for idx, panel := range globalPanelOrder {
		off := idx * n2
		oriented := panelTransform(base, panel)
		out := NewMatrix(ne)
		for i := 1; i <= ne; i++ {
			for j := 1; j <= ne; j++ {
				out.Set(i, j, oriented.At(i, j)+off)
			}
		}
		gid.Panels[panel-1] = out
	}
	return gid, nil
}

// balancedSizes splits total into n contiguous-chunk sizes differing by
// at most 1, the larger sizes first.
func balancedSizes(total, n int) []int {
	base := total / n
	rem := total % n
	sizes := make([]int, n)
	for r := 0; r < n; r++ {
		if r < rem {
			sizes[r] = base + 1
		} else {
			sizes[r] = base
		}
	}
	return sizes
}

// SfcMakeCubeRank builds the global curve and slices it into nproc
// contiguous chunks of balanced length, assigning rank r to the r-th
// chunk and local ids 1..|chunk| in curve order.
func SfcMakeCubeRank(ne, nproc int) (nelems []int, cubeRank, cubeLid *ElemGrid, err error) {
	total := NumPanels * ne * ne
	if nproc > total {
		return nil, nil, nil, ErrNprocTooLarge
	}
	gid, err := MakeGlobalSFC(ne)
	if err != nil {
		return nil, nil, nil, err
	}

	nelems = balancedSizes(total, nproc)
	prefix := make([]int, nproc+1)
	for r := 0; r < nproc; r++ {
		prefix[r+1] = prefix[r] + nelems[r]
	}

	cubeRank = NewElemGrid(ne)
	cubeLid = NewElemGrid(ne)
	for p := 1; p <= NumPanels; p++ {
		for i := 1; i <= ne; i++ {
			for j := 1; j <= ne; j++ {
				g := gid.At(i, j, p)
				r := sort.Search(nproc, func(k int) bool { return prefix[k+1] >= g })
				cubeRank.Set(i, j, p, r)
				cubeLid.Set(i, j, p, g-prefix[r])
			}
		}
	}
	return nelems, cubeRank, cubeLid, nil
}
