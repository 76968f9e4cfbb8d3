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

// edgeOffsets gives the (di, dj) step for each of the four edge
// directions of a cell, in edgeEast/edgeWest/edgeNorth/edgeSouth order.
var edgeOffsets = [4][2]int{
	edgeEast:  {1, 0},
	edgeWest:  {-1, 0},
	edgeNorth: {0, 1},
	edgeSouth: {0, -1},
}

// adjacentEdgePairs are the direction pairs that meet at one of a
// cell's four corners, used by GlobalCommunicationRatio to avoid
// double-counting a shared corner quadrature point.
var adjacentEdgePairs = [4][2]int{
	{edgeEast, edgeNorth},
	{edgeNorth, edgeWest},
	{edgeWest, edgeSouth},
	{edgeSouth, edgeEast},
}

func edgeNeighborRank(ne, i, j, panel int, cubeRank *ElemGrid, dir int) int {
	d := edgeOffsets[dir]
	nbr := ConvertNbrEIJ(ne, i+d[0], j+d[1], panel)
	return cubeRank.At(nbr.Ei, nbr.Ej, nbr.Panel)
}

// GlobalPerimeterRatio visits every cell's four edge-neighbors:
// numNbrs[0][r] accumulates owned-cell area and numNbrs[1][r]
// accumulates cross-rank edge count; the returned ratio is the mean,
// over ranks, of numNbrs[1][r] / numNbrs[0][r].
func GlobalPerimeterRatio(ne, nproc int, cubeRank *ElemGrid) (float64, [2][]int) {
	numNbrs := [2][]int{make([]int, nproc), make([]int, nproc)}
	for p := 1; p <= NumPanels; p++ {
		for i := 1; i <= ne; i++ {
			for j := 1; j <= ne; j++ {
				r := cubeRank.At(i, j, p)
				numNbrs[0][r]++
				for dir := 0; dir < 4; dir++ {
					if edgeNeighborRank(ne, i, j, p, cubeRank, dir) != r {
						numNbrs[1][r]++
					}
				}
			}
		}
	}
	sum, n := 0.0, 0
	for r := 0; r < nproc; r++ {
		if numNbrs[0][r] == 0 {
			continue
		}
		sum += float64(numNbrs[1][r]) / float64(numNbrs[0][r])
		n++
	}
	if n == 0 {
		return 0, numNbrs
	}
	return sum / float64(n), numNbrs
}

// GlobalCommunicationRatio is the quadrature-point analogue of
// GlobalPerimeterRatio: area is Ngq^2 points per cell, and each
// cross-rank edge contributes Ngq halo points; a corner quadrature
// point shared by two cross-rank edges of the same cell is counted
// once rather than twice.
func GlobalCommunicationRatio(ne, ngq, nproc int, cubeRank *ElemGrid) (float64, [2][]int) {
	numPts := [2][]int{make([]int, nproc), make([]int, nproc)}
	for p := 1; p <= NumPanels; p++ {
		for i := 1; i <= ne; i++ {
			for j := 1; j <= ne; j++ {
				r := cubeRank.At(i, j, p)
				numPts[0][r] += ngq * ngq

				var crosses [4]bool
				for dir := 0; dir < 4; dir++ {
					crosses[dir] = edgeNeighborRank(ne, i, j, p, cubeRank, dir) != r
					if crosses[dir] {
						numPts[1][r] += ngq
					}
				}
				for _, pair := range adjacentEdgePairs {
					if crosses[pair[0]] && crosses[pair[1]] {
						numPts[1][r]--
					}
				}
			}
		}
	}
	sum, n := 0.0, 0
	for r := 0; r < nproc; r++ {
		if numPts[0][r] == 0 {
			continue
		}
		sum += float64(numPts[1][r]) / float64(numPts[0][r])
		n++
	}
	if n == 0 {
		return 0, numPts
	}
	return sum / float64(n), numPts
}

// MakeCubeColor greedily colors the rank-adjacency graph induced by
// cubeRank, ranks visited in ascending order, each assigned the
// smallest color unused by an already-colored neighbor. Each cell gets
// the color of its rank.
func MakeCubeColor(ne, nproc int, cubeRank *ElemGrid) *ElemGrid {
	adj := make([]map[int]bool, nproc)
	for r := range adj {
		adj[r] = make(map[int]bool)
	}
	for p := 1; p <= NumPanels; p++ {
		for i := 1; i <= ne; i++ {
			for j := 1; j <= ne; j++ {
				r := cubeRank.At(i, j, p)
				for dir := 0; dir < 4; dir++ {
					other := edgeNeighborRank(ne, i, j, p, cubeRank, dir)
					if other != r {
						adj[r][other] = true
						adj[other][r] = true
					}
				}
			}
		}
	}

	colors := make([]int, nproc)
	for r := range colors {
		colors[r] = -1
	}
	for r := 0; r < nproc; r++ {
		used := make(map[int]bool)
		for other := range adj[r] {
			if colors[other] >= 0 {
				used[colors[other]] = true
			}
		}
		c := 1
		for used[c] {
			c++
		}
		colors[r] = c
	}

	grid := NewElemGrid(ne)
	for p := 1; p <= NumPanels; p++ {
		for i := 1; i <= ne; i++ {
			for j := 1; j <= ne; j++ {
				grid.Set(i, j, p, colors[cubeRank.At(i, j, p)])
			}
		}
	}
	return grid
}
