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

import "math"

// placeBand lays ranks [startRank, endRank] into box column-major,
// starting at column i1: a rank fills the current column downward and
// overflows into the next column when it runs out of room. It returns
// the exclusive bound of the columns touched.
func placeBand(box *Box, startRank, endRank int, nelems []int, i1 int) int {
	col, row := i1, 0
	for r := startRank; r <= endRank; r++ {
		remaining := nelems[r]
		for remaining > 0 {
			avail := box.Ny - row
			take := avail
			if remaining < take {
				take = remaining
			}
			for k := 0; k < take; k++ {
				box.Set(col, row+k, r)
			}
			row += take
			remaining -= take
			if row == box.Ny {
				row = 0
				col++
			}
		}
	}
	if row > 0 {
		col++
	}
	return col
}

// blockPerimeterRatio returns the mean, over ranks [startRank, endRank],
// of each rank's boundary-cell count (cells with an in-bounds neighbor
// holding a different value) divided by its cell count.
func blockPerimeterRatio(box *Box, startRank, endRank int) float64 {
	perim := make(map[int]int)
	area := make(map[int]int)
	for x := 0; x < box.Nx; x++ {
		for y := 0; y < box.Ny; y++ {
			r := box.At(x, y)
			if r < startRank || r > endRank {
				continue
			}
			area[r]++
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= box.Nx || ny < 0 || ny >= box.Ny {
					continue
				}
				if box.At(nx, ny) != r {
					perim[r]++
					break
				}
			}
		}
	}
	sum, n := 0.0, 0
	for r := startRank; r <= endRank; r++ {
		if area[r] == 0 {
			continue
		}
		sum += float64(perim[r]) / float64(area[r])
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// CalcPerimeterRatio places ranks [startRank, endRank] into box starting
// at column i1 and returns the mean perimeter/area ratio over the placed
// ranks. placeBand's column-major fill carries the within-band cursor
// bookkeeping implicitly.
func CalcPerimeterRatio(box *Box, startRank, endRank int, nelems []int, i1 int) float64 {
	placeBand(box, startRank, endRank, nelems, i1)
	return blockPerimeterRatio(box, startRank, endRank)
}

// FindOptimalBand searches forward from startRank for the split column
// that minimizes the mean perimeter/area ratio of the band [startI, i2).
// Candidate widths are tried in ascending order, each width's end rank
// is the greedy-fit limit (as many ranks as fit without exceeding the
// band's cell capacity), and ties prefer the smaller i2 (guaranteed by
// scanning i2 ascending and only replacing the incumbent on a strictly
// better score). The returned rank is the next rank to start the
// following band at, one past the last rank the chosen band placed.
func FindOptimalBand(nx, ny, nproc, startRank, startI int, nelems []int) (rank, i2 int, err error) {
	if nproc < 4 {
		return 0, 0, ErrNprocTooSmall
	}
	bestRatio := math.Inf(1)
	bestEndRank, bestI2 := -1, -1

	for candI2 := startI + 1; candI2 <= nx; candI2++ {
		capacity := (candI2 - startI) * ny
		sum, r := 0, startRank
		for r < nproc && sum+nelems[r] <= capacity {
			sum += nelems[r]
			r++
		}
		candEnd := r - 1
		if candEnd < startRank {
			continue
		}
		scratch := NewBox(nx, ny)
		ratio := CalcPerimeterRatio(scratch, startRank, candEnd, nelems, startI)
		if ratio < bestRatio {
			bestRatio = ratio
			bestEndRank = candEnd
			bestI2 = candI2
		}
	}
	if bestEndRank < 0 {
		return 0, 0, ErrNprocTooLarge
	}
	return bestEndRank + 1, bestI2, nil
}

// stripe is one of the three (2*Ne) x Ne strips the general band case
// peels bands from, swept in the fixed order (6,1), (2,3), (4,5) so the
// ranks run over the panels as 6,1,2,3,4,5 — the same order the small-
// Nproc special cases group panels in. The polar-entry stripe starts on
// the north cap and crosses its seam into panel 1 at ej=Ne, so its long
// axis maps to decreasing ej; the two equatorial stripes run along
// increasing ei.
type stripe struct {
	panelLo, panelHi int
	alongEj          bool
}

var bandStripes = [3]stripe{{6, 1, true}, {2, 3, false}, {4, 5, false}}

// unfoldStripe copies a (2*Ne) x Ne box's rank assignments onto its two
// panels: the first Ne columns of the long axis land on panelLo, the
// remaining Ne on panelHi.
func unfoldStripe(box *Box, ne int, s stripe, grid *ElemGrid) {
	for x := 0; x < 2*ne; x++ {
		panel, off := s.panelLo, x
		if x >= ne {
			panel, off = s.panelHi, x-ne
		}
		for y := 0; y < ne; y++ {
			if s.alongEj {
				grid.Set(y+1, ne-off, panel, box.At(x, y))
			} else {
				grid.Set(off+1, y+1, panel, box.At(x, y))
			}
		}
	}
}

// BandPartition assigns every element a rank. Nproc in {1,2,3} use
// fixed whole-panel groupings; the general case (Nproc >= 4) splits
// ranks across the three panel-pair stripes in proportion to their
// element counts and peels bands from each stripe via FindOptimalBand.
func BandPartition(ne, nproc int, nelems []int) (*ElemGrid, error) {
	grid := NewElemGrid(ne)

	switch nproc {
	case 1:
		for p := 1; p <= NumPanels; p++ {
			for i := 1; i <= ne; i++ {
				for j := 1; j <= ne; j++ {
					grid.Set(i, j, p, 0)
				}
			}
		}
		return grid, nil
	case 2:
		fill := func(panels []int, r int) {
			for _, p := range panels {
				for i := 1; i <= ne; i++ {
					for j := 1; j <= ne; j++ {
						grid.Set(i, j, p, r)
					}
				}
			}
		}
		fill([]int{1, 2, 6}, 0)
		fill([]int{3, 4, 5}, 1)
		return grid, nil
	case 3:
		fill := func(panels []int, r int) {
			for _, p := range panels {
				for i := 1; i <= ne; i++ {
					for j := 1; j <= ne; j++ {
						grid.Set(i, j, p, r)
					}
				}
			}
		}
		fill([]int{6, 1}, 0)
		fill([]int{2, 3}, 1)
		fill([]int{4, 5}, 2)
		return grid, nil
	}

	// Each stripe holds exactly 2*Ne^2 cells (two whole panels), so the
	// cube's 6*Ne^2 cells split into three equal stripes with no
	// remainder regardless of Nproc. Bands of whole ranks are peeled off
	// each stripe via FindOptimalBand and laid in column-major; a rank
	// whose count doesn't fit the stripe's remaining capacity is split
	// across the stripe boundary, with the remainder carried into the
	// next stripe's first column.
	stripeElems := 2 * ne * ne
	rank, remaining := 0, nelems[0]
	for _, s := range bandStripes {
		box := NewBox(2*ne, ne)
		col, row, placed := 0, 0, 0
		fill := func(r, count int) {
			for k := 0; k < count; k++ {
				box.Set(col, row, r)
				row++
				if row == box.Ny {
					row = 0
					col++
				}
			}
			placed += count
		}
		// The tail of a rank split across the previous stripe boundary
		// finishes here before any band search.
		if remaining < nelems[rank] {
			take := remaining
			if take > stripeElems {
				take = stripeElems
			}
			fill(rank, take)
			remaining -= take
			if remaining == 0 {
				rank++
				if rank < nproc {
					remaining = nelems[rank]
				}
			}
		}
		for placed < stripeElems && rank < nproc {
			// ErrNprocTooLarge from the search means the stripe's
			// remaining columns cannot hold the next whole rank: place
			// what fits and carry the rest over.
			next, _, err := FindOptimalBand(box.Nx, box.Ny, nproc, rank, col, nelems)
			if err != nil {
				next = rank + 1
			}
			for rank < next && placed < stripeElems {
				free := stripeElems - placed
				take := remaining
				if take > free {
					take = free
				}
				fill(rank, take)
				remaining -= take
				if remaining == 0 {
					rank++
					if rank < nproc {
						remaining = nelems[rank]
					}
				}
			}
		}
		unfoldStripe(box, ne, s, grid)
	}
	return grid, nil
}

// bandBalancedSizes gives the last (6*Ne^2 mod Nproc) ranks the +1, the
// opposite convention from the SFC partitioner's balancedSizes.
func bandBalancedSizes(total, n int) []int {
	base := total / n
	rem := total % n
	sizes := make([]int, n)
	for r := 0; r < n; r++ {
		if r >= n-rem {
			sizes[r] = base + 1
		} else {
			sizes[r] = base
		}
	}
	return sizes
}

// BandMakeCubeRank computes the balanced nelems, the rank map from
// BandPartition, and the lid map by scanning the cube panel-major, then
// j-major, then i-major, numbering each rank's cells in the order
// encountered.
func BandMakeCubeRank(ne, nproc int) (nelems []int, cubeRank, cubeLid *ElemGrid, err error) {
	total := NumPanels * ne * ne
	if nproc > total {
		return nil, nil, nil, ErrNprocTooLarge
	}
	nelems = bandBalancedSizes(total, nproc)

	cubeRank, err = BandPartition(ne, nproc, nelems)
	if err != nil {
		return nil, nil, nil, err
	}

	cubeLid = NewElemGrid(ne)
	next := make([]int, nproc)
	for p := 1; p <= NumPanels; p++ {
		for j := 1; j <= ne; j++ {
			for i := 1; i <= ne; i++ {
				r := cubeRank.At(i, j, p)
				next[r]++
				cubeLid.Set(i, j, p, next[r])
			}
		}
	}
	return nelems, cubeRank, cubeLid, nil
}
