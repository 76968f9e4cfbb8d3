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

// PartitionKind selects which partitioner MakeCubeRank dispatches to: a
// tagged variant rather than runtime interface dispatch, since metrics
// depend only on the resulting rank/lid maps, not on which partitioner
// produced them.
type PartitionKind int

const (
	Sfc PartitionKind = iota
	Band
)

// MakeCubeRank dispatches to SfcMakeCubeRank or BandMakeCubeRank.
func MakeCubeRank(kind PartitionKind, ne, nproc int) (nelems []int, cubeRank, cubeLid *ElemGrid, err error) {
	switch kind {
	case Band:
		return BandMakeCubeRank(ne, nproc)
	default:
		return SfcMakeCubeRank(ne, nproc)
	}
}

// RankStats is the mean and standard deviation, across ranks, of one
// partitioner's per-rank communication ratio.
type RankStats struct {
	Mean float64
	Std  float64
}

// CommunicationComparison is one (Ne, Ngq, Nproc) point of
// CompareCommunicationRatios.
type CommunicationComparison struct {
	Nproc            int
	Sfc              RankStats
	Band             RankStats
	TotalSfc         int
	TotalBand        int
	ReductionPercent float64
}

func rankStats(numPts [2][]int) RankStats {
	n := len(numPts[0])
	ratios := make([]float64, 0, n)
	for r := 0; r < n; r++ {
		if numPts[0][r] == 0 {
			continue
		}
		ratios = append(ratios, float64(numPts[1][r])/float64(numPts[0][r]))
	}
	if len(ratios) == 0 {
		return RankStats{}
	}
	mean := 0.0
	for _, v := range ratios {
		mean += v
	}
	mean /= float64(len(ratios))
	variance := 0.0
	for _, v := range ratios {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(ratios))
	return RankStats{Mean: mean, Std: math.Sqrt(variance)}
}

func sumSlice(s []int) int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// CompareCommunicationRatios sweeps Nproc over [1, maxNproc], building
// both partitions at (ne, ngq), and reports each partitioner's per-rank
// communication-ratio statistics together with the percentage reduction
// in total cross-rank traffic the SFC partitioner gives over the band
// partitioner.
func CompareCommunicationRatios(ne, ngq, maxNproc int) ([]CommunicationComparison, error) {
	out := make([]CommunicationComparison, 0, maxNproc)
	for nproc := 1; nproc <= maxNproc; nproc++ {
		_, sfcRank, _, err := SfcMakeCubeRank(ne, nproc)
		if err != nil {
			return nil, err
		}
		_, bandRank, _, err := BandMakeCubeRank(ne, nproc)
		if err != nil {
			return nil, err
		}

		_, sfcPts := GlobalCommunicationRatio(ne, ngq, nproc, sfcRank)
		_, bandPts := GlobalCommunicationRatio(ne, ngq, nproc, bandRank)

		totalSfc := sumSlice(sfcPts[1])
		totalBand := sumSlice(bandPts[1])
		reduction := 0.0
		if totalBand != 0 {
			reduction = float64(totalBand-totalSfc) / float64(totalBand) * 100
		}

		out = append(out, CommunicationComparison{
			Nproc:            nproc,
			Sfc:              rankStats(sfcPts),
			Band:             rankStats(bandPts),
			TotalSfc:         totalSfc,
			TotalBand:        totalBand,
			ReductionPercent: reduction,
		})
	}
	return out, nil
}
