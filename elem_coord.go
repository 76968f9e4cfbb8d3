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

// ElemCoord is one (ei, ej, panel) triple owned by a process.
type ElemCoord struct {
	Ei, Ej, Panel int
}

// MakeElemCoord returns the nelem triples owned by iproc in local-id
// order, or ErrMissingLid if some local id in [1, nelem] is never
// found. It is shared by both partitioners: enumeration depends only on
// the rank and lid maps, not on which partitioner produced them.
func MakeElemCoord(ne, iproc, nelem int, cubeRank, cubeLid *ElemGrid) ([]ElemCoord, error) {
	coords := make([]ElemCoord, nelem)
	found := make([]bool, nelem)
	for p := 1; p <= NumPanels; p++ {
		for j := 1; j <= ne; j++ {
			for i := 1; i <= ne; i++ {
				if cubeRank.At(i, j, p) != iproc {
					continue
				}
				lid := cubeLid.At(i, j, p)
				if lid < 1 || lid > nelem {
					continue
				}
				coords[lid-1] = ElemCoord{Ei: i, Ej: j, Panel: p}
				found[lid-1] = true
			}
		}
	}
	for _, ok := range found {
		if !ok {
			return nil, ErrMissingLid
		}
	}
	return coords, nil
}
