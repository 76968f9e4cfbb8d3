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

// NbrGIJ is the result of ConvertNbrGIJ: the in-bounds quadrature
// coordinate within the neighboring element, plus that element's own
// coordinate and panel.
type NbrGIJ struct {
	Gi, Gj, Ei, Ej, Panel int
}

var cornerNbrGIJ = NbrGIJ{-1, -1, -1, -1, -1}

// ConvertNbrGIJ maps a possibly out-of-bounds quadrature-point coordinate
// to the in-bounds point on the correct neighboring element. gi/gj overflow
// past [1, Ngq] denotes a point belonging to an adjacent element along that
// axis: the global index is decomposed into an element offset and a
// within-element offset, the element offset is folded into ei/ej and
// resolved via ConvertNbrEIJ, and the within-element offset is rotated by
// the returned rot on the Ngq x Ngq local grid.
func ConvertNbrGIJ(ne, ngq, gi, gj, ei, ej, panel int) NbrGIJ {
	offI := Quotient(ngq, gi-1)
	offJ := Quotient(ngq, gj-1)

	localGi := gi - offI*ngq
	localGj := gj - offJ*ngq
	adjEi := ei + offI
	adjEj := ej + offJ

	nbr := ConvertNbrEIJ(ne, adjEi, adjEj, panel)
	if nbr.Panel < 0 {
		return cornerNbrGIJ
	}

	gi2, gj2 := RotateIJ(ngq, localGi, localGj, nbr.Rot)
	return NbrGIJ{gi2, gj2, nbr.Ei, nbr.Ej, nbr.Panel}
}
