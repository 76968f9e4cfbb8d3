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

import "errors"

var (
	// ErrUnfactorableNe is returned by the SFC partitioner when Ne has a
	// prime factor outside {2, 3, 5}.
	ErrUnfactorableNe = errors.New("cubepartition: ne is not a {2,3,5}-product")

	// ErrNprocTooSmall is returned by FindOptimalBand when Nproc < 4; the
	// caller should use the small-Nproc special cases instead.
	ErrNprocTooSmall = errors.New("cubepartition: nproc below band search minimum of 4")

	// ErrNprocTooLarge is returned when Nproc exceeds the number of
	// elements on the cube (Nproc > 6*Ne^2).
	ErrNprocTooLarge = errors.New("cubepartition: nproc exceeds element count")

	// ErrMissingLid is returned by MakeElemCoord when a local id in
	// [1, nelem] has no owning cell in the rank/lid maps.
	ErrMissingLid = errors.New("cubepartition: local id missing from rank map")
)
