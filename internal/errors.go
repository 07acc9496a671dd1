/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package internal

import (
	"errors"
)

// Errors reported when arguments fail validation at the API boundary.
var (
	ErrInvalidDim      = errors.New("dimension should be a positive integer")
	ErrInvalidSamples  = errors.New("number of samples should be a positive integer")
	ErrInvalidRhoRange = errors.New("correlation limits should satisfy 0 <= low <= high <= 1 with low < 1")
	ErrInvalidCond     = errors.New("conditioning number should be at least 1")
)

// Errors reported when a numerical routine cannot produce a valid
// result from its input.
var (
	ErrSingularMatrix     = errors.New("covariance block is singular")
	ErrNotPosDef          = errors.New("covariance matrix is not positive definite")
	ErrEigenDecomposition = errors.New("eigendecomposition failed to converge")
)
