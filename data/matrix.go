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

// Package data provides matrix and vector plumbing for the
// generator: random structures filled by a sample.Sampler and
// covariance matrix helpers built on gonum.
package data

import (
	"gonum.org/v1/gonum/mat"

	"github.com/fentec-project/gaussmi/sample"
)

// NewRandomMatrix returns a new rows x cols matrix with elements
// sampled by the provided sample.Sampler.
func NewRandomMatrix(rows, cols int, sampler sample.Sampler) *mat.Dense {
	values := make([]float64, rows*cols)
	for i := range values {
		values[i] = sampler.Sample()
	}

	return mat.NewDense(rows, cols, values)
}

// NewRandomVector returns a new slice of n elements sampled by the
// provided sample.Sampler.
func NewRandomVector(n int, sampler sample.Sampler) []float64 {
	vec := make([]float64, n)
	for i := range vec {
		vec[i] = sampler.Sample()
	}

	return vec
}
