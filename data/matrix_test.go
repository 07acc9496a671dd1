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

package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/fentec-project/gaussmi/data"
	"github.com/fentec-project/gaussmi/internal"
	"github.com/fentec-project/gaussmi/sample"
)

func TestNewRandomMatrix(t *testing.T) {
	rows, cols := 5, 3
	sampler := sample.NewUniformRange(-1, 1, rand.NewSource(1))

	x := data.NewRandomMatrix(rows, cols, sampler)

	r, c := x.Dims()
	assert.Equal(t, rows, r)
	assert.Equal(t, cols, c)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.GreaterOrEqual(t, x.At(i, j), -1.0)
			assert.Less(t, x.At(i, j), 1.0)
		}
	}
}

func TestNewRandomVector(t *testing.T) {
	sampler := sample.NewUniform(1, rand.NewSource(1))

	vec := data.NewRandomVector(7, sampler)

	assert.Equal(t, 7, len(vec))
	for _, v := range vec {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestCovarianceMatrix(t *testing.T) {
	// Two variables over three observations; the second row is twice
	// the first, so the sample covariance is [[1, 2], [2, 4]].
	x := mat.NewDense(2, 3, []float64{
		1, 2, 3,
		2, 4, 6,
	})

	cov := data.CovarianceMatrix(x)

	assert.Equal(t, 2, cov.SymmetricDim())
	assert.InDelta(t, 1, cov.At(0, 0), 1e-12)
	assert.InDelta(t, 2, cov.At(0, 1), 1e-12)
	assert.InDelta(t, 2, cov.At(1, 0), 1e-12)
	assert.InDelta(t, 4, cov.At(1, 1), 1e-12)
}

func TestJointRoundTrip(t *testing.T) {
	sigmaXX := mat.NewDense(2, 2, []float64{2, 0.5, 0.5, 1})
	sigmaYY := mat.NewDense(2, 2, []float64{3, -1, -1, 2})
	cross := mat.NewDense(2, 2, []float64{0.1, 0.2, 0.3, 0.4})

	joint, err := data.AssembleJoint(sigmaXX, sigmaYY, cross)
	if err != nil {
		t.Fatalf("Error during joint covariance assembly: %v", err)
	}

	xx, xy, yy, err := data.JointBlocks(joint, 2)
	if err != nil {
		t.Fatalf("Error during joint covariance splitting: %v", err)
	}

	assert.True(t, mat.EqualApprox(sigmaXX, xx, 1e-15), "sigma_xx block should round-trip")
	assert.True(t, mat.EqualApprox(cross, xy, 1e-15), "sigma_xy block should round-trip")
	assert.True(t, mat.EqualApprox(sigmaYY, yy, 1e-15), "sigma_yy block should round-trip")
}

func TestJointBlocksInvalidShape(t *testing.T) {
	cov := mat.NewDense(3, 3, nil)

	_, _, _, err := data.JointBlocks(cov, 2)
	assert.ErrorIs(t, err, internal.ErrInvalidDim)

	_, _, _, err = data.JointBlocks(cov, 0)
	assert.ErrorIs(t, err, internal.ErrInvalidDim)
}

func TestAssembleJointInvalidShape(t *testing.T) {
	square := mat.NewDense(2, 2, nil)
	tall := mat.NewDense(3, 2, nil)

	_, err := data.AssembleJoint(square, square, tall)
	assert.ErrorIs(t, err, internal.ErrInvalidDim)
}
