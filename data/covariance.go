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

package data

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/fentec-project/gaussmi/internal"
)

// CovarianceMatrix returns the empirical covariance matrix of x,
// treating each row as a variable and each column as an observation.
func CovarianceMatrix(x mat.Matrix) *mat.SymDense {
	rows, _ := x.Dims()
	cov := mat.NewSymDense(rows, nil)
	stat.CovarianceMatrix(cov, x.T(), nil)

	return cov
}

// JointBlocks splits a (2*dim) x (2*dim) joint covariance matrix,
// block-structured as [sigma_xx sigma_xy; sigma_yx sigma_yy], into
// its sigma_xx, sigma_xy and sigma_yy blocks.
// It returns an error if cov does not have the expected shape.
func JointBlocks(cov mat.Matrix, dim int) (xx, xy, yy *mat.Dense, err error) {
	r, c := cov.Dims()
	if dim <= 0 || r != 2*dim || c != 2*dim {
		return nil, nil, nil, errors.Wrapf(internal.ErrInvalidDim,
			"joint covariance of blocks of size %d should be %dx%d, got %dx%d",
			dim, 2*dim, 2*dim, r, c)
	}

	var d mat.Dense
	d.CloneFrom(cov)
	xx = mat.DenseCopyOf(d.Slice(0, dim, 0, dim))
	xy = mat.DenseCopyOf(d.Slice(0, dim, dim, 2*dim))
	yy = mat.DenseCopyOf(d.Slice(dim, 2*dim, dim, 2*dim))

	return xx, xy, yy, nil
}

// AssembleJoint builds the full joint covariance matrix
// [sigma_xx sigma_xy; sigma_xy^T sigma_yy] from the marginal
// covariance matrices of x and y and their cross-covariance.
// All three blocks should be square matrices of the same size.
func AssembleJoint(sigmaXX, sigmaYY, cross mat.Matrix) (*mat.SymDense, error) {
	d, c := sigmaXX.Dims()
	ry, cy := sigmaYY.Dims()
	rc, cc := cross.Dims()
	if d != c || ry != d || cy != d || rc != d || cc != d {
		return nil, errors.Wrap(internal.ErrInvalidDim,
			"joint covariance blocks should be square and of equal size")
	}

	joint := mat.NewSymDense(2*d, nil)
	for i := 0; i < d; i++ {
		for j := i; j < d; j++ {
			joint.SetSym(i, j, sigmaXX.At(i, j))
			joint.SetSym(d+i, d+j, sigmaYY.At(i, j))
		}
		for j := 0; j < d; j++ {
			joint.SetSym(i, d+j, cross.At(i, j))
		}
	}

	return joint, nil
}
