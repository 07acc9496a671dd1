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

package gaussian

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fentec-project/gaussmi/data"
	"github.com/fentec-project/gaussmi/internal"
)

// GaussianMI computes the exact mutual information, in nats, between
// jointly Gaussian random vectors x and y from their joint
// covariance matrix, block-structured as
// [sigma_xx sigma_xy; sigma_yx sigma_yy] with blocks of size dim.
//
// The value is computed as
//
//	MI = -0.5 * log det(I - Bxy*Byx)
//	Bxy = sigma_xx^-1 * sigma_xy
//	Byx = sigma_yy^-1 * sigma_yx
//
// It returns an error if a marginal block is singular or if
// det(I - Bxy*Byx) is not positive, which signals a covariance
// matrix that is not positive definite or numerically corrupted.
func GaussianMI(cov mat.Matrix, dim int) (float64, error) {
	xx, xy, yy, err := data.JointBlocks(cov, dim)
	if err != nil {
		return 0, err
	}

	var xxInv, yyInv mat.Dense
	if err := invert(&xxInv, xx); err != nil {
		return 0, errors.Wrap(err, "inverting sigma_xx")
	}
	if err := invert(&yyInv, yy); err != nil {
		return 0, errors.Wrap(err, "inverting sigma_yy")
	}

	var bxy, byx, prod mat.Dense
	bxy.Mul(&xxInv, xy)
	byx.Mul(&yyInv, xy.T())
	prod.Mul(&bxy, &byx)

	// arg = I - Bxy*Byx
	arg := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			v := -prod.At(i, j)
			if i == j {
				v++
			}
			arg.Set(i, j, v)
		}
	}

	det := mat.Det(arg)
	if math.IsNaN(det) || det <= 0 {
		return 0, errors.Wrapf(internal.ErrNotPosDef, "det(I - Bxy*Byx) = %v", det)
	}

	return -0.5 * math.Log(det), nil
}

// invert computes dst = a^-1. An ill-conditioned but invertible a is
// accepted, since the inverse it yields is still usable; an exactly
// singular one, which gonum reports as an infinite condition number,
// is not.
func invert(dst *mat.Dense, a mat.Matrix) error {
	err := dst.Inverse(a)
	if err == nil {
		return nil
	}
	if c, ok := err.(mat.Condition); ok && !math.IsInf(float64(c), 1) {
		return nil
	}

	return internal.ErrSingularMatrix
}

// EstimateMVNMI estimates the mutual information between x and y
// from samples, assuming the data is Gaussian distributed. The
// estimation is done naively by estimating the covariance matrix
// from the provided data and computing its exact Gaussian mutual
// information.
//
// The rows of d are the dim coordinates of x followed by the dim
// coordinates of y; the columns are the observations. The estimate
// is only as reliable as the empirical covariance matrix: with few
// samples relative to the dimension it can be strongly biased or
// fail on a near-singular matrix.
func EstimateMVNMI(d mat.Matrix) (float64, error) {
	rows, _ := d.Dims()
	if rows <= 0 || rows%2 != 0 {
		return 0, errors.Wrapf(internal.ErrInvalidDim,
			"data should have an even, positive number of rows, got %d", rows)
	}

	return GaussianMI(data.CovarianceMatrix(d), rows/2)
}
