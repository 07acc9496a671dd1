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
	"github.com/fentec-project/gaussmi/sample"
)

// ExampleParams represents configuration parameters for a single
// GenerateExample call.
type ExampleParams struct {
	// Dimension of x and y.
	Dim int
	// Number of samples to generate.
	NSamples int
	// Interval from which the magnitudes of the latent correlation
	// coefficients are drawn, with an exclusive upper limit. Limits
	// closer to 1 give data with larger mutual information. With
	// equal limits the magnitude is the constant RhoLims[0], which
	// therefore must stay strictly below 1.
	RhoLims [2]float64
	// Target conditioning numbers of the covariance matrices of x
	// and y.
	Cond [2]float64
}

// NewExampleParams returns ExampleParams for the given dimension and
// number of samples, with the default correlation limits (0, 1) and
// conditioning numbers (10, 10).
func NewExampleParams(dim, nSamples int) *ExampleParams {
	return &ExampleParams{
		Dim:      dim,
		NSamples: nSamples,
		RhoLims:  [2]float64{0, 1},
		Cond:     [2]float64{10, 10},
	}
}

func (p *ExampleParams) validate() error {
	if p.Dim <= 0 {
		return errors.Wrapf(internal.ErrInvalidDim, "dim = %d", p.Dim)
	}
	if p.NSamples <= 0 {
		return errors.Wrapf(internal.ErrInvalidSamples, "nSamples = %d", p.NSamples)
	}

	low, high := p.RhoLims[0], p.RhoLims[1]
	if low < 0 || high > 1 || low > high || low == 1 {
		return errors.Wrapf(internal.ErrInvalidRhoRange, "rhoLims = %v", p.RhoLims)
	}

	if p.Cond[0] < 1 || p.Cond[1] < 1 {
		return errors.Wrapf(internal.ErrInvalidCond, "cond = %v", p.Cond)
	}

	return nil
}

// GenParams holds the parameters of the generative model behind one
// example, the ground truth needed to reproduce or audit it.
type GenParams struct {
	// Marginal covariance matrices of x and y.
	SigmaXX *mat.SymDense
	SigmaYY *mat.SymDense
	// Rhoz[i] is the correlation between the i-th latent coordinate
	// of x and the i-th latent coordinate of y.
	Rhoz []float64
	// The square roots through which the latent samples were
	// colored: SqrtXX * SqrtXX^T = SigmaXX and likewise for y.
	SqrtXX *mat.Dense
	SqrtYY *mat.Dense
}

// JointCovariance reconstructs the full covariance matrix of (x, y),
// block-structured as [sigma_xx sigma_xy; sigma_yx sigma_yy] with
// sigma_xy = SqrtXX * diag(Rhoz) * SqrtYY^T. Feeding the result to
// GaussianMI reproduces the exact mutual information returned by
// GenerateExample.
func (p *GenParams) JointCovariance() (*mat.SymDense, error) {
	var cross mat.Dense
	cross.Mul(scaleColumns(p.SqrtXX, p.Rhoz), p.SqrtYY.T())

	return data.AssembleJoint(p.SigmaXX, p.SigmaYY, &cross)
}

// GenerateExample samples from a multivariate Gaussian model of two
// dependent random vectors x and y and computes the exact mutual
// information between them.
//
// Each latent coordinate pair of x and y is bivariate normal with a
// correlation coefficient drawn from params.RhoLims, and the latent
// samples of each side are colored by an independently sampled
// covariance matrix. The mutual information of the latent pairs has
// a closed form, and the coloring transforms are invertible and
// applied to each side separately, so the returned value is exact
// for the output data as well.
//
// It returns the dim x nSamples data matrices of x and y, the mutual
// information in nats, and the parameters of the generative model.
func (g *Generator) GenerateExample(params *ExampleParams) (*mat.Dense, *mat.Dense, float64, *GenParams, error) {
	if err := params.validate(); err != nil {
		return nil, nil, 0, nil, err
	}
	dim, n := params.Dim, params.NSamples

	// Correlation coefficients between the latent coordinates:
	// magnitudes from RhoLims, signs flipped with probability 0.5.
	rhoz := data.NewRandomVector(dim,
		sample.NewUniformRange(params.RhoLims[0], params.RhoLims[1], g.src))
	sign := sample.NewSign(g.src)
	for i := range rhoz {
		rhoz[i] *= sign.Sample()
	}

	mi := 0.0
	for _, rho := range rhoz {
		mi -= 0.5 * math.Log(1-rho*rho)
	}

	normal := sample.NewStandardNormal(g.src)
	zx := data.NewRandomMatrix(dim, n, normal)
	zy := mat.NewDense(dim, n, nil)
	for i := 0; i < dim; i++ {
		rho := rhoz[i]
		noise := math.Sqrt(1 - rho*rho)
		for j := 0; j < n; j++ {
			zy.Set(i, j, rho*zx.At(i, j)+noise*normal.Sample())
		}
	}

	sigmaXX, spectrumXX, vecsXX, err := g.SampleCovMatrix(dim, params.Cond[0])
	if err != nil {
		return nil, nil, 0, nil, err
	}
	sigmaYY, spectrumYY, vecsYY, err := g.SampleCovMatrix(dim, params.Cond[1])
	if err != nil {
		return nil, nil, 0, nil, err
	}

	sqrtXX := scaleColumns(vecsXX, sqrtSlice(spectrumXX))
	sqrtYY := scaleColumns(vecsYY, sqrtSlice(spectrumYY))

	var dataX, dataY mat.Dense
	dataX.Mul(sqrtXX, zx)
	dataY.Mul(sqrtYY, zy)

	genParams := &GenParams{
		SigmaXX: sigmaXX,
		SigmaYY: sigmaYY,
		Rhoz:    rhoz,
		SqrtXX:  sqrtXX,
		SqrtYY:  sqrtYY,
	}

	return &dataX, &dataY, mi, genParams, nil
}

func sqrtSlice(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = math.Sqrt(v)
	}

	return out
}
