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
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/fentec-project/gaussmi/data"
	"github.com/fentec-project/gaussmi/internal"
	"github.com/fentec-project/gaussmi/sample"
)

// maxBasisAttempts bounds the redraws of the random orthonormal
// basis when the eigensolver reports a negative minimum eigenvalue.
const maxBasisAttempts = 8

// Generator produces paired Gaussian random vectors with an exactly
// known mutual information. All randomness flows through the single
// random source given at construction, so two Generators built from
// the same seed produce identical output sequences.
//
// A Generator is not safe for concurrent use, since every draw
// mutates the state of its source. For parallel generation give each
// goroutine its own independently seeded instance.
type Generator struct {
	src rand.Source
}

// NewGenerator returns a Generator whose random stream is seeded
// with the given seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{src: rand.NewSource(seed)}
}

// NewGeneratorFromKey returns a Generator whose random stream is
// derived deterministically from a 32-byte key.
func NewGeneratorFromKey(key *[32]byte) *Generator {
	return &Generator{src: sample.NewKeySource(key)}
}

// SampleCovMatrix generates a random symmetric positive-definite
// matrix of size dim x dim whose conditioning number approximates
// cond. The eigenvalues are drawn uniformly from [1, cond], so the
// true conditioning number of the result is itself random, bounded
// near the requested value.
//
// It returns the matrix together with its eigenvalues, sorted in
// descending order, and the matrix holding the corresponding
// eigenvectors in its columns.
func (g *Generator) SampleCovMatrix(dim int, cond float64) (*mat.SymDense, []float64, *mat.Dense, error) {
	if dim <= 0 {
		return nil, nil, nil, errors.Wrapf(internal.ErrInvalidDim, "dim = %d", dim)
	}
	if cond < 1 {
		return nil, nil, nil, errors.Wrapf(internal.ErrInvalidCond, "cond = %v", cond)
	}

	spectrum := data.NewRandomVector(dim, sample.NewUniformRange(1, cond, g.src))
	sort.Sort(sort.Reverse(sort.Float64Slice(spectrum)))

	vecs, err := g.randomBasis(dim)
	if err != nil {
		return nil, nil, nil, err
	}

	return reconstruct(vecs, spectrum), spectrum, vecs, nil
}

// randomBasis draws a random orthonormal basis as the eigenvectors
// of M*M^T for a matrix M with independent standard normal entries.
// M*M^T is positive semi-definite by construction, so a negative
// minimum eigenvalue can only come from floating-point error in the
// eigensolver; such draws are redone a bounded number of times.
func (g *Generator) randomBasis(dim int) (*mat.Dense, error) {
	normal := sample.NewStandardNormal(g.src)
	vecs := &mat.Dense{}

	for attempt := 0; attempt < maxBasisAttempts; attempt++ {
		m := data.NewRandomMatrix(dim, dim, normal)
		var mmT mat.SymDense
		mmT.SymOuterK(1, m)

		var eig mat.EigenSym
		if !eig.Factorize(&mmT, true) {
			return nil, errors.Wrap(internal.ErrEigenDecomposition, "sampling orthonormal basis")
		}
		eig.VectorsTo(vecs)

		// Eigenvalues come back in ascending order.
		if eig.Values(nil)[0] >= 0 {
			break
		}
		// If the last attempt still reports a spuriously negative
		// minimum, the basis is kept anyway: the eigenvalues of M*M^T
		// are discarded, which amounts to clipping them at zero.
	}

	return vecs, nil
}

// reconstruct builds V * diag(spectrum) * V^T, symmetrized to cancel
// floating-point asymmetry of the products.
func reconstruct(vecs *mat.Dense, spectrum []float64) *mat.SymDense {
	dim := len(spectrum)

	var prod mat.Dense
	prod.Mul(scaleColumns(vecs, spectrum), vecs.T())

	cov := mat.NewSymDense(dim, nil)
	for i := 0; i < dim; i++ {
		for j := i; j < dim; j++ {
			cov.SetSym(i, j, (prod.At(i, j)+prod.At(j, i))/2)
		}
	}

	return cov
}

// scaleColumns returns m * diag(s).
func scaleColumns(m *mat.Dense, s []float64) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(i, j)*s[j])
		}
	}

	return out
}
