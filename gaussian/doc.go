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

// Package gaussian generates paired Gaussian random vectors x and y
// with an exactly known mutual information.
//
// The vectors have the same length and are generally statistically
// dependent. The main operation is GenerateExample, which samples
// data for x and y and computes the exact mutual information (MI)
// between them from the closed form of the generative model, so that
// MI estimators can be validated against ground truth.
//
// To generate 500 samples from two 10-dimensional random vectors:
//
//	g := gaussian.NewGenerator(seed)
//	dataX, dataY, mi, genParams, err := g.GenerateExample(gaussian.NewExampleParams(10, 500))
//
// dataX and dataY are 10x500 matrices, mi is the mutual information
// in nats, and genParams holds the parameters of the generative
// model.
//
// The value of the mutual information is controlled through the
// correlation limits: magnitudes of the per-dimension latent
// correlation coefficients are drawn from the interval RhoLims.
// Setting both limits close to 1 generates data with large mutual
// information:
//
//	params := gaussian.NewExampleParams(10, 500)
//	params.RhoLims = [2]float64{0.8, 0.9}
//
// The package also exposes the building blocks of GenerateExample:
// SampleCovMatrix draws random covariance matrices with a target
// conditioning number, GaussianMI computes the exact mutual
// information of an arbitrary joint Gaussian covariance matrix, and
// EstimateMVNMI estimates the mutual information from data through
// the empirical covariance matrix.
package gaussian
