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

package sample

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sign samples the values -1 and 1 with equal probability.
type Sign struct {
	dist distuv.Bernoulli
}

// NewSign returns an instance of the Sign sampler.
func NewSign(src rand.Source) *Sign {
	return &Sign{
		dist: distuv.Bernoulli{P: 0.5, Src: src},
	}
}

// Sample samples -1 or 1, each with probability 0.5.
func (s *Sign) Sample() float64 {
	if s.dist.Rand() == 1 {
		return 1
	}
	return -1
}
