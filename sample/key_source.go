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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

const keySourceBlock = 512

// KeySource is a random source whose stream is derived from a
// 32-byte key through the salsa20 keystream. Two sources constructed
// with the same key produce identical streams, so every sampler built
// on top of them is reproducible. It implements rand.Source of
// golang.org/x/exp/rand.
type KeySource struct {
	key   [32]byte
	block uint64
	buf   [keySourceBlock]byte
	pos   int
}

// NewKeySource returns a KeySource derived from key.
func NewKeySource(key *[32]byte) *KeySource {
	s := &KeySource{key: *key}
	s.refill()
	return s
}

// refill generates the next keystream block. The block counter serves
// as the salsa20 nonce, so consecutive blocks never repeat.
func (s *KeySource) refill() {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], s.block)

	in := make([]byte, keySourceBlock)
	salsa20.XORKeyStream(s.buf[:], in, nonce[:], &s.key)

	s.block++
	s.pos = 0
}

// Uint64 returns the next 8 keystream bytes as an unsigned integer.
func (s *KeySource) Uint64() uint64 {
	if s.pos == len(s.buf) {
		s.refill()
	}
	v := binary.LittleEndian.Uint64(s.buf[s.pos : s.pos+8])
	s.pos += 8

	return v
}

// Seed restarts the stream at the given keystream block.
func (s *KeySource) Seed(seed uint64) {
	s.block = seed
	s.refill()
}
