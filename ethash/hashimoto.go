// Copyright 2024 The vaultchain authors
// This file is part of the vaultchain ethash library.
//
// The vaultchain ethash library is free software: you can redistribute it
// and/or modify it under the terms of the GNU Lesser General Public License
// as published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// The vaultchain ethash library is distributed in the hope that it will be
// useful, but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU Lesser
// General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the vaultchain ethash library. If not, see
// <http://www.gnu.org/licenses/>.

package ethash

import (
	"encoding/binary"

	"github.com/vaultchain/ethash/internal/keccak"
)

// Lookup fetches the i-th 64-byte dataset element. Implementations must be
// pure functions of i for a fixed dataset (the cache-backed accessor in
// this package, or a fully materialized dataset in a full-DAG miner); the
// mixer imposes no other requirement on how i is served.
type Lookup func(i uint32) [hashBytes]byte

// Hashimoto performs the memory-hard mixing loop: it hashes headerHash and
// nonce into a seed, then makes loopAccesses pseudorandom reads through
// lookup over a virtual dataset of dataSize bytes, folding each read into a
// running 128-byte mix with fnv, and finally compresses the mix into the
// 32-byte cmix returned alongside the 32-byte final result.
//
// The accesses are strictly sequential: each one picks the next dataset
// index from the mix state left behind by the previous one, so this
// function cannot be parallelized internally. Independent calls (across
// headers, or across nonces within Mine) are fully parallelizable.
func Hashimoto(dataSize uint64, lookup Lookup, headerHash [32]byte, nonce uint64) (mix [32]byte, result [32]byte) {
	hashesInFull := dataSize / hashBytes
	const hashesInMix = mixBytes / hashBytes // 2
	const wordsInMix = mixBytes / wordBytes  // 32

	seedInput := make([]byte, 32+8)
	copy(seedInput, headerHash[:])
	binary.LittleEndian.PutUint64(seedInput[32:], nonce)
	seed := keccak.Sum512(seedInput)
	seedHead := binary.LittleEndian.Uint32(seed)

	var mixWords [wordsInMix]uint32
	for i := range mixWords {
		mixWords[i] = binary.LittleEndian.Uint32(seed[(i%hashWords)*4:])
	}

	var newData [wordsInMix]uint32
	for i := uint32(0); i < loopAccesses; i++ {
		p := (fnv(i^seedHead, mixWords[i%wordsInMix]) % uint32(hashesInFull/hashesInMix)) * hashesInMix
		for j := uint32(0); j < hashesInMix; j++ {
			item := lookup(p + j)
			for w := 0; w < hashWords; w++ {
				newData[int(j)*hashWords+w] = binary.LittleEndian.Uint32(item[w*4:])
			}
		}
		fnvHash(mixWords[:], newData[:])
	}

	var cmixWords [wordsInMix / 4]uint32
	for i := 0; i < wordsInMix; i += 4 {
		cmixWords[i/4] = fnv(fnv(fnv(mixWords[i], mixWords[i+1]), mixWords[i+2]), mixWords[i+3])
	}
	for i, w := range cmixWords {
		binary.LittleEndian.PutUint32(mix[i*4:], w)
	}

	resultBytes := keccak.Sum256(seed, mix[:])
	copy(result[:], resultBytes)
	return mix, result
}
