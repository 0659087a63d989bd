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

// fnv is an algorithm inspired by the FNV hash, used as a non-associative
// substitute for XOR when mixing dataset words. Note this multiplies the
// prime by the full 32-bit input, unlike the FNV-1 spec which multiplies
// one octet at a time.
func fnv(a, b uint32) uint32 {
	return a*fnvPrime ^ b
}

// fnvHash mixes data into mix word-by-word using fnv.
func fnvHash(mix, data []uint32) {
	for i := range mix {
		mix[i] = fnv(mix[i], data[i])
	}
}

// generateDatasetItem recomputes the index-th 64-byte dataset element from
// cache: it combines data from datasetParents pseudorandomly selected
// cache rows and hashes the result. keccak512 is a reusable hasher from
// keccak.MakeHasher(keccak.New512()); it is not safe for concurrent use.
func generateDatasetItem(cache []byte, index uint32, keccak512 keccak.Hasher) [hashBytes]byte {
	rows := uint32(len(cache) / hashBytes)

	var mix [hashBytes]byte
	copy(mix[:], cache[(index%rows)*hashBytes:(index%rows)*hashBytes+hashBytes])
	binary.LittleEndian.PutUint32(mix[:4], binary.LittleEndian.Uint32(mix[:4])^index)
	keccak512(mix[:], mix[:])

	var intMix [hashWords]uint32
	for i := range intMix {
		intMix[i] = binary.LittleEndian.Uint32(mix[i*4:])
	}

	var parent [hashWords]uint32
	for k := uint32(0); k < datasetParents; k++ {
		parentIdx := fnv(index^k, intMix[k%hashWords]) % rows
		row := cache[parentIdx*hashBytes : parentIdx*hashBytes+hashBytes]
		for i := range parent {
			parent[i] = binary.LittleEndian.Uint32(row[i*4:])
		}
		fnvHash(intMix[:], parent[:])
	}

	for i, w := range intMix {
		binary.LittleEndian.PutUint32(mix[i*4:], w)
	}
	keccak512(mix[:], mix[:])
	return mix
}
