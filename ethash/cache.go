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

// generateCache produces a verification cache of the given size (a multiple
// of hashBytes) for seed: a sequential Keccak-512 hash chain seeded from
// seed, followed by cacheRounds passes of Sergio Demian Lerner's
// RandMemoHash algorithm ("Strict Memory Hard Hashing Functions", 2014).
//
// The cache rounds mutate items sequentially in place: item i's update in a
// round reads item i-1 as already updated this round, and the parent
// lookup can point anywhere including forward. This is not parallelizable
// across i within a round.
func generateCache(size uint64, seed [32]byte) []byte {
	n := size / hashBytes
	cache := make([]byte, size)

	keccak512 := keccak.MakeHasher(keccak.New512())

	keccak512(cache[:hashBytes], seed[:])
	for off := uint64(hashBytes); off < size; off += hashBytes {
		keccak512(cache[off:off+hashBytes], cache[off-hashBytes:off])
	}

	temp := make([]byte, hashBytes)
	for round := 0; round < cacheRounds; round++ {
		for i := uint64(0); i < n; i++ {
			srcOff := ((i + n - 1) % n) * hashBytes
			dstOff := i * hashBytes

			v := binary.LittleEndian.Uint32(cache[dstOff:]) % uint32(n)
			xorOff := uint64(v) * hashBytes

			xorBytes(temp, cache[srcOff:srcOff+hashBytes], cache[xorOff:xorOff+hashBytes])
			keccak512(cache[dstOff:dstOff+hashBytes], temp)
		}
	}
	return cache
}

// xorBytes sets dst[i] = a[i] ^ b[i] for the shared length of a and b. It's
// a trivial loop, not worth reaching for a dependency over: even
// go-ethereum's own common/bitutil.XORBytes, which this mirrors, is a
// hand-rolled internal helper rather than a pulled-in library.
func xorBytes(dst, a, b []byte) {
	for i := 0; i < len(dst) && i < len(a) && i < len(b); i++ {
		dst[i] = a[i] ^ b[i]
	}
}
