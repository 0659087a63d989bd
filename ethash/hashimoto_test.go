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
	"testing"

	"github.com/vaultchain/ethash/internal/keccak"
)

// P6: Hashimoto is deterministic in (dataSize, cache, headerHash, nonce),
// and a cache-synthesized accessor must match a fully materialized one.
func TestHashimotoConsistency(t *testing.T) {
	var seed [32]byte
	seed[0] = 0x99
	cache := generateCache(testCacheBytes, seed)

	rows := uint32(testDatasetBytes / hashBytes)
	full := make([][hashBytes]byte, rows)
	keccak512 := keccak.MakeHasher(keccak.New512())
	for i := uint32(0); i < rows; i++ {
		full[i] = generateDatasetItem(cache, i, keccak512)
	}
	materialized := func(i uint32) [hashBytes]byte { return full[i] }

	var headerHash [32]byte
	headerHash[0] = 0xab
	nonce := uint64(123456789)

	mixCache, resultCache := Hashimoto(testDatasetBytes, newCacheLookup(cache), headerHash, nonce)
	mixFull, resultFull := Hashimoto(testDatasetBytes, materialized, headerHash, nonce)

	if mixCache != mixFull {
		t.Errorf("mix mismatch: cache-backed %x, materialized %x", mixCache, mixFull)
	}
	if resultCache != resultFull {
		t.Errorf("result mismatch: cache-backed %x, materialized %x", resultCache, resultFull)
	}

	mixAgain, resultAgain := Hashimoto(testDatasetBytes, newCacheLookup(cache), headerHash, nonce)
	if mixAgain != mixCache || resultAgain != resultCache {
		t.Error("Hashimoto is not deterministic across repeated calls")
	}
}

func TestHashimotoNonceSensitivity(t *testing.T) {
	var seed [32]byte
	cache := generateCache(testCacheBytes, seed)
	var headerHash [32]byte

	_, r1 := Hashimoto(testDatasetBytes, newCacheLookup(cache), headerHash, 1)
	_, r2 := Hashimoto(testDatasetBytes, newCacheLookup(cache), headerHash, 2)
	if r1 == r2 {
		t.Fatal("Hashimoto produced identical results for different nonces")
	}
}
