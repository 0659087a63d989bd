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

// Package ethash implements the ethash proof-of-work verifier and miner:
// epoch-sized cache and dataset derivation, on-the-fly dataset element
// synthesis, and the Hashimoto mixing loop, plus a bounded epoch cache so
// that validating a stream of headers doesn't rebuild caches per call.
package ethash

import (
	"math/big"

	"github.com/vaultchain/ethash/internal/keccak"
)

// Protocol constants, reproduced exactly from the ethash specification.
const (
	wordBytes           = 4        // bytes per word
	hashBytes           = 64       // hash length in bytes (a cache/dataset item)
	mixBytes            = 128      // width of mix
	hashWords           = hashBytes / wordBytes
	datasetParents      = 256      // number of parents of each dataset element
	cacheRounds         = 3        // number of rounds in cache production
	loopAccesses        = 64       // number of accesses in the hashimoto loop
	epochLength         = 30000    // blocks per epoch
	datasetInitBytes    = 1 << 30  // bytes in dataset at genesis
	datasetGrowthBytes  = 1 << 23  // dataset growth per epoch
	cacheInitBytes      = 1 << 24  // bytes in cache at genesis
	cacheGrowthBytes    = 1 << 17  // cache growth per epoch
	fnvPrime            = 0x01000193
	cacheCacheSizeLimit = 6 // epoch caches held in memory at once

	// maxEpoch bounds the epoch index this package will derive parameters
	// for; block numbers at or beyond it are rejected with
	// ErrParameterOutOfRange. No real chain operates anywhere near this
	// horizon.
	maxEpoch = 1 << 32
)

var maxUint256 = new(big.Int).Lsh(big.NewInt(1), 256)

// EpochParams describes the sizing derived from a block number: the cache
// and dataset byte sizes, and the seed hash used to build the cache. It is
// exposed for tools and diagnostics (see cmd/ethashtool).
type EpochParams struct {
	Epoch     uint64
	CacheSize uint64
	DataSize  uint64
	SeedHash  [32]byte
}

// EpochParamsFor derives the epoch, cache size, dataset size and seed hash
// for blockNumber. It returns ErrParameterOutOfRange if blockNumber falls
// beyond the supported epoch horizon.
func EpochParamsFor(blockNumber uint64) (EpochParams, error) {
	e := epoch(blockNumber)
	if e >= maxEpoch {
		return EpochParams{}, ErrParameterOutOfRange
	}
	return EpochParams{
		Epoch:     e,
		CacheSize: cacheSize(blockNumber),
		DataSize:  datasetSize(blockNumber),
		SeedHash:  seedHash(blockNumber),
	}, nil
}

// epoch returns the epoch index for a block number.
func epoch(blockNumber uint64) uint64 {
	return blockNumber / epochLength
}

// isPrime reports whether n is prime, using trial division by 2 and 3 then
// by 6k±1 up to sqrt(n). n fits in 64 bits throughout this package's use
// (dataset sizes divided by mixBytes stay below 2^49 for every epoch under
// maxEpoch), so plain uint64 multiplication in the loop condition never
// overflows.
func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}
	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// cacheSize returns the size of the ethash verification cache for a block
// number: the largest prime multiple of hashBytes not exceeding
// cacheInitBytes + cacheGrowthBytes*epoch - hashBytes.
func cacheSize(blockNumber uint64) uint64 {
	size := cacheInitBytes + cacheGrowthBytes*epoch(blockNumber) - hashBytes
	for !isPrime(size / hashBytes) {
		size -= 2 * hashBytes
	}
	return size
}

// datasetSize returns the size of the ethash mining dataset for a block
// number: the largest prime multiple of mixBytes not exceeding
// datasetInitBytes + datasetGrowthBytes*epoch - mixBytes.
func datasetSize(blockNumber uint64) uint64 {
	size := datasetInitBytes + datasetGrowthBytes*epoch(blockNumber) - mixBytes
	for !isPrime(size / mixBytes) {
		size -= 2 * mixBytes
	}
	return size
}

// seedHash is the seed used to generate the verification cache and mining
// dataset for the epoch containing blockNumber: Keccak-256 applied epoch
// times to 32 zero bytes.
func seedHash(blockNumber uint64) [32]byte {
	var seed [32]byte
	n := epoch(blockNumber)
	if n == 0 {
		return seed
	}
	hasher := keccak.MakeHasher(keccak.New256())
	for i := uint64(0); i < n; i++ {
		hasher(seed[:], seed[:])
	}
	return seed
}
