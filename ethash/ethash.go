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
	"math/big"
	"time"
)

// Mode selects how an Ethash instance behaves, mirroring the fake modes a
// consensus engine needs for chain-assembly tests without paying for real
// PoW verification on every block.
type Mode int

const (
	// ModeNormal builds real caches and runs Hashimoto for every check.
	ModeNormal Mode = iota
	// ModeTest uses undersized caches/datasets, for fast algorithm tests.
	ModeTest
	// ModeFake accepts every seal as valid without running Hashimoto.
	ModeFake
	// ModeFullFake accepts every header without any consensus check.
	ModeFullFake
)

// Config are the tunable parameters of an Ethash instance.
type Config struct {
	PowMode Mode

	// CacheCacheSizeLimit bounds how many epoch caches are held in memory
	// at once. Zero means the spec default (6).
	CacheCacheSizeLimit int
}

// Ethash is a proof-of-work verifier and miner implementing the ethash
// algorithm: epoch-derived cache and dataset sizing, on-the-fly dataset
// element synthesis from a bounded epoch cache LRU, and the Hashimoto
// mixing loop.
type Ethash struct {
	config Config
	caches *epochCacheSet

	// Hooks for testing, mirroring the reference implementation's own
	// fake-mode test hooks.
	fakeFail  *uint64
	fakeDelay time.Duration

	shared *Ethash
}

// New creates an Ethash instance per config.
func New(config Config) *Ethash {
	if config.PowMode == ModeFake || config.PowMode == ModeFullFake {
		return &Ethash{config: config}
	}
	return &Ethash{
		config: config,
		caches: newEpochCacheSetMode(config.CacheCacheSizeLimit, config.PowMode == ModeTest),
	}
}

// NewTester creates a small, fast Ethash instance for algorithm tests. It
// still builds real caches, just against the ModeTest sizing overrides
// used by tests in this package.
func NewTester() *Ethash {
	return New(Config{PowMode: ModeTest, CacheCacheSizeLimit: 1})
}

// NewFaker creates an Ethash instance that accepts every seal as valid.
func NewFaker() *Ethash {
	return New(Config{PowMode: ModeFake})
}

// NewFakeFailer creates an Ethash instance that accepts every seal as valid
// except for the one block number given.
func NewFakeFailer(fail uint64) *Ethash {
	e := New(Config{PowMode: ModeFake})
	e.fakeFail = &fail
	return e
}

// NewFakeDelayer creates an Ethash instance that accepts every seal as
// valid, after sleeping delay first — useful for exercising callers'
// handling of slow verification.
func NewFakeDelayer(delay time.Duration) *Ethash {
	e := New(Config{PowMode: ModeFake})
	e.fakeDelay = delay
	return e
}

// NewFullFaker creates an Ethash instance that accepts every header without
// running any consensus check whatsoever.
func NewFullFaker() *Ethash {
	return New(Config{PowMode: ModeFullFake})
}

var sharedEthash = New(Config{PowMode: ModeNormal, CacheCacheSizeLimit: cacheCacheSizeLimit})

// Shared returns an Ethash instance backed by one process-wide epoch cache
// set, for callers that don't need an isolated cache budget.
func Shared() *Ethash {
	return &Ethash{shared: sharedEthash}
}

func (e *Ethash) engine() *Ethash {
	if e.shared != nil {
		return e.shared
	}
	return e
}

// Validate checks whether header's nonce satisfies its difficulty and, if
// header claims a mix digest, that it matches the one Hashimoto produces.
// It returns (false, nil) for any consensus-invalid header — validation
// never errors on bad input, only on an out-of-range block number. The
// header's SealHash has no error result, so no collaborator failure can be
// reported through this error.
func (e *Ethash) Validate(header Header) (valid bool, err error) {
	eng := e.engine()

	switch eng.config.PowMode {
	case ModeFullFake:
		return true, nil
	case ModeFake:
		if eng.fakeDelay > 0 {
			time.Sleep(eng.fakeDelay)
		}
		if eng.fakeFail != nil && *eng.fakeFail == header.NumberU64() {
			return false, nil
		}
		return true, nil
	}

	difficulty := header.Difficulty()
	if difficulty == nil || difficulty.Sign() <= 0 {
		return false, nil
	}

	number := header.NumberU64()
	handle, err := eng.caches.get(number)
	if err != nil {
		return false, err
	}

	digest, result := Hashimoto(handle.dataSize, newCacheLookup(handle.data), header.SealHash(), header.NonceU64())

	if header.MixDigest() != ([32]byte{}) && header.MixDigest() != digest {
		return false, nil
	}

	threshold := new(big.Int).Div(maxUint256, difficulty)
	return new(big.Int).SetBytes(result[:]).Cmp(threshold) < 0, nil
}
