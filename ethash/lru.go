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
	"strconv"
	"sync"

	lru "github.com/hashicorp/golang-lru/simplelru"
	"golang.org/x/sync/singleflight"

	"github.com/vaultchain/ethash/internal/ethlog"
)

// cacheHandle is an immutable, shared-ownership view of one epoch's
// verification cache. Once published into the LRU it is never mutated;
// callers may hold a reference across an entire Hashimoto call even after
// the LRU has evicted the epoch, since Go's GC (not the LRU) owns the
// buffer's lifetime.
type cacheHandle struct {
	epoch     uint64
	seed      [32]byte
	cacheSize uint64
	dataSize  uint64
	data      []byte
}

// epochCacheSet is the epoch cache LRU from spec §3/§4.5/§9: a bounded map
// from epoch to cacheHandle, built lazily and shared build-once across
// concurrent callers landing on the same new epoch.
//
// The reference implementation this is grounded on (classic go-ethereum
// ethash, and etchash's lru.go in the retrieval pack) evicts by hand with a
// linear scan under one lock and pre-generates the next epoch speculatively.
// This version keeps the shared lock but replaces both the eviction policy
// and the build-once mechanism: true LRU via hashicorp/golang-lru's
// simplelru (recommended by spec §9 over the reference's uniform-random
// victim selection), and a singleflight.Group per epoch instead of a
// sync.Once embedded in each cache struct, so a build in flight is shared
// without holding the set's lock for the duration of cache generation.
type epochCacheSet struct {
	mu    sync.Mutex
	cache *lru.LRU
	group singleflight.Group

	limit int

	// testSizes overrides cacheSize/datasetSize with small fixed values,
	// for ModeTest instances where algorithm correctness matters but
	// mainnet-sized caches would make every test slow.
	testSizes bool
}

// testCacheBytes and testDatasetBytes mirror the fixed small sizes used by
// the reference implementation's own test mode (etchash's
// cacheSizeForTesting/dagSizeForTesting): large enough to exercise
// generateCache's RandMemoHash rounds and a handful of Hashimoto accesses,
// small enough to run in milliseconds. Both must stay a multiple of
// mixBytes so datasetSize/hashesInMix arithmetic in Hashimoto holds.
const (
	testCacheBytes   = 1024
	testDatasetBytes = 32 * 1024
)

func newEpochCacheSet(limit int) *epochCacheSet {
	return newEpochCacheSetMode(limit, false)
}

func newEpochCacheSetMode(limit int, testSizes bool) *epochCacheSet {
	if limit <= 0 {
		limit = cacheCacheSizeLimit
	}
	c, _ := lru.NewLRU(limit, func(key, value interface{}) {
		ethlog.Debug("evicting ethash epoch cache", "epoch", key)
	})
	return &epochCacheSet{cache: c, limit: limit, testSizes: testSizes}
}

// get returns the cache handle for blockNumber's epoch, building it if
// necessary. Concurrent callers landing on the same uncached epoch block on
// one build and share its result (build-once semantics); callers on
// different epochs proceed independently.
func (s *epochCacheSet) get(blockNumber uint64) (*cacheHandle, error) {
	e := epoch(blockNumber)
	if e >= maxEpoch {
		return nil, ErrParameterOutOfRange
	}

	if h, ok := s.lookup(e); ok {
		return h, nil
	}

	v, err, _ := s.group.Do(strconv.FormatUint(e, 10), func() (interface{}, error) {
		if h, ok := s.lookup(e); ok {
			return h, nil
		}
		size := cacheSize(blockNumber)
		dataSize := datasetSize(blockNumber)
		if s.testSizes {
			size = testCacheBytes
			dataSize = testDatasetBytes
		}
		seed := seedHash(blockNumber)
		ethlog.Info("generating ethash verification cache", "epoch", e, "size", size)
		h := &cacheHandle{
			epoch:     e,
			seed:      seed,
			cacheSize: size,
			dataSize:  dataSize,
			data:      generateCache(size, seed),
		}
		s.mu.Lock()
		s.cache.Add(e, h)
		s.mu.Unlock()
		return h, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*cacheHandle), nil
}

func (s *epochCacheSet) lookup(e uint64) (*cacheHandle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.cache.Get(e)
	if !ok {
		return nil, false
	}
	return v.(*cacheHandle), true
}

// len reports the number of epoch caches currently held, for tests
// exercising the LRU bound (spec property P8).
func (s *epochCacheSet) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache.Len()
}
