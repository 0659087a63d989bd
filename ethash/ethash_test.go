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
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testHeader is a minimal Header implementation for exercising Validate and
// Mine without depending on any real chain header/RLP type.
type testHeader struct {
	number     uint64
	nonce      uint64
	mixDigest  [32]byte
	difficulty *big.Int
	sealHash   [32]byte
}

func (h *testHeader) NumberU64() uint64        { return h.number }
func (h *testHeader) NonceU64() uint64         { return h.nonce }
func (h *testHeader) MixDigest() [32]byte      { return h.mixDigest }
func (h *testHeader) Difficulty() *big.Int     { return h.difficulty }
func (h *testHeader) SealHash() [32]byte       { return h.sealHash }

// TestMineThenValidate mines a real nonce against a low difficulty target
// with a test-sized dataset, then validates the resulting header — the
// end-to-end scenario spec §8 calls for (minus a published golden vector,
// which needs the real mainnet-sized dataset).
func TestMineThenValidate(t *testing.T) {
	e := NewTester()

	h := &testHeader{
		number:     epochLength + 1,
		difficulty: big.NewInt(4),
		sealHash:   [32]byte{0x01, 0x02, 0x03},
	}

	nonce, mix, err := e.Mine(h, h.difficulty, nil)
	require.NoError(t, err)

	h.nonce = nonce
	h.mixDigest = mix

	valid, err := e.Validate(h)
	require.NoError(t, err)
	require.True(t, valid, "mined nonce must validate")
}

// Scenario 6: mutating the mix digest causes Validate to reject, all else
// equal.
func TestValidateRejectsWrongMixDigest(t *testing.T) {
	e := NewTester()

	h := &testHeader{
		number:     epochLength + 1,
		difficulty: big.NewInt(4),
		sealHash:   [32]byte{0x0a},
	}
	nonce, mix, err := e.Mine(h, h.difficulty, nil)
	require.NoError(t, err)

	h.nonce = nonce
	h.mixDigest = mix
	h.mixDigest[0] ^= 0xff // corrupt it

	valid, err := e.Validate(h)
	require.NoError(t, err)
	require.False(t, valid, "corrupted mix digest must fail validation")
}

// P7: validate accepts a zero mix digest unconditionally on that check
// (not yet sealed), but still enforces the difficulty threshold.
func TestValidateZeroMixDigestSkipsCheck(t *testing.T) {
	e := NewTester()
	h := &testHeader{
		number:     epochLength + 1,
		difficulty: big.NewInt(4),
		sealHash:   [32]byte{0x0b},
	}
	nonce, _, err := e.Mine(h, h.difficulty, nil)
	require.NoError(t, err)
	h.nonce = nonce
	// h.mixDigest left as the zero value.

	valid, err := e.Validate(h)
	require.NoError(t, err)
	require.True(t, valid)
}

func TestValidateRejectsAboveThreshold(t *testing.T) {
	e := NewTester()
	h := &testHeader{
		number:     epochLength + 1,
		difficulty: new(big.Int).Lsh(big.NewInt(1), 250), // absurdly hard
		nonce:      1,
		sealHash:   [32]byte{0x0c},
	}
	valid, err := e.Validate(h)
	require.NoError(t, err)
	require.False(t, valid)
}

func TestValidateRejectsNonPositiveDifficulty(t *testing.T) {
	e := NewTester()
	h := &testHeader{number: 1, difficulty: big.NewInt(0)}
	valid, err := e.Validate(h)
	require.NoError(t, err)
	require.False(t, valid)
}

func TestFakeModes(t *testing.T) {
	full := NewFullFaker()
	h := &testHeader{difficulty: big.NewInt(0)} // would fail real validation
	valid, err := full.Validate(h)
	require.NoError(t, err)
	require.True(t, valid)

	faker := NewFaker()
	valid, err = faker.Validate(h)
	require.NoError(t, err)
	require.True(t, valid)

	failer := NewFakeFailer(7)
	h.number = 7
	valid, err = failer.Validate(h)
	require.NoError(t, err)
	require.False(t, valid)

	h.number = 8
	valid, err = failer.Validate(h)
	require.NoError(t, err)
	require.True(t, valid)

	delayer := NewFakeDelayer(10 * time.Millisecond)
	start := time.Now()
	_, err = delayer.Validate(h)
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestMineRespectsCancel(t *testing.T) {
	e := NewTester()
	h := &testHeader{
		number:   epochLength + 1,
		sealHash: [32]byte{0x0d},
	}
	cancel := make(chan struct{})
	close(cancel)

	_, _, err := e.Mine(h, big.NewInt(1000000), cancel)
	require.ErrorIs(t, err, ErrCancelled)
}

// Reproduces the concern behind the reference implementation's own
// TestCacheFileEvict: many goroutines validating headers scattered across
// many epochs must not crash or deadlock the epoch cache LRU.
func TestConcurrentValidateAcrossEpochs(t *testing.T) {
	e := New(Config{PowMode: ModeTest, CacheCacheSizeLimit: 3})

	const workers = 8
	const epochs = 12
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for ep := 0; ep < epochs; ep++ {
				h := &testHeader{
					number:     uint64(ep)*epochLength + 1,
					difficulty: big.NewInt(1),
					nonce:      uint64(w*epochs + ep),
					sealHash:   [32]byte{byte(w), byte(ep)},
				}
				_, _ = e.Validate(h)
			}
		}(w)
	}
	wg.Wait()
}

func TestSharedInstance(t *testing.T) {
	a := Shared()
	b := Shared()
	require.Same(t, a.engine(), b.engine(), "Shared() must reuse one backing instance")
}
