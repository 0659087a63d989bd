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
	"math/rand"
)

// Mine searches for a nonce satisfying difficulty against header, starting
// from a uniformly random nonce and incrementing (with wraparound) until it
// finds one or cancel fires. It polls cancel once per Hashimoto iteration.
//
// Unlike Validate, Mine does not consult header.MixDigest — it's the value
// being produced, not checked.
func (e *Ethash) Mine(header Header, difficulty *big.Int, cancel <-chan struct{}) (nonce uint64, mix [32]byte, err error) {
	eng := e.engine()

	if difficulty == nil || difficulty.Sign() <= 0 {
		return 0, mix, ErrParameterOutOfRange
	}

	number := header.NumberU64()
	handle, err := eng.caches.get(number)
	if err != nil {
		return 0, mix, err
	}

	sealHash := header.SealHash()
	threshold := new(big.Int).Div(maxUint256, difficulty)
	lookup := newCacheLookup(handle.data)

	nonce = rand.Uint64()
	for {
		select {
		case <-cancel:
			return 0, mix, ErrCancelled
		default:
		}

		digest, result := Hashimoto(handle.dataSize, lookup, sealHash, nonce)
		if new(big.Int).SetBytes(result[:]).Cmp(threshold) < 0 {
			return nonce, digest, nil
		}
		nonce++
	}
}
