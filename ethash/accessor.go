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

import "github.com/vaultchain/ethash/internal/keccak"

// cacheLookup binds an immutable cache buffer into a Lookup that recomputes
// each dataset element on demand via generateDatasetItem (C3). This is the
// "light verification" accessor: the dataset itself is never materialized.
//
// The returned Lookup is not safe for concurrent use; each Hashimoto call
// (goroutine) must get its own via newCacheLookup, since keccak512's
// underlying hash.Hash is stateful.
func newCacheLookup(cache []byte) Lookup {
	keccak512 := keccak.MakeHasher(keccak.New512())
	return func(i uint32) [hashBytes]byte {
		return generateDatasetItem(cache, i, keccak512)
	}
}
