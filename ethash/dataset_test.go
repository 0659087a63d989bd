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

// P4: generateDatasetItem is a pure function of (cache, index).
func TestGenerateDatasetItemDeterministic(t *testing.T) {
	var seed [32]byte
	seed[0] = 7
	cache := generateCache(testCacheBytes, seed)

	h1 := keccak.MakeHasher(keccak.New512())
	h2 := keccak.MakeHasher(keccak.New512())

	a := generateDatasetItem(cache, 3, h1)
	b := generateDatasetItem(cache, 3, h2)
	if a != b {
		t.Fatal("generateDatasetItem is not deterministic for identical (cache, index)")
	}

	c := generateDatasetItem(cache, 4, h1)
	if a == c {
		t.Fatal("generateDatasetItem produced identical output for different indices")
	}
}

func TestFnvHash(t *testing.T) {
	mix := []uint32{1, 2, 3}
	data := []uint32{0x11111111, 0x22222222, 0x33333333}
	want := []uint32{fnv(1, data[0]), fnv(2, data[1]), fnv(3, data[2])}
	fnvHash(mix, data)
	for i := range mix {
		if mix[i] != want[i] {
			t.Errorf("fnvHash[%d] = %#x, want %#x", i, mix[i], want[i])
		}
	}
}
