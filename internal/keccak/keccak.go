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

// Package keccak wraps the legacy Keccak variants used by ethash. Ethereum's
// mainnet PoW predates the NIST SHA-3 finalization, so both the header hash
// and the cache/dataset hashes use the original Keccak padding, not
// standardized SHA3-256/512.
package keccak

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// New256 returns a Keccak-256 hash.Hash, reusable across Sum256/Sum512-style
// batch calls via hasher (see Hasher).
func New256() hash.Hash {
	return sha3.NewLegacyKeccak256()
}

// New512 returns a Keccak-512 hash.Hash.
//
// Used for ethash's cache and dataset construction and, via Sum512, for
// the Hashimoto seed.
func New512() hash.Hash {
	return sha3.NewLegacyKeccak512()
}

// Sum256 calculates and returns the Keccak-256 hash of the concatenation of
// data.
func Sum256(data ...[]byte) []byte {
	d := New256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Sum512 calculates and returns the Keccak-512 hash of the concatenation of
// data.
func Sum512(data ...[]byte) []byte {
	d := New512()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Hasher is a repetitive hasher allowing the same hash.Hash to be reused
// between hash runs instead of allocating a new one every call. The
// returned function is not thread safe.
type Hasher func(dest []byte, data []byte)

// readerHash is satisfied by the sha3 state: Read drains the sponge
// directly into dest without the extra copy Sum(nil) would make.
type readerHash interface {
	hash.Hash
	Read([]byte) (int, error)
}

// MakeHasher adapts a hash.Hash into a Hasher. It panics if h does not also
// implement io.Reader, which every hash returned by New256/New512 does.
func MakeHasher(h hash.Hash) Hasher {
	rh, ok := h.(readerHash)
	if !ok {
		panic("keccak: hash implementation has no Read method")
	}
	outputLen := rh.Size()
	return func(dest []byte, data []byte) {
		rh.Reset()
		rh.Write(data)
		rh.Read(dest[:outputLen])
	}
}
