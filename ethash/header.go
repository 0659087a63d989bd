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

import "math/big"

// Header is the minimal view of a block header this package needs. Callers
// implement it over their own chain header type; RLP encoding, Keccak-256
// of that encoding, and the exact field set beyond what's listed here are
// entirely the caller's concern (spec §6 places them out of scope for this
// core).
type Header interface {
	// NumberU64 is the block number, used to derive the epoch and the
	// cache/dataset sizes.
	NumberU64() uint64

	// NonceU64 is the 64-bit PoW nonce.
	NonceU64() uint64

	// MixDigest is the header's claimed mix hash. The zero value means
	// "not yet sealed" and skips the mix-hash equality check in Validate.
	MixDigest() [32]byte

	// Difficulty is the header's difficulty target. Must be positive.
	Difficulty() *big.Int

	// SealHash is Keccak-256 of the header's RLP encoding with the nonce
	// and mix digest fields omitted — the headerHash fed into Hashimoto.
	SealHash() [32]byte
}
