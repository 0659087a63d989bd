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

import "errors"

// A failed proof-of-work check is never one of these: Validate returns
// (false, nil) for consensus-invalid headers. These sentinels cover an
// out-of-range parameter and a caller cancelling Mine. There is no error
// kind for collaborator failures: the Keccak wrappers and Header.SealHash
// have no error result.
var (
	// ErrParameterOutOfRange is returned when a block number implies an
	// epoch beyond the supported horizon (see maxEpoch), and by Mine for a
	// nil or non-positive difficulty.
	ErrParameterOutOfRange = errors.New("ethash: block number implies an unsupported epoch")

	// ErrCancelled is returned by Mine when the caller's cancel channel
	// fires before a satisfying nonce is found.
	ErrCancelled = errors.New("ethash: mining cancelled")
)
