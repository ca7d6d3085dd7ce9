// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metadata derives token metadata URLs. The derivation is a pure
// function of the token id so it lives outside the ledger.
package metadata

import (
	"fmt"
	"math/bits"

	"golang.org/x/crypto/sha3"
)

// URL appends the token id to the base URL. The byte order of the id is
// swapped first so that ids issued as little-endian counters render as
// the natural incremental number, then formatted as an 8-digit decimal
// with leading zeros.
func URL(baseURL string, tokenID uint32) string {
	return fmt.Sprintf("%s%08d", baseURL, bits.ReverseBytes32(tokenID))
}

// Hash returns the hex-encoded sha3-256 digest of the metadata content,
// for the optional hash field of TokenMetadata events.
func Hash(content []byte) string {
	h := sha3.Sum256(content)
	return fmt.Sprintf("%x", h)
}
