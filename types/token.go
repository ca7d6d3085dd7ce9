// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// TokenID identifies a non-fungible token within one ledger instance.
// A u32 keeps the keyspace small; ids are never required to be reused.
type TokenID uint32

const TokenIDSize = 4

func (t TokenID) Bytes() []byte {
	b := make([]byte, TokenIDSize)
	binary.BigEndian.PutUint32(b, uint32(t))
	return b
}

func TokenIDFromBytes(b []byte) TokenID {
	return TokenID(binary.BigEndian.Uint32(b))
}

// Hex matches the CIS-2 convention of hex-encoding token ids.
func (t TokenID) Hex() string { return fmt.Sprintf("%08x", uint32(t)) }

func (t TokenID) String() string { return strconv.FormatUint(uint64(t), 10) }

func ParseTokenID(s string) (TokenID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return TokenID(v), nil
}

// TokenAmount is a single-byte amount. Tokens are non-fungible, so any
// valid amount is 0 or 1.
type TokenAmount uint8

func (a TokenAmount) Valid() bool { return a <= 1 }

// StandardID is a namespaced tag used for capability discovery.
type StandardID string

// Receiver is the destination of a transfer. Hook names an entrypoint to
// invoke on the receiving contract and is ignored for accounts.
type Receiver struct {
	Address Address `serialize:"true" json:"address"`
	Hook    string  `serialize:"true" json:"hook,omitempty"`
}
