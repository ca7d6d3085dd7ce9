// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package types defines the primitive ledger types.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidAddress = errors.New("invalid address")

type AddressKind uint8

const (
	AddressAccount AddressKind = iota
	AddressContract
)

// ContractAddress identifies a contract instance.
type ContractAddress struct {
	Index    uint64 `serialize:"true" json:"index"`
	Subindex uint64 `serialize:"true" json:"subindex"`
}

func (c ContractAddress) String() string {
	return fmt.Sprintf("<%d,%d>", c.Index, c.Subindex)
}

// Address is either an account address or a contract address. It is
// comparable and can be used directly as a map key.
type Address struct {
	Kind     AddressKind     `serialize:"true" json:"kind"`
	Account  common.Address  `serialize:"true" json:"account"`
	Contract ContractAddress `serialize:"true" json:"contract"`
}

func AccountAddress(a common.Address) Address {
	return Address{Kind: AddressAccount, Account: a}
}

func NewContractAddress(index uint64, subindex uint64) Address {
	return Address{
		Kind:     AddressContract,
		Contract: ContractAddress{Index: index, Subindex: subindex},
	}
}

func (a Address) IsAccount() bool  { return a.Kind == AddressAccount }
func (a Address) IsContract() bool { return a.Kind == AddressContract }

func (a Address) String() string {
	if a.IsContract() {
		return a.Contract.String()
	}
	return a.Account.Hex()
}

// Bytes returns a unique, kind-prefixed encoding used as a key component
// in the ledger keyspace.
func (a Address) Bytes() []byte {
	if a.IsContract() {
		b := make([]byte, 1+16)
		b[0] = byte(AddressContract)
		putUint64(b[1:], a.Contract.Index)
		putUint64(b[9:], a.Contract.Subindex)
		return b
	}
	b := make([]byte, 1+common.AddressLength)
	b[0] = byte(AddressAccount)
	copy(b[1:], a.Account[:])
	return b
}

// AddressFromBytes is the inverse of Bytes. It returns the number of
// bytes consumed so addresses can be decoded out of compound keys.
func AddressFromBytes(b []byte) (Address, int, error) {
	if len(b) == 0 {
		return Address{}, 0, ErrInvalidAddress
	}
	switch AddressKind(b[0]) {
	case AddressAccount:
		if len(b) < 1+common.AddressLength {
			return Address{}, 0, ErrInvalidAddress
		}
		return AccountAddress(common.BytesToAddress(b[1 : 1+common.AddressLength])),
			1 + common.AddressLength, nil
	case AddressContract:
		if len(b) < 1+16 {
			return Address{}, 0, ErrInvalidAddress
		}
		return NewContractAddress(getUint64(b[1:]), getUint64(b[9:])), 1 + 16, nil
	default:
		return Address{}, 0, ErrInvalidAddress
	}
}

// ParseAddress accepts either a hex account address ("0x...") or a
// contract address formatted as "<index,subindex>".
func ParseAddress(s string) (Address, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if !common.IsHexAddress(s) {
			return Address{}, ErrInvalidAddress
		}
		return AccountAddress(common.HexToAddress(s)), nil
	}
	trimmed := strings.TrimSuffix(strings.TrimPrefix(s, "<"), ">")
	parts := strings.SplitN(trimmed, ",", 2)
	if len(parts) != 2 {
		return Address{}, ErrInvalidAddress
	}
	index, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Address{}, ErrInvalidAddress
	}
	subindex, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return Address{}, ErrInvalidAddress
	}
	return NewContractAddress(index, subindex), nil
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (56 - 8*i))
	}
}

func getUint64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(b[i])
	}
	return v
}
