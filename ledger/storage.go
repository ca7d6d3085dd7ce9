// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger implements the ownership ledger, the operator registry
// and the standard support registry over a key-value substrate.
package ledger

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/codec"
	"github.com/ava-labs/licensevm/license"
	"github.com/ava-labs/licensevm/types"
)

// 0x0/ (singletons)
//   -> administrator
// 0x1/ (token existence + metadata)
//   -> [token id] => TokenMetadata
// 0x2/ (owned tokens)
//   -> [address]/[token id]
// 0x3/ (per-owner operators)
//   -> [owner]/[operator]
// 0x4/ (global mint operators)
//   -> [operator]
// 0x5/ (standard implementors)
//   -> [standard id] => Implementors
// 0x6/ (license records)
//   -> [token id] => license.Record
const (
	singletonPrefix      = 0x0
	tokenPrefix          = 0x1
	ownedPrefix          = 0x2
	operatorPrefix       = 0x3
	globalOperatorPrefix = 0x4
	implementorPrefix    = 0x5
	licensePrefix        = 0x6
)

// ByteDelimiter separates key components.
const ByteDelimiter byte = '/'

var administratorKey = []byte{singletonPrefix, ByteDelimiter, 'a', 'd', 'm', 'i', 'n'}

func init() {
	codec.RegisterType(&TokenMetadata{})
	codec.RegisterType(&Implementors{})
}

// TokenMetadata is the URL record attached to every existing token.
type TokenMetadata struct {
	// URL follows RFC1738.
	URL string `serialize:"true" json:"url"`
	// Hash is an optional hash of the content at URL.
	Hash string `serialize:"true" json:"hash"`
}

// Implementors is the list of contract addresses implementing a standard.
type Implementors struct {
	Addresses []types.ContractAddress `serialize:"true" json:"addresses"`
}

func TokenKey(id types.TokenID) []byte {
	return append([]byte{tokenPrefix, ByteDelimiter}, id.Bytes()...)
}

func OwnedKey(owner types.Address, id types.TokenID) []byte {
	b := append(OwnedTokenPrefix(owner), id.Bytes()...)
	return b
}

// OwnedTokenPrefix is the iterator prefix covering every token owned by
// one address.
func OwnedTokenPrefix(owner types.Address) []byte {
	b := append([]byte{ownedPrefix, ByteDelimiter}, owner.Bytes()...)
	return append(b, ByteDelimiter)
}

func OperatorKey(owner types.Address, operator types.Address) []byte {
	b := append(OperatorPrefix(owner), operator.Bytes()...)
	return b
}

// OperatorPrefix is the iterator prefix covering every operator enabled
// by one owner.
func OperatorPrefix(owner types.Address) []byte {
	b := append([]byte{operatorPrefix, ByteDelimiter}, owner.Bytes()...)
	return append(b, ByteDelimiter)
}

func GlobalOperatorKey(operator types.Address) []byte {
	return append([]byte{globalOperatorPrefix, ByteDelimiter}, operator.Bytes()...)
}

func ImplementorsKey(id types.StandardID) []byte {
	return append([]byte{implementorPrefix, ByteDelimiter}, []byte(id)...)
}

func LicenseKey(id types.TokenID) []byte {
	return append([]byte{licensePrefix, ByteDelimiter}, id.Bytes()...)
}

// ParseOwnedKey decodes the owner and token id out of an owned-token key.
func ParseOwnedKey(k []byte) (types.Address, types.TokenID, error) {
	if len(k) < 2 || k[0] != ownedPrefix {
		return types.Address{}, 0, ErrCorruptKey
	}
	owner, n, err := types.AddressFromBytes(k[2:])
	if err != nil {
		return types.Address{}, 0, ErrCorruptKey
	}
	rest := k[2+n:]
	if len(rest) != 1+types.TokenIDSize || rest[0] != ByteDelimiter {
		return types.Address{}, 0, ErrCorruptKey
	}
	return owner, types.TokenIDFromBytes(rest[1:]), nil
}

// HasToken reports whether the token exists.
func HasToken(db database.KeyValueReader, id types.TokenID) (bool, error) {
	return db.Has(TokenKey(id))
}

func GetTokenMetadata(db database.KeyValueReader, id types.TokenID) (*TokenMetadata, bool, error) {
	v, err := db.Get(TokenKey(id))
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	md := new(TokenMetadata)
	if _, err := codec.Unmarshal(v, md); err != nil {
		return nil, false, err
	}
	return md, true, nil
}

func PutTokenMetadata(db database.KeyValueWriter, id types.TokenID, md *TokenMetadata) error {
	v, err := codec.Marshal(md)
	if err != nil {
		return err
	}
	return db.Put(TokenKey(id), v)
}

func GetLicense(db database.KeyValueReader, id types.TokenID) (*license.Record, bool, error) {
	v, err := db.Get(LicenseKey(id))
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	r := new(license.Record)
	if _, err := codec.Unmarshal(v, r); err != nil {
		return nil, false, err
	}
	return r, true, nil
}

func PutLicense(db database.KeyValueWriter, id types.TokenID, r *license.Record) error {
	v, err := codec.Marshal(r)
	if err != nil {
		return err
	}
	return db.Put(LicenseKey(id), v)
}

// GetAdministrator returns the contract administrator, reporting whether
// one has been set.
func GetAdministrator(db database.KeyValueReader) (types.Address, bool, error) {
	v, err := db.Get(administratorKey)
	if err == database.ErrNotFound {
		return types.Address{}, false, nil
	}
	if err != nil {
		return types.Address{}, false, err
	}
	addr, _, err := types.AddressFromBytes(v)
	if err != nil {
		return types.Address{}, false, err
	}
	return addr, true, nil
}

func SetAdministrator(db database.KeyValueWriter, addr types.Address) error {
	return db.Put(administratorKey, addr.Bytes())
}
