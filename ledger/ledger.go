// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/types"
)

// Mint inserts a token into the existence index and the owner's set,
// creating the metadata record. Fails if the id is already taken.
func Mint(db database.Database, id types.TokenID, owner types.Address, md *TokenMetadata) error {
	has, err := HasToken(db, id)
	if err != nil {
		return err
	}
	if has {
		return ErrTokenExists
	}
	if err := PutTokenMetadata(db, id, md); err != nil {
		return err
	}
	return db.Put(OwnedKey(owner, id), nil)
}

// Burn removes the token from the owner's set, the existence index, the
// metadata map and the license map. The removal is total so invariant 1
// keeps holding.
func Burn(db database.Database, id types.TokenID, owner types.Address) error {
	has, err := HasToken(db, id)
	if err != nil {
		return err
	}
	if !has {
		return ErrInvalidTokenID
	}
	owned, err := db.Has(OwnedKey(owner, id))
	if err != nil {
		return err
	}
	if !owned {
		return ErrInsufficientFunds
	}
	if err := db.Delete(OwnedKey(owner, id)); err != nil {
		return err
	}
	if err := db.Delete(TokenKey(id)); err != nil {
		return err
	}
	return db.Delete(LicenseKey(id))
}

// Transfer moves a token between owners. A zero amount is a successful
// no-op. The from address must currently hold the token.
func Transfer(
	db database.Database,
	id types.TokenID,
	amount types.TokenAmount,
	from types.Address,
	to types.Address,
) error {
	if !amount.Valid() {
		return ErrInvalidAmount
	}
	has, err := HasToken(db, id)
	if err != nil {
		return err
	}
	if !has {
		return ErrInvalidTokenID
	}
	if amount == 0 {
		return nil
	}
	owned, err := db.Has(OwnedKey(from, id))
	if err != nil {
		return err
	}
	if !owned {
		return ErrInsufficientFunds
	}
	if err := db.Delete(OwnedKey(from, id)); err != nil {
		return err
	}
	return db.Put(OwnedKey(to, id), nil)
}

// Balance returns 0 or 1. Fails if the token does not exist.
func Balance(db database.Database, id types.TokenID, addr types.Address) (types.TokenAmount, error) {
	has, err := HasToken(db, id)
	if err != nil {
		return 0, err
	}
	if !has {
		return 0, ErrInvalidTokenID
	}
	owned, err := db.Has(OwnedKey(addr, id))
	if err != nil {
		return 0, err
	}
	if owned {
		return 1, nil
	}
	return 0, nil
}

// TokensOf lists every token currently owned by addr.
func TokensOf(db database.Database, addr types.Address) ([]types.TokenID, error) {
	it := db.NewIteratorWithPrefix(OwnedTokenPrefix(addr))
	defer it.Release()

	var tokens []types.TokenID
	for it.Next() {
		_, id, err := ParseOwnedKey(it.Key())
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, id)
	}
	return tokens, it.Error()
}

// AllOwned walks the whole owned-token index in key order.
func AllOwned(db database.Database, f func(owner types.Address, id types.TokenID) error) error {
	it := db.NewIteratorWithPrefix([]byte{ownedPrefix, ByteDelimiter})
	defer it.Release()

	for it.Next() {
		owner, id, err := ParseOwnedKey(it.Key())
		if err != nil {
			return err
		}
		if err := f(owner, id); err != nil {
			return err
		}
	}
	return it.Error()
}

// AllTokens lists the existence index.
func AllTokens(db database.Database) ([]types.TokenID, error) {
	it := db.NewIteratorWithPrefix([]byte{tokenPrefix, ByteDelimiter})
	defer it.Release()

	var tokens []types.TokenID
	for it.Next() {
		k := it.Key()
		if len(k) != 2+types.TokenIDSize {
			return nil, ErrCorruptKey
		}
		tokens = append(tokens, types.TokenIDFromBytes(k[2:]))
	}
	return tokens, it.Error()
}
