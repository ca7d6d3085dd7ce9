// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/types"
)

// AddOperator enables operator for owner. Succeeds even if the operator
// is already enabled.
func AddOperator(db database.Database, owner types.Address, operator types.Address) error {
	return db.Put(OperatorKey(owner, operator), nil)
}

// RemoveOperator disables operator for owner. Succeeds even if the
// operator was not enabled.
func RemoveOperator(db database.Database, owner types.Address, operator types.Address) error {
	return db.Delete(OperatorKey(owner, operator))
}

func IsOperator(db database.Database, candidate types.Address, owner types.Address) (bool, error) {
	return db.Has(OperatorKey(owner, candidate))
}

// OperatorsOf lists every operator enabled by owner.
func OperatorsOf(db database.Database, owner types.Address) ([]types.Address, error) {
	prefix := OperatorPrefix(owner)
	it := db.NewIteratorWithPrefix(prefix)
	defer it.Release()

	var operators []types.Address
	for it.Next() {
		k := it.Key()
		if len(k) < len(prefix) {
			return nil, ErrCorruptKey
		}
		op, _, err := types.AddressFromBytes(k[len(prefix):])
		if err != nil {
			return nil, ErrCorruptKey
		}
		operators = append(operators, op)
	}
	return operators, it.Error()
}

// AllOperators walks the whole per-owner operator index in key order.
func AllOperators(db database.Database, f func(owner types.Address, operator types.Address) error) error {
	it := db.NewIteratorWithPrefix([]byte{operatorPrefix, ByteDelimiter})
	defer it.Release()

	for it.Next() {
		k := it.Key()
		if len(k) < 2 {
			return ErrCorruptKey
		}
		owner, n, err := types.AddressFromBytes(k[2:])
		if err != nil {
			return ErrCorruptKey
		}
		rest := k[2+n:]
		if len(rest) < 2 || rest[0] != ByteDelimiter {
			return ErrCorruptKey
		}
		operator, _, err := types.AddressFromBytes(rest[1:])
		if err != nil {
			return ErrCorruptKey
		}
		if err := f(owner, operator); err != nil {
			return err
		}
	}
	return it.Error()
}

// AddGlobalOperator enables operator to mint on the administrator's
// behalf. Idempotent.
func AddGlobalOperator(db database.Database, operator types.Address) error {
	return db.Put(GlobalOperatorKey(operator), nil)
}

// RemoveGlobalOperator revokes mint delegation. Idempotent.
func RemoveGlobalOperator(db database.Database, operator types.Address) error {
	return db.Delete(GlobalOperatorKey(operator))
}

func IsGlobalOperator(db database.Database, candidate types.Address) (bool, error) {
	return db.Has(GlobalOperatorKey(candidate))
}

// GlobalOperators lists every global mint operator.
func GlobalOperators(db database.Database) ([]types.Address, error) {
	prefix := []byte{globalOperatorPrefix, ByteDelimiter}
	it := db.NewIteratorWithPrefix(prefix)
	defer it.Release()

	var operators []types.Address
	for it.Next() {
		k := it.Key()
		op, _, err := types.AddressFromBytes(k[len(prefix):])
		if err != nil {
			return nil, ErrCorruptKey
		}
		operators = append(operators, op)
	}
	return operators, it.Error()
}
