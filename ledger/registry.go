// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/codec"
	"github.com/ava-labs/licensevm/types"
)

// SetImplementors overwrites the implementor list for a standard. There
// is no merge.
func SetImplementors(db database.Database, id types.StandardID, implementors []types.ContractAddress) error {
	v, err := codec.Marshal(&Implementors{Addresses: implementors})
	if err != nil {
		return err
	}
	return db.Put(ImplementorsKey(id), v)
}

// GetImplementors returns the registered implementors for a standard,
// reporting whether any are registered.
func GetImplementors(db database.Database, id types.StandardID) ([]types.ContractAddress, bool, error) {
	v, err := db.Get(ImplementorsKey(id))
	if err == database.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	impls := new(Implementors)
	if _, err := codec.Unmarshal(v, impls); err != nil {
		return nil, false, err
	}
	return impls.Addresses, true, nil
}
