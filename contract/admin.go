// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/types"
)

// TransferAdministration reassigns the administrative principal. Only
// the current administrator may do so.
func (c *Contract) TransferAdministration(sender types.Address, newAdmin types.Address) error {
	return c.update(func(db database.Database) error {
		if err := c.authorize(db, sender, CanAdminister, types.Address{}); err != nil {
			return err
		}
		return ledger.SetAdministrator(db, newAdmin)
	})
}

// SetImplementors overwrites the implementor list of a standard.
// Administrative only.
func (c *Contract) SetImplementors(
	sender types.Address,
	id types.StandardID,
	implementors []types.ContractAddress,
) error {
	return c.update(func(db database.Database) error {
		if err := c.authorize(db, sender, CanAdminister, types.Address{}); err != nil {
			return err
		}
		return ledger.SetImplementors(db, id, implementors)
	})
}
