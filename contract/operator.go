// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/event"
	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/types"
)

type OperatorUpdate struct {
	Operator types.Address `serialize:"true" json:"operator"`
	Add      bool          `serialize:"true" json:"add"`
}

// UpdateOperator enables or disables operators of the sender's own
// address. Updates are idempotent. Emits one UpdateOperator event per
// entry. The sender can only ever change its own operator set, so no
// further authorization applies.
func (c *Contract) UpdateOperator(sender types.Address, updates []OperatorUpdate) error {
	return c.update(func(db database.Database) error {
		now := c.now()
		for _, u := range updates {
			var err error
			if u.Add {
				err = ledger.AddOperator(db, sender, u.Operator)
			} else {
				err = ledger.RemoveOperator(db, sender, u.Operator)
			}
			if err != nil {
				return err
			}
			if err := c.logger.Log(&event.Event{
				Tmstmp:   now,
				Typ:      event.UpdateOperator,
				Owner:    sender.String(),
				Operator: u.Operator.String(),
				Add:      u.Add,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddGlobalOperator delegates minting to operator. Administrative only.
func (c *Contract) AddGlobalOperator(sender types.Address, operator types.Address) error {
	return c.update(func(db database.Database) error {
		if err := c.authorize(db, sender, CanAdminister, types.Address{}); err != nil {
			return err
		}
		return ledger.AddGlobalOperator(db, operator)
	})
}

// RemoveGlobalOperator revokes mint delegation. Administrative only.
func (c *Contract) RemoveGlobalOperator(sender types.Address, operator types.Address) error {
	return c.update(func(db database.Database) error {
		if err := c.authorize(db, sender, CanAdminister, types.Address{}); err != nil {
			return err
		}
		return ledger.RemoveGlobalOperator(db, operator)
	})
}
