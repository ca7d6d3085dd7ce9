// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/types"
)

// Capability names what an actor wants to do. The guard decides per
// actor/owner pair; it keeps no state of its own.
type Capability uint8

const (
	CanMint Capability = iota
	CanTransfer
	CanBurn
	CanDelegate
	CanRenew
	CanAdminister
)

// allowed evaluates the guard decision rules, tightest scope first.
// owner is the principal whose tokens or records are affected; it is
// ignored for CanMint and CanAdminister.
func (c *Contract) allowed(
	db database.Database,
	sender types.Address,
	capability Capability,
	owner types.Address,
) (bool, error) {
	switch capability {
	case CanMint:
		admin, has, err := ledger.GetAdministrator(db)
		if err != nil {
			return false, err
		}
		if has && sender == admin {
			return true, nil
		}
		return ledger.IsGlobalOperator(db, sender)
	case CanAdminister:
		admin, has, err := ledger.GetAdministrator(db)
		if err != nil {
			return false, err
		}
		return has && sender == admin, nil
	case CanBurn, CanDelegate:
		return sender == owner, nil
	case CanTransfer:
		if sender == owner {
			return true, nil
		}
		if !c.genesis.OperatorTransfer {
			return false, nil
		}
		return ledger.IsOperator(db, sender, owner)
	case CanRenew:
		if sender == owner {
			return true, nil
		}
		return ledger.IsOperator(db, sender, owner)
	default:
		return false, nil
	}
}

func (c *Contract) authorize(
	db database.Database,
	sender types.Address,
	capability Capability,
	owner types.Address,
) error {
	ok, err := c.allowed(db, sender, capability, owner)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}
