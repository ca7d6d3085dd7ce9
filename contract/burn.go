// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/event"
	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/types"
)

type BurnParams struct {
	Token  types.TokenID     `serialize:"true" json:"token"`
	Owner  types.Address     `serialize:"true" json:"owner"`
	Amount types.TokenAmount `serialize:"true" json:"amount"`
}

// Burn destroys a token. Only the holder may burn; the token, its
// metadata and its license record are removed together. Emits a Burn
// event.
func (c *Contract) Burn(sender types.Address, p *BurnParams) error {
	return c.update(func(db database.Database) error {
		if !p.Amount.Valid() {
			return ledger.ErrInvalidAmount
		}
		if err := c.authorize(db, sender, CanBurn, p.Owner); err != nil {
			return err
		}
		if err := ledger.Burn(db, p.Token, p.Owner); err != nil {
			return err
		}
		return c.logger.Log(&event.Event{
			Tmstmp: c.now(),
			Typ:    event.Burn,
			Token:  p.Token,
			Amount: p.Amount,
			Owner:  p.Owner.String(),
		})
	})
}
