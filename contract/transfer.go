// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/event"
	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/types"
)

type TransferEntry struct {
	Token  types.TokenID     `serialize:"true" json:"token"`
	Amount types.TokenAmount `serialize:"true" json:"amount"`
	From   types.Address     `serialize:"true" json:"from"`
	To     types.Receiver    `serialize:"true" json:"to"`
	Data   []byte            `serialize:"true" json:"data,omitempty"`
}

// Transfer executes a list of transfers in order. Every entry is
// validated and applied independently, but any failure (state, event
// logging or a receive hook) discards the whole call, including entries
// already applied. Emits one Transfer event per entry.
func (c *Contract) Transfer(ctx context.Context, sender types.Address, entries []TransferEntry) error {
	return c.update(func(db database.Database) error {
		now := c.now()
		for i := range entries {
			e := &entries[i]
			if err := c.authorize(db, sender, CanTransfer, e.From); err != nil {
				return err
			}
			if err := ledger.Transfer(db, e.Token, e.Amount, e.From, e.To.Address); err != nil {
				return err
			}
			if e.Amount == 1 {
				if err := c.recordLicenseTransfer(db, e, now); err != nil {
					return err
				}
			}
			if err := c.logger.Log(&event.Event{
				Tmstmp: now,
				Typ:    event.Transfer,
				Token:  e.Token,
				Amount: e.Amount,
				From:   e.From.String(),
				To:     e.To.Address.String(),
			}); err != nil {
				return err
			}

			// The entry's delta is fully applied before the hook goes
			// out, so a reentrant call sees consistent post-transfer
			// state.
			if e.To.Address.IsContract() && c.invoker != nil {
				call := &HookCall{
					Receiver:   e.To.Address.Contract,
					Entrypoint: e.To.Hook,
					Token:      e.Token,
					Amount:     e.Amount,
					From:       e.From,
					Data:       e.Data,
				}
				if err := c.invoker.Invoke(ctx, call, db); err != nil {
					return fmt.Errorf("%w: %v", ErrInvokeFailed, err)
				}
			}
		}
		return nil
	})
}

func (c *Contract) recordLicenseTransfer(db database.Database, e *TransferEntry, now int64) error {
	rec, has, err := ledger.GetLicense(db, e.Token)
	if err != nil {
		return err
	}
	if !has {
		return nil
	}
	rec.RecordTransfer(e.From, e.To.Address, now)
	return ledger.PutLicense(db, e.Token, rec)
}
