// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"context"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/licensevm/types"
)

// MigrationCall names an entrypoint to invoke on the new module right
// after the upgrade.
type MigrationCall struct {
	Entrypoint string `serialize:"true" json:"entrypoint"`
	Parameter  []byte `serialize:"true" json:"parameter,omitempty"`
}

type UpgradeParams struct {
	Module  ids.ID         `serialize:"true" json:"module"`
	Migrate *MigrationCall `serialize:"true" json:"migrate,omitempty"`
}

// Upgrader replaces the executing module. How the replacement happens is
// outside the ledger; the coordinator only gates who may trigger it.
type Upgrader interface {
	Upgrade(ctx context.Context, module ids.ID, migrate *MigrationCall) error
}

// Upgrade triggers module replacement. Administrative only.
func (c *Contract) Upgrade(ctx context.Context, sender types.Address, p *UpgradeParams) error {
	return c.update(func(db database.Database) error {
		if err := c.authorize(db, sender, CanAdminister, types.Address{}); err != nil {
			return err
		}
		if c.upgrader == nil {
			return ErrNoUpgrader
		}
		if err := c.upgrader.Upgrade(ctx, p.Module, p.Migrate); err != nil {
			return fmt.Errorf("%w: %v", ErrInvokeFailed, err)
		}
		return nil
	})
}
