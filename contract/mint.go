// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/event"
	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/license"
	"github.com/ava-labs/licensevm/metadata"
	"github.com/ava-labs/licensevm/types"
)

type MintParams struct {
	Token types.TokenID `serialize:"true" json:"token"`
	Owner types.Address `serialize:"true" json:"owner"`

	LicenseType license.Type `serialize:"true" json:"licenseType"`
	ValidUntil  int64        `serialize:"true" json:"validUntil"`
	Domains     []string     `serialize:"true" json:"domains,omitempty"`
	Payment     uint64       `serialize:"true" json:"payment"`
}

// Mint creates a new token with an Active license, owned by p.Owner.
// Only the administrator and global operators may mint. Emits a Mint and
// a TokenMetadata event.
func (c *Contract) Mint(sender types.Address, p *MintParams) error {
	return c.update(func(db database.Database) error {
		if err := c.authorize(db, sender, CanMint, types.Address{}); err != nil {
			return err
		}

		url := metadata.URL(c.genesis.MetadataBaseURL, uint32(p.Token))
		if err := ledger.Mint(db, p.Token, p.Owner, &ledger.TokenMetadata{URL: url}); err != nil {
			return err
		}

		now := c.now()
		rec := license.New(
			p.LicenseType,
			now,
			p.ValidUntil,
			p.Domains,
			sender,
			p.Owner,
			p.Payment,
		)
		if err := ledger.PutLicense(db, p.Token, rec); err != nil {
			return err
		}

		if err := c.logger.Log(&event.Event{
			Tmstmp: now,
			Typ:    event.Mint,
			Token:  p.Token,
			Amount: 1,
			Owner:  p.Owner.String(),
		}); err != nil {
			return err
		}
		return c.logger.Log(&event.Event{
			Tmstmp: now,
			Typ:    event.TokenMetadata,
			Token:  p.Token,
			URL:    url,
		})
	})
}
