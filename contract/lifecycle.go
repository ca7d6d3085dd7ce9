// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/license"
	"github.com/ava-labs/licensevm/types"
)

// Suspend moves an Active license to Suspended. Administrative only.
func (c *Contract) Suspend(sender types.Address, token types.TokenID) error {
	return c.mutateLicense(sender, token, CanAdminister, func(r *license.Record) error {
		return r.Suspend()
	})
}

// Reactivate moves a Suspended license back to Active, leaving the
// validity window untouched. Administrative only.
func (c *Contract) Reactivate(sender types.Address, token types.TokenID) error {
	return c.mutateLicense(sender, token, CanAdminister, func(r *license.Record) error {
		return r.Reactivate()
	})
}

// RenewLicense rewrites the validity window of an Active license. The
// owner or one of its operators may renew; the new expiry must be
// strictly in the future.
func (c *Contract) RenewLicense(
	sender types.Address,
	token types.TokenID,
	newExpiry int64,
	payment uint64,
) error {
	return c.mutateLicense(sender, token, CanRenew, func(r *license.Record) error {
		return r.Renew(c.now(), newExpiry, payment)
	})
}

func (c *Contract) mutateLicense(
	sender types.Address,
	token types.TokenID,
	capability Capability,
	fn func(*license.Record) error,
) error {
	return c.update(func(db database.Database) error {
		rec, has, err := ledger.GetLicense(db, token)
		if err != nil {
			return err
		}
		if !has {
			return license.ErrNotFound
		}
		if err := c.authorize(db, sender, capability, rec.Owner); err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
		return ledger.PutLicense(db, token, rec)
	})
}

// ViewLicense returns a copy of the license record with the state
// projected at the current time (an elapsed window reads as Expired).
// No authorization required.
func (c *Contract) ViewLicense(token types.TokenID) (*license.Record, error) {
	c.lk.RLock()
	defer c.lk.RUnlock()

	rec, has, err := ledger.GetLicense(c.db, token)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, license.ErrNotFound
	}
	view := rec.Copy()
	view.State = rec.EffectiveState(c.now())
	return view, nil
}

type OwnedLicense struct {
	Token   types.TokenID   `serialize:"true" json:"token"`
	License *license.Record `serialize:"true" json:"license"`
}

// ViewLicensesByOwner returns the licenses of every token currently
// owned by owner. No authorization required.
func (c *Contract) ViewLicensesByOwner(owner types.Address) ([]OwnedLicense, error) {
	c.lk.RLock()
	defer c.lk.RUnlock()

	tokens, err := ledger.TokensOf(c.db, owner)
	if err != nil {
		return nil, err
	}
	now := c.now()
	owned := make([]OwnedLicense, 0, len(tokens))
	for _, token := range tokens {
		rec, has, err := ledger.GetLicense(c.db, token)
		if err != nil {
			return nil, err
		}
		if !has {
			continue
		}
		view := rec.Copy()
		view.State = rec.EffectiveState(now)
		owned = append(owned, OwnedLicense{Token: token, License: view})
	}
	return owned, nil
}
