// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package contract implements the ledger coordinator: the entrypoint
// dispatch layer that authorizes each external call, applies its state
// delta atomically and emits event descriptors.
package contract

import (
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ava-labs/avalanchego/utils/timer/mockable"

	"github.com/ava-labs/licensevm/event"
	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/types"
)

// Contract owns the ledger state for the duration of each call. Calls
// are processed one at a time; there is no intra-call parallelism.
type Contract struct {
	// lk serializes external calls. Mutating entrypoints hold the write
	// lock for their whole transaction, so concurrent callers (the HTTP
	// handler serves requests in parallel) cannot layer two deltas over
	// the same base state. Queries hold the read lock so they never
	// observe a half-committed delta. Receive hooks run inside the write
	// lock: a reentrant call must go through the state database handed to
	// the Invoker, never back through the public surface.
	lk sync.RWMutex

	db      database.Database
	genesis *Genesis
	logger  event.Logger

	invoker  Invoker
	upgrader Upgrader

	clock mockable.Clock
}

func New(db database.Database, genesis *Genesis, logger event.Logger) *Contract {
	return &Contract{
		db:      db,
		genesis: genesis,
		logger:  logger,
	}
}

// SetInvoker installs the downstream capability used for post-transfer
// receive hooks. Without one, transfers to contracts skip the hook.
func (c *Contract) SetInvoker(i Invoker) { c.invoker = i }

// SetUpgrader installs the module replacement capability.
func (c *Contract) SetUpgrader(u Upgrader) { c.upgrader = u }

func (c *Contract) Genesis() *Genesis { return c.genesis }

// Init creates the empty ledger and records the calling principal as
// administrator. A second Init rejects.
func (c *Contract) Init(sender types.Address) error {
	return c.update(func(db database.Database) error {
		_, has, err := ledger.GetAdministrator(db)
		if err != nil {
			return err
		}
		if has {
			return ErrInitialized
		}
		return ledger.SetAdministrator(db, sender)
	})
}

// Administrator returns the contract's administrative principal.
func (c *Contract) Administrator() (types.Address, error) {
	c.lk.RLock()
	defer c.lk.RUnlock()

	admin, has, err := ledger.GetAdministrator(c.db)
	if err != nil {
		return types.Address{}, err
	}
	if !has {
		return types.Address{}, ErrNotInitialized
	}
	return admin, nil
}

// update runs fn against a layered database. The whole delta commits on
// success and is discarded on any error, so every external call is
// all-or-nothing.
func (c *Contract) update(fn func(db database.Database) error) error {
	c.lk.Lock()
	defer c.lk.Unlock()

	vdb := versiondb.New(c.db)
	defer vdb.Abort()
	if err := fn(vdb); err != nil {
		return err
	}
	return vdb.Commit()
}

func (c *Contract) now() int64 { return c.clock.Time().Unix() }
