// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"
)

var (
	ErrUnauthorized   = errors.New("sender is not authorized")
	ErrNotInitialized = errors.New("ledger is not initialized")
	ErrInitialized    = errors.New("ledger is already initialized")
	ErrInvokeFailed   = errors.New("downstream invoke failed")
	ErrNoUpgrader     = errors.New("no upgrader configured")
)
