// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
)

var (
	// Token correctness
	ErrInvalidTokenID    = errors.New("token does not exist")
	ErrTokenExists       = errors.New("token id already exists")
	ErrInsufficientFunds = errors.New("address does not hold the token")
	ErrInvalidAmount     = errors.New("amount must be 0 or 1")

	// Key correctness
	ErrCorruptKey = errors.New("corrupt ledger key")
)
