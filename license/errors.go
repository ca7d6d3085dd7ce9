// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package license

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("license not found")
	ErrAlreadyExists = errors.New("license already exists")
	ErrInvalidState  = errors.New("license state does not permit the operation")
	ErrInvalidExpiry = errors.New("new expiry is not in the future")
)
