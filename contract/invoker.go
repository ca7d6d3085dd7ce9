// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"context"

	"github.com/ava-labs/avalanchego/database"

	"github.com/ava-labs/licensevm/types"
)

// HookCall describes a post-transfer receive hook on a contract
// recipient.
type HookCall struct {
	Receiver   types.ContractAddress `serialize:"true" json:"receiver"`
	Entrypoint string                `serialize:"true" json:"entrypoint"`

	Token  types.TokenID     `serialize:"true" json:"token"`
	Amount types.TokenAmount `serialize:"true" json:"amount"`
	From   types.Address     `serialize:"true" json:"from"`
	Data   []byte            `serialize:"true" json:"data,omitempty"`
}

// Invoker transmits downstream calls. The coordinator does not know how
// the call travels; it only requires that an error aborts the whole
// surrounding operation.
//
// state is the in-flight database of the surrounding call. The hook runs
// after the transfer's own delta is applied, so reads through state
// observe the post-transfer ledger even when the hook re-enters. The
// surrounding call holds the coordinator's write lock for its whole
// duration: any reentry, reading or mutating, must go through state.
// Calling back into the public entrypoints from a hook deadlocks.
type Invoker interface {
	Invoke(ctx context.Context, call *HookCall, state database.Database) error
}
