// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/licensevm/contract"
	"github.com/ava-labs/licensevm/types"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [options] token owner",
	Short: "Queries the balance of owner for token",
	RunE:  balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	token, err := types.ParseTokenID(args[0])
	if err != nil {
		return err
	}
	owner, err := types.ParseAddress(args[1])
	if err != nil {
		return err
	}

	ctx, cancel := opCtx()
	defer cancel()
	bals, err := newClient().BalanceOf(ctx, []contract.BalanceQuery{
		{Token: token, Owner: owner},
	})
	if err != nil {
		return err
	}
	color.Green("%s holds %d of %s", owner, bals[0], token.Hex())
	return nil
}
