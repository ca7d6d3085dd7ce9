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

var burnAmount uint8

var burnCmd = &cobra.Command{
	Use:   "burn [options] token owner",
	Short: "Burns a token held by owner",
	RunE:  burnFunc,
}

func init() {
	burnCmd.PersistentFlags().Uint8Var(
		&burnAmount,
		"amount",
		1,
		"amount to burn, 0 or 1",
	)
}

func burnFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	from, err := senderAddress()
	if err != nil {
		return err
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
	if err := newClient().Burn(ctx, from, &contract.BurnParams{
		Token:  token,
		Owner:  owner,
		Amount: types.TokenAmount(burnAmount),
	}); err != nil {
		return err
	}
	color.Green("burned %s", token.Hex())
	return nil
}
