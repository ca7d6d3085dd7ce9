// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/licensevm/contract"
	"github.com/ava-labs/licensevm/types"
)

var (
	transferFrom   string
	transferAmount uint8
	transferHook   string
	transferData   string
)

var transferCmd = &cobra.Command{
	Use:   "transfer [options] token to",
	Short: "Transfers a token to a new owner",
	RunE:  transferFunc,
}

func init() {
	transferCmd.PersistentFlags().StringVar(
		&transferFrom,
		"from",
		"",
		"current owner, defaults to the sender",
	)
	transferCmd.PersistentFlags().Uint8Var(
		&transferAmount,
		"amount",
		1,
		"amount to transfer, 0 or 1",
	)
	transferCmd.PersistentFlags().StringVar(
		&transferHook,
		"hook",
		"",
		"receive hook entrypoint, for contract receivers",
	)
	transferCmd.PersistentFlags().StringVar(
		&transferData,
		"data",
		"",
		"hex payload forwarded to the receive hook",
	)
}

func transferFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	issuer, err := senderAddress()
	if err != nil {
		return err
	}
	token, err := types.ParseTokenID(args[0])
	if err != nil {
		return err
	}
	to, err := types.ParseAddress(args[1])
	if err != nil {
		return err
	}
	from := issuer
	if transferFrom != "" {
		if from, err = types.ParseAddress(transferFrom); err != nil {
			return err
		}
	}
	var data []byte
	if transferData != "" {
		if data, err = hex.DecodeString(strings.TrimPrefix(transferData, "0x")); err != nil {
			return err
		}
	}

	ctx, cancel := opCtx()
	defer cancel()
	if err := newClient().Transfer(ctx, issuer, []contract.TransferEntry{{
		Token:  token,
		Amount: types.TokenAmount(transferAmount),
		From:   from,
		To:     types.Receiver{Address: to, Hook: transferHook},
		Data:   data,
	}}); err != nil {
		return err
	}
	color.Green("transferred %s from %s to %s", token.Hex(), from, to)
	return nil
}
