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

var operatorCmd = &cobra.Command{
	Use:   "operator",
	Short: "Manages and queries per-owner operators",
}

var operatorAddCmd = &cobra.Command{
	Use:   "add [options] operator",
	Short: "Enables operator for the sender",
	RunE:  operatorUpdateFunc(true),
}

var operatorRemoveCmd = &cobra.Command{
	Use:   "remove [options] operator",
	Short: "Disables operator for the sender",
	RunE:  operatorUpdateFunc(false),
}

var operatorCheckCmd = &cobra.Command{
	Use:   "check [options] owner candidate",
	Short: "Reports whether candidate is an operator of owner",
	RunE:  operatorCheckFunc,
}

func init() {
	operatorCmd.AddCommand(
		operatorAddCmd,
		operatorRemoveCmd,
		operatorCheckCmd,
	)
}

func operatorUpdateFunc(add bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
		}
		from, err := senderAddress()
		if err != nil {
			return err
		}
		operator, err := types.ParseAddress(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := opCtx()
		defer cancel()
		if err := newClient().UpdateOperator(ctx, from, []contract.OperatorUpdate{
			{Operator: operator, Add: add},
		}); err != nil {
			return err
		}
		if add {
			color.Green("enabled %s as operator of %s", operator, from)
		} else {
			color.Green("disabled %s as operator of %s", operator, from)
		}
		return nil
	}
}

func operatorCheckFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	owner, err := types.ParseAddress(args[0])
	if err != nil {
		return err
	}
	candidate, err := types.ParseAddress(args[1])
	if err != nil {
		return err
	}

	ctx, cancel := opCtx()
	defer cancel()
	results, err := newClient().OperatorOf(ctx, []contract.OperatorQuery{
		{Owner: owner, Candidate: candidate},
	})
	if err != nil {
		return err
	}
	color.Green("%s operator of %s: %v", candidate, owner, results[0])
	return nil
}
