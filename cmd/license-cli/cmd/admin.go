// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/licensevm/contract"
	"github.com/ava-labs/licensevm/types"
)

var (
	upgradeEntrypoint string
	upgradeParameter  string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative ledger operations",
}

var adminTransferCmd = &cobra.Command{
	Use:   "transfer [options] new-admin",
	Short: "Hands the ledger to a new administrator",
	RunE:  adminTransferFunc,
}

var adminImplementorsCmd = &cobra.Command{
	Use:   "set-implementors [options] standard contract...",
	Short: "Overwrites the implementor list of a standard",
	RunE:  adminImplementorsFunc,
}

var adminGlobalOperatorAddCmd = &cobra.Command{
	Use:   "grant-minter [options] operator",
	Short: "Grants ledger-wide minting to operator",
	RunE:  adminGlobalOperatorFunc(true),
}

var adminGlobalOperatorRemoveCmd = &cobra.Command{
	Use:   "revoke-minter [options] operator",
	Short: "Revokes ledger-wide minting from operator",
	RunE:  adminGlobalOperatorFunc(false),
}

var adminUpgradeCmd = &cobra.Command{
	Use:   "upgrade [options] module-id",
	Short: "Replaces the executing ledger module",
	RunE:  adminUpgradeFunc,
}

func init() {
	adminUpgradeCmd.PersistentFlags().StringVar(
		&upgradeEntrypoint,
		"entrypoint",
		"",
		"migration entrypoint invoked on the new module",
	)
	adminUpgradeCmd.PersistentFlags().StringVar(
		&upgradeParameter,
		"parameter",
		"",
		"hex parameter passed to the migration entrypoint",
	)
	adminCmd.AddCommand(
		adminTransferCmd,
		adminImplementorsCmd,
		adminGlobalOperatorAddCmd,
		adminGlobalOperatorRemoveCmd,
		adminUpgradeCmd,
	)
}

func adminTransferFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	from, err := senderAddress()
	if err != nil {
		return err
	}
	newAdmin, err := types.ParseAddress(args[0])
	if err != nil {
		return err
	}
	ctx, cancel := opCtx()
	defer cancel()
	if err := newClient().TransferAdministration(ctx, from, newAdmin); err != nil {
		return err
	}
	color.Green("administration transferred to %s", newAdmin)
	return nil
}

func adminImplementorsFunc(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("expected at least 2 arguments, got %d", len(args))
	}
	from, err := senderAddress()
	if err != nil {
		return err
	}
	standard := types.StandardID(args[0])
	implementors := make([]types.ContractAddress, 0, len(args)-1)
	for _, a := range args[1:] {
		addr, err := types.ParseAddress(a)
		if err != nil {
			return err
		}
		if !addr.IsContract() {
			return fmt.Errorf("implementor %q is not a contract address", a)
		}
		implementors = append(implementors, addr.Contract)
	}

	ctx, cancel := opCtx()
	defer cancel()
	if err := newClient().SetImplementors(ctx, from, standard, implementors); err != nil {
		return err
	}
	color.Green("implementors of %s updated", standard)
	return nil
}

func adminGlobalOperatorFunc(add bool) func(*cobra.Command, []string) error {
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
		cli := newClient()
		if add {
			if err := cli.AddGlobalOperator(ctx, from, operator); err != nil {
				return err
			}
			color.Green("granted minting to %s", operator)
			return nil
		}
		if err := cli.RemoveGlobalOperator(ctx, from, operator); err != nil {
			return err
		}
		color.Green("revoked minting from %s", operator)
		return nil
	}
}

func adminUpgradeFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	from, err := senderAddress()
	if err != nil {
		return err
	}
	module, err := ids.FromString(args[0])
	if err != nil {
		return err
	}

	params := &contract.UpgradeParams{Module: module}
	if upgradeEntrypoint != "" {
		var parameter []byte
		if upgradeParameter != "" {
			parameter, err = hex.DecodeString(strings.TrimPrefix(upgradeParameter, "0x"))
			if err != nil {
				return err
			}
		}
		params.Migrate = &contract.MigrationCall{
			Entrypoint: upgradeEntrypoint,
			Parameter:  parameter,
		}
	}

	ctx, cancel := opCtx()
	defer cancel()
	if err := newClient().Upgrade(ctx, from, params); err != nil {
		return err
	}
	color.Green("upgraded to module %s", module)
	return nil
}
