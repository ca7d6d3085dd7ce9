// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/licensevm/types"
)

var renewPayment uint64

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Inspects and manages license records",
}

var licenseViewCmd = &cobra.Command{
	Use:   "view [options] token",
	Short: "Reads the license record of a token",
	RunE:  licenseViewFunc,
}

var licenseOwnedCmd = &cobra.Command{
	Use:   "owned [options] owner",
	Short: "Lists every license held by owner",
	RunE:  licenseOwnedFunc,
}

var licenseSuspendCmd = &cobra.Command{
	Use:   "suspend [options] token",
	Short: "Suspends an active license",
	RunE:  licenseSuspendFunc,
}

var licenseReactivateCmd = &cobra.Command{
	Use:   "reactivate [options] token",
	Short: "Reactivates a suspended license",
	RunE:  licenseReactivateFunc,
}

var licenseRenewCmd = &cobra.Command{
	Use:   "renew [options] token new-expiry",
	Short: "Extends the validity window of a license",
	RunE:  licenseRenewFunc,
}

func init() {
	licenseRenewCmd.PersistentFlags().Uint64Var(
		&renewPayment,
		"payment",
		0,
		"payment amount recorded with the renewal",
	)
	licenseCmd.AddCommand(
		licenseViewCmd,
		licenseOwnedCmd,
		licenseSuspendCmd,
		licenseReactivateCmd,
		licenseRenewCmd,
	)
}

func licenseViewFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	token, err := types.ParseTokenID(args[0])
	if err != nil {
		return err
	}
	ctx, cancel := opCtx()
	defer cancel()
	rec, err := newClient().ViewLicense(ctx, token)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func licenseOwnedFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	owner, err := types.ParseAddress(args[0])
	if err != nil {
		return err
	}
	ctx, cancel := opCtx()
	defer cancel()
	owned, err := newClient().ViewLicensesByOwner(ctx, owner)
	if err != nil {
		return err
	}
	for _, o := range owned {
		color.Yellow("%s state=%s valid-until=%d",
			o.Token.Hex(), o.License.State, o.License.Validity.ValidUntil)
	}
	return nil
}

func licenseSuspendFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	from, err := senderAddress()
	if err != nil {
		return err
	}
	token, err := types.ParseTokenID(args[0])
	if err != nil {
		return err
	}
	ctx, cancel := opCtx()
	defer cancel()
	if err := newClient().Suspend(ctx, from, token); err != nil {
		return err
	}
	color.Green("suspended %s", token.Hex())
	return nil
}

func licenseReactivateFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	from, err := senderAddress()
	if err != nil {
		return err
	}
	token, err := types.ParseTokenID(args[0])
	if err != nil {
		return err
	}
	ctx, cancel := opCtx()
	defer cancel()
	if err := newClient().Reactivate(ctx, from, token); err != nil {
		return err
	}
	color.Green("reactivated %s", token.Hex())
	return nil
}

func licenseRenewFunc(cmd *cobra.Command, args []string) error {
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
	newExpiry, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return err
	}
	ctx, cancel := opCtx()
	defer cancel()
	if err := newClient().RenewLicense(ctx, from, token, newExpiry, renewPayment); err != nil {
		return err
	}
	color.Green("renewed %s until %d", token.Hex(), newExpiry)
	return nil
}
