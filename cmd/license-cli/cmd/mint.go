// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/licensevm/contract"
	"github.com/ava-labs/licensevm/license"
	"github.com/ava-labs/licensevm/types"
)

var (
	mintLicenseType string
	mintValidUntil  int64
	mintDomains     []string
	mintPayment     uint64
)

var mintCmd = &cobra.Command{
	Use:   "mint [options] token owner",
	Short: "Mints a token with a fresh license for owner",
	RunE:  mintFunc,
}

func init() {
	mintCmd.PersistentFlags().StringVar(
		&mintLicenseType,
		"license-type",
		"yearly",
		"license type: monthly, yearly or one-time",
	)
	mintCmd.PersistentFlags().Int64Var(
		&mintValidUntil,
		"valid-until",
		0,
		"unix second the license expires at",
	)
	mintCmd.PersistentFlags().StringSliceVar(
		&mintDomains,
		"domain",
		nil,
		"domain the license covers, repeatable",
	)
	mintCmd.PersistentFlags().Uint64Var(
		&mintPayment,
		"payment",
		0,
		"payment amount recorded with the license",
	)
}

func mintFunc(cmd *cobra.Command, args []string) error {
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
	typ, err := parseLicenseType(mintLicenseType)
	if err != nil {
		return err
	}

	ctx, cancel := opCtx()
	defer cancel()
	if err := newClient().Mint(ctx, from, &contract.MintParams{
		Token:       token,
		Owner:       owner,
		LicenseType: typ,
		ValidUntil:  mintValidUntil,
		Domains:     mintDomains,
		Payment:     mintPayment,
	}); err != nil {
		return err
	}
	color.Green("minted %s for %s", token.Hex(), owner)
	return nil
}

func parseLicenseType(s string) (license.Type, error) {
	switch s {
	case "monthly":
		return license.Monthly, nil
	case "yearly":
		return license.Yearly, nil
	case "one-time", "onetime":
		return license.OneTime, nil
	default:
		return 0, fmt.Errorf("unknown license type %q", s)
	}
}
