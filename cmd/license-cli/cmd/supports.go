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

var supportsCmd = &cobra.Command{
	Use:   "supports [options] standard...",
	Short: "Queries standard support of the ledger",
	RunE:  supportsFunc,
}

func supportsFunc(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected at least 1 argument, got %d", len(args))
	}
	standards := make([]types.StandardID, len(args))
	for i, a := range args {
		standards[i] = types.StandardID(a)
	}

	ctx, cancel := opCtx()
	defer cancel()
	results, err := newClient().Supports(ctx, standards)
	if err != nil {
		return err
	}
	for i, r := range results {
		switch r.Kind {
		case contract.Support:
			color.Green("%s: supported", standards[i])
		case contract.SupportBy:
			color.Yellow("%s: supported by %v", standards[i], r.Implementors)
		default:
			color.Red("%s: not supported", standards[i])
		}
	}
	return nil
}
