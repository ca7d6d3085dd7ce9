// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ava-labs/licensevm/types"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata [options] token...",
	Short: "Reads the metadata URL records of tokens",
	RunE:  metadataFunc,
}

func metadataFunc(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected at least 1 argument, got %d", len(args))
	}
	tokens := make([]types.TokenID, len(args))
	for i, a := range args {
		token, err := types.ParseTokenID(a)
		if err != nil {
			return err
		}
		tokens[i] = token
	}

	ctx, cancel := opCtx()
	defer cancel()
	metadata, err := newClient().TokenMetadata(ctx, tokens)
	if err != nil {
		return err
	}
	for i, m := range metadata {
		color.Yellow("%s=>%s", tokens[i].Hex(), m.URL)
	}
	return nil
}
