// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var genesisCmd = &cobra.Command{
	Use:   "genesis [options]",
	Short: "Reads the ledger genesis",
	RunE:  genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	ctx, cancel := opCtx()
	defer cancel()
	genesis, err := newClient().Genesis(ctx)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
