// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [options]",
	Short: "Dumps the full ledger state",
	RunE:  viewFunc,
}

func viewFunc(cmd *cobra.Command, args []string) error {
	ctx, cancel := opCtx()
	defer cancel()
	state, err := newClient().View(ctx)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
