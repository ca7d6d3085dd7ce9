// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// "license-cli" implements licensevm client operation interface.
package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/licensevm/client"
	"github.com/ava-labs/licensevm/types"
)

const requestTimeout = 30 * time.Second

var (
	uri     string
	sender  string
	verbose bool

	rootCmd = &cobra.Command{
		Use:        "license-cli",
		Short:      "LicenseVM CLI",
		SuggestFor: []string{"license-cli", "licensecli", "licensectl"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		genesisCmd,
		mintCmd,
		burnCmd,
		transferCmd,
		balanceCmd,
		operatorCmd,
		licenseCmd,
		metadataCmd,
		supportsCmd,
		viewCmd,
		adminCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://localhost:9876",
		"RPC endpoint for the ledger",
	)
	rootCmd.PersistentFlags().StringVar(
		&sender,
		"sender",
		"",
		"address operations are issued as",
	)
	rootCmd.PersistentFlags().BoolVar(
		&verbose,
		"verbose",
		false,
		"Print verbose information about operations",
	)
}

func Execute() error {
	return rootCmd.Execute()
}

func newClient() client.Client {
	return client.New(uri)
}

func opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

func senderAddress() (types.Address, error) {
	return types.ParseAddress(sender)
}
