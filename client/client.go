// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements the "licensevm" client SDK.
package client

import (
	"context"

	"github.com/ava-labs/avalanchego/utils/rpc"

	"github.com/ava-labs/licensevm/contract"
	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/license"
	"github.com/ava-labs/licensevm/service"
	"github.com/ava-labs/licensevm/types"
)

// Client defines licensevm client operations.
type Client interface {
	// Pings the service.
	Ping(ctx context.Context) (bool, error)
	// Returns the ledger genesis.
	Genesis(ctx context.Context) (*contract.Genesis, error)
	// Returns the administrative principal.
	Administrator(ctx context.Context) (types.Address, error)

	// Mints a token with a fresh license.
	Mint(ctx context.Context, sender types.Address, params *contract.MintParams) error
	// Burns a token held by owner.
	Burn(ctx context.Context, sender types.Address, params *contract.BurnParams) error
	// Executes a list of transfers, all-or-nothing.
	Transfer(ctx context.Context, sender types.Address, transfers []contract.TransferEntry) error
	// Enables or disables operators of the sender.
	UpdateOperator(ctx context.Context, sender types.Address, updates []contract.OperatorUpdate) error
	// Grants or revokes ledger-wide minting operators.
	AddGlobalOperator(ctx context.Context, sender types.Address, operator types.Address) error
	RemoveGlobalOperator(ctx context.Context, sender types.Address, operator types.Address) error

	// Answers operator queries.
	OperatorOf(ctx context.Context, queries []contract.OperatorQuery) ([]bool, error)
	// Answers 0/1 balance queries.
	BalanceOf(ctx context.Context, queries []contract.BalanceQuery) ([]types.TokenAmount, error)
	// Returns metadata URL records.
	TokenMetadata(ctx context.Context, tokens []types.TokenID) ([]*ledger.TokenMetadata, error)
	// Answers capability discovery queries.
	Supports(ctx context.Context, standards []types.StandardID) ([]contract.SupportResult, error)
	// Overwrites the implementor list of a standard.
	SetImplementors(ctx context.Context, sender types.Address, standard types.StandardID, implementors []types.ContractAddress) error

	// Suspend pauses an active license.
	Suspend(ctx context.Context, sender types.Address, token types.TokenID) error
	// Reactivate resumes a suspended license.
	Reactivate(ctx context.Context, sender types.Address, token types.TokenID) error
	// RenewLicense extends the validity window of a license.
	RenewLicense(ctx context.Context, sender types.Address, token types.TokenID, newExpiry int64, payment uint64) error
	// ViewLicense returns the license record of a token.
	ViewLicense(ctx context.Context, token types.TokenID) (*license.Record, error)
	// ViewLicensesByOwner returns every license held by owner.
	ViewLicensesByOwner(ctx context.Context, owner types.Address) ([]contract.OwnedLicense, error)

	// TransferAdministration hands the ledger to a new administrator.
	TransferAdministration(ctx context.Context, sender types.Address, newAdmin types.Address) error
	// Upgrade swaps the ledger module and optionally migrates.
	Upgrade(ctx context.Context, sender types.Address, params *contract.UpgradeParams) error

	// View dumps the full ledger state, meant for inspection.
	View(ctx context.Context) (*contract.ViewState, error)
}

// New creates a new client object.
func New(uri string) Client {
	req := rpc.NewEndpointRequester(
		uri+service.PublicEndpoint,
		service.Name,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping(ctx context.Context) (bool, error) {
	resp := new(service.PingReply)
	err := cli.req.SendRequest(ctx, "ping", nil, resp)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis(ctx context.Context) (*contract.Genesis, error) {
	resp := new(service.GenesisReply)
	if err := cli.req.SendRequest(ctx, "genesis", nil, resp); err != nil {
		return nil, err
	}
	return resp.Genesis, nil
}

func (cli *client) Administrator(ctx context.Context) (types.Address, error) {
	resp := new(service.AdministratorReply)
	if err := cli.req.SendRequest(ctx, "administrator", nil, resp); err != nil {
		return types.Address{}, err
	}
	return resp.Administrator, nil
}

func (cli *client) Mint(ctx context.Context, sender types.Address, params *contract.MintParams) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"mint",
		&service.MintArgs{Sender: sender, Params: *params},
		resp,
	)
}

func (cli *client) Burn(ctx context.Context, sender types.Address, params *contract.BurnParams) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"burn",
		&service.BurnArgs{Sender: sender, Params: *params},
		resp,
	)
}

func (cli *client) Transfer(ctx context.Context, sender types.Address, transfers []contract.TransferEntry) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"transfer",
		&service.TransferArgs{Sender: sender, Transfers: transfers},
		resp,
	)
}

func (cli *client) UpdateOperator(ctx context.Context, sender types.Address, updates []contract.OperatorUpdate) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"updateOperator",
		&service.UpdateOperatorArgs{Sender: sender, Updates: updates},
		resp,
	)
}

func (cli *client) AddGlobalOperator(ctx context.Context, sender types.Address, operator types.Address) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"addGlobalOperator",
		&service.GlobalOperatorArgs{Sender: sender, Operator: operator},
		resp,
	)
}

func (cli *client) RemoveGlobalOperator(ctx context.Context, sender types.Address, operator types.Address) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"removeGlobalOperator",
		&service.GlobalOperatorArgs{Sender: sender, Operator: operator},
		resp,
	)
}

func (cli *client) OperatorOf(ctx context.Context, queries []contract.OperatorQuery) ([]bool, error) {
	resp := new(service.OperatorOfReply)
	if err := cli.req.SendRequest(
		ctx,
		"operatorOf",
		&service.OperatorOfArgs{Queries: queries},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (cli *client) BalanceOf(ctx context.Context, queries []contract.BalanceQuery) ([]types.TokenAmount, error) {
	resp := new(service.BalanceOfReply)
	if err := cli.req.SendRequest(
		ctx,
		"balanceOf",
		&service.BalanceOfArgs{Queries: queries},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Balances, nil
}

func (cli *client) TokenMetadata(ctx context.Context, tokens []types.TokenID) ([]*ledger.TokenMetadata, error) {
	resp := new(service.TokenMetadataReply)
	if err := cli.req.SendRequest(
		ctx,
		"tokenMetadata",
		&service.TokenMetadataArgs{Tokens: tokens},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Metadata, nil
}

func (cli *client) Supports(ctx context.Context, standards []types.StandardID) ([]contract.SupportResult, error) {
	resp := new(service.SupportsReply)
	if err := cli.req.SendRequest(
		ctx,
		"supports",
		&service.SupportsArgs{Standards: standards},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (cli *client) SetImplementors(
	ctx context.Context,
	sender types.Address,
	standard types.StandardID,
	implementors []types.ContractAddress,
) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"setImplementors",
		&service.SetImplementorsArgs{
			Sender:       sender,
			Standard:     standard,
			Implementors: implementors,
		},
		resp,
	)
}

func (cli *client) Suspend(ctx context.Context, sender types.Address, token types.TokenID) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"suspend",
		&service.LifecycleArgs{Sender: sender, Token: token},
		resp,
	)
}

func (cli *client) Reactivate(ctx context.Context, sender types.Address, token types.TokenID) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"reactivate",
		&service.LifecycleArgs{Sender: sender, Token: token},
		resp,
	)
}

func (cli *client) RenewLicense(
	ctx context.Context,
	sender types.Address,
	token types.TokenID,
	newExpiry int64,
	payment uint64,
) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"renewLicense",
		&service.RenewLicenseArgs{
			Sender:    sender,
			Token:     token,
			NewExpiry: newExpiry,
			Payment:   payment,
		},
		resp,
	)
}

func (cli *client) ViewLicense(ctx context.Context, token types.TokenID) (*license.Record, error) {
	resp := new(service.ViewLicenseReply)
	if err := cli.req.SendRequest(
		ctx,
		"viewLicense",
		&service.ViewLicenseArgs{Token: token},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.License, nil
}

func (cli *client) ViewLicensesByOwner(ctx context.Context, owner types.Address) ([]contract.OwnedLicense, error) {
	resp := new(service.ViewLicensesByOwnerReply)
	if err := cli.req.SendRequest(
		ctx,
		"viewLicensesByOwner",
		&service.ViewLicensesByOwnerArgs{Owner: owner},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Licenses, nil
}

func (cli *client) TransferAdministration(ctx context.Context, sender types.Address, newAdmin types.Address) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"transferAdministration",
		&service.TransferAdministrationArgs{Sender: sender, NewAdmin: newAdmin},
		resp,
	)
}

func (cli *client) Upgrade(ctx context.Context, sender types.Address, params *contract.UpgradeParams) error {
	resp := new(service.SuccessReply)
	return cli.req.SendRequest(
		ctx,
		"upgrade",
		&service.UpgradeArgs{Sender: sender, Params: *params},
		resp,
	)
}

func (cli *client) View(ctx context.Context) (*contract.ViewState, error) {
	resp := new(service.ViewReply)
	if err := cli.req.SendRequest(ctx, "view", nil, resp); err != nil {
		return nil, err
	}
	return resp.State, nil
}
