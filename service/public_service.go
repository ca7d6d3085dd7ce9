// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package service

import (
	"net/http"

	log "github.com/inconshreveable/log15"

	"github.com/ava-labs/licensevm/contract"
	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/license"
	"github.com/ava-labs/licensevm/types"
)

type PublicService struct {
	c *contract.Contract
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) (err error) {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *contract.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) error {
	reply.Genesis = svc.c.Genesis()
	return nil
}

type AdministratorReply struct {
	Administrator types.Address `serialize:"true" json:"administrator"`
}

func (svc *PublicService) Administrator(_ *http.Request, _ *struct{}, reply *AdministratorReply) error {
	admin, err := svc.c.Administrator()
	if err != nil {
		return err
	}
	reply.Administrator = admin
	return nil
}

type SuccessReply struct {
	Success bool `serialize:"true" json:"success"`
}

type MintArgs struct {
	Sender types.Address       `serialize:"true" json:"sender"`
	Params contract.MintParams `serialize:"true" json:"params"`
}

func (svc *PublicService) Mint(_ *http.Request, args *MintArgs, reply *SuccessReply) error {
	log.Debug("mint", "token", args.Params.Token, "owner", args.Params.Owner)
	if err := svc.c.Mint(args.Sender, &args.Params); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type BurnArgs struct {
	Sender types.Address       `serialize:"true" json:"sender"`
	Params contract.BurnParams `serialize:"true" json:"params"`
}

func (svc *PublicService) Burn(_ *http.Request, args *BurnArgs, reply *SuccessReply) error {
	log.Debug("burn", "token", args.Params.Token, "owner", args.Params.Owner)
	if err := svc.c.Burn(args.Sender, &args.Params); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type TransferArgs struct {
	Sender    types.Address            `serialize:"true" json:"sender"`
	Transfers []contract.TransferEntry `serialize:"true" json:"transfers"`
}

func (svc *PublicService) Transfer(r *http.Request, args *TransferArgs, reply *SuccessReply) error {
	log.Debug("transfer", "entries", len(args.Transfers))
	if err := svc.c.Transfer(r.Context(), args.Sender, args.Transfers); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type UpdateOperatorArgs struct {
	Sender  types.Address             `serialize:"true" json:"sender"`
	Updates []contract.OperatorUpdate `serialize:"true" json:"updates"`
}

func (svc *PublicService) UpdateOperator(_ *http.Request, args *UpdateOperatorArgs, reply *SuccessReply) error {
	if err := svc.c.UpdateOperator(args.Sender, args.Updates); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type GlobalOperatorArgs struct {
	Sender   types.Address `serialize:"true" json:"sender"`
	Operator types.Address `serialize:"true" json:"operator"`
}

func (svc *PublicService) AddGlobalOperator(_ *http.Request, args *GlobalOperatorArgs, reply *SuccessReply) error {
	log.Debug("addGlobalOperator", "operator", args.Operator)
	if err := svc.c.AddGlobalOperator(args.Sender, args.Operator); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

func (svc *PublicService) RemoveGlobalOperator(_ *http.Request, args *GlobalOperatorArgs, reply *SuccessReply) error {
	log.Debug("removeGlobalOperator", "operator", args.Operator)
	if err := svc.c.RemoveGlobalOperator(args.Sender, args.Operator); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type OperatorOfArgs struct {
	Queries []contract.OperatorQuery `serialize:"true" json:"queries"`
}

type OperatorOfReply struct {
	Results []bool `serialize:"true" json:"results"`
}

func (svc *PublicService) OperatorOf(_ *http.Request, args *OperatorOfArgs, reply *OperatorOfReply) error {
	results, err := svc.c.OperatorOf(args.Queries)
	if err != nil {
		return err
	}
	reply.Results = results
	return nil
}

type BalanceOfArgs struct {
	Queries []contract.BalanceQuery `serialize:"true" json:"queries"`
}

type BalanceOfReply struct {
	Balances []types.TokenAmount `serialize:"true" json:"balances"`
}

func (svc *PublicService) BalanceOf(_ *http.Request, args *BalanceOfArgs, reply *BalanceOfReply) error {
	balances, err := svc.c.BalanceOf(args.Queries)
	if err != nil {
		return err
	}
	reply.Balances = balances
	return nil
}

type TokenMetadataArgs struct {
	Tokens []types.TokenID `serialize:"true" json:"tokens"`
}

type TokenMetadataReply struct {
	Metadata []*ledger.TokenMetadata `serialize:"true" json:"metadata"`
}

func (svc *PublicService) TokenMetadata(_ *http.Request, args *TokenMetadataArgs, reply *TokenMetadataReply) error {
	metadata, err := svc.c.TokenMetadata(args.Tokens)
	if err != nil {
		return err
	}
	reply.Metadata = metadata
	return nil
}

type SupportsArgs struct {
	Standards []types.StandardID `serialize:"true" json:"standards"`
}

type SupportsReply struct {
	Results []contract.SupportResult `serialize:"true" json:"results"`
}

func (svc *PublicService) Supports(_ *http.Request, args *SupportsArgs, reply *SupportsReply) error {
	results, err := svc.c.Supports(args.Standards)
	if err != nil {
		return err
	}
	reply.Results = results
	return nil
}

type SetImplementorsArgs struct {
	Sender       types.Address           `serialize:"true" json:"sender"`
	Standard     types.StandardID        `serialize:"true" json:"standard"`
	Implementors []types.ContractAddress `serialize:"true" json:"implementors"`
}

func (svc *PublicService) SetImplementors(_ *http.Request, args *SetImplementorsArgs, reply *SuccessReply) error {
	if err := svc.c.SetImplementors(args.Sender, args.Standard, args.Implementors); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type LifecycleArgs struct {
	Sender types.Address `serialize:"true" json:"sender"`
	Token  types.TokenID `serialize:"true" json:"token"`
}

func (svc *PublicService) Suspend(_ *http.Request, args *LifecycleArgs, reply *SuccessReply) error {
	log.Debug("suspend", "token", args.Token)
	if err := svc.c.Suspend(args.Sender, args.Token); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

func (svc *PublicService) Reactivate(_ *http.Request, args *LifecycleArgs, reply *SuccessReply) error {
	log.Debug("reactivate", "token", args.Token)
	if err := svc.c.Reactivate(args.Sender, args.Token); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type RenewLicenseArgs struct {
	Sender    types.Address `serialize:"true" json:"sender"`
	Token     types.TokenID `serialize:"true" json:"token"`
	NewExpiry int64         `serialize:"true" json:"newExpiry"`
	Payment   uint64        `serialize:"true" json:"payment"`
}

func (svc *PublicService) RenewLicense(_ *http.Request, args *RenewLicenseArgs, reply *SuccessReply) error {
	log.Debug("renewLicense", "token", args.Token, "newExpiry", args.NewExpiry)
	if err := svc.c.RenewLicense(args.Sender, args.Token, args.NewExpiry, args.Payment); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type ViewLicenseArgs struct {
	Token types.TokenID `serialize:"true" json:"token"`
}

type ViewLicenseReply struct {
	License *license.Record `serialize:"true" json:"license"`
}

func (svc *PublicService) ViewLicense(_ *http.Request, args *ViewLicenseArgs, reply *ViewLicenseReply) error {
	rec, err := svc.c.ViewLicense(args.Token)
	if err != nil {
		return err
	}
	reply.License = rec
	return nil
}

type ViewLicensesByOwnerArgs struct {
	Owner types.Address `serialize:"true" json:"owner"`
}

type ViewLicensesByOwnerReply struct {
	Licenses []contract.OwnedLicense `serialize:"true" json:"licenses"`
}

func (svc *PublicService) ViewLicensesByOwner(_ *http.Request, args *ViewLicensesByOwnerArgs, reply *ViewLicensesByOwnerReply) error {
	licenses, err := svc.c.ViewLicensesByOwner(args.Owner)
	if err != nil {
		return err
	}
	reply.Licenses = licenses
	return nil
}

type ViewReply struct {
	State *contract.ViewState `serialize:"true" json:"state"`
}

func (svc *PublicService) View(_ *http.Request, _ *struct{}, reply *ViewReply) error {
	state, err := svc.c.View()
	if err != nil {
		return err
	}
	reply.State = state
	return nil
}

type TransferAdministrationArgs struct {
	Sender   types.Address `serialize:"true" json:"sender"`
	NewAdmin types.Address `serialize:"true" json:"newAdmin"`
}

func (svc *PublicService) TransferAdministration(_ *http.Request, args *TransferAdministrationArgs, reply *SuccessReply) error {
	if err := svc.c.TransferAdministration(args.Sender, args.NewAdmin); err != nil {
		return err
	}
	reply.Success = true
	return nil
}

type UpgradeArgs struct {
	Sender types.Address          `serialize:"true" json:"sender"`
	Params contract.UpgradeParams `serialize:"true" json:"params"`
}

func (svc *PublicService) Upgrade(r *http.Request, args *UpgradeArgs, reply *SuccessReply) error {
	log.Info("upgrade", "module", args.Params.Module)
	if err := svc.c.Upgrade(r.Context(), args.Sender, &args.Params); err != nil {
		return err
	}
	reply.Success = true
	return nil
}
