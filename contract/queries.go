// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/types"
)

type OperatorQuery struct {
	Owner     types.Address `serialize:"true" json:"owner"`
	Candidate types.Address `serialize:"true" json:"candidate"`
}

// OperatorOf answers each query with whether candidate is an operator of
// owner.
func (c *Contract) OperatorOf(queries []OperatorQuery) ([]bool, error) {
	c.lk.RLock()
	defer c.lk.RUnlock()

	response := make([]bool, len(queries))
	for i, q := range queries {
		is, err := ledger.IsOperator(c.db, q.Candidate, q.Owner)
		if err != nil {
			return nil, err
		}
		response[i] = is
	}
	return response, nil
}

type BalanceQuery struct {
	Token types.TokenID `serialize:"true" json:"token"`
	Owner types.Address `serialize:"true" json:"owner"`
}

// BalanceOf returns the 0/1 balance for each query. Rejects if any
// queried token does not exist.
func (c *Contract) BalanceOf(queries []BalanceQuery) ([]types.TokenAmount, error) {
	c.lk.RLock()
	defer c.lk.RUnlock()

	response := make([]types.TokenAmount, len(queries))
	for i, q := range queries {
		bal, err := ledger.Balance(c.db, q.Token, q.Owner)
		if err != nil {
			return nil, err
		}
		response[i] = bal
	}
	return response, nil
}

// TokenMetadata returns the metadata URL record for each token id.
// Rejects if any queried token does not exist.
func (c *Contract) TokenMetadata(ids []types.TokenID) ([]*ledger.TokenMetadata, error) {
	c.lk.RLock()
	defer c.lk.RUnlock()

	response := make([]*ledger.TokenMetadata, len(ids))
	for i, id := range ids {
		md, has, err := ledger.GetTokenMetadata(c.db, id)
		if err != nil {
			return nil, err
		}
		if !has {
			return nil, ledger.ErrInvalidTokenID
		}
		response[i] = md
	}
	return response, nil
}

type SupportKind uint8

const (
	NoSupport SupportKind = iota
	Support
	SupportBy
)

type SupportResult struct {
	Kind         SupportKind             `serialize:"true" json:"kind"`
	Implementors []types.ContractAddress `serialize:"true" json:"implementors,omitempty"`
}

// Supports answers capability discovery. Natively supported standards
// answer Support unconditionally; otherwise the implementor registry is
// consulted.
func (c *Contract) Supports(ids []types.StandardID) ([]SupportResult, error) {
	c.lk.RLock()
	defer c.lk.RUnlock()

	response := make([]SupportResult, len(ids))
	for i, id := range ids {
		if c.genesis.Supported(id) {
			response[i] = SupportResult{Kind: Support}
			continue
		}
		impls, has, err := ledger.GetImplementors(c.db, id)
		if err != nil {
			return nil, err
		}
		if has {
			response[i] = SupportResult{Kind: SupportBy, Implementors: impls}
		} else {
			response[i] = SupportResult{Kind: NoSupport}
		}
	}
	return response, nil
}
