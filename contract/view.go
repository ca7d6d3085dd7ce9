// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/types"
)

type AccountView struct {
	Address     types.Address   `serialize:"true" json:"address"`
	OwnedTokens []types.TokenID `serialize:"true" json:"ownedTokens,omitempty"`
	Operators   []types.Address `serialize:"true" json:"operators,omitempty"`
}

type ViewState struct {
	Accounts        []AccountView   `serialize:"true" json:"accounts"`
	AllTokens       []types.TokenID `serialize:"true" json:"allTokens"`
	GlobalOperators []types.Address `serialize:"true" json:"globalOperators,omitempty"`
	Administrator   types.Address   `serialize:"true" json:"administrator"`
}

// View dumps the whole ledger state. Meant for testing and inspection.
func (c *Contract) View() (*ViewState, error) {
	c.lk.RLock()
	defer c.lk.RUnlock()

	accounts := map[types.Address]*AccountView{}
	locate := func(addr types.Address) *AccountView {
		if v, ok := accounts[addr]; ok {
			return v
		}
		v := &AccountView{Address: addr}
		accounts[addr] = v
		return v
	}

	var order []types.Address
	if err := ledger.AllOwned(c.db, func(owner types.Address, id types.TokenID) error {
		if _, ok := accounts[owner]; !ok {
			order = append(order, owner)
		}
		v := locate(owner)
		v.OwnedTokens = append(v.OwnedTokens, id)
		return nil
	}); err != nil {
		return nil, err
	}
	if err := ledger.AllOperators(c.db, func(owner types.Address, operator types.Address) error {
		if _, ok := accounts[owner]; !ok {
			order = append(order, owner)
		}
		v := locate(owner)
		v.Operators = append(v.Operators, operator)
		return nil
	}); err != nil {
		return nil, err
	}

	allTokens, err := ledger.AllTokens(c.db)
	if err != nil {
		return nil, err
	}
	globalOperators, err := ledger.GlobalOperators(c.db)
	if err != nil {
		return nil, err
	}
	admin, _, err := ledger.GetAdministrator(c.db)
	if err != nil {
		return nil, err
	}

	view := &ViewState{
		AllTokens:       allTokens,
		GlobalOperators: globalOperators,
		Administrator:   admin,
	}
	for _, addr := range order {
		view.Accounts = append(view.Accounts, *accounts[addr])
	}
	return view, nil
}
