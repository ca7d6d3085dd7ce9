// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/licensevm/types"
)

var (
	addrA = types.AccountAddress(common.HexToAddress("0x0a"))
	addrB = types.AccountAddress(common.HexToAddress("0x0b"))
	addrC = types.NewContractAddress(1, 0)
)

func TestMintBurn(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	if err := Mint(db, 7, addrA, &TokenMetadata{URL: "u"}); err != nil {
		t.Fatal(err)
	}
	// Mint collision
	if err := Mint(db, 7, addrB, &TokenMetadata{URL: "u"}); !errors.Is(err, ErrTokenExists) {
		t.Fatalf("err expected %v, got %v", ErrTokenExists, err)
	}

	// Burn by non-holder
	if err := Burn(db, 7, addrB); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err expected %v, got %v", ErrInsufficientFunds, err)
	}
	// Burn of missing token
	if err := Burn(db, 8, addrA); !errors.Is(err, ErrInvalidTokenID) {
		t.Fatalf("err expected %v, got %v", ErrInvalidTokenID, err)
	}
	if err := Burn(db, 7, addrA); err != nil {
		t.Fatal(err)
	}

	// Existence index, metadata and balance all agree after burn.
	has, err := HasToken(db, 7)
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Fatal("token still exists after burn")
	}
	if _, has, _ := GetTokenMetadata(db, 7); has {
		t.Fatal("metadata still exists after burn")
	}
	if _, err := Balance(db, 7, addrA); !errors.Is(err, ErrInvalidTokenID) {
		t.Fatalf("err expected %v, got %v", ErrInvalidTokenID, err)
	}

	// Re-mint after burn is permitted.
	if err := Mint(db, 7, addrB, &TokenMetadata{URL: "u"}); err != nil {
		t.Fatal(err)
	}
}

func TestTransfer(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	if err := Mint(db, 7, addrA, &TokenMetadata{URL: "u"}); err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		id     types.TokenID
		amount types.TokenAmount
		from   types.Address
		to     types.Address
		err    error
	}{
		{ // missing token
			id: 9, amount: 1, from: addrA, to: addrB,
			err: ErrInvalidTokenID,
		},
		{ // invalid amount
			id: 7, amount: 2, from: addrA, to: addrB,
			err: ErrInvalidAmount,
		},
		{ // zero-amount no-op
			id: 7, amount: 0, from: addrB, to: addrA,
		},
		{ // sender does not hold the token
			id: 7, amount: 1, from: addrB, to: addrC,
			err: ErrInsufficientFunds,
		},
		{ // successful transfer, contract recipient
			id: 7, amount: 1, from: addrA, to: addrC,
		},
	}
	for i, tv := range tt {
		err := Transfer(db, tv.id, tv.amount, tv.from, tv.to)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
	}

	// Ownership is exclusive: exactly one holder with balance 1.
	balances := map[types.Address]types.TokenAmount{}
	for _, addr := range []types.Address{addrA, addrB, addrC} {
		bal, err := Balance(db, 7, addr)
		if err != nil {
			t.Fatal(err)
		}
		balances[addr] = bal
	}
	if balances[addrA] != 0 || balances[addrB] != 0 || balances[addrC] != 1 {
		t.Fatalf("balances wrong: %v", balances)
	}
}

func TestZeroTransferNoStateChange(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	if err := Mint(db, 3, addrA, &TokenMetadata{URL: "u"}); err != nil {
		t.Fatal(err)
	}
	if err := Transfer(db, 3, 0, addrA, addrB); err != nil {
		t.Fatal(err)
	}
	bal, err := Balance(db, 3, addrA)
	if err != nil {
		t.Fatal(err)
	}
	if bal != 1 {
		t.Fatalf("balance expected 1, got %d", bal)
	}
}

func TestTokensOf(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	for _, id := range []types.TokenID{1, 5, 9} {
		if err := Mint(db, id, addrA, &TokenMetadata{URL: "u"}); err != nil {
			t.Fatal(err)
		}
	}
	if err := Mint(db, 2, addrB, &TokenMetadata{URL: "u"}); err != nil {
		t.Fatal(err)
	}

	tokens, err := TokensOf(db, addrA)
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("tokens expected 3, got %d (%v)", len(tokens), tokens)
	}
	for i, id := range []types.TokenID{1, 5, 9} {
		if tokens[i] != id {
			t.Fatalf("#%d: token expected %d, got %d", i, id, tokens[i])
		}
	}

	all, err := AllTokens(db)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("all tokens expected 4, got %d", len(all))
	}
}

func TestOperatorsIdempotent(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	// Double add behaves like a single add.
	if err := AddOperator(db, addrA, addrB); err != nil {
		t.Fatal(err)
	}
	if err := AddOperator(db, addrA, addrB); err != nil {
		t.Fatal(err)
	}
	ops, err := OperatorsOf(db, addrA)
	if err != nil {
		t.Fatal(err)
	}
	if len(ops) != 1 || ops[0] != addrB {
		t.Fatalf("operators expected [%v], got %v", addrB, ops)
	}

	// Operator relation is directed.
	is, err := IsOperator(db, addrB, addrA)
	if err != nil {
		t.Fatal(err)
	}
	if !is {
		t.Fatal("operator expected")
	}
	is, err = IsOperator(db, addrA, addrB)
	if err != nil {
		t.Fatal(err)
	}
	if is {
		t.Fatal("reverse relation must not hold")
	}

	// Removing a non-operator succeeds silently.
	if err := RemoveOperator(db, addrA, addrC); err != nil {
		t.Fatal(err)
	}
	if err := RemoveOperator(db, addrA, addrB); err != nil {
		t.Fatal(err)
	}
	is, err = IsOperator(db, addrB, addrA)
	if err != nil {
		t.Fatal(err)
	}
	if is {
		t.Fatal("operator still enabled after removal")
	}
}

func TestGlobalOperators(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	if err := AddGlobalOperator(db, addrB); err != nil {
		t.Fatal(err)
	}
	is, err := IsGlobalOperator(db, addrB)
	if err != nil {
		t.Fatal(err)
	}
	if !is {
		t.Fatal("global operator expected")
	}

	// Global and per-owner operator sets are distinct.
	is, err = IsOperator(db, addrB, addrA)
	if err != nil {
		t.Fatal(err)
	}
	if is {
		t.Fatal("global operator must not imply per-owner operator")
	}

	if err := RemoveGlobalOperator(db, addrB); err != nil {
		t.Fatal(err)
	}
	is, err = IsGlobalOperator(db, addrB)
	if err != nil {
		t.Fatal(err)
	}
	if is {
		t.Fatal("global operator still enabled after removal")
	}
}

func TestImplementorsOverwrite(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	const std = types.StandardID("CIS-3")

	if _, has, err := GetImplementors(db, std); err != nil || has {
		t.Fatalf("fresh registry: has %v err %v", has, err)
	}

	first := []types.ContractAddress{{Index: 1}, {Index: 2}}
	if err := SetImplementors(db, std, first); err != nil {
		t.Fatal(err)
	}
	second := []types.ContractAddress{{Index: 9, Subindex: 1}}
	if err := SetImplementors(db, std, second); err != nil {
		t.Fatal(err)
	}

	got, has, err := GetImplementors(db, std)
	if err != nil {
		t.Fatal(err)
	}
	if !has {
		t.Fatal("implementors expected")
	}
	// Overwrite, not merge.
	if len(got) != 1 || got[0] != second[0] {
		t.Fatalf("implementors expected %v, got %v", second, got)
	}
}
