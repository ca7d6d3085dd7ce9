// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package contract

import (
	"errors"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/licensevm/event"
	"github.com/ava-labs/licensevm/ledger"
	"github.com/ava-labs/licensevm/license"
	"github.com/ava-labs/licensevm/types"
)

var (
	admin = types.AccountAddress(common.HexToAddress("0xad"))
	userA = types.AccountAddress(common.HexToAddress("0x0a"))
	userB = types.AccountAddress(common.HexToAddress("0x0b"))
	userC = types.AccountAddress(common.HexToAddress("0x0c"))
)

func newTestContract(t *testing.T) (*Contract, *event.Memory) {
	t.Helper()

	db := memdb.New()
	t.Cleanup(func() { _ = db.Close() })

	logger := event.NewMemory(0)
	c := New(db, DefaultGenesis(), logger)
	c.clock.Set(time.Unix(1000, 0))
	if err := c.Init(admin); err != nil {
		t.Fatal(err)
	}
	return c, logger
}

func mintTo(t *testing.T, c *Contract, token types.TokenID, owner types.Address) {
	t.Helper()
	if err := c.Mint(admin, &MintParams{
		Token:       token,
		Owner:       owner,
		LicenseType: license.Yearly,
		ValidUntil:  5000,
	}); err != nil {
		t.Fatal(err)
	}
}

func balance(t *testing.T, c *Contract, token types.TokenID, owner types.Address) types.TokenAmount {
	t.Helper()
	bals, err := c.BalanceOf([]BalanceQuery{{Token: token, Owner: owner}})
	if err != nil {
		t.Fatal(err)
	}
	return bals[0]
}

func TestInitOnce(t *testing.T) {
	t.Parallel()

	c, _ := newTestContract(t)
	if err := c.Init(userA); !errors.Is(err, ErrInitialized) {
		t.Fatalf("err expected %v, got %v", ErrInitialized, err)
	}
	got, err := c.Administrator()
	if err != nil {
		t.Fatal(err)
	}
	if got != admin {
		t.Fatalf("administrator expected %v, got %v", admin, got)
	}
}

func TestMintScenario(t *testing.T) {
	t.Parallel()

	c, logger := newTestContract(t)
	mintTo(t, c, 7, userA)

	if bal := balance(t, c, 7, userA); bal != 1 {
		t.Fatalf("balance expected 1, got %d", bal)
	}
	if bal := balance(t, c, 7, userB); bal != 0 {
		t.Fatalf("balance expected 0, got %d", bal)
	}

	mds, err := c.TokenMetadata([]types.TokenID{7})
	if err != nil {
		t.Fatal(err)
	}
	// Deterministic URL derived from the token id.
	want := c.genesis.MetadataBaseURL + "117440512"
	if mds[0].URL != want {
		t.Fatalf("url expected %q, got %q", want, mds[0].URL)
	}

	events := logger.Events()
	if len(events) != 2 {
		t.Fatalf("events expected 2, got %d", len(events))
	}
	if events[0].Typ != event.Mint || events[1].Typ != event.TokenMetadata {
		t.Fatalf("event types wrong: %v %v", events[0].Typ, events[1].Typ)
	}
}

func TestMintUnauthorized(t *testing.T) {
	t.Parallel()

	c, _ := newTestContract(t)
	err := c.Mint(userA, &MintParams{Token: 3, Owner: userA})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err expected %v, got %v", ErrUnauthorized, err)
	}

	// The failed mint must leave no trace.
	if _, err := c.BalanceOf([]BalanceQuery{{Token: 3, Owner: userA}}); !errors.Is(err, ledger.ErrInvalidTokenID) {
		t.Fatalf("err expected %v, got %v", ledger.ErrInvalidTokenID, err)
	}
	results, err := c.Supports([]types.StandardID{"CIS-9"})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Kind != NoSupport {
		t.Fatalf("support expected %v, got %v", NoSupport, results[0].Kind)
	}
}

func TestMintByGlobalOperator(t *testing.T) {
	t.Parallel()

	c, _ := newTestContract(t)
	if err := c.AddGlobalOperator(userA, userB); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err expected %v, got %v", ErrUnauthorized, err)
	}
	if err := c.AddGlobalOperator(admin, userB); err != nil {
		t.Fatal(err)
	}
	if err := c.Mint(userB, &MintParams{Token: 4, Owner: userC}); err != nil {
		t.Fatal(err)
	}
	if bal := balance(t, c, 4, userC); bal != 1 {
		t.Fatalf("balance expected 1, got %d", bal)
	}

	if err := c.RemoveGlobalOperator(admin, userB); err != nil {
		t.Fatal(err)
	}
	if err := c.Mint(userB, &MintParams{Token: 5, Owner: userC}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err expected %v, got %v", ErrUnauthorized, err)
	}
}

func TestMintCollisionLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	c, _ := newTestContract(t)
	mintTo(t, c, 7, userA)

	err := c.Mint(admin, &MintParams{Token: 7, Owner: userB})
	if !errors.Is(err, ledger.ErrTokenExists) {
		t.Fatalf("err expected %v, got %v", ledger.ErrTokenExists, err)
	}
	// First owner keeps the token; the failed attempt changed nothing.
	if bal := balance(t, c, 7, userA); bal != 1 {
		t.Fatalf("balance expected 1, got %d", bal)
	}
	if bal := balance(t, c, 7, userB); bal != 0 {
		t.Fatalf("balance expected 0, got %d", bal)
	}
}

func TestBurnAfterTransfer(t *testing.T) {
	t.Parallel()

	c, _ := newTestContract(t)
	mintTo(t, c, 7, userA)

	if err := c.Transfer(ctx(), userA, []TransferEntry{{
		Token: 7, Amount: 1, From: userA, To: types.Receiver{Address: userB},
	}}); err != nil {
		t.Fatal(err)
	}

	// A no longer holds the token.
	err := c.Burn(userA, &BurnParams{Token: 7, Owner: userA, Amount: 1})
	if !errors.Is(err, ledger.ErrInsufficientFunds) {
		t.Fatalf("err expected %v, got %v", ledger.ErrInsufficientFunds, err)
	}

	// Burn by a sender that is not the named owner rejects.
	err = c.Burn(userA, &BurnParams{Token: 7, Owner: userB, Amount: 1})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err expected %v, got %v", ErrUnauthorized, err)
	}

	if err := c.Burn(userB, &BurnParams{Token: 7, Owner: userB, Amount: 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.ViewLicense(7); !errors.Is(err, license.ErrNotFound) {
		t.Fatalf("err expected %v, got %v", license.ErrNotFound, err)
	}
}

func TestUpdateOperatorIdempotent(t *testing.T) {
	t.Parallel()

	c, _ := newTestContract(t)
	updates := []OperatorUpdate{
		{Operator: userB, Add: true},
		{Operator: userB, Add: true},
		{Operator: userC, Add: false},
	}
	if err := c.UpdateOperator(userA, updates); err != nil {
		t.Fatal(err)
	}

	resp, err := c.OperatorOf([]OperatorQuery{
		{Owner: userA, Candidate: userB},
		{Owner: userA, Candidate: userC},
		{Owner: userB, Candidate: userA}, // directed, not symmetric
	})
	if err != nil {
		t.Fatal(err)
	}
	if !resp[0] || resp[1] || resp[2] {
		t.Fatalf("operator response wrong: %v", resp)
	}
}

func TestSupports(t *testing.T) {
	t.Parallel()

	c, _ := newTestContract(t)
	impl := []types.ContractAddress{{Index: 77, Subindex: 0}}
	if err := c.SetImplementors(userA, "CIS-5", impl); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err expected %v, got %v", ErrUnauthorized, err)
	}
	if err := c.SetImplementors(admin, "CIS-5", impl); err != nil {
		t.Fatal(err)
	}

	results, err := c.Supports([]types.StandardID{"CIS-0", "CIS-2", "CIS-5", "CIS-9"})
	if err != nil {
		t.Fatal(err)
	}
	tt := []SupportKind{Support, Support, SupportBy, NoSupport}
	for i, kind := range tt {
		if results[i].Kind != kind {
			t.Fatalf("#%d: kind expected %v, got %v", i, kind, results[i].Kind)
		}
	}
	if len(results[2].Implementors) != 1 || results[2].Implementors[0] != impl[0] {
		t.Fatalf("implementors expected %v, got %v", impl, results[2].Implementors)
	}
}

func TestTransferAdministration(t *testing.T) {
	t.Parallel()

	c, _ := newTestContract(t)
	if err := c.TransferAdministration(userA, userA); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err expected %v, got %v", ErrUnauthorized, err)
	}
	if err := c.TransferAdministration(admin, userA); err != nil {
		t.Fatal(err)
	}
	got, err := c.Administrator()
	if err != nil {
		t.Fatal(err)
	}
	if got != userA {
		t.Fatalf("administrator expected %v, got %v", userA, got)
	}
	// The previous administrator lost the capability.
	if err := c.TransferAdministration(admin, admin); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err expected %v, got %v", ErrUnauthorized, err)
	}
}

func TestView(t *testing.T) {
	t.Parallel()

	c, _ := newTestContract(t)
	mintTo(t, c, 1, userA)
	mintTo(t, c, 2, userB)
	if err := c.UpdateOperator(userA, []OperatorUpdate{{Operator: userC, Add: true}}); err != nil {
		t.Fatal(err)
	}
	if err := c.AddGlobalOperator(admin, userC); err != nil {
		t.Fatal(err)
	}

	view, err := c.View()
	if err != nil {
		t.Fatal(err)
	}
	if len(view.AllTokens) != 2 {
		t.Fatalf("tokens expected 2, got %d", len(view.AllTokens))
	}
	if view.Administrator != admin {
		t.Fatalf("administrator expected %v, got %v", admin, view.Administrator)
	}
	if len(view.GlobalOperators) != 1 || view.GlobalOperators[0] != userC {
		t.Fatalf("global operators wrong: %v", view.GlobalOperators)
	}

	var sawA bool
	for _, acct := range view.Accounts {
		if acct.Address != userA {
			continue
		}
		sawA = true
		if len(acct.OwnedTokens) != 1 || acct.OwnedTokens[0] != 1 {
			t.Fatalf("owned tokens wrong: %v", acct.OwnedTokens)
		}
		if len(acct.Operators) != 1 || acct.Operators[0] != userC {
			t.Fatalf("operators wrong: %v", acct.Operators)
		}
	}
	if !sawA {
		t.Fatal("account A missing from view")
	}
}
