// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"

	"github.com/ava-labs/licensevm/contract"
	"github.com/ava-labs/licensevm/event"
	"github.com/ava-labs/licensevm/license"
	"github.com/ava-labs/licensevm/service"
	"github.com/ava-labs/licensevm/types"
)

var (
	admin = types.AccountAddress(common.HexToAddress("0xad"))
	userA = types.AccountAddress(common.HexToAddress("0x0a"))
	userB = types.AccountAddress(common.HexToAddress("0x0b"))
)

func ctx() context.Context { return context.Background() }

func newTestClient(t *testing.T) Client {
	t.Helper()

	db := memdb.New()
	t.Cleanup(func() { _ = db.Close() })

	c := contract.New(db, contract.DefaultGenesis(), event.NewMemory(0))
	if err := c.Init(admin); err != nil {
		t.Fatal(err)
	}
	handler, err := service.NewHandler(c)
	if err != nil {
		t.Fatal(err)
	}
	mux := http.NewServeMux()
	mux.Handle(service.PublicEndpoint, handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return New(srv.URL)
}

func TestClientRoundTrip(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t)

	ok, err := cli.Ping(ctx())
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("ping not successful")
	}

	genesis, err := cli.Genesis(ctx())
	if err != nil {
		t.Fatal(err)
	}
	if genesis.MetadataBaseURL == "" {
		t.Fatal("genesis missing metadata base URL")
	}

	got, err := cli.Administrator(ctx())
	if err != nil {
		t.Fatal(err)
	}
	if got != admin {
		t.Fatalf("administrator expected %v, got %v", admin, got)
	}

	if err := cli.Mint(ctx(), admin, &contract.MintParams{
		Token:       7,
		Owner:       userA,
		LicenseType: license.Yearly,
		ValidUntil:  time.Now().Add(time.Hour).Unix(),
	}); err != nil {
		t.Fatal(err)
	}

	bals, err := cli.BalanceOf(ctx(), []contract.BalanceQuery{
		{Token: 7, Owner: userA},
		{Token: 7, Owner: userB},
	})
	if err != nil {
		t.Fatal(err)
	}
	if bals[0] != 1 || bals[1] != 0 {
		t.Fatalf("balances expected [1 0], got %v", bals)
	}

	if err := cli.Transfer(ctx(), userA, []contract.TransferEntry{{
		Token: 7, Amount: 1, From: userA, To: types.Receiver{Address: userB},
	}}); err != nil {
		t.Fatal(err)
	}

	rec, err := cli.ViewLicense(ctx(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Owner != userB || rec.PreviousOwner != userA {
		t.Fatalf("license owner rotation wrong: owner %v previous %v", rec.Owner, rec.PreviousOwner)
	}

	owned, err := cli.ViewLicensesByOwner(ctx(), userB)
	if err != nil {
		t.Fatal(err)
	}
	if len(owned) != 1 || owned[0].Token != 7 {
		t.Fatalf("owned licenses wrong: %+v", owned)
	}
}

func TestClientErrorSurfaced(t *testing.T) {
	t.Parallel()

	cli := newTestClient(t)

	// Strangers may not mint; the RPC error carries the message through.
	err := cli.Mint(ctx(), userA, &contract.MintParams{Token: 1, Owner: userA})
	if err == nil {
		t.Fatal("mint expected to fail")
	}
	if !strings.Contains(err.Error(), "unauthorized") {
		t.Fatalf("error %q does not name the cause", err)
	}
}
