// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package service exposes the ledger entrypoints over JSON-RPC.
package service

import (
	"net/http"

	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/rpc/v2"

	"github.com/ava-labs/licensevm/contract"
)

// Name is the JSON-RPC namespace, e.g. "licensevm.mint".
const Name = "licensevm"

// PublicEndpoint is the HTTP path the handler is mounted on.
const PublicEndpoint = "/public"

// NewHandler constructs the JSON-RPC handler for a ledger instance.
func NewHandler(c *contract.Contract) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&PublicService{c: c}, Name); err != nil {
		return nil, err
	}
	return server, nil
}
