// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package event defines the structured descriptors handed to the event
// log subsystem.
package event

import (
	"errors"

	"github.com/ava-labs/licensevm/types"
)

var (
	// Failed logging: log is full.
	ErrLogFull = errors.New("event log is full")
	// Failed logging: log is malformed.
	ErrLogMalformed = errors.New("event log is malformed")
)

const (
	Mint           = "mint"
	Burn           = "burn"
	Transfer       = "transfer"
	UpdateOperator = "updateOperator"
	TokenMetadata  = "tokenMetadata"
)

// Event is one emitted descriptor. Addresses are rendered as strings so
// the zero value drops out of JSON.
type Event struct {
	Tmstmp int64             `serialize:"true" json:"timestamp"`
	Typ    string            `serialize:"true" json:"type"`
	Token  types.TokenID     `serialize:"true" json:"token"`
	Amount types.TokenAmount `serialize:"true" json:"amount"`
	Owner  string            `serialize:"true" json:"owner,omitempty"`
	From   string            `serialize:"true" json:"from,omitempty"`
	To     string            `serialize:"true" json:"to,omitempty"`

	Operator string `serialize:"true" json:"operator,omitempty"`
	Add      bool   `serialize:"true" json:"add,omitempty"`

	URL  string `serialize:"true" json:"url,omitempty"`
	Hash string `serialize:"true" json:"hash,omitempty"`
}

// Logger receives event descriptors. Delivery failures are surfaced to
// the emitting operation, which aborts; there are no retries here.
type Logger interface {
	Log(*Event) error
}
