// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package license defines the per-token license record and its lifecycle
// state machine.
package license

import (
	"github.com/ava-labs/licensevm/codec"
	"github.com/ava-labs/licensevm/types"
)

func init() {
	codec.RegisterType(&Record{})
}

type State uint8

const (
	Active State = iota
	Paused
	Dormant
	Expired
	Suspended
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Paused:
		return "paused"
	case Dormant:
		return "dormant"
	case Expired:
		return "expired"
	case Suspended:
		return "suspended"
	default:
		return "unknown"
	}
}

type Type uint8

const (
	Monthly Type = iota
	Yearly
	OneTime
)

func (t Type) String() string {
	switch t {
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	case OneTime:
		return "one-time"
	default:
		return "unknown"
	}
}

type RenewalStatus uint8

const (
	RenewalNotDue RenewalStatus = iota
	RenewalDue
	Renewed
)

// Period is the validity window of a license.
type Period struct {
	ValidFrom  int64 `serialize:"true" json:"validFrom"`
	ValidUntil int64 `serialize:"true" json:"validUntil"`
}

// HistoryEntry records one ownership change. History is append-only.
type HistoryEntry struct {
	From types.Address `serialize:"true" json:"from"`
	To   types.Address `serialize:"true" json:"to"`
	Date int64         `serialize:"true" json:"date"`
}

// Record is the license metadata attached to a token. It is created by
// mint, mutated by transfer/suspend/reactivate/renew and deleted only
// together with the token.
type Record struct {
	Type     Type   `serialize:"true" json:"type"`
	Validity Period `serialize:"true" json:"validity"`
	State    State  `serialize:"true" json:"state"`

	Domains []string `serialize:"true" json:"domains,omitempty"`

	MintingDate int64         `serialize:"true" json:"mintingDate"`
	MintedBy    types.Address `serialize:"true" json:"mintedBy"`

	Owner         types.Address  `serialize:"true" json:"owner"`
	PreviousOwner types.Address  `serialize:"true" json:"previousOwner"`
	History       []HistoryEntry `serialize:"true" json:"history,omitempty"`

	Payment uint64        `serialize:"true" json:"payment"`
	Renewal RenewalStatus `serialize:"true" json:"renewal"`
}

// New returns a freshly minted license in the Active state.
func New(
	typ Type,
	now int64,
	validUntil int64,
	domains []string,
	minter types.Address,
	owner types.Address,
	payment uint64,
) *Record {
	return &Record{
		Type: typ,
		Validity: Period{
			ValidFrom:  now,
			ValidUntil: validUntil,
		},
		State:       Active,
		Domains:     domains,
		MintingDate: now,
		MintedBy:    minter,
		Owner:       owner,
		Payment:     payment,
		Renewal:     RenewalNotDue,
	}
}

// EffectiveState projects the stored state at a point in time. Expired is
// never stored; a license whose window has elapsed reads as Expired while
// its stored state remains Active.
func (r *Record) EffectiveState(now int64) State {
	if r.State == Active && r.Validity.ValidUntil <= now {
		return Expired
	}
	return r.State
}

// Suspend moves Active to Suspended. All other states reject.
func (r *Record) Suspend() error {
	if r.State != Active {
		return ErrInvalidState
	}
	r.State = Suspended
	return nil
}

// Reactivate moves Suspended back to Active. The validity window is left
// untouched.
func (r *Record) Reactivate() error {
	if r.State != Suspended {
		return ErrInvalidState
	}
	r.State = Active
	return nil
}

// Renew rewrites the validity window to [now, newExpiry). The stored
// state must be Active and the new expiry strictly in the future; the
// state itself does not change.
func (r *Record) Renew(now int64, newExpiry int64, payment uint64) error {
	if r.State != Active {
		return ErrInvalidState
	}
	if newExpiry <= now {
		return ErrInvalidExpiry
	}
	r.Validity = Period{
		ValidFrom:  now,
		ValidUntil: newExpiry,
	}
	r.Payment = payment
	r.Renewal = Renewed
	return nil
}

// RecordTransfer appends a history entry and rotates the owner fields.
func (r *Record) RecordTransfer(from types.Address, to types.Address, date int64) {
	r.History = append(r.History, HistoryEntry{
		From: from,
		To:   to,
		Date: date,
	})
	r.PreviousOwner = r.Owner
	r.Owner = to
}

// Copy returns a deep copy of the record.
func (r *Record) Copy() *Record {
	cp := *r
	cp.Domains = append([]string(nil), r.Domains...)
	cp.History = append([]HistoryEntry(nil), r.History...)
	return &cp
}
