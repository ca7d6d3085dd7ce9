// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package event

import (
	log "github.com/inconshreveable/log15"
)

var (
	_ Logger = (*Memory)(nil)
	_ Logger = (*Sink)(nil)
)

// Memory is a bounded in-memory logger. A capacity of 0 means unbounded.
type Memory struct {
	capacity int
	events   []*Event
}

func NewMemory(capacity int) *Memory {
	return &Memory{capacity: capacity}
}

func (m *Memory) Log(e *Event) error {
	if e == nil || e.Typ == "" {
		return ErrLogMalformed
	}
	if m.capacity > 0 && len(m.events) >= m.capacity {
		return ErrLogFull
	}
	m.events = append(m.events, e)
	return nil
}

// Events returns the descriptors logged so far, in emission order.
func (m *Memory) Events() []*Event { return m.events }

// Sink writes every descriptor to the process log.
type Sink struct{}

func (Sink) Log(e *Event) error {
	if e == nil || e.Typ == "" {
		return ErrLogMalformed
	}
	log.Info("event",
		"type", e.Typ,
		"token", e.Token,
		"amount", e.Amount,
		"owner", e.Owner,
		"from", e.From,
		"to", e.To,
		"operator", e.Operator,
	)
	return nil
}
