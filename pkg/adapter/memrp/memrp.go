// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package memrp is the in-memory adapter of the core repo interfaces.
// Entities live as long as the registry references them; there is no
// store/load contract. The registries only guard their own maps: the
// entities themselves are not safe for concurrent use and callers must
// serialize per-card operations.
package memrp

import (
	"context"
	"fmt"
	"sync"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/cerr"
	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/model"
	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/repo"
)

// Cards is the in-memory model.Card registry.
type Cards struct {
	mu   sync.RWMutex
	byID map[string]*model.Card
}

// NewCards creates an empty cards registry.
func NewCards() *Cards {
	return &Cards{byID: make(map[string]*model.Card)}
}

// Add registers the card, rejecting duplicate identifiers.
func (cs *Cards) Add(_ context.Context, c *model.Card) error {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.byID[c.ID()]; ok {
		return fmt.Errorf("card %q: %w", c.ID(), repo.ErrDuplicate)
	}
	cs.byID[c.ID()] = c
	return nil
}

// Find resolves a card by id.
func (cs *Cards) Find(
	_ context.Context, id string,
) (*model.Card, error) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	c, ok := cs.byID[id]
	if !ok {
		return nil, cerr.NotFound(fmt.Errorf(
			"card %q: %w", id, repo.ErrNotFound,
		))
	}
	return c, nil
}

// Lines is the in-memory model.Line registry.
type Lines struct {
	mu     sync.RWMutex
	byCode map[string]*model.Line
}

// NewLines creates an empty lines registry.
func NewLines() *Lines {
	return &Lines{byCode: make(map[string]*model.Line)}
}

// Add registers the line, rejecting duplicate codes.
func (ls *Lines) Add(_ context.Context, l *model.Line) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if _, ok := ls.byCode[l.Code()]; ok {
		return fmt.Errorf("line %q: %w", l.Code(), repo.ErrDuplicate)
	}
	ls.byCode[l.Code()] = l
	return nil
}

// Find resolves a line by code.
func (ls *Lines) Find(
	_ context.Context, code string,
) (*model.Line, error) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	l, ok := ls.byCode[code]
	if !ok {
		return nil, cerr.NotFound(fmt.Errorf(
			"line %q: %w", code, repo.ErrNotFound,
		))
	}
	return l, nil
}

// List returns all registered lines in an unspecified order.
func (ls *Lines) List(_ context.Context) ([]*model.Line, error) {
	ls.mu.RLock()
	defer ls.mu.RUnlock()
	all := make([]*model.Line, 0, len(ls.byCode))
	for _, l := range ls.byCode {
		all = append(all, l)
	}
	return all, nil
}

// Riders is the in-memory model.Rider registry.
type Riders struct {
	mu     sync.RWMutex
	byName map[string]*model.Rider
}

// NewRiders creates an empty riders registry.
func NewRiders() *Riders {
	return &Riders{byName: make(map[string]*model.Rider)}
}

// Add registers the rider, rejecting duplicate names.
func (rs *Riders) Add(_ context.Context, r *model.Rider) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if _, ok := rs.byName[r.Name()]; ok {
		return fmt.Errorf("rider %q: %w", r.Name(), repo.ErrDuplicate)
	}
	rs.byName[r.Name()] = r
	return nil
}

// Find resolves a rider by name.
func (rs *Riders) Find(
	_ context.Context, name string,
) (*model.Rider, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	r, ok := rs.byName[name]
	if !ok {
		return nil, cerr.NotFound(fmt.Errorf(
			"rider %q: %w", name, repo.ErrNotFound,
		))
	}
	return r, nil
}
