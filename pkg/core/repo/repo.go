// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo specifies the repository interfaces which the use cases
// layer requires for looking up cards, lines, and riders. The data
// model lives in memory only, so the interfaces describe registries,
// not a persistence contract; the adapter layer provides the in-memory
// implementations. Keeping the interfaces in the core layer lets the
// use cases stay independent of any concrete registry.
package repo

import (
	"context"
	"errors"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/model"
)

// ErrNotFound indicates that the requested entity is not registered.
// Implementations wrap it with the looked up identifier.
var ErrNotFound = errors.New("not found")

// ErrDuplicate indicates that an entity with the same identifier is
// already registered.
var ErrDuplicate = errors.New("already registered")

// Cards registers and resolves fare cards by their identifier.
type Cards interface {
	// Add registers a card. It fails with ErrDuplicate if a card
	// with the same id is already registered.
	Add(ctx context.Context, c *model.Card) error
	// Find resolves a card by id, failing with ErrNotFound when no
	// such card is registered.
	Find(ctx context.Context, id string) (*model.Card, error)
}

// Lines registers and resolves transport lines by their code.
type Lines interface {
	Add(ctx context.Context, l *model.Line) error
	Find(ctx context.Context, code string) (*model.Line, error)
	// List returns all registered lines in an unspecified order.
	List(ctx context.Context) ([]*model.Line, error)
}

// Riders registers and resolves riders by their name.
type Riders interface {
	Add(ctx context.Context, r *model.Rider) error
	Find(ctx context.Context, name string) (*model.Rider, error)
}
