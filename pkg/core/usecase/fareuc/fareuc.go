// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fareuc contains the fares UseCase which orchestrates the
// fare-card operations: issuing cards and registering lines and
// riders, recharging and crediting top-ups, and charging trips either
// directly against a card or through a rider (which unlocks the
// frequent-rider and transfer rules). The use case resolves entities
// through the repository interfaces, reads the current time from the
// injected clock, and applies the tariff rule book to everything it
// creates; the fare rules themselves live in the model layer.
//
// Operations are synchronous, in-memory state transitions with no
// retries. The use case performs no per-card locking: callers exposing
// it behind a concurrent boundary must serialize access per card.
package fareuc

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/cerr"
	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/clock"
	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/log"
	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/model"
	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/repo"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrRechargeRejected indicates that a recharge was rejected, either
// because the amount is not an accepted denomination or because the
// resulting balance would exceed the ceiling. It is wrapped as a
// declined cerr.Error.
var ErrRechargeRejected = errors.New("recharge rejected")

// UseCase represents the fares use case. It holds the card, line, and
// rider registries, the clock supplying the current time, and the
// tariff rule book which governs every card and line it creates.
type UseCase struct {
	cards  repo.Cards
	lines  repo.Lines
	riders repo.Riders

	clk    clock.Clock
	tariff *model.Tariff
}

// New instantiates a fares use case. Required collaborators are passed
// individually, so the caller has to provision them and whenever they
// change, the caller will notice and fix them due to a compilation
// error. Optional parameters are passed as a series of functional
// options. Without options, the system clock and the default tariff
// apply.
func New(
	cards repo.Cards, lines repo.Lines, riders repo.Riders,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{cards: cards, lines: lines, riders: riders}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.clk == nil {
		uc.clk = clock.System{}
	}
	if uc.tariff == nil {
		uc.tariff = model.DefaultTariff()
	}
	return uc, nil
}

// Tariff returns the rule book governing this use case.
func (uc *UseCase) Tariff() *model.Tariff {
	return uc.tariff
}

// IssueCard creates and registers a card of the given kind with the
// given initial balance. An empty id asks for a generated identifier.
// The issued card is returned.
func (uc *UseCase) IssueCard(
	ctx context.Context,
	id string, kind model.CardKind, initial decimal.Decimal,
) (*model.Card, error) {
	if id == "" {
		id = uuid.NewString()
	}
	c, err := model.NewCardWithTariff(id, initial, kind, uc.tariff)
	if err != nil {
		return nil, fmt.Errorf("creating card: %w", err)
	}
	if err := uc.cards.Add(ctx, c); err != nil {
		return nil, fmt.Errorf("registering card: %w", err)
	}
	log.Info(ctx, "card issued",
		log.Card(c.ID()),
		log.Amount("balance", c.Balance()),
	)
	return c, nil
}

// RegisterLine creates and registers a line with its fare defaulted
// by kind from the tariff.
func (uc *UseCase) RegisterLine(
	ctx context.Context, code, operator string, intercity bool,
) (*model.Line, error) {
	l := model.NewLineWithTariff(code, operator, intercity, uc.tariff)
	if err := uc.lines.Add(ctx, l); err != nil {
		return nil, fmt.Errorf("registering line: %w", err)
	}
	log.Info(ctx, "line registered",
		log.Line(code),
		log.Amount("fare", l.Fare()),
	)
	return l, nil
}

// RegisterRider creates and registers a rider holding the card with
// the given id.
func (uc *UseCase) RegisterRider(
	ctx context.Context, name, cardID string,
) (*model.Rider, error) {
	c, err := uc.cards.Find(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("resolving card: %w", err)
	}
	r := model.NewRider(name, c)
	if err := uc.riders.Add(ctx, r); err != nil {
		return nil, fmt.Errorf("registering rider: %w", err)
	}
	log.Info(ctx, "rider registered",
		log.Rider(name), log.Card(cardID),
	)
	return r, nil
}

// Recharge tops up the card by amount. A rejected recharge (unknown
// denomination or a resulting balance over the ceiling) fails with a
// declined cerr.Error and the balance is unchanged.
func (uc *UseCase) Recharge(
	ctx context.Context, cardID string, amount decimal.Decimal,
) error {
	c, err := uc.cards.Find(ctx, cardID)
	if err != nil {
		return fmt.Errorf("resolving card: %w", err)
	}
	if !c.Recharge(amount) {
		err := cerr.Declined(fmt.Errorf(
			"card %s by %s: %w", cardID, amount, ErrRechargeRejected,
		))
		log.Warn(ctx, "recharge rejected",
			log.Card(cardID), log.Amount("amount", amount),
		)
		return err
	}
	log.Info(ctx, "card recharged",
		log.Card(cardID),
		log.Amount("amount", amount),
		log.Amount("balance", c.Balance()),
	)
	return nil
}

// CreditTopUp credits a top-up which may exceed the balance ceiling;
// the excess stays pending on the card.
func (uc *UseCase) CreditTopUp(
	ctx context.Context, cardID string, amount decimal.Decimal,
) error {
	c, err := uc.cards.Find(ctx, cardID)
	if err != nil {
		return fmt.Errorf("resolving card: %w", err)
	}
	c.CreditTopUp(amount)
	log.Info(ctx, "top-up credited",
		log.Card(cardID),
		log.Amount("amount", amount),
		log.Amount("balance", c.Balance()),
		log.Amount("pending", c.PendingBalance()),
	)
	return nil
}

// Board charges the line fare directly on the card at the current
// clock time, applying the card's own fare policy. Declines and
// policy violations propagate as categorized errors.
func (uc *UseCase) Board(
	ctx context.Context, cardID, lineCode string,
) (model.Ticket, error) {
	c, err := uc.cards.Find(ctx, cardID)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("resolving card: %w", err)
	}
	l, err := uc.lines.Find(ctx, lineCode)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("resolving line: %w", err)
	}
	tk, err := l.ChargeCard(c, uc.clk.Now())
	if err != nil {
		log.Warn(ctx, "boarding failed",
			log.Card(cardID), log.Line(lineCode),
			log.Err("error", err),
		)
		return model.Ticket{}, err
	}
	log.Info(ctx, "ticket issued",
		log.Card(cardID), log.Line(lineCode),
		log.Amount("amount", tk.Amount),
		log.Amount("balance", tk.RemainingBalance),
	)
	return tk, nil
}

// BoardRider charges a trip for the named rider on the given line at
// the current clock time, applying the frequent-rider and transfer
// rules of the rider's card.
func (uc *UseCase) BoardRider(
	ctx context.Context, riderName, lineCode string,
) (model.Ticket, error) {
	r, err := uc.riders.Find(ctx, riderName)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("resolving rider: %w", err)
	}
	l, err := uc.lines.Find(ctx, lineCode)
	if err != nil {
		return model.Ticket{}, fmt.Errorf("resolving line: %w", err)
	}
	tk, err := r.Board(l, uc.clk.Now())
	if err != nil {
		log.Warn(ctx, "rider boarding failed",
			log.Rider(riderName), log.Line(lineCode),
			log.Err("error", err),
		)
		return model.Ticket{}, err
	}
	log.Info(ctx, "rider ticket issued",
		log.Rider(riderName), log.Line(lineCode),
		log.Amount("amount", tk.Amount),
		log.Amount("balance", tk.RemainingBalance),
	)
	return tk, nil
}
