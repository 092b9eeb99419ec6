// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models of the fare-card domain: the
// Card with its balance invariants, the fare policies which the card
// kinds attach, the Line, the Rider, the Ticket value object, and the
// Tariff rule book which groups every tunable fare constant.
// This layer may not depend on outer layers, while all other layers
// may depend on it.
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/cerr"
	"github.com/shopspring/decimal"
)

// ErrInsufficientBalance indicates that a deduction would push the
// card balance below the permitted floor. Payment operations wrap it
// in a declined cerr.Error, so callers can deny the boarding and let
// the holder recharge, rather than treating it as a misuse.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Card models a transit fare card. It holds a balance which may go
// negative down to the tariff floor, a pending balance for the part of
// a top-up which did not fit under the ceiling, and the discount
// policy selected by its kind. The balance decreases through the
// Deduct method only; discount logic computes amounts but never
// touches the balance directly.
//
// A Card is not safe for concurrent use. Every payment operation is a
// read-modify-write over the balance and trip counters, so callers
// exposing cards behind a concurrent boundary must serialize access
// per card.
type Card struct {
	id     string
	kind   CardKind
	tariff *Tariff
	policy FarePolicy

	balance decimal.Decimal
	pending decimal.Decimal

	lastTripAt   time.Time
	lastLineCode string
	tickets      []Ticket
}

// NewCard constructs a card with the given opaque identifier, initial
// balance, and kind, governed by the default tariff. The kind selects
// the attached fare policy; normal cards carry no policy.
func NewCard(
	id string, initial decimal.Decimal, kind CardKind,
) (*Card, error) {
	return NewCardWithTariff(id, initial, kind, DefaultTariff())
}

// NewCardWithTariff constructs a card governed by the given tariff.
// The tariff instance may be shared among many cards, so one loaded
// configuration rules the whole fleet.
func NewCardWithTariff(
	id string, initial decimal.Decimal, kind CardKind, t *Tariff,
) (*Card, error) {
	if id == "" {
		return nil, errors.New("card id is empty")
	}
	if err := kind.Validate(); err != nil {
		return nil, fmt.Errorf("validating card kind: %w", err)
	}
	return &Card{
		id:      id,
		kind:    kind,
		tariff:  t,
		policy:  newFarePolicy(kind, t),
		balance: initial,
	}, nil
}

// ID returns the immutable opaque identifier of the card.
func (c *Card) ID() string {
	return c.id
}

// Kind returns the card category.
func (c *Card) Kind() CardKind {
	return c.kind
}

// Balance returns the current card balance. It may be negative down
// to the tariff floor.
func (c *Card) Balance() decimal.Decimal {
	return c.balance
}

// PendingBalance returns the part of past top-ups which did not fit
// under the balance ceiling yet. It is released gradually as
// deductions open headroom.
func (c *Card) PendingBalance() decimal.Decimal {
	return c.pending
}

// LastTripAt returns the timestamp of the last successful charge, or
// the zero time if the card was never used.
func (c *Card) LastTripAt() time.Time {
	return c.lastTripAt
}

// LastLineCode returns the line code of the last successful charge.
// It is empty if the card was never used on a line.
func (c *Card) LastLineCode() string {
	return c.lastLineCode
}

// Tickets returns a copy of the append-only history of tickets issued
// against this card.
func (c *Card) Tickets() []Ticket {
	ts := make([]Ticket, len(c.tickets))
	copy(ts, c.tickets)
	return ts
}

// Recharge tops up the card balance by amount. It succeeds only if
// amount is one of the accepted denominations and the resulting
// balance stays at or under the ceiling; otherwise it returns false
// and the balance is unchanged.
func (c *Card) Recharge(amount decimal.Decimal) bool {
	if !c.tariff.Limits.allowsRecharge(amount) {
		return false
	}
	if c.balance.Add(amount).GreaterThan(c.tariff.Limits.MaxBalance) {
		return false
	}
	c.balance = c.balance.Add(amount)
	return true
}

// Deduct decreases the card balance by amount. It succeeds only if
// the resulting balance stays at or above the floor; otherwise it
// returns false and the balance is unchanged. This is the only way a
// balance decreases.
func (c *Card) Deduct(amount decimal.Decimal) bool {
	if c.balance.Sub(amount).LessThan(c.tariff.Limits.MinBalance) {
		return false
	}
	c.balance = c.balance.Sub(amount)
	return true
}

// CreditTopUp credits a top-up which may exceed the balance ceiling.
// The credited amount joins any previously pending amount and as much
// of that pool as fits under the ceiling moves to the balance at once;
// the rest stays pending and is released by later deductions. The sum
// of balance and pending balance always accounts for the whole
// credited amount, so repeated credits and deductions conserve the
// ledger total.
func (c *Card) CreditTopUp(amount decimal.Decimal) {
	c.pending = c.pending.Add(amount)
	c.drainPending()
}

// drainPending moves pending balance into the card balance, bounded
// by the available headroom under the ceiling. It runs after every
// successful deduction and top-up credit.
func (c *Card) drainPending() {
	if !c.pending.IsPositive() {
		return
	}
	headroom := c.tariff.Limits.MaxBalance.Sub(c.balance)
	if !headroom.IsPositive() {
		return
	}
	applied := decimal.Min(headroom, c.pending)
	c.balance = c.balance.Add(applied)
	c.pending = c.pending.Sub(applied)
}

// PayFare charges a single trip of the given base fare at the ts
// timestamp, applying the card's fare policy. On success it updates
// the trip bookkeeping, appends the issued ticket to the card history,
// and returns the ticket.
//
// Use outside the permitted franchise window fails with a
// cerr.PolicyViolation error. A half-fare trip attempted before the
// minimum spacing, or a deduction which would breach the balance
// floor, fails with a cerr.Declined error. In every failure case the
// balance and counters are left unchanged and no ticket is issued.
func (c *Card) PayFare(
	base decimal.Decimal, ts time.Time,
) (Ticket, error) {
	return c.pay(base, "", ts)
}

// pay resolves the policy fare for base and charges it, labelling the
// ticket with lineCode (which may be empty for direct payments).
func (c *Card) pay(
	base decimal.Decimal, lineCode string, ts time.Time,
) (Ticket, error) {
	amount := base
	if c.policy != nil {
		if err := c.policy.Eligible(ts); err != nil {
			return Ticket{}, err
		}
		amount = c.policy.Fare(base, ts)
	}
	return c.charge(amount, lineCode, ts, false)
}

// PayLineFare charges a trip on the given line for the given rider at
// the ts timestamp. Cards with an attached franchise policy take their
// eligibility and rate from the policy; normal cards apply the
// frequent-rider tier matching the rider's current monthly trip count
// (evaluated before this trip registers). In both cases a transfer
// (different line, within the transfer gap, non-Sunday, inside the
// transfer hours) overrides the fare to zero.
//
// On success the trip registers on the rider, the transfer bookkeeping
// updates, and the ticket is appended to both the card and the rider
// histories.
func (c *Card) PayLineFare(
	rider *Rider, line *Line, ts time.Time,
) (Ticket, error) {
	base := line.Fare()
	var amount decimal.Decimal
	if c.policy != nil {
		if err := c.policy.Eligible(ts); err != nil {
			return Ticket{}, err
		}
		amount = c.policy.Fare(base, ts)
	} else {
		m := c.tariff.frequentMultiplier(rider.MonthlyTrips())
		amount = base.Mul(m)
	}
	transfer := c.transferApplies(line.Code(), ts)
	if transfer {
		amount = decimal.Zero
	}
	tk, err := c.charge(amount, line.Code(), ts, transfer)
	if err != nil {
		return Ticket{}, err
	}
	rider.RegisterTrip(ts)
	rider.record(tk)
	return tk, nil
}

// transferApplies reports whether boarding lineCode at ts counts as a
// transfer from the previous trip: the previous trip must exist on a
// different line within the transfer gap, ts must not fall on a
// Sunday, and its time-of-day must be inside the transfer hours.
func (c *Card) transferApplies(lineCode string, ts time.Time) bool {
	if c.lastLineCode == "" || c.lastLineCode == lineCode {
		return false
	}
	if ts.Sub(c.lastTripAt) > c.tariff.TransferMaxGap {
		return false
	}
	if ts.Weekday() == time.Sunday {
		return false
	}
	return c.tariff.TransferHours.Contains(ts)
}

// charge deducts amount from the balance and finalizes the trip: the
// pending balance reconciles into the opened headroom, the policy day
// counters commit, the transfer bookkeeping updates, and the issued
// ticket joins the card history.
func (c *Card) charge(
	amount decimal.Decimal, lineCode string, ts time.Time, transfer bool,
) (Ticket, error) {
	if !c.Deduct(amount) {
		return Ticket{}, cerr.Declined(fmt.Errorf(
			"card %s paying %s: %w", c.id, amount,
			ErrInsufficientBalance,
		))
	}
	c.drainPending()
	if c.policy != nil {
		c.policy.Commit(ts)
	}
	c.lastTripAt = ts
	c.lastLineCode = lineCode
	tk := Ticket{
		IssuedAt:         ts,
		CardKind:         c.kind.String(),
		LineCode:         lineCode,
		Amount:           amount,
		RemainingBalance: c.balance,
		CardID:           c.id,
		Transfer:         transfer,
	}
	c.tickets = append(c.tickets, tk)
	return tk, nil
}

// String renders the card for display, including its pending balance
// when one is held.
func (c *Card) String() string {
	if c.pending.IsPositive() {
		return fmt.Sprintf(
			"Card %s (%s): balance $%s, pending $%s",
			c.id, c.kind, c.balance.StringFixed(2),
			c.pending.StringFixed(2),
		)
	}
	return fmt.Sprintf(
		"Card %s (%s): balance $%s",
		c.id, c.kind, c.balance.StringFixed(2),
	)
}
