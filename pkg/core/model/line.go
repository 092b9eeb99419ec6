// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Line represents a transport route which charges a fare per trip.
// The code, operator name, and intercity flag are immutable after
// construction; only the fare may be adjusted later.
type Line struct {
	code      string
	operator  string
	intercity bool
	fare      decimal.Decimal
}

// NewLine constructs a line with the given code, optional operator
// name, and kind. The fare defaults by kind from the default tariff:
// urban or intercity.
func NewLine(code, operator string, intercity bool) *Line {
	return NewLineWithTariff(code, operator, intercity, DefaultTariff())
}

// NewLineWithTariff constructs a line with its fare defaulted by kind
// from the given tariff.
func NewLineWithTariff(
	code, operator string, intercity bool, t *Tariff,
) *Line {
	fare := t.UrbanFare
	if intercity {
		fare = t.IntercityFare
	}
	return &Line{
		code:      code,
		operator:  operator,
		intercity: intercity,
		fare:      fare,
	}
}

// Code returns the line code.
func (l *Line) Code() string {
	return l.code
}

// Operator returns the operator name, which may be empty.
func (l *Line) Operator() string {
	return l.operator
}

// Intercity reports whether this is an intercity line.
func (l *Line) Intercity() bool {
	return l.intercity
}

// Fare returns the base fare of a trip on this line.
func (l *Line) Fare() decimal.Decimal {
	return l.fare
}

// SetFare overrides the base fare of this line.
func (l *Line) SetFare(fare decimal.Decimal) {
	l.fare = fare
}

// ChargeCard attempts to charge this line's fare on the given card at
// the ts timestamp. It delegates to the card's fare payment and
// returns whatever the card produces, never inspecting the card
// internals beyond its public contract.
func (l *Line) ChargeCard(c *Card, ts time.Time) (Ticket, error) {
	return c.pay(l.fare, l.code, ts)
}

// String renders the line for display.
func (l *Line) String() string {
	kind := "urban"
	if l.intercity {
		kind = "intercity"
	}
	if l.operator == "" {
		return fmt.Sprintf("Line %s (%s)", l.code, kind)
	}
	return fmt.Sprintf(
		"Line %s (%s, operated by %s)", l.code, kind, l.operator,
	)
}
