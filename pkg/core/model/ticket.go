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

// Ticket is the immutable record of a completed charge. The engine
// produces one per successful payment and appends it to the card (and,
// for line boardings, the rider) history. The JSON tags serve the
// presentation layer which renders receipts.
type Ticket struct {
	IssuedAt         time.Time       `json:"issued_at"`
	CardKind         string          `json:"card_kind"`
	LineCode         string          `json:"line_code,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	CardID           string          `json:"card_id"`
	Transfer         bool            `json:"transfer"`
}

// String renders the ticket as a one-line receipt.
func (t Ticket) String() string {
	line := t.LineCode
	if line == "" {
		line = "-"
	}
	s := fmt.Sprintf(
		"%s card %s (%s) line %s paid $%s, balance $%s",
		t.IssuedAt.Format("2006-01-02 15:04"),
		t.CardID, t.CardKind, line,
		t.Amount.StringFixed(2), t.RemainingBalance.StringFixed(2),
	)
	if t.Transfer {
		s += " (transfer)"
	}
	return s
}
