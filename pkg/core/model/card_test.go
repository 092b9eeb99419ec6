// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/cerr"
	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is a weekday instant inside every usage window.
var monday = time.Date(2024, time.October, 14, 10, 0, 0, 0, time.UTC)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func newNormalCard(t *testing.T, initial int64) *model.Card {
	t.Helper()
	c, err := model.NewCard("c1", d(initial), model.CardKindNormal)
	require.NoError(t, err, "creating normal card")
	return c
}

func TestNewCardValidation(t *testing.T) {
	_, err := model.NewCard("", d(0), model.CardKindNormal)
	assert.Error(t, err, "empty card id must be rejected")
	_, err = model.NewCard("c1", d(0), model.CardKind(42))
	assert.Error(t, err, "unknown card kind must be rejected")
	var kerr model.CardKindError
	assert.ErrorAs(t, err, &kerr, "kind error must carry the value")
	assert.Equal(t, model.CardKindError(42), kerr)
}

func TestRechargeAcceptsListedAmountsOnly(t *testing.T) {
	c := newNormalCard(t, 0)
	assert.False(t, c.Recharge(d(1234)), "unlisted denomination")
	assert.True(t, c.Balance().IsZero(), "balance must be unchanged")
	assert.True(t, c.Recharge(d(2000)), "listed denomination")
	assert.True(t, c.Balance().Equal(d(2000)))
}

func TestRechargeRespectsBalanceCeiling(t *testing.T) {
	c := newNormalCard(t, 55000)
	assert.False(t, c.Recharge(d(2000)), "57000 is over the ceiling")
	assert.True(t, c.Balance().Equal(d(55000)))
	// a recharge landing exactly on the ceiling is fine
	c = newNormalCard(t, 54000)
	assert.True(t, c.Recharge(d(2000)))
	assert.True(t, c.Balance().Equal(d(56000)))
}

func TestDeductRespectsBalanceFloor(t *testing.T) {
	c := newNormalCard(t, 0)
	assert.True(t, c.Deduct(d(700)), "floor leaves room for a trip")
	assert.True(t, c.Balance().Equal(d(-700)))
	assert.False(t, c.Deduct(d(700)), "-1400 is below the floor")
	assert.True(t, c.Balance().Equal(d(-700)), "unchanged on failure")
	assert.True(t, c.Deduct(d(500)), "landing exactly on the floor")
	assert.True(t, c.Balance().Equal(d(-1200)))
}

func TestPayFareDeclinesBelowFloor(t *testing.T) {
	c := newNormalCard(t, -1000)
	_, err := c.PayFare(d(700), monday)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
	assert.True(t, cerr.Is(err, cerr.CategoryDeclined))
	assert.True(t, c.Balance().Equal(d(-1000)), "no partial charge")
	assert.Empty(t, c.Tickets(), "no ticket on a declined trip")
}

func TestPayFareIssuesTicket(t *testing.T) {
	c := newNormalCard(t, 2000)
	tk, err := c.PayFare(d(700), monday)
	require.NoError(t, err)
	assert.True(t, tk.Amount.Equal(d(700)))
	assert.True(t, tk.RemainingBalance.Equal(d(1300)))
	assert.Equal(t, "c1", tk.CardID)
	assert.Equal(t, monday, tk.IssuedAt)
	assert.False(t, tk.Transfer)
	assert.Equal(t, monday, c.LastTripAt())
	assert.Len(t, c.Tickets(), 1)
}

func TestCreditTopUpOverflowsIntoPending(t *testing.T) {
	c := newNormalCard(t, 55900)
	c.CreditTopUp(d(2000))
	assert.True(t, c.Balance().Equal(d(56000)), "capped at ceiling")
	assert.True(t, c.PendingBalance().Equal(d(1900)),
		"the excess stays pending")
}

func TestCreditTopUpMergesWithPendingPool(t *testing.T) {
	c := newNormalCard(t, 55900)
	c.CreditTopUp(d(2000))
	c.CreditTopUp(d(1500))
	// no headroom opened in between, so the whole credit pends
	assert.True(t, c.Balance().Equal(d(56000)))
	assert.True(t, c.PendingBalance().Equal(d(3400)))
}

func TestPendingReleasesAfterTrips(t *testing.T) {
	c := newNormalCard(t, 55900)
	c.CreditTopUp(d(2000))
	total := c.Balance().Add(c.PendingBalance())

	ts := monday
	for c.PendingBalance().IsPositive() {
		tk, err := c.PayFare(d(700), ts)
		require.NoError(t, err)
		total = total.Sub(tk.Amount)
		assert.True(
			t, c.Balance().Add(c.PendingBalance()).Equal(total),
			"ledger total must be conserved",
		)
		ts = ts.Add(10 * time.Minute)
	}
	// three trips drain the 1900 pending: 700, 700, and the last 500
	assert.True(t, c.Balance().Equal(d(55800)), c.Balance().String())
	assert.Len(t, c.Tickets(), 3)
}

func TestCardStringShowsPending(t *testing.T) {
	c := newNormalCard(t, 55900)
	assert.NotContains(t, c.String(), "pending")
	c.CreditTopUp(d(2000))
	assert.Contains(t, c.String(), "pending $1900.00")
}
