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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCard(
	t *testing.T, kind model.CardKind, initial int64,
) *model.Card {
	t.Helper()
	c, err := model.NewCard("c1", d(initial), kind)
	require.NoError(t, err, "creating card")
	return c
}

func TestFreePassGrantsTwoFreeTripsPerDay(t *testing.T) {
	c := newCard(t, model.CardKindFreePass, 0)
	for i := 0; i < 2; i++ {
		tk, err := c.PayFare(d(700), monday.Add(
			time.Duration(i)*time.Hour,
		))
		require.NoError(t, err)
		assert.True(t, tk.Amount.IsZero(), "trip %d is free", i+1)
	}
	tk, err := c.PayFare(d(700), monday.Add(2*time.Hour))
	require.NoError(t, err)
	assert.True(t, tk.Amount.Equal(d(700)), "third trip pays in full")
	assert.True(t, c.Balance().Equal(d(-700)),
		"paid from the travel allowance")
}

func TestFreePassAllowanceResetsNextDay(t *testing.T) {
	c := newCard(t, model.CardKindFreePass, 0)
	for i := 0; i < 3; i++ {
		_, err := c.PayFare(d(700), monday.Add(
			time.Duration(i)*time.Hour,
		))
		require.NoError(t, err)
	}
	tuesday := monday.AddDate(0, 0, 1)
	tk, err := c.PayFare(d(700), tuesday)
	require.NoError(t, err)
	assert.True(t, tk.Amount.IsZero(), "allowance renews with the day")
}

func TestFreePassDeclinedTripKeepsAllowance(t *testing.T) {
	c := newCard(t, model.CardKindFreePass, 0)
	for i := 0; i < 2; i++ {
		_, err := c.PayFare(d(700), monday.Add(
			time.Duration(i)*time.Hour,
		))
		require.NoError(t, err)
	}
	// the third trip needs funds and the floor blocks it
	_, err := c.PayFare(d(2000), monday.Add(2*time.Hour))
	require.Error(t, err)
	assert.True(t, cerr.Is(err, cerr.CategoryDeclined))
	tuesday := monday.AddDate(0, 0, 1)
	tk, err := c.PayFare(d(700), tuesday)
	require.NoError(t, err)
	assert.True(t, tk.Amount.IsZero())
}

func TestFranchiseWindowViolations(t *testing.T) {
	for _, tt := range []struct {
		name string
		ts   time.Time
	}{
		{"saturday", monday.AddDate(0, 0, 5)},
		{"sunday", monday.AddDate(0, 0, 6)},
		{"before six", monday.Add(-5 * time.Hour)}, // 05:00
		{"at twentytwo", monday.Add(12 * time.Hour)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			for _, kind := range []model.CardKind{
				model.CardKindFreePass,
				model.CardKindHalfFare,
				model.CardKindFullFranchise,
			} {
				c := newCard(t, kind, 10000)
				_, err := c.PayFare(d(700), tt.ts)
				require.Error(t, err, "kind %s", kind)
				assert.ErrorIs(
					t, err, model.ErrOutsideFranchiseHours,
				)
				assert.True(
					t, cerr.Is(err, cerr.CategoryPolicyViolation),
					"window misuse is a policy violation",
				)
				assert.True(t, c.Balance().Equal(d(10000)))
			}
		})
	}
}

func TestFranchiseWindowBoundaries(t *testing.T) {
	c := newCard(t, model.CardKindFullFranchise, 10000)
	sixOClock := monday.Add(-4 * time.Hour)
	_, err := c.PayFare(d(700), sixOClock)
	assert.NoError(t, err, "06:00 is inside the window")
	_, err = c.PayFare(d(700), monday.Add(11*time.Hour+59*time.Minute))
	assert.NoError(t, err, "21:59 is inside the window")
}

func TestHalfFareHalvesFirstTwoTrips(t *testing.T) {
	c := newCard(t, model.CardKindHalfFare, 10000)
	ts := monday
	for i := 0; i < 2; i++ {
		tk, err := c.PayFare(d(700), ts)
		require.NoError(t, err)
		assert.True(t, tk.Amount.Equal(d(350)), "trip %d", i+1)
		ts = ts.Add(10 * time.Minute)
	}
	tk, err := c.PayFare(d(700), ts)
	require.NoError(t, err)
	assert.True(t, tk.Amount.Equal(d(700)), "third trip pays in full")
	assert.True(t, c.Balance().Equal(d(10000-350-350-700)))
}

func TestHalfFareEnforcesTripSpacing(t *testing.T) {
	c := newCard(t, model.CardKindHalfFare, 10000)
	_, err := c.PayFare(d(700), monday)
	require.NoError(t, err)

	_, err = c.PayFare(d(700), monday.Add(4*time.Minute))
	require.Error(t, err, "four minutes is too soon")
	assert.ErrorIs(t, err, model.ErrTripTooSoon)
	assert.True(t, cerr.Is(err, cerr.CategoryDeclined),
		"spacing rejections are recoverable declines")
	assert.True(t, c.Balance().Equal(d(9650)), "no charge")

	tk, err := c.PayFare(d(700), monday.Add(5*time.Minute))
	require.NoError(t, err, "exactly five minutes apart is allowed")
	assert.True(t, tk.Amount.Equal(d(350)),
		"the rejected attempt did not consume the discount")
}

func TestHalfFareDiscountResetsNextDay(t *testing.T) {
	c := newCard(t, model.CardKindHalfFare, 10000)
	ts := monday
	for i := 0; i < 3; i++ {
		_, err := c.PayFare(d(700), ts)
		require.NoError(t, err)
		ts = ts.Add(10 * time.Minute)
	}
	tuesday := monday.AddDate(0, 0, 1)
	tk, err := c.PayFare(d(700), tuesday)
	require.NoError(t, err)
	assert.True(t, tk.Amount.Equal(d(350)))
}

func TestFullFranchisePaysFullFareInsideWindow(t *testing.T) {
	c := newCard(t, model.CardKindFullFranchise, 10000)
	tk, err := c.PayFare(d(700), monday)
	require.NoError(t, err)
	assert.True(t, tk.Amount.Equal(d(700)))
	assert.True(t, c.Balance().Equal(d(9300)))
}
