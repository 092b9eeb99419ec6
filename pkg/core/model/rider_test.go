// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRider(t *testing.T, initial int64) *model.Rider {
	t.Helper()
	c := newNormalCard(t, initial)
	return model.NewRider("maria", c)
}

func urbanLine(code string) *model.Line {
	return model.NewLine(code, "Rosario Bus", false)
}

func TestFrequentRiderTiers(t *testing.T) {
	for _, tt := range []struct {
		trips int
		fare  int64
	}{
		{0, 700},
		{29, 700},
		{30, 560},
		{59, 560},
		{60, 525},
		{79, 525},
		{80, 700},
		{200, 700},
	} {
		r := newRider(t, 10000)
		// anchor the counter month, then adjust it administratively
		r.RegisterTrip(monday.Add(-time.Hour))
		r.SetMonthlyTrips(tt.trips)

		tk, err := r.Board(urbanLine("143"), monday)
		require.NoError(t, err, "trips=%d", tt.trips)
		assert.True(
			t, tk.Amount.Equal(d(tt.fare)),
			"trips=%d: got %s, want %d", tt.trips, tk.Amount, tt.fare,
		)
	}
}

func TestBoardRegistersTrip(t *testing.T) {
	r := newRider(t, 10000)
	tk, err := r.Board(urbanLine("143"), monday)
	require.NoError(t, err)
	assert.Equal(t, 1, r.MonthlyTrips())
	assert.Equal(t, monday, r.LastTripAt())
	assert.Equal(t, []model.Ticket{tk}, r.Tickets(),
		"the ticket joins the rider history too")
}

func TestMonthlyTripsResetOnNewMonth(t *testing.T) {
	r := newRider(t, 10000)
	r.RegisterTrip(monday)
	r.SetMonthlyTrips(45)
	november := monday.AddDate(0, 1, 0)
	r.RegisterTrip(november)
	assert.Equal(t, 1, r.MonthlyTrips(),
		"the first trip of a new month counts as one")
}

func TestTransferBetweenDifferentLines(t *testing.T) {
	r := newRider(t, 10000)
	tk, err := r.Board(urbanLine("143"), monday)
	require.NoError(t, err)
	assert.True(t, tk.Amount.Equal(d(700)))

	tk, err = r.Board(urbanLine("K"), monday.Add(20*time.Minute))
	require.NoError(t, err)
	assert.True(t, tk.Amount.IsZero(), "transfer costs nothing")
	assert.True(t, tk.Transfer)
	assert.Equal(t, 2, r.MonthlyTrips(),
		"a transfer still counts as a trip")
}

func TestTransferRequiresDifferentLine(t *testing.T) {
	r := newRider(t, 10000)
	_, err := r.Board(urbanLine("143"), monday)
	require.NoError(t, err)
	tk, err := r.Board(urbanLine("143"), monday.Add(20*time.Minute))
	require.NoError(t, err)
	assert.True(t, tk.Amount.Equal(d(700)),
		"reboarding the same line is a plain trip")
	assert.False(t, tk.Transfer)
}

func TestTransferWindowCloses(t *testing.T) {
	r := newRider(t, 10000)
	_, err := r.Board(urbanLine("143"), monday)
	require.NoError(t, err)
	tk, err := r.Board(urbanLine("K"), monday.Add(61*time.Minute))
	require.NoError(t, err)
	assert.True(t, tk.Amount.Equal(d(700)),
		"more than an hour apart is no transfer")

	// exactly one hour apart still transfers
	r = newRider(t, 10000)
	_, err = r.Board(urbanLine("143"), monday)
	require.NoError(t, err)
	tk, err = r.Board(urbanLine("K"), monday.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, tk.Amount.IsZero())
}

func TestNoTransferOnSundays(t *testing.T) {
	sunday := monday.AddDate(0, 0, 6)
	r := newRider(t, 10000)
	_, err := r.Board(urbanLine("143"), sunday)
	require.NoError(t, err)
	tk, err := r.Board(urbanLine("K"), sunday.Add(20*time.Minute))
	require.NoError(t, err)
	assert.True(t, tk.Amount.Equal(d(700)))
	assert.False(t, tk.Transfer)
}

func TestNoTransferOutsideTransferHours(t *testing.T) {
	lateEvening := monday.Add(12 * time.Hour) // 22:00
	r := newRider(t, 10000)
	_, err := r.Board(urbanLine("143"), lateEvening)
	require.NoError(t, err)
	tk, err := r.Board(
		urbanLine("K"), lateEvening.Add(20*time.Minute),
	)
	require.NoError(t, err)
	assert.True(t, tk.Amount.Equal(d(700)))
	assert.False(t, tk.Transfer)
}

func TestIntercityLineFare(t *testing.T) {
	r := newRider(t, 10000)
	l := model.NewLine("Gran Rosario", "TUP", true)
	tk, err := r.Board(l, monday)
	require.NoError(t, err)
	assert.True(t, tk.Amount.Equal(d(3000)))
	assert.Equal(t, "Gran Rosario", tk.LineCode)
}
