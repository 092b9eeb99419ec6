// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clock_test

import (
	"testing"
	"time"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/clock"
	"github.com/stretchr/testify/assert"
)

func TestManualStartsOnAMonday(t *testing.T) {
	m := clock.NewManual()
	now := m.Now()
	assert.Equal(t, clock.DefaultStart, now)
	assert.Equal(t, time.Monday, now.Weekday())
	assert.Zero(t, now.Hour())
}

func TestManualAdvances(t *testing.T) {
	m := clock.NewManual()
	m.AddDays(2)
	m.AddHours(8)
	m.AddMinutes(30)
	want := clock.DefaultStart.AddDate(0, 0, 2).
		Add(8*time.Hour + 30*time.Minute)
	assert.Equal(t, want, m.Now())
	assert.Equal(t, time.Wednesday, m.Now().Weekday())
}

func TestManualSet(t *testing.T) {
	ts := time.Date(2025, time.January, 5, 12, 0, 0, 0, time.UTC)
	m := clock.NewManualAt(clock.DefaultStart)
	m.Set(ts)
	assert.Equal(t, ts, m.Now())
}

func TestSystemTracksWallClock(t *testing.T) {
	before := time.Now()
	now := clock.System{}.Now()
	after := time.Now()
	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}
