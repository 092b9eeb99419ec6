// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clock

import "time"

// DefaultStart is the instant a Manual clock starts at when no other
// start is given: a known Monday at midnight, which keeps the weekday
// dependent fare rules predictable in tests.
var DefaultStart = time.Date(
	2024, time.October, 14, 0, 0, 0, 0, time.UTC,
)

// Manual is a controllable clock. Its Now method returns the last set
// instant unconditionally; the clock never advances on its own and
// only the Add and Set mutators move it.
type Manual struct {
	now time.Time
}

// NewManual returns a Manual clock set to DefaultStart.
func NewManual() *Manual {
	return &Manual{now: DefaultStart}
}

// NewManualAt returns a Manual clock set to the given instant.
func NewManualAt(ts time.Time) *Manual {
	return &Manual{now: ts}
}

// Now returns the instant the clock is currently set to.
func (m *Manual) Now() time.Time {
	return m.now
}

// AddDays advances the clock by n calendar days.
func (m *Manual) AddDays(n int) {
	m.now = m.now.AddDate(0, 0, n)
}

// AddHours advances the clock by n hours.
func (m *Manual) AddHours(n int) {
	m.now = m.now.Add(time.Duration(n) * time.Hour)
}

// AddMinutes advances the clock by n minutes.
func (m *Manual) AddMinutes(n int) {
	m.now = m.now.Add(time.Duration(n) * time.Minute)
}

// Set moves the clock to the given absolute instant.
func (m *Manual) Set(ts time.Time) {
	m.now = ts
}
