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

// Limits groups the balance boundaries of a card together with the
// accepted recharge denominations. The same MaxBalance ceiling governs
// both the direct recharge operation and the gradual crediting of an
// over-limit top-up (the engine intentionally keeps a single ceiling
// constant for both paths).
type Limits struct {
	// MaxBalance is the highest balance a card may hold right after
	// any successful recharge or top-up credit.
	MaxBalance decimal.Decimal
	// MinBalance is the lowest (negative) balance a card may reach
	// through deductions. A deduction which would breach it is
	// rejected and leaves the balance unchanged.
	MinBalance decimal.Decimal
	// RechargeAmounts is the allow-list of denominations which the
	// Recharge operation accepts. Any other amount is rejected.
	RechargeAmounts []decimal.Decimal
}

// Validate returns nil if the limits are internally consistent, that
// is, the ceiling is above the floor and at least one positive
// recharge denomination is accepted.
func (l Limits) Validate() error {
	if l.MaxBalance.LessThanOrEqual(l.MinBalance) {
		return fmt.Errorf(
			"max balance (%s) must exceed min balance (%s)",
			l.MaxBalance, l.MinBalance,
		)
	}
	if len(l.RechargeAmounts) == 0 {
		return fmt.Errorf("no recharge denominations are accepted")
	}
	for _, a := range l.RechargeAmounts {
		if !a.IsPositive() {
			return fmt.Errorf(
				"recharge denomination (%s) is not positive", a,
			)
		}
	}
	return nil
}

// allowsRecharge reports whether amount is one of the accepted
// recharge denominations.
func (l Limits) allowsRecharge(amount decimal.Decimal) bool {
	for _, a := range l.RechargeAmounts {
		if a.Equal(amount) {
			return true
		}
	}
	return false
}

// HourRange represents a half-open daily time window, covering the
// walltime hours [From, To) of a day. For example, From=6 and To=22
// admits any instant from 06:00:00 (inclusive) to 22:00:00 (exclusive).
type HourRange struct {
	From, To int
}

// Contains reports whether the time-of-day of ts falls in the hr
// window. Only the hour component matters; minutes never move an
// instant across the boundary.
func (hr HourRange) Contains(ts time.Time) bool {
	return ts.Hour() >= hr.From && ts.Hour() < hr.To
}

// FrequentTier describes one frequent-rider discount tier. A rider
// whose monthly trip count falls in [FromTrips, ToTrips) pays the base
// fare multiplied by Multiplier.
type FrequentTier struct {
	FromTrips, ToTrips int
	Multiplier         decimal.Decimal
}

// Tariff is the rule book of the fare engine. It aggregates every
// tunable constant of the fare rules: balance limits, per-day franchise
// trip counts, the half-fare inter-trip spacing, the usage windows, the
// transfer (trasbordo) conditions, and the frequent-rider tiers.
// One Tariff instance is shared by the cards it was used to create, so
// a single loaded configuration governs the whole fleet.
// Day-of-week restrictions are part of the rule semantics and are not
// represented here: the franchise window only admits Monday to Friday
// and the transfer window excludes Sundays.
type Tariff struct {
	Limits Limits

	// UrbanFare and IntercityFare are the default fares of newly
	// constructed lines, selected by the line kind.
	UrbanFare, IntercityFare decimal.Decimal

	// FreeTripsPerDay is how many trips per calendar day cost nothing
	// on a free-pass card.
	FreeTripsPerDay int
	// HalfFareTripsPerDay is how many trips per calendar day are
	// charged at half price on a half-fare card.
	HalfFareTripsPerDay int
	// HalfFareSpacing is the minimum interval between two trips on a
	// half-fare card. A trip attempted earlier is declined.
	HalfFareSpacing time.Duration

	// FranchiseHours is the daily window in which franchise cards may
	// be used at all (Monday to Friday). Use outside of it is a
	// policy violation, not a decline.
	FranchiseHours HourRange

	// TransferMaxGap is the longest interval after the previous trip
	// in which boarding a different line counts as a transfer.
	TransferMaxGap time.Duration
	// TransferHours is the daily window (every day except Sunday) in
	// which a transfer may be granted.
	TransferHours HourRange

	// FrequentTiers are the frequent-rider discount tiers, evaluated
	// against the monthly trip count before the new trip registers.
	// Counts not covered by any tier pay the full fare.
	FrequentTiers []FrequentTier
}

// DefaultTariff returns the standard rule book: balance in
// [-1200, 56000], recharges from the fixed denomination allow-list,
// urban fare 700 and intercity fare 3000, two free or half-fare trips
// per day, five minutes between half-fare trips, franchise window
// 06:00-22:00, transfers within 60 minutes in the 07:00-22:00 window,
// and the 30/60/80 frequent-rider tiers.
func DefaultTariff() *Tariff {
	return &Tariff{
		Limits: Limits{
			MaxBalance: decimal.NewFromInt(56000),
			MinBalance: decimal.NewFromInt(-1200),
			RechargeAmounts: amounts(
				2000, 3000, 4000, 5000, 8000,
				10000, 15000, 20000, 25000, 30000,
			),
		},
		UrbanFare:           decimal.NewFromInt(700),
		IntercityFare:       decimal.NewFromInt(3000),
		FreeTripsPerDay:     2,
		HalfFareTripsPerDay: 2,
		HalfFareSpacing:     5 * time.Minute,
		FranchiseHours:      HourRange{From: 6, To: 22},
		TransferMaxGap:      time.Hour,
		TransferHours:       HourRange{From: 7, To: 22},
		FrequentTiers: []FrequentTier{
			{
				FromTrips:  30,
				ToTrips:    60,
				Multiplier: decimal.NewFromFloat(0.8),
			},
			{
				FromTrips:  60,
				ToTrips:    80,
				Multiplier: decimal.NewFromFloat(0.75),
			},
		},
	}
}

// Validate returns nil if the tariff is internally consistent: the
// balance limits validate, the default fares are positive, the daily
// trip allowances and spacing are non-negative, and the frequent-rider
// tiers cover well-formed, positively priced ranges.
func (t *Tariff) Validate() error {
	if err := t.Limits.Validate(); err != nil {
		return fmt.Errorf("invalid limits: %w", err)
	}
	if !t.UrbanFare.IsPositive() {
		return fmt.Errorf("urban fare (%s) is not positive", t.UrbanFare)
	}
	if !t.IntercityFare.IsPositive() {
		return fmt.Errorf(
			"intercity fare (%s) is not positive", t.IntercityFare,
		)
	}
	if t.FreeTripsPerDay < 0 || t.HalfFareTripsPerDay < 0 {
		return fmt.Errorf("per-day trip allowances must be non-negative")
	}
	if t.HalfFareSpacing < 0 || t.TransferMaxGap < 0 {
		return fmt.Errorf("durations must be non-negative")
	}
	for _, tier := range t.FrequentTiers {
		if tier.FromTrips >= tier.ToTrips {
			return fmt.Errorf(
				"frequent tier [%d, %d) covers no trip counts",
				tier.FromTrips, tier.ToTrips,
			)
		}
		if !tier.Multiplier.IsPositive() {
			return fmt.Errorf(
				"frequent tier multiplier (%s) is not positive",
				tier.Multiplier,
			)
		}
	}
	return nil
}

// frequentMultiplier returns the fare multiplier of the tier covering
// the given monthly trip count, or one if no tier covers it.
func (t *Tariff) frequentMultiplier(trips int) decimal.Decimal {
	for _, tier := range t.FrequentTiers {
		if trips >= tier.FromTrips && trips < tier.ToTrips {
			return tier.Multiplier
		}
	}
	return decimal.NewFromInt(1)
}

// amounts converts a series of integral denominations to decimals.
func amounts(values ...int64) []decimal.Decimal {
	ds := make([]decimal.Decimal, len(values))
	for i, v := range values {
		ds[i] = decimal.NewFromInt(v)
	}
	return ds
}

// sameDay reports whether a and b fall on the same calendar date.
// Day-counter rollovers compare calendar components explicitly instead
// of relying on any wall-clock scheduling.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// sameMonth reports whether a and b fall in the same month of the same
// year, as needed by the monthly trip counter rollover.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
