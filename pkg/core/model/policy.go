// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/cerr"
	"github.com/shopspring/decimal"
)

// ErrOutsideFranchiseHours indicates that a franchise card was used
// outside its permitted window (Monday to Friday, inside the tariff
// franchise hours). This is a misuse of the card rather than a
// fundable shortfall, so it is wrapped as a cerr.PolicyViolation and
// callers are expected to propagate it, not recover from it.
var ErrOutsideFranchiseHours = errors.New(
	"franchise used outside the permitted hours",
)

// ErrTripTooSoon indicates that a half-fare trip was attempted before
// the minimum spacing from the previous trip elapsed. It is wrapped
// as a declined cerr.Error: the whole operation fails without any
// charge, and retrying after the spacing elapses is expected.
var ErrTripTooSoon = errors.New(
	"minimum spacing between trips not elapsed",
)

// FarePolicy is the capability object which a card kind attaches to
// govern fare calculation and usage eligibility. Selecting the policy
// per card at construction keeps the Card deduction logic independent
// of the kinds, so new policies may be added without touching it.
//
// The payment operation drives a policy in three steps: Eligible
// rejects the attempt upfront, Fare resolves the amount to charge
// (rolling per-day counters over when the calendar date changed), and
// Commit registers the successful trip in the policy bookkeeping.
// Fare and Commit are only meaningful in that order within a single
// payment attempt.
type FarePolicy interface {
	// Eligible returns nil if the card may attempt a trip at ts.
	// A cerr.PolicyViolation error reports use outside the permitted
	// franchise window; a declined cerr.Error reports a recoverable
	// rejection such as the half-fare minimum spacing.
	Eligible(ts time.Time) error
	// Fare computes the amount to charge for the base fare at ts.
	Fare(base decimal.Decimal, ts time.Time) decimal.Decimal
	// Commit registers a successful trip at ts, advancing day
	// counters and spacing bookkeeping.
	Commit(ts time.Time)
}

// newFarePolicy returns the fare policy matching the card kind,
// governed by the tariff t. Normal cards carry no policy and nil is
// returned for them.
func newFarePolicy(kind CardKind, t *Tariff) FarePolicy {
	switch kind {
	case CardKindHalfFare:
		return &halfFarePolicy{tariff: t}
	case CardKindFreePass:
		return &freePassPolicy{tariff: t}
	case CardKindFullFranchise:
		return &fullFranchisePolicy{tariff: t}
	default:
		return nil
	}
}

// franchiseEligible validates ts against the shared franchise usage
// window: Monday to Friday, inside the tariff franchise hours.
func franchiseEligible(t *Tariff, ts time.Time) error {
	wd := ts.Weekday()
	if wd == time.Saturday || wd == time.Sunday ||
		!t.FranchiseHours.Contains(ts) {
		return cerr.PolicyViolation(fmt.Errorf(
			"at %s: %w",
			ts.Format("Mon 15:04"), ErrOutsideFranchiseHours,
		))
	}
	return nil
}

// freePassPolicy implements the free-pass franchise: the first trips
// of each calendar day (as many as the tariff grants) cost nothing and
// later trips pay the full base fare.
type freePassPolicy struct {
	tariff    *Tariff
	freeToday int
	countedOn time.Time // date the freeToday counter belongs to
}

func (p *freePassPolicy) Eligible(ts time.Time) error {
	return franchiseEligible(p.tariff, ts)
}

func (p *freePassPolicy) Fare(
	base decimal.Decimal, ts time.Time,
) decimal.Decimal {
	p.rollover(ts)
	if p.freeToday < p.tariff.FreeTripsPerDay {
		return decimal.Zero
	}
	return base
}

func (p *freePassPolicy) Commit(ts time.Time) {
	p.rollover(ts)
	// the counter stays at its cap once the free trips are consumed
	if p.freeToday < p.tariff.FreeTripsPerDay {
		p.freeToday++
	}
}

// rollover resets the per-day counter when ts falls on a different
// calendar date than the one the counter was accumulated on.
func (p *freePassPolicy) rollover(ts time.Time) {
	if !sameDay(p.countedOn, ts) {
		p.freeToday = 0
		p.countedOn = ts
	}
}

// halfFarePolicy implements the half-fare franchise: trips must be
// spaced by the tariff minimum interval, the first trips of each
// calendar day pay half the base fare, and later trips pay in full.
type halfFarePolicy struct {
	tariff          *Tariff
	lastTripAt      time.Time
	discountedToday int
	countedOn       time.Time
}

func (p *halfFarePolicy) Eligible(ts time.Time) error {
	if err := franchiseEligible(p.tariff, ts); err != nil {
		return err
	}
	if !p.lastTripAt.IsZero() &&
		ts.Sub(p.lastTripAt) < p.tariff.HalfFareSpacing {
		return cerr.Declined(fmt.Errorf(
			"last trip at %s: %w",
			p.lastTripAt.Format("15:04:05"), ErrTripTooSoon,
		))
	}
	return nil
}

func (p *halfFarePolicy) Fare(
	base decimal.Decimal, ts time.Time,
) decimal.Decimal {
	p.rollover(ts)
	if p.discountedToday < p.tariff.HalfFareTripsPerDay {
		return base.Div(decimal.NewFromInt(2))
	}
	return base
}

func (p *halfFarePolicy) Commit(ts time.Time) {
	p.rollover(ts)
	p.lastTripAt = ts
	if p.discountedToday < p.tariff.HalfFareTripsPerDay {
		p.discountedToday++
	}
}

func (p *halfFarePolicy) rollover(ts time.Time) {
	if !sameDay(p.countedOn, ts) {
		p.discountedToday = 0
		p.countedOn = ts
	}
}

// fullFranchisePolicy implements the full-fare franchise: the card is
// restricted to the franchise usage window but always pays the full
// base fare.
type fullFranchisePolicy struct {
	tariff *Tariff
}

func (p *fullFranchisePolicy) Eligible(ts time.Time) error {
	return franchiseEligible(p.tariff, ts)
}

func (p *fullFranchisePolicy) Fare(
	base decimal.Decimal, _ time.Time,
) decimal.Decimal {
	return base
}

func (p *fullFranchisePolicy) Commit(time.Time) {}
