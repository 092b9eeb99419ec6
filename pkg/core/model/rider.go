// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// Rider models a card holder. It references exactly one shared card
// (the card may outlive the rider record), keeps its own ticket
// history, and counts the trips taken in the current month to unlock
// the frequent-rider discount tiers.
type Rider struct {
	name         string
	card         *Card
	tickets      []Ticket
	monthlyTrips int
	lastTripAt   time.Time
}

// NewRider constructs a rider holding the given card.
func NewRider(name string, card *Card) *Rider {
	return &Rider{name: name, card: card}
}

// Name returns the rider name.
func (r *Rider) Name() string {
	return r.name
}

// Card returns the card held by this rider.
func (r *Rider) Card() *Card {
	return r.card
}

// MonthlyTrips returns the number of trips registered in the month of
// the last trip.
func (r *Rider) MonthlyTrips() int {
	return r.monthlyTrips
}

// SetMonthlyTrips overrides the monthly trip counter. This is an
// administrative adjustment; normal accounting happens through
// RegisterTrip.
func (r *Rider) SetMonthlyTrips(n int) {
	r.monthlyTrips = n
}

// LastTripAt returns the timestamp of the last registered trip, or
// the zero time if no trip was registered yet.
func (r *Rider) LastTripAt() time.Time {
	return r.lastTripAt
}

// Tickets returns a copy of the rider's ticket history.
func (r *Rider) Tickets() []Ticket {
	ts := make([]Ticket, len(r.tickets))
	copy(ts, r.tickets)
	return ts
}

// RegisterTrip accounts a trip taken at ts. When the month or year of
// ts differs from the last registered trip, the monthly counter starts
// over, so the first trip of a new month always counts as one.
func (r *Rider) RegisterTrip(ts time.Time) {
	if !sameMonth(r.lastTripAt, ts) {
		r.monthlyTrips = 0
	}
	r.monthlyTrips++
	r.lastTripAt = ts
}

// Board charges a trip on the given line at ts with the rider's card,
// applying the frequent-rider and transfer rules.
func (r *Rider) Board(line *Line, ts time.Time) (Ticket, error) {
	return r.card.PayLineFare(r, line, ts)
}

// record appends a ticket to the rider history. The card calls it
// after a successful line payment.
func (r *Rider) record(t Ticket) {
	r.tickets = append(r.tickets, t)
}

// String renders the rider and the held card for display.
func (r *Rider) String() string {
	return fmt.Sprintf("Rider %s holding %s", r.name, r.card)
}
