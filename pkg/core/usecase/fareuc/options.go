// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package fareuc

import (
	"errors"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/clock"
	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/model"
)

// Option represents an optional parameter of the fares UseCase. Each
// option may reject its argument, returning an error which is wrapped
// and relayed by the New function.
type Option func(*UseCase) error

// WithClock configures the fares use case to read the current time
// from c instead of the system wall clock. A manual clock makes the
// day-based fare rules deterministic in tests and simulations.
func WithClock(c clock.Clock) Option {
	return func(uc *UseCase) error {
		if c == nil {
			return errors.New("clock must not be nil")
		}
		uc.clk = c
		return nil
	}
}

// WithTariff configures the fares use case to govern the cards and
// lines it creates by t instead of the default tariff. The tariff is
// validated eagerly, so a misconfigured rule book fails at wiring
// time instead of on the first trip.
func WithTariff(t *model.Tariff) Option {
	return func(uc *UseCase) error {
		if t == nil {
			return errors.New("tariff must not be nil")
		}
		if err := t.Validate(); err != nil {
			return err
		}
		uc.tariff = t
		return nil
	}
}
