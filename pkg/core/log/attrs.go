// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Valuer returns an Attr for the given slog.LogValuer value.
func Valuer(key string, value slog.LogValuer) slog.Attr {
	return slog.Any(key, value)
}

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// Card returns an Attr for a card identifier.
func Card(id string) slog.Attr {
	return slog.String("card", id)
}

// Line returns an Attr for a line code.
func Line(code string) slog.Attr {
	return slog.String("line", code)
}

// Rider returns an Attr for a rider name.
func Rider(name string) slog.Attr {
	return slog.String("rider", name)
}

// Amount returns an Attr for a decimal currency amount, rendered as
// its exact string representation.
func Amount(key string, value decimal.Decimal) slog.Attr {
	return slog.String(key, value.String())
}
