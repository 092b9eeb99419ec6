// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"fmt"
	"time"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/model"
	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func ExampleTicket_serialization() {
	tk := model.Ticket{
		IssuedAt: time.Date(
			2024, time.October, 14, 10, 0, 0, 0, time.UTC,
		),
		CardKind:         "normal",
		LineCode:         "143",
		Amount:           decimal.NewFromInt(700),
		RemainingBalance: decimal.NewFromInt(1300),
		CardID:           "c1",
	}
	b, err := json.Marshal(tk)
	fmt.Println(err)
	fmt.Println(string(b))
	// Output:
	// <nil>
	// {"issued_at":"2024-10-14T10:00:00Z","card_kind":"normal","line_code":"143","amount":"700","remaining_balance":"1300","card_id":"c1","transfer":false}
}

func ExampleTicket_String() {
	tk := model.Ticket{
		IssuedAt: time.Date(
			2024, time.October, 14, 10, 0, 0, 0, time.UTC,
		),
		CardKind:         "half-fare",
		LineCode:         "K",
		Amount:           decimal.NewFromInt(350),
		RemainingBalance: decimal.NewFromInt(1650),
		CardID:           "c1",
	}
	fmt.Println(tk)
	// Output:
	// 2024-10-14 10:00 card c1 (half-fare) line K paid $350.00, balance $1650.00
}
