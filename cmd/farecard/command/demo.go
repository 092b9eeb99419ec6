// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/adapter/memrp"
	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/clock"
	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/model"
	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/usecase/fareuc"
	gojson "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// runSimulation drives a deterministic day of trips over the
// in-memory registries, starting at 08:00 of a Monday, and prints the
// issued tickets. Expected rejections, such as a second half-fare
// trip within the spacing interval, are reported inline and do not
// fail the command.
func runSimulation(_ *cobra.Command, _ []string) error {
	c, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()
	clk := clock.NewManual()
	clk.AddHours(8)
	uc, err := fareuc.New(
		memrp.NewCards(), memrp.NewLines(), memrp.NewRiders(),
		fareuc.WithClock(clk), fareuc.WithTariff(c.Tariff()),
	)
	if err != nil {
		return fmt.Errorf("creating fares use case: %w", err)
	}
	if _, err := uc.RegisterLine(ctx, "143", "Rosario Bus", false); err != nil {
		return fmt.Errorf("registering line: %w", err)
	}
	if _, err := uc.RegisterLine(ctx, "K", "Semtur", false); err != nil {
		return fmt.Errorf("registering line: %w", err)
	}
	if _, err := uc.RegisterLine(ctx, "Gran Rosario", "TUP", true); err != nil {
		return fmt.Errorf("registering line: %w", err)
	}

	cards := []struct {
		id   string
		kind model.CardKind
	}{
		{"card-normal", model.CardKindNormal},
		{"card-half", model.CardKindHalfFare},
		{"card-free", model.CardKindFreePass},
		{"card-full", model.CardKindFullFranchise},
	}
	for _, cd := range cards {
		_, err := uc.IssueCard(ctx, cd.id, cd.kind, decimal.Zero)
		if err != nil {
			return fmt.Errorf("issuing card: %w", err)
		}
	}
	if _, err := uc.RegisterRider(ctx, "maria", "card-normal"); err != nil {
		return fmt.Errorf("registering rider: %w", err)
	}

	if err := uc.Recharge(ctx, "card-normal", decimal.NewFromInt(5000)); err != nil {
		return fmt.Errorf("recharging: %w", err)
	}
	if err := uc.Recharge(ctx, "card-half", decimal.NewFromInt(2000)); err != nil {
		return fmt.Errorf("recharging: %w", err)
	}
	// an unlisted denomination is rejected and leaves the balance alone
	if err := uc.Recharge(ctx, "card-normal", decimal.NewFromInt(1234)); err != nil {
		fmt.Printf("rejected as expected: %v\n", err)
	}

	var tickets []model.Ticket
	board := func(rider, line string) {
		tk, err := uc.BoardRider(ctx, rider, line)
		if err != nil {
			fmt.Printf("rejected as expected: %v\n", err)
			return
		}
		tickets = append(tickets, tk)
	}
	direct := func(card, line string) {
		tk, err := uc.Board(ctx, card, line)
		if err != nil {
			fmt.Printf("rejected as expected: %v\n", err)
			return
		}
		tickets = append(tickets, tk)
	}

	// a paid trip followed by a transfer to a different line
	board("maria", "143")
	clk.AddMinutes(20)
	board("maria", "K")

	// two free trips, then the allowance is exhausted and the third
	// one is paid from the negative travel allowance
	direct("card-free", "143")
	clk.AddMinutes(10)
	direct("card-free", "143")
	clk.AddMinutes(10)
	direct("card-free", "143")

	// half fare, then too soon, then far enough apart
	direct("card-half", "K")
	direct("card-half", "K")
	clk.AddMinutes(6)
	direct("card-half", "K")

	// franchise cards are unusable outside the franchise window
	clk.AddHours(15) // 23:46 by now
	direct("card-full", "143")

	if jsonOut {
		data, err := gojson.MarshalIndent(tickets, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling tickets: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}
	for _, tk := range tickets {
		fmt.Println(tk.String())
	}
	return nil
}
