// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the farecard command to instantiate
// components from the adapter and use cases layers using those loaded
// configuration settings.
// The parsed and validated configuration is handed to its ultimate
// components as individual params and functional options, so each
// component keeps validating its own inputs independently of this
// adapter. This design decision causes a bit of redundancy in favor
// of a defensive solution.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/model"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Major, Minor, and Patch components of the supported configuration
// file format version. Files announcing another major version are
// rejected, while older minor versions are filled in with defaults.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version of the supported configuration file format.
var Version = model.SemVer{Major, Minor, Patch}

// Config contains the fare engine settings. It may be loaded from a
// yaml file with the Load function or instantiated with the Default
// function, and in both cases it passes through ValidateAndNormalize
// before use.
type Config struct {
	Version model.SemVer `yaml:"version"`
	Logging Logging      `yaml:"logging"`
	Fares   Fares        `yaml:"fares"`
	Limits  Limits       `yaml:"limits"`
	Rules   Rules        `yaml:"rules"`
}

// Logging configures the slog-based logger of the process.
type Logging struct {
	// Level is the minimum severity of the emitted records. It must
	// be one of debug, info, warn, or error.
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// Format selects the handler encoding, either text or json.
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Fares configures the default fares of newly registered lines.
type Fares struct {
	Urban     int64 `yaml:"urban" validate:"min=1"`
	Intercity int64 `yaml:"intercity" validate:"min=1"`
}

// Limits configures the card balance limits and the recharge
// denomination allow-list.
type Limits struct {
	MaxBalance      int64   `yaml:"max-balance"`
	MinBalance      int64   `yaml:"min-balance"`
	RechargeAmounts []int64 `yaml:"recharge-amounts" validate:"min=1,dive,min=1"`
}

// HourRange configures a half-open daily time window covering the
// hours [From, To) of a day.
type HourRange struct {
	From int `yaml:"from" validate:"min=0,max=23"`
	To   int `yaml:"to" validate:"min=1,max=24"`
}

// Tier configures one frequent-rider discount tier, applying the
// Multiplier to the base fare while the monthly trip count falls in
// the [From, To) range.
type Tier struct {
	From       int     `yaml:"from" validate:"min=0"`
	To         int     `yaml:"to" validate:"min=1"`
	Multiplier float64 `yaml:"multiplier" validate:"gt=0,lt=1"`
}

// Rules configures the discount, franchise, transfer, and
// frequent-rider fare rules.
type Rules struct {
	FreeTripsPerDay        int       `yaml:"free-trips-per-day" validate:"min=0"`
	HalfFareTripsPerDay    int       `yaml:"half-fare-trips-per-day" validate:"min=0"`
	HalfFareSpacingMinutes int       `yaml:"half-fare-spacing-minutes" validate:"min=0"`
	FranchiseHours         HourRange `yaml:"franchise-hours"`
	TransferMaxMinutes     int       `yaml:"transfer-max-minutes" validate:"min=1"`
	TransferHours          HourRange `yaml:"transfer-hours"`
	FrequentTiers          []Tier    `yaml:"frequent-tiers" validate:"dive"`
}

// Default returns the default configuration settings, mirroring the
// standard tariff rule book with text logging at the info level.
func Default() *Config {
	return &Config{
		Version: Version,
		Logging: Logging{Level: "info", Format: "text"},
		Fares:   Fares{Urban: 700, Intercity: 3000},
		Limits: Limits{
			MaxBalance: 56000,
			MinBalance: -1200,
			RechargeAmounts: []int64{
				2000, 3000, 4000, 5000, 8000,
				10000, 15000, 20000, 25000, 30000,
			},
		},
		Rules: Rules{
			FreeTripsPerDay:        2,
			HalfFareTripsPerDay:    2,
			HalfFareSpacingMinutes: 5,
			FranchiseHours:         HourRange{From: 6, To: 22},
			TransferMaxMinutes:     60,
			TransferHours:          HourRange{From: 7, To: 22},
			FrequentTiers: []Tier{
				{From: 30, To: 60, Multiplier: 0.8},
				{From: 60, To: 80, Multiplier: 0.75},
			},
		},
	}
}

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// The file must announce the supported major format version; a file
// from an older minor version loads with the missing settings filled
// in from the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if c.Version[0] != Major {
		return nil, &model.MismatchingSemVerError{Version, c.Version}
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize fills the zero-valued settings in from the
// defaults and then validates the complete configuration, checking
// both the struct tags and the tariff-level consistency rules.
func (c *Config) ValidateAndNormalize() error {
	d := Default()
	if c.Logging.Level == "" {
		c.Logging.Level = d.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = d.Logging.Format
	}
	if c.Fares.Urban == 0 {
		c.Fares.Urban = d.Fares.Urban
	}
	if c.Fares.Intercity == 0 {
		c.Fares.Intercity = d.Fares.Intercity
	}
	if c.Limits.MaxBalance == 0 {
		c.Limits.MaxBalance = d.Limits.MaxBalance
	}
	if c.Limits.MinBalance == 0 {
		c.Limits.MinBalance = d.Limits.MinBalance
	}
	if len(c.Limits.RechargeAmounts) == 0 {
		c.Limits.RechargeAmounts = d.Limits.RechargeAmounts
	}
	if c.Rules.FreeTripsPerDay == 0 {
		c.Rules.FreeTripsPerDay = d.Rules.FreeTripsPerDay
	}
	if c.Rules.HalfFareTripsPerDay == 0 {
		c.Rules.HalfFareTripsPerDay = d.Rules.HalfFareTripsPerDay
	}
	if c.Rules.HalfFareSpacingMinutes == 0 {
		c.Rules.HalfFareSpacingMinutes = d.Rules.HalfFareSpacingMinutes
	}
	if c.Rules.FranchiseHours == (HourRange{}) {
		c.Rules.FranchiseHours = d.Rules.FranchiseHours
	}
	if c.Rules.TransferMaxMinutes == 0 {
		c.Rules.TransferMaxMinutes = d.Rules.TransferMaxMinutes
	}
	if c.Rules.TransferHours == (HourRange{}) {
		c.Rules.TransferHours = d.Rules.TransferHours
	}
	if c.Rules.FrequentTiers == nil {
		c.Rules.FrequentTiers = d.Rules.FrequentTiers
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating struct: %w", err)
	}
	return c.Tariff().Validate()
}

// Tariff converts the configured settings into the model-level rule
// book which governs the cards and lines of a fares use case.
func (c *Config) Tariff() *model.Tariff {
	ra := make([]decimal.Decimal, len(c.Limits.RechargeAmounts))
	for i, a := range c.Limits.RechargeAmounts {
		ra[i] = decimal.NewFromInt(a)
	}
	tiers := make([]model.FrequentTier, len(c.Rules.FrequentTiers))
	for i, t := range c.Rules.FrequentTiers {
		tiers[i] = model.FrequentTier{
			FromTrips:  t.From,
			ToTrips:    t.To,
			Multiplier: decimal.NewFromFloat(t.Multiplier),
		}
	}
	return &model.Tariff{
		Limits: model.Limits{
			MaxBalance:      decimal.NewFromInt(c.Limits.MaxBalance),
			MinBalance:      decimal.NewFromInt(c.Limits.MinBalance),
			RechargeAmounts: ra,
		},
		UrbanFare:     decimal.NewFromInt(c.Fares.Urban),
		IntercityFare: decimal.NewFromInt(c.Fares.Intercity),

		FreeTripsPerDay:     c.Rules.FreeTripsPerDay,
		HalfFareTripsPerDay: c.Rules.HalfFareTripsPerDay,
		HalfFareSpacing: time.Duration(
			c.Rules.HalfFareSpacingMinutes,
		) * time.Minute,
		FranchiseHours: model.HourRange{
			From: c.Rules.FranchiseHours.From,
			To:   c.Rules.FranchiseHours.To,
		},
		TransferMaxGap: time.Duration(
			c.Rules.TransferMaxMinutes,
		) * time.Minute,
		TransferHours: model.HourRange{
			From: c.Rules.TransferHours.From,
			To:   c.Rules.TransferHours.To,
		},
		FrequentTiers: tiers,
	}
}

// NewLogger instantiates an slog logger honoring the configured
// minimum level and handler format, writing to the standard error.
func (l Logging) NewLogger() *slog.Logger {
	var level slog.Level
	switch l.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if l.Format == "json" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(h)
}
