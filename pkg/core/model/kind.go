// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// CardKind specifies the card category enum. The category selects the
// discount and eligibility policy which is attached to a card at
// construction time. Although this enum is numeric, it is
// (de)serialized as a string for readability in the adapter layer.
type CardKind int

// Valid values for the CardKind enum.
const (
	CardKindInvalid CardKind = iota // zero value is invalid

	CardKindNormal        // no franchise; frequent-rider tiers apply
	CardKindHalfFare      // half fare twice a day, 5 minutes apart
	CardKindFreePass      // two free trips per day
	CardKindFullFranchise // full fare, restricted usage hours
)

// ErrUnknownCardKind indicates that a given string may not be parsed
// as a valid/known card kind.
var ErrUnknownCardKind = errors.New("unknown card kind")

// CardKindError indicates an invalid card kind numeric value. It
// carries the invalid value itself for reporting purposes.
type CardKindError int

// Error implements the error interface, returning a string
// representation of the CardKindError.
func (e CardKindError) Error() string {
	return fmt.Sprintf("invalid card kind: %d", int(e))
}

// Validate returns nil if the CardKind value is valid. For invalid
// values, an instance of CardKindError will be returned.
func (k CardKind) Validate() error {
	switch k {
	case CardKindNormal, CardKindHalfFare,
		CardKindFreePass, CardKindFullFranchise:
		return nil
	default:
		return CardKindError(k)
	}
}

// String converts the CardKind enum to a string. This string labels
// the issued tickets and serializes the kind for presentation.
// Invalid card kind causes a panic.
func (k CardKind) String() string {
	switch k {
	case CardKindNormal:
		return "normal"
	case CardKindHalfFare:
		return "half-fare"
	case CardKindFreePass:
		return "free-pass"
	case CardKindFullFranchise:
		return "full-franchise"
	default:
		panic(CardKindError(k))
	}
}

// ParseCardKind parses the given string and returns a CardKind,
// helping to deserialize it when reading configuration or CLI input.
// For invalid strings, CardKindInvalid and ErrUnknownCardKind will be
// returned.
func ParseCardKind(k string) (CardKind, error) {
	switch k {
	case "normal":
		return CardKindNormal, nil
	case "half-fare":
		return CardKindHalfFare, nil
	case "free-pass":
		return CardKindFreePass, nil
	case "full-franchise":
		return CardKindFullFranchise, nil
	default:
		return CardKindInvalid, ErrUnknownCardKind
	}
}
