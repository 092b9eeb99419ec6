// Copyright (c) 2025 Lu-Luou
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"

	"github.com/Lu-Luou/TrabajoTarjeta2025/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardKindRoundTrip(t *testing.T) {
	for _, kind := range []model.CardKind{
		model.CardKindNormal,
		model.CardKindHalfFare,
		model.CardKindFreePass,
		model.CardKindFullFranchise,
	} {
		require.NoError(t, kind.Validate())
		parsed, err := model.ParseCardKind(kind.String())
		require.NoError(t, err, "parsing %q", kind.String())
		assert.Equal(t, kind, parsed)
	}
}

func TestCardKindRejectsUnknownValues(t *testing.T) {
	assert.Error(t, model.CardKindInvalid.Validate())
	assert.Error(t, model.CardKind(9).Validate())
	_, err := model.ParseCardKind("golden-pass")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownCardKind)
}
