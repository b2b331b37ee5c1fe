// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeDelta_EmptyInputsGivesOne(t *testing.T) {
	delta, err := computeDelta(nil, 1024, FrFromUint64(2), FrFromUint64(3))
	require.NoError(t, err)
	require.True(t, delta.Equal(frOne()))
}

func TestComputeDelta_Deterministic(t *testing.T) {
	xs := []Fr{FrFromUint64(11), FrFromUint64(22), FrFromUint64(33)}
	beta := FrFromUint64(5)
	gamma := FrFromUint64(7)

	d1, err := computeDelta(xs, 64, beta, gamma)
	require.NoError(t, err)
	d2, err := computeDelta(xs, 64, beta, gamma)
	require.NoError(t, err)
	require.True(t, d1.Equal(d2))
	require.False(t, d1.IsZero())
}

func TestComputeDelta_ChangesWithCircuitSize(t *testing.T) {
	xs := []Fr{FrFromUint64(1)}
	beta := FrFromUint64(5)
	gamma := FrFromUint64(7)

	d1, err := computeDelta(xs, 64, beta, gamma)
	require.NoError(t, err)
	d2, err := computeDelta(xs, 128, beta, gamma)
	require.NoError(t, err)
	require.False(t, d1.Equal(d2))
}
