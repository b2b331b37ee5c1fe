// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFr_BytesRoundTrip(t *testing.T) {
	var b [32]byte
	b[31] = 0x2a
	b[0] = 0x01
	f := FrFromBytes(b)
	require.Equal(t, b, f.Bytes())
}

func TestFr_AddSubInverse(t *testing.T) {
	a := FrFromUint64(7)
	b := FrFromUint64(3)
	sum := a.Add(b)
	require.True(t, sum.Equal(FrFromUint64(10)))
	require.True(t, sum.Sub(b).Equal(a))

	inv, ok := a.Inverse()
	require.True(t, ok)
	require.True(t, a.Mul(inv).Equal(frOne()))
}

func TestFr_InverseOfZero(t *testing.T) {
	_, ok := frZero().Inverse()
	require.False(t, ok)
}

func TestFr_Pow(t *testing.T) {
	a := FrFromUint64(2)
	require.True(t, a.Pow(5).Equal(FrFromUint64(32)))
	require.True(t, a.Pow(0).Equal(frOne()))
}

func TestFr_Neg(t *testing.T) {
	a := FrFromUint64(5)
	require.True(t, a.Add(a.Neg()).IsZero())
}

func TestFrFromHex_AcceptsWithAndWithoutPrefix(t *testing.T) {
	withPrefix := frFromHex("0x2a")
	withoutPrefix := frFromHex("2a")
	require.True(t, withPrefix.Equal(withoutPrefix))
	require.True(t, withPrefix.Equal(FrFromUint64(42)))
}
