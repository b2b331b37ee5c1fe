// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeHashOps struct{}

func (fakeHashOps) Hash(data []byte) [32]byte {
	var out [32]byte
	var acc byte
	for _, b := range data {
		acc ^= b
	}
	out[31] = acc
	out[0] = byte(len(data))
	return out
}

func TestSplitChallenge_SeparatesHighAndLowHalves(t *testing.T) {
	var b [32]byte
	for i := range b {
		b[i] = byte(i + 1)
	}
	f := FrFromBytes(b)
	lo, hi := splitChallenge(f)

	loBytes := lo.Bytes()
	hiBytes := hi.Bytes()
	require.Equal(t, b[16:32], loBytes[16:32])
	require.Equal(t, [16]byte{}, [16]byte(loBytes[0:16]))
	require.Equal(t, b[0:16], hiBytes[16:32])
	require.Equal(t, [16]byte{}, [16]byte(hiBytes[0:16]))
}

func TestFqToHalvesBE_ReassemblesToOriginal(t *testing.T) {
	var coord [32]byte
	coord[10] = 0xAB
	coord[31] = 0x01
	lo, hi := fqToHalvesBE(coord)
	require.NotEqual(t, lo, hi)

	v := new(big.Int).Lsh(new(big.Int).SetBytes(hi[:]), limbSplitShift)
	v.Or(v, new(big.Int).SetBytes(lo[:]))
	var got [32]byte
	v.FillBytes(got[:])
	require.Equal(t, coord, got)
}

func TestGenerateTranscript_DeterministicForSameInputs(t *testing.T) {
	proof := &Proof{}
	pubInputs := []Fr{FrFromUint64(42)}

	t1 := GenerateTranscript(fakeHashOps{}, proof, pubInputs, 1024, 17, 1)
	t2 := GenerateTranscript(fakeHashOps{}, proof, pubInputs, 1024, 17, 1)

	require.True(t, t1.RelParams.Eta.Equal(t2.RelParams.Eta))
	require.True(t, t1.Rho.Equal(t2.Rho))
	require.True(t, t1.ShplonkZ.Equal(t2.ShplonkZ))
	require.Equal(t, t1.Alphas, t2.Alphas)
}

func TestGenerateTranscript_SensitiveToPublicInputs(t *testing.T) {
	proof := &Proof{}
	t1 := GenerateTranscript(fakeHashOps{}, proof, []Fr{FrFromUint64(1)}, 1024, 17, 1)
	t2 := GenerateTranscript(fakeHashOps{}, proof, []Fr{FrFromUint64(2)}, 1024, 17, 1)
	require.False(t, t1.RelParams.Eta.Equal(t2.RelParams.Eta))
}
