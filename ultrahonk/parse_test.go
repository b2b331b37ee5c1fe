// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseVerificationKey_RejectsWrongLength(t *testing.T) {
	_, err := ParseVerificationKey(make([]byte, vkBytesLen-1))
	require.ErrorIs(t, err, ErrVkParse)
}

func TestParseVerificationKey_IdentityCommitmentsParse(t *testing.T) {
	data := make([]byte, vkBytesLen)
	binary.BigEndian.PutUint64(data[0:8], 1024)
	binary.BigEndian.PutUint64(data[8:16], 10)
	binary.BigEndian.PutUint64(data[16:24], 17)
	binary.BigEndian.PutUint64(data[24:32], 1)

	vk, err := ParseVerificationKey(data)
	require.NoError(t, err)
	require.Equal(t, uint64(1024), vk.CircuitSize)
	require.Equal(t, uint64(10), vk.LogCircuitSize)
	require.Equal(t, uint64(17), vk.PublicInputsSize)
	require.True(t, vk.Qm.isIdentity())
	require.True(t, vk.LagrangeLast.isIdentity())
}

func TestParseProof_RejectsWrongLength(t *testing.T) {
	_, err := parseProof(make([]byte, ProofBytesLen-32))
	require.ErrorIs(t, err, ErrProofParse)
}

func TestParseProof_AllZeroBufferParsesToIdentities(t *testing.T) {
	proof, err := parseProof(make([]byte, ProofBytesLen))
	require.NoError(t, err)
	for _, f := range proof.PairingPointObject {
		require.True(t, f.IsZero())
	}
	require.True(t, proof.W1.isIdentity())
	require.True(t, proof.ZPerm.isIdentity())
	require.True(t, proof.KzgQuotient.isIdentity())
}

func TestReadLimbSplitG1_AllZeroLimbsIsIdentity(t *testing.T) {
	p, err := readLimbSplitG1(make([]byte, 128))
	require.NoError(t, err)
	require.True(t, p.isIdentity())
}

func TestReadLimbSplitG1_RejectsOffCurvePoint(t *testing.T) {
	data := make([]byte, 128)
	data[31] = 1 // x_lo = 1, everything else zero -> x=1, y=0, not on curve
	_, err := readLimbSplitG1(data)
	require.ErrorIs(t, err, ErrProofParse)
}

func TestParsePublicInputs_RejectsUnalignedLength(t *testing.T) {
	_, err := ParsePublicInputs(make([]byte, 31))
	require.Error(t, err)
}

func TestParsePublicInputs_RoundTrip(t *testing.T) {
	var chunk [32]byte
	chunk[31] = 9
	data := append(append([]byte{}, chunk[:]...), chunk[:]...)
	out, err := ParsePublicInputs(data)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, chunk, out[0].Bytes())
}
