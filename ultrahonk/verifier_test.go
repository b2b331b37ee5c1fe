// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func zeroVK(circuitSize, logCircuitSize, publicInputsSize uint64) *VerificationKey {
	return &VerificationKey{
		CircuitSize:      circuitSize,
		LogCircuitSize:   logCircuitSize,
		PublicInputsSize: publicInputsSize,
		PubInputsOffset:  1,
	}
}

func TestVerifier_RejectsNilVK(t *testing.T) {
	v := NewVerifier(nil, nil, nil, nil)
	err := v.Verify(make([]byte, ProofBytesLen), nil)
	require.ErrorIs(t, err, ErrVkNotSet)
}

func TestVerifier_RejectsWrongProofLength(t *testing.T) {
	vk := zeroVK(1024, 10, 16)
	v := NewVerifier(vk, nil, nil, nil)
	err := v.Verify(make([]byte, ProofBytesLen-1), nil)
	require.ErrorIs(t, err, ErrProofParse)
}

func TestVerifier_RejectsUnalignedPublicInputs(t *testing.T) {
	vk := zeroVK(1024, 10, 16)
	v := NewVerifier(vk, nil, nil, nil)
	err := v.Verify(make([]byte, ProofBytesLen), make([]byte, 31))
	require.ErrorIs(t, err, ErrVerificationFailed)
}

func TestVerifier_RejectsWrongPublicInputCount(t *testing.T) {
	// public_inputs_size=16 means zero "real" public inputs expected
	// (16 is exactly the pairing point object size); supplying one
	// 32-byte chunk must be rejected as a count mismatch.
	vk := zeroVK(1024, 10, 16)
	v := NewVerifier(vk, nil, nil, nil)
	err := v.Verify(make([]byte, ProofBytesLen), make([]byte, 32))
	require.ErrorIs(t, err, errPublicInputCount)
}

func TestVerifier_AllZeroProofAndVKIsVacuouslyAccepted(t *testing.T) {
	// An all-zero proof against an all-zero VK is a degenerate case: every
	// commitment is the group identity, so the batched MSM collapses to
	// the identity and the pairing check trivially holds. This is not a
	// meaningful circuit (circuit_size=2 with no real selectors), but the
	// math has no reason to reject it, and the verifier must not special
	// case it.
	vk := zeroVK(2, 1, 16)
	v := NewVerifier(vk, nil, nil, nil)
	err := v.Verify(make([]byte, ProofBytesLen), nil)
	require.NoError(t, err)
}

func TestVerify_PackageLevelHelperRejectsBadVK(t *testing.T) {
	err := Verify(make([]byte, vkBytesLen-1), make([]byte, ProofBytesLen), nil)
	require.ErrorIs(t, err, ErrVkParse)
}
