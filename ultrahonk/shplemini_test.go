// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyShplemini_AllIdentityCommitmentsAccept(t *testing.T) {
	// Every commitment (VK + proof) is the group identity and every
	// Sum-Check opening is zero: the batched MSM collapses to the
	// identity and the pairing check trivially holds.
	vk := &VerificationKey{LogCircuitSize: 1}
	proof := &Proof{}
	var tr Transcript
	tr.GeminiR = FrFromUint64(5)
	tr.ShplonkZ = FrFromUint64(7)
	tr.ShplonkNu = FrFromUint64(11)
	tr.Rho = FrFromUint64(13)
	tr.SumcheckUChallenges[0] = FrFromUint64(3)

	err := VerifyShplemini(newGnarkBn254Ops(), proof, vk, &tr)
	require.NoError(t, err)
}

func TestVerifyShplemini_BogusKzgQuotientRejected(t *testing.T) {
	vk := &VerificationKey{LogCircuitSize: 1}
	proof := &Proof{KzgQuotient: g1Generator()}
	var tr Transcript
	tr.GeminiR = FrFromUint64(5)
	tr.ShplonkZ = FrFromUint64(7)
	tr.ShplonkNu = FrFromUint64(11)
	tr.Rho = FrFromUint64(13)
	tr.SumcheckUChallenges[0] = FrFromUint64(3)

	err := VerifyShplemini(newGnarkBn254Ops(), proof, vk, &tr)
	require.ErrorIs(t, err, errShplonkFailed)
}

func TestVerifyShplemini_ZeroShplonkZMinusRPowIsRejectedAsArithmeticFailure(t *testing.T) {
	vk := &VerificationKey{LogCircuitSize: 1}
	proof := &Proof{}
	var tr Transcript
	tr.GeminiR = FrFromUint64(7)
	tr.ShplonkZ = FrFromUint64(7) // z - rPows[0] == z - r == 0
	tr.ShplonkNu = FrFromUint64(11)
	tr.Rho = FrFromUint64(13)

	err := VerifyShplemini(newGnarkBn254Ops(), proof, vk, &tr)
	require.ErrorIs(t, err, errShplonkFailed)
}
