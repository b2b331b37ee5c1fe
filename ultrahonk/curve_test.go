// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestG1Msm_IdentityScalarsYieldIdentity(t *testing.T) {
	ec := newGnarkBn254Ops()
	coms := []G1Point{g1Generator(), g1Generator()}
	scalars := []Fr{frZero(), frZero()}
	out, err := ec.G1Msm(coms, scalars)
	require.NoError(t, err)
	require.True(t, out.isIdentity())
}

func TestG1Msm_SingleUnitScalarReturnsGenerator(t *testing.T) {
	ec := newGnarkBn254Ops()
	out, err := ec.G1Msm([]G1Point{g1Generator()}, []Fr{frOne()})
	require.NoError(t, err)
	require.Equal(t, g1Generator(), out)
}

func TestG1Msm_MismatchedLengthsRejected(t *testing.T) {
	ec := newGnarkBn254Ops()
	_, err := ec.G1Msm([]G1Point{g1Generator()}, []Fr{frOne(), frOne()})
	require.Error(t, err)
}

func TestNegateG1_IdentityIsFixedPoint(t *testing.T) {
	require.True(t, negateG1(g1Identity()).isIdentity())
}

func TestNegateG1_DoubleNegationIsIdentityMap(t *testing.T) {
	p := g1Generator()
	require.Equal(t, p, negateG1(negateG1(p)))
}

func TestPairingCheck_IdentityPointsAccept(t *testing.T) {
	ec := newGnarkBn254Ops()
	// e(O, rhsG2) * e(O, lhsG2) == 1 for the G1 identity O, whatever the
	// package's fixed (rhsG2, lhsG2) pair is.
	ok, err := ec.PairingCheck(g1Identity(), g1Identity())
	require.NoError(t, err)
	require.True(t, ok)
}
