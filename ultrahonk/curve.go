// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Bn254Ops abstracts the two elliptic-curve operations the verifier's
// hot path needs: a multi-scalar multiplication over G1 and a two-term
// pairing-product check. Concrete implementations route either to a
// pure Go backend (gnarkBn254Ops, the default) or to a host-provided
// precompile; install the capability once per Verify call.
type Bn254Ops interface {
	// G1Msm computes sum(scalars[i] * coms[i]). len(coms) must equal
	// len(scalars); every non-identity point must be on the curve and
	// in the prime-order subgroup.
	G1Msm(coms []G1Point, scalars []Fr) (G1Point, error)

	// PairingCheck reports whether e(p0, rhsG2) * e(p1, lhsG2) == 1,
	// where rhsG2 and lhsG2 are the two fixed G2 points baked into the
	// protocol (the trusted-setup generator and its shift by tau).
	PairingCheck(p0, p1 G1Point) (bool, error)
}

// gnarkBn254Ops is the default, pure Go Bn254Ops backed by gnark-crypto.
type gnarkBn254Ops struct{}

func newGnarkBn254Ops() *gnarkBn254Ops { return &gnarkBn254Ops{} }

func toAffine(p G1Point) (bn254.G1Affine, error) {
	var a bn254.G1Affine
	if p.isIdentity() {
		// bn254.G1Affine's zero value already represents the identity.
		return a, nil
	}
	a.X.SetBytes(p.X[:])
	a.Y.SetBytes(p.Y[:])
	if !a.IsOnCurve() {
		return a, ErrProofParse
	}
	if !a.IsInSubGroup() {
		return a, ErrProofParse
	}
	return a, nil
}

func fromAffine(a bn254.G1Affine) G1Point {
	var p G1Point
	xb := a.X.Bytes()
	yb := a.Y.Bytes()
	copy(p.X[:], xb[:])
	copy(p.Y[:], yb[:])
	return p
}

func (g *gnarkBn254Ops) G1Msm(coms []G1Point, scalars []Fr) (G1Point, error) {
	if len(coms) != len(scalars) {
		return G1Point{}, ErrVerificationFailed
	}
	points := make([]bn254.G1Affine, 0, len(coms))
	frScalars := make([]fr.Element, 0, len(coms))
	for i, c := range coms {
		if c.isIdentity() {
			// Identity contributes nothing to the sum; skip it so it
			// never has to pass the on-curve check.
			continue
		}
		aff, err := toAffine(c)
		if err != nil {
			return G1Point{}, err
		}
		points = append(points, aff)
		frScalars = append(frScalars, scalars[i].e)
	}
	var acc bn254.G1Affine
	if len(points) == 0 {
		return G1Point{}, nil
	}
	if _, err := acc.MultiExp(points, frScalars, ecc.MultiExpConfig{}); err != nil {
		return G1Point{}, err
	}
	return fromAffine(acc), nil
}

func (g *gnarkBn254Ops) PairingCheck(p0, p1 G1Point) (bool, error) {
	a0, err := toAffine(p0)
	if err != nil {
		return false, err
	}
	a1, err := toAffine(p1)
	if err != nil {
		return false, err
	}
	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{a0, a1},
		[]bn254.G2Affine{rhsG2(), lhsG2()},
	)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// g1Generator returns the canonical BN254 G1 generator (1, 2).
func g1Generator() G1Point {
	var p G1Point
	p.X[31] = 1
	p.Y[31] = 2
	return p
}

// negateG1 returns -p, i.e. (x, -y).
func negateG1(p G1Point) G1Point {
	if p.isIdentity() {
		return p
	}
	var y fp.Element
	y.SetBytes(p.Y[:])
	y.Neg(&y)
	var out G1Point
	out.X = p.X
	yb := y.Bytes()
	copy(out.Y[:], yb[:])
	return out
}

// rhsG2 is the fixed BN254 G2 generator [1]_2, reproduced verbatim from
// the reference protocol's trusted setup.
func rhsG2() bn254.G2Affine {
	var g bn254.G2Affine
	g.X.A0.SetString("0x1800deef121f1e76426a00665e5c4479674322d4f75edadd46debd5cd992f6ed")
	g.X.A1.SetString("0x198e9393920d483a7260bfb731fb5d25f1aa493335a9e71297e485b7aef312c2")
	g.Y.A0.SetString("0x12c85ea5db8c6deb4aab71808dcb408fe3d1e7690c43d37b4ce6cc0166fa7daa")
	g.Y.A1.SetString("0x090689d0585ff075ec9e99ad690c3395bc4b313370b38ef355acdadcd122975b")
	return g
}

// lhsG2 is the fixed shifted-by-tau G2 point [tau]_2 from the reference
// protocol's trusted setup, reproduced verbatim.
func lhsG2() bn254.G2Affine {
	var g bn254.G2Affine
	g.X.A0.SetString("0x0118c4d5b837bcc2bc89b5b398b5974e9f5944073b32078b7e231fec938883b0")
	g.X.A1.SetString("0x260e01b251f6f1c7e7ff4e580791dee8ea51d87a358e038b4efe30fac09383c1")
	g.Y.A0.SetString("0x22febda3c0c0632a56475b4214e5615e11e6dd3f96e6cea2854a87d4dacc5e55")
	g.Y.A1.SetString("0x04fc6369f7110fe3d25156c1bb9a72859cf2a04641f99ba4ee413c80da6a5fe4")
	return g
}
