// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
)

// limbSplitShift is the bit position at which a proof-embedded G1
// coordinate's high limb begins: the low 136 bits come from the "lo"
// word, the remaining (<=118) bits from the "hi" word.
const limbSplitShift = 136

// checkG1 validates that a reconstructed affine point is either the
// identity or lies on the curve and in the prime-order subgroup.
func checkG1(p G1Point, parseErr error) error {
	if p.isIdentity() {
		return nil
	}
	var a bn254.G1Affine
	a.X.SetBytes(p.X[:])
	a.Y.SetBytes(p.Y[:])
	if !a.IsOnCurve() || !a.IsInSubGroup() {
		return parseErr
	}
	return nil
}

// ParseVerificationKey parses the fixed 1760-byte VK layout: four
// big-endian u64 header words followed by 27 affine points encoded as
// plain 32-byte-BE (x || y) pairs, in the canonical commitment order.
func ParseVerificationKey(data []byte) (*VerificationKey, error) {
	if len(data) != vkBytesLen {
		return nil, ErrVkParse
	}
	vk := &VerificationKey{
		CircuitSize:      binary.BigEndian.Uint64(data[0:8]),
		LogCircuitSize:   binary.BigEndian.Uint64(data[8:16]),
		PublicInputsSize: binary.BigEndian.Uint64(data[16:24]),
		PubInputsOffset:  binary.BigEndian.Uint64(data[24:32]),
	}

	cursor := vkHeaderWords * 8
	readPoint := func() (G1Point, error) {
		var p G1Point
		copy(p.X[:], data[cursor:cursor+32])
		copy(p.Y[:], data[cursor+32:cursor+64])
		cursor += 64
		if err := checkG1(p, ErrVkParse); err != nil {
			return G1Point{}, err
		}
		return p, nil
	}

	points := make([]G1Point, vkNumPoints)
	for i := range points {
		p, err := readPoint()
		if err != nil {
			return nil, err
		}
		points[i] = p
	}

	vk.Qm, vk.Qc, vk.Ql, vk.Qr, vk.Qo, vk.Q4 = points[0], points[1], points[2], points[3], points[4], points[5]
	vk.QLookup, vk.QArith, vk.QDeltaRange, vk.QElliptic = points[6], points[7], points[8], points[9]
	vk.QAux, vk.QPoseidon2External, vk.QPoseidon2Internal = points[10], points[11], points[12]
	vk.S1, vk.S2, vk.S3, vk.S4 = points[13], points[14], points[15], points[16]
	vk.Id1, vk.Id2, vk.Id3, vk.Id4 = points[17], points[18], points[19], points[20]
	vk.T1, vk.T2, vk.T3, vk.T4 = points[21], points[22], points[23], points[24]
	vk.LagrangeFirst, vk.LagrangeLast = points[25], points[26]

	return vk, nil
}

// reduceToFq reduces a big-endian-encoded coordinate (possibly wider
// than the field, as produced by limb reassembly) to its canonical
// 32-byte representative mod the BN254 base field.
func reduceToFq(v *big.Int) [32]byte {
	var e fp.Element
	e.SetBigInt(v)
	return e.Bytes()
}

// readLimbSplitG1 reads a 128-byte limb-split point: x_lo, x_hi, y_lo,
// y_hi, each 32 bytes, reassembled as lo | (hi << 136).
func readLimbSplitG1(data []byte) (G1Point, error) {
	xLo := new(big.Int).SetBytes(data[0:32])
	xHi := new(big.Int).SetBytes(data[32:64])
	yLo := new(big.Int).SetBytes(data[64:96])
	yHi := new(big.Int).SetBytes(data[96:128])

	x := new(big.Int).Lsh(xHi, limbSplitShift)
	x.Or(x, xLo)
	y := new(big.Int).Lsh(yHi, limbSplitShift)
	y.Or(y, yLo)

	var p G1Point
	p.X = reduceToFq(x)
	p.Y = reduceToFq(y)
	if err := checkG1(p, ErrProofParse); err != nil {
		return G1Point{}, err
	}
	return p, nil
}

// parseProof parses the fixed 14592-byte proof layout described in
// SPEC_FULL.md / spec.md section 6.
func parseProof(data []byte) (*Proof, error) {
	if len(data) != ProofBytesLen {
		return nil, ErrProofParse
	}

	cursor := 0
	readFr := func() Fr {
		var b [32]byte
		copy(b[:], data[cursor:cursor+32])
		cursor += 32
		return FrFromBytes(b)
	}
	readG1 := func() (G1Point, error) {
		p, err := readLimbSplitG1(data[cursor : cursor+128])
		cursor += 128
		return p, err
	}

	proof := &Proof{}
	for i := range proof.PairingPointObject {
		proof.PairingPointObject[i] = readFr()
	}

	var err error
	if proof.W1, err = readG1(); err != nil {
		return nil, err
	}
	if proof.W2, err = readG1(); err != nil {
		return nil, err
	}
	if proof.W3, err = readG1(); err != nil {
		return nil, err
	}
	if proof.LookupReadCounts, err = readG1(); err != nil {
		return nil, err
	}
	if proof.LookupReadTags, err = readG1(); err != nil {
		return nil, err
	}
	if proof.W4, err = readG1(); err != nil {
		return nil, err
	}
	if proof.LookupInverses, err = readG1(); err != nil {
		return nil, err
	}
	if proof.ZPerm, err = readG1(); err != nil {
		return nil, err
	}

	for r := 0; r < constProofSizeLogN; r++ {
		for c := 0; c < batchedRelationPartialLen; c++ {
			proof.SumcheckUnivariates[r][c] = readFr()
		}
	}
	for i := range proof.SumcheckEvaluations {
		proof.SumcheckEvaluations[i] = readFr()
	}
	for i := range proof.GeminiFoldComms {
		if proof.GeminiFoldComms[i], err = readG1(); err != nil {
			return nil, err
		}
	}
	for i := range proof.GeminiAEvaluations {
		proof.GeminiAEvaluations[i] = readFr()
	}
	if proof.ShplonkQ, err = readG1(); err != nil {
		return nil, err
	}
	if proof.KzgQuotient, err = readG1(); err != nil {
		return nil, err
	}

	if cursor != ProofBytesLen {
		return nil, ErrProofParse
	}
	return proof, nil
}

// ParsePublicInputs splits a byte buffer into 32-byte big-endian Fr
// chunks. The caller is responsible for checking the chunk count
// against vk.PublicInputsSize - pairingPointsSize.
func ParsePublicInputs(data []byte) ([]Fr, error) {
	if len(data)%32 != 0 {
		return nil, ErrVerificationFailed
	}
	out := make([]Fr, len(data)/32)
	for i := range out {
		var b [32]byte
		copy(b[:], data[i*32:(i+1)*32])
		out[i] = FrFromBytes(b)
	}
	return out, nil
}
