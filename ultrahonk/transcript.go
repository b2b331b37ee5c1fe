// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"encoding/binary"
	"math/big"
)

// hashBuf accumulates bytes for one Fiat-Shamir absorption step.
type hashBuf struct {
	bytes []byte
}

func (b *hashBuf) pushFr(f Fr) {
	enc := f.Bytes()
	b.bytes = append(b.bytes, enc[:]...)
}

func (b *hashBuf) pushU64(v uint64) {
	var enc [32]byte
	binary.BigEndian.PutUint64(enc[24:], v)
	b.bytes = append(b.bytes, enc[:]...)
}

func (b *hashBuf) pushBytes32(enc [32]byte) {
	b.bytes = append(b.bytes, enc[:]...)
}

func (b *hashBuf) pushPubInputChunks(chunks []Fr) {
	for _, c := range chunks {
		b.pushFr(c)
	}
}

// limbMask is 2^136 - 1, the mask separating a coordinate's low 136
// bits from its high (<=118-bit) remainder.
var limbMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), limbSplitShift), big.NewInt(1))

// fqToHalvesBE splits a 32-byte big-endian field coordinate into its
// low-136-bit and high-bit halves, each left-padded back to 32 bytes.
// This mirrors the prover's on-wire point encoding inside the
// transcript (distinct from the proof's limb-split parsing, though the
// same split point is used).
func fqToHalvesBE(coord [32]byte) (lo, hi [32]byte) {
	v := new(big.Int).SetBytes(coord[:])
	low := new(big.Int).And(v, limbMask)
	high := new(big.Int).Rsh(v, limbSplitShift)
	lb := low.Bytes()
	copy(lo[32-len(lb):], lb)
	hb := high.Bytes()
	copy(hi[32-len(hb):], hb)
	return lo, hi
}

func (b *hashBuf) pushPoint(pt G1Point) {
	xLo, xHi := fqToHalvesBE(pt.X)
	yLo, yHi := fqToHalvesBE(pt.Y)
	b.pushBytes32(xLo)
	b.pushBytes32(xHi)
	b.pushBytes32(yLo)
	b.pushBytes32(yHi)
}

// splitChallenge produces two 128-bit Fr values by zero-extending the
// lower 16 bytes and the upper 16 bytes, respectively, of f's 32-byte
// big-endian encoding.
func splitChallenge(f Fr) (lo, hi Fr) {
	b := f.Bytes()
	var loB, hiB [32]byte
	copy(loB[16:], b[16:])
	copy(hiB[16:], b[:16])
	return FrFromBytes(loB), FrFromBytes(hiB)
}

func hashToFr(hops HashOps, buf *hashBuf) Fr {
	digest := hops.Hash(buf.bytes)
	return FrFromBytes(digest)
}

func hashSingle(hops HashOps, f Fr) Fr {
	buf := &hashBuf{}
	buf.pushFr(f)
	return hashToFr(hops, buf)
}

func genEta(hops HashOps, proof *Proof, pubInputs []Fr, circuitSize, pisTotal, offset uint64) (RelationParameters, Fr) {
	buf := &hashBuf{}
	buf.pushU64(circuitSize)
	buf.pushU64(pisTotal)
	buf.pushU64(offset)
	buf.pushPubInputChunks(pubInputs)
	for _, f := range proof.PairingPointObject {
		buf.pushFr(f)
	}
	buf.pushPoint(proof.W1)
	buf.pushPoint(proof.W2)
	buf.pushPoint(proof.W3)

	h := hashToFr(hops, buf)
	eta, etaTwo := splitChallenge(h)
	h2 := hashSingle(hops, h)
	etaThree, _ := splitChallenge(h2)

	return RelationParameters{
		Eta: eta, EtaTwo: etaTwo, EtaThree: etaThree,
		Beta: frZero(), Gamma: frZero(), PublicInputsDelta: frZero(),
	}, h2
}

func genBetaGamma(hops HashOps, prev Fr, proof *Proof) (beta, gamma, next Fr) {
	buf := &hashBuf{}
	buf.pushFr(prev)
	buf.pushPoint(proof.LookupReadCounts)
	buf.pushPoint(proof.LookupReadTags)
	buf.pushPoint(proof.W4)
	h := hashToFr(hops, buf)
	beta, gamma = splitChallenge(h)
	return beta, gamma, h
}

func genAlphas(hops HashOps, prev Fr, proof *Proof) ([numberOfAlphas]Fr, Fr) {
	buf := &hashBuf{}
	buf.pushFr(prev)
	buf.pushPoint(proof.LookupInverses)
	buf.pushPoint(proof.ZPerm)
	cur := hashToFr(hops, buf)

	var alphas [numberOfAlphas]Fr
	n := 0
	a0, a1 := splitChallenge(cur)
	alphas[n] = a0
	n++
	alphas[n] = a1
	n++

	for n < numberOfAlphas {
		cur = hashSingle(hops, cur)
		lo, hi := splitChallenge(cur)
		alphas[n] = lo
		n++
		if n < numberOfAlphas {
			alphas[n] = hi
			n++
		}
	}
	return alphas, cur
}

func genChallenges(hops HashOps, cur Fr, rounds int) ([]Fr, Fr) {
	out := make([]Fr, rounds)
	for i := 0; i < rounds; i++ {
		cur = hashSingle(hops, cur)
		lo, _ := splitChallenge(cur)
		out[i] = lo
	}
	return out, cur
}

// GenerateTranscript reproduces the prover's Fiat-Shamir challenge
// sequence bit-for-bit by absorbing the proof's sections in the fixed
// order described in SPEC_FULL.md section 4.2.
func GenerateTranscript(hops HashOps, proof *Proof, pubInputs []Fr, circuitSize, pisTotal, offset uint64) Transcript {
	rp, cur := genEta(hops, proof, pubInputs, circuitSize, pisTotal, offset)

	beta, gamma, cur := genBetaGamma(hops, cur, proof)
	rp.Beta = beta
	rp.Gamma = gamma

	alphas, cur := genAlphas(hops, cur, proof)

	gateChals, cur := genChallenges(hops, cur, constProofSizeLogN)

	uChals := make([]Fr, constProofSizeLogN)
	for r := 0; r < constProofSizeLogN; r++ {
		buf := &hashBuf{}
		buf.pushFr(cur)
		for _, c := range proof.SumcheckUnivariates[r] {
			buf.pushFr(c)
		}
		cur = hashToFr(hops, buf)
		lo, _ := splitChallenge(cur)
		uChals[r] = lo
	}

	buf := &hashBuf{}
	buf.pushFr(cur)
	for _, e := range proof.SumcheckEvaluations {
		buf.pushFr(e)
	}
	cur = hashToFr(hops, buf)
	rho, _ := splitChallenge(cur)

	buf = &hashBuf{}
	buf.pushFr(cur)
	for _, pt := range proof.GeminiFoldComms {
		buf.pushPoint(pt)
	}
	cur = hashToFr(hops, buf)
	geminiR, _ := splitChallenge(cur)

	buf = &hashBuf{}
	buf.pushFr(cur)
	for _, a := range proof.GeminiAEvaluations {
		buf.pushFr(a)
	}
	cur = hashToFr(hops, buf)
	shplonkNu, _ := splitChallenge(cur)

	buf = &hashBuf{}
	buf.pushFr(cur)
	buf.pushPoint(proof.ShplonkQ)
	shplonkZ, _ := splitChallenge(hashToFr(hops, buf))

	var t Transcript
	t.RelParams = rp
	copy(t.Alphas[:], alphas[:])
	copy(t.GateChallenges[:], gateChals)
	copy(t.SumcheckUChallenges[:], uChals)
	t.Rho = rho
	t.GeminiR = geminiR
	t.ShplonkNu = shplonkNu
	t.ShplonkZ = shplonkZ
	return t
}
