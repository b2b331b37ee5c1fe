// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

// shpleminiTotal is the fixed MSM layout size: 1 (shplonk_Q) +
// numberOfEntities (VK + proof entities) + (constProofSizeLogN - 1)
// gemini fold commitments + 1 (the [1]_1 G1 generator carrying the
// constant term) + 1 (kzg_quotient).
const shpleminiTotal = 1 + numberOfEntities + constProofSizeLogN + 1

// VerifyShplemini reduces the Gemini-folded, Shplonk-batched opening
// claim to a single multi-scalar multiplication and a single pairing
// check, exactly mirroring the reference protocol's batched KZG
// verifier.
func VerifyShplemini(ec Bn254Ops, proof *Proof, vk *VerificationKey, t *Transcript) error {
	logN := int(vk.LogCircuitSize)

	var rPows [constProofSizeLogN]Fr
	rPows[0] = t.GeminiR
	for i := 1; i < logN; i++ {
		rPows[i] = rPows[i-1].Mul(rPows[i-1])
	}

	var scalars [shpleminiTotal]Fr
	var coms [shpleminiTotal]G1Point
	for i := range scalars {
		scalars[i] = frZero()
	}

	pos0, ok := t.ShplonkZ.Sub(rPows[0]).Inverse()
	if !ok {
		return errShplonkFailed
	}
	neg0, ok := t.ShplonkZ.Add(rPows[0]).Inverse()
	if !ok {
		return errShplonkFailed
	}
	unshifted := pos0.Add(t.ShplonkNu.Mul(neg0))
	geminiRInv, ok := t.GeminiR.Inverse()
	if !ok {
		return errShplonkFailed
	}
	shifted := geminiRInv.Mul(pos0.Sub(t.ShplonkNu.Mul(neg0)))

	scalars[0] = frOne()
	coms[0] = proof.ShplonkQ

	rhoPow := frOne()
	evalAcc := frZero()
	for idx, eval := range proof.SumcheckEvaluations {
		var scalar Fr
		if idx < numberUnshifted {
			scalar = frZero().Sub(unshifted)
		} else {
			scalar = frZero().Sub(shifted)
		}
		scalar = scalar.Mul(rhoPow)
		scalars[1+idx] = scalar
		evalAcc = evalAcc.Add(eval.Mul(rhoPow))
		rhoPow = rhoPow.Mul(t.Rho)
	}

	j := 1
	for _, c := range vk.commitments() {
		coms[j] = c
		j++
	}
	for _, c := range []G1Point{proof.W1, proof.W2, proof.W3, proof.W4, proof.ZPerm,
		proof.LookupInverses, proof.LookupReadCounts, proof.LookupReadTags} {
		coms[j] = c
		j++
	}
	for _, c := range []G1Point{proof.W1, proof.W2, proof.W3, proof.W4, proof.ZPerm} {
		coms[j] = c
		j++
	}

	var foldPos [constProofSizeLogN]Fr
	cur := evalAcc
	for jj := logN; jj >= 1; jj-- {
		r2 := rPows[jj-1]
		u := t.SumcheckUChallenges[jj-1]
		num := r2.Mul(cur).Mul(FrFromUint64(2)).
			Sub(proof.GeminiAEvaluations[jj-1].Mul(r2.Mul(frOne().Sub(u)).Sub(u)))
		den := r2.Mul(frOne().Sub(u)).Add(u)
		denInv, ok := den.Inverse()
		if !ok {
			return errShplonkFailed
		}
		cur = num.Mul(denInv)
		foldPos[jj-1] = cur
	}

	constAcc := foldPos[0].Mul(pos0).Add(proof.GeminiAEvaluations[0].Mul(t.ShplonkNu).Mul(neg0))
	vPow := t.ShplonkNu.Mul(t.ShplonkNu)

	base := 1 + numberOfEntities
	for jj := 1; jj < logN; jj++ {
		posInv, ok := t.ShplonkZ.Sub(rPows[jj]).Inverse()
		if !ok {
			return errShplonkFailed
		}
		negInv, ok := t.ShplonkZ.Add(rPows[jj]).Inverse()
		if !ok {
			return errShplonkFailed
		}
		sp := vPow.Mul(posInv)
		sn := vPow.Mul(t.ShplonkNu).Mul(negInv)

		scalars[base+jj-1] = frZero().Sub(sp.Add(sn))
		constAcc = constAcc.Add(proof.GeminiAEvaluations[jj].Mul(sn)).Add(foldPos[jj].Mul(sp))

		vPow = vPow.Mul(t.ShplonkNu).Mul(t.ShplonkNu)
		coms[base+jj-1] = proof.GeminiFoldComms[jj-1]
	}

	for i := logN - 1; i < constProofSizeLogN-1; i++ {
		coms[base+i] = proof.GeminiFoldComms[i]
	}

	oneIdx := base + (constProofSizeLogN - 1)
	coms[oneIdx] = g1Generator()
	scalars[oneIdx] = constAcc

	qIdx := oneIdx + 1
	coms[qIdx] = proof.KzgQuotient
	scalars[qIdx] = t.ShplonkZ

	p0, err := ec.G1Msm(coms[:], scalars[:])
	if err != nil {
		return err
	}
	p1 := negateG1(proof.KzgQuotient)

	ok, err = ec.PairingCheck(p0, p1)
	if err != nil {
		return err
	}
	if !ok {
		return errShplonkFailed
	}
	return nil
}
