// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

// negHalf is (p_r - 1)/2 in the BN254 scalar field, precomputed.
var negHalf = frFromHex("0x183227397098d014dc2822db40c0ac2e9419f4243cdcb848a1f0fac9f8000000")

// internalMatrixDiagonal holds the Poseidon2 internal-round MDS
// diagonal, one entry per wire.
var internalMatrixDiagonal = [4]Fr{
	frFromHex("0x10dc6e9c006ea38b04b1e03b4bd9490c0d03f98929ca1d7fb56821fd19d3b6e7"),
	frFromHex("0x0c28145b6a44df3e0149b3d0a30b3bb599df9756d4dd9b84a86b38cfb45a740b"),
	frFromHex("0x00544b8338791518b2c7645a50392798b21f75bb60e3596170067d00141cac15"),
	frFromHex("0x222c01175718386f2e2e82eb122789e352e105a3b8fa852613bc534433ee428b"),
}

func w(p []Fr, x wire) Fr { return p[x] }

// accumulateArithmeticRelation fills relations 0 and 1.
func accumulateArithmeticRelation(p []Fr, evals *[numberOfSubrelations]Fr, domainSep Fr) {
	qArith := w(p, wireQArith)

	accum := qArith.Sub(FrFromUint64(3)).Mul(w(p, wireQm)).Mul(w(p, wireWr)).Mul(w(p, wireWl)).Mul(negHalf)
	accum = accum.
		Add(w(p, wireQl).Mul(w(p, wireWl))).
		Add(w(p, wireQr).Mul(w(p, wireWr))).
		Add(w(p, wireQo).Mul(w(p, wireWo))).
		Add(w(p, wireQ4).Mul(w(p, wireW4))).
		Add(w(p, wireQc))
	accum = accum.Add(qArith.Sub(frOne()).Mul(w(p, wireW4Shift))).Mul(qArith).Mul(domainSep)
	evals[0] = accum

	accum1 := w(p, wireWl).Add(w(p, wireW4)).Sub(w(p, wireWlShift)).Add(w(p, wireQm))
	accum1 = accum1.
		Mul(qArith.Sub(FrFromUint64(2))).
		Mul(qArith.Sub(FrFromUint64(1))).
		Mul(qArith).
		Mul(domainSep)
	evals[1] = accum1
}

// accumulatePermutationRelation fills relations 2 and 3.
func accumulatePermutationRelation(p []Fr, rp *RelationParameters, evals *[numberOfSubrelations]Fr, domainSep Fr) {
	num := w(p, wireWl).Add(w(p, wireId1).Mul(rp.Beta)).Add(rp.Gamma)
	num = num.
		Mul(w(p, wireWr).Add(w(p, wireId2).Mul(rp.Beta)).Add(rp.Gamma)).
		Mul(w(p, wireWo).Add(w(p, wireId3).Mul(rp.Beta)).Add(rp.Gamma)).
		Mul(w(p, wireW4).Add(w(p, wireId4).Mul(rp.Beta)).Add(rp.Gamma))

	den := w(p, wireWl).Add(w(p, wireSigma1).Mul(rp.Beta)).Add(rp.Gamma)
	den = den.
		Mul(w(p, wireWr).Add(w(p, wireSigma2).Mul(rp.Beta)).Add(rp.Gamma)).
		Mul(w(p, wireWo).Add(w(p, wireSigma3).Mul(rp.Beta)).Add(rp.Gamma)).
		Mul(w(p, wireW4).Add(w(p, wireSigma4).Mul(rp.Beta)).Add(rp.Gamma))

	evals[2] = (w(p, wireZPerm).Add(w(p, wireLagrangeFirst)).Mul(num)).
		Sub(w(p, wireZPermShift).Add(w(p, wireLagrangeLast).Mul(rp.PublicInputsDelta)).Mul(den)).
		Mul(domainSep)

	evals[3] = w(p, wireLagrangeLast).Mul(w(p, wireZPermShift)).Mul(domainSep)
}

// accumulateLogDerivativeLookupRelation fills relations 4 and 5.
func accumulateLogDerivativeLookupRelation(p []Fr, rp *RelationParameters, evals *[numberOfSubrelations]Fr, domainSep Fr) {
	writeTerm := w(p, wireTable1).Add(rp.Gamma).
		Add(w(p, wireTable2).Mul(rp.Eta)).
		Add(w(p, wireTable3).Mul(rp.EtaTwo)).
		Add(w(p, wireTable4).Mul(rp.EtaThree))

	derived2 := w(p, wireWr).Add(w(p, wireQm).Mul(w(p, wireWrShift)))
	derived3 := w(p, wireWo).Add(w(p, wireQc).Mul(w(p, wireWoShift)))

	readTerm := w(p, wireWl).Add(rp.Gamma).
		Add(w(p, wireQr).Mul(w(p, wireWlShift))).
		Add(derived2.Mul(rp.Eta)).
		Add(derived3.Mul(rp.EtaTwo)).
		Add(w(p, wireQo).Mul(rp.EtaThree))

	inv := w(p, wireLookupInverses)
	invExists := w(p, wireLookupReadTags).Add(w(p, wireQLookup)).
		Sub(w(p, wireLookupReadTags).Mul(w(p, wireQLookup)))

	evals[4] = readTerm.Mul(writeTerm).Mul(inv).Sub(invExists).Mul(domainSep)
	evals[5] = w(p, wireQLookup).Mul(writeTerm.Mul(inv)).
		Sub(w(p, wireLookupReadCounts).Mul(readTerm.Mul(inv)))
}

// accumulateDeltaRangeRelation fills relations 6..9.
func accumulateDeltaRangeRelation(p []Fr, evals *[numberOfSubrelations]Fr, domainSep Fr) {
	minusOne := frZero().Sub(FrFromUint64(1))
	minusTwo := frZero().Sub(FrFromUint64(2))
	minusThree := frZero().Sub(FrFromUint64(3))

	deltas := [4]Fr{
		w(p, wireWr).Sub(w(p, wireWl)),
		w(p, wireWo).Sub(w(p, wireWr)),
		w(p, wireW4).Sub(w(p, wireWo)),
		w(p, wireWlShift).Sub(w(p, wireW4)),
	}
	negs := [3]Fr{minusOne, minusTwo, minusThree}

	for i := 0; i < 4; i++ {
		acc := deltas[i]
		for _, n := range negs {
			acc = acc.Mul(deltas[i].Add(n))
		}
		evals[6+i] = acc.Mul(w(p, wireQRange)).Mul(domainSep)
	}
}

// accumulateEllipticRelation fills relations 10 and 11.
func accumulateEllipticRelation(p []Fr, evals *[numberOfSubrelations]Fr, domainSep Fr) {
	x1 := w(p, wireWr)
	y1 := w(p, wireWo)
	x2 := w(p, wireWlShift)
	y2 := w(p, wireW4Shift)
	x3 := w(p, wireWrShift)
	y3 := w(p, wireWoShift)

	qSign := w(p, wireQl)
	qDouble := w(p, wireQm)
	qGate := w(p, wireQElliptic)

	deltaX := x2.Sub(x1)
	y1Sq := y1.Mul(y1)

	y2Sq := y2.Mul(y2)
	y1y2 := y1.Mul(y2).Mul(qSign)
	xAddID := x3.Add(x2).Add(x1).Mul(deltaX).Mul(deltaX).Sub(y2Sq).Sub(y1Sq).Add(y1y2).Add(y1y2)

	yDiff := y2.Mul(qSign).Sub(y1)
	yAddID := y1.Add(y3).Mul(deltaX).Add(x3.Sub(x1).Mul(yDiff))

	bNeg := FrFromUint64(17)

	xPow4 := y1Sq.Add(bNeg).Mul(x1)
	y1SqrMul4 := y1Sq.Add(y1Sq).Add(y1Sq).Add(y1Sq)
	xPow4Mul9 := xPow4.Mul(FrFromUint64(9))
	xDoubleID := x3.Add(x1).Add(x1).Mul(y1SqrMul4).Sub(xPow4Mul9)

	x1SqrMul3 := x1.Add(x1).Add(x1).Mul(x1)
	yDoubleID := x1SqrMul3.Mul(x1.Sub(x3)).Sub(y1.Add(y1).Mul(y1.Add(y3)))

	addFactor := frOne().Sub(qDouble).Mul(qGate).Mul(domainSep)
	doubleFactor := qDouble.Mul(qGate).Mul(domainSep)

	evals[10] = xAddID.Mul(addFactor).Add(xDoubleID.Mul(doubleFactor))
	evals[11] = yAddID.Mul(addFactor).Add(yDoubleID.Mul(doubleFactor))
}

var limbSize = frFromHex("0x100000000000000000")

func sublimbShift() Fr { return FrFromUint64(1 << 14) }

// accumulateAuxiliaryRelation fills relation 12 (and the ROM/RAM
// consistency pieces, relations 13..17, which it computes alongside).
func accumulateAuxiliaryRelation(p []Fr, rp *RelationParameters, evals *[numberOfSubrelations]Fr, domainSep Fr) {
	shift := sublimbShift()

	limbSubproduct := w(p, wireWl).Mul(w(p, wireWrShift)).Add(w(p, wireWlShift).Mul(w(p, wireWr)))

	nonNativeGate2 := w(p, wireWl).Mul(w(p, wireW4)).
		Add(w(p, wireWr).Mul(w(p, wireWo))).
		Sub(w(p, wireWoShift))
	nonNativeGate2 = nonNativeGate2.Mul(limbSize).Sub(w(p, wireW4Shift)).Add(limbSubproduct)
	nonNativeGate2 = nonNativeGate2.Mul(w(p, wireQ4))

	limbSubproduct = limbSubproduct.Mul(limbSize).Add(w(p, wireWlShift).Mul(w(p, wireWrShift)))

	nonNativeGate1 := limbSubproduct.Sub(w(p, wireWo).Add(w(p, wireW4))).Mul(w(p, wireQo))

	nonNativeGate3 := limbSubproduct.Add(w(p, wireW4)).
		Sub(w(p, wireWoShift).Add(w(p, wireW4Shift))).
		Mul(w(p, wireQm))

	nonNativeFieldIdentity := nonNativeGate1.Add(nonNativeGate2).Add(nonNativeGate3).Mul(w(p, wireQr))

	limbAcc1 := w(p, wireWrShift).Mul(shift).Add(w(p, wireWlShift))
	limbAcc1 = limbAcc1.Mul(shift).Add(w(p, wireWo))
	limbAcc1 = limbAcc1.Mul(shift).Add(w(p, wireWr))
	limbAcc1 = limbAcc1.Mul(shift).Add(w(p, wireWl))
	limbAcc1 = limbAcc1.Sub(w(p, wireW4)).Mul(w(p, wireQ4))

	limbAcc2 := w(p, wireWoShift).Mul(shift).Add(w(p, wireWrShift))
	limbAcc2 = limbAcc2.Mul(shift).Add(w(p, wireWlShift))
	limbAcc2 = limbAcc2.Mul(shift).Add(w(p, wireW4))
	limbAcc2 = limbAcc2.Mul(shift).Add(w(p, wireWo))
	limbAcc2 = limbAcc2.Sub(w(p, wireW4Shift)).Mul(w(p, wireQm))

	limbAccumulatorIdentity := limbAcc1.Add(limbAcc2).Mul(w(p, wireQo))

	memoryRecordCheck := w(p, wireWo).Mul(rp.EtaThree).
		Add(w(p, wireWr).Mul(rp.EtaTwo)).
		Add(w(p, wireWl).Mul(rp.Eta)).
		Add(w(p, wireQc))
	partialRecordCheck := memoryRecordCheck
	memoryRecordCheck = memoryRecordCheck.Sub(w(p, wireW4))

	indexDelta := w(p, wireWlShift).Sub(w(p, wireWl))
	recordDelta := w(p, wireW4Shift).Sub(w(p, wireW4))

	indexIsMonotonic := indexDelta.Mul(indexDelta).Sub(indexDelta)
	adjacentMatchIfAdjacentIdx := frOne().Sub(indexDelta).Mul(recordDelta)

	evals[13] = adjacentMatchIfAdjacentIdx.Mul(w(p, wireQl)).Mul(w(p, wireQr)).Mul(w(p, wireQAux)).Mul(domainSep)
	evals[14] = indexIsMonotonic.Mul(w(p, wireQl)).Mul(w(p, wireQr)).Mul(w(p, wireQAux)).Mul(domainSep)

	accessType := w(p, wireW4).Sub(partialRecordCheck)
	accessCheck := accessType.Mul(accessType).Sub(accessType)

	nextGateAccessType := w(p, wireWoShift).Mul(rp.EtaThree).
		Add(w(p, wireWrShift).Mul(rp.EtaTwo)).
		Add(w(p, wireWlShift).Mul(rp.Eta))
	nextGateAccessType = w(p, wireW4Shift).Sub(nextGateAccessType)

	valueDelta := w(p, wireWoShift).Sub(w(p, wireWo))
	adjacentMatchAndNextRead := frOne().Sub(indexDelta).Mul(valueDelta).Mul(frOne().Sub(nextGateAccessType))

	evals[15] = adjacentMatchAndNextRead.Mul(w(p, wireQArith)).Mul(w(p, wireQAux)).Mul(domainSep)
	evals[16] = indexIsMonotonic.Mul(w(p, wireQArith)).Mul(w(p, wireQAux)).Mul(domainSep)
	evals[17] = nextGateAccessType.Mul(nextGateAccessType).Sub(nextGateAccessType).
		Mul(w(p, wireQArith)).Mul(w(p, wireQAux)).Mul(domainSep)

	romConsistency := memoryRecordCheck.Mul(w(p, wireQl)).Mul(w(p, wireQr))
	ramTimestampCheck := frOne().Sub(indexDelta).Mul(w(p, wireWrShift).Sub(w(p, wireWr))).Sub(w(p, wireWo))
	ramConsistency := accessCheck.Mul(w(p, wireQArith))

	memoryIdentity := romConsistency.
		Add(ramTimestampCheck.Mul(w(p, wireQ4)).Mul(w(p, wireQl))).
		Add(memoryRecordCheck.Mul(w(p, wireQm)).Mul(w(p, wireQl))).
		Add(ramConsistency)

	auxiliaryIdentity := memoryIdentity.Add(nonNativeFieldIdentity).Add(limbAccumulatorIdentity)
	evals[12] = auxiliaryIdentity.Mul(w(p, wireQAux)).Mul(domainSep)
}

// accumulatePoseidonExternalRelation fills relations 18..21.
func accumulatePoseidonExternalRelation(p []Fr, evals *[numberOfSubrelations]Fr, domainSep Fr) {
	s1 := w(p, wireWl).Add(w(p, wireQl))
	s2 := w(p, wireWr).Add(w(p, wireQr))
	s3 := w(p, wireWo).Add(w(p, wireQo))
	s4 := w(p, wireW4).Add(w(p, wireQ4))

	u1 := s1.Pow(5)
	u2 := s2.Pow(5)
	u3 := s3.Pow(5)
	u4 := s4.Pow(5)

	t0 := u1.Add(u2)
	t1 := u3.Add(u4)
	t2 := u2.Add(u2).Add(t1)
	t3 := u4.Add(u4).Add(t0)

	v4 := t1.Add(t1).Add(t1).Add(t1).Add(t3)
	v2 := t0.Add(t0).Add(t0).Add(t0).Add(t2)
	v1 := t3.Add(v2)
	v3 := t2.Add(v4)

	q := w(p, wireQPoseidon2External)
	evals[18] = v1.Sub(w(p, wireWlShift)).Mul(q).Mul(domainSep)
	evals[19] = v2.Sub(w(p, wireWrShift)).Mul(q).Mul(domainSep)
	evals[20] = v3.Sub(w(p, wireWoShift)).Mul(q).Mul(domainSep)
	evals[21] = v4.Sub(w(p, wireW4Shift)).Mul(q).Mul(domainSep)
}

// accumulatePoseidonInternalRelation fills relations 22..25.
func accumulatePoseidonInternalRelation(p []Fr, evals *[numberOfSubrelations]Fr, domainSep Fr) {
	u1 := w(p, wireWl).Add(w(p, wireQl)).Pow(5)
	u2 := w(p, wireWr)
	u3 := w(p, wireWo)
	u4 := w(p, wireW4)
	q := w(p, wireQPoseidon2Internal)
	sum := u1.Add(u2).Add(u3).Add(u4)

	r1 := u1.Mul(internalMatrixDiagonal[0]).Add(sum)
	r2 := u2.Mul(internalMatrixDiagonal[1]).Add(sum)
	r3 := u3.Mul(internalMatrixDiagonal[2]).Add(sum)
	r4 := u4.Mul(internalMatrixDiagonal[3]).Add(sum)

	evals[22] = r1.Sub(w(p, wireWlShift)).Mul(q).Mul(domainSep)
	evals[23] = r2.Sub(w(p, wireWrShift)).Mul(q).Mul(domainSep)
	evals[24] = r3.Sub(w(p, wireWoShift)).Mul(q).Mul(domainSep)
	evals[25] = r4.Sub(w(p, wireW4Shift)).Mul(q).Mul(domainSep)
}

// scaleAndBatchSubrelations combines the 26 relation evaluations with
// the 25 alpha challenges: acc = evals[0] + sum(evals[i] * alphas[i-1]).
func scaleAndBatchSubrelations(evaluations *[numberOfSubrelations]Fr, alphas *[numberOfAlphas]Fr) Fr {
	accumulator := evaluations[0]
	for i := 1; i < numberOfSubrelations; i++ {
		accumulator = accumulator.Add(evaluations[i].Mul(alphas[i-1]))
	}
	return accumulator
}

// accumulateRelationEvaluations evaluates all 26 sub-relations on the
// 40 purported Sum-Check evaluations and batches them with the alpha
// challenges, scaled by pow_partial_eval.
func accumulateRelationEvaluations(purported [numberOfEntities]Fr, rp *RelationParameters, alphas *[numberOfAlphas]Fr, powPartialEval Fr) Fr {
	var evaluations [numberOfSubrelations]Fr
	p := purported[:]

	accumulateArithmeticRelation(p, &evaluations, powPartialEval)
	accumulatePermutationRelation(p, rp, &evaluations, powPartialEval)
	accumulateLogDerivativeLookupRelation(p, rp, &evaluations, powPartialEval)
	accumulateDeltaRangeRelation(p, &evaluations, powPartialEval)
	accumulateEllipticRelation(p, &evaluations, powPartialEval)
	accumulateAuxiliaryRelation(p, rp, &evaluations, powPartialEval)
	accumulatePoseidonExternalRelation(p, &evaluations, powPartialEval)
	accumulatePoseidonInternalRelation(p, &evaluations, powPartialEval)

	return scaleAndBatchSubrelations(&evaluations, alphas)
}
