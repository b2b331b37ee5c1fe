// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

// barycentricLagrangeDenominators are the 8 Lagrange denominators for
// the evaluation domain {0,...,7}, D(i) = product_{j != i} (i - j).
var barycentricLagrangeDenominators = [8]Fr{
	frFromHex("0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593efffec51"),
	frFromHex("0x2d0"),
	frFromHex("0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593efffff11"),
	frFromHex("0x90"),
	frFromHex("0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593efffff71"),
	frFromHex("0xf0"),
	frFromHex("0x30644e72e131a029b85045b68181585d2833e84879b9709143e1f593effffd31"),
	frFromHex("0x13b0"),
}

// checkSum verifies that a round's univariate, evaluated at 0 and 1,
// sums to the running target.
func checkSum(roundUnivar *[batchedRelationPartialLen]Fr, target Fr) bool {
	sum := roundUnivar[0].Add(roundUnivar[1])
	return sum.Equal(target)
}

// computeNextTarget evaluates the round univariate at challenge via
// barycentric interpolation over the 8-point domain {0,...,7}.
func computeNextTarget(roundUnivar *[batchedRelationPartialLen]Fr, challenge Fr) (Fr, error) {
	numerator := frOne()
	for i := uint64(0); i < 8; i++ {
		numerator = numerator.Mul(challenge.Sub(FrFromUint64(i)))
	}

	accumulator := frZero()
	for i := uint64(0); i < 8; i++ {
		denom := barycentricLagrangeDenominators[i].Mul(challenge.Sub(FrFromUint64(i)))
		inv, ok := denom.Inverse()
		if !ok {
			return Fr{}, ErrVerificationFailed
		}
		accumulator = accumulator.Add(roundUnivar[i].Mul(inv))
	}
	return numerator.Mul(accumulator), nil
}

// updatePowPartial folds one round's gate challenge into the running
// pow_partial_eval accumulator.
func updatePowPartial(eval, gateChallenge, challenge Fr) Fr {
	term := frOne().Add(challenge.Mul(gateChallenge.Sub(frOne())))
	return eval.Mul(term)
}

// VerifySumcheck replays every round of the Sum-Check protocol and
// checks that the batched relation evaluations match the final target.
func VerifySumcheck(proof *Proof, t *Transcript, logCircuitSize uint64) error {
	target := frZero()
	powPartial := frOne()

	for round := uint64(0); round < logCircuitSize; round++ {
		univar := &proof.SumcheckUnivariates[round]
		if !checkSum(univar, target) {
			return errSumcheckFailed
		}
		challenge := t.SumcheckUChallenges[round]
		next, err := computeNextTarget(univar, challenge)
		if err != nil {
			return err
		}
		target = next
		powPartial = updatePowPartial(powPartial, t.GateChallenges[round], challenge)
	}

	grand := accumulateRelationEvaluations(proof.SumcheckEvaluations, &t.RelParams, &t.Alphas, powPartial)
	if !grand.Equal(target) {
		return errSumcheckFailed
	}
	return nil
}
