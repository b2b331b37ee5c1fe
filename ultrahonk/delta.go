// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

// publicInputsOffsetHardcoded is the effective public-input offset used
// when computing the permutation delta. The VK header carries its own
// pub_inputs_offset field, but per the reference prover the verifier
// always uses 1 regardless of that field's value.
const publicInputsOffsetHardcoded = 1

// computeDelta computes public_inputs_delta, the product term that
// accounts for the public inputs (and the pairing-point object that
// rides alongside them) inside the grand-product permutation
// argument. xs is the concatenation of public inputs followed by the
// proof's 16 pairing-point scalars, in that order.
func computeDelta(xs []Fr, circuitSize uint64, beta, gamma Fr) (Fr, error) {
	n := FrFromUint64(circuitSize)
	offset := uint64(publicInputsOffsetHardcoded)

	numerator := frOne()
	denominator := frOne()

	for i, x := range xs {
		idx := FrFromUint64(uint64(i))

		betaNum := beta.Mul(n.Add(FrFromUint64(offset)).Add(idx))
		numTerm := gamma.Add(betaNum).Add(x)
		numerator = numerator.Mul(numTerm)

		betaDen := beta.Mul(FrFromUint64(offset + 1).Add(idx)).Neg()
		denTerm := gamma.Sub(betaDen).Add(x)
		denominator = denominator.Mul(denTerm)
	}

	denInv, ok := denominator.Inverse()
	if !ok {
		return Fr{}, ErrVerificationFailed
	}
	return numerator.Mul(denInv), nil
}
