// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import "errors"

// Sentinel errors surfaced by the verifier. Every rejection a caller
// needs to distinguish collapses to one of these four.
var (
	// ErrVkParse is returned when verification-key bytes are malformed:
	// wrong length, a coordinate off-curve, or a non-identity point
	// outside the prime-order subgroup.
	ErrVkParse = errors.New("ultrahonk: malformed verification key")

	// ErrProofParse is returned when proof bytes are malformed: wrong
	// length, or a commitment point that fails the on-curve/subgroup
	// check once reassembled from its limbs.
	ErrProofParse = errors.New("ultrahonk: malformed proof")

	// ErrVerificationFailed is returned when the proof is well-formed
	// but the protocol rejects it: a Sum-Check round fails its linear
	// check, the final relation aggregate disagrees with the Sum-Check
	// target, or the Shplemini pairing check returns false.
	ErrVerificationFailed = errors.New("ultrahonk: verification failed")

	// ErrVkNotSet is returned by callers that verify against a
	// registered key when no key has been registered yet.
	ErrVkNotSet = errors.New("ultrahonk: verification key not set")

	// errPublicInputCount is folded into ErrVerificationFailed at the
	// facade boundary but kept distinct internally for logging.
	errPublicInputCount = errors.New("ultrahonk: public input count mismatch")

	// errSumcheckFailed and errShplonkFailed are the two protocol-level
	// failure causes, both folded into ErrVerificationFailed at Verify's
	// boundary; kept distinct so the facade can log which phase rejected.
	errSumcheckFailed = errors.New("ultrahonk: sumcheck target mismatch")
	errShplonkFailed  = errors.New("ultrahonk: shplemini pairing check failed")
)
