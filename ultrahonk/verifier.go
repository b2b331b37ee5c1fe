// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"fmt"

	log "github.com/luxfi/log"
)

// Verifier holds the capability handles and the optional logger for a
// sequence of Verify calls against a single circuit's VerificationKey.
// It carries no other state: each Verify is pure given its arguments.
type Verifier struct {
	VK     *VerificationKey
	Ec     Bn254Ops
	Hash   HashOps
	Logger log.Logger
}

// NewVerifier builds a Verifier for vk, installing the default pure-Go
// capabilities (gnark-crypto for curve ops, Keccak-256 for hashing) when
// ec or hops are nil. A nil logger is replaced by
// log.NewTestLogger(log.InfoLevel), which emits the warn-level rejection
// lines but not the debug lines.
func NewVerifier(vk *VerificationKey, ec Bn254Ops, hops HashOps, logger log.Logger) *Verifier {
	if ec == nil {
		ec = newGnarkBn254Ops()
	}
	if hops == nil {
		hops = newKeccakHashOps()
	}
	if logger == nil {
		logger = log.NewTestLogger(log.InfoLevel)
	}
	return &Verifier{VK: vk, Ec: ec, Hash: hops, Logger: logger}
}

// Verify checks proofBytes against v.VK and publicInputsBytes, following
// the fixed top-to-bottom sequence: parse, transcript, delta, Sum-Check,
// Shplemini. It returns nil on acceptance and one of the sentinel errors
// on rejection.
func (v *Verifier) Verify(proofBytes, publicInputsBytes []byte) error {
	if v.VK == nil {
		return ErrVkNotSet
	}
	if len(proofBytes) != ProofBytesLen {
		v.Logger.Warn(fmt.Sprintf("ultrahonk: reject at parse: proof length %d != %d", len(proofBytes), ProofBytesLen))
		return ErrProofParse
	}
	if len(publicInputsBytes)%32 != 0 {
		v.Logger.Warn("ultrahonk: reject at parse: public inputs not 32-byte aligned")
		return ErrVerificationFailed
	}

	pubInputs, err := ParsePublicInputs(publicInputsBytes)
	if err != nil {
		v.Logger.Warn("ultrahonk: reject at parse: malformed public inputs")
		return err
	}

	wantCount := v.VK.PublicInputsSize - pairingPointsSize
	if uint64(len(pubInputs)) != wantCount {
		v.Logger.Warn(fmt.Sprintf("ultrahonk: reject at parse: public input count %d != %d", len(pubInputs), wantCount))
		return fmt.Errorf("%w: %w", ErrVerificationFailed, errPublicInputCount)
	}

	proof, err := parseProof(proofBytes)
	if err != nil {
		v.Logger.Warn("ultrahonk: reject at parse: malformed proof")
		return err
	}

	v.Logger.Debug(fmt.Sprintf("ultrahonk: verify call: circuit_size=%d public_inputs=%d", v.VK.CircuitSize, len(pubInputs)))

	t := GenerateTranscript(v.Hash, proof, pubInputs, v.VK.CircuitSize, v.VK.PublicInputsSize, 1)

	xs := make([]Fr, 0, len(pubInputs)+pairingPointsSize)
	xs = append(xs, pubInputs...)
	xs = append(xs, proof.PairingPointObject[:]...)
	delta, err := computeDelta(xs, v.VK.CircuitSize, t.RelParams.Beta, t.RelParams.Gamma)
	if err != nil {
		v.Logger.Warn("ultrahonk: reject: zero denominator computing public-inputs delta")
		return err
	}
	t.RelParams.PublicInputsDelta = delta

	if err := VerifySumcheck(proof, &t, v.VK.LogCircuitSize); err != nil {
		v.Logger.Warn("ultrahonk: reject at sumcheck")
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	if err := VerifyShplemini(v.Ec, proof, v.VK, &t); err != nil {
		v.Logger.Warn("ultrahonk: reject at shplemini")
		return fmt.Errorf("%w: %w", ErrVerificationFailed, err)
	}

	v.Logger.Debug("ultrahonk: verify call: accepted")
	return nil
}

// Verify is a convenience entrypoint that parses vkBytes, installs the
// default capabilities and logger (see NewVerifier), and runs a single
// verification.
// Callers that verify many proofs against the same VK should build a
// Verifier once via NewVerifier instead.
func Verify(vkBytes, proofBytes, publicInputsBytes []byte) error {
	vk, err := ParseVerificationKey(vkBytes)
	if err != nil {
		return err
	}
	v := NewVerifier(vk, nil, nil, nil)
	return v.Verify(proofBytes, publicInputsBytes)
}
