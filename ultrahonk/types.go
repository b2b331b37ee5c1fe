// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

// Protocol-fixed sizes. These never vary with the circuit and are baked
// into both the proof byte layout and the transcript absorption order.
const (
	constProofSizeLogN         = 28
	numberOfSubrelations        = 26
	batchedRelationPartialLen  = 8
	numberOfEntities           = 40
	numberUnshifted            = 35
	pairingPointsSize          = 16
	numberOfAlphas             = numberOfSubrelations - 1

	vkHeaderWords = 4
	vkNumPoints   = 27
	vkBytesLen    = vkHeaderWords*8 + vkNumPoints*64 // 1760

	// ProofBytesLen is the exact serialized length of a proof: 456 32-byte words.
	ProofBytesLen = 456 * 32
)

// wire is an index into the 40-entry sumcheck_evaluations array. The
// first 35 slots are "unshifted" entities; the last 5 are their
// to-be-shifted counterparts.
type wire int

const (
	wireQm wire = iota
	wireQc
	wireQl
	wireQr
	wireQo
	wireQ4
	wireQLookup
	wireQArith
	wireQRange
	wireQElliptic
	wireQAux
	wireQPoseidon2External
	wireQPoseidon2Internal
	wireSigma1
	wireSigma2
	wireSigma3
	wireSigma4
	wireId1
	wireId2
	wireId3
	wireId4
	wireTable1
	wireTable2
	wireTable3
	wireTable4
	wireLagrangeFirst
	wireLagrangeLast
	wireWl
	wireWr
	wireWo
	wireW4
	wireZPerm
	wireLookupInverses
	wireLookupReadCounts
	wireLookupReadTags
	wireWlShift
	wireWrShift
	wireWoShift
	wireW4Shift
	wireZPermShift
)

// G1Point is an affine BN254 G1 point held as two 32-byte big-endian
// coordinates. The all-zero pair denotes the group identity.
type G1Point struct {
	X, Y [32]byte
}

func g1Identity() G1Point { return G1Point{} }

func (p G1Point) isIdentity() bool {
	return p.X == [32]byte{} && p.Y == [32]byte{}
}

// VerificationKey is fixed per circuit: the header plus the 27 commitments
// the 26 sub-relations and Shplemini reference.
type VerificationKey struct {
	CircuitSize       uint64
	LogCircuitSize    uint64
	PublicInputsSize  uint64
	PubInputsOffset   uint64

	Qm, Qc, Ql, Qr, Qo, Q4                     G1Point
	QLookup, QArith, QDeltaRange, QElliptic    G1Point
	QAux, QPoseidon2External, QPoseidon2Internal G1Point
	S1, S2, S3, S4                             G1Point
	Id1, Id2, Id3, Id4                         G1Point
	T1, T2, T3, T4                             G1Point
	LagrangeFirst, LagrangeLast                G1Point
}

// commitments returns the 27 VK commitments in the canonical wire order,
// as laid into Shplemini's unshifted-entity slots (indices 0..26 of that
// order).
func (vk *VerificationKey) commitments() [27]G1Point {
	return [27]G1Point{
		vk.Qm, vk.Qc, vk.Ql, vk.Qr, vk.Qo, vk.Q4,
		vk.QLookup, vk.QArith, vk.QDeltaRange, vk.QElliptic,
		vk.QAux, vk.QPoseidon2External, vk.QPoseidon2Internal,
		vk.S1, vk.S2, vk.S3, vk.S4,
		vk.Id1, vk.Id2, vk.Id3, vk.Id4,
		vk.T1, vk.T2, vk.T3, vk.T4,
		vk.LagrangeFirst, vk.LagrangeLast,
	}
}

// Proof is the prover's fixed-shape output: exactly ProofBytesLen bytes
// once serialized.
type Proof struct {
	PairingPointObject [pairingPointsSize]Fr

	W1, W2, W3, W4                     G1Point
	LookupReadCounts, LookupReadTags   G1Point
	LookupInverses, ZPerm              G1Point

	SumcheckUnivariates  [constProofSizeLogN][batchedRelationPartialLen]Fr
	SumcheckEvaluations  [numberOfEntities]Fr

	GeminiFoldComms      [constProofSizeLogN - 1]G1Point
	GeminiAEvaluations   [constProofSizeLogN]Fr

	ShplonkQ, KzgQuotient G1Point
}

// RelationParameters are the derived challenges consumed inside the 26
// gate identities.
type RelationParameters struct {
	Eta, EtaTwo, EtaThree Fr
	Beta, Gamma           Fr
	PublicInputsDelta     Fr
}

// Transcript holds every Fiat-Shamir output the verifier needs.
type Transcript struct {
	RelParams          RelationParameters
	Alphas             [numberOfAlphas]Fr
	GateChallenges     [constProofSizeLogN]Fr
	SumcheckUChallenges [constProofSizeLogN]Fr
	Rho                Fr
	GeminiR            Fr
	ShplonkNu          Fr
	ShplonkZ           Fr
}
