// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"github.com/luxfi/geth/crypto"
)

// HashOps abstracts the single hash primitive the transcript needs:
// Keccak-256 over an arbitrary byte buffer. Installed once per Verify
// call alongside Bn254Ops.
type HashOps interface {
	Hash(data []byte) [32]byte
}

// keccakHashOps is the default HashOps, backed by go-ethereum's Keccak
// implementation (via the teacher's geth fork).
type keccakHashOps struct{}

func newKeccakHashOps() keccakHashOps { return keccakHashOps{} }

func (keccakHashOps) Hash(data []byte) [32]byte {
	var out [32]byte
	copy(out[:], crypto.Keccak256(data))
	return out
}
