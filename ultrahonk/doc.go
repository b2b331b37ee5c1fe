// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ultrahonk verifies UltraHonk zero-knowledge proofs over the
// BN254 curve.
//
// It consumes a preprocessed verification key, a serialized proof, and
// the public inputs the proof commits to, and accepts or rejects without
// any interaction with the prover. The verifier is pure and synchronous:
// Verify performs one top-down pass (parse, Fiat-Shamir transcript,
// public-input delta, Sum-Check, Shplemini) and returns a single error
// value, nil on acceptance.
//
// Elliptic-curve and hashing operations are reached through the Bn254Ops
// and HashOps capability interfaces so the same core logic can run
// against a pure Go backend (gnark-crypto, the default) or against a
// host-provided precompile.
package ultrahonk
