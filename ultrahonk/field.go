// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ultrahonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Fr is an element of the BN254 scalar field. It is always the canonical
// representative in [0, p_r); every constructor reduces mod p_r.
type Fr struct {
	e fr.Element
}

// FrFromBytes interprets b as a 32-byte big-endian integer and reduces it
// mod p_r.
func FrFromBytes(b [32]byte) Fr {
	var f Fr
	f.e.SetBytes(b[:])
	return f
}

// FrFromUint64 builds an Fr from a small non-negative integer.
func FrFromUint64(v uint64) Fr {
	var f Fr
	f.e.SetUint64(v)
	return f
}

// frFromHex parses a big-endian hex string (with or without "0x") as an
// Fr, reducing mod p_r. Used only for the package's literal constants.
func frFromHex(hexStr string) Fr {
	if len(hexStr) < 2 || hexStr[0] != '0' || (hexStr[1] != 'x' && hexStr[1] != 'X') {
		hexStr = "0x" + hexStr
	}
	var f Fr
	f.e.SetString(hexStr)
	return f
}

// Bytes returns the canonical 32-byte big-endian encoding.
func (a Fr) Bytes() [32]byte {
	return a.e.Bytes()
}

// IsZero reports whether a is the additive identity.
func (a Fr) IsZero() bool {
	return a.e.IsZero()
}

// Add returns a + b.
func (a Fr) Add(b Fr) Fr {
	var r Fr
	r.e.Add(&a.e, &b.e)
	return r
}

// Sub returns a - b.
func (a Fr) Sub(b Fr) Fr {
	var r Fr
	r.e.Sub(&a.e, &b.e)
	return r
}

// Mul returns a * b.
func (a Fr) Mul(b Fr) Fr {
	var r Fr
	r.e.Mul(&a.e, &b.e)
	return r
}

// Neg returns -a.
func (a Fr) Neg() Fr {
	var r Fr
	r.e.Neg(&a.e)
	return r
}

// Inverse returns a^-1. Ok is false when a is zero, in which case the
// returned value is the zero element.
func (a Fr) Inverse() (Fr, bool) {
	if a.e.IsZero() {
		return Fr{}, false
	}
	var r Fr
	r.e.Inverse(&a.e)
	return r, true
}

// Pow returns a^exp for a small non-negative exponent.
func (a Fr) Pow(exp uint64) Fr {
	var r Fr
	r.e.Exp(a.e, new(big.Int).SetUint64(exp))
	return r
}

// Equal reports whether a and b encode the same field element.
func (a Fr) Equal(b Fr) bool {
	return a.e.Equal(&b.e)
}

func frZero() Fr { return Fr{} }

func frOne() Fr {
	var f Fr
	f.e.SetOne()
	return f
}
