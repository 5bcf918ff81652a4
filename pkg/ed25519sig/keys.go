package ed25519sig

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"filippo.io/edwards25519"
)

// Fixed byte lengths for every value the scheme exchanges. All types are
// fixed-width arrays so length invariants hold by construction.
const (
	SeedSize      = 32
	PublicKeySize = 32
	KeyPairSize   = SeedSize + PublicKeySize
	SignatureSize = 64
	NoiseSize     = 32
)

// Seed is the caller-supplied entropy a key pair is derived from.
type Seed [SeedSize]byte

// PublicKey is a compressed Edwards25519 group element encoding
// (y coordinate with the sign of x in the top bit of the last byte).
type PublicKey [PublicKeySize]byte

// KeyPair is seed (32 bytes) followed by the derived public key (32 bytes).
// The public key half always equals the clamped base-point multiple of the
// first half of SHA-512(seed).
type KeyPair [KeyPairSize]byte

// Signature is R (32 bytes, compressed point) followed by S (32 bytes,
// little-endian scalar).
type Signature [SignatureSize]byte

// NewKeyPairFromSeed derives a key pair from a seed.
//
// The seed is hashed with SHA-512; the first 32 bytes of the digest are
// clamped and multiplied against the base point to produce the public key.
func NewKeyPairFromSeed(seed Seed) KeyPair {
	az := sha512.Sum512(seed[:])
	x, err := edwards25519.NewScalar().SetBytesWithClamping(az[:32])
	if err != nil {
		// SetBytesWithClamping only fails on a wrong-length input.
		panic("ed25519sig: internal error: " + err.Error())
	}
	A := new(edwards25519.Point).ScalarBaseMult(x)

	var kp KeyPair
	copy(kp[:SeedSize], seed[:])
	copy(kp[SeedSize:], A.Bytes())
	return kp
}

// GenerateKeyPair creates a key pair from a fresh random seed.
// If random is nil, crypto/rand.Reader is used.
func GenerateKeyPair(random io.Reader) (KeyPair, error) {
	if random == nil {
		random = rand.Reader
	}
	var seed Seed
	if _, err := io.ReadFull(random, seed[:]); err != nil {
		return KeyPair{}, fmt.Errorf("failed to read seed: %w", err)
	}
	return NewKeyPairFromSeed(seed), nil
}

// Seed returns the seed half of the key pair.
func (kp KeyPair) Seed() Seed {
	var seed Seed
	copy(seed[:], kp[:SeedSize])
	return seed
}

// Public returns the public-key half of the key pair.
func (kp KeyPair) Public() PublicKey {
	var pub PublicKey
	copy(pub[:], kp[SeedSize:])
	return pub
}
