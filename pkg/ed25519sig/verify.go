package ed25519sig

import (
	"crypto/sha512"
	"fmt"

	"filippo.io/edwards25519"
)

// Verify checks that sig is a valid signature of message under pub.
//
// Verification is cofactored per RFC 8032: the equality
// [8](R - [s]B + [hram]A) == identity is what decides, so signatures whose
// R carries a small-order component are accepted. Input validation happens
// first and in a fixed order:
//
//   - S must be a canonical scalar (< group order), else ErrNonCanonical.
//   - pub must be a canonical point encoding, else ErrNonCanonical.
//   - pub must decode to a curve point (ErrInvalidEncoding otherwise) of
//     large order (ErrIdentityElement otherwise).
//   - R must decode to a curve point, else ErrInvalidEncoding.
//
// A nil return means the signature is valid; every non-nil return means it
// must not be trusted.
func Verify(sig Signature, message []byte, pub PublicKey) error {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(sig[32:])
	if err != nil {
		return fmt.Errorf("%w: scalar s", ErrNonCanonical)
	}

	A, err := decodePublicKey(pub)
	if err != nil {
		return err
	}
	negA := new(edwards25519.Point).Negate(A)

	// The R decoder deliberately accepts non-canonical encodings of valid
	// points (the reduced value is used); whether such a signature verifies
	// is decided by the equation below, against the exact bytes the signer
	// hashed.
	expectedR, err := new(edwards25519.Point).SetBytes(sig[:32])
	if err != nil {
		return fmt.Errorf("%w: r: %w", ErrInvalidEncoding, err)
	}

	hram := computeHram(sig[:32], pub, message)

	// SB_AH = [s]B + [hram](-A)
	sbAH := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(hram, negA, s)

	diff := new(edwards25519.Point).Subtract(expectedR, sbAH)
	diff.MultByCofactor(diff)
	if diff.Equal(edwards25519.NewIdentityPoint()) != 1 {
		return ErrInvalidSignature
	}
	return nil
}

// decodePublicKey validates and decodes a public key: canonical encoding,
// on the curve, large order.
func decodePublicKey(pub PublicKey) (*edwards25519.Point, error) {
	if !isCanonicalPoint(pub) {
		return nil, fmt.Errorf("%w: public key", ErrNonCanonical)
	}
	A, err := new(edwards25519.Point).SetBytes(pub[:])
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %w", ErrInvalidEncoding, err)
	}
	// A point has small order exactly when clearing the cofactor maps it to
	// the identity. This catches the identity encoding itself, the all-zero
	// key (order 4), and every other torsion point.
	if new(edwards25519.Point).MultByCofactor(A).Equal(edwards25519.NewIdentityPoint()) == 1 {
		return nil, fmt.Errorf("%w: small-order point", ErrIdentityElement)
	}
	return A, nil
}

// isCanonicalPoint reports whether the 32-byte point encoding is canonical:
// the y coordinate, with the x sign bit ignored, must be below the field
// prime. Succeed-fast check from "Taming the many EdDSAs".
func isCanonicalPoint(p [32]byte) bool {
	if p[0] < 237 {
		return true
	}
	for i := 1; i < 31; i++ {
		if p[i] != 255 {
			return true
		}
	}
	return (p[31] | 128) != 255
}

// computeHram derives the challenge scalar hram = reduce(SHA-512(R||A||M)).
// rBytes must be the signature's R exactly as received; a non-canonical
// encoding hashes differently from its reduced form.
func computeHram(rBytes []byte, pub PublicKey, message []byte) *edwards25519.Scalar {
	h := sha512.New()
	h.Write(rBytes)
	h.Write(pub[:])
	h.Write(message)
	digest := h.Sum(nil)
	hram, err := edwards25519.NewScalar().SetUniformBytes(digest)
	if err != nil {
		panic("ed25519sig: internal error: " + err.Error())
	}
	return hram
}
