package ed25519sig

import (
	"crypto/rand"
	"fmt"
	"io"

	"filippo.io/edwards25519"
)

// BatchElement is one (signature, message, public key) tuple of a batch.
// The message is borrowed: it must stay alive and unmodified until the
// batch call returns.
type BatchElement struct {
	Sig     Signature
	Message []byte
	Pub     PublicKey
}

// BatchVerifier accumulates signatures and verifies them in one combined
// group operation. The result is all-or-nothing: a failure does not say
// which element was at fault, and callers needing localization must fall
// back to per-element Verify.
//
// A BatchVerifier is not safe for concurrent use; build one per batch.
type BatchVerifier struct {
	elements []BatchElement
	random   io.Reader
}

// NewBatchVerifier creates an empty batch verifier drawing its blinding
// scalars from crypto/rand.
func NewBatchVerifier() *BatchVerifier {
	return &BatchVerifier{random: rand.Reader}
}

// WithRand sets a custom source for the random blinding scalars. The source
// must be cryptographically secure: predictable blinding factors void the
// soundness of the batch check.
func (v *BatchVerifier) WithRand(random io.Reader) *BatchVerifier {
	v.random = random
	return v
}

// Add queues one element for verification.
func (v *BatchVerifier) Add(el BatchElement) {
	v.elements = append(v.elements, el)
}

// Len returns the number of queued elements.
func (v *BatchVerifier) Len() int {
	return len(v.elements)
}

// Verify checks every queued element in one multi-scalar combination.
//
// Each element is validated exactly like the input-validation phase of
// Verify, and the first structural failure aborts the batch with that
// element's error. Once all elements are structurally sound, the combined
// cofactored equation
//
//	[8](sum(z_i*R_i) + sum(z_i*hram_i*A_i) - [sum(z_i*s_i)]B) == identity
//
// decides, with fresh random 128-bit blinding scalars z_i per call. A
// forged element escapes detection with probability at most 2^-128.
func (v *BatchVerifier) Verify() error {
	n := len(v.elements)
	if n == 0 {
		return nil
	}

	// One slice for all scalars and one for all points, laid out for
	// VarTimeMultiScalarMult:
	//
	//	scalars: -sum(z_i*s_i),  z_0..z_n-1,  z_0*hram_0..z_n-1*hram_n-1
	//	points:        B,        R_0..R_n-1,  A_0..A_n-1
	svals := make([]edwards25519.Scalar, 1+2*n)
	scalars := make([]*edwards25519.Scalar, 1+2*n)
	for i := range scalars {
		scalars[i] = &svals[i]
	}
	bCoeff := scalars[0]
	rCoeffs := scalars[1 : 1+n]
	aCoeffs := scalars[1+n:]

	pvals := make([]edwards25519.Point, 1+2*n)
	points := make([]*edwards25519.Point, 1+2*n)
	for i := range points {
		points[i] = &pvals[i]
	}
	points[0].Set(edwards25519.NewGeneratorPoint())
	rs := points[1 : 1+n]
	as := points[1+n:]

	var zBuf [32]byte
	for i, el := range v.elements {
		s, err := edwards25519.NewScalar().SetCanonicalBytes(el.Sig[32:])
		if err != nil {
			return fmt.Errorf("%w: scalar s", ErrNonCanonical)
		}
		A, err := decodePublicKey(el.Pub)
		if err != nil {
			return err
		}
		as[i].Set(A)
		if _, err := rs[i].SetBytes(el.Sig[:32]); err != nil {
			return fmt.Errorf("%w: r: %w", ErrInvalidEncoding, err)
		}

		// z_i is 128 bits, upper half zero, freshly drawn per call.
		if _, err := io.ReadFull(v.random, zBuf[:16]); err != nil {
			return fmt.Errorf("failed to read blinding scalar: %w", err)
		}
		if _, err := rCoeffs[i].SetCanonicalBytes(zBuf[:]); err != nil {
			panic("ed25519sig: internal error: " + err.Error())
		}

		hram := computeHram(el.Sig[:32], el.Pub, el.Message)
		aCoeffs[i].Multiply(rCoeffs[i], hram)
		bCoeff.MultiplyAdd(rCoeffs[i], s, bCoeff)
	}
	// The base-point term is subtracted in the combined equation.
	bCoeff.Negate(bCoeff)

	sum := new(edwards25519.Point).VarTimeMultiScalarMult(scalars, points)
	sum.MultByCofactor(sum)
	if sum.Equal(edwards25519.NewIdentityPoint()) != 1 {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyBatch verifies elements in one combined operation using crypto/rand
// for the blinding scalars. See BatchVerifier.Verify for the exact policy.
func VerifyBatch(elements []BatchElement) error {
	v := NewBatchVerifier()
	v.elements = elements
	return v.Verify()
}
