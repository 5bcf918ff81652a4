package ed25519sig

import "errors"

// ErrNonCanonical is returned when a scalar or point encoding is not in its
// unique canonical form. Raised during input validation, before any
// cryptographic comparison.
var ErrNonCanonical = errors.New("ed25519sig: non-canonical encoding")

// ErrIdentityElement is returned when a public key decodes to the identity
// element or to another small-order point. Such keys are structurally weak:
// a signature under one of them can be valid for more than one message.
var ErrIdentityElement = errors.New("ed25519sig: weak public key")

// ErrInvalidEncoding is returned when a 32-byte string does not decode to a
// point on the curve at all.
var ErrInvalidEncoding = errors.New("ed25519sig: invalid point encoding")

// ErrInvalidSignature is returned when all structural checks passed but the
// signature equation does not hold. This is the normal "does not verify"
// outcome, for both single and batch verification.
var ErrInvalidSignature = errors.New("ed25519sig: signature verification failed")
