// Package ed25519sig implements the Ed25519 signature scheme (EdDSA over
// the Edwards25519 group): key derivation from a 32-byte seed, deterministic
// or noise-hedged signing, single-signature verification, and randomized
// batch verification.
//
// The scheme follows RFC 8032 with cofactored verification: the final
// equality is checked after multiplying by the curve cofactor, so signatures
// whose R component carries a small-order contribution are accepted, while
// small-order public keys are always rejected.
//
// Signature equation: s = r + H(R||A||M) * x mod l
// Where: r is the nonce, x is the clamped secret scalar, A is the public
// key, M is the message, and l is the group order.
//
// Basic Usage:
//
//	kp := ed25519sig.NewKeyPairFromSeed(seed)
//	sig := ed25519sig.Sign(message, kp)
//	err := ed25519sig.Verify(sig, message, kp.Public())
//
// Batch verification (all-or-nothing, ~2x faster than one-by-one):
//
//	v := ed25519sig.NewBatchVerifier()
//	v.Add(ed25519sig.BatchElement{Sig: sig, Message: message, Pub: pub})
//	err := v.Verify()
//
// All operations are pure functions over their inputs and are safe for
// concurrent use without locking. Every non-nil error from Verify or a
// batch verifier means "do not trust this signature"; the distinct error
// values exist for diagnostics only.
package ed25519sig
