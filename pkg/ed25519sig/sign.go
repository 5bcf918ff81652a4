package ed25519sig

import (
	"crypto/sha512"

	"filippo.io/edwards25519"
)

// Sign produces a deterministic RFC 8032 signature of message under kp.
// For a fixed key pair and message the output is byte-identical across
// calls.
func Sign(message []byte, kp KeyPair) Signature {
	return sign(message, kp, nil)
}

// SignWithNoise signs like Sign but mixes the given noise into the nonce
// derivation, making the signature non-deterministic. The noise hedges the
// deterministic scheme against fault attacks; it never appears in the
// output and does not replace the message-dependent entropy.
func SignWithNoise(message []byte, kp KeyPair, noise [NoiseSize]byte) Signature {
	return sign(message, kp, noise[:])
}

func sign(message []byte, kp KeyPair, noise []byte) Signature {
	seed := kp[:SeedSize]
	pub := kp[SeedSize:]

	// az[0:32] is the raw secret-scalar material, az[32:64] the
	// nonce-derivation key.
	az := sha512.Sum512(seed)

	nh := sha512.New()
	if noise != nil {
		nh.Write(noise)
	}
	nh.Write(az[32:])
	nh.Write(message)
	nonceDigest := nh.Sum(nil)
	nonce, err := edwards25519.NewScalar().SetUniformBytes(nonceDigest)
	if err != nil {
		panic("ed25519sig: internal error: " + err.Error())
	}

	R := new(edwards25519.Point).ScalarBaseMult(nonce)
	rBytes := R.Bytes()

	hh := sha512.New()
	hh.Write(rBytes)
	hh.Write(pub)
	hh.Write(message)
	hramDigest := hh.Sum(nil)
	hram, err := edwards25519.NewScalar().SetUniformBytes(hramDigest)
	if err != nil {
		panic("ed25519sig: internal error: " + err.Error())
	}

	x, err := edwards25519.NewScalar().SetBytesWithClamping(az[:32])
	if err != nil {
		panic("ed25519sig: internal error: " + err.Error())
	}

	// s = hram*x + nonce mod l
	s := edwards25519.NewScalar().MultiplyAdd(hram, x, nonce)

	var sig Signature
	copy(sig[:32], rBytes)
	copy(sig[32:], s.Bytes())
	return sig
}
