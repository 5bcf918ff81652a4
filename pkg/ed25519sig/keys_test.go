package ed25519sig

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"testing"
)

const (
	testSeedHex      = "8052030376d47112be7f73ed7a019293dd12ad910b654455798b4667d73de166"
	testPublicKeyHex = "2d6f7455d97b4a3a10d7293909d1a4f2058cb9a370e43fa8154bb280db839083"
	testSignatureHex = "10a442b4a80cc4225b154f43bef28d2472ca80221951262eb8e0df9091575e2687cc486e77263c3418c757522d54f84b0359236abbbd4acd20dc297fdca66808"
)

func TestNewKeyPairFromSeed_Vector(t *testing.T) {
	kp := NewKeyPairFromSeed(mustSeed(testSeedHex))

	want := mustPublicKey(testPublicKeyHex)
	if kp.Public() != want {
		t.Errorf("Public() = %x, want %x", kp.Public(), want)
	}
	if kp.Seed() != mustSeed(testSeedHex) {
		t.Errorf("Seed() = %x, want %s", kp.Seed(), testSeedHex)
	}
}

func TestNewKeyPairFromSeed_Layout(t *testing.T) {
	seed := mustSeed(testSeedHex)
	kp := NewKeyPairFromSeed(seed)

	if !bytes.Equal(kp[:SeedSize], seed[:]) {
		t.Error("first 32 bytes of key pair should be the seed")
	}
	pub := kp.Public()
	if !bytes.Equal(kp[SeedSize:], pub[:]) {
		t.Error("last 32 bytes of key pair should be the public key")
	}
}

func TestNewKeyPairFromSeed_MatchesCryptoEd25519(t *testing.T) {
	for i := 0; i < 16; i++ {
		var seed Seed
		if _, err := rand.Read(seed[:]); err != nil {
			t.Fatalf("Failed to read random seed: %v", err)
		}

		kp := NewKeyPairFromSeed(seed)
		ref := ed25519.NewKeyFromSeed(seed[:])
		pub := kp.Public()
		if !bytes.Equal(pub[:], ref.Public().(ed25519.PublicKey)) {
			t.Fatalf("seed %x: public key %x does not match crypto/ed25519", seed, pub)
		}
	}
}

func TestGenerateKeyPair(t *testing.T) {
	kp1, err := GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}
	kp2, err := GenerateKeyPair(nil)
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}
	if kp1 == kp2 {
		t.Error("two generated key pairs should not be equal")
	}

	// Derivation from the drawn seed must match NewKeyPairFromSeed.
	if kp1 != NewKeyPairFromSeed(kp1.Seed()) {
		t.Error("generated key pair is not self-consistent")
	}
}

func TestGenerateKeyPair_CustomReader(t *testing.T) {
	seed := mustSeed(testSeedHex)
	kp, err := GenerateKeyPair(bytes.NewReader(seed[:]))
	if err != nil {
		t.Fatalf("GenerateKeyPair failed: %v", err)
	}
	if kp != NewKeyPairFromSeed(seed) {
		t.Error("key pair should be derived from the reader's seed")
	}

	// A reader with too few bytes is an error, not a short seed.
	if _, err := GenerateKeyPair(bytes.NewReader(seed[:16])); err == nil {
		t.Error("expected error for exhausted reader")
	}
}
