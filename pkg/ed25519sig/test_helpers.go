package ed25519sig

import (
	"encoding/hex"
	"path/filepath"
	"runtime"
)

// testdataDir returns the path to the testdata directory (works regardless
// of test cwd).
func testdataDir() string {
	_, f, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(f), "testdata")
}

// mustSeed decodes a 32-byte hex seed, panicking on malformed test data.
func mustSeed(s string) Seed {
	var seed Seed
	mustHexInto(seed[:], s)
	return seed
}

// mustPublicKey decodes a 32-byte hex public key.
func mustPublicKey(s string) PublicKey {
	var pub PublicKey
	mustHexInto(pub[:], s)
	return pub
}

// mustSignature decodes a 64-byte hex signature.
func mustSignature(s string) Signature {
	var sig Signature
	mustHexInto(sig[:], s)
	return sig
}

func mustHexInto(dst []byte, s string) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		panic("bad test hex: " + err.Error())
	}
	if len(raw) != len(dst) {
		panic("bad test hex length")
	}
	copy(dst, raw)
}

// loadBatchFixture loads batch elements from the testdata directory.
func loadBatchFixture(filename string) ([]BatchElement, error) {
	var parser BatchParser = &JSONParser{}
	if filepath.Ext(filename) == ".csv" {
		parser = &CSVParser{}
	}
	return parser.ParseBatch(filepath.Join(testdataDir(), filename))
}
