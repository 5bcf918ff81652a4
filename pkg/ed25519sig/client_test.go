package ed25519sig

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestClient_VerifyBatchFile(t *testing.T) {
	client := NewClient()

	elements, err := client.VerifyBatchFile(filepath.Join(testdataDir(), "test_batch_signatures.json"))
	if err != nil {
		t.Fatalf("VerifyBatchFile failed: %v", err)
	}
	if len(elements) != 4 {
		t.Errorf("Expected 4 elements, got %d", len(elements))
	}
}

func TestClient_WithParser_CSV(t *testing.T) {
	client := NewClient().WithParser(&CSVParser{})

	elements, err := client.VerifyBatchFile(filepath.Join(testdataDir(), "test_batch_signatures.csv"))
	if err != nil {
		t.Fatalf("VerifyBatchFile failed: %v", err)
	}
	if len(elements) != 4 {
		t.Errorf("Expected 4 elements, got %d", len(elements))
	}
}

func TestClient_WithRand(t *testing.T) {
	client := NewClient().WithRand(&patternReader{})
	if _, err := client.VerifyBatchFile(filepath.Join(testdataDir(), "test_batch_signatures.json")); err != nil {
		t.Fatalf("VerifyBatchFile with custom rand failed: %v", err)
	}
}

func TestClient_VerifyBatchFile_CorruptSignature(t *testing.T) {
	fixture, err := os.ReadFile(filepath.Join(testdataDir(), "test_batch_signatures.json"))
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	// Swap one hex digit inside the first signature.
	corrupted := strings.Replace(string(fixture), "0d402efc", "0d412efc", 1)
	if corrupted == string(fixture) {
		t.Fatal("fixture corruption did not apply")
	}
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte(corrupted), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}

	elements, err := NewClient().VerifyBatchFile(path)
	if err == nil {
		t.Fatal("corrupted batch file should fail verification")
	}
	if len(elements) != 4 {
		t.Errorf("failed verification should still return the parsed elements, got %d", len(elements))
	}
}

func TestClient_VerifyBatchFile_ParseError(t *testing.T) {
	elements, err := NewClient().VerifyBatchFile(filepath.Join(testdataDir(), "nonexistent.json"))
	if err == nil {
		t.Fatal("Expected error for nonexistent file")
	}
	if elements != nil {
		t.Error("parse failure should not return elements")
	}
	if errors.Is(err, ErrInvalidSignature) {
		t.Error("parse failure should not look like a signature failure")
	}
}
