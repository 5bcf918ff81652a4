package ed25519sig

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// BatchParser defines the interface for reading batch elements from various
// sources.
type BatchParser interface {
	// ParseBatch reads a source and returns the batch elements it contains.
	ParseBatch(source string) ([]BatchElement, error)
}

// JSONParser reads batch elements from JSON files.
type JSONParser struct {
	MessageField   string // Field name for message (default: "message")
	PublicKeyField string // Field name for public_key (default: "public_key")
	SignatureField string // Field name for signature (default: "signature")
}

// ParseBatch reads batch elements from a JSON file.
//
// Expected format:
//
//	[
//	  {"message": "hex_or_literal", "public_key": "hex_string", "signature": "hex_string"},
//	  ...
//	]
//
// public_key must decode to 32 bytes and signature to 64 bytes. The message
// is hex-decoded when it has a 0x prefix or looks like hex, and taken
// literally otherwise.
func (p *JSONParser) ParseBatch(jsonFile string) ([]BatchElement, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	var items []map[string]string
	if err := json.NewDecoder(file).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	messageField := p.MessageField
	if messageField == "" {
		messageField = "message"
	}
	publicKeyField := p.PublicKeyField
	if publicKeyField == "" {
		publicKeyField = "public_key"
	}
	signatureField := p.SignatureField
	if signatureField == "" {
		signatureField = "signature"
	}

	elements := make([]BatchElement, 0, len(items))
	for _, item := range items {
		msgVal, ok := item[messageField]
		if !ok {
			return nil, fmt.Errorf("missing %s field", messageField)
		}
		pubVal, ok := item[publicKeyField]
		if !ok {
			return nil, fmt.Errorf("missing %s field", publicKeyField)
		}
		sigVal, ok := item[signatureField]
		if !ok {
			return nil, fmt.Errorf("missing %s field", signatureField)
		}

		el, err := buildElement(msgVal, pubVal, sigVal)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}

	return elements, nil
}

// CSVParser reads batch elements from CSV files with a header row.
type CSVParser struct {
	MessageCol   string // Column name for message (default: "message")
	PublicKeyCol string // Column name for public_key (default: "public_key")
	SignatureCol string // Column name for signature (default: "signature")
}

// ParseBatch reads batch elements from a CSV file. The first row must be a
// header naming the message, public_key, and signature columns.
func (p *CSVParser) ParseBatch(csvFile string) ([]BatchElement, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	messageCol := p.MessageCol
	if messageCol == "" {
		messageCol = "message"
	}
	publicKeyCol := p.PublicKeyCol
	if publicKeyCol == "" {
		publicKeyCol = "public_key"
	}
	signatureCol := p.SignatureCol
	if signatureCol == "" {
		signatureCol = "signature"
	}

	messageIdx, publicKeyIdx, signatureIdx := -1, -1, -1
	for i, col := range header {
		switch strings.TrimSpace(strings.ToLower(col)) {
		case messageCol:
			messageIdx = i
		case publicKeyCol:
			publicKeyIdx = i
		case signatureCol:
			signatureIdx = i
		}
	}
	if messageIdx < 0 || publicKeyIdx < 0 || signatureIdx < 0 {
		return nil, fmt.Errorf("header must name %s, %s, and %s columns", messageCol, publicKeyCol, signatureCol)
	}

	var elements []BatchElement
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if messageIdx >= len(record) || publicKeyIdx >= len(record) || signatureIdx >= len(record) {
			return nil, fmt.Errorf("column index out of range")
		}

		el, err := buildElement(record[messageIdx], record[publicKeyIdx], record[signatureIdx])
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}

	return elements, nil
}

// buildElement assembles a BatchElement from string fields, enforcing the
// fixed wire widths.
func buildElement(msgVal, pubVal, sigVal string) (BatchElement, error) {
	var el BatchElement

	el.Message = parseMessage(msgVal)

	pubBytes, err := hexDecode(pubVal)
	if err != nil {
		return el, fmt.Errorf("failed to parse public_key: %w", err)
	}
	if len(pubBytes) != PublicKeySize {
		return el, fmt.Errorf("public_key must be %d bytes, got %d", PublicKeySize, len(pubBytes))
	}
	copy(el.Pub[:], pubBytes)

	sigBytes, err := hexDecode(sigVal)
	if err != nil {
		return el, fmt.Errorf("failed to parse signature: %w", err)
	}
	if len(sigBytes) != SignatureSize {
		return el, fmt.Errorf("signature must be %d bytes, got %d", SignatureSize, len(sigBytes))
	}
	copy(el.Sig[:], sigBytes)

	return el, nil
}

// parseMessage interprets a message field: hex when 0x-prefixed or when the
// string is long and decodes cleanly, literal bytes otherwise.
func parseMessage(v string) []byte {
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") || len(v) > 20 {
		if decoded, err := hexDecode(v); err == nil {
			return decoded
		}
	}
	return []byte(v)
}

func hexDecode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	return hex.DecodeString(s)
}
