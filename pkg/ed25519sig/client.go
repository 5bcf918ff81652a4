package ed25519sig

import (
	"fmt"
	"io"
)

// Client provides a high-level API for file-based batch verification.
type Client struct {
	parser BatchParser
	random io.Reader
}

// NewClient creates a new client with default settings (JSON parsing,
// crypto/rand blinding scalars).
func NewClient() *Client {
	return &Client{
		parser: &JSONParser{},
	}
}

// WithParser sets a custom batch parser.
func (c *Client) WithParser(parser BatchParser) *Client {
	c.parser = parser
	return c
}

// WithRand sets a custom source for the batch verifier's blinding scalars.
func (c *Client) WithRand(random io.Reader) *Client {
	c.random = random
	return c
}

// VerifyBatchFile parses a batch file and verifies every signature in it in
// one combined operation.
//
// Args:
//   - source: Path to the batch file (JSON or CSV, per the parser).
//
// Returns:
//   - The parsed elements and nil when every signature verifies.
//   - The parsed elements and the batch error when verification fails.
//   - nil and an error when the file cannot be parsed.
func (c *Client) VerifyBatchFile(source string) ([]BatchElement, error) {
	elements, err := c.parser.ParseBatch(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse batch: %w", err)
	}

	v := NewBatchVerifier()
	if c.random != nil {
		v.WithRand(c.random)
	}
	for _, el := range elements {
		v.Add(el)
	}
	if err := v.Verify(); err != nil {
		return elements, err
	}
	return elements, nil
}
