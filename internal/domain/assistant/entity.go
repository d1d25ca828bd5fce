package assistant

import "context"

// Extraction is the structured data an assistant reads off an identity or
// employment document. Any field may be empty.
type Extraction struct {
	Name       string `json:"name"`
	IDNumber   string `json:"idNumber"`
	ExpiryDate string `json:"expiryDate"`
	IBAN       string `json:"iban"`
	Role       string `json:"role"`
}

// Client is the external generative assistant. Calls may fail or time out;
// callers never depend on the result for ledger correctness.
type Client interface {
	Extract(ctx context.Context, image []byte, mimeType string) (Extraction, error)
	Advise(ctx context.Context, prompt string) (string, error)
}
