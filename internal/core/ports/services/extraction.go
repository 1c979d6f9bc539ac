package services

import "context"

// ReceiptItem is one line item extracted from a receipt image.
type ReceiptItem struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// ReceiptExtraction is the structured result of scanning one receipt.
// Fields have already been coerced from the model's loosely-typed response.
type ReceiptExtraction struct {
	StoreName string        `json:"store_name"`
	Date      string        `json:"date"` // YYYY-MM-DD
	Items     []ReceiptItem `json:"items"`
	Total     int64         `json:"total"`
}

// StatementItem is one transaction extracted from a card statement screenshot.
type StatementItem struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

// StatementExtraction is the structured result of scanning one statement image.
type StatementExtraction struct {
	Items []StatementItem `json:"items"`
}

// VisionExtractor is the vision-language extraction collaborator. All three
// operations are fallible and rate-limited; callers must treat responses as
// untrusted and absorb or surface failures per their own contracts.
type VisionExtractor interface {
	ExtractReceipt(ctx context.Context, image []byte, mimeType string) (*ReceiptExtraction, error)
	ExtractStatement(ctx context.Context, image []byte, mimeType string) (*StatementExtraction, error)
	// SuggestCategory returns a free-text category name, expected to echo one
	// of candidateNames.
	SuggestCategory(ctx context.Context, description string, candidateNames []string) (string, error)
}
