package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SourceType records how a journal entered the ledger.
type SourceType string

const (
	SourceManual         SourceType = "manual"
	SourceReceiptOCR     SourceType = "receipt_ocr"
	SourceCardScreenshot SourceType = "card_screenshot"
)

// Journal represents a single, balanced financial event composed of multiple entries.
// It is created atomically together with its entries and never partially persisted.
type Journal struct {
	JournalID      string     `json:"journalID"`
	OwnerID        string     `json:"ownerID"`
	JournalDate    time.Time  `json:"journalDate"`
	Description    string     `json:"description"`
	SourceType     SourceType `json:"sourceType"`
	SourceImageRef string     `json:"sourceImageRef,omitempty"`
	AuditFields
	Entries []JournalEntry `json:"entries,omitempty"`
}

// JournalEntry is one account-amount line within a journal. Amounts are whole
// yen; exactly one of debit/credit is conventionally nonzero, but only the
// aggregate balance is enforced.
type JournalEntry struct {
	EntryID      string          `json:"entryID"`
	JournalID    string          `json:"journalID"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}
