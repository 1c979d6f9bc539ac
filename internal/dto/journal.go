package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisakata/kakeibo/internal/core/domain"
)

// DateLayout is the wire format for journal and candidate dates.
const DateLayout = "2006-01-02"

// CreateEntryRequest is one entry line of a journal creation request.
// Amounts are whole yen; missing fields default to zero.
type CreateEntryRequest struct {
	AccountID    string          `json:"accountID" binding:"required"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// CreateJournalRequest is the payload for a manual journal.
type CreateJournalRequest struct {
	Date        string               `json:"date" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Entries     []CreateEntryRequest `json:"entries" binding:"required,min=2"`
}

// ListJournalsParams holds pagination parameters for listing journals.
type ListJournalsParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// EntryResponse is the API representation of a journal entry.
type EntryResponse struct {
	EntryID      string          `json:"entryID"`
	AccountID    string          `json:"accountID"`
	DebitAmount  decimal.Decimal `json:"debitAmount"`
	CreditAmount decimal.Decimal `json:"creditAmount"`
}

// JournalResponse is the API representation of a journal with its entries.
type JournalResponse struct {
	JournalID      string          `json:"journalID"`
	Date           string          `json:"date"`
	Description    string          `json:"description"`
	SourceType     string          `json:"sourceType"`
	SourceImageRef string          `json:"sourceImageRef,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	Entries        []EntryResponse `json:"entries,omitempty"`
}

// ToJournalResponse converts a domain.Journal (with entries) to its API representation.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	entries := make([]EntryResponse, len(j.Entries))
	for i, e := range j.Entries {
		entries[i] = EntryResponse{
			EntryID:      e.EntryID,
			AccountID:    e.AccountID,
			DebitAmount:  e.DebitAmount,
			CreditAmount: e.CreditAmount,
		}
	}
	return JournalResponse{
		JournalID:      j.JournalID,
		Date:           j.JournalDate.Format(DateLayout),
		Description:    j.Description,
		SourceType:     string(j.SourceType),
		SourceImageRef: j.SourceImageRef,
		CreatedAt:      j.CreatedAt,
		Entries:        entries,
	}
}

// ToJournalResponses converts a slice of journals.
func ToJournalResponses(journals []domain.Journal) []JournalResponse {
	responses := make([]JournalResponse, len(journals))
	for i := range journals {
		responses[i] = ToJournalResponse(&journals[i])
	}
	return responses
}
