package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hisakata/kakeibo/internal/core/domain"
)

// CandidatePayload is one reviewed transaction in a commit request. The
// review step may have edited any field relative to what the scan produced.
type CandidatePayload struct {
	Date            string          `json:"date" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	Included        bool            `json:"included"`
}

// CommitScanRequest confirms a reviewed scan session.
type CommitScanRequest struct {
	SourceType string             `json:"sourceType" binding:"required,oneof=receipt_ocr card_screenshot"`
	Candidates []CandidatePayload `json:"candidates" binding:"required,min=1"`
}

// ToDomainCandidates converts reviewed payloads into domain candidates.
func ToDomainCandidates(payloads []CandidatePayload) []domain.ScannedCandidate {
	candidates := make([]domain.ScannedCandidate, len(payloads))
	for i, p := range payloads {
		candidates[i] = domain.ScannedCandidate{
			Date:            p.Date,
			Description:     p.Description,
			Amount:          p.Amount,
			DebitAccountID:  p.DebitAccountID,
			CreditAccountID: p.CreditAccountID,
			Included:        p.Included,
		}
	}
	return candidates
}
