package domain

import "github.com/shopspring/decimal"

// ScanState tracks a scan session through the ingestion pipeline. Review is
// purely client-side state; abandoning a session before commit has no side effects.
type ScanState string

const (
	ScanIdle          ScanState = "idle"
	ScanUploading     ScanState = "uploading"
	ScanExtracting    ScanState = "extracting"
	ScanCategorizing  ScanState = "categorizing"
	ScanReviewPending ScanState = "review_pending"
	ScanCommitting    ScanState = "committing"
	ScanDone          ScanState = "done"
	ScanFailed        ScanState = "failed"
)

// ScannedCandidate is one transaction staged for human review. It is not
// persisted until confirmed; on commit it becomes a two-entry journal.
type ScannedCandidate struct {
	Date            string          `json:"date"` // YYYY-MM-DD
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	Included        bool            `json:"included"`
}

// ScanResult is the outcome of one extraction+categorization pass, handed to
// the review step.
type ScanResult struct {
	SourceType SourceType         `json:"sourceType"`
	State      ScanState          `json:"state"`
	StoreName  string             `json:"storeName,omitempty"`
	Candidates []ScannedCandidate `json:"candidates"`
}

// CommittedItem records one candidate that was persisted as a journal.
type CommittedItem struct {
	Index     int    `json:"index"`
	JournalID string `json:"journalID"`
}

// FailedItem records the candidate at which a bulk commit stopped.
type FailedItem struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// CommitResult distinguishes committed from pending work after a bulk commit.
// Commits are sequential and journals already persisted are never rolled back;
// Pending holds the indices of included candidates that were not attempted so
// the caller can retry only those.
type CommitResult struct {
	Committed []CommittedItem `json:"committed"`
	Failed    *FailedItem     `json:"failed,omitempty"`
	Pending   []int           `json:"pending,omitempty"`
}
