package domain

// CategoryRule maps a description keyword to a debit account. Unique per
// (owner, keyword); the most recent write wins.
type CategoryRule struct {
	RuleID    string `json:"ruleID"`
	OwnerID   string `json:"ownerID"`
	Keyword   string `json:"keyword"`
	AccountID string `json:"accountID"`
	AuditFields
}
