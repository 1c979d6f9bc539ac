package domain

// User is the owner of a ledger. Each ledger is single-owner; the user id is
// passed explicitly into every core operation.
type User struct {
	UserID       string `json:"userID"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	AuditFields
}
