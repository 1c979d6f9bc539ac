package dto

import (
	"time"

	"github.com/hisakata/kakeibo/internal/core/domain"
)

// CreateAccountRequest is the payload for creating one account.
type CreateAccountRequest struct {
	Code      string `json:"code" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type" binding:"required,accounttype"`
	SortOrder int    `json:"sortOrder"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID string    `json:"accountID"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its API representation.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: a.AccountID,
		Code:      a.Code,
		Name:      a.Name,
		Type:      string(a.Type),
		SortOrder: a.SortOrder,
		CreatedAt: a.CreatedAt,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}
