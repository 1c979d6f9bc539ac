package dto

import (
	"github.com/shopspring/decimal"

	"github.com/hisakata/kakeibo/internal/core/domain"
	"github.com/hisakata/kakeibo/internal/utils/accounting"
)

// TrialBalanceRowResponse is one aggregated account row. BalanceDisplay is
// the signed balance formatted as yen for direct rendering.
type TrialBalanceRowResponse struct {
	Account        AccountResponse `json:"account"`
	DebitTotal     decimal.Decimal `json:"debitTotal"`
	CreditTotal    decimal.Decimal `json:"creditTotal"`
	Balance        decimal.Decimal `json:"balance"`
	BalanceDisplay string          `json:"balanceDisplay"`
}

// TrialBalanceResponse is the full trial balance report.
type TrialBalanceResponse struct {
	Rows             []TrialBalanceRowResponse `json:"rows"`
	GrandDebitTotal  decimal.Decimal           `json:"grandDebitTotal"`
	GrandCreditTotal decimal.Decimal           `json:"grandCreditTotal"`
	IsBalanced       bool                      `json:"isBalanced"`
}

// ToTrialBalanceResponse converts the domain report to its API representation.
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(tb.Rows))
	for i, row := range tb.Rows {
		account := row.Account
		rows[i] = TrialBalanceRowResponse{
			Account:        ToAccountResponse(&account),
			DebitTotal:     row.DebitTotal,
			CreditTotal:    row.CreditTotal,
			Balance:        row.Balance,
			BalanceDisplay: accounting.FormatCurrency(row.Balance),
		}
	}
	return TrialBalanceResponse{
		Rows:             rows,
		GrandDebitTotal:  tb.GrandDebitTotal,
		GrandCreditTotal: tb.GrandCreditTotal,
		IsBalanced:       tb.IsBalanced,
	}
}
