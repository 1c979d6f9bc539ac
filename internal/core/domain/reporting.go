package domain

import "github.com/shopspring/decimal"

// TrialBalanceRow is the per-account aggregation of all journal entries.
// Balance is signed relative to the account's normal side.
type TrialBalanceRow struct {
	Account     Account         `json:"account"`
	DebitTotal  decimal.Decimal `json:"debitTotal"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	Balance     decimal.Decimal `json:"balance"`
}

// TrialBalance aggregates the whole ledger. IsBalanced must hold whenever the
// Balance Law held at commit time; a false value signals a data integrity
// violation, not a normal outcome.
type TrialBalance struct {
	Rows             []TrialBalanceRow `json:"rows"`
	GrandDebitTotal  decimal.Decimal   `json:"grandDebitTotal"`
	GrandCreditTotal decimal.Decimal   `json:"grandCreditTotal"`
	IsBalanced       bool              `json:"isBalanced"`
}
