// Package accounting holds the pure ledger arithmetic: balance validation,
// normal-side resolution, signed balance computation and currency formatting.
// Nothing here touches persistence or the network.
package accounting

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/hisakata/kakeibo/internal/core/domain"
)

// Side is the debit/credit direction of an entry or an account's normal balance.
type Side string

const (
	DebitSide  Side = "debit"
	CreditSide Side = "credit"
)

// BalanceCheck is the result of validating one journal's entries.
type BalanceCheck struct {
	IsBalanced  bool
	DebitTotal  decimal.Decimal
	CreditTotal decimal.Decimal
	Difference  decimal.Decimal
}

// ValidateBalanced sums debit and credit amounts independently and checks the
// Balance Law: totals equal AND strictly positive. An empty or all-zero entry
// set is not balanced, which guards against no-op journals.
func ValidateBalanced(entries []domain.JournalEntry) BalanceCheck {
	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	for _, e := range entries {
		debitTotal = debitTotal.Add(e.DebitAmount)
		creditTotal = creditTotal.Add(e.CreditAmount)
	}
	return BalanceCheck{
		IsBalanced:  debitTotal.Equal(creditTotal) && debitTotal.GreaterThan(decimal.Zero),
		DebitTotal:  debitTotal,
		CreditTotal: creditTotal,
		Difference:  debitTotal.Sub(creditTotal),
	}
}

// NormalSide returns the side on which an account type naturally accumulates
// value: assets and expenses on the debit side, everything else on credit.
// Total over the five account types.
func NormalSide(accountType domain.AccountType) Side {
	if accountType == domain.Asset || accountType == domain.Expense {
		return DebitSide
	}
	return CreditSide
}

// SignedBalance computes an account's balance signed relative to its normal
// side: positive when the account is in its normal state, negative otherwise
// (e.g. an overdrawn asset).
func SignedBalance(accountType domain.AccountType, debitTotal, creditTotal decimal.Decimal) decimal.Decimal {
	if NormalSide(accountType) == DebitSide {
		return debitTotal.Sub(creditTotal)
	}
	return creditTotal.Sub(debitTotal)
}

// FormatCurrency renders an amount as whole yen, e.g. "¥1,200". Fractions are
// truncated deterministically; JPY carries no subunits.
func FormatCurrency(amount decimal.Decimal) string {
	return money.New(amount.Truncate(0).IntPart(), money.JPY).Display()
}
