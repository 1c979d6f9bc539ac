package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
	Equity    AccountType = "equity"
	Revenue   AccountType = "revenue"
	Expense   AccountType = "expense"
)

// AccountTypes lists every valid account type. NormalSide is total over this set.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// Account represents one account in the owner's chart of accounts.
// Code is unique per owner; deletion is rejected while journal entries reference it.
type Account struct {
	AccountID string      `json:"accountID"`
	OwnerID   string      `json:"ownerID"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	SortOrder int         `json:"sortOrder"`
	AuditFields
}

// CodeOtherExpense is the designated catch-all expense account. The
// categorizer falls back to it when the suggestion collaborator fails.
const CodeOtherExpense = "5099"

// DefaultAccount is one row of the seeded chart of accounts.
type DefaultAccount struct {
	Code      string
	Name      string
	Type      AccountType
	SortOrder int
}

// DefaultAccounts is the chart of accounts seeded for every new owner at
// registration. Codes follow the conventional 1xxx=asset .. 5xxx=expense scheme.
var DefaultAccounts = []DefaultAccount{
	{Code: "1001", Name: "現金", Type: Asset, SortOrder: 1},
	{Code: "1002", Name: "普通預金", Type: Asset, SortOrder: 2},
	{Code: "1003", Name: "有価証券", Type: Asset, SortOrder: 3},
	{Code: "1004", Name: "電子マネー", Type: Asset, SortOrder: 4},
	{Code: "2001", Name: "クレジットカード", Type: Liability, SortOrder: 10},
	{Code: "2002", Name: "ローン", Type: Liability, SortOrder: 11},
	{Code: "3001", Name: "元入金", Type: Equity, SortOrder: 20},
	{Code: "4001", Name: "給与収入", Type: Revenue, SortOrder: 30},
	{Code: "4002", Name: "副業収入", Type: Revenue, SortOrder: 31},
	{Code: "4003", Name: "利息・配当", Type: Revenue, SortOrder: 32},
	{Code: "4009", Name: "その他収入", Type: Revenue, SortOrder: 39},
	{Code: "5001", Name: "食費", Type: Expense, SortOrder: 50},
	{Code: "5002", Name: "日用品費", Type: Expense, SortOrder: 51},
	{Code: "5003", Name: "交通費", Type: Expense, SortOrder: 52},
	{Code: "5004", Name: "通信費", Type: Expense, SortOrder: 53},
	{Code: "5005", Name: "水道光熱費", Type: Expense, SortOrder: 54},
	{Code: "5006", Name: "娯楽費", Type: Expense, SortOrder: 55},
	{Code: "5007", Name: "医療費", Type: Expense, SortOrder: 56},
	{Code: "5008", Name: "被服費", Type: Expense, SortOrder: 57},
	{Code: "5009", Name: "交際費", Type: Expense, SortOrder: 58},
	{Code: "5010", Name: "教育費", Type: Expense, SortOrder: 59},
	{Code: "5011", Name: "保険料", Type: Expense, SortOrder: 60},
	{Code: "5012", Name: "住居費", Type: Expense, SortOrder: 61},
	{Code: "5013", Name: "税金", Type: Expense, SortOrder: 62},
	{Code: CodeOtherExpense, Name: "その他費用", Type: Expense, SortOrder: 99},
}
