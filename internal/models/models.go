package models

import (
	"github.com/shopspring/decimal"
)

// Balance direction constants for chart-of-accounts rows. The values are
// the short codes the original schema stores ("debit" / "credit").
const (
	DirectionDebit  = "debit"
	DirectionCredit = "credit"
)

// Account represents one row of the chart of accounts. IsLeaf is never
// stored; it is derived from the parent_code hierarchy at query time.
type Account struct {
	Code             string  `db:"account_code" json:"account_code"`
	Name             string  `db:"account_name" json:"account_name"`
	BalanceDirection string  `db:"balance_direction" json:"balance_direction"`
	ParentCode       *string `db:"parent_code" json:"parent_code,omitempty"`
	IsLeaf           bool    `db:"is_leaf" json:"is_leaf"`
}

// AccountRef is the minimal picker projection used by entry forms.
type AccountRef struct {
	Code string `db:"account_code" json:"account_code"`
	Name string `db:"account_name" json:"account_name"`
}

// AccountBalance is keyed by (account_code, fiscal_year).
type AccountBalance struct {
	AccountCode    string          `db:"account_code" json:"account_code"`
	FiscalYear     int             `db:"fiscal_year" json:"fiscal_year"`
	OpeningBalance decimal.Decimal `db:"opening_balance" json:"opening_balance"`
	PeriodDebit    decimal.Decimal `db:"period_debit" json:"period_debit"`
	PeriodCredit   decimal.Decimal `db:"period_credit" json:"period_credit"`
	ClosingBalance decimal.Decimal `db:"closing_balance" json:"closing_balance"`
}

// Voucher is a journal-entry header. VoucherRef and TotalAmount are
// synthesized by the list query, never stored.
type Voucher struct {
	ID            int64           `db:"id" json:"id"`
	VoucherDate   string          `db:"voucher_date" json:"voucher_date"`
	VoucherType   string          `db:"voucher_type" json:"voucher_type"`
	VoucherNumber int             `db:"voucher_number" json:"voucher_number"`
	Summary       string          `db:"summary" json:"summary"`
	VoucherRef    string          `db:"-" json:"voucher_ref,omitempty"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount"`
}

// JournalEntry is one debit-or-credit line belonging to a voucher.
// AccountName is populated only by the details join.
type JournalEntry struct {
	ID           int64           `db:"id" json:"id"`
	VoucherID    int64           `db:"voucher_id" json:"voucher_id"`
	AccountCode  string          `db:"account_code" json:"account_code"`
	AccountName  string          `db:"account_name" json:"account_name,omitempty"`
	Summary      string          `db:"summary" json:"summary"`
	DebitAmount  decimal.Decimal `db:"debit_amount" json:"debit_amount"`
	CreditAmount decimal.Decimal `db:"credit_amount" json:"credit_amount"`
}

// AccountSummaryRow is one line of the generated account summary table.
type AccountSummaryRow struct {
	LineIndex      int             `db:"line_index" json:"line_index"`
	AccountCode    string          `db:"account_code" json:"account_code"`
	AccountName    string          `db:"account_name" json:"account_name"`
	OpeningBalance decimal.Decimal `db:"opening_balance" json:"opening_balance"`
	PeriodDebit    decimal.Decimal `db:"period_debit" json:"period_debit"`
	PeriodCredit   decimal.Decimal `db:"period_credit" json:"period_credit"`
	ClosingBalance decimal.Decimal `db:"closing_balance" json:"closing_balance"`
}

// StatementRow is one display line of the balance sheet, income
// statement or cash-flow statement tables.
type StatementRow struct {
	LineIndex int             `db:"line_index" json:"line_index"`
	ItemName  string          `db:"item_name" json:"item_name"`
	Amount    decimal.Decimal `db:"amount" json:"amount"`
}

// TrialBalanceRow is one line of the generated trial balance table.
type TrialBalanceRow struct {
	LineIndex   int             `db:"line_index" json:"line_index"`
	AccountCode string          `db:"account_code" json:"account_code"`
	AccountName string          `db:"account_name" json:"account_name"`
	DebitTotal  decimal.Decimal `db:"debit_total" json:"debit_total"`
	CreditTotal decimal.Decimal `db:"credit_total" json:"credit_total"`
}
