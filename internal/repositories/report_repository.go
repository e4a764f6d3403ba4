package repositories

import (
	"context"
	"database/sql"

	"accounting-service/internal/models"
)

type ReportRepository interface {
	CallProcedure(ctx context.Context, tx *sql.Tx, procedure string, year int) error
	ReadAccountSummary(ctx context.Context) ([]*models.AccountSummaryRow, error)
	ReadStatement(ctx context.Context, table string) ([]*models.StatementRow, error)
	ReadTrialBalance(ctx context.Context) ([]*models.TrialBalanceRow, error)
}

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

// CallProcedure runs the year-scoped stored procedure that repopulates
// its report table. Any result sets the procedure returns are drained
// and discarded; only the table side effect matters.
func (r *reportRepository) CallProcedure(ctx context.Context, tx *sql.Tx, procedure string, year int) error {
	rows, err := tx.QueryContext(ctx, "CALL "+procedure+"(?)", year)
	if err != nil {
		return err
	}
	defer rows.Close()

	for {
		for rows.Next() {
		}
		if err := rows.Err(); err != nil {
			return err
		}
		if !rows.NextResultSet() {
			break
		}
	}
	return rows.Err()
}

func (r *reportRepository) ReadAccountSummary(ctx context.Context) ([]*models.AccountSummaryRow, error) {
	query := `
		SELECT line_index, account_code, account_name,
		       opening_balance, period_debit, period_credit, closing_balance
		FROM report_account_summary
		ORDER BY line_index
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.AccountSummaryRow
	for rows.Next() {
		row := &models.AccountSummaryRow{}
		err := rows.Scan(
			&row.LineIndex,
			&row.AccountCode,
			&row.AccountName,
			&row.OpeningBalance,
			&row.PeriodDebit,
			&row.PeriodCredit,
			&row.ClosingBalance,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReadStatement reads one of the item/amount report tables
// (balance sheet, income statement, cash-flow statement).
func (r *reportRepository) ReadStatement(ctx context.Context, table string) ([]*models.StatementRow, error) {
	query := `
		SELECT line_index, item_name, COALESCE(amount, 0)
		FROM ` + table + `
		ORDER BY line_index
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.StatementRow
	for rows.Next() {
		row := &models.StatementRow{}
		if err := rows.Scan(&row.LineIndex, &row.ItemName, &row.Amount); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *reportRepository) ReadTrialBalance(ctx context.Context) ([]*models.TrialBalanceRow, error) {
	query := `
		SELECT line_index, account_code, account_name, debit_total, credit_total
		FROM report_trial_balance
		ORDER BY line_index
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.TrialBalanceRow
	for rows.Next() {
		row := &models.TrialBalanceRow{}
		err := rows.Scan(
			&row.LineIndex,
			&row.AccountCode,
			&row.AccountName,
			&row.DebitTotal,
			&row.CreditTotal,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
