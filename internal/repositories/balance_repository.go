package repositories

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
)

// BalanceInput is one (account_code, opening_balance) tuple of a batch save.
type BalanceInput struct {
	AccountCode    string          `json:"account_code"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// YearBalances is the per-year read projection: every account mapped to
// its opening balance, plus whether the year is the first tracked one.
type YearBalances struct {
	Balances      map[string]decimal.Decimal `json:"balances"`
	IsInitialYear bool                       `json:"is_initial_year"`
}

type BalanceRepository interface {
	GetForYear(ctx context.Context, year int) (*YearBalances, error)
	UpsertOpening(ctx context.Context, tx *sql.Tx, year int, balance BalanceInput) error
}

type balanceRepository struct {
	db *sql.DB
}

func NewBalanceRepository(db *sql.DB) BalanceRepository {
	return &balanceRepository{db: db}
}

func (r *balanceRepository) GetForYear(ctx context.Context, year int) (*YearBalances, error) {
	// Minimum fiscal year among rows carrying any activity; the requested
	// year stands in when nothing is tracked yet.
	var minYear int
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(MIN(fiscal_year), ?)
		FROM account_balances
		WHERE opening_balance <> 0 OR period_debit <> 0 OR period_credit <> 0
	`, year).Scan(&minYear)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT c.account_code, COALESCE(b.opening_balance, 0)
		FROM chart_of_accounts c
		LEFT JOIN account_balances b
		  ON b.account_code = c.account_code AND b.fiscal_year = ?
		ORDER BY c.account_code
	`
	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := &YearBalances{
		Balances:      make(map[string]decimal.Decimal),
		IsInitialYear: year <= minYear,
	}
	for rows.Next() {
		var code string
		var opening decimal.Decimal
		if err := rows.Scan(&code, &opening); err != nil {
			return nil, err
		}
		result.Balances[code] = opening
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *balanceRepository) UpsertOpening(ctx context.Context, tx *sql.Tx, year int, balance BalanceInput) error {
	query := `
		INSERT INTO account_balances (account_code, fiscal_year, opening_balance)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE opening_balance = VALUES(opening_balance)
	`
	_, err := tx.ExecContext(ctx, query, balance.AccountCode, year, balance.OpeningBalance)
	return err
}
