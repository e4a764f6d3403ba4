package repositories

import (
	"context"
	"database/sql"
	"strings"

	"accounting-service/internal/apperrors"
	"accounting-service/internal/models"
)

// AccountUpdate carries the optional fields of a partial update. Only
// non-nil fields end up in the SET clause.
type AccountUpdate struct {
	Name             *string `json:"account_name"`
	BalanceDirection *string `json:"balance_direction"`
}

func (u AccountUpdate) IsEmpty() bool {
	return u.Name == nil && u.BalanceDirection == nil
}

type AccountRepository interface {
	ListAll(ctx context.Context) ([]*models.Account, error)
	ListLeaf(ctx context.Context) ([]*models.AccountRef, error)
	Get(ctx context.Context, code string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, code string, update AccountUpdate) error
	Delete(ctx context.Context, code string) error
}

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) ListAll(ctx context.Context) ([]*models.Account, error) {
	query := `
		SELECT c.account_code, c.account_name, c.balance_direction, c.parent_code,
		       NOT EXISTS (
		           SELECT 1 FROM chart_of_accounts p WHERE p.parent_code = c.account_code
		       ) AS is_leaf
		FROM chart_of_accounts c
		ORDER BY c.account_code
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.Account
	for rows.Next() {
		a := &models.Account{}
		if err := rows.Scan(&a.Code, &a.Name, &a.BalanceDirection, &a.ParentCode, &a.IsLeaf); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *accountRepository) ListLeaf(ctx context.Context) ([]*models.AccountRef, error) {
	query := `
		SELECT c.account_code, c.account_name
		FROM chart_of_accounts c
		WHERE NOT EXISTS (
		    SELECT 1 FROM chart_of_accounts p WHERE p.parent_code = c.account_code
		)
		ORDER BY c.account_code
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*models.AccountRef
	for rows.Next() {
		ref := &models.AccountRef{}
		if err := rows.Scan(&ref.Code, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *accountRepository) Get(ctx context.Context, code string) (*models.Account, error) {
	a := &models.Account{}
	query := `
		SELECT c.account_code, c.account_name, c.balance_direction, c.parent_code,
		       NOT EXISTS (
		           SELECT 1 FROM chart_of_accounts p WHERE p.parent_code = c.account_code
		       ) AS is_leaf
		FROM chart_of_accounts c
		WHERE c.account_code = ?
	`
	err := r.db.QueryRowContext(ctx, query, code).Scan(
		&a.Code,
		&a.Name,
		&a.BalanceDirection,
		&a.ParentCode,
		&a.IsLeaf,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFoundf("account %s not found", code)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO chart_of_accounts (account_code, account_name, balance_direction, parent_code)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		account.Code,
		account.Name,
		account.BalanceDirection,
		account.ParentCode,
	)
	return err
}

func (r *accountRepository) Update(ctx context.Context, code string, update AccountUpdate) error {
	if update.IsEmpty() {
		return apperrors.Validationf("no updatable fields provided")
	}

	var setClauses []string
	var args []interface{}
	if update.Name != nil {
		setClauses = append(setClauses, "account_name = ?")
		args = append(args, *update.Name)
	}
	if update.BalanceDirection != nil {
		setClauses = append(setClauses, "balance_direction = ?")
		args = append(args, *update.BalanceDirection)
	}
	args = append(args, code)

	query := "UPDATE chart_of_accounts SET " + strings.Join(setClauses, ", ") + " WHERE account_code = ?"
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperrors.NotFoundf("account %s not found", code)
	}
	return nil
}

func (r *accountRepository) Delete(ctx context.Context, code string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM chart_of_accounts WHERE account_code = ?", code)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperrors.NotFoundf("account %s not found", code)
	}
	return nil
}
