package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"accounting-service/internal/apperrors"
	"accounting-service/internal/models"
)

type VoucherRepository interface {
	List(ctx context.Context) ([]*models.Voucher, error)
	GetHeader(ctx context.Context, id int64) (*models.Voucher, error)
	GetEntries(ctx context.Context, id int64) ([]*models.JournalEntry, error)
	NextNumber(ctx context.Context, date, voucherType string) (int, error)
	InsertHeader(ctx context.Context, tx *sql.Tx, voucher *models.Voucher) error
	InsertEntry(ctx context.Context, tx *sql.Tx, entry *models.JournalEntry) error
	Delete(ctx context.Context, id int64) error
}

type voucherRepository struct {
	db *sql.DB
}

func NewVoucherRepository(db *sql.DB) VoucherRepository {
	return &voucherRepository{db: db}
}

func (r *voucherRepository) List(ctx context.Context) ([]*models.Voucher, error) {
	query := `
		SELECT v.id, v.voucher_date, v.voucher_type, v.voucher_number, v.summary,
		       (SELECT COALESCE(SUM(e.debit_amount), 0)
		        FROM journal_entries e
		        WHERE e.voucher_id = v.id) AS total_amount
		FROM vouchers v
		ORDER BY v.voucher_date DESC, v.voucher_number DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vouchers []*models.Voucher
	for rows.Next() {
		v := &models.Voucher{}
		err := rows.Scan(
			&v.ID,
			&v.VoucherDate,
			&v.VoucherType,
			&v.VoucherNumber,
			&v.Summary,
			&v.TotalAmount,
		)
		if err != nil {
			return nil, err
		}
		v.VoucherRef = fmt.Sprintf("%s-%04d", v.VoucherType, v.VoucherNumber)
		vouchers = append(vouchers, v)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return vouchers, nil
}

func (r *voucherRepository) GetHeader(ctx context.Context, id int64) (*models.Voucher, error) {
	v := &models.Voucher{}
	query := `
		SELECT id, voucher_date, voucher_type, voucher_number, summary
		FROM vouchers
		WHERE id = ?
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID,
		&v.VoucherDate,
		&v.VoucherType,
		&v.VoucherNumber,
		&v.Summary,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFoundf("voucher %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	v.VoucherRef = fmt.Sprintf("%s-%04d", v.VoucherType, v.VoucherNumber)
	return v, nil
}

func (r *voucherRepository) GetEntries(ctx context.Context, id int64) ([]*models.JournalEntry, error) {
	query := `
		SELECT e.id, e.voucher_id, e.account_code, c.account_name,
		       e.summary, e.debit_amount, e.credit_amount
		FROM journal_entries e
		JOIN chart_of_accounts c ON c.account_code = e.account_code
		WHERE e.voucher_id = ?
		ORDER BY e.id
	`
	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.JournalEntry
	for rows.Next() {
		e := &models.JournalEntry{}
		err := rows.Scan(
			&e.ID,
			&e.VoucherID,
			&e.AccountCode,
			&e.AccountName,
			&e.Summary,
			&e.DebitAmount,
			&e.CreditAmount,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// NextNumber suggests max(voucher_number)+1 within the same type and
// calendar month. Advisory only: the number is not reserved, concurrent
// callers can be handed the same suggestion.
func (r *voucherRepository) NextNumber(ctx context.Context, date, voucherType string) (int, error) {
	var next int
	query := `
		SELECT COALESCE(MAX(voucher_number), 0) + 1
		FROM vouchers
		WHERE voucher_type = ?
		  AND DATE_FORMAT(voucher_date, '%Y-%m') = DATE_FORMAT(?, '%Y-%m')
	`
	err := r.db.QueryRowContext(ctx, query, voucherType, date).Scan(&next)
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *voucherRepository) InsertHeader(ctx context.Context, tx *sql.Tx, voucher *models.Voucher) error {
	query := `
		INSERT INTO vouchers (voucher_date, voucher_type, voucher_number, summary)
		VALUES (?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		voucher.VoucherDate,
		voucher.VoucherType,
		voucher.VoucherNumber,
		voucher.Summary,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	voucher.ID = id
	return nil
}

func (r *voucherRepository) InsertEntry(ctx context.Context, tx *sql.Tx, entry *models.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (voucher_id, account_code, summary, debit_amount, credit_amount)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := tx.ExecContext(ctx, query,
		entry.VoucherID,
		entry.AccountCode,
		entry.Summary,
		entry.DebitAmount,
		entry.CreditAmount,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

// Delete removes the header only; journal entries go with it through the
// schema's ON DELETE CASCADE.
func (r *voucherRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM vouchers WHERE id = ?", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return apperrors.NotFoundf("voucher %d not found", id)
	}
	return nil
}
