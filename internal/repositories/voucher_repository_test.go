package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accounting-service/internal/apperrors"
	"accounting-service/internal/models"
)

func newMockVoucherRepository(t *testing.T) (VoucherRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewVoucherRepository(db), mock, db
}

func TestVoucherRepository_List(t *testing.T) {
	t.Run("synthesizes reference and carries debit total", func(t *testing.T) {
		repo, mock, db := newMockVoucherRepository(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "voucher_date", "voucher_type", "voucher_number", "summary", "total_amount"}).
			AddRow(2, "2024-01-08", "记", 2, "报销差旅费", "350.00").
			AddRow(1, "2024-01-05", "记", 1, "采购", "1200.00")

		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY v.voucher_date DESC, v.voucher_number DESC")).
			WillReturnRows(rows)

		vouchers, err := repo.List(context.Background())

		assert.NoError(t, err)
		require.Len(t, vouchers, 2)
		assert.Equal(t, "记-0002", vouchers[0].VoucherRef)
		assert.Equal(t, "记-0001", vouchers[1].VoucherRef)
		assert.True(t, vouchers[1].TotalAmount.Equal(decimal.RequireFromString("1200.00")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVoucherRepository_GetHeader(t *testing.T) {
	t.Run("returns not found for missing voucher", func(t *testing.T) {
		repo, mock, db := newMockVoucherRepository(t)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM vouchers")).
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		header, err := repo.GetHeader(context.Background(), 42)

		assert.Nil(t, header)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVoucherRepository_GetEntries(t *testing.T) {
	t.Run("joins account name onto each entry", func(t *testing.T) {
		repo, mock, db := newMockVoucherRepository(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "voucher_id", "account_code", "account_name", "summary", "debit_amount", "credit_amount"}).
			AddRow(1, 7, "1405", "库存商品", "采购", "1000.00", "0").
			AddRow(2, 7, "1001", "库存现金", "采购", "0", "1000.00")

		mock.ExpectQuery(regexp.QuoteMeta("JOIN chart_of_accounts c ON c.account_code = e.account_code")).
			WithArgs(int64(7)).
			WillReturnRows(rows)

		entries, err := repo.GetEntries(context.Background(), 7)

		assert.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "库存商品", entries[0].AccountName)
		assert.True(t, entries[1].CreditAmount.Equal(decimal.NewFromInt(1000)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVoucherRepository_NextNumber(t *testing.T) {
	t.Run("returns 1 when no vouchers exist for the month", func(t *testing.T) {
		repo, mock, db := newMockVoucherRepository(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"next"}).AddRow(1)
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE(MAX(voucher_number), 0) + 1")).
			WithArgs("记", "2024-03-15").
			WillReturnRows(rows)

		next, err := repo.NextNumber(context.Background(), "2024-03-15", "记")

		assert.NoError(t, err)
		assert.Equal(t, 1, next)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns max plus one", func(t *testing.T) {
		repo, mock, db := newMockVoucherRepository(t)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"next"}).AddRow(4)
		mock.ExpectQuery(regexp.QuoteMeta("COALESCE(MAX(voucher_number), 0) + 1")).
			WithArgs("记", "2024-03-20").
			WillReturnRows(rows)

		next, err := repo.NextNumber(context.Background(), "2024-03-20", "记")

		assert.NoError(t, err)
		assert.Equal(t, 4, next)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVoucherRepository_InsertHeader(t *testing.T) {
	t.Run("captures the generated id", func(t *testing.T) {
		repo, mock, db := newMockVoucherRepository(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vouchers")).
			WithArgs("2024-01-05", "记", 1, "采购").
			WillReturnResult(sqlmock.NewResult(17, 1))

		tx, err := db.Begin()
		require.NoError(t, err)

		voucher := &models.Voucher{
			VoucherDate:   "2024-01-05",
			VoucherType:   "记",
			VoucherNumber: 1,
			Summary:       "采购",
		}
		err = repo.InsertHeader(context.Background(), tx, voucher)

		assert.NoError(t, err)
		assert.Equal(t, int64(17), voucher.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVoucherRepository_Delete(t *testing.T) {
	t.Run("returns not found when zero rows matched", func(t *testing.T) {
		repo, mock, db := newMockVoucherRepository(t)
		defer db.Close()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM vouchers WHERE id = ?")).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
