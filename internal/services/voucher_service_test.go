package services

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
	"accounting-service/internal/repositories"
)

func newVoucherService(t *testing.T) (*VoucherService, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewVoucherService(db, repositories.NewVoucherRepository(db)), mock, db
}

func balancedVoucherInput() VoucherInput {
	return VoucherInput{
		Header: &VoucherHeaderInput{
			Date:    "2024-01-05",
			Type:    "记",
			Number:  1,
			Summary: "采购",
		},
		Entries: []JournalEntryInput{
			{AccountCode: "1405", Summary: "采购", Debit: decimal.NewFromInt(1000)},
			{AccountCode: "1001", Summary: "采购", Credit: decimal.NewFromInt(1000)},
		},
	}
}

func TestVoucherService_Create(t *testing.T) {
	t.Run("commits header and entries in one transaction", func(t *testing.T) {
		service, mock, db := newVoucherService(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vouchers")).
			WithArgs("2024-01-05", "记", 1, "采购").
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO journal_entries")).
			WithArgs(int64(7), "1405", "采购", decimal.NewFromInt(1000), decimal.Zero).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO journal_entries")).
			WithArgs(int64(7), "1001", "采购", decimal.Zero, decimal.NewFromInt(1000)).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		id, err := service.Create(context.Background(), balancedVoucherInput())

		assert.NoError(t, err)
		assert.Equal(t, int64(7), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back everything when an entry insert fails", func(t *testing.T) {
		service, mock, db := newVoucherService(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO vouchers")).
			WithArgs("2024-01-05", "记", 1, "采购").
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO journal_entries")).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		id, err := service.Create(context.Background(), balancedVoucherInput())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert journal entry")
		assert.Zero(t, id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects a missing header without opening a transaction", func(t *testing.T) {
		service, mock, db := newVoucherService(t)
		defer db.Close()

		input := balancedVoucherInput()
		input.Header = nil

		_, err := service.Create(context.Background(), input)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an empty entry set", func(t *testing.T) {
		service, mock, db := newVoucherService(t)
		defer db.Close()

		input := balancedVoucherInput()
		input.Entries = nil

		_, err := service.Create(context.Background(), input)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unbalanced debits and credits", func(t *testing.T) {
		service, mock, db := newVoucherService(t)
		defer db.Close()

		input := balancedVoucherInput()
		input.Entries[1].Credit = decimal.NewFromInt(900)

		_, err := service.Create(context.Background(), input)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, err.Error(), "debits and credits must balance")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an entry without an account code", func(t *testing.T) {
		service, mock, db := newVoucherService(t)
		defer db.Close()

		input := balancedVoucherInput()
		input.Entries[0].AccountCode = ""

		_, err := service.Create(context.Background(), input)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVoucherService_NextNumber(t *testing.T) {
	t.Run("requires date and type", func(t *testing.T) {
		service, mock, db := newVoucherService(t)
		defer db.Close()

		_, err := service.NextNumber(context.Background(), "", "记")

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVoucherService_GetDetails(t *testing.T) {
	t.Run("returns header with its entries", func(t *testing.T) {
		service, mock, db := newVoucherService(t)
		defer db.Close()

		headerRows := sqlmock.NewRows([]string{"id", "voucher_date", "voucher_type", "voucher_number", "summary"}).
			AddRow(7, "2024-01-05", "记", 1, "采购")
		mock.ExpectQuery(regexp.QuoteMeta("FROM vouchers")).
			WithArgs(int64(7)).
			WillReturnRows(headerRows)

		entryRows := sqlmock.NewRows([]string{"id", "voucher_id", "account_code", "account_name", "summary", "debit_amount", "credit_amount"}).
			AddRow(1, 7, "1405", "库存商品", "采购", "1000.00", "0").
			AddRow(2, 7, "1001", "库存现金", "采购", "0", "1000.00")
		mock.ExpectQuery(regexp.QuoteMeta("FROM journal_entries e")).
			WithArgs(int64(7)).
			WillReturnRows(entryRows)

		details, err := service.GetDetails(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, "记-0001", details.Header.VoucherRef)
		require.Len(t, details.Entries, 2)
		assert.Equal(t, "库存现金", details.Entries[1].AccountName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
