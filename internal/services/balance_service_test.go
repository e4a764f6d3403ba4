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

	"accounting-service/internal/repositories"
)

func newBalanceService(t *testing.T) (*BalanceService, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewBalanceService(db, repositories.NewBalanceRepository(db)), mock, db
}

func TestBalanceService_SaveForYear(t *testing.T) {
	balances := []repositories.BalanceInput{
		{AccountCode: "1001", OpeningBalance: decimal.NewFromInt(5000)},
		{AccountCode: "2202", OpeningBalance: decimal.NewFromInt(-1200)},
	}

	t.Run("commits the whole batch", func(t *testing.T) {
		service, mock, db := newBalanceService(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO account_balances")).
			WithArgs("1001", 2024, decimal.NewFromInt(5000)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO account_balances")).
			WithArgs("2202", 2024, decimal.NewFromInt(-1200)).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		err := service.SaveForYear(context.Background(), 2024, balances)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back the batch on a mid-batch failure", func(t *testing.T) {
		service, mock, db := newBalanceService(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO account_balances")).
			WithArgs("1001", 2024, decimal.NewFromInt(5000)).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO account_balances")).
			WithArgs("2202", 2024, decimal.NewFromInt(-1200)).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := service.SaveForYear(context.Background(), 2024, balances)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save balance for account 2202")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("an empty batch commits trivially", func(t *testing.T) {
		service, mock, db := newBalanceService(t)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := service.SaveForYear(context.Background(), 2024, []repositories.BalanceInput{})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
