package services

import (
	"context"
	"database/sql"
	"fmt"

	"accounting-service/internal/repositories"
)

type BalanceService struct {
	db          *sql.DB
	balanceRepo repositories.BalanceRepository
}

func NewBalanceService(db *sql.DB, balanceRepo repositories.BalanceRepository) *BalanceService {
	return &BalanceService{
		db:          db,
		balanceRepo: balanceRepo,
	}
}

func (s *BalanceService) GetForYear(ctx context.Context, year int) (*repositories.YearBalances, error) {
	return s.balanceRepo.GetForYear(ctx, year)
}

// SaveForYear upserts a year's opening balances as one batch. A failure
// on any tuple rolls back every row already written.
func (s *BalanceService) SaveForYear(ctx context.Context, year int, balances []repositories.BalanceInput) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, balance := range balances {
		if err := s.balanceRepo.UpsertOpening(ctx, tx, year, balance); err != nil {
			return fmt.Errorf("failed to save balance for account %s: %v", balance.AccountCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}
