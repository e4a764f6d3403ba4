package services

import (
	"context"
	"database/sql"
	"fmt"

	"accounting-service/internal/models"
	"accounting-service/internal/repositories"
)

// Stored procedures and the report tables they repopulate. Their
// internal calculation logic lives in the database; this service only
// knows the name, the year argument and the output table.
const (
	procAccountSummary    = "proc_generate_account_summary"
	procBalanceSheet      = "proc_generate_balance_sheet"
	procIncomeStatement   = "proc_generate_income_statement"
	procCashFlowStatement = "proc_generate_cash_flow_statement"
	procTrialBalance      = "proc_generate_trial_balance"

	tableBalanceSheet      = "report_balance_sheet"
	tableIncomeStatement   = "report_income_statement"
	tableCashFlowStatement = "report_cash_flow_statement"
)

type ReportService struct {
	db         *sql.DB
	reportRepo repositories.ReportRepository
}

func NewReportService(db *sql.DB, reportRepo repositories.ReportRepository) *ReportService {
	return &ReportService{
		db:         db,
		reportRepo: reportRepo,
	}
}

// generate runs a report procedure inside its own transaction and
// commits before the caller reads the table back. The commit is required
// for the procedure's output to be visible to the follow-up SELECT.
func (s *ReportService) generate(ctx context.Context, procedure string, year int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if err := s.reportRepo.CallProcedure(ctx, tx, procedure, year); err != nil {
		return fmt.Errorf("report generation failed: %v", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}

func (s *ReportService) AccountSummary(ctx context.Context, year int) ([]*models.AccountSummaryRow, error) {
	if err := s.generate(ctx, procAccountSummary, year); err != nil {
		return nil, err
	}
	return s.reportRepo.ReadAccountSummary(ctx)
}

func (s *ReportService) BalanceSheet(ctx context.Context, year int) ([]*models.StatementRow, error) {
	if err := s.generate(ctx, procBalanceSheet, year); err != nil {
		return nil, err
	}
	return s.reportRepo.ReadStatement(ctx, tableBalanceSheet)
}

func (s *ReportService) IncomeStatement(ctx context.Context, year int) ([]*models.StatementRow, error) {
	if err := s.generate(ctx, procIncomeStatement, year); err != nil {
		return nil, err
	}
	return s.reportRepo.ReadStatement(ctx, tableIncomeStatement)
}

func (s *ReportService) CashFlowStatement(ctx context.Context, year int) ([]*models.StatementRow, error) {
	if err := s.generate(ctx, procCashFlowStatement, year); err != nil {
		return nil, err
	}
	return s.reportRepo.ReadStatement(ctx, tableCashFlowStatement)
}

func (s *ReportService) TrialBalance(ctx context.Context, year int) ([]*models.TrialBalanceRow, error) {
	if err := s.generate(ctx, procTrialBalance, year); err != nil {
		return nil, err
	}
	return s.reportRepo.ReadTrialBalance(ctx)
}
