package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"accounting-service/internal/apperrors"
	"accounting-service/internal/models"
	"accounting-service/internal/repositories"
)

type VoucherService struct {
	db          *sql.DB
	voucherRepo repositories.VoucherRepository
}

func NewVoucherService(db *sql.DB, voucherRepo repositories.VoucherRepository) *VoucherService {
	return &VoucherService{
		db:          db,
		voucherRepo: voucherRepo,
	}
}

type VoucherHeaderInput struct {
	Date    string `json:"date"`
	Type    string `json:"type"`
	Number  int    `json:"number"`
	Summary string `json:"summary"`
}

type JournalEntryInput struct {
	AccountCode string          `json:"account_code"`
	Summary     string          `json:"summary"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

type VoucherInput struct {
	Header  *VoucherHeaderInput `json:"header"`
	Entries []JournalEntryInput `json:"entries"`
}

type VoucherDetails struct {
	Header  *models.Voucher        `json:"header"`
	Entries []*models.JournalEntry `json:"entries"`
}

func (s *VoucherService) List(ctx context.Context) ([]*models.Voucher, error) {
	return s.voucherRepo.List(ctx)
}

func (s *VoucherService) GetDetails(ctx context.Context, id int64) (*VoucherDetails, error) {
	header, err := s.voucherRepo.GetHeader(ctx, id)
	if err != nil {
		return nil, err
	}
	entries, err := s.voucherRepo.GetEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	return &VoucherDetails{Header: header, Entries: entries}, nil
}

func (s *VoucherService) NextNumber(ctx context.Context, date, voucherType string) (int, error) {
	if date == "" || voucherType == "" {
		return 0, apperrors.Validationf("date and type are required")
	}
	return s.voucherRepo.NextNumber(ctx, date, voucherType)
}

// Create inserts the voucher header and all of its journal entries as a
// single transaction; no header ever persists without its entries. The
// generated voucher id is returned on success.
func (s *VoucherService) Create(ctx context.Context, input VoucherInput) (int64, error) {
	if err := validateVoucher(input); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	voucher := &models.Voucher{
		VoucherDate:   input.Header.Date,
		VoucherType:   input.Header.Type,
		VoucherNumber: input.Header.Number,
		Summary:       input.Header.Summary,
	}
	if err := s.voucherRepo.InsertHeader(ctx, tx, voucher); err != nil {
		return 0, fmt.Errorf("failed to insert voucher header: %v", err)
	}

	for _, in := range input.Entries {
		entry := &models.JournalEntry{
			VoucherID:    voucher.ID,
			AccountCode:  in.AccountCode,
			Summary:      in.Summary,
			DebitAmount:  in.Debit,
			CreditAmount: in.Credit,
		}
		if err := s.voucherRepo.InsertEntry(ctx, tx, entry); err != nil {
			return 0, fmt.Errorf("failed to insert journal entry: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %v", err)
	}
	return voucher.ID, nil
}

func (s *VoucherService) Delete(ctx context.Context, id int64) error {
	return s.voucherRepo.Delete(ctx, id)
}

func validateVoucher(input VoucherInput) error {
	if input.Header == nil {
		return apperrors.Validationf("voucher header is required")
	}
	if input.Header.Date == "" || input.Header.Type == "" || input.Header.Number <= 0 {
		return apperrors.Validationf("voucher header requires date, type and number")
	}
	if len(input.Entries) == 0 {
		return apperrors.Validationf("at least one journal entry is required")
	}

	debitTotal := decimal.Zero
	creditTotal := decimal.Zero
	for _, entry := range input.Entries {
		if entry.AccountCode == "" {
			return apperrors.Validationf("every journal entry requires an account_code")
		}
		debitTotal = debitTotal.Add(entry.Debit)
		creditTotal = creditTotal.Add(entry.Credit)
	}
	if !debitTotal.Equal(creditTotal) {
		return apperrors.Validationf("debits and credits must balance")
	}
	return nil
}
