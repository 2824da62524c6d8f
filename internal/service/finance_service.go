package service

import (
	"context"
	"errors"
	"sort"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrLedgerEntryNotFound = errors.New("ledger entry not found")

// LedgerEntry is a ledger row tagged with its side of the books.
type LedgerEntry struct {
	domain.Transaction
	Type domain.TransactionType `json:"type"`
}

// FinanceSummary totals the ledger.
type FinanceSummary struct {
	TotalIncome   int64 `json:"totalIncome"`
	TotalExpenses int64 `json:"totalExpenses"`
	NetProfit     int64 `json:"netProfit"`
}

// --- Service Interface ---
type FinanceService interface {
	// AddExpense appends a manual expense row. Income rows are only ever
	// appended by order approval.
	AddExpense(ctx context.Context, description string, amount int64) (*domain.Transaction, error)
	// ListLedger merges income and expenses, newest first.
	ListLedger(ctx context.Context) ([]LedgerEntry, error)
	DeleteEntry(ctx context.Context, entryType domain.TransactionType, id primitive.ObjectID) error
	Summary(ctx context.Context) (*FinanceSummary, error)
}

// --- Service Implementation ---

type financeService struct {
	incomeRepo  repository.TransactionRepository
	expenseRepo repository.TransactionRepository
}

// NewFinanceService creates a new instance of financeService.
func NewFinanceService(incomeRepo, expenseRepo repository.TransactionRepository) FinanceService {
	return &financeService{
		incomeRepo:  incomeRepo,
		expenseRepo: expenseRepo,
	}
}

func (s *financeService) AddExpense(ctx context.Context, description string, amount int64) (*domain.Transaction, error) {
	if description == "" || amount <= 0 {
		return nil, ErrValidationFailed
	}

	txn := &domain.Transaction{
		Description: description,
		Amount:      amount,
	}
	txnID, err := s.expenseRepo.Create(ctx, txn)
	if err != nil {
		return nil, err
	}
	txn.ID = txnID
	return txn, nil
}

func (s *financeService) ListLedger(ctx context.Context) ([]LedgerEntry, error) {
	income, err := s.incomeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]LedgerEntry, 0, len(income)+len(expenses))
	for _, txn := range income {
		entries = append(entries, LedgerEntry{Transaction: txn, Type: domain.TransactionIncome})
	}
	for _, txn := range expenses {
		entries = append(entries, LedgerEntry{Transaction: txn, Type: domain.TransactionExpense})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

func (s *financeService) DeleteEntry(ctx context.Context, entryType domain.TransactionType, id primitive.ObjectID) error {
	repo := s.incomeRepo
	if entryType == domain.TransactionExpense {
		repo = s.expenseRepo
	}
	err := repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrLedgerEntryNotFound
	}
	return err
}

func (s *financeService) Summary(ctx context.Context) (*FinanceSummary, error) {
	entries, err := s.ListLedger(ctx)
	if err != nil {
		return nil, err
	}

	var summary FinanceSummary
	for _, entry := range entries {
		switch entry.Type {
		case domain.TransactionIncome:
			summary.TotalIncome += entry.Amount
		case domain.TransactionExpense:
			summary.TotalExpenses += entry.Amount
		}
	}
	summary.NetProfit = summary.TotalIncome - summary.TotalExpenses
	return &summary, nil
}
