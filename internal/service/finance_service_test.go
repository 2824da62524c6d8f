package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"akramfit/coaching-app/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLedgerMergesAndSortsNewestFirst(t *testing.T) {
	incomeRepo := &fakeTransactionRepo{}
	expenseRepo := &fakeTransactionRepo{}
	svc := NewFinanceService(incomeRepo, expenseRepo)

	day := func(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }
	incomeRepo.txns = []domain.Transaction{
		{ID: primitive.NewObjectID(), Description: "Subscription: A", Amount: 6000, Date: day(5)},
		{ID: primitive.NewObjectID(), Description: "Subscription: B", Amount: 15300, Date: day(20)},
	}
	expenseRepo.txns = []domain.Transaction{
		{ID: primitive.NewObjectID(), Description: "Gym rent", Amount: 4000, Date: day(10)},
	}

	entries, err := svc.ListLedger(context.Background())
	if err != nil {
		t.Fatalf("ListLedger() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	wantOrder := []string{"Subscription: B", "Gym rent", "Subscription: A"}
	for i, desc := range wantOrder {
		if entries[i].Description != desc {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Description, desc)
		}
	}
	if entries[1].Type != domain.TransactionExpense {
		t.Errorf("expense row typed as %q", entries[1].Type)
	}

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.TotalIncome != 21300 || summary.TotalExpenses != 4000 || summary.NetProfit != 17300 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestAddExpenseValidation(t *testing.T) {
	svc := NewFinanceService(&fakeTransactionRepo{}, &fakeTransactionRepo{})

	if _, err := svc.AddExpense(context.Background(), "", 100); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("empty description error = %v, want ErrValidationFailed", err)
	}
	if _, err := svc.AddExpense(context.Background(), "Rent", 0); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("zero amount error = %v, want ErrValidationFailed", err)
	}

	txn, err := svc.AddExpense(context.Background(), "Rent", 4000)
	if err != nil {
		t.Fatalf("AddExpense() error = %v", err)
	}
	if txn.ID.IsZero() {
		t.Error("expense ID not assigned")
	}
}

func TestDeleteEntrySelectsSide(t *testing.T) {
	incomeRepo := &fakeTransactionRepo{}
	expenseRepo := &fakeTransactionRepo{}
	svc := NewFinanceService(incomeRepo, expenseRepo)

	txn, err := svc.AddExpense(context.Background(), "Rent", 4000)
	if err != nil {
		t.Fatalf("AddExpense() error = %v", err)
	}

	// Wrong side: the ID lives in the expense collection.
	if err := svc.DeleteEntry(context.Background(), domain.TransactionIncome, txn.ID); !errors.Is(err, ErrLedgerEntryNotFound) {
		t.Errorf("delete from income side error = %v, want ErrLedgerEntryNotFound", err)
	}
	if err := svc.DeleteEntry(context.Background(), domain.TransactionExpense, txn.ID); err != nil {
		t.Errorf("DeleteEntry() error = %v", err)
	}
	if len(expenseRepo.txns) != 0 {
		t.Errorf("expenses left = %d, want 0", len(expenseRepo.txns))
	}
}
