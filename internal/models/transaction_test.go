package models

import (
	"testing"
	"time"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		amount float64
		want   TransactionType
	}{
		{1000, TransactionTypeIncome},
		{0, TransactionTypeIncome},
		{-0.01, TransactionTypeExpense},
		{-200, TransactionTypeExpense},
	}
	for _, tc := range tests {
		if got := TypeOf(tc.amount); got != tc.want {
			t.Errorf("TypeOf(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestSignedAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		txType TransactionType
		want   float64
	}{
		{"expense_positive_is_negated", 50, TransactionTypeExpense, -50},
		{"expense_negative_unchanged", -50, TransactionTypeExpense, -50},
		{"expense_zero_unchanged", 0, TransactionTypeExpense, 0},
		{"income_positive_unchanged", 50, TransactionTypeIncome, 50},
		{"income_negative_unchanged", -50, TransactionTypeIncome, -50},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SignedAmount(tc.amount, tc.txType); got != tc.want {
				t.Errorf("SignedAmount(%v, %q) = %v, want %v", tc.amount, tc.txType, got, tc.want)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	in := time.Date(2025, time.March, 15, 23, 59, 0, 0, loc)

	got := DateOf(in)

	want := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOf(%v) = %v, want %v", in, got, want)
	}
}

func TestParseDate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		got, err := ParseDate("2024-02-29")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Format(DateLayout) != "2024-02-29" || got.Location() != time.UTC {
			t.Errorf("unexpected date %v", got)
		}
	})

	for _, in := range []string{"", "2025-13-01", "2025-02-30", "15/03/2025", "2025-3-1"} {
		t.Run("invalid_"+in, func(t *testing.T) {
			if _, err := ParseDate(in); err == nil {
				t.Errorf("expected error for %q", in)
			}
		})
	}
}

func TestTransactionAccessors(t *testing.T) {
	tx := Transaction{Amount: -12.5}
	if tx.Type() != TransactionTypeExpense {
		t.Errorf("expected expense, got %q", tx.Type())
	}
	if tx.CategoryName() != "" {
		t.Errorf("expected empty category name, got %q", tx.CategoryName())
	}
	if Magnitude(tx.Amount) != 12.5 {
		t.Errorf("expected magnitude 12.5, got %v", Magnitude(tx.Amount))
	}

	tx.Category = &Category{Name: "Food"}
	if tx.CategoryName() != "Food" {
		t.Errorf("expected Food, got %q", tx.CategoryName())
	}
}
