package models

import (
	"math"
	"time"
)

// TransactionType is derived from the sign of a transaction amount.
// It is never persisted.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// MaxDescriptionLength bounds Transaction.Description.
const MaxDescriptionLength = 200

// DateLayout is the ISO-8601 calendar date layout used on every surface.
const DateLayout = "2006-01-02"

// Transaction represents a dated money movement. Positive amounts are income,
// negative amounts are expenses.
type Transaction struct {
	Base
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	Description string    `gorm:"size:200;not null" json:"description"`
	Amount      float64   `gorm:"not null" json:"amount"`
	CategoryID  uint      `gorm:"not null;index" json:"category_id"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"category,omitempty"`
}

// Type reports whether the transaction is income or an expense.
func (t Transaction) Type() TransactionType {
	return TypeOf(t.Amount)
}

// CategoryName returns the referenced category's name, or "" when it is not loaded.
func (t Transaction) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return t.Category.Name
}

// TypeOf derives the transaction type from an amount. Zero counts as income.
func TypeOf(amount float64) TransactionType {
	if amount >= 0 {
		return TransactionTypeIncome
	}
	return TransactionTypeExpense
}

// SignedAmount applies the expense rule: a positive magnitude entered as an
// expense is stored negated. Every other combination is stored as given.
func SignedAmount(amount float64, txType TransactionType) float64 {
	if txType == TransactionTypeExpense && amount > 0 {
		return -amount
	}
	return amount
}

// Magnitude is the unsigned amount shown in entry forms next to the derived type.
func Magnitude(amount float64) float64 {
	return math.Abs(amount)
}

// DateOf truncates t to its calendar date at UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
