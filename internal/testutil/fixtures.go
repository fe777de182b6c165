package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fintrack/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestCategory creates a category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB) *models.Category {
	t.Helper()
	return CreateTestCategoryNamed(t, db, fmt.Sprintf("Test Category %d", nextID()))
}

// CreateTestCategoryNamed creates a category with the given name.
func CreateTestCategoryNamed(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestTransaction creates a transaction on the given YYYY-MM-DD date.
// Positive amounts are income, negative amounts expenses.
func CreateTestTransaction(t *testing.T, db *gorm.DB, categoryID uint, date string, amount float64) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Date:        MustDate(t, date),
		Description: fmt.Sprintf("Test Transaction %d", nextID()),
		Amount:      amount,
		CategoryID:  categoryID,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// MustDate parses a YYYY-MM-DD date or fails the test.
func MustDate(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", s, err)
	}
	return d
}
