// Package store is the persistence boundary for categories and transactions.
package store

import (
	"context"

	"fintrack/internal/models"
	"fintrack/internal/report"
)

// Store persists categories and transactions. Every write is a single atomic
// commit: a write that fails leaves previously stored rows unchanged.
//
// Implementations return *errors.AppError values: CATEGORY_NOT_FOUND and
// TRANSACTION_NOT_FOUND for unknown ids, INVALID_CATEGORY when a transaction
// references a missing category, DUPLICATE_CATEGORY and CATEGORY_IN_USE for
// category writes, and INTERNAL_ERROR wrapping anything else.
type Store interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uint) (*models.Category, error)
	CountCategories(ctx context.Context) (int64, error)
	CreateCategory(ctx context.Context, category *models.Category) error
	// DeleteCategory refuses to remove a category that transactions still reference.
	DeleteCategory(ctx context.Context, id uint) error

	// FindTransactions returns the transactions matching filter in the given
	// order, each with its Category loaded.
	FindTransactions(ctx context.Context, filter report.Filter, order report.Order) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id uint) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	// UpdateTransaction replaces date, description, amount and category of the
	// stored row with tx.ID.
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, id uint) error
}
