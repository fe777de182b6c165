package services

import (
	"context"
	"io"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/report"
)

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, categoryID uint) (*models.Category, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, categoryID uint) error
	EnsureDefaultCategories(ctx context.Context) (int, error)
}

// TransactionInput carries the fields of the transaction entry form.
// Amount is the value as entered; Type decides its stored sign.
// A nil Date means today on create and "keep the stored date" on update.
type TransactionInput struct {
	Date        *time.Time
	Description string
	Amount      float64
	Type        models.TransactionType
	CategoryID  uint
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID uint) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, input TransactionInput) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID uint, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID uint) error
}

// Dashboard is the view model behind the dashboard page.
type Dashboard struct {
	Categories      []models.Category `json:"categories"`
	TotalCategories int               `json:"total_categories"`
	Filter          report.Filter     `json:"-"`
	Summary         report.Summary    `json:"summary"`
}

// ReportServicer defines the contract for dashboard metrics and exports.
type ReportServicer interface {
	Dashboard(ctx context.Context, filter report.Filter) (*Dashboard, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}
