package services

import (
	"context"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/report"
	"fintrack/internal/store"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store store.Store
	now   func() time.Time
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(s store.Store) TransactionServicer {
	return &transactionService{
		store: s,
		now:   time.Now,
	}
}

// ListTransactions returns every transaction, newest first.
func (s *transactionService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.store.FindTransactions(ctx, report.Filter{}, report.NewestFirst)
}

// GetTransactionByID retrieves a transaction by ID
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID uint) (*models.Transaction, error) {
	return s.store.GetTransaction(ctx, transactionID)
}

// CreateTransaction records a new transaction. Expenses entered as positive
// magnitudes are stored negated and a missing date defaults to today.
func (s *transactionService) CreateTransaction(ctx context.Context, input TransactionInput) (*models.Transaction, error) {
	description, err := validateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	date := models.DateOf(s.now())
	if input.Date != nil {
		date = models.DateOf(*input.Date)
	}

	transaction := &models.Transaction{
		Date:        date,
		Description: description,
		Amount:      models.SignedAmount(input.Amount, input.Type),
		CategoryID:  input.CategoryID,
	}

	if err := s.store.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	logger.Get().Infow("transaction created",
		"transaction_id", transaction.ID,
		"category_id", transaction.CategoryID,
		"amount", transaction.Amount,
	)
	return transaction, nil
}

// UpdateTransaction replaces every mutable field of an existing transaction in
// one commit. Without a date the stored date is kept.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID uint, input TransactionInput) (*models.Transaction, error) {
	description, err := validateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	date := existing.Date
	if input.Date != nil {
		date = models.DateOf(*input.Date)
	}

	transaction := &models.Transaction{
		Base:        models.Base{ID: existing.ID},
		Date:        date,
		Description: description,
		Amount:      models.SignedAmount(input.Amount, input.Type),
		CategoryID:  input.CategoryID,
	}

	if err := s.store.UpdateTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	logger.Get().Infow("transaction updated", "transaction_id", transaction.ID)
	return transaction, nil
}

// DeleteTransaction deletes a transaction by ID
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID uint) error {
	if err := s.store.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}

	logger.Get().Infow("transaction deleted", "transaction_id", transactionID)
	return nil
}

// validateTransactionInput checks the entry form fields and returns the
// trimmed description.
func validateTransactionInput(input TransactionInput) (string, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}
	if utf8.RuneCountInString(description) > models.MaxDescriptionLength {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "description must be at most 200 characters")
	}

	if math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a number")
	}

	switch input.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return "", apperrors.ErrInvalidTransactionType
	}

	if input.CategoryID == 0 {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	return description, nil
}
