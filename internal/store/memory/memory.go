// Package memory provides an in-process Store for development runs and tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/report"
	"fintrack/internal/store"
)

// Store keeps categories and transactions in maps guarded by a mutex.
// Rows are copied in and out so callers never share memory with the store.
type Store struct {
	mu           sync.RWMutex
	categories   map[uint]models.Category
	transactions map[uint]models.Transaction
	nextCategory uint
	nextTx       uint
	now          func() time.Time
}

var _ store.Store = (*Store)(nil)

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		categories:   make(map[uint]models.Category),
		transactions: make(map[uint]models.Transaction),
		now:          time.Now,
	}
}

// ListCategories returns every category ordered by name.
func (s *Store) ListCategories(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetCategory returns the category with the given ID or ErrCategoryNotFound.
func (s *Store) GetCategory(_ context.Context, id uint) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &c, nil
}

// CountCategories returns the number of stored categories.
func (s *Store) CountCategories(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.categories)), nil
}

// CreateCategory stores a new category and fills in its ID and timestamps.
// Names must be unique.
func (s *Store) CreateCategory(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Name == category.Name {
			return apperrors.ErrDuplicateCategory
		}
	}

	s.nextCategory++
	now := s.now()
	category.ID = s.nextCategory
	category.CreatedAt = now
	category.UpdatedAt = now

	stored := *category
	stored.Transactions = nil
	s.categories[stored.ID] = stored
	return nil
}

// DeleteCategory removes a category that no transaction references.
func (s *Store) DeleteCategory(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return apperrors.ErrCategoryNotFound
	}
	for _, tx := range s.transactions {
		if tx.CategoryID == id {
			return apperrors.ErrCategoryInUse
		}
	}
	delete(s.categories, id)
	return nil
}

// FindTransactions returns the transactions matching filter, sorted by order,
// with their categories attached.
func (s *Store) FindTransactions(_ context.Context, filter report.Filter, order report.Order) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.Transaction, 0, len(s.transactions))
	for _, tx := range s.transactions {
		all = append(all, s.withCategory(tx))
	}
	return report.Apply(all, filter, order), nil
}

// GetTransaction returns one transaction with its category attached.
func (s *Store) GetTransaction(_ context.Context, id uint) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[id]
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	tx = s.withCategory(tx)
	return &tx, nil
}

// CreateTransaction stores a new transaction. The category must exist.
func (s *Store) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[tx.CategoryID]; !ok {
		return apperrors.ErrInvalidCategory
	}

	s.nextTx++
	now := s.now()
	tx.ID = s.nextTx
	tx.CreatedAt = now
	tx.UpdatedAt = now

	stored := *tx
	stored.Category = nil
	s.transactions[stored.ID] = stored

	*tx = s.withCategory(stored)
	return nil
}

// UpdateTransaction replaces the date, description, amount and category of an
// existing transaction.
func (s *Store) UpdateTransaction(_ context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.transactions[tx.ID]
	if !ok {
		return apperrors.ErrTransactionNotFound
	}
	if _, ok := s.categories[tx.CategoryID]; !ok {
		return apperrors.ErrInvalidCategory
	}

	existing.Date = tx.Date
	existing.Description = tx.Description
	existing.Amount = tx.Amount
	existing.CategoryID = tx.CategoryID
	existing.UpdatedAt = s.now()
	s.transactions[existing.ID] = existing

	*tx = s.withCategory(existing)
	return nil
}

// DeleteTransaction removes the transaction with the given ID.
func (s *Store) DeleteTransaction(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[id]; !ok {
		return apperrors.ErrTransactionNotFound
	}
	delete(s.transactions, id)
	return nil
}

// withCategory attaches a copy of the referenced category. Callers hold the lock.
func (s *Store) withCategory(tx models.Transaction) models.Transaction {
	if c, ok := s.categories[tx.CategoryID]; ok {
		tx.Category = &c
	} else {
		tx.Category = nil
	}
	return tx
}
