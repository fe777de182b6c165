package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/report"
)

// gormStore is the relational Store backed by GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store over db.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// ListCategories returns all categories ordered by name.
func (s *gormStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategory retrieves a category by ID.
func (s *gormStore) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// CountCategories returns the number of stored categories.
func (s *gormStore) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}

// CreateCategory inserts a category with a unique name.
func (s *gormStore) CreateCategory(ctx context.Context, category *models.Category) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Category{}).Where("name = ?", category.Name).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrDuplicateCategory
		}

		if err := tx.Create(category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// DeleteCategory removes an unreferenced category.
func (s *gormStore) DeleteCategory(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var inUse int64
		if err := tx.Model(&models.Transaction{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if inUse > 0 {
			return apperrors.ErrCategoryInUse
		}

		if err := tx.Delete(&category).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// FindTransactions returns filtered transactions with their categories.
func (s *gormStore) FindTransactions(ctx context.Context, filter report.Filter, order report.Order) ([]models.Transaction, error) {
	q := s.db.WithContext(ctx).Model(&models.Transaction{}).Preload("Category")
	q = applyTransactionFilter(q, filter)

	if order == report.OldestFirst {
		q = q.Order("date ASC").Order("id ASC")
	} else {
		q = q.Order("date DESC").Order("id DESC")
	}

	var transactions []models.Transaction
	if err := q.Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

func applyTransactionFilter(q *gorm.DB, f report.Filter) *gorm.DB {
	if f.StartDate != nil {
		q = q.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("date <= ?", *f.EndDate)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	return q
}

// GetTransaction retrieves a transaction by ID with its category.
func (s *gormStore) GetTransaction(ctx context.Context, id uint) (*models.Transaction, error) {
	return getTransaction(s.db.WithContext(ctx), id)
}

func getTransaction(db *gorm.DB, id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := db.Preload("Category").First(&transaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// requireCategory fails with ErrInvalidCategory unless the category exists.
func requireCategory(db *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCategory
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// CreateTransaction inserts a transaction referencing an existing category.
func (s *gormStore) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		category, err := requireCategory(tx, transaction.CategoryID)
		if err != nil {
			return err
		}

		transaction.Category = nil
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		transaction.Category = category
		return nil
	})
}

// UpdateTransaction replaces the mutable fields of an existing transaction.
func (s *gormStore) UpdateTransaction(ctx context.Context, transaction *models.Transaction) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := getTransaction(tx, transaction.ID)
		if err != nil {
			return err
		}

		category, err := requireCategory(tx, transaction.CategoryID)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"date":        transaction.Date,
			"description": transaction.Description,
			"amount":      transaction.Amount,
			"category_id": transaction.CategoryID,
		}
		if err := tx.Model(&models.Transaction{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		updated, err := getTransaction(tx, existing.ID)
		if err != nil {
			return err
		}
		updated.Category = category
		*transaction = *updated
		return nil
	})
}

// DeleteTransaction removes a transaction by ID.
func (s *gormStore) DeleteTransaction(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
