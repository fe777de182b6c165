package services

import (
	"context"
	"strings"
	"unicode/utf8"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/store"
)

// categoryService handles category-related business logic.
type categoryService struct {
	store store.Store
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(s store.Store) CategoryServicer {
	return &categoryService{store: s}
}

// ListCategories returns every category ordered by name
func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

// GetCategoryByID retrieves a category by ID
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID uint) (*models.Category, error) {
	return s.store.GetCategory(ctx, categoryID)
}

// CreateCategory creates a new category
func (s *categoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if utf8.RuneCountInString(name) > models.MaxCategoryNameLength {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name must be at most 80 characters")
	}

	category := &models.Category{Name: name}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	logger.Get().Infow("category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

// DeleteCategory deletes a category. Categories still referenced by
// transactions are kept and CATEGORY_IN_USE is returned.
func (s *categoryService) DeleteCategory(ctx context.Context, categoryID uint) error {
	if err := s.store.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}

	logger.Get().Infow("category deleted", "category_id", categoryID)
	return nil
}

// EnsureDefaultCategories seeds the default category set when no category
// exists yet and reports how many were created.
func (s *categoryService) EnsureDefaultCategories(ctx context.Context) (int, error) {
	count, err := s.store.CountCategories(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for _, name := range models.DefaultCategoryNames {
		if err := s.store.CreateCategory(ctx, &models.Category{Name: name}); err != nil {
			return 0, err
		}
	}

	logger.Get().Infow("seeded default categories", "count", len(models.DefaultCategoryNames))
	return len(models.DefaultCategoryNames), nil
}
