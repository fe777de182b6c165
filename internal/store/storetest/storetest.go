// Package storetest is a behavioral test suite shared by Store implementations.
package storetest

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/report"
	"fintrack/internal/store"
	"fintrack/internal/testutil"
)

// Factory returns an empty store for one subtest.
type Factory func(t *testing.T) store.Store

// Run exercises every Store operation against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	ctx := context.Background()

	t.Run("categories_ordered_by_name", func(t *testing.T) {
		s := newStore(t)
		for _, name := range []string{"Rent", "Food", "Salary"} {
			testutil.AssertNoError(t, s.CreateCategory(ctx, &models.Category{Name: name}))
		}

		got, err := s.ListCategories(ctx)
		testutil.AssertNoError(t, err)
		if len(got) != 3 || got[0].Name != "Food" || got[1].Name != "Rent" || got[2].Name != "Salary" {
			t.Errorf("unexpected category order: %+v", got)
		}

		count, err := s.CountCategories(ctx)
		testutil.AssertNoError(t, err)
		if count != 3 {
			t.Errorf("expected 3 categories, got %d", count)
		}
	})

	t.Run("duplicate_category_name", func(t *testing.T) {
		s := newStore(t)
		testutil.AssertNoError(t, s.CreateCategory(ctx, &models.Category{Name: "Food"}))
		err := s.CreateCategory(ctx, &models.Category{Name: "Food"})
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("get_missing_category", func(t *testing.T) {
		s := newStore(t)
		_, err := s.GetCategory(ctx, 42)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("create_and_get_transaction", func(t *testing.T) {
		s := newStore(t)
		food := mustCategory(t, s, "Food")

		tx := &models.Transaction{Date: date(t, "2025-01-20"), Description: "Groceries", Amount: -200, CategoryID: food.ID}
		testutil.AssertNoError(t, s.CreateTransaction(ctx, tx))
		if tx.ID == 0 {
			t.Fatal("expected ID to be assigned")
		}
		if tx.CategoryName() != "Food" {
			t.Errorf("expected category Food on created row, got %q", tx.CategoryName())
		}

		got, err := s.GetTransaction(ctx, tx.ID)
		testutil.AssertNoError(t, err)
		if got.Description != "Groceries" || got.Amount != -200 || got.CategoryName() != "Food" {
			t.Errorf("unexpected transaction: %+v", got)
		}
		if got.Date.Format(models.DateLayout) != "2025-01-20" {
			t.Errorf("expected date 2025-01-20, got %s", got.Date.Format(models.DateLayout))
		}
	})

	t.Run("create_with_missing_category", func(t *testing.T) {
		s := newStore(t)
		tx := &models.Transaction{Date: date(t, "2025-01-20"), Description: "x", Amount: 1, CategoryID: 99}
		testutil.AssertAppError(t, s.CreateTransaction(ctx, tx), "INVALID_CATEGORY")

		all, err := s.FindTransactions(ctx, report.Filter{}, report.NewestFirst)
		testutil.AssertNoError(t, err)
		if len(all) != 0 {
			t.Errorf("expected no rows after failed write, got %d", len(all))
		}
	})

	t.Run("find_filters_and_orders", func(t *testing.T) {
		s := newStore(t)
		salary := mustCategory(t, s, "Salary")
		food := mustCategory(t, s, "Food")

		a := mustTransaction(t, s, salary.ID, "2025-01-05", 1000)
		b := mustTransaction(t, s, food.ID, "2025-01-20", -200)
		c := mustTransaction(t, s, food.ID, "2025-02-01", -50)

		all, err := s.FindTransactions(ctx, report.Filter{}, report.NewestFirst)
		testutil.AssertNoError(t, err)
		assertIDs(t, all, c.ID, b.ID, a.ID)
		if all[0].CategoryName() != "Food" {
			t.Errorf("expected categories to be loaded, got %q", all[0].CategoryName())
		}

		asc, err := s.FindTransactions(ctx, report.Filter{}, report.OldestFirst)
		testutil.AssertNoError(t, err)
		assertIDs(t, asc, a.ID, b.ID, c.ID)

		byDate, err := s.FindTransactions(ctx, report.ParseFilter("2025-01-05", "2025-01-20", ""), report.NewestFirst)
		testutil.AssertNoError(t, err)
		assertIDs(t, byDate, b.ID, a.ID)

		byCategory, err := s.FindTransactions(ctx, report.Filter{CategoryID: &food.ID}, report.OldestFirst)
		testutil.AssertNoError(t, err)
		assertIDs(t, byCategory, b.ID, c.ID)

		inverted, err := s.FindTransactions(ctx, report.ParseFilter("2025-02-01", "2025-01-01", ""), report.NewestFirst)
		testutil.AssertNoError(t, err)
		assertIDs(t, inverted)
	})

	t.Run("update_replaces_fields", func(t *testing.T) {
		s := newStore(t)
		food := mustCategory(t, s, "Food")
		rent := mustCategory(t, s, "Rent")
		tx := mustTransaction(t, s, food.ID, "2025-01-20", -200)

		update := &models.Transaction{
			Base:        models.Base{ID: tx.ID},
			Date:        date(t, "2025-03-01"),
			Description: "March rent",
			Amount:      -900,
			CategoryID:  rent.ID,
		}
		testutil.AssertNoError(t, s.UpdateTransaction(ctx, update))
		if update.CategoryName() != "Rent" {
			t.Errorf("expected updated row to carry Rent, got %q", update.CategoryName())
		}

		got, err := s.GetTransaction(ctx, tx.ID)
		testutil.AssertNoError(t, err)
		if got.Description != "March rent" || got.Amount != -900 || got.CategoryID != rent.ID {
			t.Errorf("unexpected transaction after update: %+v", got)
		}
		if got.Date.Format(models.DateLayout) != "2025-03-01" {
			t.Errorf("expected date 2025-03-01, got %s", got.Date.Format(models.DateLayout))
		}
	})

	t.Run("update_with_missing_category_leaves_row_unchanged", func(t *testing.T) {
		s := newStore(t)
		food := mustCategory(t, s, "Food")
		tx := mustTransaction(t, s, food.ID, "2025-01-20", -200)

		update := &models.Transaction{
			Base:        models.Base{ID: tx.ID},
			Date:        date(t, "2025-03-01"),
			Description: "changed",
			Amount:      5,
			CategoryID:  999,
		}
		testutil.AssertAppError(t, s.UpdateTransaction(ctx, update), "INVALID_CATEGORY")

		got, err := s.GetTransaction(ctx, tx.ID)
		testutil.AssertNoError(t, err)
		if got.Description != tx.Description || got.Amount != -200 || got.CategoryID != food.ID {
			t.Errorf("row changed after failed update: %+v", got)
		}
	})

	t.Run("update_missing_transaction", func(t *testing.T) {
		s := newStore(t)
		food := mustCategory(t, s, "Food")
		update := &models.Transaction{Base: models.Base{ID: 77}, Date: date(t, "2025-01-01"), Description: "x", CategoryID: food.ID}
		testutil.AssertAppError(t, s.UpdateTransaction(ctx, update), "TRANSACTION_NOT_FOUND")
	})

	t.Run("delete_transaction", func(t *testing.T) {
		s := newStore(t)
		food := mustCategory(t, s, "Food")
		tx := mustTransaction(t, s, food.ID, "2025-01-20", -200)

		testutil.AssertNoError(t, s.DeleteTransaction(ctx, tx.ID))
		_, err := s.GetTransaction(ctx, tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
		testutil.AssertAppError(t, s.DeleteTransaction(ctx, tx.ID), "TRANSACTION_NOT_FOUND")
	})

	t.Run("delete_category", func(t *testing.T) {
		s := newStore(t)
		food := mustCategory(t, s, "Food")
		spare := mustCategory(t, s, "Spare")
		mustTransaction(t, s, food.ID, "2025-01-20", -200)

		testutil.AssertAppError(t, s.DeleteCategory(ctx, food.ID), "CATEGORY_IN_USE")
		testutil.AssertNoError(t, s.DeleteCategory(ctx, spare.ID))
		testutil.AssertAppError(t, s.DeleteCategory(ctx, spare.ID), "CATEGORY_NOT_FOUND")

		count, err := s.CountCategories(ctx)
		testutil.AssertNoError(t, err)
		if count != 1 {
			t.Errorf("expected 1 category left, got %d", count)
		}
	})
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	return testutil.MustDate(t, s)
}

func mustCategory(t *testing.T, s store.Store, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	testutil.AssertNoError(t, s.CreateCategory(context.Background(), c))
	return c
}

func mustTransaction(t *testing.T, s store.Store, categoryID uint, day string, amount float64) *models.Transaction {
	t.Helper()
	tx := &models.Transaction{Date: date(t, day), Description: "tx " + day, Amount: amount, CategoryID: categoryID}
	testutil.AssertNoError(t, s.CreateTransaction(context.Background(), tx))
	return tx
}

func assertIDs(t *testing.T, txs []models.Transaction, want ...uint) {
	t.Helper()
	if len(txs) != len(want) {
		t.Fatalf("expected %d transactions, got %d", len(want), len(txs))
	}
	for i, id := range want {
		if txs[i].ID != id {
			t.Errorf("position %d: expected id %d, got %d", i, id, txs[i].ID)
		}
	}
}
