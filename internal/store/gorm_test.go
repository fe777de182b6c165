package store_test

import (
	"testing"

	"fintrack/internal/store"
	"fintrack/internal/store/storetest"
	"fintrack/internal/testutil"
)

func TestGormStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		db := testutil.SetupTestDB(t)
		t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
		return store.NewGormStore(db)
	})
}
