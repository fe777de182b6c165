// Package report turns stored transactions into dashboard metrics and CSV
// exports. Everything in it is a pure function over the rows it is given.
package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fintrack/internal/models"
)

// Order selects the date ordering of a transaction listing.
type Order int

const (
	// NewestFirst orders by date descending, the dashboard and list ordering.
	NewestFirst Order = iota
	// OldestFirst orders by date ascending, the export ordering.
	OldestFirst
)

// Filter narrows a transaction set. Nil fields are not applied.
// Date bounds are inclusive calendar dates.
type Filter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uint
}

// ParseFilter builds a Filter from free-form query text. Values that do not
// parse (non YYYY-MM-DD dates, non-integer category ids) leave the matching
// field unset instead of failing.
func ParseFilter(startDate, endDate, categoryID string) Filter {
	var f Filter

	if v := strings.TrimSpace(startDate); v != "" {
		if d, err := models.ParseDate(v); err == nil {
			f.StartDate = &d
		}
	}

	if v := strings.TrimSpace(endDate); v != "" {
		if d, err := models.ParseDate(v); err == nil {
			f.EndDate = &d
		}
	}

	if v := strings.TrimSpace(categoryID); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			catID := uint(id)
			f.CategoryID = &catID
		}
	}

	return f
}

// IsEmpty reports whether no constraint is set.
func (f Filter) IsEmpty() bool {
	return f.StartDate == nil && f.EndDate == nil && f.CategoryID == nil
}

// Match reports whether tx satisfies every set constraint.
func (f Filter) Match(tx models.Transaction) bool {
	date := models.DateOf(tx.Date)
	if f.StartDate != nil && date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && date.After(*f.EndDate) {
		return false
	}
	if f.CategoryID != nil && tx.CategoryID != *f.CategoryID {
		return false
	}
	return true
}

// Apply returns the matching subset of txs in the requested order. The input
// slice is left untouched.
func Apply(txs []models.Transaction, f Filter, order Order) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if f.Match(tx) {
			out = append(out, tx)
		}
	}
	Sort(out, order)
	return out
}

// Sort orders txs in place by date, breaking ties on id in the same direction.
func Sort(txs []models.Transaction, order Order) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if !a.Date.Equal(b.Date) {
			if order == OldestFirst {
				return a.Date.Before(b.Date)
			}
			return a.Date.After(b.Date)
		}
		if order == OldestFirst {
			return a.ID < b.ID
		}
		return a.ID > b.ID
	})
}
