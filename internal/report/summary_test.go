package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSummarize(t *testing.T) {
	t.Run("worked_example", func(t *testing.T) {
		s := Summarize(Apply(sampleTransactions(), Filter{}, NewestFirst))

		assert.Equal(t, 3, s.Count)
		assert.True(t, s.TotalIncome.Equal(dec("1000.00")), "income %s", s.TotalIncome)
		assert.True(t, s.TotalExpenses.Equal(dec("250.00")), "expenses %s", s.TotalExpenses)
		assert.True(t, s.NetBalance.Equal(dec("750.00")), "net %s", s.NetBalance)

		require.Len(t, s.Trend, 2)
		assert.Equal(t, "Jan 2025", s.Trend[0].Label)
		assert.True(t, s.Trend[0].Income.Equal(dec("1000.00")))
		assert.True(t, s.Trend[0].Expenses.Equal(dec("200.00")))
		assert.Equal(t, "Feb 2025", s.Trend[1].Label)
		assert.True(t, s.Trend[1].Income.Equal(decimal.Zero))
		assert.True(t, s.Trend[1].Expenses.Equal(dec("50.00")))
	})

	t.Run("empty_input", func(t *testing.T) {
		s := Summarize(nil)

		assert.Equal(t, 0, s.Count)
		assert.True(t, s.TotalIncome.IsZero())
		assert.True(t, s.TotalExpenses.IsZero())
		assert.True(t, s.NetBalance.IsZero())
		assert.Empty(t, s.Recent)
		assert.NotNil(t, s.Trend)
		assert.Empty(t, s.Trend)
	})

	t.Run("recent_keeps_first_five_in_given_order", func(t *testing.T) {
		var txs []models.Transaction
		for i := 1; i <= 8; i++ {
			txs = append(txs, tx(uint(i), "2025-03-01", float64(i), food, "x"))
		}
		s := Summarize(txs)
		assert.Equal(t, []uint{1, 2, 3, 4, 5}, ids(s.Recent))
	})

	t.Run("trend_sorted_without_duplicates", func(t *testing.T) {
		txs := []models.Transaction{
			tx(1, "2025-03-09", 10, salary, "a"),
			tx(2, "2024-12-31", -5, food, "b"),
			tx(3, "2025-01-02", 7, salary, "c"),
			tx(4, "2025-03-01", -3, food, "d"),
			tx(5, "2024-12-01", 2, salary, "e"),
		}
		s := Summarize(txs)

		require.Len(t, s.Trend, 3)
		assert.Equal(t, "Dec 2024", s.Trend[0].Label)
		assert.Equal(t, "Jan 2025", s.Trend[1].Label)
		assert.Equal(t, "Mar 2025", s.Trend[2].Label)
		for i := 1; i < len(s.Trend); i++ {
			prev, cur := s.Trend[i-1], s.Trend[i]
			assert.True(t, prev.Year < cur.Year || (prev.Year == cur.Year && prev.Month < cur.Month))
		}
	})

	t.Run("trend_partitions_totals", func(t *testing.T) {
		txs := []models.Transaction{
			tx(1, "2025-01-05", 1234.56, salary, "a"),
			tx(2, "2025-01-06", -0.1, food, "b"),
			tx(3, "2025-01-07", -0.2, food, "c"),
			tx(4, "2025-02-07", 0.3, salary, "d"),
			tx(5, "2025-04-30", -99.99, rent, "e"),
			tx(6, "2025-04-30", 0, rent, "zero"),
		}
		s := Summarize(txs)

		income, expenses := decimal.Zero, decimal.Zero
		for _, m := range s.Trend {
			income = income.Add(m.Income)
			expenses = expenses.Add(m.Expenses)
		}
		assert.True(t, income.Equal(s.TotalIncome), "%s != %s", income, s.TotalIncome)
		assert.True(t, expenses.Equal(s.TotalExpenses), "%s != %s", expenses, s.TotalExpenses)
		assert.True(t, s.TotalIncome.Sub(s.TotalExpenses).Equal(s.NetBalance))
		assert.True(t, s.TotalExpenses.Equal(dec("100.29")))
	})

	t.Run("rounds_half_away_from_zero", func(t *testing.T) {
		s := Summarize([]models.Transaction{
			tx(1, "2025-05-01", 0.005, salary, "a"),
			tx(2, "2025-05-02", -0.125, food, "b"),
		})
		require.Len(t, s.Trend, 1)
		assert.Equal(t, "0.01", s.Trend[0].Income.StringFixed(2))
		assert.Equal(t, "0.13", s.Trend[0].Expenses.StringFixed(2))
	})

	t.Run("zero_amount_opens_month_without_totals", func(t *testing.T) {
		s := Summarize([]models.Transaction{tx(1, "2025-06-01", 0, food, "free")})
		require.Len(t, s.Trend, 1)
		assert.Equal(t, time.June, s.Trend[0].Month)
		assert.True(t, s.Trend[0].Income.IsZero())
		assert.True(t, s.Trend[0].Expenses.IsZero())
	})
}

func TestTrendSeries(t *testing.T) {
	s := Summarize(sampleTransactions())
	labels, income, expenses := s.TrendSeries()

	assert.Equal(t, []string{"Jan 2025", "Feb 2025"}, labels)
	assert.Equal(t, []float64{1000, 0}, income)
	assert.Equal(t, []float64{200, 50}, expenses)
}
