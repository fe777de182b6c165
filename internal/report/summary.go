package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// RecentLimit is how many leading transactions a Summary keeps as "recent".
const RecentLimit = 5

// TrendLabelLayout renders a trend month as e.g. "Jan 2025".
const TrendLabelLayout = "Jan 2006"

// MonthlyTotal is one (year, month) bucket of the income/expense trend.
// Income and Expenses are positive magnitudes rounded to cents.
type MonthlyTotal struct {
	Year     int             `json:"year"`
	Month    time.Month      `json:"month"`
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// Summary holds dashboard metrics for a transaction set.
type Summary struct {
	Count         int                  `json:"count"`
	TotalIncome   decimal.Decimal      `json:"total_income"`
	TotalExpenses decimal.Decimal      `json:"total_expenses"`
	NetBalance    decimal.Decimal      `json:"net_balance"`
	Recent        []models.Transaction `json:"recent"`
	Trend         []MonthlyTotal       `json:"trend"`
}

type monthKey struct {
	year  int
	month time.Month
}

// Summarize reduces txs into totals, the leading RecentLimit rows and the
// monthly trend. Pass txs newest first for Recent to mean "most recent".
//
// Amounts are converted to decimals from their shortest float representation
// and summed exactly. Trend values are rounded to two places, half away from
// zero.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{
		Count:         len(txs),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Recent:        []models.Transaction{},
		Trend:         []MonthlyTotal{},
	}

	months := make(map[monthKey]*MonthlyTotal)
	var keys []monthKey

	for _, tx := range txs {
		amount := decimal.NewFromFloat(tx.Amount)

		key := monthKey{year: tx.Date.Year(), month: tx.Date.Month()}
		bucket, ok := months[key]
		if !ok {
			bucket = &MonthlyTotal{
				Year:     key.year,
				Month:    key.month,
				Label:    time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format(TrendLabelLayout),
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			}
			months[key] = bucket
			keys = append(keys, key)
		}

		switch {
		case amount.IsPositive():
			s.TotalIncome = s.TotalIncome.Add(amount)
			bucket.Income = bucket.Income.Add(amount)
		case amount.IsNegative():
			s.TotalExpenses = s.TotalExpenses.Add(amount.Neg())
			bucket.Expenses = bucket.Expenses.Add(amount.Neg())
		}
	}

	s.NetBalance = s.TotalIncome.Sub(s.TotalExpenses)

	n := len(txs)
	if n > RecentLimit {
		n = RecentLimit
	}
	s.Recent = append(s.Recent, txs[:n]...)

	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })
	for _, key := range keys {
		bucket := months[key]
		bucket.Income = bucket.Income.Round(2)
		bucket.Expenses = bucket.Expenses.Round(2)
		s.Trend = append(s.Trend, *bucket)
	}

	return s
}

func (k monthKey) before(o monthKey) bool {
	if k.year != o.year {
		return k.year < o.year
	}
	return k.month < o.month
}

// TrendSeries splits the trend into parallel label/income/expense series for
// charting.
func (s Summary) TrendSeries() (labels []string, income, expenses []float64) {
	labels = make([]string, 0, len(s.Trend))
	income = make([]float64, 0, len(s.Trend))
	expenses = make([]float64, 0, len(s.Trend))
	for _, m := range s.Trend {
		labels = append(labels, m.Label)
		income = append(income, m.Income.InexactFloat64())
		expenses = append(expenses, m.Expenses.InexactFloat64())
	}
	return labels, income, expenses
}
