package server

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/report"
	"fintrack/internal/services"
	"fintrack/internal/store"
	"fintrack/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
}

type app struct {
	router *gin.Engine
	store  store.Store
}

func newApp(t *testing.T) *app {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	s := store.NewGormStore(db)
	categories := services.NewCategoryService(s)
	_, err := categories.EnsureDefaultCategories(context.Background())
	require.NoError(t, err)

	router, err := NewRouter(Services{
		Categories:   categories,
		Transactions: services.NewTransactionService(s),
		Reports:      services.NewReportService(s),
	})
	require.NoError(t, err)
	return &app{router: router, store: s}
}

func (a *app) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *app) categoryID(t *testing.T, name string) uint {
	t.Helper()
	categories, err := a.store.ListCategories(context.Background())
	require.NoError(t, err)
	for _, c := range categories {
		if c.Name == name {
			return c.ID
		}
	}
	t.Fatalf("category %q not seeded", name)
	return 0
}

func (a *app) create(t *testing.T, date, description, amount, txType, category string) {
	t.Helper()
	rec := a.do(http.MethodPost, "/transactions", url.Values{
		"date":        {date},
		"description": {description},
		"amount":      {amount},
		"type":        {txType},
		"category_id": {uintString(a.categoryID(t, category))},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
	require.Equal(t, "/transactions", rec.Header().Get("Location"))
}

func uintString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestEndToEnd_DashboardExample(t *testing.T) {
	a := newApp(t)
	a.create(t, "2025-01-05", "Pay", "1000", "income", "Salary")
	a.create(t, "2025-01-20", "Groceries", "200", "expense", "Food")
	a.create(t, "2025-02-01", "Rent share", "50", "expense", "Rent")

	rec := a.do(http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var dash struct {
		TotalCategories   int    `json:"total_categories"`
		TotalTransactions int    `json:"total_transactions"`
		TotalIncome       string `json:"total_income"`
		TotalExpenses     string `json:"total_expenses"`
		NetBalance        string `json:"net_balance"`
		MonthlyTrend      []struct {
			Label    string `json:"label"`
			Income   string `json:"income"`
			Expenses string `json:"expenses"`
		} `json:"monthly_trend"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))

	assert.Equal(t, len(models.DefaultCategoryNames), dash.TotalCategories)
	assert.Equal(t, 3, dash.TotalTransactions)
	assert.Equal(t, "1000.00", dash.TotalIncome)
	assert.Equal(t, "250.00", dash.TotalExpenses)
	assert.Equal(t, "750.00", dash.NetBalance)
	require.Len(t, dash.MonthlyTrend, 2)
	assert.Equal(t, "Jan 2025", dash.MonthlyTrend[0].Label)
	assert.Equal(t, "1000.00", dash.MonthlyTrend[0].Income)
	assert.Equal(t, "200.00", dash.MonthlyTrend[0].Expenses)
	assert.Equal(t, "Feb 2025", dash.MonthlyTrend[1].Label)
	assert.Equal(t, "0.00", dash.MonthlyTrend[1].Income)
	assert.Equal(t, "50.00", dash.MonthlyTrend[1].Expenses)

	t.Run("filters", func(t *testing.T) {
		food := uintString(a.categoryID(t, "Food"))
		rec := a.do(http.MethodGet, "/api/v1/dashboard?start_date=2025-01-10&end_date=garbage&category_id="+food, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
		assert.Equal(t, 1, dash.TotalTransactions)
		assert.Equal(t, "200.00", dash.TotalExpenses)
	})

	t.Run("inverted_range_is_empty", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/api/v1/dashboard?start_date=2025-03-01&end_date=2025-01-01", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
		assert.Equal(t, 0, dash.TotalTransactions)
		assert.Equal(t, "0.00", dash.NetBalance)
	})

	t.Run("html_page", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/dashboard", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "750.00")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}

func TestEndToEnd_EditAndDelete(t *testing.T) {
	a := newApp(t)
	a.create(t, "2025-01-20", "Groceries", "200", "expense", "Food")

	txs, err := a.store.FindTransactions(context.Background(), report.Filter{}, report.NewestFirst)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	original := txs[0]
	assert.Equal(t, -200.0, original.Amount)
	id := uintString(original.ID)

	t.Run("edit_form_shows_magnitude", func(t *testing.T) {
		rec := a.do(http.MethodGet, "/transactions/"+id+"/edit", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="200.00"`)
		assert.Contains(t, rec.Body.String(), `value="expense" selected`)
	})

	t.Run("nonexistent_category_leaves_record_unchanged", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/transactions/"+id+"/edit", url.Values{
			"description": {"Moved"},
			"amount":      {"10"},
			"type":        {"income"},
			"category_id": {"9999"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_CATEGORY")

		stored, err := a.store.GetTransaction(context.Background(), original.ID)
		require.NoError(t, err)
		assert.Equal(t, original.Description, stored.Description)
		assert.Equal(t, original.Amount, stored.Amount)
		assert.Equal(t, original.CategoryID, stored.CategoryID)
	})

	t.Run("category_in_use_cannot_be_deleted", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/categories/"+uintString(original.CategoryID)+"/delete", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := a.do(http.MethodPost, "/transactions/"+id+"/delete", nil)
		require.Equal(t, http.StatusSeeOther, rec.Code)

		rec = a.do(http.MethodPost, "/transactions/"+id+"/delete", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = a.do(http.MethodGet, "/transactions/"+id+"/edit", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEndToEnd_ExportRoundTrip(t *testing.T) {
	a := newApp(t)
	a.create(t, "2025-02-01", "Rent, February", "50", "expense", "Rent")
	a.create(t, "2025-01-05", `Pay "bonus"`, "1000.5", "income", "Salary")

	rec := a.do(http.MethodGet, "/export/csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=transactions.csv", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"id", "date", "description", "amount", "category"}, records[0])
	assert.Equal(t, []string{"2025-01-05", `Pay "bonus"`, "1000.50", "Salary"}, records[1][1:])
	assert.Equal(t, []string{"2025-02-01", "Rent, February", "-50.00", "Rent"}, records[2][1:])
}

func TestEndToEnd_Misc(t *testing.T) {
	a := newApp(t)

	rec := a.do(http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(http.MethodGet, "/swagger/doc.json", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fintrack API")

	rec = a.do(http.MethodGet, "/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = a.do(http.MethodPost, "/categories", url.Values{"name": {"Travel"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	rec = a.do(http.MethodPost, "/categories", url.Values{"name": {"Travel"}})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.do(http.MethodGet, "/api/v1/categories", nil)
	assert.Contains(t, rec.Body.String(), `"name":"Travel"`)
}

func TestRun_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, ln, handler, time.Second) }()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
