package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/report"
	"fintrack/internal/services"
)

// DashboardHandler renders the filtered summary and trend.
type DashboardHandler struct {
	reportService services.ReportServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(reportService services.ReportServicer) *DashboardHandler {
	return &DashboardHandler{reportService: reportService}
}

// DashboardQuery holds the raw dashboard filters. Values that do not parse
// are ignored rather than rejected.
type DashboardQuery struct {
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	CategoryID string `form:"category_id"`
}

func (q DashboardQuery) filter() report.Filter {
	return report.ParseFilter(q.StartDate, q.EndDate, q.CategoryID)
}

// Dashboard renders the dashboard page.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	var q DashboardQuery
	_ = c.ShouldBindQuery(&q)
	filter := q.filter()

	dash, err := h.reportService.Dashboard(c.Request.Context(), filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var selected uint
	if filter.CategoryID != nil {
		selected = *filter.CategoryID
	}
	labels, income, expenses := dash.Summary.TrendSeries()

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":           "Dashboard",
		"StartDate":       q.StartDate,
		"EndDate":         q.EndDate,
		"CategoryOptions": categoryOptions{Categories: dash.Categories, Selected: selected},
		"Dashboard":       dash,
		"TrendLabels":     labels,
		"TrendIncome":     income,
		"TrendExpenses":   expenses,
	})
}

// GetDashboard returns the dashboard as JSON
// @Summary     Dashboard summary
// @Description Totals, the five most recent transactions and the monthly income/expense trend for the filtered transactions. Unparsable filters are ignored.
// @Tags        dashboard
// @Produce     json
// @Param       start_date  query string false "Inclusive start date (YYYY-MM-DD)"
// @Param       end_date    query string false "Inclusive end date (YYYY-MM-DD)"
// @Param       category_id query string false "Category ID"
// @Success     200 {object} DashboardResponse "Dashboard"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var q DashboardQuery
	_ = c.ShouldBindQuery(&q)

	dash, err := h.reportService.Dashboard(c.Request.Context(), q.filter())
	if err != nil {
		respondWithAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, toDashboardResponse(dash))
}
