// Package server assembles the HTTP surface and runs it.
package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fintrack/internal/docs" // Import swagger docs
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/services"
	"fintrack/internal/validator"
	"fintrack/web"
)

// Services bundles the business logic the router dispatches to.
type Services struct {
	Categories   services.CategoryServicer
	Transactions services.TransactionServicer
	Reports      services.ReportServicer
}

// NewRouter builds the gin engine with middleware, templates and every route.
func NewRouter(svc Services) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	validator.Register()

	pageHandler := handlers.NewPageHandler()
	dashboardHandler := handlers.NewDashboardHandler(svc.Reports)
	exportHandler := handlers.NewExportHandler(svc.Reports)
	transactionHandler := handlers.NewTransactionHandler(svc.Transactions, svc.Categories)
	categoryHandler := handlers.NewCategoryHandler(svc.Categories)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.NoRoute(middleware.NotFound())

	// Pages
	router.GET("/", pageHandler.Index)
	router.GET("/about", pageHandler.About)
	router.GET("/dashboard", dashboardHandler.Dashboard)
	router.GET("/export/csv", exportHandler.ExportCSV)

	transactions := router.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id/edit", transactionHandler.EditTransaction)
	transactions.POST("/:id/edit", transactionHandler.UpdateTransaction)
	transactions.POST("/:id/delete", transactionHandler.DeleteTransaction)

	categories := router.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.POST("/:id/delete", categoryHandler.DeleteCategory)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// JSON API
	api := router.Group("/api")
	api.GET("/health", pageHandler.Health)

	v1 := api.Group("/v1")
	v1.GET("/dashboard", dashboardHandler.GetDashboard)
	v1.GET("/transactions", transactionHandler.GetTransactions)
	v1.GET("/transactions/:id", transactionHandler.GetTransactionByID)
	v1.GET("/categories", categoryHandler.GetCategories)

	return router, nil
}
