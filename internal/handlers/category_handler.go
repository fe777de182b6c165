package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryForm is the category creation form.
type CategoryForm struct {
	Name string `form:"name" binding:"required,max=80"`
}

// ListCategories renders the category management page.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "categories.html", gin.H{
		"Title":      "Categories",
		"Categories": categories,
	})
}

// CreateCategory adds a category and returns to the list.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var form CategoryForm
	if err := c.ShouldBind(&form); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	if _, err := h.categoryService.CreateCategory(c.Request.Context(), form.Name); err != nil {
		respondWithError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/categories")
}

// DeleteCategory removes an unused category and returns to the list.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/categories")
}

// GetCategories lists categories as JSON
// @Summary     List categories
// @Description All categories ordered by name
// @Tags        categories
// @Produce     json
// @Success     200 {array}  CategoryResponse "List of categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /v1/categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondWithAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCategoryResponses(categories))
}
