package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	categoryService    services.CategoryServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, categoryService services.CategoryServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, categoryService: categoryService}
}

// TransactionForm is the create/edit form. Amount is kept as text so a
// non-numeric value fails validation instead of binding.
type TransactionForm struct {
	Date        string `form:"date" binding:"omitempty,isodate"`
	Description string `form:"description" binding:"required,max=200"`
	Amount      string `form:"amount" binding:"required,numeric"`
	Type        string `form:"type" binding:"required,transaction_type"`
	CategoryID  uint   `form:"category_id" binding:"required"`
}

func (f TransactionForm) input() (services.TransactionInput, error) {
	amount, err := strconv.ParseFloat(f.Amount, 64)
	if err != nil {
		return services.TransactionInput{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be a number")
	}

	input := services.TransactionInput{
		Description: f.Description,
		Amount:      amount,
		Type:        models.TransactionType(f.Type),
		CategoryID:  f.CategoryID,
	}
	if f.Date != "" {
		date, err := models.ParseDate(f.Date)
		if err != nil {
			return services.TransactionInput{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "date must be YYYY-MM-DD")
		}
		input.Date = &date
	}
	return input, nil
}

func (h *TransactionHandler) bindInput(c *gin.Context) (services.TransactionInput, error) {
	var form TransactionForm
	if err := c.ShouldBind(&form); err != nil {
		return services.TransactionInput{}, bindingError(err)
	}
	return form.input()
}

// ListTransactions renders every transaction, newest first, with the entry form.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	ctx := c.Request.Context()

	transactions, err := h.transactionService.ListTransactions(ctx)
	if err != nil {
		respondWithError(c, err)
		return
	}
	categories, err := h.categoryService.ListCategories(ctx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "transactions.html", gin.H{
		"Title":           "Transactions",
		"Transactions":    transactions,
		"CategoryOptions": categoryOptions{Categories: categories},
	})
}

// CreateTransaction records a transaction and returns to the list.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	input, err := h.bindInput(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.transactionService.CreateTransaction(c.Request.Context(), input); err != nil {
		respondWithError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/transactions")
}

// EditTransaction renders the edit form with the magnitude of the stored
// amount and the type derived from its sign.
func (h *TransactionHandler) EditTransaction(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(ctx, id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	categories, err := h.categoryService.ListCategories(ctx)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.HTML(http.StatusOK, "edit_transaction.html", gin.H{
		"Title":           "Edit transaction",
		"Transaction":     tx,
		"Amount":          formAmount(models.Magnitude(tx.Amount)),
		"Type":            string(tx.Type()),
		"CategoryOptions": categoryOptions{Categories: categories, Selected: tx.CategoryID},
	})
}

// UpdateTransaction replaces a transaction's fields and returns to the list.
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	input, err := h.bindInput(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if _, err := h.transactionService.UpdateTransaction(c.Request.Context(), id, input); err != nil {
		respondWithError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/transactions")
}

// DeleteTransaction removes a transaction and returns to the list.
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/transactions")
}

// GetTransactions lists transactions as JSON
// @Summary     List transactions
// @Description Every transaction, newest first. Amounts are signed: positive is income, negative is expense.
// @Tags        transactions
// @Produce     json
// @Success     200 {array}  TransactionResponse "List of transactions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /v1/transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	transactions, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		respondWithAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponses(transactions))
}

// GetTransactionByID returns one transaction as JSON
// @Summary     Get a transaction
// @Tags        transactions
// @Produce     json
// @Param       id path int true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /v1/transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithAPIError(c, err)
		return
	}

	tx, err := h.transactionService.GetTransactionByID(c.Request.Context(), id)
	if err != nil {
		respondWithAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponse(*tx))
}
