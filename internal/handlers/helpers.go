package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// categoryOptions feeds the shared "category_options" template.
type categoryOptions struct {
	Categories []models.Category
	Selected   uint
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// toAppError resolves err to the AppError reported to the client, logging
// internal details along the way.
func toAppError(c *gin.Context, err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		return appErr
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	return apperrors.ErrInternalServer
}

// respondWithError renders the error page using the AppError's status code,
// code, and message. Unexpected errors become a generic internal error.
func respondWithError(c *gin.Context, err error) {
	appErr := toAppError(c, err)
	c.HTML(appErr.StatusCode, "error.html", gin.H{
		"Title":      "Error",
		"Status":     appErr.StatusCode,
		"StatusText": http.StatusText(appErr.StatusCode),
		"Code":       appErr.Code,
		"Message":    appErr.Message,
	})
}

// respondWithAPIError writes a consistent JSON error response.
func respondWithAPIError(c *gin.Context, err error) {
	appErr := toAppError(c, err)
	c.JSON(appErr.StatusCode, ErrorResponse{
		Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message},
	})
}

// bindingError wraps a form or query binding failure as invalid input.
func bindingError(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// formAmount renders a stored magnitude for an input field. Cents are always
// shown, but extra precision is kept so that saving the form unchanged does
// not round the amount.
func formAmount(m float64) string {
	d := decimal.NewFromFloat(m)
	if d.Exponent() >= -2 {
		return d.StringFixed(2)
	}
	return d.String()
}
