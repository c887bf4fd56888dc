package handlers

import (
	"log/slog"
	"net/http"
	"reflect"

	"github.com/SscSPs/bizbooks/internal/apperrors"
	"github.com/SscSPs/bizbooks/internal/core/domain"
	"github.com/SscSPs/bizbooks/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// businessIDParam is the path parameter naming the tenant of every scoped route.
const businessIDParam = "business_id"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError answers with the status the error maps to. Client errors echo the
// error text; server errors are logged and answered with fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: fallback})
		return
	}
	logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// requestScope pulls the logger, business id and authenticated user id for a
// tenant-scoped request. It writes the error response itself and reports false
// when the request cannot proceed.
func requestScope(c *gin.Context) (*slog.Logger, string, string, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	businessID := c.Param(businessIDParam)
	if businessID == "" {
		logger.Error("Business ID missing from path")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Business ID required in path"})
		return logger, "", "", false
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return logger, "", "", false
	}

	return logger.With(slog.String("business_id", businessID), slog.String("user_id", userID)), businessID, userID, true
}

// RegisterValidators adds the domain rules to gin's validator engine. It is
// safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	// Money is validated through its exact decimal string so extra places are not rounded away.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if m, ok := field.Interface().(domain.Money); ok {
			return m.Decimal().String()
		}
		return nil
	}, domain.Money{})
	return v.RegisterValidation("money_positive", func(fl validator.FieldLevel) bool {
		m, err := domain.ParseMoney(fl.Field().String())
		return err == nil && m.IsPositive()
	})
}
