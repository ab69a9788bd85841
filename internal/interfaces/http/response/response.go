package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "orderdesk.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// statusOf maps bare domain sentinels to HTTP statuses. AppErrors carry
// their own status and skip this table.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrInvalidTransition),
		errors.Is(err, domainerrors.ErrEmptyBasket):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrInvalidCredentials),
		errors.Is(err, domainerrors.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden),
		errors.Is(err, domainerrors.ErrEmailNotVerified):
		return http.StatusForbidden
	case errors.Is(err, domainerrors.ErrPaymentFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error sends an error response
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.NewAppError(statusOf(err), err.Error(), err)
	}

	status := appErr.Code
	message := appErr.Message
	if status == http.StatusInternalServerError {
		// Internals are logged server-side; callers get a generic message
		message = "internal server error"
	}

	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
		"error":   message,
	})
}

// ErrorWithStatus sends an error response with a specific status and message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
		"error":   message,
	})
}
