package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/wallet_api/internal/apperrors"
	"github.com/SscSPs/wallet_api/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const internalErrorMessage = "Internal server error"

func respond[T any](c *gin.Context, code int, message string, data T) {
	status := dto.StatusSuccess
	if code == http.StatusCreated {
		status = dto.StatusCreated
	}
	c.JSON(code, dto.Response[T]{Status: status, Code: code, Message: message, Data: data})
}

// respondError maps err onto its status code. Server-side failures are logged
// with detail and answered with a generic message.
func respondError(c *gin.Context, logger *slog.Logger, err error, notFoundMessage string) {
	status := apperrors.HTTPStatus(err)
	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: internalErrorMessage})
	case status == http.StatusNotFound && notFoundMessage != "":
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: notFoundMessage})
	default:
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: err.Error()})
	}
}

// respondBindError answers a failed ShouldBind* call with 400.
func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: bindErrorMessage(what, err)})
}

func bindErrorMessage(what string, err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid " + what + ": " + err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return "please provide all required fields (missing: " + fe.Field() + ")"
	case "walletdate":
		return "date must use the DD-MM-YYYY format"
	case "uuid":
		return "invalid " + fe.Field()
	default:
		return "Invalid " + what + ": " + fe.Error()
	}
}
