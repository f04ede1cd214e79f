package payment

import (
	"net/http"

	"github.com/thekidkid/clothing-brand/internal/pkg/apperror"
)

var (
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidSignature = apperror.New(
		apperror.CodeUnauthorized,
		"webhook signature verification failed",
		http.StatusBadRequest,
	)

	ErrPaymentFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to process payment",
		http.StatusInternalServerError,
	)
)
