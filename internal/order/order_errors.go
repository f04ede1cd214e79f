package order

import (
	"net/http"

	"github.com/thekidkid/clothing-brand/internal/pkg/apperror"
)

var (
	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid order id format",
		http.StatusBadRequest,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"order not found",
		http.StatusNotFound,
	)

	ErrEmptyOrder = apperror.New(
		apperror.CodeInvalidInput,
		"order must contain at least one item",
		http.StatusBadRequest,
	)

	ErrProductUnavailable = apperror.New(
		apperror.CodeConflict,
		"one or more products are unavailable",
		http.StatusConflict,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"unknown order status",
		http.StatusBadRequest,
	)

	ErrOrderFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to process order",
		http.StatusInternalServerError,
	)
)
