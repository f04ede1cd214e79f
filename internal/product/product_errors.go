package product

import (
	"net/http"

	"github.com/thekidkid/clothing-brand/internal/pkg/apperror"
)

var (
	ErrInvalidProductID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid product id format",
		http.StatusBadRequest,
	)

	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"product not found",
		http.StatusNotFound,
	)

	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"unknown product category",
		http.StatusBadRequest,
	)

	ErrInvalidImageType = apperror.New(
		apperror.CodeInvalidInput,
		"only jpeg, jpg, png and webp images are allowed",
		http.StatusBadRequest,
	)

	ErrImageTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"image exceeds the 5MB limit",
		http.StatusBadRequest,
	)

	ErrProductFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to process product",
		http.StatusInternalServerError,
	)
)
