// Package controllers implements the HTTP API on top of the models
// package.
package controllers

import (
	"errors"
	"net/http"

	"github.com/mini-erp-personal/backend/internal/models"
)

// status translates a models error into the HTTP status code of the
// response.
//
// Ownership is never revealed: a resource belonging to another user
// maps to 404 exactly like a resource that does not exist.
func status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, models.ErrAccountInactive),
		errors.Is(err, models.ErrCategoryInactive),
		errors.Is(err, models.ErrItemInactive):
		return http.StatusNotFound

	case errors.Is(err, models.ErrAmountNotPositive),
		errors.Is(err, models.ErrInsufficientBalance),
		errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrCategoryKindMismatch),
		errors.Is(err, models.ErrAccountReferenced):
		return http.StatusBadRequest

	case errors.Is(err, models.ErrAccountNameNotUnique),
		errors.Is(err, models.ErrCategoryNameNotUnique),
		errors.Is(err, models.ErrItemNameNotUnique),
		errors.Is(err, models.ErrItemBarcodeNotUnique),
		errors.Is(err, models.ErrEmailNotUnique):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
