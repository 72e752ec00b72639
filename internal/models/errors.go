package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("ocurrió un error en el servidor al procesar la solicitud")
	ErrResourceNotFound = errors.New("no existe")
)

// Business rule errors. These are user-correctable, controllers translate
// them to HTTP 400.
var (
	ErrAmountNotPositive    = errors.New("el monto debe ser mayor a 0")
	ErrInsufficientBalance  = errors.New("saldo insuficiente en la cuenta")
	ErrInsufficientStock    = errors.New("stock insuficiente para este producto")
	ErrAccountInactive      = errors.New("cuenta no encontrada o inactiva")
	ErrCategoryInactive     = errors.New("categoría no encontrada o inactiva")
	ErrItemInactive         = errors.New("artículo no encontrado o inactivo")
	ErrCategoryKindMismatch = errors.New("categoría no encontrada o no es del tipo correcto")
	ErrAccountReferenced    = errors.New("no se puede eliminar la cuenta porque tiene transacciones asociadas")
)

// Uniqueness errors, translated from sqlite constraint violations by the
// createUpdateCallback. Controllers map them to HTTP 409.
var (
	ErrAccountNameNotUnique  = errors.New("ya existe una cuenta con este nombre")
	ErrCategoryNameNotUnique = errors.New("ya existe una categoría con este nombre para este tipo")
	ErrItemNameNotUnique     = errors.New("ya existe un artículo activo con este nombre")
	ErrItemBarcodeNotUnique  = errors.New("ya existe un artículo activo con este código de barras")
	ErrEmailNotUnique        = errors.New("ya existe un usuario con este email")
)
