package controllers

import (
	"github.com/shopspring/decimal"

	"github.com/mini-erp-personal/backend/internal/models"
)

// AccountEditable contains all fields of an account a client may set.
// Saldo is absent: balances only move through transactions.
type AccountEditable struct {
	Nombre      string             `json:"nombre"`
	Tipo        models.AccountType `json:"tipo"`
	Descripcion string             `json:"descripcion"`
	Color       string             `json:"color"`
	Moneda      models.Currency    `json:"moneda"`
	Activa      bool               `json:"activa"`
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		Nombre:      editable.Nombre,
		Tipo:        editable.Tipo,
		Descripcion: editable.Descripcion,
		Color:       editable.Color,
		Moneda:      editable.Moneda,
		Activa:      editable.Activa,
	}
}

// AccountCreate is the payload to create an account. saldoInicial is
// seeded through a synthetic income transaction, not written directly.
type AccountCreate struct {
	AccountEditable
	SaldoInicial decimal.Decimal `json:"saldoInicial"`
}

// AccountQueryFilter contains the fields an account list can be
// filtered with.
type AccountQueryFilter struct {
	Tipo   models.AccountType `form:"tipo"`
	Moneda models.Currency    `form:"moneda"`
	Activa bool               `form:"activa"`
}

func (filter AccountQueryFilter) model() models.Account {
	return models.Account{
		Tipo:   filter.Tipo,
		Moneda: filter.Moneda,
		Activa: filter.Activa,
	}
}
