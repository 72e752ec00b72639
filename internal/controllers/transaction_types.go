package controllers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mini-erp-personal/backend/internal/models"
	mep_uuid "github.com/mini-erp-personal/backend/internal/uuid"
)

// TransactionEditable contains all fields of a transaction a client
// may set. The Go field names match models.Transaction so that the
// body field names from GetBodyFields can drive the partial update.
type TransactionEditable struct {
	AccountID   uuid.UUID              `json:"cuentaId"`
	CategoryID  uuid.UUID              `json:"categoriaId"`
	ItemID      *uuid.UUID             `json:"articuloId"`
	Tipo        models.TransactionType `json:"tipo"`
	Monto       decimal.Decimal        `json:"monto"`
	Descripcion string                 `json:"descripcion"`
	Fecha       time.Time              `json:"fecha"`
	Notas       string                 `json:"notas"`
}

func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		AccountID:   editable.AccountID,
		CategoryID:  editable.CategoryID,
		ItemID:      editable.ItemID,
		Tipo:        editable.Tipo,
		Monto:       editable.Monto,
		Descripcion: editable.Descripcion,
		Fecha:       editable.Fecha,
		Notas:       editable.Notas,
	}
}

// TransactionQueryFilter contains the fields a transaction list can be
// filtered with. Fields marked filterField:"false" need explicit
// query logic in GetTransactions.
type TransactionQueryFilter struct {
	AccountID   mep_uuid.UUID          `form:"cuentaId"`
	CategoryID  mep_uuid.UUID          `form:"categoriaId"`
	ItemID      mep_uuid.UUID          `form:"articuloId" filterField:"false"`
	Tipo        models.TransactionType `form:"tipo"`
	FechaDesde  time.Time              `form:"fechaDesde" filterField:"false"`
	FechaHasta  time.Time              `form:"fechaHasta" filterField:"false"`
	MontoMinimo decimal.Decimal        `form:"montoMinimo" filterField:"false"`
	MontoMaximo decimal.Decimal        `form:"montoMaximo" filterField:"false"`
	Moneda      models.Currency        `form:"moneda" filterField:"false"`
	Pagina      int                    `form:"pagina" filterField:"false"`
	Limite      int                    `form:"limite" filterField:"false"`
}

func (filter TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		AccountID:  filter.AccountID.UUID,
		CategoryID: filter.CategoryID.UUID,
		Tipo:       filter.Tipo,
	}
}

// Resumen is the per-page aggregation of a transaction list.
type Resumen struct {
	TotalIngresos         decimal.Decimal `json:"totalIngresos"`
	TotalGastos           decimal.Decimal `json:"totalGastos"`
	CantidadTransacciones int             `json:"cantidadTransacciones"`
}
