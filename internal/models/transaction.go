package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType determines the sign of a transaction's effect on the
// account balance.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "INGRESO"
	TransactionTypeExpense  TransactionType = "GASTO"
	TransactionTypeTransfer TransactionType = "TRANSFERENCIA"
)

// Transaction is a single income or expense event. Monto is always
// stored positive, the sign of its balance effect is derived from Tipo.
type Transaction struct {
	DefaultModel
	User        User            `json:"-"`
	UserID      uuid.UUID       `json:"usuarioId"`
	Account     *Account        `json:"cuenta,omitempty"`
	AccountID   uuid.UUID       `json:"cuentaId"`
	Category    *Category       `json:"categoria,omitempty"`
	CategoryID  uuid.UUID       `json:"categoriaId"`
	Item        *Item           `json:"articulo,omitempty"`
	ItemID      *uuid.UUID      `json:"articuloId"`
	Tipo        TransactionType `json:"tipo"`
	Monto       decimal.Decimal `json:"monto" gorm:"type:DECIMAL(20,8)"`
	Descripcion string          `json:"descripcion"`
	Fecha       time.Time       `json:"fecha"`
	Notas       string          `json:"notas"`
}

func (Transaction) TableName() string {
	return "transacciones"
}

// BeforeSave sets the timezone for Fecha to UTC.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	if t.Fecha.IsZero() {
		t.Fecha = time.Now().In(time.UTC)
	} else {
		t.Fecha = t.Fecha.In(time.UTC)
	}

	t.Descripcion = strings.TrimSpace(t.Descripcion)
	t.Notas = strings.TrimSpace(t.Notas)

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	_ = t.DefaultModel.AfterFind(tx)
	t.Fecha = t.Fecha.In(time.UTC)

	return nil
}

// SaldoDelta returns the signed effect a transaction of the given type
// and amount has on its account balance. Transfers are recorded but do
// not move the balance by themselves.
func SaldoDelta(tipo TransactionType, monto decimal.Decimal) decimal.Decimal {
	switch tipo {
	case TransactionTypeIncome:
		return monto
	case TransactionTypeExpense:
		return monto.Neg()
	default:
		return decimal.Zero
	}
}

// IsProductSale reports whether the transaction represents the sale of
// one unit of a product item. item must be the transaction's linked
// item, it may be nil.
func (t Transaction) IsProductSale(item *Item) bool {
	return item != nil && t.ItemID != nil && t.Tipo == TransactionTypeIncome && item.Tipo == ItemTypeProduct
}
