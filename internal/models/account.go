package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AccountType classifies an account.
type AccountType string

const (
	AccountTypeCash       AccountType = "EFECTIVO"
	AccountTypeBank       AccountType = "BANCO"
	AccountTypeCreditCard AccountType = "TARJETA_CREDITO"
	AccountTypeInvestment AccountType = "INVERSION"
	AccountTypeOther      AccountType = "OTRO"
)

// Currency is one of the supported account currencies.
type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

// Account represents a balance-holding container in one currency.
//
// Saldo is materialized: it is seeded on creation and from then on only
// mutated by the transaction unit of work, never recomputed on read.
type Account struct {
	DefaultModel
	User        User            `json:"-"`
	UserID      uuid.UUID       `json:"usuarioId" gorm:"uniqueIndex:cuentas_user_id_nombre"`
	Nombre      string          `json:"nombre" gorm:"uniqueIndex:cuentas_user_id_nombre"`
	Tipo        AccountType     `json:"tipo"`
	Saldo       decimal.Decimal `json:"saldo" gorm:"type:DECIMAL(20,8)"`
	Descripcion string          `json:"descripcion"`
	Color       string          `json:"color"`
	Moneda      Currency        `json:"moneda"`
	Activa      bool            `json:"activa" gorm:"default:true"`
}

func (Account) TableName() string {
	return "cuentas"
}

// BeforeSave trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Nombre = strings.TrimSpace(a.Nombre)
	a.Descripcion = strings.TrimSpace(a.Descripcion)

	return nil
}

// TransactionCount returns the number of transactions referencing this
// account.
func (a Account) TransactionCount(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Transaction{}).Where(&Transaction{AccountID: a.ID}).Count(&count).Error

	return count, err
}
