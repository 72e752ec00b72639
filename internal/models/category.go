package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryType classifies categories and the items they contain.
type CategoryType string

const (
	CategoryTypeProduct CategoryType = "PRODUCTO"
	CategoryTypeService CategoryType = "SERVICIO"
	CategoryTypeExpense CategoryType = "GASTO"
)

// Category classifies items and transactions, scoped by kind.
type Category struct {
	DefaultModel
	User   User         `json:"-"`
	UserID uuid.UUID    `json:"usuarioId" gorm:"uniqueIndex:categorias_user_id_tipo_nombre"`
	Tipo   CategoryType `json:"tipo" gorm:"uniqueIndex:categorias_user_id_tipo_nombre"`
	Nombre string       `json:"nombre" gorm:"uniqueIndex:categorias_user_id_tipo_nombre"`
	Color  string       `json:"color"`
	Icono  string       `json:"icono"`
	Activa bool         `json:"activa" gorm:"default:true"`
}

func (Category) TableName() string {
	return "categorias"
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Nombre = strings.TrimSpace(c.Nombre)
	if c.Color == "" {
		c.Color = "#1890ff"
	}

	return nil
}
