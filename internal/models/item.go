package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ItemType classifies a catalog item.
type ItemType string

const (
	ItemTypeProduct ItemType = "PRODUCTO"
	ItemTypeService ItemType = "SERVICIO"
	ItemTypeExpense ItemType = "GASTO"
)

// Item is a catalog entry a transaction may reference: a product with
// stock, a service, or a recurring expense type.
//
// Name and barcode uniqueness only applies to the set of active items,
// so it is checked in the item use cases instead of a database index.
type Item struct {
	DefaultModel
	User         User            `json:"-"`
	UserID       uuid.UUID       `json:"usuarioId"`
	Category     Category        `json:"-"`
	CategoryID   uuid.UUID       `json:"categoriaId"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	Precio       decimal.Decimal `json:"precio" gorm:"type:DECIMAL(20,8)"`
	Costo        decimal.Decimal `json:"costo" gorm:"type:DECIMAL(20,8)"`
	Stock        int64           `json:"stock"`
	StockMinimo  int64           `json:"stockMinimo"`
	Unidad       string          `json:"unidad"`
	CodigoBarras string          `json:"codigoBarras"`
	Tipo         ItemType        `json:"tipo"`
	EsRecurrente bool            `json:"esRecurrente"`
	Frecuencia   string          `json:"frecuencia"`
	Activo       bool            `json:"activo" gorm:"default:true"`
}

func (Item) TableName() string {
	return "articulos"
}

// BeforeSave enforces per-type consistency regardless of client input:
// only products carry stock and a barcode, only expense types recur.
func (i *Item) BeforeSave(_ *gorm.DB) error {
	i.Nombre = strings.TrimSpace(i.Nombre)
	i.Descripcion = strings.TrimSpace(i.Descripcion)
	i.CodigoBarras = strings.TrimSpace(i.CodigoBarras)

	if i.Unidad == "" {
		i.Unidad = "unidad"
	}

	switch i.Tipo {
	case ItemTypeService:
		i.Stock = 0
		i.StockMinimo = 0
		i.CodigoBarras = ""
		i.EsRecurrente = false
		i.Frecuencia = ""
	case ItemTypeExpense:
		i.Stock = 0
		i.StockMinimo = 0
		i.CodigoBarras = ""
	case ItemTypeProduct:
		i.EsRecurrente = false
		i.Frecuencia = ""
	}

	return nil
}

// LowStock reports whether the item is a product at or below its
// minimum stock threshold.
func (i Item) LowStock() bool {
	return i.Tipo == ItemTypeProduct && i.Stock <= i.StockMinimo
}

// itemCollision checks name and barcode uniqueness within the user's
// active items. exclude skips the item itself on updates.
func itemCollision(db *gorm.DB, userID uuid.UUID, nombre, codigoBarras string, exclude uuid.UUID) error {
	var count int64

	q := db.Model(&Item{}).Where("user_id = ? AND nombre = ? AND activo = ?", userID, nombre, true)
	if exclude != uuid.Nil {
		q = q.Where("id != ?", exclude)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrItemNameNotUnique
	}

	if codigoBarras == "" {
		return nil
	}

	q = db.Model(&Item{}).Where("user_id = ? AND codigo_barras = ? AND activo = ?", userID, codigoBarras, true)
	if exclude != uuid.Nil {
		q = q.Where("id != ?", exclude)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrItemBarcodeNotUnique
	}

	return nil
}

// CreateItem validates that the category matches the item type and that
// name and barcode are unique among the user's active items, then
// persists the item.
func CreateItem(userID uuid.UUID, item Item) (Item, error) {
	var category Category
	err := DB.First(&category, "id = ? AND user_id = ? AND activa = ? AND tipo = ?",
		item.CategoryID, userID, true, CategoryType(item.Tipo)).Error
	if err != nil {
		return Item{}, ErrCategoryKindMismatch
	}

	if err := itemCollision(DB, userID, strings.TrimSpace(item.Nombre), strings.TrimSpace(item.CodigoBarras), uuid.Nil); err != nil {
		return Item{}, err
	}

	item.UserID = userID
	item.Activo = true

	err = DB.Create(&item).Error
	if err != nil {
		return Item{}, err
	}

	return item, nil
}

// UpdateItem applies a partial update with the same collision checks as
// CreateItem, excluding the item itself.
func UpdateItem(userID, id uuid.UUID, update Item, fields []any) (Item, error) {
	item, err := FirstOwned[Item](DB, userID, id)
	if err != nil {
		return Item{}, err
	}

	if len(fields) == 0 {
		return item, nil
	}

	newTipo := item.Tipo
	if slices.Contains(fields, any("Tipo")) {
		newTipo = update.Tipo
	}

	if slices.Contains(fields, any("CategoryID")) && update.CategoryID != item.CategoryID {
		var category Category
		err := DB.First(&category, "id = ? AND user_id = ? AND activa = ? AND tipo = ?",
			update.CategoryID, userID, true, CategoryType(newTipo)).Error
		if err != nil {
			return Item{}, ErrCategoryKindMismatch
		}
	}

	nombre := item.Nombre
	if slices.Contains(fields, any("Nombre")) {
		nombre = strings.TrimSpace(update.Nombre)
	}

	codigoBarras := item.CodigoBarras
	if slices.Contains(fields, any("CodigoBarras")) {
		codigoBarras = strings.TrimSpace(update.CodigoBarras)
	}

	if err := itemCollision(DB, userID, nombre, codigoBarras, item.ID); err != nil {
		return Item{}, err
	}

	// A type change resets the type-specific fields server-side even
	// when the client did not send them, see Item.BeforeSave.
	if slices.Contains(fields, any("Tipo")) {
		switch newTipo {
		case ItemTypeService:
			fields = append(fields, "Stock", "StockMinimo", "CodigoBarras", "EsRecurrente", "Frecuencia")
		case ItemTypeExpense:
			fields = append(fields, "Stock", "StockMinimo", "CodigoBarras")
		case ItemTypeProduct:
			fields = append(fields, "EsRecurrente", "Frecuencia")
		}
	}

	err = DB.Model(&item).Select("", fields...).Updates(update).Error
	if err != nil {
		return Item{}, err
	}

	return item, nil
}

// DeactivateItem soft-deletes an item. Items are never physically
// removed, transactions may still reference them.
func DeactivateItem(userID, id uuid.UUID) (Item, error) {
	item, err := FirstOwned[Item](DB, userID, id)
	if err != nil {
		return Item{}, err
	}

	err = DB.Model(&item).Update("activo", false).Error
	if err != nil {
		return Item{}, err
	}

	return item, nil
}
