package controllers

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mini-erp-personal/backend/internal/models"
	mep_uuid "github.com/mini-erp-personal/backend/internal/uuid"
)

// ItemEditable contains all fields of a catalog item a client may set.
// Stock moves through transactions after creation, the field here only
// sets the opening stock.
type ItemEditable struct {
	CategoryID   uuid.UUID       `json:"categoriaId"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	Precio       decimal.Decimal `json:"precio"`
	Costo        decimal.Decimal `json:"costo"`
	Stock        int64           `json:"stock"`
	StockMinimo  int64           `json:"stockMinimo"`
	Unidad       string          `json:"unidad"`
	CodigoBarras string          `json:"codigoBarras"`
	Tipo         models.ItemType `json:"tipo"`
	EsRecurrente bool            `json:"esRecurrente"`
	Frecuencia   string          `json:"frecuencia"`
}

func (editable ItemEditable) model() models.Item {
	return models.Item{
		CategoryID:   editable.CategoryID,
		Nombre:       editable.Nombre,
		Descripcion:  editable.Descripcion,
		Precio:       editable.Precio,
		Costo:        editable.Costo,
		Stock:        editable.Stock,
		StockMinimo:  editable.StockMinimo,
		Unidad:       editable.Unidad,
		CodigoBarras: editable.CodigoBarras,
		Tipo:         editable.Tipo,
		EsRecurrente: editable.EsRecurrente,
		Frecuencia:   editable.Frecuencia,
	}
}

// ItemQueryFilter contains the fields an item list can be filtered
// with.
type ItemQueryFilter struct {
	CategoryID mep_uuid.UUID   `form:"categoriaId"`
	Tipo       models.ItemType `form:"tipo"`
	Activo     bool            `form:"activo"`
	StockBajo  bool            `form:"stockBajo" filterField:"false"`
	Busqueda   string          `form:"busqueda" filterField:"false"`
}

func (filter ItemQueryFilter) model() models.Item {
	return models.Item{
		CategoryID: filter.CategoryID.UUID,
		Tipo:       filter.Tipo,
		Activo:     filter.Activo,
	}
}

// ItemStats is the per-catalog aggregation returned with item lists.
// Inventory totals only count active products.
type ItemStats struct {
	TotalProductos  int64           `json:"totalProductos"`
	TotalServicios  int64           `json:"totalServicios"`
	TotalGastos     int64           `json:"totalGastos"`
	StockBajo       int64           `json:"stockBajo"`
	ValorInventario decimal.Decimal `json:"valorInventario"`
	CostoInventario decimal.Decimal `json:"costoInventario"`
}
