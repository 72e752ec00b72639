package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mini-erp-personal/backend/internal/auth"
	"github.com/mini-erp-personal/backend/internal/httputil"
	"github.com/mini-erp-personal/backend/internal/models"
)

// RegisterItemRoutes registers the routes for catalog items with the
// RouterGroup that is passed.
func RegisterItemRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetItems)
		r.POST("", CreateItem)
	}

	// Item with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetItem)
		r.PUT("/:id", UpdateItem)
		r.DELETE("/:id", DeleteItem)
	}
}

// @Summary		Get item
// @Description	Returns a specific catalog item
// @Tags			Articulos
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.Response
// @Failure		404	{object}	httputil.Response
// @Failure		500	{object}	httputil.Response
// @Param			id	path		string	true	"ID del artículo"
// @Router			/api/articulos/{id} [get]
func GetItem(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	item, err := models.FirstOwned[models.Item](models.DB, auth.UserID(c), id)
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusOK, item, "")
}

// @Summary		Get items
// @Description	Returns the user's catalog with inventory statistics
// @Tags			Articulos
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.Response
// @Failure		500	{object}	httputil.Response
// @Router			/api/articulos [get]
// @Param			categoriaId	query	string	false	"Filtrar por categoría"
// @Param			tipo		query	string	false	"Filtrar por tipo (PRODUCTO, SERVICIO, GASTO)"
// @Param			activo		query	bool	false	"Filtrar por estado"
// @Param			stockBajo	query	bool	false	"Solo productos en o bajo su stock mínimo"
// @Param			busqueda	query	string	false	"Buscar en nombre, descripción y código de barras"
// @Param			pagina		query	int		false	"Página, por defecto 1"
// @Param			limite		query	int		false	"Resultados por página, por defecto 20"
func GetItems(c *gin.Context) {
	var filter ItemQueryFilter
	if err := c.Bind(&filter); err != nil {
		httputil.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	model := filter.model()

	userID := auth.UserID(c)
	page, limit := httputil.PageParams(c)

	q := models.DB.
		Order("nombre ASC").
		Where("user_id = ?", userID).
		Where(&model, queryFields...)

	if filter.StockBajo {
		q = q.Where("tipo = ? AND stock <= stock_minimo", models.ItemTypeProduct)
	}

	if filter.Busqueda != "" {
		like := fmt.Sprintf("%%%s%%", filter.Busqueda)
		q = q.Where("nombre LIKE ? OR descripcion LIKE ? OR codigo_barras LIKE ?", like, like, like)
	}

	q = q.Offset(httputil.Offset(page, limit)).Limit(limit)

	var items []models.Item
	if err := q.Find(&items).Error; err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	var count int64
	if err := q.Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	stats, err := itemStats(userID)
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.SuccessList(c, http.StatusOK, items, gin.H{
		"paginacion":   httputil.Paginate(page, limit, count),
		"estadisticas": stats,
	})
}

// itemStats aggregates the user's active catalog.
func itemStats(userID uuid.UUID) (ItemStats, error) {
	var stats ItemStats

	active := models.DB.Model(&models.Item{}).Where("user_id = ? AND activo = ?", userID, true)

	counts := []struct {
		tipo models.ItemType
		dest *int64
	}{
		{models.ItemTypeProduct, &stats.TotalProductos},
		{models.ItemTypeService, &stats.TotalServicios},
		{models.ItemTypeExpense, &stats.TotalGastos},
	}
	for _, count := range counts {
		err := active.Session(&gorm.Session{}).Where("tipo = ?", count.tipo).Count(count.dest).Error
		if err != nil {
			return ItemStats{}, err
		}
	}

	err := active.Session(&gorm.Session{}).
		Where("tipo = ? AND stock <= stock_minimo", models.ItemTypeProduct).
		Count(&stats.StockBajo).Error
	if err != nil {
		return ItemStats{}, err
	}

	var products []models.Item
	err = models.DB.
		Where("user_id = ? AND activo = ? AND tipo = ?", userID, true, models.ItemTypeProduct).
		Find(&products).Error
	if err != nil {
		return ItemStats{}, err
	}

	stats.ValorInventario = decimal.Zero
	stats.CostoInventario = decimal.Zero
	for _, product := range products {
		units := decimal.NewFromInt(product.Stock)
		stats.ValorInventario = stats.ValorInventario.Add(product.Precio.Mul(units))
		stats.CostoInventario = stats.CostoInventario.Add(product.Costo.Mul(units))
	}

	return stats, nil
}

// @Summary		Create item
// @Description	Creates a catalog item. The category must be of the same type as the item.
// @Tags			Articulos
// @Accept			json
// @Produce		json
// @Success		201			{object}	httputil.Response
// @Failure		400			{object}	httputil.Response
// @Failure		409			{object}	httputil.Response
// @Failure		500			{object}	httputil.Response
// @Param			articulo	body		ItemEditable	true	"Artículo"
// @Router			/api/articulos [post]
func CreateItem(c *gin.Context) {
	var editable ItemEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	item, err := models.CreateItem(auth.UserID(c), editable.model())
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusCreated, item, "artículo creado correctamente")
}

// @Summary		Update item
// @Description	Updates a catalog item. Only values to be updated need to be specified. A type change resets the fields the new type does not carry.
// @Tags			Articulos
// @Accept			json
// @Produce		json
// @Success		200			{object}	httputil.Response
// @Failure		400			{object}	httputil.Response
// @Failure		404			{object}	httputil.Response
// @Failure		409			{object}	httputil.Response
// @Failure		500			{object}	httputil.Response
// @Param			id			path		string			true	"ID del artículo"
// @Param			articulo	body		ItemEditable	true	"Artículo"
// @Router			/api/articulos/{id} [put]
func UpdateItem(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ItemEditable{})
	if err != nil {
		return
	}

	var update ItemEditable
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	item, err := models.UpdateItem(auth.UserID(c), id, update.model(), updateFields)
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusOK, item, "artículo actualizado correctamente")
}

// @Summary		Delete item
// @Description	Deactivates a catalog item. Items are never removed, transactions may reference them.
// @Tags			Articulos
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.Response
// @Failure		404	{object}	httputil.Response
// @Failure		500	{object}	httputil.Response
// @Param			id	path		string	true	"ID del artículo"
// @Router			/api/articulos/{id} [delete]
func DeleteItem(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	if _, err := models.DeactivateItem(auth.UserID(c), id); err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusOK, nil, "artículo desactivado correctamente")
}
