package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mini-erp-personal/backend/internal/auth"
	"github.com/mini-erp-personal/backend/internal/httputil"
	"github.com/mini-erp-personal/backend/internal/models"
)

// CategoryEditable contains all fields of a category a client may set.
type CategoryEditable struct {
	Nombre string              `json:"nombre"`
	Tipo   models.CategoryType `json:"tipo"`
	Color  string              `json:"color"`
	Icono  string              `json:"icono"`
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Nombre: editable.Nombre,
		Tipo:   editable.Tipo,
		Color:  editable.Color,
		Icono:  editable.Icono,
	}
}

// CategoryStats is the aggregation returned with category lists.
type CategoryStats struct {
	Total       int64 `json:"total"`
	PorProducto int64 `json:"porProducto"`
	PorServicio int64 `json:"porServicio"`
	PorGasto    int64 `json:"porGasto"`
}

// RegisterCategoryRoutes registers the routes for categories with the
// RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetCategories)
	r.POST("", CreateCategory)
}

// @Summary		Get categories
// @Description	Returns the user's active categories grouped by type
// @Tags			Categorias
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.Response
// @Failure		500	{object}	httputil.Response
// @Router			/api/categorias [get]
// @Param			tipo	query	string	false	"Filtrar por tipo (PRODUCTO, SERVICIO, GASTO)"
func GetCategories(c *gin.Context) {
	userID := auth.UserID(c)

	q := models.DB.
		Order("nombre ASC").
		Where("user_id = ? AND activa = ?", userID, true)

	if tipo := c.Query("tipo"); tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}

	var categories []models.Category
	if err := q.Find(&categories).Error; err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	grouped := map[models.CategoryType][]models.Category{
		models.CategoryTypeProduct: {},
		models.CategoryTypeService: {},
		models.CategoryTypeExpense: {},
	}
	stats := CategoryStats{Total: int64(len(categories))}

	for _, category := range categories {
		grouped[category.Tipo] = append(grouped[category.Tipo], category)

		switch category.Tipo {
		case models.CategoryTypeProduct:
			stats.PorProducto++
		case models.CategoryTypeService:
			stats.PorServicio++
		case models.CategoryTypeExpense:
			stats.PorGasto++
		}
	}

	httputil.SuccessList(c, http.StatusOK, categories, gin.H{
		"agrupadas":    grouped,
		"estadisticas": stats,
	})
}

// @Summary		Create category
// @Description	Creates a category. Name must be unique per user and type.
// @Tags			Categorias
// @Accept			json
// @Produce		json
// @Success		201			{object}	httputil.Response
// @Failure		400			{object}	httputil.Response
// @Failure		409			{object}	httputil.Response
// @Failure		500			{object}	httputil.Response
// @Param			categoria	body		CategoryEditable	true	"Categoría"
// @Router			/api/categorias [post]
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	category := editable.model()
	category.UserID = auth.UserID(c)
	category.Activa = true

	if err := models.DB.Create(&category).Error; err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusCreated, category, "categoría creada correctamente")
}
