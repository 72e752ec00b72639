package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Pagination is the metadata returned alongside every paginated list.
type Pagination struct {
	Pagina         int   `json:"pagina"`
	Limite         int   `json:"limite"`
	Total          int64 `json:"total"`
	TotalPaginas   int   `json:"totalPaginas"`
	TieneAnterior  bool  `json:"tieneAnterior"`
	TieneSiguiente bool  `json:"tieneSiguiente"`
}

// PageParams reads the "pagina" and "limite" query parameters,
// falling back to the defaults and clamping the limit.
func PageParams(c *gin.Context) (page int, limit int) {
	page, err := strconv.Atoi(c.Query("pagina"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.Query("limite"))
	if err != nil || limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	return page, limit
}

// Paginate builds the pagination metadata for a list of total rows.
func Paginate(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return Pagination{
		Pagina:         page,
		Limite:         limit,
		Total:          total,
		TotalPaginas:   totalPages,
		TieneAnterior:  page > 1,
		TieneSiguiente: page < totalPages,
	}
}

// Offset returns the row offset for the given page.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
