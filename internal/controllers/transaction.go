package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mini-erp-personal/backend/internal/auth"
	"github.com/mini-erp-personal/backend/internal/httputil"
	"github.com/mini-erp-personal/backend/internal/models"
	mep_uuid "github.com/mini-erp-personal/backend/internal/uuid"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetTransaction)
		r.PUT("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// transactionWithJoins fetches an owned transaction with its account,
// category and item attached.
func transactionWithJoins(userID, id uuid.UUID) (models.Transaction, error) {
	return models.FirstOwned[models.Transaction](
		models.DB.Preload("Account").Preload("Category").Preload("Item"),
		userID, id,
	)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transacciones
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.Response
// @Failure		404	{object}	httputil.Response
// @Failure		500	{object}	httputil.Response
// @Param			id	path		string	true	"ID de la transacción"
// @Router			/api/transacciones/{id} [get]
func GetTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	transaction, err := transactionWithJoins(auth.UserID(c), id)
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusOK, transaction, "")
}

// @Summary		Get transactions
// @Description	Returns the user's transactions, newest first
// @Tags			Transacciones
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.Response
// @Failure		500	{object}	httputil.Response
// @Router			/api/transacciones [get]
// @Param			cuentaId	query	string	false	"Filtrar por cuenta"
// @Param			categoriaId	query	string	false	"Filtrar por categoría"
// @Param			articuloId	query	string	false	"Filtrar por artículo"
// @Param			tipo		query	string	false	"Filtrar por tipo (INGRESO, GASTO, TRANSFERENCIA)"
// @Param			fechaDesde	query	string	false	"Transacciones en este día RFC3339 o después"
// @Param			fechaHasta	query	string	false	"Transacciones en este día RFC3339 o antes"
// @Param			montoMinimo	query	string	false	"Monto mayor o igual"
// @Param			montoMaximo	query	string	false	"Monto menor o igual"
// @Param			moneda		query	string	false	"Filtrar por moneda de la cuenta (ARS, USD)"
// @Param			pagina		query	int		false	"Página, por defecto 1"
// @Param			limite		query	int		false	"Resultados por página, por defecto 20"
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		httputil.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	model := filter.model()

	q := models.DB.
		Preload("Account").Preload("Category").Preload("Item").
		Order("datetime(transacciones.fecha) DESC, datetime(transacciones.created_at) DESC").
		Where("transacciones.user_id = ?", auth.UserID(c)).
		Where(&model, queryFields...)

	if filter.ItemID != mep_uuid.Nil {
		q = q.Where("transacciones.item_id = ?", filter.ItemID.UUID)
	}

	if !filter.FechaDesde.IsZero() {
		q = q.Where("transacciones.fecha >= date(?)", time.Date(filter.FechaDesde.Year(), filter.FechaDesde.Month(), filter.FechaDesde.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.FechaHasta.IsZero() {
		q = q.Where("transacciones.fecha < date(?)", time.Date(filter.FechaHasta.Year(), filter.FechaHasta.Month(), filter.FechaHasta.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if !filter.MontoMinimo.IsZero() {
		q = q.Where("transacciones.monto >= ?", filter.MontoMinimo)
	}

	if !filter.MontoMaximo.IsZero() {
		q = q.Where("transacciones.monto <= ?", filter.MontoMaximo)
	}

	// The currency lives on the account, not the transaction.
	if filter.Moneda != "" {
		q = q.
			Joins("JOIN cuentas ON cuentas.id = transacciones.account_id").
			Where("cuentas.moneda = ?", filter.Moneda)
	}

	page, limit := httputil.PageParams(c)
	q = q.Offset(httputil.Offset(page, limit)).Limit(limit)

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.SuccessList(c, http.StatusOK, transactions, gin.H{
		"paginacion": httputil.Paginate(page, limit, count),
		"resumen":    resumen(transactions),
	})
}

// resumen aggregates the returned page of transactions.
func resumen(transactions []models.Transaction) Resumen {
	r := Resumen{
		TotalIngresos:         decimal.Zero,
		TotalGastos:           decimal.Zero,
		CantidadTransacciones: len(transactions),
	}

	for _, transaction := range transactions {
		switch transaction.Tipo {
		case models.TransactionTypeIncome:
			r.TotalIngresos = r.TotalIngresos.Add(transaction.Monto)
		case models.TransactionTypeExpense:
			r.TotalGastos = r.TotalGastos.Add(transaction.Monto)
		}
	}

	return r
}

// @Summary		Create transaction
// @Description	Creates a transaction and applies its balance and stock effects atomically
// @Tags			Transacciones
// @Accept			json
// @Produce		json
// @Success		201			{object}	httputil.Response
// @Failure		400			{object}	httputil.Response
// @Failure		404			{object}	httputil.Response
// @Failure		500			{object}	httputil.Response
// @Param			transaccion	body		TransactionEditable	true	"Transacción"
// @Router			/api/transacciones [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	transaction, err := models.CreateTransaction(auth.UserID(c), editable.model())
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	// Answer with the account, category and item attached
	transaction, err = transactionWithJoins(auth.UserID(c), transaction.ID)
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusCreated, transaction, "transacción creada correctamente")
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only values to be updated need to be specified. The balance effect is reverted and re-applied; stock is not adjusted.
// @Tags			Transacciones
// @Accept			json
// @Produce		json
// @Success		200			{object}	httputil.Response
// @Failure		400			{object}	httputil.Response
// @Failure		404			{object}	httputil.Response
// @Failure		500			{object}	httputil.Response
// @Param			id			path		string				true	"ID de la transacción"
// @Param			transaccion	body		TransactionEditable	true	"Transacción"
// @Router			/api/transacciones/{id} [put]
func UpdateTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		return
	}

	var update TransactionEditable
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	transaction, err := models.UpdateTransaction(auth.UserID(c), id, update.model(), updateFields)
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	transaction, err = transactionWithJoins(auth.UserID(c), transaction.ID)
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusOK, transaction, "transacción actualizada correctamente")
}

// @Summary		Delete transaction
// @Description	Deletes a transaction, reverting its balance and stock effects atomically
// @Tags			Transacciones
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.Response
// @Failure		404	{object}	httputil.Response
// @Failure		500	{object}	httputil.Response
// @Param			id	path		string	true	"ID de la transacción"
// @Router			/api/transacciones/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	if err := models.DeleteTransaction(auth.UserID(c), id); err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusOK, nil, "transacción eliminada correctamente")
}
