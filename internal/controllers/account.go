package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mini-erp-personal/backend/internal/auth"
	"github.com/mini-erp-personal/backend/internal/httputil"
	"github.com/mini-erp-personal/backend/internal/models"
)

// RegisterAccountRoutes registers the routes for accounts with the
// RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetAccounts)
		r.POST("", CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
		r.GET("/:id", GetAccount)
		r.PUT("/:id", UpdateAccount)
		r.DELETE("/:id", DeleteAccount)
	}
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Cuentas
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.Response
// @Failure		404	{object}	httputil.Response
// @Failure		500	{object}	httputil.Response
// @Param			id	path		string	true	"ID de la cuenta"
// @Router			/api/cuentas/{id} [get]
func GetAccount(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	account, err := models.FirstOwned[models.Account](models.DB, auth.UserID(c), id)
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusOK, account, "")
}

// @Summary		Get accounts
// @Description	Returns the user's accounts
// @Tags			Cuentas
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.Response
// @Failure		500	{object}	httputil.Response
// @Router			/api/cuentas [get]
// @Param			tipo	query	string	false	"Filtrar por tipo de cuenta"
// @Param			moneda	query	string	false	"Filtrar por moneda (ARS, USD)"
// @Param			activa	query	bool	false	"Filtrar por estado"
// @Param			pagina	query	int		false	"Página, por defecto 1"
// @Param			limite	query	int		false	"Resultados por página, por defecto 20"
func GetAccounts(c *gin.Context) {
	var filter AccountQueryFilter
	if err := c.Bind(&filter); err != nil {
		httputil.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)
	model := filter.model()

	page, limit := httputil.PageParams(c)

	q := models.DB.
		Order("nombre ASC").
		Where("user_id = ?", auth.UserID(c)).
		Where(&model, queryFields...).
		Offset(httputil.Offset(page, limit)).
		Limit(limit)

	var accounts []models.Account
	if err := q.Find(&accounts).Error; err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	var count int64
	if err := q.Limit(-1).Offset(-1).Count(&count).Error; err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.SuccessList(c, http.StatusOK, accounts, gin.H{
		"paginacion": httputil.Paginate(page, limit, count),
	})
}

// @Summary		Create account
// @Description	Creates an account. A positive saldoInicial is seeded through a synthetic income transaction.
// @Tags			Cuentas
// @Accept			json
// @Produce		json
// @Success		201		{object}	httputil.Response
// @Failure		400		{object}	httputil.Response
// @Failure		409		{object}	httputil.Response
// @Failure		500		{object}	httputil.Response
// @Param			cuenta	body		AccountCreate	true	"Cuenta"
// @Router			/api/cuentas [post]
func CreateAccount(c *gin.Context) {
	var data AccountCreate
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	account, err := models.CreateAccount(auth.UserID(c), data.AccountEditable.model(), data.SaldoInicial)
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusCreated, account, "cuenta creada correctamente")
}

// @Summary		Update account
// @Description	Updates an account. Only values to be updated need to be specified. The balance cannot be set directly.
// @Tags			Cuentas
// @Accept			json
// @Produce		json
// @Success		200		{object}	httputil.Response
// @Failure		400		{object}	httputil.Response
// @Failure		404		{object}	httputil.Response
// @Failure		409		{object}	httputil.Response
// @Failure		500		{object}	httputil.Response
// @Param			id		path		string			true	"ID de la cuenta"
// @Param			cuenta	body		AccountEditable	true	"Cuenta"
// @Router			/api/cuentas/{id} [put]
func UpdateAccount(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	account, err := models.FirstOwned[models.Account](models.DB, auth.UserID(c), id)
	if err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	updateFields, err := httputil.GetBodyFields(c, AccountEditable{})
	if err != nil {
		return
	}

	var update AccountEditable
	if err := httputil.BindData(c, &update); err != nil {
		return
	}

	if len(updateFields) > 0 {
		err = models.DB.Model(&account).Select("", updateFields...).Updates(update.model()).Error
		if err != nil {
			httputil.Error(c, status(err), err.Error())
			return
		}
	}

	httputil.Success(c, http.StatusOK, account, "cuenta actualizada correctamente")
}

// @Summary		Delete account
// @Description	Deletes an account. Accounts referenced by transactions cannot be deleted.
// @Tags			Cuentas
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		400	{object}	httputil.Response
// @Failure		404	{object}	httputil.Response
// @Failure		500	{object}	httputil.Response
// @Param			id	path		string	true	"ID de la cuenta"
// @Router			/api/cuentas/{id} [delete]
func DeleteAccount(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		return
	}

	if err := models.DeleteAccount(auth.UserID(c), id); err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	httputil.Success(c, http.StatusOK, nil, "cuenta eliminada correctamente")
}
