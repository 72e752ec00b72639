package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mini-erp-personal/backend/internal/auth"
	"github.com/mini-erp-personal/backend/internal/httputil"
	"github.com/mini-erp-personal/backend/internal/models"
)

// AuthConfig carries the token settings the auth handlers need.
type AuthConfig struct {
	Secret   string
	TokenTTL time.Duration
}

// RegistroRequest is the payload to create a new user.
type RegistroRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload to authenticate an existing user.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionData is the payload returned by registro and login.
type SessionData struct {
	Usuario models.User `json:"usuario"`
	Token   string      `json:"token"`
}

// RegisterAuthRoutes registers the authentication routes with the
// RouterGroup that is passed. registro and login are public, verificar
// must sit behind the token middleware.
func (cfg AuthConfig) RegisterAuthRoutes(public, protected *gin.RouterGroup) {
	{
		public.OPTIONS("/registro", httputil.OptionsPost)
		public.POST("/registro", cfg.Registro)
		public.OPTIONS("/login", httputil.OptionsPost)
		public.POST("/login", cfg.Login)
	}

	{
		protected.OPTIONS("/verificar", httputil.OptionsGet)
		protected.GET("/verificar", cfg.Verificar)
	}
}

// @Summary		Register user
// @Description	Creates a user account and returns a bearer token for it
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	httputil.Response
// @Failure		400		{object}	httputil.Response
// @Failure		409		{object}	httputil.Response
// @Failure		500		{object}	httputil.Response
// @Param			usuario	body		RegistroRequest	true	"Usuario"
// @Router			/api/auth/registro [post]
func (cfg AuthConfig) Registro(c *gin.Context) {
	var data RegistroRequest
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	if err := validateRegistro(data); err != nil {
		httputil.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	user := models.User{
		Nombre:       data.Nombre,
		Email:        data.Email,
		PasswordHash: hash,
	}

	if err := models.DB.Create(&user).Error; err != nil {
		httputil.Error(c, status(err), err.Error())
		return
	}

	token, err := auth.GenerateToken(cfg.Secret, user.ID, user.Email, cfg.TokenTTL)
	if err != nil {
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	httputil.Success(c, http.StatusCreated, SessionData{Usuario: user, Token: token}, "usuario registrado correctamente")
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a bearer token
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200			{object}	httputil.Response
// @Failure		400			{object}	httputil.Response
// @Failure		401			{object}	httputil.Response
// @Failure		500			{object}	httputil.Response
// @Param			credenciales	body	LoginRequest	true	"Credenciales"
// @Router			/api/auth/login [post]
func (cfg AuthConfig) Login(c *gin.Context) {
	var data LoginRequest
	if err := httputil.BindData(c, &data); err != nil {
		return
	}

	var user models.User
	err := models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(data.Email))).Error
	if err != nil || !auth.CheckPassword(data.Password, user.PasswordHash) {
		// Same answer whether the user does not exist or the password
		// is wrong.
		httputil.Error(c, http.StatusUnauthorized, "credenciales inválidas")
		return
	}

	token, err := auth.GenerateToken(cfg.Secret, user.ID, user.Email, cfg.TokenTTL)
	if err != nil {
		httputil.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	httputil.Success(c, http.StatusOK, SessionData{Usuario: user, Token: token}, "sesión iniciada")
}

// @Summary		Verify token
// @Description	Returns the user the bearer token belongs to
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	httputil.Response
// @Failure		401	{object}	httputil.Response
// @Router			/api/auth/verificar [get]
func (cfg AuthConfig) Verificar(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "id = ?", auth.UserID(c)).Error
	if err != nil {
		httputil.Error(c, http.StatusUnauthorized, auth.ErrTokenInvalid.Error())
		return
	}

	httputil.Success(c, http.StatusOK, user, "")
}

func validateRegistro(data RegistroRequest) error {
	if strings.TrimSpace(data.Nombre) == "" {
		return errors.New("el nombre es obligatorio")
	}
	if !strings.Contains(data.Email, "@") {
		return errors.New("el email no es válido")
	}
	if len(data.Password) < 8 {
		return errors.New("la contraseña debe tener al menos 8 caracteres")
	}

	return nil
}
