// Package router assembles the gin engine: middleware, observability
// endpoints and the API route tree.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mini-erp-personal/backend/internal/auth"
	"github.com/mini-erp-personal/backend/internal/config"
	"github.com/mini-erp-personal/backend/internal/controllers"
	"github.com/mini-erp-personal/backend/internal/httputil"
)

// This is overwritten at build time with ldflags.
var version = "0.0.0"

// Router builds the engine with all middleware and routes.
func Router(cfg *config.Config) (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if len(cfg.Server.CORSOrigins) > 0 {
		log.Debug().Strs("allowOrigins", cfg.Server.CORSOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.Server.CORSOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if gin.Mode() == gin.DebugMode {
		pprof.Register(r)
	}

	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)
	r.GET("/salud", GetHealth)
	r.OPTIONS("/salud", OptionsHealth)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authConfig := controllers.AuthConfig{
		Secret:   cfg.JWT.Secret,
		TokenTTL: time.Duration(cfg.JWT.ExpireHours) * time.Hour,
	}

	api := r.Group("/api")
	protected := r.Group("/api", auth.Middleware(cfg.JWT.Secret))

	authConfig.RegisterAuthRoutes(api.Group("/auth"), protected.Group("/auth"))
	controllers.RegisterAccountRoutes(protected.Group("/cuentas"))
	controllers.RegisterCategoryRoutes(protected.Group("/categorias"))
	controllers.RegisterItemRoutes(protected.Group("/articulos"))
	controllers.RegisterTransactionRoutes(protected.Group("/transacciones"))

	log.Info().Msg("backend startup complete")

	return r, nil
}

type HealthData struct {
	Estado string `json:"estado" example:"ok"`
}

// @Summary		Health check
// @Description	Returns 200 as long as the process serves requests
// @Tags			General
// @Success		200	{object}	httputil.Response
// @Router			/salud [get]
func GetHealth(c *gin.Context) {
	httputil.Success(c, http.StatusOK, HealthData{Estado: "ok"}, "")
}

type RootLinks struct {
	Docs    string `json:"docs" example:"/docs/index.html"`
	Version string `json:"version" example:"/version"`
	Salud   string `json:"salud" example:"/salud"`
	API     string `json:"api" example:"/api"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	httputil.Response
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	httputil.Success(c, http.StatusOK, RootLinks{
		Docs:    "/docs/index.html",
		Version: "/version",
		Salud:   "/salud",
		API:     "/api",
	}, "")
}

type VersionData struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	httputil.Response
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	httputil.Success(c, http.StatusOK, VersionData{Version: version}, "")
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/salud [options]
func OptionsHealth(c *gin.Context) {
	httputil.OptionsGet(c)
}
