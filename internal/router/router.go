package router

import (
	"net/http"
	"strings"

	docs "github.com/cashcard-io/backend/api"
	"github.com/cashcard-io/backend/internal/config"
	"github.com/cashcard-io/backend/internal/controllers/cashcard"
	"github.com/cashcard-io/backend/internal/controllers/healthz"
	"github.com/cashcard-io/backend/internal/controllers/root"
	"github.com/cashcard-io/backend/internal/controllers/version"
	"github.com/cashcard-io/backend/internal/httperrors"
	"github.com/cashcard-io/backend/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var apiVersion = "0.0.0"

// Config sets up the router with all middlewares.
//
// The returned teardown function releases resources that outlive the engine
// and must be called once the router is no longer used.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.BaseURL()))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		httperrors.New(c, http.StatusMethodNotAllowed, "This HTTP method is not allowed for the endpoint you called")
	})
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

	// CORS settings
	if cfg.CORSAllowOrigins != "" {
		log.Debug().Str("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(cfg.CORSAllowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.Register(r, "debug/pprof")
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	teardown := func() {
		unregisterPrometheusMetrics()
	}

	url := cfg.BaseURL()
	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", apiVersion).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Cash Card API"
	docs.SwaggerInfo.Version = apiVersion
	docs.SwaggerInfo.Description = "The backend for the cash card service, a stored value card API. Check out the source code at https://github.com/cashcard-io/backend."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach the API to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup, db *gorm.DB) {
	root.RegisterRoutes(group)
	healthz.RegisterRoutes(group.Group("/healthz"), db)
	version.RegisterRoutes(group.Group("/version"), apiVersion)

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cashcard.RegisterRoutes(group.Group("/cashcards"), storage.New(db))
}
