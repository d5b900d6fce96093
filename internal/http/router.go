package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"journey-report-service/internal/config"
	"journey-report-service/internal/http/middleware"
)

func newEngine(environment string, log zerolog.Logger) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))
	return r
}

func NewAPIRouter(handler *Handler, cfg config.HTTPConfig, environment string, log zerolog.Logger) *gin.Engine {
	r := newEngine(environment, log)
	r.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))
	handler.Register(r, middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst))
	return r
}

func NewWebRouter(handler *WebHandler, cfg config.HTTPConfig, environment string, log zerolog.Logger) (*gin.Engine, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	r := newEngine(environment, log)
	r.SetHTMLTemplate(tmpl)
	handler.Register(r, middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitBurst))
	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
