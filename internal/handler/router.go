package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/MHK-404/Wellsure-backend/docs"
	"github.com/MHK-404/Wellsure-backend/internal/auth"
	"github.com/MHK-404/Wellsure-backend/internal/middleware"
)

type RouterConfig struct {
	AllowedOrigins  []string
	AllowAllOrigins bool
	// nil signer: admin routes are not mounted
	Signer    *auth.Signer
	RateRPS   float64
	RateBurst int
}

// NewRouter wires middleware and routes onto a fresh gin engine.
func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(h.log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		h.log.Error("panic recovered",
			zap.String("request_id", c.GetString("request_id")),
			zap.Any("panic", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal Server Error",
			Message: fmt.Sprint(recovered),
		})
	}))
	router.Use(cors.New(corsConfig(cfg)))

	h.upgrader.CheckOrigin = originChecker(cfg.AllowAllOrigins, cfg.AllowedOrigins)

	api := router.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/assess", middleware.RateLimit(cfg.RateRPS, cfg.RateBurst), h.Assess)

	if cfg.Signer != nil && h.store != nil {
		admin := api.Group("/admin").Use(middleware.AuthMiddleware(cfg.Signer))
		{
			admin.GET("/assessments", h.ListAssessments)
			admin.GET("/assessments/:id", h.GetAssessment)
			admin.GET("/stats", h.Stats)
		}
	}

	router.GET("/ws/assess", h.AssessPreview)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Endpoint not found"})
	})
	return router
}

func corsConfig(cfg RouterConfig) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	config.ExposeHeaders = []string{AssessmentIDHeader, middleware.RequestIDHeader}
	if cfg.AllowAllOrigins {
		config.AllowAllOrigins = true
		return config
	}

	for _, o := range cfg.AllowedOrigins {
		if strings.HasPrefix(o, "http://") || strings.HasPrefix(o, "https://") {
			config.AllowOrigins = append(config.AllowOrigins, o)
		}
	}
	if len(config.AllowOrigins) == 0 {
		config.AllowOriginFunc = func(string) bool { return false }
	}
	return config
}
