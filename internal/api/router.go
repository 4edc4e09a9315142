package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/kindredlab/kindred/internal/genetics"
	"github.com/kindredlab/kindred/internal/middleware"
	"github.com/kindredlab/kindred/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Hub         *ws.Hub
	Sessions    SessionService
	Pedigree    PedigreeService
	Genetics    GeneticsService
	Scenarios   []genetics.Scenario
	CORSOrigins []string
	Version     string
}

// Router-level limits.
const (
	maxBodySize = 1 << 20 // 1 MB, bulk declarations included
	rateLimit   = 100     // requests per second per IP
	rateBurst   = 200     // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Sessions, deps.Hub, deps.Scenarios, log, deps.Version)
	sessions := NewSessionHandler(deps.Sessions, log)
	editor := NewPedigreeHandler(deps.Pedigree, log)
	coeff := NewGeneticsHandler(deps.Genetics, log)
	archetypes := NewArchetypeHandler(deps.Scenarios, log)
	stats := NewStatsHandler(deps.Sessions, deps.Pedigree, deps.Hub, log)

	// Health and readiness.
	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Session lifecycle.
	api.POST("/sessions", sessions.Create)
	api.GET("/sessions", sessions.List)
	api.GET("/sessions/:id", sessions.Get)
	api.DELETE("/sessions/:id", sessions.Delete)
	api.POST("/sessions/:id/template", sessions.ApplyTemplate)
	api.POST("/sessions/:id/reset", sessions.Reset)
	api.GET("/sessions/:id/history", sessions.History)

	// Pedigree editing.
	api.GET("/sessions/:id/graph", editor.GetGraph)
	api.POST("/sessions/:id/persons/:personID/sex", editor.ToggleSex)
	api.GET("/sessions/:id/relationships", editor.ListDeclared)
	api.POST("/sessions/:id/relationships", editor.Declare)
	api.POST("/sessions/:id/relationships/bulk", editor.BulkDeclare)
	api.GET("/sessions/:id/relationships/options", editor.Options)

	// Coefficients and consanguinity.
	api.GET("/sessions/:id/result", coeff.GetResult)
	api.GET("/sessions/:id/paths", coeff.GetPaths)
	api.GET("/sessions/:id/consanguinity", coeff.ListFactors)
	api.POST("/sessions/:id/consanguinity", coeff.AddFactor)
	api.DELETE("/sessions/:id/consanguinity", coeff.ClearFactors)
	api.DELETE("/sessions/:id/consanguinity/:factorID", coeff.RemoveFactor)
	api.PUT("/sessions/:id/ancestors/:personID/inbreeding", coeff.SetInbreeding)

	// Reference data.
	api.GET("/archetypes", archetypes.List)
	api.GET("/scenarios", archetypes.ListScenarios)

	// Stats.
	api.GET("/stats", stats.GetStats)

	// WebSocket endpoint.
	api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.Sessions, deps.CORSOrigins))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
