package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bidroom/internal/handler/api"
	"bidroom/internal/handler/middleware"
	"bidroom/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, negotiationHandler *api.NegotiationHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, negotiationHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, negotiationHandler *api.NegotiationHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		sessions := apiGroup.Group("/sessions")
		sessions.Use(authMiddleware.RequireParty())
		{
			addRoutes(sessions, []route{
				{Method: http.MethodPost, Path: "", Handler: negotiationHandler.OpenSessions},
				{Method: http.MethodGet, Path: "", Handler: negotiationHandler.ListSessions},
				{Method: http.MethodGet, Path: "/summary", Handler: negotiationHandler.Summary},
				{Method: http.MethodGet, Path: "/:id", Handler: negotiationHandler.GetSession},
				{Method: http.MethodGet, Path: "/:id/offers", Handler: negotiationHandler.ListOffers},
				{Method: http.MethodPost, Path: "/:id/offers", Handler: negotiationHandler.SubmitOffer},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: negotiationHandler.Accept},
				{Method: http.MethodPost, Path: "/:id/decline", Handler: negotiationHandler.Decline},
				{Method: http.MethodPost, Path: "/:id/extension", Handler: negotiationHandler.RequestExtension},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
