package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"luxe-escape/internal/handler/api"
	"luxe-escape/internal/handler/middleware"
	"luxe-escape/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	checkoutHandler *api.CheckoutHandler,
	roomHandler *api.RoomHandler,
	contentHandler *api.ContentHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, bookingHandler, checkoutHandler, roomHandler, contentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	bookingHandler *api.BookingHandler,
	checkoutHandler *api.CheckoutHandler,
	roomHandler *api.RoomHandler,
	contentHandler *api.ContentHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/showcase", Handler: roomHandler.ListShowcase},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
			})
		}

		content := apiGroup.Group("/content")
		{
			addRoutes(content, []route{
				{Method: http.MethodGet, Path: "/hero", Handler: contentHandler.Hero},
				{Method: http.MethodGet, Path: "/restaurant", Handler: contentHandler.Restaurant},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/newsletter", Handler: contentHandler.Subscribe},
		})

		booking := apiGroup.Group("/booking/sessions")
		{
			addRoutes(booking, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.StartFlow},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetFlow},
				{Method: http.MethodPatch, Path: "/:id/stay", Handler: bookingHandler.SetStay},
				{Method: http.MethodPatch, Path: "/:id/guests", Handler: bookingHandler.AdjustGuests},
				{Method: http.MethodPut, Path: "/:id/room", Handler: bookingHandler.SelectRoom},
				{Method: http.MethodPost, Path: "/:id/search", Handler: bookingHandler.Search},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: bookingHandler.Confirm},
			})
		}

		checkout := apiGroup.Group("/checkout/sessions")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.StartSession},
				{Method: http.MethodGet, Path: "/:id", Handler: checkoutHandler.GetSession},
				{Method: http.MethodPatch, Path: "/:id/fields", Handler: checkoutHandler.EditField},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: checkoutHandler.Submit},
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
