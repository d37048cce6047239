package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/config"
	"github.com/govjobs/govjobs-backend/internal/handler"
	"github.com/govjobs/govjobs-backend/internal/middleware"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/response"
	"github.com/govjobs/govjobs-backend/internal/service"
	"github.com/rs/zerolog"
)

type (
	ResultHandler        = handler.ContentHandler[model.Result, model.CreateResultRequest, model.UpdateResultRequest]
	AdmitCardHandler     = handler.ContentHandler[model.AdmitCard, model.CreateAdmitCardRequest, model.UpdateAdmitCardRequest]
	SyllabusHandler      = handler.ContentHandler[model.Syllabus, model.CreateSyllabusRequest, model.UpdateSyllabusRequest]
	PreviousPaperHandler = handler.ContentHandler[model.PreviousPaper, model.CreatePreviousPaperRequest, model.UpdatePreviousPaperRequest]
	MaterialHandler      = handler.ContentHandler[model.Material, model.CreateMaterialRequest, model.UpdateMaterialRequest]
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth          *handler.AuthHandler
	Category      *handler.CategoryHandler
	Job           *handler.JobHandler
	Result        *ResultHandler
	AdmitCard     *AdmitCardHandler
	Syllabus      *SyllabusHandler
	PreviousPaper *PreviousPaperHandler
	Material      *MaterialHandler
	NewsTicker    *handler.NewsTickerHandler
	Contact       *handler.ContactHandler
	Dashboard     *handler.DashboardHandler
	Export        *handler.ExportHandler
	System        *handler.SystemHandler
}

// crudHandler is the route surface shared by every content section.
type crudHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// limiter guards the login and contact endpoints; it may be nil.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
	limiter *middleware.RateLimiter,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(
		response.RequestIDMiddleware(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		middleware.Brotli(),
	)

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrRouteNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		response.Fail(c, http.StatusMethodNotAllowed, response.ErrMethodNotAllowed)
	})

	router.GET("/health", handlers.System.Health)

	api := router.Group("/api")
	api.GET("/health", handlers.System.Health)

	requireAdmin := middleware.RequireAdminJWT(authService)
	publicCache := middleware.CacheControl(cfg.PublicCacheSeconds)
	noStore := middleware.NoStore()
	var throttle gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if limiter != nil {
		throttle = limiter.Middleware()
	}

	// ─── 1. Auth ───────────────────────────────────────────────────────
	auth := api.Group("/auth/admin", noStore)
	{
		auth.POST("/login", throttle, handlers.Auth.AdminLogin)
		auth.GET("/verify", requireAdmin, handlers.Auth.VerifyAdmin)
	}

	// ─── 2. Categories ─────────────────────────────────────────────────
	categories := api.Group("/categories")
	{
		categories.GET("", publicCache, handlers.Category.List)
		categories.GET("/slug/:slug", publicCache, handlers.Category.GetBySlug)
		categories.POST("", requireAdmin, handlers.Category.Create)
		categories.DELETE("/:id", requireAdmin, handlers.Category.Delete)
	}

	// ─── 3. Content sections ───────────────────────────────────────────
	sections := []struct {
		prefix string
		h      crudHandler
	}{
		{"/jobs", handlers.Job},
		{"/results", handlers.Result},
		{"/admit-cards", handlers.AdmitCard},
		{"/syllabus", handlers.Syllabus},
		{"/previous-papers", handlers.PreviousPaper},
		{"/materials", handlers.Material},
	}
	for _, s := range sections {
		g := api.Group(s.prefix)
		g.GET("", publicCache, s.h.List)
		g.GET("/:id", publicCache, s.h.Get)
		g.POST("", requireAdmin, s.h.Create)
		g.PUT("/:id", requireAdmin, s.h.Update)
		g.DELETE("/:id", requireAdmin, s.h.Delete)
	}

	// ─── 4. News ticker ────────────────────────────────────────────────
	news := api.Group("/news-ticker")
	{
		news.GET("", publicCache, handlers.NewsTicker.ListActive)
		news.GET("/admin", requireAdmin, noStore, handlers.NewsTicker.ListAll)
		news.GET("/:id", requireAdmin, noStore, handlers.NewsTicker.Get)
		news.POST("", requireAdmin, handlers.NewsTicker.Create)
		news.PUT("/:id", requireAdmin, handlers.NewsTicker.Update)
		news.DELETE("/:id", requireAdmin, handlers.NewsTicker.Delete)
	}

	// ─── 5. Contact ────────────────────────────────────────────────────
	api.POST("/contact", throttle, handlers.Contact.Submit)

	// ─── 6. Admin ──────────────────────────────────────────────────────
	admin := api.Group("/admin", requireAdmin, noStore)
	{
		admin.GET("/dashboard", handlers.Dashboard.GetDashboardData)
		admin.GET("/system", handlers.System.SystemMetrics)
		admin.GET("/exports/jobs", handlers.Export.ExportJobs)
	}

	return router
}
