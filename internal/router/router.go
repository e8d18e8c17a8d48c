package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "petvault/docs" // registers the swagger spec
	"petvault/internal/domain"
	"petvault/internal/handler"
	"petvault/internal/middleware"
	"petvault/internal/service"
)

// Handlers groups the HTTP handlers mounted by Setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Pet       *handler.PetHandler
	Import    *handler.ImportHandler
	Review    *handler.ReviewHandler
	Audit     *handler.AuditHandler
	Record    *handler.RecordHandler
	Emergency *handler.EmergencyHandler
	Health    *handler.HealthHandler

	// Files serves signed links for the local storage backend. Nil with S3.
	Files http.Handler
}

// Options holds the cross-cutting settings of the HTTP layer.
type Options struct {
	Logger         *zap.Logger
	AllowedOrigins []string
	UploadLimiter  middleware.RateLimiter
	ProcessLimiter middleware.RateLimiter
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, h Handlers, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.L()
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.CORS(opts.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if h.Files != nil {
		r.GET("/files/*path", gin.WrapH(h.Files))
	}

	v1 := r.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)

	v1.GET("/public/emergency/:token", h.Emergency.Get)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	pets := protected.Group("/pets")
	pets.POST("", h.Pet.Create)
	pets.GET("", h.Pet.List)

	pet := pets.Group("/:petId")
	pet.GET("", h.Pet.GetByID)
	pet.GET("/members", h.Pet.ListMembers)
	pet.POST("/members", h.Pet.Share)
	pet.DELETE("/members/:userId", h.Pet.RemoveMember)
	pet.POST("/emergency-card", h.Pet.EnableEmergencyCard)
	pet.DELETE("/emergency-card", h.Pet.DisableEmergencyCard)

	// Health records
	pet.GET("/records/export", h.Record.Export)
	pet.GET("/records/:recordType", h.Record.List)
	pet.POST("/records/:recordType", h.Record.Create)
	pet.DELETE("/records/:recordType/:recordId", h.Record.Delete)

	// Audit log
	pet.GET("/audit-log", h.Audit.List)
	pet.GET("/audit-log/export", h.Audit.Export)

	// Import pipeline, one route family per variant
	uploadLimit := limit(opts.UploadLimiter, "upload")
	processLimit := limit(opts.ProcessLimiter, "process")

	imports := pet.Group("/:variant")
	imports.POST("/upload", uploadLimit, forVariant(domain.VariantDocuments, processLimit), h.Import.Upload)
	imports.GET("/uploads", h.Import.List)
	imports.GET("/uploads/:id", h.Import.GetByID)
	imports.DELETE("/uploads/:id", h.Import.Delete)
	imports.GET("/uploads/:id/download", h.Import.Download)
	imports.POST("/uploads/:id/process", processLimit, h.Import.Process)
	imports.GET("/uploads/:id/extraction", h.Review.GetExtraction)
	imports.POST("/uploads/:id/extraction/approve", h.Review.Approve)
	imports.POST("/uploads/:id/extraction/reject", h.Review.Reject)
	imports.PATCH("/extraction-items/:itemId", h.Review.UpdateItem)

	return r
}

// limit returns the rate limit middleware for scope, or a pass-through when
// no limiter is configured.
func limit(limiter middleware.RateLimiter, scope string) gin.HandlerFunc {
	if limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.RateLimit(limiter, scope)
}

// forVariant applies mw only on routes for the given import variant.
func forVariant(variant domain.ImportVariant, mw gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if v, err := domain.ParseImportVariant(c.Param("variant")); err == nil && v == variant {
			mw(c)
			return
		}
		c.Next()
	}
}
