package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"petvault/internal/analyzer"
	"petvault/internal/analyzer/claude"
	"petvault/internal/analyzer/gemini"
	"petvault/internal/analyzer/openai"
	"petvault/internal/config"
	"petvault/internal/email/noop"
	"petvault/internal/email/ses"
	"petvault/internal/handler"
	"petvault/internal/logger"
	"petvault/internal/middleware"
	"petvault/internal/port"
	"petvault/internal/repository/postgres"
	"petvault/internal/router"
	"petvault/internal/service"
	"petvault/internal/storage/local"
	s3storage "petvault/internal/storage/s3"
)

// @title PetVault API
// @version 1.0
// @description Pet health records with document import, review and audit.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	analyzer.RegisterProvider("claude", func(cfg *config.LLMConfig) (port.CompletionClient, error) {
		return claude.NewClient(cfg), nil
	})
	analyzer.RegisterProvider("gemini", func(cfg *config.LLMConfig) (port.CompletionClient, error) {
		return gemini.NewClient(cfg), nil
	})
	analyzer.RegisterProvider("openai", func(cfg *config.LLMConfig) (port.CompletionClient, error) {
		return openai.NewClient(cfg), nil
	})
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flush, err := logger.Install(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer flush()
	log := zap.L()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	petRepo := postgres.NewPetRepo(db)
	memberRepo := postgres.NewPetMemberRepo(db)
	uploadRepo := postgres.NewUploadRepo(db)
	extractionRepo := postgres.NewExtractionRepo(db)
	recordRepo := postgres.NewHealthRecordRepo(db)
	auditRepo := postgres.NewAuditLogRepo(db)

	// Initialize storage
	storage, files, err := newStorage(cfg)
	if err != nil {
		return err
	}

	// Initialize document analysis
	llmClient, err := analyzer.NewClient(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize llm client: %w", err)
	}
	docAnalyzer := analyzer.New(llmClient, analyzer.DefaultPrompts{}, cfg.LLM.MaxTokens)
	log.Info("document analyzer ready", zap.String("provider", cfg.LLM.Provider))

	mailer, err := newMailer(cfg)
	if err != nil {
		return err
	}

	uploadLimiter, processLimiter, closeLimiters, err := newLimiters(cfg)
	if err != nil {
		return err
	}
	defer closeLimiters()

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	petSvc := service.NewPetService(petRepo, memberRepo, userRepo, mailer)
	importSvc := service.NewImportService(uploadRepo, extractionRepo, memberRepo, storage, docAnalyzer, service.ImportConfig{
		Bucket:        cfg.S3.Bucket,
		MaxBytes:      cfg.Upload.MaxBytes(),
		PresignExpiry: cfg.Storage.PresignExpiry,
	})
	reviewSvc := service.NewReviewService(uploadRepo, extractionRepo, memberRepo)
	auditSvc := service.NewAuditService(auditRepo, memberRepo)
	recordSvc := service.NewRecordService(recordRepo, petRepo, memberRepo)
	cardSvc := service.NewEmergencyCardService(petRepo, recordRepo)

	// Initialize handlers and router
	r := router.Setup(authSvc, router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Pet:       handler.NewPetHandler(petSvc),
		Import:    handler.NewImportHandler(importSvc, cfg.Upload.MaxBytes()),
		Review:    handler.NewReviewHandler(reviewSvc),
		Audit:     handler.NewAuditHandler(auditSvc),
		Record:    handler.NewRecordHandler(recordSvc),
		Emergency: handler.NewEmergencyHandler(cardSvc),
		Health:    handler.NewHealthHandler(db),
		Files:     files,
	}, router.Options{
		Logger:         log,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		UploadLimiter:  uploadLimiter,
		ProcessLimiter: processLimiter,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", cfg.Server.Port), zap.String("env", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

// newStorage picks the object storage backend. The second value serves signed
// links and is nil for S3.
func newStorage(cfg *config.Config) (port.ObjectStorage, http.Handler, error) {
	switch cfg.Storage.Backend {
	case "s3":
		store, err := s3storage.NewStore(&cfg.S3)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize S3 client: %w", err)
		}
		return store, nil, nil
	case "local", "":
		store, err := local.NewStore(cfg.Storage.LocalRoot, cfg.Storage.PublicBaseURL, cfg.JWT.Secret)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		zap.L().Info("using local storage", zap.String("root", cfg.Storage.LocalRoot))
		return store, store, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func newMailer(cfg *config.Config) (port.EmailSender, error) {
	switch cfg.Email.Provider {
	case "ses":
		sender, err := ses.NewSESSender(&cfg.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SES sender: %w", err)
		}
		return sender, nil
	case "noop", "":
		return noop.NewNoopSender(cfg.Email.FrontendURL), nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.Email.Provider)
	}
}

func newLimiters(cfg *config.Config) (upload, process middleware.RateLimiter, closeFn func(), err error) {
	rl := cfg.RateLimit
	switch rl.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return middleware.NewRedisRateLimiter(client, rl.UploadLimit, rl.Window),
			middleware.NewRedisRateLimiter(client, rl.ProcessLimit, rl.Window),
			func() { _ = client.Close() }, nil
	case "memory", "":
		return middleware.NewMemoryRateLimiter(rl.UploadLimit, rl.Window),
			middleware.NewMemoryRateLimiter(rl.ProcessLimit, rl.Window),
			func() {}, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown rate limit backend: %s", rl.Backend)
	}
}
