package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fhuszti/videos-ms-go/internal/cache"
	"github.com/fhuszti/videos-ms-go/internal/config"
	"github.com/fhuszti/videos-ms-go/internal/db"
	"github.com/fhuszti/videos-ms-go/internal/handler/api"
	"github.com/fhuszti/videos-ms-go/internal/logger"
	cMiddleware "github.com/fhuszti/videos-ms-go/internal/middleware"
	"github.com/fhuszti/videos-ms-go/internal/model"
	"github.com/fhuszti/videos-ms-go/internal/port"
	"github.com/fhuszti/videos-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/videos-ms-go/internal/storage"
	"github.com/fhuszti/videos-ms-go/internal/task"
	authSvc "github.com/fhuszti/videos-ms-go/internal/usecase/auth"
	grantSvc "github.com/fhuszti/videos-ms-go/internal/usecase/grant"
	orgSvc "github.com/fhuszti/videos-ms-go/internal/usecase/organization"
	processingSvc "github.com/fhuszti/videos-ms-go/internal/usecase/processing"
	userSvc "github.com/fhuszti/videos-ms-go/internal/usecase/user"
	videoSvc "github.com/fhuszti/videos-ms-go/internal/usecase/video"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx)

	strg := initStorage(ctx, cfg)
	initBuckets(ctx, strg, []string{cfg.VideosBucket, cfg.ThumbnailsBucket})

	userRepo := mariadb.NewUserRepository(database.DB)
	videoRepo := mariadb.NewVideoRepository(database.DB)
	grantRepo := mariadb.NewGrantRepository(database.DB)
	orgRepo := mariadb.NewOrganizationRepository(database.DB)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — caching is disabled")
	}

	withAuth := cMiddleware.WithAuth(cfg.JWTSecret)
	withOptionalAuth := cMiddleware.WithOptionalAuth(cfg.JWTSecret)
	adminOnly := cMiddleware.RequireRole(model.RoleAdmin)

	registrarSvc := authSvc.NewRegistrar(userRepo, db.NewUUID, cfg.BcryptCost)
	r.Post("/auth/register", api.RegisterHandler(registrarSvc))

	authenticatorSvc := authSvc.NewAuthenticator(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	r.Post("/auth/login", api.LoginHandler(authenticatorSvc))

	profileSvc := userSvc.NewProfileGetter(userRepo)
	r.With(withAuth).Get("/users/me", api.GetMeHandler(profileSvc))

	roleUpdaterSvc := userSvc.NewRoleUpdater(userRepo)
	r.With(withAuth).Patch("/users/{id}/role", api.UpdateRoleHandler(roleUpdaterSvc))

	orgCreatorSvc := orgSvc.NewOrganizationCreator(orgRepo, db.NewUUID)
	r.With(withAuth).Post("/organizations", api.CreateOrganizationHandler(orgCreatorSvc))

	uploadLinkGeneratorSvc := videoSvc.NewUploadLinkGenerator(videoRepo, strg, db.NewUUID, cfg.VideosBucket, cfg.ThumbnailsBucket)
	r.With(withAuth).Post("/videos/generate_upload_link", api.GenerateUploadLinkHandler(uploadLinkGeneratorSvc))

	uploadFinaliserSvc := videoSvc.NewUploadFinaliser(videoRepo, strg, dispatcher, cfg.VideosBucket)
	r.With(withAuth, cMiddleware.WithVideoID()).
		Post("/videos/finalise_upload/{id}", api.FinaliseUploadHandler(uploadFinaliserSvc))

	accessCheckerSvc := videoSvc.NewAccessChecker(videoRepo, grantRepo)
	getVideoSvc := videoSvc.NewVideoGetter(accessCheckerSvc, ca, strg, cfg.VideosBucket, cfg.ThumbnailsBucket)
	r.With(withOptionalAuth, cMiddleware.WithVideoID()).
		Get("/videos/{id}", api.GetVideoHandler(getVideoSvc))

	listerSvc := videoSvc.NewVideoLister(videoRepo)
	r.Get("/videos", api.ListPublicVideosHandler(listerSvc))
	r.With(withAuth).Get("/users/me/videos", api.ListMyVideosHandler(listerSvc))

	deleteVideoSvc := videoSvc.NewVideoDeleter(videoRepo, grantRepo, ca, strg, cfg.VideosBucket, cfg.ThumbnailsBucket)
	r.With(withAuth, cMiddleware.WithVideoID()).
		Delete("/videos/{id}", api.DeleteVideoHandler(deleteVideoSvc))

	granterSvc := grantSvc.NewAccessGranter(videoRepo, userRepo, grantRepo, db.NewUUID)
	r.With(withAuth, cMiddleware.WithVideoID()).
		Post("/videos/{id}/grants", api.GrantAccessHandler(granterSvc))

	revokerSvc := grantSvc.NewAccessRevoker(videoRepo, grantRepo)
	r.With(withAuth, cMiddleware.WithVideoID()).
		Delete("/videos/{id}/grants/{userID}", api.RevokeAccessHandler(revokerSvc))

	reviewerSvc := processingSvc.NewSensitivityReviewer(videoRepo, ca)
	r.With(withAuth, adminOnly, cMiddleware.WithVideoID()).
		Post("/videos/{id}/sensitivity", api.ReviewSensitivityHandler(reviewerSvc))

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBuckets(ctx context.Context, strg port.Storage, buckets []string) {
	for _, b := range buckets {
		if err := strg.InitBucket(b); err != nil {
			logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", b, err)
			os.Exit(1)
		}
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
