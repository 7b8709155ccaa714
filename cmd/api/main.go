package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/uta-diee/practicas-api/api/swagger"
	"github.com/uta-diee/practicas-api/internal/handler"
	"github.com/uta-diee/practicas-api/internal/middleware"
	"github.com/uta-diee/practicas-api/internal/repository"
	"github.com/uta-diee/practicas-api/internal/service"
	"github.com/uta-diee/practicas-api/pkg/cache"
	"github.com/uta-diee/practicas-api/pkg/config"
	"github.com/uta-diee/practicas-api/pkg/database"
	"github.com/uta-diee/practicas-api/pkg/events"
	"github.com/uta-diee/practicas-api/pkg/export"
	"github.com/uta-diee/practicas-api/pkg/jobs"
	"github.com/uta-diee/practicas-api/pkg/logger"
	corsmiddleware "github.com/uta-diee/practicas-api/pkg/middleware/cors"
	reqidmiddleware "github.com/uta-diee/practicas-api/pkg/middleware/requestid"
	"github.com/uta-diee/practicas-api/pkg/storage"
)

// @title Practicas API
// @version 1.0.0
// @description Backend for academic practice management (placements, surveys, activities, authorization letters)
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	var cacheRepo *repository.CacheRepository
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, catalog cache disabled", "error", err)
	} else {
		defer redisClient.Close() //nolint:errcheck
		cacheRepo = repository.NewCacheRepository(redisClient)
	}

	uploadsStore, err := storage.NewLocalStorage(cfg.Uploads.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init uploads storage", "error", err)
	}
	lettersStore, err := storage.NewLocalStorage(cfg.Letters.StorageDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init letters storage", "error", err)
	}
	signer := storage.NewSignedURLSigner(cfg.Letters.SignedURLSecret, cfg.Letters.SignedURLTTL)

	validate := validator.New()
	broker := events.NewBroker(64, logr)
	defer broker.Close()

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	centerRepo := repository.NewCenterRepository(db)
	collaboratorRepo := repository.NewCollaboratorRepository(db)
	tutorRepo := repository.NewTutorRepository(db)
	practiceRepo := repository.NewPracticeRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	letterRepo := repository.NewLetterRepository(db)

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(userRepo, cfg.JWT, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	centerSvc := service.NewCenterService(centerRepo, validate, logr)
	collaboratorSvc := service.NewCollaboratorService(collaboratorRepo, validate, logr)
	tutorSvc := service.NewTutorService(tutorRepo, validate, logr)
	practiceSvc := service.NewPracticeService(practiceRepo, studentRepo, centerRepo,
		collaboratorRepo, tutorRepo, broker, validate, logr)
	surveySvc := service.NewSurveyService(surveyRepo, export.NewCSVExporter(), export.NewPDFExporter(), validate, logr)
	activitySvc := service.NewActivityService(activityRepo, uploadsStore, cfg.Uploads, validate, logr)
	letterSvc := service.NewLetterService(letterRepo, export.NewLetterExporter(), lettersStore, signer, validate, logr)

	var catalogSvc *service.CatalogService
	if cacheRepo != nil {
		catalogSvc = service.NewCatalogService(studentRepo, centerRepo, collaboratorRepo, tutorRepo, cacheRepo, cfg.Catalog.CacheTTL, logr)
	} else {
		catalogSvc = service.NewCatalogService(studentRepo, centerRepo, collaboratorRepo, tutorRepo, nil, cfg.Catalog.CacheTTL, logr)
	}

	cleanupQueue := jobs.NewQueue("letters-cleanup", func(ctx context.Context, job jobs.Job) error {
		removed, err := lettersStore.CleanupOlderThan(cfg.Letters.SignedURLTTL)
		if err != nil {
			return err
		}
		if len(removed) > 0 {
			logr.Sugar().Infow("stale letter pdfs removed", "count", len(removed))
		}
		return nil
	}, jobs.QueueConfig{Workers: 1, Logger: logr})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	cleanupQueue.Start(ctx)
	defer cleanupQueue.Stop()

	go func() {
		ticker := time.NewTicker(cfg.Letters.CleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case tick := <-ticker.C:
				job := jobs.Job{ID: fmt.Sprintf("cleanup-%d", tick.Unix()), Type: jobs.TypeLetterCleanup}
				if err := cleanupQueue.Enqueue(job); err != nil {
					logr.Sugar().Warnw("failed to enqueue letters cleanup", "error", err)
				}
			}
		}
	}()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, authSvc, handler.Handlers{
		Auth:          handler.NewAuthHandler(authSvc),
		Practices:     handler.NewPracticeHandler(practiceSvc, broker, metricsSvc),
		Surveys:       handler.NewSurveyHandler(surveySvc),
		Students:      handler.NewStudentHandler(studentSvc, catalogSvc),
		Centers:       handler.NewCenterHandler(centerSvc, catalogSvc),
		Collaborators: handler.NewCollaboratorHandler(collaboratorSvc, catalogSvc),
		Tutors:        handler.NewTutorHandler(tutorSvc, catalogSvc),
		Activities:    handler.NewActivityHandler(activitySvc),
		Letters:       handler.NewLetterHandler(letterSvc),
		Catalogs:      handler.NewCatalogHandler(catalogSvc),
		Metrics:       handler.NewMetricsHandler(metricsSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
