package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/alawael/platform/docs" // Import generated swagger docs
	appControllers "github.com/alawael/platform/internal/app/controllers"
	appRepos "github.com/alawael/platform/internal/app/repositories"
	appRoutes "github.com/alawael/platform/internal/app/routes"
	appServices "github.com/alawael/platform/internal/app/services"
	"github.com/alawael/platform/internal/config"
	appMiddleware "github.com/alawael/platform/internal/middleware"
	pkgAuth "github.com/alawael/platform/internal/pkg/auth"
	"github.com/alawael/platform/internal/pkg/helpers"
	"github.com/alawael/platform/internal/pkg/logger"
	"github.com/alawael/platform/internal/seed"
	"github.com/alawael/platform/internal/storage"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	IdentityService     *appServices.IdentityService
	CourseService       *appServices.CourseService
	ExamService         *appServices.ExamService
	HomeworkService     *appServices.HomeworkService
	EnrollmentService   *appServices.EnrollmentService
	CatalogService      *appServices.CatalogService
	PointsService       *appServices.PointsService
	CommunityService    *appServices.CommunityService
	AuthController      *appControllers.AuthController
	CourseController    *appControllers.CourseController
	ExamController      *appControllers.ExamController
	HomeworkController  *appControllers.HomeworkController
	PointsController    *appControllers.PointsController
	CommunityController *appControllers.CommunityController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env file is fine; real environment variables still apply.
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the configured keyspace backend and seeds demo data
// in development mode.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (storage.Store, error) {
	var store storage.Store
	var err error

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		lgr.Info().Msg("Opening postgres keyspace...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err = storage.NewPgStore(ctx, cfg)
	default:
		lgr.Info().Str("path", cfg.Storage.Path).Msg("Opening file keyspace...")
		store, err = storage.NewFileStore(cfg.Storage.Path)
	}
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to open storage")
		return nil, err
	}

	if strings.ToLower(cfg.Server.Mode) != "production" {
		if err := seed.CreateDefaultData(context.Background(), store, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed demo data, proceeding anyway...")
		}
	}

	return store, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store storage.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 720*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.IdentityService = appServices.NewIdentityService(
		deps.Repos.UserRepository,
		deps.Repos.SessionRepository,
		deps.JWTService,
		lgr,
	)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, lgr)
	deps.ExamService = appServices.NewExamService(deps.Repos.ExamRepository, deps.Repos.CourseRepository, lgr)
	deps.HomeworkService = appServices.NewHomeworkService(
		deps.Repos.HomeworkRepository,
		deps.Repos.SubmissionRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos.EnrollmentRepository, deps.Repos.CourseRepository, lgr)
	deps.CatalogService = appServices.NewCatalogService(
		deps.Repos.CourseRepository,
		deps.Repos.ExamRepository,
		deps.Repos.HomeworkRepository,
		lgr,
	)
	deps.PointsService = appServices.NewPointsService(deps.Repos.UserRepository, lgr)
	deps.CommunityService = appServices.NewCommunityService(
		deps.Repos.CommunityRepository,
		deps.Repos.UserRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.IdentityService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.EnrollmentService, lgr)
	deps.ExamController = appControllers.NewExamController(deps.ExamService, deps.CatalogService, lgr)
	deps.HomeworkController = appControllers.NewHomeworkController(deps.HomeworkService, lgr)
	deps.PointsController = appControllers.NewPointsController(deps.PointsService, lgr)
	deps.CommunityController = appControllers.NewCommunityController(deps.CommunityService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.ExamController,
		deps.HomeworkController,
		deps.PointsController,
		deps.CommunityController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

// FormatStartupBanner returns the address the server will listen on.
func FormatStartupBanner(cfg *config.Config) string {
	return fmt.Sprintf("http://localhost:%s", cfg.Server.Port)
}
