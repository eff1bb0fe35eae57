package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/courseleads/internal/app/controllers"
	appRepos "github.com/yigit/courseleads/internal/app/repositories"
	appRoutes "github.com/yigit/courseleads/internal/app/routes"
	appServices "github.com/yigit/courseleads/internal/app/services"
	"github.com/yigit/courseleads/internal/config"
	"github.com/yigit/courseleads/internal/db"
	appMiddleware "github.com/yigit/courseleads/internal/middleware"
	"github.com/yigit/courseleads/internal/pkg/logger"
	"github.com/yigit/courseleads/internal/seed"
)

// ServiceName is attached to every log line
const ServiceName = "courseleads"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	CourseController  *appControllers.CourseController
	LeadController    *appControllers.LeadController
	CommentController *appControllers.CommentController
	HealthController  *appControllers.HealthController
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.PathFromEnv()
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:   logLevel,
		Pretty:  prettyLog,
		Service: ServiceName,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, creates the schema and seeds demo data when configured to.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if cfg.Database.AutoCreateSchema {
		if err := db.EnsureSchema(ctx, database.Pool); err != nil {
			lgr.Error().Err(err).Msg("Database schema error")
			database.Close()
			return nil, fmt.Errorf("database schema setup failed: %w", err)
		}
	}

	if cfg.Database.SeedDemoData {
		if err := seed.CreateDemoData(ctx, appRepos.NewRepositories(database.Pool), lgr); err != nil {
			// Demo data is optional; the API works without it
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.PostgresDB) *Dependencies {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Services = appServices.NewServices(deps.Repos)

	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.LeadController = appControllers.NewLeadController(deps.Services.LeadService)
	deps.CommentController = appControllers.NewCommentController(deps.Services.CommentService)
	deps.HealthController = appControllers.NewHealthController(database)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.Recovery(),
		appMiddleware.CORS(cfg.Server.CORSOrigins),
	)

	appRoutes.SetupSwagger(router, "localhost:"+cfg.Server.Port)
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.LeadController,
		deps.CommentController,
		deps.HealthController,
	)

	return router
}
