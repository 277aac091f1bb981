package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bintangns/WMS-Prototype/cmd"
	httpadapter "github.com/bintangns/WMS-Prototype/internal/adapters/in/http"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/activity"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres/clientrepo"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres/hurepo"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres/itemrepo"
	"github.com/bintangns/WMS-Prototype/internal/adapters/out/postgres/sessionrepo"
	"github.com/bintangns/WMS-Prototype/internal/generated/servers"
	"github.com/bintangns/WMS-Prototype/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := connectDB(configs)
	migrateDB(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		app.CreateCloseStaleSessionsCommandHandler(),
		configs.SessionTTL,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		JWTSecret:         goDotEnvVariable("JWT_SECRET"),
		TokenTTL:          durationEnvVariable("TOKEN_TTL", 8*time.Hour),
		SessionTTL:        durationEnvVariable("SESSION_TTL", 30*time.Minute),
		FeatureSchemaPath: goDotEnvVariable("FEATURE_SCHEMA_PATH"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return d
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&clientrepo.ClientDTO{},
		&hurepo.HandlingUnitDTO{},
		&itemrepo.ItemDTO{},
		&sessionrepo.WorkstationDTO{},
		&sessionrepo.SessionDTO{},
		&activity.ActivityLogDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateStartSessionCommandHandler(),
		app.CreateCloseSessionsCommandHandler(),
		app.CreateCreateClientCommandHandler(),
		app.CreateCreateEmptyHandlingUnitCommandHandler(),
		app.CreateReplaceHandlingUnitItemsCommandHandler(),
		app.CreateCreatePoolItemCommandHandler(),
		app.CreateAssignItemsBySKUCommandHandler(),
		app.CreateUnassignItemsCommandHandler(),
		app.CreateScanHandlingUnitCommandHandler(),
		app.CreateVerifyItemCommandHandler(),
		app.CreateRegisterWorkstationCommandHandler(),
		app.CreateGetHandlingUnitQueryHandler(),
		app.CreateListPoolItemsQueryHandler(),
		app.CreateGetAllClientsQueryHandler(),
		app.CreateGetAllWorkstationsQueryHandler(),
		app.CreateRecommendBoxQueryHandler(),
		app.TokenIssuer(),
		app.ActivityRecorder(),
	)

	e.Use(httpadapter.ActivityMiddleware(app.ActivityRecorder()))
	e.Use(httpadapter.AuthMiddleware(app.TokenIssuer(), "/health", "/auth/login"))
	servers.RegisterHandlers(e, server)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
