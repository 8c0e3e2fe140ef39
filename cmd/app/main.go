package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"commerce/cmd"
	_ "commerce/docs"
	"commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/kafka"
	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/adapters/out/postgres/productrepo"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Commerce Ordering API
// @version 1.0
// @description Order placement, review workflow and administrative order management.
// @BasePath /api/v1
func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	gormDB, err := openDatabase(config)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	writer := kafka.NewWriter(config.KafkaBrokers, config.KafkaOrderChangedTopic)
	defer func() {
		_ = writer.Close()
	}()
	publisher := kafka.NewOrderEventPublisher(writer, logger)

	app := cmd.NewCompositionRoot(config, gormDB, publisher, logger)

	jobManager := app.CreateJobManager(config)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, config)
}

// openDatabase connects through lib/pq and hands the live connection to
// GORM, then migrates the schema.
func openDatabase(config cmd.Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", config.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	if err := gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return gormDB, nil
}

func startWebServer(app *cmd.CompositionRoot, config cmd.Config) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	validator, err := http.NewOpenAPIValidator(config.OpenAPIPath)
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := http.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateVerifyOrderCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateCompleteOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}
