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

	_ "github.com/franciscosanchezn/pizza-restaurants-api/docs" // Import generated docs
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/config"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/database"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

const indexPage = "<h1>Code challenge</h1>"

// @title Pizza Restaurants API
// @version 1.0
// @description Restaurants, pizzas and the prices restaurants charge for them
// @host localhost:8080
// @BasePath /
func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the pizza-api command tree. Running it without a
// subcommand starts the HTTP server.
func newRootCommand() *cobra.Command {
	var conf *config.Config

	cmd := &cobra.Command{
		Use:          "pizza-api",
		Short:        "REST API for restaurants, pizzas and their prices",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			loadDotenvFile()
			var err error
			conf, err = config.LoadConfig()
			if err != nil {
				return err
			}
			setUpLogger(conf)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), conf)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), conf)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Migrate the schema and load the sample restaurants and pizzas into an empty database",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runSeed(conf)
		},
	})

	return cmd
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment.
// An explicit LOG_LEVEL takes precedence over the environment default.
func setUpLogger(conf *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	switch conf.Environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}

	if conf.LogLevel == "" {
		return
	}
	level, err := log.ParseLevel(conf.LogLevel)
	if err != nil {
		log.WithField("log_level", conf.LogLevel).Warn("Unknown log level, keeping environment default")
		return
	}
	log.SetLevel(level)
}

// setupDatabase opens the database, migrates the schema and seeds it when empty
func setupDatabase(conf *config.Config) (*gorm.DB, error) {
	db, err := database.InitDatabase(conf.DatabaseConfig())
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	if conf.SeedOnStart {
		seeded, err := database.SeedIfEmpty(db)
		if err != nil {
			_ = database.Close(db)
			return nil, err
		}
		if !seeded {
			log.Info("Database already contains data, skipping seed")
		}
	}
	return db, nil
}

// runSeed migrates the schema and loads the sample data into an empty database
func runSeed(conf *config.Config) error {
	db, err := database.InitDatabase(conf.DatabaseConfig())
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}
	_, err = database.SeedIfEmpty(db)
	return err
}

// runServe starts the HTTP server and blocks until SIGINT or SIGTERM, then
// drains in-flight requests before closing the database
func runServe(ctx context.Context, conf *config.Config) error {
	db, err := setupDatabase(conf)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	defer database.Close(db)

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", conf.Host, conf.Port),
		Handler:      setupRouter(db),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("Server exited")
	return nil
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(log.StandardLogger()), gin.Recovery())

	setupRoutes(router, db)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, db *gorm.DB) {
	router.GET("/", indexHandler)
	router.GET("/health", healthCheckHandler)

	controllers.RegisterRoutes(router,
		controllers.NewRestaurantController(services.NewRestaurantService(db)),
		controllers.NewPizzaController(services.NewPizzaService(db)),
		controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db)),
	)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-restaurants-api",
	})
}
