package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grocery-tracker/core/config"
	"grocery-tracker/core/loader"
	"grocery-tracker/core/logger"
	"grocery-tracker/core/middleware/auth"
	"grocery-tracker/core/middleware/rayid"

	"grocery-tracker/feature/grocery"
	"grocery-tracker/feature/integrity"
	"grocery-tracker/feature/spending"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "grocery-tracker/docs/swagger"
)

// @title Grocery Tracker API
// @version 1.0
// @description Purchases, pantry and shopping list tracking with spending predictions.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the grocery tracker server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx := cmd.Context()

		b, err := openBackend(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open persistence backend", zap.Error(err))
		}
		sessions, mirror := newSessions(cfg, b.adapter, logg)
		prediction := newPredictionService(ctx, cfg, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(integrity.NewFeature(cfg.Persistence.Backend, b.db, b.client, cfg.Storage.Bucket, cfg.Storage.Region, logg))
		mgr.Register(grocery.NewFeature(sessions, mirror, logg))
		mgr.Register(spending.NewFeature(sessions, prediction, logg))

		// RayID goes first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			l.Info("Request completed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
				zap.String("ip", c.IP()),
			)
			return err
		})

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !cfg.Server.IsProtected() {
			logg.Warn("API key not set, the API is open to anyone who can reach it")
		}
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app.Group(cfg.Server.Prefix())); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("persistence", cfg.Persistence.Backend))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
