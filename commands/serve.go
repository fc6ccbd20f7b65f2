package commands

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakery-shop/config"
	"bakery-shop/routes"

	"github.com/spf13/cobra"
)

var (
	skipMigrations bool
	inMemory       bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply schema and seed migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()
		if err := config.RunMigrations(cfg.DSN()); err != nil {
			return err
		}
		success("Migrations applied")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply migrations on start")
	serveCmd.Flags().BoolVar(&inMemory, "memory", false, "Serve the seeded catalog from memory instead of Postgres")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func runServe() error {
	cfg := config.LoadConfig()

	var (
		router  http.Handler
		cleanup func()
	)
	if inMemory {
		router, cleanup = routes.BootstrapMemory(cfg)
	} else {
		engine, done, err := routes.Bootstrap(cfg, !skipMigrations)
		if err != nil {
			return err
		}
		router, cleanup = engine, done
	}
	defer cleanup()

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	return nil
}
