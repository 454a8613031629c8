// Package cmd implements the spendbin CLI commands.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spendbin/backend/internal/config"
	"github.com/spendbin/backend/internal/models"
	"github.com/spf13/cobra"
)

// cfg is loaded before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:               "spendbin",
	Short:             "Daily budgets and expenses",
	Long:              "spendbin tracks daily budgets, the expenses recorded against them and monthly expense buckets.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return err
	}

	setupLogging(cfg.Logging.Format)
	return nil
}

// setupLogging configures gin and the global logger.
func setupLogging(format string) {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(ginMode)
	}

	// If the format is not set, it defaults to human readable for
	// development and JSON for release
	output := io.Writer(os.Stdout)
	if (format == "" && gin.IsDebugging()) || format == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// connect opens the configured database.
func connect(db config.DatabaseConfig) error {
	if db.Postgres() {
		return models.ConnectPostgres(models.PostgresDSN(db.Host, db.User, db.Password, db.Name))
	}

	err := os.MkdirAll(filepath.Dir(db.Path), os.ModePerm)
	if err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	return models.Connect(db.Path)
}
