package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spendbin/backend/internal/auth"
	v1 "github.com/spendbin/backend/internal/controllers/v1"
	"github.com/spendbin/backend/internal/models"
	"github.com/spendbin/backend/internal/router"
	"github.com/spendbin/backend/internal/service"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the API server",
	Long:  "Runs the API server and the periodic reconciliation of budgets until SIGINT or SIGTERM is received.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	err := connect(cfg.Database)
	if err != nil {
		return err
	}

	tokens, err := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	url, err := cfg.Server.URL()
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(url)
	defer teardown()
	if err != nil {
		return err
	}

	controller := v1.New(models.DB, tokens, cfg.Ledger.MaxAmountDecimal())
	router.AttachRoutes(controller, r.Group("/"))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	supervisor := service.NewSupervisor(service.DefaultSupervisorConfig())
	supervisor.Add(service.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	supervisor.Add(service.NewReconcileService(controller.Ledger, cfg.Ledger.ReconcileInterval))

	log.Info().Str("addr", server.Addr).Str("url", url.String()).Dur("reconcile_interval", cfg.Ledger.ReconcileInterval).Msg("starting spendbin")

	err = supervisor.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info().Msg("spendbin stopped")
	return nil
}
