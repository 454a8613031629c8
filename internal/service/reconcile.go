package service

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/spendbin/backend/internal/ledger"
	"github.com/thejerf/suture/v4"
)

var (
	reconcileRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reconcile_runs_total",
			Help: "How many reconciliation runs were made, partitioned by result.",
		},
		[]string{"result"},
	)

	reconcileRepaired = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reconcile_repaired_budgets_total",
			Help: "How many budgets had their remaining amount corrected by reconciliation.",
		},
	)

	reconcileFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reconcile_failed_budgets_total",
			Help: "How many budgets could not be reconciled.",
		},
	)
)

// Reconciler is implemented by *ledger.Ledger.
type Reconciler interface {
	Reconcile(ctx context.Context, scope ledger.Scope) (ledger.Report, error)
}

// ReconcileService reconciles all budgets periodically.
type ReconcileService struct {
	reconciler Reconciler
	interval   time.Duration
}

func NewReconcileService(reconciler Reconciler, interval time.Duration) *ReconcileService {
	return &ReconcileService{
		reconciler: reconciler,
		interval:   interval,
	}
}

// Serve implements suture.Service. It reconciles once on start and then
// every interval until ctx is canceled.
//
// With an interval of zero or less, the service does nothing and is not
// restarted.
func (s *ReconcileService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		log.Info().Msg("periodic reconciliation is disabled")
		return suture.ErrDoNotRestart
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.run(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// run does one reconciliation. Errors are logged, the next tick tries again.
func (s *ReconcileService) run(ctx context.Context) {
	report, err := s.reconciler.Reconcile(ctx, ledger.Scope{})
	if err != nil {
		if ctx.Err() == nil {
			log.Error().Err(err).Msg("periodic reconciliation failed")
		}
		reconcileRuns.WithLabelValues("error").Inc()
		return
	}

	reconcileRuns.WithLabelValues("success").Inc()
	reconcileRepaired.Add(float64(report.Repaired))
	reconcileFailures.Add(float64(len(report.Failures)))
}

func (s *ReconcileService) String() string {
	return "reconciler"
}
