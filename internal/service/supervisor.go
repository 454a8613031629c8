// Package service runs the long-lived parts of spendbin under a suture
// supervisor: the HTTP server and the periodic reconciliation of budgets.
package service

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thejerf/suture/v4"
)

// SupervisorConfig holds the restart policy of the supervisor.
type SupervisorConfig struct {
	FailureThreshold float64
	FailureDecay     float64
	FailureBackoff   time.Duration
	ShutdownTimeout  time.Duration
}

// DefaultSupervisorConfig returns the defaults of suture.
func DefaultSupervisorConfig() SupervisorConfig {
	return SupervisorConfig{
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// NewSupervisor returns the root supervisor. Its events are logged with zerolog.
func NewSupervisor(config SupervisorConfig) *suture.Supervisor {
	return suture.New("spendbin", suture.Spec{
		EventHook:        logEvent,
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	})
}

func logEvent(e suture.Event) {
	switch e.Type() {
	case suture.EventTypeServicePanic, suture.EventTypeServiceTerminate:
		log.Error().Fields(e.Map()).Msg(e.String())
	case suture.EventTypeBackoff:
		log.Warn().Fields(e.Map()).Msg(e.String())
	default:
		log.Info().Fields(e.Map()).Msg(e.String())
	}
}
