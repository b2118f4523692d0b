// internal/chain/orchestrator.go

// Package chain runs the validated sequential request chain: each step
// validates the current payload, posts it to the echo service, and feeds the
// echoed payload into the next step.
package chain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"stepchain/internal/common/logger"
	"stepchain/internal/common/metrics"
	"stepchain/internal/common/observability"
	"stepchain/internal/models"
)

// Stepper performs one validate-free echo round trip. The upstream client is
// the production implementation; tests inject fakes.
type Stepper interface {
	PostAndEcho(ctx context.Context, p models.Payload) (models.Payload, error)
}

type Orchestrator struct {
	steps    int
	upstream Stepper
	logger   logger.Logger
	obs      *observability.Observability
}

func New(steps int, upstream Stepper, log logger.Logger, obs *observability.Observability) *Orchestrator {
	return &Orchestrator{
		steps:    steps,
		upstream: upstream,
		logger:   log,
		obs:      obs,
	}
}

// Run executes the chain strictly in sequence: no step starts before the
// previous one completed, and the first failure short-circuits the rest. The
// caller's context flows into every outbound call, so a disconnect abandons
// the remaining steps.
func (o *Orchestrator) Run(ctx context.Context, initial models.Payload) (models.Payload, error) {
	runID := uuid.New().String()
	log := o.logger.WithFields(map[string]interface{}{"runId": runID})

	current := initial
	for step := 1; step <= o.steps; step++ {
		if err := ValidatePayload(current); err != nil {
			log.Warn("chain step rejected payload", map[string]interface{}{
				"step":  step,
				"error": err.Error(),
			})
			o.obs.RecordChainRun(ctx, "validation_failed")
			metrics.ChainRunsTotal.WithLabelValues("validation_failed").Inc()
			return models.Payload{}, err
		}

		start := time.Now()
		next, err := o.upstream.PostAndEcho(ctx, current)
		if err != nil {
			o.obs.RecordStepDuration(ctx, step, time.Since(start), "error")
			o.obs.RecordChainRun(ctx, "upstream_failed")
			metrics.ChainRunsTotal.WithLabelValues("upstream_failed").Inc()
			log.Error("chain step failed", map[string]interface{}{
				"step":  step,
				"error": err.Error(),
			})
			return models.Payload{}, err
		}
		o.obs.RecordStepDuration(ctx, step, time.Since(start), "ok")

		current = next
	}

	o.obs.RecordChainRun(ctx, "completed")
	metrics.ChainRunsTotal.WithLabelValues("completed").Inc()
	log.Debug("chain completed", map[string]interface{}{"steps": o.steps})

	return current, nil
}
