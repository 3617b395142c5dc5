package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/d1nch8g/stompbox/audio"
	"github.com/d1nch8g/stompbox/effect"
)

// EngineConfig holds the configuration for a processing session
type EngineConfig struct {
	ClientName        string
	RateCheckInterval time.Duration
}

// Engine binds an audio backend, the selected effect and a processing loop
// for the lifetime of one session.
type Engine struct {
	config  EngineConfig
	backend audio.Backend
	logger  logrus.FieldLogger

	loop       *Loop
	sampleRate float64
}

// NewEngine creates a new engine instance
func NewEngine(config EngineConfig, backend audio.Backend, logger logrus.FieldLogger) *Engine {
	if config.ClientName == "" {
		config.ClientName = "StompBox"
	}
	if config.RateCheckInterval <= 0 {
		config.RateCheckInterval = time.Second
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Engine{
		config:  config,
		backend: backend,
		logger:  logger,
	}
}

// Run opens the backend, selects the effect named effectID and processes
// audio until ctx is cancelled or the backend finishes on its own.
func (e *Engine) Run(ctx context.Context, effectID string) error {
	if err := e.backend.Open(e.config.ClientName); err != nil {
		return fmt.Errorf("failed to open audio backend: %w", err)
	}
	defer func() {
		if err := e.backend.Close(); err != nil {
			e.logger.WithError(err).Warn("failed to close audio backend")
		}
	}()

	e.sampleRate = e.backend.SampleRate()
	fx := effect.Select(effectID, e.backend)
	e.loop = NewLoop(fx)

	log := e.logger.WithFields(logrus.Fields{
		"client":      e.config.ClientName,
		"effect":      fx.Name(),
		"sample_rate": e.sampleRate,
	})
	log.Info("effect selected")

	if err := e.loop.Bind(); err != nil {
		return err
	}
	if err := e.backend.Register(e.loop.Process); err != nil {
		return fmt.Errorf("failed to register process callback: %w", err)
	}
	if err := e.backend.Activate(); err != nil {
		return fmt.Errorf("failed to activate audio backend: %w", err)
	}

	log.Info("processing started")

	ticker := time.NewTicker(e.config.RateCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("processing stopped")
			return nil
		case <-e.backend.Done():
			if err := e.backend.Err(); err != nil {
				return fmt.Errorf("audio backend stopped: %w", err)
			}
			log.Info("audio backend finished")
			return nil
		case <-ticker.C:
			e.checkSampleRate()
		}
	}
}

// checkSampleRate propagates a changed backend rate to rate-aware effects
func (e *Engine) checkSampleRate() {
	rate := e.backend.SampleRate()
	if rate == e.sampleRate || rate <= 0 {
		return
	}

	e.logger.WithFields(logrus.Fields{
		"old_sample_rate": e.sampleRate,
		"new_sample_rate": rate,
	}).Info("sample rate changed")
	e.sampleRate = rate

	if ra, ok := e.loop.Effect().(effect.RateAware); ok {
		ra.SetSampleRate(rate)
	}
}

// Loop returns the processing loop of the current session, nil before Run
func (e *Engine) Loop() *Loop {
	return e.loop
}
