// Package cli implements the stompbox command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/d1nch8g/stompbox/audio"
	"github.com/d1nch8g/stompbox/config"
	"github.com/d1nch8g/stompbox/effect"
	"github.com/d1nch8g/stompbox/engine"
)

var (
	// Global flags
	verbose bool

	effectID string
)

var rootCmd = &cobra.Command{
	Use:   "stompbox",
	Short: "Real-time mono audio effects processor",
	Long: `stompbox - apply a real-time effect to a live mono audio stream.

Make sure to establish the right audio connections (e.g. using qjackctl)
once the client is running. Press Ctrl-C to stop.

Effects: ` + strings.Join(effect.Names(), ", ") + `

Examples:
  stompbox -e tremolo
  STOMPBOX_HOST_API=jack stompbox --effect whitenoise`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLive,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.Flags().StringVarP(&effectID, "effect", "e", "", "effect to apply (defaults to STOMPBOX_EFFECT)")
}

func runLive(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	backend := audio.NewPortaudioBackend(audio.Config{
		HostAPI:         cfg.HostAPI,
		SampleRate:      cfg.SampleRate,
		FramesPerBuffer: cfg.FramesPerBuffer,
	})

	eng := engine.NewEngine(engine.EngineConfig{
		ClientName:        cfg.ClientName,
		RateCheckInterval: cfg.RateCheckInterval,
	}, backend, logger)

	ctx, stop := runWithContext(cmd)
	defer stop()

	logger.Info("StompBox is starting")
	return eng.Run(ctx, resolveEffect(cmd, cfg))
}

// setup loads the configuration and builds the logger shared by all commands
func setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := newLogger(cfg.LogLevel, verbose)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newLogger(level string, verbose bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose && lvl < logrus.DebugLevel {
		lvl = logrus.DebugLevel
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return logger, nil
}

// resolveEffect prefers the -e flag over STOMPBOX_EFFECT
func resolveEffect(cmd *cobra.Command, cfg *config.Config) string {
	if cmd.Flags().Changed("effect") {
		id, _ := cmd.Flags().GetString("effect")
		return id
	}
	return cfg.Effect
}

// runWithContext returns a context cancelled on SIGINT or SIGTERM
func runWithContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
}
