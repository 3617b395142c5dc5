package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultClientName        = "StompBox"
	DefaultFramesPerBuffer   = 128
	DefaultRateCheckInterval = time.Second
	DefaultLogLevel          = "info"
)

type Config struct {
	Effect            string
	ClientName        string
	HostAPI           string
	SampleRate        float64
	FramesPerBuffer   int
	RateCheckInterval time.Duration
	LogLevel          string
}

// LoadConfig reads the optional .env file in the working directory and
// then the STOMPBOX_* environment variables.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom is LoadConfig with explicit .env file paths.
// Missing files are skipped; variables already set in the environment win.
func LoadConfigFrom(filenames ...string) (*Config, error) {
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
	}

	cfg := &Config{
		Effect:            os.Getenv("STOMPBOX_EFFECT"),
		ClientName:        getenv("STOMPBOX_CLIENT_NAME", DefaultClientName),
		HostAPI:           os.Getenv("STOMPBOX_HOST_API"),
		FramesPerBuffer:   DefaultFramesPerBuffer,
		RateCheckInterval: DefaultRateCheckInterval,
		LogLevel:          getenv("STOMPBOX_LOG_LEVEL", DefaultLogLevel),
	}

	if v := os.Getenv("STOMPBOX_SAMPLE_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 {
			return nil, fmt.Errorf("invalid STOMPBOX_SAMPLE_RATE %q", v)
		}
		cfg.SampleRate = rate
	}

	if v := os.Getenv("STOMPBOX_FRAMES_PER_BUFFER"); v != "" {
		frames, err := strconv.Atoi(v)
		if err != nil || frames <= 0 {
			return nil, fmt.Errorf("invalid STOMPBOX_FRAMES_PER_BUFFER %q", v)
		}
		cfg.FramesPerBuffer = frames
	}

	if v := os.Getenv("STOMPBOX_RATE_CHECK_INTERVAL"); v != "" {
		interval, err := time.ParseDuration(v)
		if err != nil || interval <= 0 {
			return nil, fmt.Errorf("invalid STOMPBOX_RATE_CHECK_INTERVAL %q", v)
		}
		cfg.RateCheckInterval = interval
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
