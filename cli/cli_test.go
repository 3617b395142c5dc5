package cli

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/d1nch8g/stompbox/config"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		verbose bool
		want    logrus.Level
	}{
		{"info", false, logrus.InfoLevel},
		{"info", true, logrus.DebugLevel},
		{"warn", false, logrus.WarnLevel},
		{"trace", true, logrus.TraceLevel},
		{"debug", false, logrus.DebugLevel},
	}

	for _, tt := range tests {
		logger, err := newLogger(tt.level, tt.verbose)
		if err != nil {
			t.Fatalf("newLogger(%q, %v) error = %v", tt.level, tt.verbose, err)
		}
		if got := logger.GetLevel(); got != tt.want {
			t.Errorf("newLogger(%q, %v) level = %v, want %v", tt.level, tt.verbose, got, tt.want)
		}
	}

	if _, err := newLogger("loud", false); err == nil {
		t.Error("newLogger(loud) error = nil, want error")
	}
}

func TestResolveEffect(t *testing.T) {
	cfg := &config.Config{Effect: "whitenoise"}

	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().StringP("effect", "e", "", "")
		return cmd
	}

	cmd := newCmd()
	if got := resolveEffect(cmd, cfg); got != "whitenoise" {
		t.Errorf("resolveEffect() without flag = %q, want whitenoise", got)
	}

	cmd = newCmd()
	if err := cmd.Flags().Parse([]string{"-e", "Tremolo"}); err != nil {
		t.Fatal(err)
	}
	if got := resolveEffect(cmd, cfg); got != "Tremolo" {
		t.Errorf("resolveEffect() with flag = %q, want Tremolo", got)
	}

	cmd = newCmd()
	if err := cmd.Flags().Parse([]string{"--effect", ""}); err != nil {
		t.Fatal(err)
	}
	if got := resolveEffect(cmd, cfg); got != "" {
		t.Errorf("resolveEffect() with empty flag = %q, want empty", got)
	}
}

func TestCommandTree(t *testing.T) {
	for _, name := range []string{"render", "devices"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("rootCmd.Find(%q) = %v, %v", name, cmd, err)
		}
	}
	if rootCmd.Flags().ShorthandLookup("e") == nil {
		t.Error("root command has no -e flag")
	}
}
