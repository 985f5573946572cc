package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/tatjam/direct-rf/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	prevConfig, prevScale := configFile, scaleMode
	t.Cleanup(func() {
		configFile, scaleMode = prevConfig, prevScale
	})
	configFile = ""
}

func scaleCommand(def string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&scaleMode, "scale", def, "magnitude scale")
	return cmd
}

func TestPlotConfigUsesCommandScaleDefault(t *testing.T) {
	resetFlags(t)

	// An untouched --scale must win over the config default, so a command
	// declaring "none" does not silently render dB.
	cmd := scaleCommand("none")

	cfg, err := plotConfig(cmd)
	if err != nil {
		t.Fatalf("plotConfig failed: %v", err)
	}
	if cfg.Scale != "none" {
		t.Errorf("expected scale none from flag default, got %s", cfg.Scale)
	}
}

func TestPlotConfigExplicitScaleWins(t *testing.T) {
	resetFlags(t)

	cmd := scaleCommand("none")
	if err := cmd.Flags().Set("scale", "log10"); err != nil {
		t.Fatalf("set flag failed: %v", err)
	}

	cfg, err := plotConfig(cmd)
	if err != nil {
		t.Fatalf("plotConfig failed: %v", err)
	}
	if cfg.Scale != "log10" {
		t.Errorf("expected scale log10 from explicit flag, got %s", cfg.Scale)
	}
}

func TestPlotConfigFileBeatsFlagDefault(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "rfplot.yaml")
	if err := os.WriteFile(path, []byte("scale: log10\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	configFile = path

	cmd := scaleCommand("none")

	cfg, err := plotConfig(cmd)
	if err != nil {
		t.Fatalf("plotConfig failed: %v", err)
	}
	if cfg.Scale != "log10" {
		t.Errorf("expected scale log10 from config file, got %s", cfg.Scale)
	}
}

func TestPlotConfigNoScaleFlag(t *testing.T) {
	resetFlags(t)

	// Commands without a --scale flag keep the config default.
	cmd := &cobra.Command{Use: "test"}

	cfg, err := plotConfig(cmd)
	if err != nil {
		t.Fatalf("plotConfig failed: %v", err)
	}
	if cfg.Scale != config.DefaultScale {
		t.Errorf("expected config default scale, got %s", cfg.Scale)
	}
}
