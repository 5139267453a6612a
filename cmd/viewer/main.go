// cmd/viewer/main.go
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go-anatomy-viewer/internal/config"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	flags      config.Flags
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewer",
		Short: "Interactive 3D anatomy hotspot viewer",
		Long: `viewer - Interactive 3D anatomy hotspot viewer

Point at a marker on the body to see its region, click it to select.

Controls:
  Mouse drag  - Orbit around the body
  Scroll      - Zoom in/out
  F12         - Save a WebP snapshot
  Esc         - Quit`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, logger, err := setup()
			if err != nil {
				return err
			}
			return run(settings, logger)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to a TOML settings file")
	pf.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.HotspotsFile, "hotspots", "", "Path to a JSON hotspot table (default: built-in body map)")

	cmd.Flags().StringVar(&flags.AssetPath, "asset", "", "Body mesh path or http(s) URL (.glb/.gltf)")
	cmd.Flags().IntVar(&flags.Width, "width", 0, "Window width")
	cmd.Flags().IntVar(&flags.Height, "height", 0, "Window height")
	cmd.Flags().IntVar(&flags.TargetFPS, "fps", 0, "Target FPS")
	cmd.Flags().StringVar(&flags.SnapshotDir, "snapshot-dir", "", "Directory for F12 snapshots")

	cmd.AddCommand(newHotspotsCmd(), newInfoCmd())
	return cmd
}

// setup resolves settings from the config file and flags and builds the logger.
func setup() (config.Settings, *slog.Logger, error) {
	logger, err := newLogger(logLevel)
	if err != nil {
		return config.Settings{}, nil, err
	}
	var settings config.Settings
	if configPath != "" {
		settings, err = config.Load(configPath)
		if err != nil {
			return config.Settings{}, nil, err
		}
	}
	settings.Resolve(flags)
	return settings, logger, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
	return logger, nil
}
