// cmd/viewer/run.go
package main

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"go-anatomy-viewer/internal/config"
	"go-anatomy-viewer/internal/defs"
	"go-anatomy-viewer/internal/engine"
	"go-anatomy-viewer/internal/render"
	"go-anatomy-viewer/internal/snapshot"
)

// run opens the window and drives the engine until the window closes.
func run(settings config.Settings, logger *slog.Logger) error {
	hotspotDefs, err := defs.LoadHotspotDefinitions(settings.HotspotsFile)
	if err != nil {
		return err
	}
	labels := make([]string, len(hotspotDefs))
	for i, d := range hotspotDefs {
		labels[i] = d.Label
	}

	window := render.OpenWindow(settings)
	defer window.Close()

	renderer, err := render.NewRenderer(settings, labels, logger)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}

	callbacks := engine.Callbacks{
		OnSelectBodyPart: func(label string) {
			logger.Info("body part selected", "label", label)
		},
	}
	eng, err := engine.Start(window, renderer, callbacks, engine.Options{
		Settings: settings,
		Hotspots: hotspotDefs,
		Logger:   logger,
	})
	if err != nil {
		renderer.Release()
		return err
	}
	defer eng.Teardown()

	for !window.ShouldClose() {
		window.Poll()
		if window.SnapshotRequested() {
			renderer.CaptureNext(func(img image.Image) {
				saveSnapshot(settings.SnapshotDir, img, logger)
			})
		}
		if !eng.Tick(window.FrameTime()) {
			break
		}
	}
	return nil
}

func saveSnapshot(dir string, img image.Image, logger *slog.Logger) {
	p, err := snapshot.Write(dir, img, time.Now())
	if err != nil {
		logger.Error("snapshot failed", "err", err)
		return
	}
	logger.Info("snapshot saved", "path", p)
}
