// internal/render/model.go
package render

import (
	"errors"
	"fmt"
	"log/slog"

	"go-anatomy-viewer/internal/assets"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var ErrEmptyModel = errors.New("model has no meshes")

// ModelManager owns the GPU copies of loaded meshes, keyed by asset URI.
type ModelManager struct {
	models map[string]rl.Model
	logger *slog.Logger
}

func NewModelManager(logger *slog.Logger) *ModelManager {
	return &ModelManager{
		models: make(map[string]rl.Model),
		logger: logger,
	}
}

// Load uploads the asset's file to the GPU. raylib panics on some corrupt
// files; that is turned into an error.
func (m *ModelManager) Load(asset *assets.Asset) (model rl.Model, err error) {
	if existing, ok := m.models[asset.URI]; ok {
		return existing, nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("raylib panicked loading %s: %v", asset.LocalPath, r)
		}
	}()

	model = rl.LoadModel(asset.LocalPath)
	if model.MeshCount == 0 {
		rl.UnloadModel(model)
		return rl.Model{}, fmt.Errorf("%s: %w", asset.LocalPath, ErrEmptyModel)
	}
	m.models[asset.URI] = model
	m.logger.Debug("model uploaded", "uri", asset.URI, "meshes", model.MeshCount, "materials", model.MaterialCount)
	return model, nil
}

// Cleanup unloads every model.
func (m *ModelManager) Cleanup() {
	for uri, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, uri)
	}
	m.logger.Debug("all models unloaded")
}
