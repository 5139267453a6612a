// internal/config/settings.go
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the runtime-tunable subset of the viewer configuration.
// Zero values are replaced with the package constants by Resolve.
type Settings struct {
	AssetPath    string `toml:"asset_path"`
	HotspotsFile string `toml:"hotspots_file"`
	FontPath     string `toml:"font_path"`
	SnapshotDir  string `toml:"snapshot_dir"`

	Width     int `toml:"width"`
	Height    int `toml:"height"`
	TargetFPS int `toml:"target_fps"`

	Camera  CameraSettings  `toml:"camera"`
	Hotspot HotspotSettings `toml:"hotspot"`
	Model   ModelSettings   `toml:"model"`
}

type CameraSettings struct {
	Fovy            float32    `toml:"fovy"`
	Near            float32    `toml:"near"`
	Far             float32    `toml:"far"`
	Position        [3]float32 `toml:"position"`
	Target          [3]float32 `toml:"target"`
	RotateSpeed     float32    `toml:"rotate_speed"`
	ZoomSpeed       float32    `toml:"zoom_speed"`
	MinDistance     float32    `toml:"min_distance"`
	MaxDistance     float32    `toml:"max_distance"`
	SpringFrequency float64    `toml:"spring_frequency"`
	DampingRatio    float64    `toml:"damping_ratio"`
}

type HotspotSettings struct {
	Radius         float32 `toml:"radius"`
	HoverScale     float32 `toml:"hover_scale"`
	PulseAmplitude float32 `toml:"pulse_amplitude"`
	PulseRate      float32 `toml:"pulse_rate"`
}

type ModelSettings struct {
	Scale    float32    `toml:"scale"`
	Position [3]float32 `toml:"position"`
}

// Flags holds CLI flag values that override the settings file.
type Flags struct {
	AssetPath    string
	HotspotsFile string
	SnapshotDir  string
	Width        int
	Height       int
	TargetFPS    int
}

// Load reads a TOML settings file. Fields missing from the file keep their zero values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return s, nil
}

// Default returns fully resolved settings built from the package constants.
func Default() Settings {
	var s Settings
	s.Resolve(Flags{})
	return s
}

// Resolve applies CLI overrides and fills every unset field with its default.
func (s *Settings) Resolve(flags Flags) {
	if flags.AssetPath != "" {
		s.AssetPath = flags.AssetPath
	}
	if flags.HotspotsFile != "" {
		s.HotspotsFile = flags.HotspotsFile
	}
	if flags.SnapshotDir != "" {
		s.SnapshotDir = flags.SnapshotDir
	}
	if flags.Width > 0 {
		s.Width = flags.Width
	}
	if flags.Height > 0 {
		s.Height = flags.Height
	}
	if flags.TargetFPS > 0 {
		s.TargetFPS = flags.TargetFPS
	}

	if s.AssetPath == "" {
		s.AssetPath = AssetPath
	}
	if s.SnapshotDir == "" {
		s.SnapshotDir = "."
	}
	if s.Width <= 0 {
		s.Width = ScreenWidth
	}
	if s.Height <= 0 {
		s.Height = ScreenHeight
	}
	if s.TargetFPS <= 0 {
		s.TargetFPS = TargetFPS
	}

	c := &s.Camera
	if c.Fovy <= 0 {
		c.Fovy = CameraFovy
	}
	if c.Near <= 0 {
		c.Near = CameraNear
	}
	if c.Far <= c.Near {
		c.Far = CameraFar
	}
	if c.Position == ([3]float32{}) {
		c.Position = CameraStart
	}
	if c.Target == ([3]float32{}) {
		c.Target = CameraTarget
	}
	if c.RotateSpeed <= 0 {
		c.RotateSpeed = CameraRotateSpeed
	}
	if c.ZoomSpeed <= 0 {
		c.ZoomSpeed = CameraZoomSpeed
	}
	if c.MinDistance <= 0 {
		c.MinDistance = CameraMinDistance
	}
	if c.MaxDistance <= c.MinDistance {
		c.MaxDistance = CameraMaxDistance
	}
	if c.SpringFrequency <= 0 {
		c.SpringFrequency = SpringFrequency
	}
	if c.DampingRatio <= 0 {
		c.DampingRatio = DampingRatio
	}

	h := &s.Hotspot
	if h.Radius <= 0 {
		h.Radius = HotspotRadius
	}
	if h.HoverScale <= 0 {
		h.HoverScale = HoverScale
	}
	if h.PulseAmplitude <= 0 {
		h.PulseAmplitude = PulseAmplitude
	}
	if h.PulseRate <= 0 {
		h.PulseRate = PulseRate
	}

	if s.Model.Scale <= 0 {
		s.Model.Scale = ModelScale
	}
	if s.Model.Position == ([3]float32{}) {
		s.Model.Position = ModelOffset
	}
}
