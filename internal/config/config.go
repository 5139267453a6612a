// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 500
	TargetFPS    = 60
	MaxDeltaTime = 0.06
	WindowTitle  = "Anatomy Viewer"

	// Camera
	CameraFovy        = 45.0
	CameraNear        = 0.1
	CameraFar         = 100.0
	CameraRotateSpeed = 1.0
	CameraZoomSpeed   = 1.0
	CameraMinDistance = 0.5
	CameraMaxDistance = 10.0
	SpringFrequency   = 6.0 // angular frequency of orbit easing
	DampingRatio      = 1.0 // 1 = critically damped

	// Hotspots
	HotspotRadius  = 0.02
	HotspotBase    = 1.0
	HoverScale     = 1.15
	PulseAmplitude = 0.03
	PulseRate      = 3.0 // radians per second

	// Body model
	AssetPath  = "assets/models/human_glb.glb"
	ModelScale = 0.3

	// Tooltip
	TooltipFontSize  = 13
	TooltipPaddingX  = 10
	TooltipPaddingY  = 6
	TooltipFade      = 0.12 // seconds
	TooltipLift      = 1.3  // box is lifted by 130% of its height
	TooltipRoundness = 0.4

	// Input
	ClickDragThreshold = 4.0 // pixels; longer drags orbit instead of clicking
)

var (
	CameraStart  = [3]float32{0, 1.5, 3}
	CameraTarget = [3]float32{0, 1, 0}
	ModelOffset  = [3]float32{0, 1.5, 0}

	BackgroundColor  = color.RGBA{0xf5, 0xf7, 0xfb, 255}
	HotspotColor     = color.RGBA{0x00, 0xff, 0xff, 255}
	TooltipColor     = color.RGBA{20, 20, 30, 230}
	TooltipTextColor = color.RGBA{255, 255, 255, 255}
)
