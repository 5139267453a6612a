// internal/render/renderer.go
package render

import (
	"image"
	"image/color"
	"log/slog"

	"go-anatomy-viewer/internal/assets"
	"go-anatomy-viewer/internal/camera"
	"go-anatomy-viewer/internal/config"
	"go-anatomy-viewer/internal/engine"
	"go-anatomy-viewer/internal/interaction"
	"go-anatomy-viewer/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws engine frames into the raylib window.
type Renderer struct {
	logger *slog.Logger
	models *ModelManager

	model     *rl.Model
	transform engine.ModelTransform

	font     rl.Font
	measurer fontMeasurer

	background rl.Color
	hotspot    rl.Color
	tooltipBg  rl.Color
	tooltipFg  rl.Color

	cursor  interaction.Cursor
	capture func(image.Image)
}

// NewRenderer must be called after the window is open. labels are the
// hotspot labels the tooltip font has to cover.
func NewRenderer(settings config.Settings, labels []string, logger *slog.Logger) (*Renderer, error) {
	font, err := loadLabelFont(settings.FontPath, labels, logger)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		logger:     logger,
		models:     NewModelManager(logger),
		font:       font,
		measurer:   fontMeasurer{font: font, size: config.TooltipFontSize},
		background: colorToRL(config.BackgroundColor),
		hotspot:    colorToRL(config.HotspotColor),
		tooltipBg:  colorToRL(config.TooltipColor),
		tooltipFg:  colorToRL(config.TooltipTextColor),
	}, nil
}

// AttachModel uploads the body mesh and draws it with transform from now on.
func (r *Renderer) AttachModel(asset *assets.Asset, transform engine.ModelTransform) error {
	model, err := r.models.Load(asset)
	if err != nil {
		return err
	}
	r.model = &model
	r.transform = transform
	return nil
}

// CaptureNext hands the next rendered frame to fn.
func (r *Renderer) CaptureNext(fn func(image.Image)) {
	r.capture = fn
}

// Render draws one frame.
func (r *Renderer) Render(f engine.Frame) {
	r.setCursor(f.Cursor)

	rl.BeginDrawing()
	rl.ClearBackground(r.background)

	rl.BeginMode3D(toRLCamera(f.Camera))
	if r.model != nil {
		s := r.transform.Scale
		rl.DrawModelEx(*r.model, toRLVector(r.transform.Position), rl.NewVector3(0, 1, 0), 0, rl.NewVector3(s, s, s), rl.White)
	}
	for _, h := range f.Hotspots {
		rl.DrawSphere(toRLVector(h.Position), f.Radius*h.CurrentScale, r.hotspot)
	}
	rl.EndMode3D()

	r.drawTooltip(f.Tooltip)

	if r.capture != nil {
		img := rl.LoadImageFromScreen()
		r.capture(img.ToImage())
		rl.UnloadImage(img)
		r.capture = nil
	}
	rl.EndDrawing()
}

func (r *Renderer) drawTooltip(t ui.Tooltip) {
	if !t.Drawn() {
		return
	}
	box := t.Bounds(r.measurer)
	alpha := t.Opacity()
	rl.DrawRectangleRounded(
		rl.NewRectangle(box.X, box.Y, box.Width, box.Height),
		config.TooltipRoundness, 8, fade(r.tooltipBg, alpha),
	)
	rl.DrawTextEx(r.font, t.Text,
		rl.NewVector2(box.X+config.TooltipPaddingX, box.Y+config.TooltipPaddingY),
		config.TooltipFontSize, 1, fade(r.tooltipFg, alpha))
}

func (r *Renderer) setCursor(c interaction.Cursor) {
	if c == r.cursor {
		return
	}
	r.cursor = c
	switch c {
	case interaction.CursorPointer:
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	default:
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

// Release unloads every GPU resource the renderer holds.
func (r *Renderer) Release() {
	r.model = nil
	r.models.Cleanup()
	if r.font.Texture.ID != 0 {
		rl.UnloadFont(r.font)
		r.font = rl.Font{}
	}
	if r.cursor != interaction.CursorDefault {
		rl.SetMouseCursor(rl.MouseCursorDefault)
		r.cursor = interaction.CursorDefault
	}
}

func toRLCamera(c camera.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   toRLVector(c.Position),
		Target:     toRLVector(c.Target),
		Up:         toRLVector(c.Up),
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}

func toRLVector(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X(), v.Y(), v.Z())
}

// colorToRL converts a standard color.Color to rl.Color.
func colorToRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}

func fade(c rl.Color, alpha float32) rl.Color {
	c.A = uint8(float32(c.A) * alpha)
	return c
}
