// internal/render/font.go
package render

import (
	"fmt"
	"log/slog"
	"os"

	"go-anatomy-viewer/internal/config"
	"go-anatomy-viewer/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font/gofont/goregular"
)

// fontMeasurer measures tooltip text in the loaded raylib font.
type fontMeasurer struct {
	font rl.Font
	size float32
}

func (m fontMeasurer) Measure(text string) (float32, float32) {
	v := rl.MeasureTextEx(m.font, text, m.size, 1)
	return v.X, v.Y
}

// loadLabelFont bakes the glyphs needed by labels from path, or from the
// bundled Go font when path is empty. Labels the font cannot render are
// logged.
func loadLabelFont(path string, labels []string, logger *slog.Logger) (rl.Font, error) {
	ttf := goregular.TTF
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return rl.Font{}, fmt.Errorf("read font: %w", err)
		}
		ttf = data
	}

	missing, err := ui.MissingGlyphs(ttf, labels)
	if err != nil {
		return rl.Font{}, err
	}
	if len(missing) > 0 {
		logger.Warn("tooltip font lacks glyphs", "font", fontName(path), "runes", string(missing))
	}

	// bake at 2x for crisp downscaling
	font := rl.LoadFontFromMemory(".ttf", ttf, int32(config.TooltipFontSize*2), ui.Codepoints(labels))
	if font.BaseSize == 0 {
		return rl.Font{}, fmt.Errorf("raylib could not load %s", fontName(path))
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, nil
}

func fontName(path string) string {
	if path == "" {
		return "goregular"
	}
	return path
}
