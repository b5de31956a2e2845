package render

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/pixeled/internal/render/layout"
	"github.com/rook-computer/pixeled/internal/state"
)

const (
	statusFontSize = 12
	statusPadding  = 4
)

// StatusBar draws a one-line summary of the workspace along the bottom edge
// of the surface.
type StatusBar struct {
	face   font.Face
	height int
}

// NewStatusBar loads the embedded Go Mono face and falls back to basicfont if
// it cannot be parsed.
func NewStatusBar(logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}) *StatusBar {
	var face font.Face = basicfont.Face7x13
	if tt, err := truetype.Parse(gomono.TTF); err != nil {
		if logger != nil {
			logger.Errorf("hud", "truetype parse failed, using basicfont: %v", err)
		}
	} else {
		face = truetype.NewFace(tt, &truetype.Options{Size: statusFontSize, DPI: 72, Hinting: font.HintingFull})
	}
	return NewStatusBarWithFace(face)
}

func NewStatusBarWithFace(face font.Face) *StatusBar {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	return &StatusBar{
		face:   face,
		height: metrics.Height.Ceil() + 2*statusPadding,
	}
}

// Height is the strip height in pixels.
func (b *StatusBar) Height() int { return b.height }

// Text formats the summary line.
func (b *StatusBar) Text(ws *state.Workspace) string {
	painted := 0
	if c, ok := ws.ActiveCanvas(); ok {
		painted = c.Count()
	}
	return fmt.Sprintf("%s slot %d x%d (%d,%d) #%02x%02x%02x px %d",
		ws.Mode, ws.Active, ws.Scale, ws.Cursor.X, ws.Cursor.Y,
		ws.CursorColor.R, ws.CursorColor.G, ws.CursorColor.B, painted)
}

// Draw renders the strip over whatever is already on the surface.
func (b *StatusBar) Draw(s *Surface, ws *state.Workspace) {
	bounds := s.Bounds()
	if bounds.Dy() < b.height {
		return
	}
	_, strip := layout.SplitHorizontal(bounds, bounds.Dy()-b.height)
	s.Fill(strip, StatusBackground)

	inner := layout.Inset(strip, statusPadding)
	swatch := image.Rect(inner.Min.X, inner.Min.Y, inner.Min.X+inner.Dy(), inner.Max.Y)
	s.Fill(swatch, ws.CursorColor)

	drawer := &font.Drawer{
		Dst:  s.Image(),
		Src:  image.NewUniform(StatusForeground.RGBA()),
		Face: b.face,
	}
	ascent := b.face.Metrics().Ascent.Ceil()
	drawer.Dot = fixed.P(swatch.Max.X+statusPadding, inner.Min.Y+ascent)
	drawer.DrawString(b.Text(ws))
}
