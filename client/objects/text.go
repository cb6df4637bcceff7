package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// renderText draws s onto a new image sized to the face's advance and line height.
func renderText(s string, face font.Face, clr color.Color) *ebiten.Image {
	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil()
	h := m.Height.Ceil()
	// ebiten rejects empty images
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	text.Draw(img, s, face, 0, m.Ascent.Ceil(), clr)
	return img
}
