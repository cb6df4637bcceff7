package objects

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type Lifecycle interface {
	// Game flow methods
	Init() error
	Destroy() error
	Update() error
	Draw(screen Surface)
}

// Surface is the render target objects draw on. *ebiten.Image satisfies it.
type Surface interface {
	Bounds() image.Rectangle
	DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions)
}

var _ Surface = (*ebiten.Image)(nil)

// blit draws img on screen with its top-left corner at (x, y).
func blit(screen Surface, img *ebiten.Image, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}
