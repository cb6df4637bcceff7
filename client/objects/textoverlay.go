package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/pingpong/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// TextOverlayObject draws upper-cased text centred horizontally at a fixed height.
type TextOverlayObject struct {
	*BaseObject

	text  string
	y     int
	image *ebiten.Image
}

type NewTextOverlayObjectOptions struct {
	// Text is the text to display. It is upper-cased.
	Text string
	// Face is the font face used to render the text. Defaults to fonts.TitleFont.
	Face font.Face
	// Color is the color of the text. Defaults to white.
	Color color.Color
	// Y is the top of the text. A negative value centres it vertically.
	Y int
	// ZIndex is the z-index of the overlay.
	ZIndex int
}

func NewTextOverlayObject(id string, opts NewTextOverlayObjectOptions) *TextOverlayObject {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	face := opts.Face
	if face == nil {
		face = fonts.TitleFont
	}
	t := strings.ToUpper(opts.Text)
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       t,
		y:          opts.Y,
		image:      renderText(t, face, clr),
	}
}

func (o *TextOverlayObject) Text() string {
	return o.text
}

func (o *TextOverlayObject) Draw(screen Surface) {
	b := screen.Bounds()
	size := o.image.Bounds().Size()
	x := b.Min.X + (b.Dx()-size.X)/2
	y := b.Min.Y + o.y
	if o.y < 0 {
		y = b.Min.Y + (b.Dy()-size.Y)/2
	}
	blit(screen, o.image, x, y)
}
