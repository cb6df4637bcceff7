package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/pingpong/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ScoreBoard shows the points scored so far in the bottom-left corner of the screen.
type ScoreBoard struct {
	*BaseObject

	// Points is the current score. Callers change it directly and the next
	// Update picks it up.
	Points int

	face  font.Face
	clr   color.Color
	text  string
	image *ebiten.Image
}

var _ GameObject = &ScoreBoard{}

type NewScoreBoardOptions struct {
	// Face is the font face of the score text. Defaults to fonts.ScoreFont.
	Face font.Face
	// Color is the color of the score text. Defaults to white.
	Color color.Color
	// ZIndex is the z-index of the scoreboard.
	ZIndex int
}

func NewScoreBoard(id string, opts NewScoreBoardOptions) *ScoreBoard {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	face := opts.Face
	if face == nil {
		face = fonts.ScoreFont
	}
	o := &ScoreBoard{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		face:       face,
		clr:        clr,
	}
	o.render()
	return o
}

// AddPoints adds n to the score. The text changes on the next Update.
func (o *ScoreBoard) AddPoints(n int) {
	o.Points += n
}

// Text returns the text rendered by the last Update.
func (o *ScoreBoard) Text() string {
	return o.text
}

// Update regenerates the score text from Points.
func (o *ScoreBoard) Update() error {
	o.render()
	return nil
}

func (o *ScoreBoard) render() {
	t := fmt.Sprintf("POINTS: %d", o.Points)
	if t == o.text && o.image != nil {
		return
	}
	o.text = t
	o.image = renderText(t, o.face, o.clr)
}

func (o *ScoreBoard) Draw(screen Surface) {
	b := screen.Bounds()
	blit(screen, o.image, b.Min.X, b.Max.Y-o.image.Bounds().Dy())
}
