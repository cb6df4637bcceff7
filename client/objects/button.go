package objects

import (
	"image"
	"image/color"

	"github.com/cbodonnell/pingpong/client/fonts"
	"github.com/cbodonnell/pingpong/client/input"
	"github.com/cbodonnell/pingpong/pkg/game/constants"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var (
	// DefaultButtonColor is the background of a button created without a color.
	DefaultButtonColor = color.RGBA{68, 68, 98, 255}
	// DefaultButtonTextColor is the label color of a button created without one.
	DefaultButtonTextColor = color.RGBA{200, 200, 200, 255}
)

// Action is a callback run when a button is pressed.
type Action func() error

// Trigger decides when a pressed button fires its actions.
type Trigger int

const (
	// TriggerHeld fires on every update while the pointer is over the button and
	// held down, so a long press repeats. This matches the original menu but is
	// most likely not what players expect.
	TriggerHeld Trigger = iota
	// TriggerPress fires once per press, on the update the pointer goes down over
	// the button.
	TriggerPress
)

func (t Trigger) String() string {
	switch t {
	case TriggerHeld:
		return "held"
	case TriggerPress:
		return "press"
	}
	return "unknown"
}

// Button is a clickable rounded rectangle with a text label.
type Button struct {
	*BaseObject

	pointer input.Pointer
	trigger Trigger
	actions []Action

	rect       image.Rectangle
	labelPos   image.Point
	label      *ebiten.Image
	background *ebiten.Image

	wasPressed bool
	// stale is set when the pointer was already down at Init. That press is
	// ignored until the pointer is released.
	stale bool
}

var _ GameObject = &Button{}

type NewButtonOptions struct {
	// Text is the label of the button.
	Text string
	// X is the x-coordinate of the top-left corner of the button.
	X int
	// Y is the y-coordinate of the top-left corner of the button.
	Y int
	// Color is the background color. Defaults to DefaultButtonColor.
	Color color.Color
	// TextColor is the label color. Defaults to DefaultButtonTextColor.
	TextColor color.Color
	// Face is the font face of the label. Defaults to fonts.ButtonFont.
	Face font.Face
	// Pointer is read on every update to detect presses. Defaults to the ebiten
	// cursor.
	Pointer input.Pointer
	// Trigger selects held or per-press firing. Defaults to TriggerHeld.
	Trigger Trigger
	// ZIndex is the z-index of the button.
	ZIndex int
}

// NewButton creates a button that runs actions in the given order when pressed.
func NewButton(id string, opts NewButtonOptions, actions ...Action) *Button {
	clr := opts.Color
	if clr == nil {
		clr = DefaultButtonColor
	}
	textClr := opts.TextColor
	if textClr == nil {
		textClr = DefaultButtonTextColor
	}

	face := opts.Face
	if face == nil {
		face = fonts.ButtonFont
	}
	pointer := opts.Pointer
	if pointer == nil {
		pointer = input.NewCursorPointer()
	}

	label := renderText(opts.Text, face, textClr)
	labelSize := label.Bounds().Size()
	rect := image.Rect(0, 0, labelSize.X+constants.ButtonInflate, labelSize.Y+constants.ButtonInflate).
		Add(image.Pt(opts.X, opts.Y))

	center := image.Pt(rect.Min.X+rect.Dx()/2, rect.Min.Y+rect.Dy()/2)
	labelPos := center.Sub(image.Pt(labelSize.X/2, labelSize.Y/2))

	return &Button{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		pointer:    pointer,
		trigger:    opts.Trigger,
		actions:    append([]Action(nil), actions...),
		rect:       rect,
		labelPos:   labelPos,
		label:      label,
		background: newRoundedRect(rect.Dx(), rect.Dy(), constants.ButtonBorderRadius, clr),
	}
}

// Rect returns the clickable area of the button.
func (o *Button) Rect() image.Rectangle {
	return o.rect
}

// LabelPosition returns the top-left corner of the label.
func (o *Button) LabelPosition() image.Point {
	return o.labelPos
}

// Init records whether the pointer is already down, so a press carried over from
// the previous screen does not fire the button.
func (o *Button) Init() error {
	o.stale = o.pointer.IsPrimaryPressed()
	o.wasPressed = o.stale
	return nil
}

// Update runs every action, in order, when the pointer presses the button. The
// first failing action stops the rest and its error is returned unchanged.
func (o *Button) Update() error {
	pressed := o.pointer.IsPrimaryPressed()
	if o.stale {
		o.stale = pressed
		o.wasPressed = pressed
		if pressed {
			return nil
		}
	}
	fire := pressed && o.pointer.Position().In(o.rect)
	if o.trigger == TriggerPress {
		fire = fire && !o.wasPressed
	}
	o.wasPressed = pressed
	if !fire {
		return nil
	}
	for _, action := range o.actions {
		if err := action(); err != nil {
			return err
		}
	}
	return nil
}

func (o *Button) Draw(screen Surface) {
	blit(screen, o.background, o.rect.Min.X, o.rect.Min.Y)
	blit(screen, o.label, o.labelPos.X, o.labelPos.Y)
}

// newRoundedRect renders a filled w x h rectangle with rounded corners. The
// radius is clamped to half of the shorter side.
func newRoundedRect(w, h, radius int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	r := float32(min(radius, w/2, h/2))
	fw, fh := float32(w), float32(h)
	if r <= 0 {
		img.Fill(clr)
		return img
	}
	vector.DrawFilledRect(img, r, 0, fw-2*r, fh, clr, false)
	vector.DrawFilledRect(img, 0, r, fw, fh-2*r, clr, false)
	for _, c := range [][2]float32{{r, r}, {fw - r, r}, {r, fh - r}, {fw - r, fh - r}} {
		vector.DrawFilledCircle(img, c[0], c[1], r, clr, true)
	}
	return img
}
