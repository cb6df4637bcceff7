package objects

import (
	"errors"
	"image"
	"image/color"

	"github.com/cbodonnell/pingpong/pkg/game/constants"
	"github.com/cbodonnell/pingpong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoLivesRemaining is returned by LifeTracker.Poll when every life is gone.
var ErrNoLivesRemaining = errors.New("no lives remaining")

// DefaultLifeColor is the fill of a life square.
var DefaultLifeColor = color.RGBA{167, 0, 0, 255}

// LifeUnit is one life, drawn as a filled square.
type LifeUnit struct {
	image *ebiten.Image
}

func newLifeUnit(clr color.Color) *LifeUnit {
	img := ebiten.NewImage(constants.LifeUnitSize, constants.LifeUnitSize)
	img.Fill(clr)
	return &LifeUnit{image: img}
}

// LifeTracker shows the remaining lives as a row of squares along the bottom-right edge.
// The oldest life is the rightmost one and is the first to go.
type LifeTracker struct {
	*BaseObject

	units []*LifeUnit
}

var _ GameObject = &LifeTracker{}

type NewLifeTrackerOptions struct {
	// Color is the fill of each life square. Defaults to DefaultLifeColor.
	Color color.Color
	// ZIndex is the z-index of the tracker.
	ZIndex int
}

func NewLifeTracker(id string, opts NewLifeTrackerOptions) *LifeTracker {
	clr := opts.Color
	if clr == nil {
		clr = DefaultLifeColor
	}
	o := &LifeTracker{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		units:      make([]*LifeUnit, 0, constants.StartingLives),
	}
	for i := 0; i < constants.StartingLives; i++ {
		o.units = append(o.units, newLifeUnit(clr))
	}
	return o
}

// Remaining returns how many lives are left.
func (o *LifeTracker) Remaining() int {
	return len(o.units)
}

// Poll takes away the oldest life. It fails with ErrNoLivesRemaining once the
// tracker is empty.
func (o *LifeTracker) Poll() error {
	if len(o.units) == 0 {
		return ErrNoLivesRemaining
	}
	o.units[0] = nil
	o.units = o.units[1:]
	log.Debug("Life lost, %d remaining", len(o.units))
	return nil
}

// Layout returns the top-left corner of every remaining life within bounds,
// indexed the same way as the lives, so index 0 is the rightmost square.
func (o *LifeTracker) Layout(bounds image.Rectangle) []image.Point {
	points := make([]image.Point, len(o.units))
	y := bounds.Max.Y - (constants.LifeRowHeight + constants.LifeUnitPadding)
	for i := range o.units {
		x := bounds.Max.X - (constants.LifeUnitStep + constants.LifeUnitPadding) - i*constants.LifeUnitStep
		points[i] = image.Pt(x, y)
	}
	return points
}

func (o *LifeTracker) Draw(screen Surface) {
	for i, p := range o.Layout(screen.Bounds()) {
		blit(screen, o.units[i].image, p.X, p.Y)
	}
}
