package objects

import (
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/cbodonnell/pingpong/pkg/game/constants"
	"github.com/hajimehoshi/ebiten/v2"
)

// Random is the source of randomness for the rain. *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// RainBlock is a snapshot of one falling block.
type RainBlock struct {
	X, Y  int
	Color color.RGBA
}

type rainBlock struct {
	RainBlock
	image *ebiten.Image
}

// DecorativeRain is a set of coloured squares that fall down the screen and start
// again from the top at a new column once they pass the bottom edge.
type DecorativeRain struct {
	*BaseObject

	rng    Random
	height int
	maxX   int
	blocks []*rainBlock
}

var _ GameObject = &DecorativeRain{}

type NewDecorativeRainOptions struct {
	// Bounds is the area the blocks fall through.
	Bounds image.Rectangle
	// Random is the random source for colours, columns and steps. Defaults to a
	// source seeded with the current time.
	Random Random
	// ZIndex is the z-index of the rain.
	ZIndex int
}

func NewDecorativeRain(id string, opts NewDecorativeRainOptions) *DecorativeRain {
	// screens narrower than a block only have the first column
	maxX := max(opts.Bounds.Dx()-constants.RainBlockSize, 1)
	rng := opts.Random
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	o := &DecorativeRain{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		rng:        rng,
		height:     opts.Bounds.Dy(),
		maxX:       maxX,
		blocks:     make([]*rainBlock, 0, constants.RainBlockCount),
	}
	for i := 0; i < constants.RainBlockCount; i++ {
		clr := color.RGBA{
			R: uint8(o.randRange(0, constants.RainMaxChannel)),
			G: uint8(o.randRange(0, constants.RainMaxChannel)),
			B: uint8(o.randRange(0, constants.RainMaxChannel)),
			A: 255,
		}
		img := ebiten.NewImage(constants.RainBlockSize, constants.RainBlockSize)
		img.Fill(clr)
		o.blocks = append(o.blocks, &rainBlock{
			RainBlock: RainBlock{
				X:     o.randRange(0, o.maxX),
				Y:     0,
				Color: clr,
			},
			image: img,
		})
	}
	return o
}

// randRange returns a number in [lo, hi).
func (o *DecorativeRain) randRange(lo, hi int) int {
	return lo + o.rng.Intn(hi-lo)
}

// Blocks returns the current state of every block.
func (o *DecorativeRain) Blocks() []RainBlock {
	blocks := make([]RainBlock, len(o.blocks))
	for i, b := range o.blocks {
		blocks[i] = b.RainBlock
	}
	return blocks
}

// Update moves every block down and sideways by a fresh random step. Blocks past
// the bottom edge go back to the top. Sideways drift is never clamped.
func (o *DecorativeRain) Update() error {
	for _, b := range o.blocks {
		b.Y += o.randRange(constants.RainMinFall, constants.RainMaxFall)
		b.X += o.randRange(constants.RainMinDrift, constants.RainMaxDrift)
		if b.Y+constants.RainBlockSize > o.height {
			b.Y = 0
			b.X = o.randRange(0, o.maxX)
		}
	}
	return nil
}

func (o *DecorativeRain) Draw(screen Surface) {
	for _, b := range o.blocks {
		blit(screen, b.image, b.X, b.Y)
	}
}
