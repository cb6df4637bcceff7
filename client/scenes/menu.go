package scenes

import (
	"fmt"
	"image"

	"github.com/cbodonnell/pingpong/client/fonts"
	"github.com/cbodonnell/pingpong/client/input"
	"github.com/cbodonnell/pingpong/client/objects"
	"github.com/cbodonnell/pingpong/pkg/game/constants"
	"github.com/cbodonnell/pingpong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

const (
	menuTitleY       = 140
	menuFirstButtonY = 280
	menuButtonGap    = 60
)

type MenuScene struct {
	*BaseScene

	bounds  image.Rectangle
	random  objects.Random
	pointer input.Pointer
	trigger objects.Trigger
	onPlay  func() error
}

type MenuSceneOptions struct {
	// Bounds is the screen area of the menu.
	Bounds image.Rectangle
	// Random drives the background rain.
	Random objects.Random
	// Pointer is read by the menu buttons.
	Pointer input.Pointer
	// Trigger selects how the menu buttons fire.
	Trigger objects.Trigger
	// OnPlay is called when the play button is pressed.
	OnPlay func() error
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (*MenuScene, error) {
	if opts.Pointer == nil {
		return nil, fmt.Errorf("pointer is required")
	}
	if opts.Random == nil {
		return nil, fmt.Errorf("random source is required")
	}
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("menu-root")),
		bounds:    opts.Bounds,
		random:    opts.Random,
		pointer:   opts.Pointer,
		trigger:   opts.Trigger,
		onPlay:    opts.OnPlay,
	}, nil
}

func (s *MenuScene) Init() error {
	root := s.Root
	rain := objects.NewDecorativeRain("menu-rain", objects.NewDecorativeRainOptions{
		Bounds: s.bounds,
		Random: s.random,
	})
	if err := root.AddChild(rain.GetID(), rain); err != nil {
		return fmt.Errorf("failed to add rain: %w", err)
	}

	title := objects.NewTextOverlayObject("menu-title", objects.NewTextOverlayObjectOptions{
		Text:   "Ping Pong",
		Face:   fonts.TitleFont,
		Y:      menuTitleY,
		ZIndex: 1,
	})
	if err := root.AddChild(title.GetID(), title); err != nil {
		return fmt.Errorf("failed to add title: %w", err)
	}

	buttons := []struct {
		id     string
		text   string
		action objects.Action
	}{
		{"menu-play", "PLAY", s.play},
		{"menu-quit", "QUIT", s.quit},
	}
	for i, b := range buttons {
		button := objects.NewButton(b.id, objects.NewButtonOptions{
			Text:    b.text,
			X:       centeredButtonX(fonts.ButtonFont, b.text, s.bounds),
			Y:       s.bounds.Min.Y + menuFirstButtonY + i*menuButtonGap,
			Face:    fonts.ButtonFont,
			Pointer: s.pointer,
			Trigger: s.trigger,
			ZIndex:  2,
		}, b.action)
		if err := root.AddChild(button.GetID(), button); err != nil {
			return fmt.Errorf("failed to add button %s: %w", b.id, err)
		}
	}

	// the tree is initialised once built, so buttons see the pointer state
	return s.BaseScene.Init()
}

func (s *MenuScene) play() error {
	log.Debug("Play pressed")
	if s.onPlay == nil {
		return nil
	}
	return s.onPlay()
}

func (s *MenuScene) quit() error {
	log.Info("Quit pressed")
	return ebiten.Termination
}

// centeredButtonX returns the x-coordinate that centres a button with the given
// label horizontally within bounds.
func centeredButtonX(face font.Face, label string, bounds image.Rectangle) int {
	w := font.MeasureString(face, label).Ceil() + constants.ButtonInflate
	return bounds.Min.X + (bounds.Dx()-w)/2
}
