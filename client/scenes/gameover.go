package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/pingpong/client/fonts"
	"github.com/cbodonnell/pingpong/client/objects"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

type GameOverScene struct {
	*BaseScene

	points int
	ui     *ebitenui.UI
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(points int) (*GameOverScene, error) {
	return &GameOverScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("gameover-root", nil)),
		points:    points,
	}, nil
}

func (s *GameOverScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *GameOverScene) renderUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.NRGBA{R: 20, G: 20, B: 30, A: 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    200,
				Left:   120,
				Right:  120,
				Bottom: 90,
			}))),
	)

	lines := []struct {
		text string
		face font.Face
		clr  color.Color
	}{
		{"GAME OVER", fonts.TitleFont, color.NRGBA{R: 167, G: 0, B: 0, A: 255}},
		{fmt.Sprintf("POINTS: %d", s.points), fonts.ButtonFont, color.White},
		{"PRESS TO CONTINUE", fonts.ScoreFont, color.NRGBA{R: 200, G: 200, B: 200, A: 255}},
	}
	for _, line := range lines {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(line.text, line.face, line.clr),
			widget.TextOpts.WidgetOpts(
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
		))
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Points returns the final score shown by the scene.
func (s *GameOverScene) Points() int {
	return s.points
}

func (s *GameOverScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
