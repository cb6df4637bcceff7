package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/cbodonnell/pingpong/client/input"
	"github.com/cbodonnell/pingpong/client/objects"
	"github.com/cbodonnell/pingpong/client/scenes"
	"github.com/cbodonnell/pingpong/pkg/game/constants"
	"github.com/cbodonnell/pingpong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// BackgroundColor is the clear color of every scene.
var BackgroundColor = color.RGBA{20, 20, 30, 255}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// random drives the decorative rain of the menu.
	random objects.Random
	// pointer is shared by every button.
	pointer input.Pointer
	// trigger is how buttons fire.
	trigger objects.Trigger
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
	// pending is a scene change requested during an update, applied once the
	// current scene has finished updating.
	pending func() error
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeOver
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	}
	return "Unknown"
}

type NewGameOptions struct {
	// Debug draws the FPS/TPS overlay.
	Debug bool
	// Seed seeds the menu rain when Random is nil.
	Seed int64
	// Random overrides the random source built from Seed.
	Random objects.Random
	// Pointer overrides the ebiten cursor pointer.
	Pointer input.Pointer
	// Trigger is how buttons fire.
	Trigger objects.Trigger
}

func NewGame(opts NewGameOptions) (*Game, error) {
	random := opts.Random
	if random == nil {
		random = rand.New(rand.NewSource(opts.Seed))
	}
	pointer := opts.Pointer
	if pointer == nil {
		pointer = input.NewCursorPointer()
	}

	g := &Game{
		debug:   opts.Debug,
		random:  random,
		pointer: pointer,
		trigger: opts.Trigger,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %w", err)
	}

	return g, nil
}

func (g *Game) Mode() GameMode {
	return g.mode
}

func (g *Game) Scene() scenes.Scene {
	return g.scene
}

// SetScene initializes scene and replaces the current one with it. The current
// scene is kept when the new one fails to initialize.
func (g *Game) SetScene(scene scenes.Scene) error {
	if err := scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}

	prev := g.scene
	g.scene = scene
	if prev != nil {
		if err := prev.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %w", err)
		}
	}

	return nil
}

func (g *Game) bounds() image.Rectangle {
	return image.Rect(0, 0, constants.ScreenWidth, constants.ScreenHeight)
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		Bounds:  g.bounds(),
		Random:  g.random,
		Pointer: g.pointer,
		Trigger: g.trigger,
		OnPlay: func() error {
			g.pending = g.loadGame
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %w", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %w", err)
	}
	g.setMode(GameModeMenu)
	return nil
}

func (g *Game) loadGame() error {
	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		OnGameOver: func(points int) error {
			g.pending = func() error {
				return g.loadGameOver(points)
			}
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %w", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %w", err)
	}
	g.setMode(GameModePlay)
	return nil
}

func (g *Game) loadGameOver(points int) error {
	gameOver, err := scenes.NewGameOverScene(points)
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %w", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %w", err)
	}
	g.setMode(GameModeOver)
	return nil
}

func (g *Game) setMode(mode GameMode) {
	log.Debug("Game mode %s -> %s", g.mode, mode)
	g.mode = mode
}

func (g *Game) Update() error {
	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %w", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		if errors.Is(err, ebiten.Termination) {
			log.Info("Shutting down")
			return ebiten.Termination
		}
		return fmt.Errorf("failed to update scene: %w", err)
	}

	return g.applyPending()
}

func (g *Game) applyPending() error {
	if g.pending == nil {
		return nil
	}
	next := g.pending
	g.pending = nil
	if err := next(); err != nil {
		return fmt.Errorf("failed to change scene: %w", err)
	}
	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModePlay:
		if input.IsNegativeJustPressed() {
			g.pending = g.loadMenu
			break
		}
		gameScene, ok := g.scene.(*scenes.GameScene)
		if !ok {
			return fmt.Errorf("unexpected scene %T in mode %s", g.scene, g.mode)
		}
		if input.IsScoreJustPressed() {
			gameScene.ScorePoint()
		}
		if input.IsMissJustPressed() {
			if err := gameScene.LoseLife(); err != nil {
				return fmt.Errorf("failed to lose life: %w", err)
			}
		}
	case GameModeOver:
		if input.IsPositiveJustPressed() {
			g.pending = g.loadMenu
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return constants.ScreenWidth, constants.ScreenHeight
}
