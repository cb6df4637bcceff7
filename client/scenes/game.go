package scenes

import (
	"fmt"

	"github.com/cbodonnell/pingpong/client/fonts"
	"github.com/cbodonnell/pingpong/client/objects"
	"github.com/cbodonnell/pingpong/pkg/log"
)

// GameScene is the in-game HUD: the scoreboard and the remaining lives.
type GameScene struct {
	*BaseScene

	scoreBoard  *objects.ScoreBoard
	lifeTracker *objects.LifeTracker
	onGameOver  func(points int) error
}

type GameSceneOptions struct {
	// OnGameOver is called with the final score once the last life is lost.
	OnGameOver func(points int) error
}

var _ Scene = &GameScene{}

func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	return &GameScene{
		BaseScene: NewBaseScene(objects.NewBaseObject("game-root", nil)),
		scoreBoard: objects.NewScoreBoard("game-score", objects.NewScoreBoardOptions{
			Face: fonts.ScoreFont,
		}),
		lifeTracker: objects.NewLifeTracker("game-lives", objects.NewLifeTrackerOptions{}),
		onGameOver:  opts.OnGameOver,
	}, nil
}

func (s *GameScene) Init() error {
	if err := s.Root.AddChild(s.scoreBoard.GetID(), s.scoreBoard); err != nil {
		return fmt.Errorf("failed to add scoreboard: %w", err)
	}
	if err := s.Root.AddChild(s.lifeTracker.GetID(), s.lifeTracker); err != nil {
		return fmt.Errorf("failed to add life tracker: %w", err)
	}
	return s.BaseScene.Init()
}

// ScorePoint adds one point to the scoreboard.
func (s *GameScene) ScorePoint() {
	s.scoreBoard.AddPoints(1)
	log.Trace("Point scored, total %d", s.scoreBoard.Points)
}

// LoseLife takes one life away and ends the game when none are left.
func (s *GameScene) LoseLife() error {
	if err := s.lifeTracker.Poll(); err != nil {
		return fmt.Errorf("failed to poll life: %w", err)
	}
	if s.lifeTracker.Remaining() > 0 || s.onGameOver == nil {
		return nil
	}
	log.Info("Game over with %d points", s.scoreBoard.Points)
	return s.onGameOver(s.scoreBoard.Points)
}

// Points returns the current score.
func (s *GameScene) Points() int {
	return s.scoreBoard.Points
}

// ScoreText returns the text currently shown by the scoreboard.
func (s *GameScene) ScoreText() string {
	return s.scoreBoard.Text()
}

// Lives returns the number of lives left.
func (s *GameScene) Lives() int {
	return s.lifeTracker.Remaining()
}
