package objects

import (
	"fmt"
	"image"
	"testing"

	"github.com/cbodonnell/pingpong/client/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func TestScoreBoard_Update(t *testing.T) {
	tests := []struct {
		name       string
		increments []int
		want       string
	}{
		{
			name: "no points",
			want: "POINTS: 0",
		},
		{
			name:       "single point",
			increments: []int{1},
			want:       "POINTS: 1",
		},
		{
			name:       "several increments",
			increments: []int{1, 2, 3, 10},
			want:       "POINTS: 16",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewScoreBoard("score", NewScoreBoardOptions{Face: basicfont.Face7x13})
			for _, n := range tt.increments {
				o.AddPoints(n)
				require.NoError(t, o.Update())
				assert.Equal(t, o.Points, parsePoints(t, o.Text()))
			}
			assert.Equal(t, tt.want, o.Text())
		})
	}
}

func parsePoints(t *testing.T, text string) int {
	t.Helper()
	var n int
	_, err := fmt.Sscanf(text, "POINTS: %d", &n)
	require.NoError(t, err)
	return n
}

func TestScoreBoard_textIsStaleUntilUpdate(t *testing.T) {
	o := NewScoreBoard("score", NewScoreBoardOptions{Face: basicfont.Face7x13})
	o.Points = 42
	assert.Equal(t, "POINTS: 0", o.Text())
	require.NoError(t, o.Update())
	assert.Equal(t, "POINTS: 42", o.Text())
}

func TestNewScoreBoard_defaults(t *testing.T) {
	o := NewScoreBoard("score", NewScoreBoardOptions{})
	assert.Equal(t, "POINTS: 0", o.Text())

	screen := newRecordingSurface(800, 600)
	o.Draw(screen)
	require.Len(t, screen.calls, 1)
	h := fonts.ScoreFont.Metrics().Height.Ceil()
	assert.Equal(t, image.Pt(0, 600-h), screen.calls[0].at)
	assert.Equal(t, h, screen.calls[0].img.Bounds().Dy())
}

func TestScoreBoard_Draw(t *testing.T) {
	o := NewScoreBoard("score", NewScoreBoardOptions{Face: basicfont.Face7x13})
	screen := newRecordingSurface(800, 600)
	o.Draw(screen)

	// basicfont.Face7x13 lines are 13 pixels high
	require.Len(t, screen.calls, 1)
	assert.Equal(t, image.Pt(0, 587), screen.calls[0].at)
	assert.Equal(t, image.Pt(63, 13), screen.calls[0].img.Bounds().Size())
}

func TestLifeTracker_Poll(t *testing.T) {
	o := NewLifeTracker("lives", NewLifeTrackerOptions{})
	assert.Equal(t, 3, o.Remaining())

	for k := 1; k <= 3; k++ {
		require.NoError(t, o.Poll())
		assert.Equal(t, 3-k, o.Remaining())
	}

	assert.ErrorIs(t, o.Poll(), ErrNoLivesRemaining)
	assert.Equal(t, 0, o.Remaining())
}

func TestLifeTracker_Layout(t *testing.T) {
	tests := []struct {
		name  string
		polls int
		want  []image.Point
	}{
		{
			name: "full",
			want: []image.Point{{768, 568}, {738, 568}, {708, 568}},
		},
		{
			name:  "one lost",
			polls: 1,
			want:  []image.Point{{768, 568}, {738, 568}},
		},
		{
			name:  "all lost",
			polls: 3,
			want:  []image.Point{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewLifeTracker("lives", NewLifeTrackerOptions{})
			for i := 0; i < tt.polls; i++ {
				require.NoError(t, o.Poll())
			}
			assert.Equal(t, tt.want, o.Layout(image.Rect(0, 0, 800, 600)))

			screen := newRecordingSurface(800, 600)
			o.Draw(screen)
			assert.Equal(t, tt.want, screen.positions())
		})
	}
}

func TestLifeTracker_Draw_compactsAfterPoll(t *testing.T) {
	o := NewLifeTracker("lives", NewLifeTrackerOptions{})
	second := o.units[1].image
	third := o.units[2].image

	require.NoError(t, o.Poll())
	screen := newRecordingSurface(800, 600)
	o.Draw(screen)

	require.Len(t, screen.calls, 2)
	assert.Same(t, second, screen.calls[0].img)
	assert.Equal(t, image.Pt(768, 568), screen.calls[0].at)
	assert.Same(t, third, screen.calls[1].img)
	assert.Equal(t, image.Pt(738, 568), screen.calls[1].at)
	assert.Equal(t, image.Pt(15, 15), second.Bounds().Size())
}

func TestNewTextOverlayObject_defaults(t *testing.T) {
	o := NewTextOverlayObject("title", NewTextOverlayObjectOptions{Text: "ping pong"})

	size := o.image.Bounds().Size()
	assert.Equal(t, font.MeasureString(fonts.TitleFont, "PING PONG").Ceil(), size.X)
	assert.Equal(t, fonts.TitleFont.Metrics().Height.Ceil(), size.Y)
}

func TestTextOverlayObject_Draw(t *testing.T) {
	o := NewTextOverlayObject("title", NewTextOverlayObjectOptions{
		Text: "game over",
		Face: basicfont.Face7x13,
		Y:    -1,
	})
	assert.Equal(t, "GAME OVER", o.Text())

	screen := newRecordingSurface(800, 600)
	o.Draw(screen)
	require.Len(t, screen.calls, 1)
	assert.Equal(t, image.Pt(368, 293), screen.calls[0].at)

	top := NewTextOverlayObject("title", NewTextOverlayObjectOptions{
		Text: "ping pong",
		Face: basicfont.Face7x13,
		Y:    100,
	})
	screen = newRecordingSurface(800, 600)
	top.Draw(screen)
	assert.Equal(t, image.Pt(368, 100), screen.calls[0].at)
}
