package objects

import (
	"errors"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type drawCall struct {
	img *ebiten.Image
	at  image.Point
}

// recordingSurface records every blit instead of rendering it.
type recordingSurface struct {
	bounds image.Rectangle
	calls  []drawCall
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{bounds: image.Rect(0, 0, w, h)}
}

func (s *recordingSurface) Bounds() image.Rectangle {
	return s.bounds
}

func (s *recordingSurface) DrawImage(img *ebiten.Image, options *ebiten.DrawImageOptions) {
	x, y := options.GeoM.Apply(0, 0)
	s.calls = append(s.calls, drawCall{img: img, at: image.Pt(int(x), int(y))})
}

func (s *recordingSurface) positions() []image.Point {
	points := make([]image.Point, len(s.calls))
	for i, c := range s.calls {
		points[i] = c.at
	}
	return points
}

type recorderObject struct {
	*BaseObject

	events *[]string
	err    error
}

func newRecorderObject(id string, zIndex int, events *[]string) *recorderObject {
	return &recorderObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		events:     events,
	}
}

func (o *recorderObject) Init() error {
	*o.events = append(*o.events, "init:"+o.GetID())
	return nil
}

func (o *recorderObject) Destroy() error {
	*o.events = append(*o.events, "destroy:"+o.GetID())
	return nil
}

func (o *recorderObject) Update() error {
	*o.events = append(*o.events, "update:"+o.GetID())
	return o.err
}

func (o *recorderObject) Draw(screen Surface) {
	*o.events = append(*o.events, "draw:"+o.GetID())
}

func TestNewBaseObject_generatesID(t *testing.T) {
	a := NewBaseObject("", nil)
	b := NewBaseObject("", nil)
	assert.NotEmpty(t, a.GetID())
	assert.NotEqual(t, a.GetID(), b.GetID())
	assert.Equal(t, "root", NewBaseObject("root", nil).GetID())
}

func TestTreeWalkOrder(t *testing.T) {
	events := []string{}
	root := newRecorderObject("root", 0, &events)
	child := newRecorderObject("child", 0, &events)
	grandchild := newRecorderObject("grandchild", 0, &events)

	require.NoError(t, child.AddChild("grandchild", grandchild))
	require.NoError(t, root.AddChild("child", child))
	assert.Equal(t, []string{"init:grandchild", "init:child", "init:grandchild"}, events)

	events = events[:0]
	require.NoError(t, UpdateTree(root))
	DrawTree(root, newRecordingSurface(10, 10))
	require.NoError(t, DestroyTree(root))

	assert.Equal(t, []string{
		"update:root", "update:child", "update:grandchild",
		"draw:root", "draw:child", "draw:grandchild",
		"destroy:grandchild", "destroy:child", "destroy:root",
	}, events)
}

func TestUpdateTree_stopsOnFirstError(t *testing.T) {
	errBoom := errors.New("boom")
	events := []string{}
	root := newRecorderObject("root", 0, &events)
	first := newRecorderObject("first", 0, &events)
	first.err = errBoom
	second := newRecorderObject("second", 0, &events)
	require.NoError(t, root.AddChild("first", first))
	require.NoError(t, root.AddChild("second", second))

	events = events[:0]
	err := UpdateTree(root)
	assert.Same(t, errBoom, err)
	assert.Equal(t, []string{"update:root", "update:first"}, events)
}

func TestBaseObject_children(t *testing.T) {
	events := []string{}
	root := NewBaseObject("root", nil)
	child := newRecorderObject("child", 0, &events)

	require.NoError(t, root.AddChild("child", child))
	assert.Error(t, root.AddChild("child", child))
	assert.Equal(t, root, child.GetParent())

	require.NoError(t, child.RemoveFromParent())
	assert.Empty(t, root.GetChildren())
	assert.Nil(t, child.GetParent())
	assert.Contains(t, events, "destroy:child")
	assert.Error(t, root.RemoveChild("child"))
	assert.Error(t, child.RemoveFromParent())
}

func TestSortedZIndexObject(t *testing.T) {
	events := []string{}
	root := NewSortedZIndexObject("root")
	for _, c := range []struct {
		id     string
		zIndex int
	}{
		{"buttons", 2},
		{"rain", 0},
		{"title", 1},
		{"rain-2", 0},
	} {
		require.NoError(t, root.AddChild(c.id, newRecorderObject(c.id, c.zIndex, &events)))
	}

	ids := func() []string {
		out := []string{}
		for _, child := range root.GetChildren() {
			out = append(out, child.GetID())
		}
		return out
	}
	assert.Equal(t, []string{"rain", "rain-2", "title", "buttons"}, ids())

	title := root.GetChildren()[2]
	require.NoError(t, title.RemoveFromParent())
	assert.Equal(t, []string{"rain", "rain-2", "buttons"}, ids())
}
