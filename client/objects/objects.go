package objects

import (
	"fmt"

	"github.com/google/uuid"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
	RemoveFromParent() error
}

// BaseObject implements the tree plumbing of a GameObject and no-op lifecycle methods.
// Concrete objects embed it and override what they need.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *childIndex
}

var _ GameObject = &BaseObject{}

type NewBaseObjectOpts struct {
	// ZIndex is the draw order of the object among its siblings.
	ZIndex int
}

// NewBaseObject creates a base object. An empty id is replaced by a random UUID.
func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	if id == "" {
		id = uuid.NewString()
	}
	if opts == nil {
		opts = &NewBaseObjectOpts{}
	}
	return &BaseObject{
		id:       id,
		zIndex:   opts.ZIndex,
		children: newChildIndex(),
	}
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen Surface) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.List()
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %w", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %w", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return fmt.Errorf("object %s has no parent", o.id)
	}
	return o.parent.RemoveChild(o.id)
}

// childIndex keeps children addressable by id while preserving insertion order.
type childIndex struct {
	idxIDObjects map[string]GameObject
	ordered      []GameObject
}

func newChildIndex() *childIndex {
	return &childIndex{
		idxIDObjects: make(map[string]GameObject),
		ordered:      make([]GameObject, 0),
	}
}

func (c *childIndex) Add(id string, child GameObject) {
	c.idxIDObjects[id] = child
	c.ordered = append(c.ordered, child)
}

func (c *childIndex) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *childIndex) Remove(id string) {
	child, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, obj := range c.ordered {
		if obj == child {
			c.ordered = append(c.ordered[:i], c.ordered[i+1:]...)
			return
		}
	}
}

func (c *childIndex) List() []GameObject {
	return c.ordered
}

// InitTree initializes the object and then its children, depth first.
func InitTree(root GameObject) error {
	if err := root.Init(); err != nil {
		return fmt.Errorf("failed to init object %s: %w", root.GetID(), err)
	}
	for _, child := range root.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of the object and then the object itself.
func DestroyTree(root GameObject) error {
	for _, child := range root.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := root.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy object %s: %w", root.GetID(), err)
	}
	return nil
}

// UpdateTree updates the object and then its children. The first error stops the walk
// and is returned as is, so callers can still match sentinels such as ebiten.Termination.
func UpdateTree(root GameObject) error {
	if err := root.Update(); err != nil {
		return err
	}
	// children may remove themselves while updating
	children := append([]GameObject(nil), root.GetChildren()...)
	for _, child := range children {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws the object and then its children on top of it.
func DrawTree(root GameObject, screen Surface) {
	root.Draw(screen)
	for _, child := range root.GetChildren() {
		DrawTree(child, screen)
	}
}
