// Package overlay implements the editing buffer for an ordered list of
// overlay items. Items carry a UI-local identifier that is stripped before the
// list is published, so the descriptor stays identifier-free.
package overlay

import (
	"github.com/google/uuid"
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

// AddMode decides what Add does to the existing list.
type AddMode int

const (
	// Append adds the new item after the existing ones.
	Append AddMode = iota
	// ReplaceAll discards the list and keeps only the new item.
	ReplaceAll
)

func (m AddMode) String() string {
	if m == ReplaceAll {
		return "replace-all"
	}
	return "append"
}

// ModeFor is the add behavior of each surface: the image overlay panel keeps
// a single overlay, the video overlay panel stacks them.
func ModeFor(s transform.Surface) AddMode {
	if s == transform.SurfaceImage {
		return ReplaceAll
	}
	return Append
}

// Item is one overlay in the editing buffer.
type Item struct {
	ID     string
	Fields sparse.Section
}

// Kind returns the overlay variant of the item.
func (it Item) Kind() transform.OverlayKind {
	s, _ := it.Fields["type"].(string)
	return transform.OverlayKind(s)
}

// PublishFunc receives the identifier-free list after every mutation.
type PublishFunc func(items []sparse.Section)

// Controller owns an overlay list. It is seeded once from the parent's value
// and never re-reads it; if the parent replaces the list the controller must
// be discarded and a new one seeded.
type Controller struct {
	surface transform.Surface
	mode    AddMode
	newID   func() string
	publish PublishFunc
	items   []Item
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDs replaces the identifier generator.
func WithIDs(gen func() string) Option {
	return func(c *Controller) { c.newID = gen }
}

// WithMode overrides the surface's add mode.
func WithMode(m AddMode) Option {
	return func(c *Controller) { c.mode = m }
}

// WithPublisher sets the callback invoked after every mutation.
func WithPublisher(fn PublishFunc) Option {
	return func(c *Controller) { c.publish = fn }
}

// New seeds a controller from the parent's current list. Seeding does not
// publish.
func New(surface transform.Surface, seed []sparse.Section, opts ...Option) *Controller {
	c := &Controller{
		surface: surface,
		mode:    ModeFor(surface),
		newID:   uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	c.items = make([]Item, 0, len(seed))
	for _, s := range seed {
		c.items = append(c.items, Item{ID: c.newID(), Fields: sparse.Clone(s)})
	}
	return c
}

// Surface returns the surface the controller edits.
func (c *Controller) Surface() transform.Surface { return c.surface }

// Mode returns the add behavior in effect.
func (c *Controller) Mode() AddMode { return c.mode }

// Add inserts the variant's default item and returns its identifier. Kinds the
// surface does not offer are ignored and return "".
func (c *Controller) Add(kind transform.OverlayKind) string {
	fields, ok := Default(c.surface, kind)
	if !ok {
		return ""
	}
	it := Item{ID: c.newID(), Fields: fields}
	if c.mode == ReplaceAll {
		c.items = []Item{it}
	} else {
		c.items = append(c.items, it)
	}
	c.changed()
	return it.ID
}

// Update shallow-merges patch into the item with the given identifier. It is
// a no-op when nothing matches. The item keeps its position.
func (c *Controller) Update(id string, patch sparse.Section) bool {
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		c.items[i].Fields = sparse.Merge(c.items[i].Fields, patch)
		c.changed()
		return true
	}
	return false
}

// Remove drops the item with the given identifier, keeping the relative order
// of the rest. It is a no-op when nothing matches.
func (c *Controller) Remove(id string) bool {
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		out := make([]Item, 0, len(c.items)-1)
		out = append(out, c.items[:i]...)
		c.items = append(out, c.items[i+1:]...)
		c.changed()
		return true
	}
	return false
}

// ResetAll empties the list.
func (c *Controller) ResetAll() {
	c.items = nil
	c.changed()
}

// Item returns a copy of one item.
func (c *Controller) Item(id string) (Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return Item{ID: it.ID, Fields: sparse.Clone(it.Fields)}, true
		}
	}
	return Item{}, false
}

// Items returns a copy of the editing list, identifiers included.
func (c *Controller) Items() []Item {
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		out[i] = Item{ID: it.ID, Fields: sparse.Clone(it.Fields)}
	}
	return out
}

// Published returns the list in descriptor form, without identifiers.
func (c *Controller) Published() []sparse.Section {
	out := make([]sparse.Section, len(c.items))
	for i, it := range c.items {
		out[i] = sparse.Clone(it.Fields)
	}
	return out
}

func (c *Controller) changed() {
	if c.publish != nil {
		c.publish(c.Published())
	}
}
