package panel

import (
	"errors"
	"fmt"

	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

var (
	ErrUnknownPanel = errors.New("unknown panel")
	ErrUnknownField = errors.New("unknown field")
	ErrUnknownGroup = errors.New("unknown group")
)

// Group is one collapsible block of a panel with its own reset button.
type Group struct {
	Name   string
	Title  string
	Fields []Field
	// Reset lists the paths removed by the group's reset. Defaults to the
	// section named after the group.
	Reset []sparse.Path
}

// ResetPaths returns the paths cleared by the group's reset.
func (g Group) ResetPaths() []sparse.Path {
	if len(g.Reset) > 0 {
		return g.Reset
	}
	return []sparse.Path{{g.Name}}
}

// Panel binds one descriptor slot to its controls. A panel holds no copy of
// the descriptor: every operation takes the current slot value and returns
// the complete replacement.
type Panel struct {
	Name    string
	Title   string
	Slot    transform.Slot
	Surface transform.Surface
	Groups  []Group
	// Pinned sections stay in the tree when emptied.
	Pinned []sparse.Path
}

// Field looks up a control by key.
func (p *Panel) Field(key string) (Field, bool) {
	for _, g := range p.Groups {
		for _, f := range g.Fields {
			if f.Key == key {
				return f, true
			}
		}
	}
	return Field{}, false
}

// Group looks up a group by name.
func (p *Panel) Group(name string) (Group, bool) {
	for _, g := range p.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}

// Fields returns every control of the panel in display order.
func (p *Panel) Fields() []Field {
	var out []Field
	for _, g := range p.Groups {
		out = append(out, g.Fields...)
	}
	return out
}

func (p *Panel) pin() sparse.PinFunc {
	return sparse.Pinned(p.Pinned...)
}

// Update applies one control edit to the slot value.
func (p *Panel) Update(slot sparse.Section, key, raw string) (sparse.Section, error) {
	f, ok := p.Field(key)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", p.Name, ErrUnknownField, key)
	}
	holder := sparse.SectionAt(slot, f.Path)
	return sparse.MergeAt(slot, f.Path, f.Patch(holder, raw), p.pin()), nil
}

// ResetGroup removes the sections owned by one group. Siblings are left
// untouched.
func (p *Panel) ResetGroup(slot sparse.Section, name string) (sparse.Section, error) {
	g, ok := p.Group(name)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", p.Name, ErrUnknownGroup, name)
	}
	return sparse.WithoutAll(slot, g.ResetPaths()...), nil
}

// ResetAll removes everything the panel owns. A panel owns its whole slot,
// so the result is always empty and the caller drops the slot.
func (p *Panel) ResetAll(sparse.Section) sparse.Section {
	return sparse.Section{}
}

// Canonical returns slot with every control sitting at its off value removed
// and emptied sections dropped, so an imported slot follows the same
// presence rules as one built through Update.
func (p *Panel) Canonical(slot sparse.Section) sparse.Section {
	out := sparse.Clone(slot)
	for _, f := range p.Fields() {
		if v, ok := sparse.Get(out, f.LeafPath()); ok && f.IsOff(v) {
			out = sparse.Without(out, f.LeafPath())
		}
	}
	return sparse.Prune(out, p.pin())
}

// Visible reports whether a field is shown for the current slot value.
func (p *Panel) Visible(f Field, slot sparse.Section) bool {
	return f.When == nil || f.When(slot)
}

// Value returns what a control displays for the current slot value.
func (p *Panel) Value(f Field, slot sparse.Section) (any, bool) {
	return f.Current(sparse.SectionAt(slot, f.Path))
}

// Present is a Condition that holds when path exists in the slot.
func Present(path string) Condition {
	p := sparse.ParsePath(path)
	return func(slot sparse.Section) bool {
		_, ok := sparse.Get(slot, p)
		return ok
	}
}

// Absent is a Condition that holds when path is missing from the slot.
func Absent(path string) Condition {
	present := Present(path)
	return func(slot sparse.Section) bool { return !present(slot) }
}

// AnyOf holds when at least one condition holds.
func AnyOf(conds ...Condition) Condition {
	return func(slot sparse.Section) bool {
		for _, c := range conds {
			if c(slot) {
				return true
			}
		}
		return false
	}
}

// Equals is a Condition that holds when the value at path equals v.
func Equals(path string, v any) Condition {
	p := sparse.ParsePath(path)
	return func(slot sparse.Section) bool {
		got, ok := sparse.Get(slot, p)
		return ok && got == v
	}
}
