package transform

import (
	"fmt"

	"thirdcoast.systems/studio/pkg/sparse"
)

// Slot names the top-level descriptor entry owned by one panel.
type Slot string

const (
	SlotAIMagic          Slot = "aiMagic"
	SlotEnhancements     Slot = "enhancements"
	SlotOverlays         Slot = "overlays"
	SlotBasics           Slot = "basics"
	SlotVideoEnhancement Slot = "videoEnhancement"
	SlotAudio            Slot = "audio"
	SlotVideoOverlays    Slot = "videoOverlays"
)

// Surface is the kind of asset a workspace edits.
type Surface string

const (
	SurfaceImage Surface = "image"
	SurfaceVideo Surface = "video"
)

// Valid reports whether s is a known surface.
func (s Surface) Valid() bool {
	return s == SurfaceImage || s == SurfaceVideo
}

// Descriptor is the full set of requested transformations for one asset.
// Every slot is optional; an absent slot applies nothing.
type Descriptor struct {
	AIMagic          *AIMagic          `json:"aiMagic,omitempty"`
	Enhancements     *Enhancements     `json:"enhancements,omitempty"`
	Overlays         []Overlay         `json:"overlays,omitempty" validate:"omitempty,dive"`
	Basics           *VideoBasics      `json:"basics,omitempty"`
	VideoEnhancement *VideoEnhancement `json:"videoEnhancement,omitempty"`
	Audio            *Audio            `json:"audio,omitempty"`
	VideoOverlays    []Overlay         `json:"videoOverlays,omitempty" validate:"omitempty,dive"`
}

// DecodeDescriptor reads the typed descriptor from its tree form.
func DecodeDescriptor(s sparse.Section) (Descriptor, error) {
	d, err := sparse.Decode[Descriptor](s)
	if err != nil {
		return Descriptor{}, fmt.Errorf("decode descriptor: %w", err)
	}
	return d, nil
}

// SlotSection returns the slice of the tree owned by a section panel.
func SlotSection(root sparse.Section, slot Slot) sparse.Section {
	return sparse.SectionAt(root, sparse.Path{string(slot)})
}

// WithSlot replaces a panel slot wholesale. An empty section removes the
// slot so the descriptor never carries an empty panel entry.
func WithSlot(root sparse.Section, slot Slot, value sparse.Section) sparse.Section {
	if len(value) == 0 {
		return sparse.Merge(root, sparse.Section{string(slot): sparse.Unset})
	}
	return sparse.Merge(root, sparse.Section{string(slot): value})
}

// SlotList returns an overlay slot as a list of item sections.
func SlotList(root sparse.Section, slot Slot) []sparse.Section {
	raw, ok := root[string(slot)]
	if !ok {
		return nil
	}
	var items []any
	switch t := raw.(type) {
	case []any:
		items = t
	case []sparse.Section:
		out := make([]sparse.Section, len(t))
		for i := range t {
			out[i] = sparse.Clone(t[i])
		}
		return out
	default:
		return nil
	}
	out := make([]sparse.Section, 0, len(items))
	for _, it := range items {
		if s, ok := sparse.AsSection(it); ok {
			out = append(out, sparse.Clone(s))
		}
	}
	return out
}

// WithList replaces an overlay slot. An empty list removes the slot.
func WithList(root sparse.Section, slot Slot, items []sparse.Section) sparse.Section {
	if len(items) == 0 {
		return sparse.Merge(root, sparse.Section{string(slot): sparse.Unset})
	}
	list := make([]any, len(items))
	for i := range items {
		list[i] = items[i]
	}
	return sparse.Merge(root, sparse.Section{string(slot): list})
}
