package transform

import (
	"fmt"

	"thirdcoast.systems/studio/pkg/sparse"
)

// OverlayKind tags an overlay variant.
type OverlayKind string

const (
	OverlayText     OverlayKind = "text"
	OverlaySolid    OverlayKind = "solid"
	OverlayGradient OverlayKind = "gradient"
	OverlayImage    OverlayKind = "image"
	OverlayVideo    OverlayKind = "video"
)

// Overlay is one composited layer. Type selects which fields apply; the rest
// stay absent. Overlays render in list order, later ones on top.
type Overlay struct {
	Type OverlayKind `json:"type" validate:"required,oneof=text solid gradient image video"`

	// text
	Text       *string  `json:"text,omitempty"`
	FontSize   *float64 `json:"fontSize,omitempty" validate:"omitempty,min=0"`
	FontFamily *string  `json:"fontFamily,omitempty"`
	Align      *Align   `json:"align,omitempty" validate:"omitempty,oneof=left center right"`
	Bold       *bool    `json:"bold,omitempty"`
	Italic     *bool    `json:"italic,omitempty"`
	Strike     *bool    `json:"strike,omitempty"`
	Typography []string `json:"typography,omitempty" validate:"omitempty,dive,oneof=b i strikethrough"`
	Padding    *string  `json:"padding,omitempty"`

	// shared by several variants
	Color    *string  `json:"color,omitempty"`
	Width    *float64 `json:"width,omitempty" validate:"omitempty,min=0"`
	Height   *float64 `json:"height,omitempty" validate:"omitempty,min=0"`
	Radius   *Radius  `json:"radius,omitempty"`
	Rotation *float64 `json:"rotation,omitempty"`
	Flip     *Flip    `json:"flip,omitempty" validate:"omitempty,oneof=h v h_v"`
	Opacity  *float64 `json:"opacity,omitempty" validate:"omitempty,min=0,max=100"`

	// gradient
	Direction *string  `json:"direction,omitempty"`
	FromColor *string  `json:"fromColor,omitempty"`
	ToColor   *string  `json:"toColor,omitempty"`
	StopPoint *float64 `json:"stopPoint,omitempty" validate:"omitempty,min=0,max=100"`

	// image and video
	Src         *string   `json:"src,omitempty"`
	BgColor     *string   `json:"bgColor,omitempty"`
	Border      *string   `json:"border,omitempty"`
	AspectRatio *string   `json:"aspectRatio,omitempty"`
	CropMode    *string   `json:"cropMode,omitempty"`

	// placement and timing
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Focus       *Focus   `json:"focus,omitempty" validate:"omitempty,oneof=center top bottom left right top_left top_right bottom_left bottom_right"`
	StartOffset *float64 `json:"startOffset,omitempty" validate:"omitempty,min=0"`
	EndOffset   *float64 `json:"endOffset,omitempty" validate:"omitempty,min=0"`
	Duration    *float64 `json:"duration,omitempty" validate:"omitempty,min=0"`
}

// HasTypography reports whether tag is in the text overlay's tag set.
func (o Overlay) HasTypography(tag string) bool {
	for _, t := range o.Typography {
		if t == tag {
			return true
		}
	}
	return false
}

// DecodeOverlay reads an overlay item from its tree form.
func DecodeOverlay(s sparse.Section) (Overlay, error) {
	o, err := sparse.Decode[Overlay](s)
	if err != nil {
		return Overlay{}, fmt.Errorf("decode overlay: %w", err)
	}
	if o.Type == "" {
		return Overlay{}, fmt.Errorf("decode overlay: missing type")
	}
	return o, nil
}
