package panel

import (
	"thirdcoast.systems/studio/pkg/transform"
)

// Overlay item controls edit one item section directly, so every field has an
// empty Path. Blank or malformed numbers become 0 rather than removing the
// key, which keeps the variant's documented fields present.

var flipOptions = opts("h", "Horizontal", "v", "Vertical", "h_v", "Both")

var alignOptions = opts("left", "Left", "center", "Center", "right", "Right")

func gradientOptions() []Option {
	out := make([]Option, 0, len(transform.GradientDirections))
	for _, d := range transform.GradientDirections {
		out = append(out, Option{Value: d, Label: d})
	}
	return out
}

func item(key, label string, c ControlType) Field {
	return Field{Key: key, Name: key, Label: label, Control: c, Blank: BlankZero}
}

func withRange(f Field, min, max float64) Field {
	f.Min, f.Max = min, max
	return f
}

// size clamps negative input to 0 and leaves the top open.
func size(f Field) Field {
	return withRange(f, 0, NoMax)
}

func withOptions(f Field, off any, o []Option) Field {
	f.Options, f.Off = o, off
	return f
}

func withKeyword(f Field, kw string) Field {
	f.Keyword = kw
	return f
}

// intOrUnset reads whole numbers and drops the key on blank input.
func intOrUnset(f Field) Field {
	f.Blank = BlankUnset
	f.Integer = true
	return f
}

var imageOverlayFields = map[transform.OverlayKind][]Field{
	transform.OverlayText: {
		item("text", "Text", ControlTextarea),
		size(item("fontSize", "Font Size", ControlNumber)),
		item("fontFamily", "Font Family", ControlText),
		item("color", "Text Color", ControlColor),
		item("padding", "Padding", ControlText),
		withOptions(item("align", "Text Align", ControlSelect), nil, alignOptions),
		withOptions(item("flip", "Flip", ControlSelect), "none", append(opts("none", "None"), flipOptions...)),
		item("bold", "Bold", ControlToggle),
		item("italic", "Italic", ControlToggle),
		item("strike", "Strikethrough", ControlToggle),
		item("rotation", "Rotation (°)", ControlNumber),
	},
	transform.OverlaySolid: {
		item("color", "Solid Color", ControlColor),
		intOrUnset(size(item("width", "Width", ControlNumber))),
		intOrUnset(size(item("height", "Height", ControlNumber))),
		intOrUnset(size(item("radius", "Radius", ControlNumber))),
	},
	transform.OverlayGradient: {
		withOptions(item("direction", "Direction", ControlSelect), nil, gradientOptions()),
		item("fromColor", "From Color", ControlColor),
		item("toColor", "To Color", ControlColor),
		withRange(item("stopPoint", "Stop Point (%)", ControlNumber), 0, 100),
		size(item("width", "Width", ControlNumber)),
		size(item("height", "Height", ControlNumber)),
		size(item("radius", "Radius", ControlNumber)),
	},
	transform.OverlayImage: {
		item("src", "Image URL", ControlText),
		size(item("width", "Width (px)", ControlNumber)),
		size(item("height", "Height (px)", ControlNumber)),
		item("x", "X Position", ControlNumber),
		item("y", "Y Position", ControlNumber),
		withRange(item("opacity", "Opacity (%)", ControlNumber), 0, 100),
		item("bgColor", "Background Color", ControlColor),
		item("border", "Border", ControlText),
		withKeyword(size(item("radius", "Radius", ControlRadius)), transform.KeywordMax),
		item("rotation", "Rotation (°)", ControlNumber),
		withOptions(item("flip", "Flip", ControlSelect), nil, flipOptions),
	},
}

var videoOverlayBase = []Field{
	item("x", "X Position", ControlNumber),
	item("y", "Y Position", ControlNumber),
	withOptions(item("focus", "Focus", ControlSelect), nil, focusOptions),
	size(item("startOffset", "Start Offset", ControlNumber)),
	size(item("endOffset", "End Offset", ControlNumber)),
	size(item("duration", "Duration", ControlNumber)),
}

func typography(tag, label string) Field {
	f := item("typography."+tag, label, ControlTag)
	f.Name, f.Tag = "typography", tag
	return f
}

var videoOverlayFields = map[transform.OverlayKind][]Field{
	transform.OverlayText: {
		item("text", "Text", ControlTextarea),
		size(item("fontSize", "Font Size", ControlNumber)),
		item("fontFamily", "Font Family", ControlText),
		item("color", "Color", ControlColor),
		withOptions(item("align", "Align", ControlSelect), nil, alignOptions),
		item("rotation", "Rotation", ControlNumber),
		typography(transform.TypographyBold, "Bold"),
		typography(transform.TypographyItalic, "Italic"),
		typography(transform.TypographyStrike, "Strikethrough"),
	},
	transform.OverlaySolid: {
		item("color", "Color", ControlColor),
		size(item("width", "Width", ControlNumber)),
		size(item("height", "Height", ControlNumber)),
		withRange(item("opacity", "Opacity", ControlNumber), 0, 100),
		size(item("radius", "Radius", ControlNumber)),
	},
	transform.OverlayImage: {
		item("src", "Source", ControlText),
		size(item("width", "Width", ControlNumber)),
		size(item("height", "Height", ControlNumber)),
		item("rotation", "Rotation", ControlNumber),
		size(item("radius", "Radius", ControlNumber)),
		withOptions(item("aspectRatio", "Aspect Ratio", ControlSelect), nil, opts("16-9", "16:9", "4-3", "4:3", "1-1", "1:1")),
		withOptions(item("cropMode", "Crop Mode", ControlSelect), nil, opts("maintain_ratio", "Maintain Ratio", "stretch", "Stretch")),
	},
	transform.OverlayVideo: {
		item("src", "Source", ControlText),
		size(item("width", "Width", ControlNumber)),
		size(item("height", "Height", ControlNumber)),
	},
}

// OverlayKinds lists the overlay variants a surface can add, in button order.
func OverlayKinds(s transform.Surface) []transform.OverlayKind {
	switch s {
	case transform.SurfaceImage:
		return []transform.OverlayKind{transform.OverlayText, transform.OverlaySolid, transform.OverlayGradient, transform.OverlayImage}
	case transform.SurfaceVideo:
		return []transform.OverlayKind{transform.OverlayText, transform.OverlaySolid, transform.OverlayImage, transform.OverlayVideo}
	}
	return nil
}

// OverlayFields returns the item controls for one overlay variant. Video
// overlays share the placement and timing fields.
func OverlayFields(s transform.Surface, kind transform.OverlayKind) []Field {
	switch s {
	case transform.SurfaceImage:
		return imageOverlayFields[kind]
	case transform.SurfaceVideo:
		fields, ok := videoOverlayFields[kind]
		if !ok {
			return nil
		}
		out := make([]Field, 0, len(videoOverlayBase)+len(fields))
		out = append(out, videoOverlayBase...)
		return append(out, fields...)
	}
	return nil
}

// OverlayField looks up one item control by key.
func OverlayField(s transform.Surface, kind transform.OverlayKind, key string) (Field, bool) {
	for _, f := range OverlayFields(s, kind) {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// OverlaySlot is the descriptor slot holding a surface's overlay list.
func OverlaySlot(s transform.Surface) transform.Slot {
	if s == transform.SurfaceVideo {
		return transform.SlotVideoOverlays
	}
	return transform.SlotOverlays
}
