package overlay

import (
	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

// PlaceholderImage is the source given to new image overlays on the image
// surface.
const PlaceholderImage = "https://via.placeholder.com/150"

var imageDefaults = map[transform.OverlayKind]sparse.Section{
	transform.OverlayText: {
		"text": "Sample Text", "fontSize": 16.0, "color": "000000",
		"bold": false, "italic": false, "strike": false, "rotation": 0.0,
	},
	transform.OverlaySolid: {
		"color": "ff0000", "width": 100.0, "height": 100.0, "radius": 0.0,
	},
	transform.OverlayGradient: {
		"direction": "top", "fromColor": "000000", "toColor": "000000", "stopPoint": 0.0,
		"width": 100.0, "height": 100.0, "radius": 0.0,
	},
	transform.OverlayImage: {
		"src": PlaceholderImage, "width": 100.0, "height": 100.0, "x": 0.0, "y": 0.0,
	},
}

var videoBase = sparse.Section{
	"x": 0.0, "y": 0.0, "focus": string(transform.FocusCenter),
	"startOffset": 0.0, "endOffset": 0.0, "duration": 0.0,
}

var videoDefaults = map[transform.OverlayKind]sparse.Section{
	transform.OverlayText: {
		"text": "Sample Text", "fontSize": 16.0, "fontFamily": "Arial", "color": "000000",
		"align": string(transform.AlignLeft), "typography": []any{}, "rotation": 0.0,
	},
	transform.OverlaySolid: {
		"color": "ff0000", "width": 100.0, "height": 100.0, "opacity": 100.0, "radius": 0.0,
	},
	transform.OverlayImage: {
		"src": "", "width": 100.0, "height": 100.0, "rotation": 0.0, "radius": 0.0,
		"aspectRatio": "16-9", "cropMode": string(transform.CropMaintainRatio),
	},
	transform.OverlayVideo: {
		"src": "", "width": 200.0, "height": 100.0,
	},
}

// Default returns a fresh default record for a variant on a surface, or false
// when the surface does not offer that variant.
func Default(s transform.Surface, kind transform.OverlayKind) (sparse.Section, bool) {
	var fields sparse.Section
	var ok bool
	switch s {
	case transform.SurfaceImage:
		fields, ok = imageDefaults[kind]
	case transform.SurfaceVideo:
		fields, ok = videoDefaults[kind]
		if ok {
			fields = sparse.Merge(videoBase, fields)
		}
	}
	if !ok {
		return nil, false
	}
	out := sparse.Clone(fields)
	out["type"] = string(kind)
	return out, true
}
