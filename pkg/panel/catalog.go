package panel

import (
	"fmt"
	"sort"
	"strconv"

	"thirdcoast.systems/studio/pkg/sparse"
	"thirdcoast.systems/studio/pkg/transform"
)

// Panel names used in URLs and by the CLI.
const (
	NameAIMagic          = "ai-magic"
	NameEnhancements     = "enhancements"
	NameAudio            = "audio"
	NameVideoBasics      = "video-basics"
	NameVideoEnhancement = "video-enhancement"
)

var registry = map[string]*Panel{}

func register(p *Panel) *Panel {
	for gi := range p.Groups {
		for fi := range p.Groups[gi].Fields {
			f := &p.Groups[gi].Fields[fi]
			if f.Name == "" {
				path := sparse.ParsePath(f.Key)
				f.Path, f.Name = path[:len(path)-1], path[len(path)-1]
			}
		}
	}
	registry[p.Name] = p
	return p
}

// Canonical applies every section panel's Canonical to its slot of root and
// drops empty slots, including empty overlay lists.
func Canonical(root sparse.Section) sparse.Section {
	out := sparse.Clone(root)
	for _, name := range Names() {
		p := registry[name]
		if _, ok := out[string(p.Slot)]; !ok {
			continue
		}
		out = transform.WithSlot(out, p.Slot, p.Canonical(transform.SlotSection(out, p.Slot)))
	}
	for _, slot := range []transform.Slot{transform.SlotOverlays, transform.SlotVideoOverlays} {
		if _, ok := out[string(slot)]; ok {
			out = transform.WithList(out, slot, transform.SlotList(out, slot))
		}
	}
	return out
}

// Lookup returns a registered section panel.
func Lookup(name string) (*Panel, error) {
	p, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPanel, name)
	}
	return p, nil
}

// Names lists every registered panel name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ForSurface returns the section panels shown for a surface, in display order.
func ForSurface(s transform.Surface) []*Panel {
	switch s {
	case transform.SurfaceImage:
		return []*Panel{AIMagic, Enhancements}
	case transform.SurfaceVideo:
		return []*Panel{VideoBasics, VideoEnhancement, Audio}
	}
	return nil
}

func opts(pairs ...string) []Option {
	out := make([]Option, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Option{Value: pairs[i], Label: pairs[i+1]})
	}
	return out
}

var focusOptions = opts(
	"center", "Center", "top", "Top", "bottom", "Bottom", "left", "Left", "right", "Right",
	"top_left", "Top Left", "top_right", "Top Right", "bottom_left", "Bottom Left", "bottom_right", "Bottom Right",
)

var cropModeOptions = opts(
	"maintain_ratio", "Maintain Ratio", "pad_resize", "Pad & Resize", "force", "Force",
	"at_max", "At Max", "at_least", "At Least", "extract", "Extract",
)

var aspectOptions = opts(
	"custom", "Custom", "1-1", "1:1 (Square)", "16-9", "16:9 (Wide)", "9-16", "9:16 (Portrait)", "4-3", "4:3 (Standard)",
)

func rotationOptions() []Option {
	out := make([]Option, 0, len(transform.Rotations))
	for _, r := range transform.Rotations {
		v := strconv.Itoa(int(r))
		out = append(out, Option{Value: v, Label: v + "°"})
	}
	return out
}

// AIMagic edits the aiMagic slot of image workspaces.
var AIMagic = register(&Panel{
	Name:    NameAIMagic,
	Title:   "AI Magic",
	Slot:    transform.SlotAIMagic,
	Surface: transform.SurfaceImage,
	Pinned:  []sparse.Path{{"background", "generativeFill"}},
	Groups: []Group{
		{
			Name:  "background",
			Title: "Background",
			Fields: []Field{
				{Key: "background.remove", Label: "Remove Background", Control: ControlToggle, Off: false},
				{Key: "background.mode", Label: "Mode", Control: ControlSelect, Off: "none",
					Options: opts("none", "None", "economy", "Economy", "standard", "Standard")},
				{Key: "background.changePrompt", Label: "Change Background", Control: ControlTextarea, Sanitize: true,
					Placeholder: "Describe the new background",
					Help:        "Replaces the background with one generated from the prompt."},
				{Key: "background.generativeFill", Label: "Generative Fill", Control: ControlPresence,
					Help: "Extends the canvas with **generated** content. Leave the size blank to keep the original."},
				{Key: "background.generativeFill.prompt", Label: "Prompt", Control: ControlText, Sanitize: true,
					When: Present("background.generativeFill")},
				{Key: "background.generativeFill.width", Label: "Width", Control: ControlNumber, Integer: true, Max: NoMax,
					Placeholder: "Auto", When: Present("background.generativeFill")},
				{Key: "background.generativeFill.height", Label: "Height", Control: ControlNumber, Integer: true, Max: NoMax,
					Placeholder: "Auto", When: Present("background.generativeFill")},
				{Key: "background.generativeFill.cropMode", Label: "Crop Mode", Control: ControlSelect, Off: "none",
					Options: opts("none", "None", "pad_resize", "Pad Resize", "pad_extract", "Pad Extract"),
					When:    Present("background.generativeFill")},
			},
		},
		{
			Name:  "editing",
			Title: "Editing",
			Fields: []Field{
				{Key: "editing.prompt", Label: "Edit Prompt", Control: ControlTextarea, Sanitize: true},
				{Key: "editing.retouch", Label: "Retouch", Control: ControlToggle, Off: false},
				{Key: "editing.upscale", Label: "Upscale", Control: ControlToggle, Off: false},
			},
		},
		{
			Name:  "shadowLighting",
			Title: "Shadow & Lighting",
			Fields: []Field{
				{Key: "shadowLighting.dropShadow.azimuth", Label: "Azimuth", Control: ControlSlider, Min: 0, Max: 360, Step: 1, Off: 0.0},
				{Key: "shadowLighting.dropShadow.elevation", Label: "Elevation", Control: ControlSlider, Min: 0, Max: 90, Step: 1, Off: 0.0},
				{Key: "shadowLighting.dropShadow.saturation", Label: "Saturation", Control: ControlSlider, Min: 0, Max: 100, Step: 1, Off: 0.0},
			},
		},
		{
			Name:  "generation",
			Title: "Generation",
			Fields: []Field{
				{Key: "generation.textPrompt", Label: "Text Prompt", Control: ControlTextarea, Sanitize: true},
				{Key: "generation.variation", Label: "Variation", Control: ControlToggle, Off: false},
			},
		},
		{
			Name:  "cropping",
			Title: "AI Cropping",
			Fields: []Field{
				{Key: "cropping.type", Label: "Crop Type", Control: ControlSelect, Off: "none",
					Options: opts("none", "None", "smart", "Smart Crop", "face", "Face Crop", "object", "Object-aware Crop")},
				{Key: "cropping.objectName", Label: "Object Name", Control: ControlText, Sanitize: true,
					Placeholder: "Enter object name"},
				{Key: "cropping.zoom", Label: "Zoom", Control: ControlSlider, Min: 0.1, Max: 5, Step: 0.1, Decimals: 1, Off: 1.0},
				{Key: "cropping.width", Label: "Width", Control: ControlNumber, Integer: true, Max: NoMax},
				{Key: "cropping.height", Label: "Height", Control: ControlNumber, Integer: true, Max: NoMax},
			},
		},
	},
})

// Enhancements edits the enhancements slot of image workspaces.
var Enhancements = register(&Panel{
	Name:    NameEnhancements,
	Title:   "Enhancements",
	Slot:    transform.SlotEnhancements,
	Surface: transform.SurfaceImage,
	Groups: []Group{
		{
			Name:  "enhancements",
			Title: "Blur & Sharpen",
			Reset: []sparse.Path{{"blur"}, {"sharpen"}},
			Fields: []Field{
				{Key: "blur", Label: "Blur", Control: ControlSlider, Min: 0, Max: 15, Step: 0.1, Decimals: 1, Off: 0.0},
				{Key: "sharpen", Label: "Sharpen", Control: ControlSlider, Min: 0, Max: 15, Step: 0.1, Decimals: 1, Off: 0.0},
			},
		},
		{
			Name:  "shadow",
			Title: "Shadow",
			Fields: []Field{
				{Key: "shadow.blur", Label: "Blur", Control: ControlSlider, Min: 0, Max: 15, Step: 1, Off: 0.0},
				{Key: "shadow.saturation", Label: "Saturation", Control: ControlSlider, Min: 0, Max: 100, Step: 1, Off: 0.0},
				{Key: "shadow.offsetX", Label: "Offset X", Control: ControlSlider, Min: 0, Max: 100, Step: 1, Off: 0.0},
				{Key: "shadow.offsetY", Label: "Offset Y", Control: ControlSlider, Min: 0, Max: 100, Step: 1, Off: 0.0},
			},
		},
		{
			Name:  "background",
			Title: "Background",
			Fields: []Field{
				{Key: "background.type", Label: "Type", Control: ControlSelect,
					Options: opts("solid", "Solid", "blurred", "Blurred", "dominant", "Dominant")},
				{Key: "background.color", Label: "Color", Control: ControlColor,
					When: Equals("background.type", "solid")},
				{Key: "background.blurIntensity", Label: "Blur Intensity", Control: ControlSlider,
					Min: 0, Max: 100, Step: 1, MinKeyword: transform.KeywordAuto,
					When: Equals("background.type", "blurred")},
				{Key: "background.brightness", Label: "Brightness", Control: ControlSlider, Min: -255, Max: 255, Step: 1, Off: 0.0},
			},
		},
	},
})

// Audio edits the audio slot of video workspaces.
var Audio = register(&Panel{
	Name:    NameAudio,
	Title:   "Audio",
	Slot:    transform.SlotAudio,
	Surface: transform.SurfaceVideo,
	Groups: []Group{
		{
			Name:  "audio",
			Title: "Audio",
			Reset: []sparse.Path{{"mute"}, {"extractAudio"}},
			Fields: []Field{
				{Key: "mute", Label: "Mute Audio", Control: ControlToggle, Off: false},
				{Key: "extractAudio", Label: "Extract Audio", Control: ControlToggle, Off: false,
					Help: "Returns the audio track only."},
			},
		},
	},
})

// VideoBasics edits the basics slot of video workspaces.
var VideoBasics = register(&Panel{
	Name:    NameVideoBasics,
	Title:   "Basics",
	Slot:    transform.SlotBasics,
	Surface: transform.SurfaceVideo,
	Groups: []Group{
		{
			Name:  "dimensions",
			Title: "Dimensions",
			Reset: []sparse.Path{{"width"}, {"height"}, {"aspectRatio"}},
			Fields: []Field{
				{Key: "width", Label: "Width", Control: ControlText, Placeholder: "Auto"},
				{Key: "height", Label: "Height", Control: ControlText, Placeholder: "Auto"},
				{Key: "aspectRatio", Label: "Aspect Ratio", Control: ControlSelect, Off: "custom", Options: aspectOptions},
				{Key: "dpr", Label: "Device Pixel Ratio", Control: ControlSelect, Off: "1", Numeric: true,
					Keyword: transform.KeywordAuto,
					Options: opts("auto", "Auto", "1", "1x (Standard)", "2", "2x (Retina)")},
			},
		},
		{
			Name:  "crop",
			Title: "Crop & Focus",
			Reset: []sparse.Path{{"cropMode"}, {"focus"}, {"x"}, {"y"}, {"xc"}, {"yc"}, {"zoom"}},
			Fields: []Field{
				{Key: "cropMode", Label: "Crop Mode", Control: ControlSelect, Off: "maintain_ratio", Options: cropModeOptions},
				{Key: "focus", Label: "Focus", Control: ControlSelect, Off: "center",
					Options: append(append([]Option(nil), focusOptions...), Option{Value: "custom", Label: "Custom"})},
				{Key: "x", Label: "X Position", Control: ControlNumber, Integer: true, Placeholder: "0",
					When: Equals("focus", "custom")},
				{Key: "y", Label: "Y Position", Control: ControlNumber, Integer: true, Placeholder: "0",
					When: Equals("focus", "custom")},
				{Key: "xc", Label: "X Center", Control: ControlNumber, Integer: true,
					When: Equals("focus", "custom")},
				{Key: "yc", Label: "Y Center", Control: ControlNumber, Integer: true,
					When: Equals("focus", "custom")},
				{Key: "zoom", Label: "Zoom", Control: ControlSlider, Min: 0.1, Max: 5, Step: 0.1, Decimals: 1, Off: 1.0},
			},
		},
		{
			Name:  "background",
			Title: "Background",
			Fields: []Field{
				{Key: "background.type", Label: "Type", Control: ControlSelect,
					Options: opts("solid", "Solid", "blurred", "Blurred")},
				{Key: "background.color", Label: "Color", Control: ControlColor, Placeholder: "#FFFFFF",
					When: AnyOf(Absent("background.type"), Equals("background.type", "solid"))},
				{Key: "background.blurIntensity", Label: "Blur Intensity", Control: ControlAuto,
					Keyword: transform.KeywordAuto, Max: NoMax, Placeholder: "Auto",
					When: Equals("background.type", "blurred")},
				{Key: "background.brightness", Label: "Brightness", Control: ControlNumber, Integer: true,
					Min: -255, Max: 255, Off: 0.0, Placeholder: "0",
					When: Equals("background.type", "blurred")},
			},
		},
		{
			Name:  "border",
			Title: "Border & Radius",
			Reset: []sparse.Path{{"border"}, {"radius"}},
			Fields: []Field{
				{Key: "border.width", Label: "Border Width", Control: ControlText, Placeholder: "0"},
				{Key: "border.color", Label: "Border Color", Control: ControlColor, Placeholder: "#000000"},
				{Key: "radius", Label: "Radius", Control: ControlRadius, Keyword: transform.KeywordMax, Off: 0.0,
					Max: NoMax, Placeholder: "0 or max"},
			},
		},
		{
			Name:  "rotation",
			Title: "Rotation",
			Reset: []sparse.Path{{"rotate"}},
			Fields: []Field{
				{Key: "rotate", Label: "Rotate", Control: ControlSelect, Off: "0", Numeric: true, Options: rotationOptions()},
			},
		},
	},
})

// VideoEnhancement edits the videoEnhancement slot of video workspaces.
var VideoEnhancement = register(&Panel{
	Name:    NameVideoEnhancement,
	Title:   "Enhancement",
	Slot:    transform.SlotVideoEnhancement,
	Surface: transform.SurfaceVideo,
	Groups: []Group{
		{
			Name:  "thumbnail",
			Title: "Thumbnail",
			Fields: []Field{
				{Key: "thumbnail.time", Label: "Time", Control: ControlText, Placeholder: "Auto",
					Help: "Seconds into the video, e.g. `4.5`."},
				{Key: "thumbnail.width", Label: "Width", Control: ControlNumber, Integer: true, Max: NoMax, Placeholder: "Auto"},
				{Key: "thumbnail.height", Label: "Height", Control: ControlNumber, Integer: true, Max: NoMax, Placeholder: "Auto"},
				{Key: "thumbnail.aspectRatio", Label: "Aspect Ratio", Control: ControlSelect, Off: "custom", Options: aspectOptions},
				{Key: "thumbnail.cropMode", Label: "Crop Mode", Control: ControlSelect, Off: "maintain_ratio", Options: cropModeOptions},
				{Key: "thumbnail.border.width", Label: "Border Width", Control: ControlNumber, Integer: true, Max: NoMax, Off: 0.0},
				{Key: "thumbnail.border.color", Label: "Border Color", Control: ControlColor},
				{Key: "thumbnail.radius", Label: "Radius", Control: ControlRadius, Keyword: transform.KeywordMax,
					Integer: true, Off: 0.0, Max: NoMax, Placeholder: "0 or max"},
				{Key: "thumbnail.bg", Label: "Background Color", Control: ControlColor},
			},
		},
		{
			Name:  "trimming",
			Title: "Trimming",
			Fields: []Field{
				{Key: "trimming.startOffset", Label: "Start Offset", Control: ControlText, Placeholder: "0"},
				{Key: "trimming.endOffset", Label: "End Offset", Control: ControlText, Placeholder: "0"},
				{Key: "trimming.duration", Label: "Duration", Control: ControlText, Placeholder: "Auto"},
			},
		},
	},
})
