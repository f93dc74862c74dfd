package transform

// AIMagic groups the generative and AI-assisted image transformations.
type AIMagic struct {
	Background     *AIBackground   `json:"background,omitempty"`
	Editing        *Editing        `json:"editing,omitempty"`
	ShadowLighting *ShadowLighting `json:"shadowLighting,omitempty"`
	Generation     *Generation     `json:"generation,omitempty"`
	Cropping       *AICropping     `json:"cropping,omitempty"`
}

type AIBackground struct {
	Remove         *bool           `json:"remove,omitempty"`
	Mode           *BackgroundMode `json:"mode,omitempty" validate:"omitempty,oneof=economy standard"`
	ChangePrompt   *string         `json:"changePrompt,omitempty"`
	GenerativeFill *GenerativeFill `json:"generativeFill,omitempty"`
}

// GenerativeFill is enabled by its presence; an empty value fills with
// defaults.
type GenerativeFill struct {
	Prompt   *string       `json:"prompt,omitempty"`
	Width    *int          `json:"width,omitempty" validate:"omitempty,min=0"`
	Height   *int          `json:"height,omitempty" validate:"omitempty,min=0"`
	CropMode *FillCropMode `json:"cropMode,omitempty" validate:"omitempty,oneof=pad_resize pad_extract"`
}

type Editing struct {
	Prompt  *string `json:"prompt,omitempty"`
	Retouch *bool   `json:"retouch,omitempty"`
	Upscale *bool   `json:"upscale,omitempty"`
}

type ShadowLighting struct {
	DropShadow *DropShadow `json:"dropShadow,omitempty"`
}

type DropShadow struct {
	Azimuth    *float64 `json:"azimuth,omitempty" validate:"omitempty,min=0,max=360"`
	Elevation  *float64 `json:"elevation,omitempty" validate:"omitempty,min=0,max=90"`
	Saturation *float64 `json:"saturation,omitempty" validate:"omitempty,min=0,max=100"`
}

type Generation struct {
	TextPrompt *string `json:"textPrompt,omitempty"`
	Variation  *bool   `json:"variation,omitempty"`
}

type AICropping struct {
	Type       *CropType `json:"type,omitempty" validate:"omitempty,oneof=smart face object"`
	ObjectName *string   `json:"objectName,omitempty"`
	Zoom       *float64  `json:"zoom,omitempty" validate:"omitempty,min=0.1,max=5"`
	Width      *int      `json:"width,omitempty" validate:"omitempty,min=0"`
	Height     *int      `json:"height,omitempty" validate:"omitempty,min=0"`
}

// Enhancements are the classic image adjustments.
type Enhancements struct {
	Blur       *float64               `json:"blur,omitempty" validate:"omitempty,min=0,max=15"`
	Sharpen    *float64               `json:"sharpen,omitempty" validate:"omitempty,min=0,max=15"`
	Shadow     *Shadow                `json:"shadow,omitempty"`
	Background *EnhancementBackground `json:"background,omitempty"`
}

type Shadow struct {
	Blur       *float64 `json:"blur,omitempty" validate:"omitempty,min=0,max=15"`
	Saturation *float64 `json:"saturation,omitempty" validate:"omitempty,min=0,max=100"`
	OffsetX    *float64 `json:"offsetX,omitempty" validate:"omitempty,min=0,max=100"`
	OffsetY    *float64 `json:"offsetY,omitempty" validate:"omitempty,min=0,max=100"`
}

type EnhancementBackground struct {
	Type          BackgroundType `json:"type,omitempty" validate:"omitempty,oneof=solid blurred dominant"`
	Color         *string        `json:"color,omitempty"`
	BlurIntensity *AutoNumber    `json:"blurIntensity,omitempty"`
	Brightness    *float64       `json:"brightness,omitempty" validate:"omitempty,min=-255,max=255"`
}
