package transform

// VideoBasics covers resizing, cropping, padding and rotation of a video.
type VideoBasics struct {
	Width       *string          `json:"width,omitempty"`
	Height      *string          `json:"height,omitempty"`
	AspectRatio *string          `json:"aspectRatio,omitempty"`
	Focus       *Focus           `json:"focus,omitempty" validate:"omitempty,oneof=center top bottom left right top_left top_right bottom_left bottom_right custom"`
	X           *int             `json:"x,omitempty"`
	Y           *int             `json:"y,omitempty"`
	XC          *int             `json:"xc,omitempty"`
	YC          *int             `json:"yc,omitempty"`
	CropMode    *CropMode        `json:"cropMode,omitempty" validate:"omitempty,oneof=maintain_ratio pad_resize force at_max at_least extract"`
	Zoom        *float64         `json:"zoom,omitempty" validate:"omitempty,min=0.1,max=5"`
	DPR         *AutoNumber      `json:"dpr,omitempty"`
	Background  *VideoBackground `json:"background,omitempty"`
	Border      *Border          `json:"border,omitempty"`
	Radius      *Radius          `json:"radius,omitempty"`
	Rotate      *Rotation        `json:"rotate,omitempty" validate:"omitempty,oneof=0 90 180 270 360"`
}

type VideoBackground struct {
	Type          BackgroundType `json:"type,omitempty" validate:"omitempty,oneof=solid blurred"`
	Color         *string        `json:"color,omitempty"`
	BlurIntensity *AutoNumber    `json:"blurIntensity,omitempty"`
	Brightness    *int           `json:"brightness,omitempty" validate:"omitempty,min=-255,max=255"`
}

type Border struct {
	Width *string `json:"width,omitempty"`
	Color *string `json:"color,omitempty"`
}

// VideoEnhancement covers thumbnail extraction and trimming.
type VideoEnhancement struct {
	Thumbnail *Thumbnail `json:"thumbnail,omitempty"`
	Trimming  *Trimming  `json:"trimming,omitempty"`
}

type Thumbnail struct {
	Time        *string          `json:"time,omitempty"`
	Width       *int             `json:"width,omitempty" validate:"omitempty,min=0"`
	Height      *int             `json:"height,omitempty" validate:"omitempty,min=0"`
	AspectRatio *string          `json:"aspectRatio,omitempty"`
	CropMode    *CropMode        `json:"cropMode,omitempty" validate:"omitempty,oneof=maintain_ratio pad_resize force at_max at_least extract"`
	Border      *ThumbnailBorder `json:"border,omitempty"`
	Radius      *Radius          `json:"radius,omitempty"`
	Bg          *string          `json:"bg,omitempty"`
}

type ThumbnailBorder struct {
	Width *int    `json:"width,omitempty" validate:"omitempty,min=0"`
	Color *string `json:"color,omitempty"`
}

// Trimming offsets are seconds, kept as entered (e.g. "2.5").
type Trimming struct {
	StartOffset *string `json:"startOffset,omitempty"`
	EndOffset   *string `json:"endOffset,omitempty"`
	Duration    *string `json:"duration,omitempty"`
}

type Audio struct {
	Mute         *bool `json:"mute,omitempty"`
	ExtractAudio *bool `json:"extractAudio,omitempty"`
}
