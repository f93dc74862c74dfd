package transform

// BackgroundMode selects the background-removal model.
type BackgroundMode string

const (
	BackgroundModeEconomy  BackgroundMode = "economy"
	BackgroundModeStandard BackgroundMode = "standard"
)

// FillCropMode is the padding strategy for generative fill.
type FillCropMode string

const (
	FillCropPadResize  FillCropMode = "pad_resize"
	FillCropPadExtract FillCropMode = "pad_extract"
)

// CropType is the AI cropping strategy.
type CropType string

const (
	CropSmart  CropType = "smart"
	CropFace   CropType = "face"
	CropObject CropType = "object"
)

// BackgroundType is the fill behind an enhanced or padded asset.
type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundBlurred  BackgroundType = "blurred"
	BackgroundDominant BackgroundType = "dominant"
)

// Focus anchors cropping and overlay placement.
type Focus string

const (
	FocusCenter      Focus = "center"
	FocusTop         Focus = "top"
	FocusBottom      Focus = "bottom"
	FocusLeft        Focus = "left"
	FocusRight       Focus = "right"
	FocusTopLeft     Focus = "top_left"
	FocusTopRight    Focus = "top_right"
	FocusBottomLeft  Focus = "bottom_left"
	FocusBottomRight Focus = "bottom_right"
	FocusCustom      Focus = "custom"
)

// Focuses lists the nine anchor positions.
var Focuses = []Focus{
	FocusCenter, FocusTop, FocusBottom, FocusLeft, FocusRight,
	FocusTopLeft, FocusTopRight, FocusBottomLeft, FocusBottomRight,
}

// CropMode controls how resizing treats the aspect ratio.
type CropMode string

const (
	CropMaintainRatio CropMode = "maintain_ratio"
	CropPadResize     CropMode = "pad_resize"
	CropForce         CropMode = "force"
	CropAtMax         CropMode = "at_max"
	CropAtLeast       CropMode = "at_least"
	CropExtract       CropMode = "extract"
)

// CropModes lists every resize crop mode.
var CropModes = []CropMode{CropMaintainRatio, CropPadResize, CropForce, CropAtMax, CropAtLeast, CropExtract}

// Rotation is a right-angle rotation in degrees.
type Rotation int

// Rotations lists the accepted rotation values.
var Rotations = []Rotation{0, 90, 180, 270, 360}

// Flip mirrors an overlay horizontally, vertically or both.
type Flip string

const (
	FlipH  Flip = "h"
	FlipV  Flip = "v"
	FlipHV Flip = "h_v"
)

// Align is horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// GradientDirections lists the gradient overlay directions.
var GradientDirections = []string{
	"top", "top_right", "right", "bottom_right",
	"bottom", "bottom_left", "left", "topleft",
}

// Typography tags used by video text overlays.
const (
	TypographyBold   = "b"
	TypographyItalic = "i"
	TypographyStrike = "strikethrough"
)

// AspectRatios lists the preset aspect ratios offered by the resize controls.
var AspectRatios = []string{"1-1", "16-9", "9-16", "4-3"}
