// Package panel describes studio control panels as data. Each control is a
// Field that knows where its value lives in the transformation tree and how
// raw form input becomes a patch, including the default-elision rule: a
// control set back to its "off" value removes the key instead of storing it.
package panel

import (
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"thirdcoast.systems/studio/pkg/sparse"
)

// ControlType describes the kind of input control for a field.
type ControlType string

const (
	// ControlToggle stores true, or removes the key when off.
	ControlToggle ControlType = "toggle"
	// ControlPresence stores an empty section whose presence enables a feature.
	ControlPresence ControlType = "presence"
	ControlSelect   ControlType = "select"
	ControlSlider   ControlType = "slider"
	ControlNumber   ControlType = "number"
	ControlText     ControlType = "text"
	ControlTextarea ControlType = "textarea"
	ControlColor    ControlType = "color"
	// ControlRadius takes a number or "max".
	ControlRadius ControlType = "radius"
	// ControlAuto takes a number or "auto".
	ControlAuto ControlType = "auto"
	// ControlTag toggles membership of Tag in a string list.
	ControlTag ControlType = "tag"
)

// Blank decides what empty or malformed input becomes.
type Blank int

const (
	// BlankUnset removes the key.
	BlankUnset Blank = iota
	// BlankZero stores the zero value of the control (0, "", false, []).
	BlankZero
)

// Option is a single <option> in a select.
type Option struct {
	Value string
	Label string
}

// Condition decides whether a field is shown for the current slot value.
type Condition func(slot sparse.Section) bool

// Field describes one control and its place in the tree.
type Field struct {
	Key     string
	Label   string
	Path    sparse.Path // section holding the leaf, relative to the panel slot
	Name    string      // leaf key inside Path
	Control ControlType

	Min      float64
	Max      float64
	Step     float64
	Decimals int
	Integer  bool

	// Off is the value that elides to absent. nil disables elision.
	Off any
	// MinKeyword is stored instead of the number when a slider sits at Min.
	MinKeyword string
	// Keyword is the literal accepted by select, radius and auto controls
	// besides numbers.
	Keyword string
	// Numeric stores select values other than Keyword as numbers.
	Numeric bool
	Tag     string

	Options     []Option
	Blank       Blank
	Sanitize    bool
	When        Condition
	Placeholder string
	Help        string
}

var strict = bluemonday.StrictPolicy()

var hexColor = regexp.MustCompile(`^[0-9a-f]{3,8}$`)

// NoMax leaves a range open at the top, so only Min clamps.
var NoMax = math.Inf(1)

// LeafPath is the full path of the field's value relative to the slot.
func (f Field) LeafPath() sparse.Path {
	return f.Path.Child(f.Name)
}

// Current returns the value the control displays, read from the section
// that holds the leaf.
func (f Field) Current(holder sparse.Section) (any, bool) {
	v, ok := holder[f.Name]
	if !ok {
		return nil, false
	}
	if f.Control == ControlTag {
		return hasTag(v, f.Tag), true
	}
	return v, true
}

// Patch turns raw input into a patch for the section holding the leaf.
// It never fails: blank or malformed input follows the Blank policy.
func (f Field) Patch(holder sparse.Section, raw string) sparse.Section {
	return sparse.Section{f.Name: f.Value(holder, raw)}
}

// Value coerces raw input into the leaf value, or sparse.Unset.
func (f Field) Value(holder sparse.Section, raw string) any {
	switch f.Control {
	case ControlToggle:
		return f.elide(parseBool(raw))
	case ControlPresence:
		if !parseBool(raw) {
			return sparse.Unset
		}
		if cur, ok := sparse.AsSection(holder[f.Name]); ok {
			return cur
		}
		return sparse.Section{}
	case ControlTag:
		return f.tagValue(holder[f.Name], parseBool(raw))
	case ControlSelect:
		return f.selectValue(holder, raw)
	case ControlSlider:
		n, ok := parseNumber(raw, f.Integer)
		if !ok {
			return f.blank(0.0)
		}
		n = f.clamp(n)
		if f.MinKeyword != "" && n == f.Min {
			return f.MinKeyword
		}
		return f.elide(n)
	case ControlNumber:
		n, ok := parseNumber(raw, f.Integer)
		if !ok {
			return f.blank(0.0)
		}
		return f.elide(f.clamp(n))
	case ControlRadius, ControlAuto:
		s := strings.TrimSpace(raw)
		if f.Keyword != "" && strings.EqualFold(s, f.Keyword) {
			return f.Keyword
		}
		n, ok := parseNumber(s, f.Integer)
		if !ok {
			return f.blank(0.0)
		}
		return f.elide(f.clamp(n))
	case ControlColor:
		s := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), "#"))
		if s == "" && f.Blank == BlankUnset {
			return sparse.Unset
		}
		if !hexColor.MatchString(s) {
			return f.keep(holder)
		}
		return f.elide(s)
	default:
		s := raw
		if f.Sanitize {
			s = html.UnescapeString(strict.Sanitize(s))
		}
		if s == "" {
			return f.blank("")
		}
		return f.elide(s)
	}
}

// selectValue stores the chosen option. Input that is not an option leaves
// the current value in place.
func (f Field) selectValue(holder sparse.Section, raw string) any {
	s := strings.TrimSpace(raw)
	if off, ok := f.Off.(string); ok && s == off {
		return sparse.Unset
	}
	if !f.hasOption(s) {
		return f.keep(holder)
	}
	if f.Numeric && s != f.Keyword {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return sparse.Unset
		}
		return n
	}
	return s
}

// keep leaves the stored value in place for input the control cannot store.
func (f Field) keep(holder sparse.Section) any {
	if cur, ok := holder[f.Name]; ok {
		return cur
	}
	return sparse.Unset
}

func (f Field) hasOption(v string) bool {
	for _, o := range f.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

func (f Field) tagValue(cur any, on bool) any {
	var tags []any
	found := false
	if list, ok := cur.([]any); ok {
		for _, t := range list {
			s, ok := t.(string)
			if !ok {
				continue
			}
			if s == f.Tag {
				found = true
				if !on {
					continue
				}
			}
			tags = append(tags, s)
		}
	}
	if on && !found {
		tags = append(tags, f.Tag)
	}
	if len(tags) == 0 {
		return f.blank([]any{})
	}
	return tags
}

func hasTag(v any, tag string) bool {
	list, ok := v.([]any)
	if !ok {
		return false
	}
	for _, t := range list {
		if t == tag {
			return true
		}
	}
	return false
}

func (f Field) elide(v any) any {
	if f.IsOff(v) {
		return sparse.Unset
	}
	return v
}

// IsOff reports whether a stored value equals the field's off value, the
// value that must never be present in the tree. Numeric selects compare
// their stored number against the option string.
func (f Field) IsOff(v any) bool {
	switch off := f.Off.(type) {
	case nil:
		return false
	case float64:
		n, ok := v.(float64)
		return ok && n == off
	case string:
		if n, ok := v.(float64); ok && f.Numeric {
			o, err := strconv.ParseFloat(off, 64)
			return err == nil && n == o
		}
		s, ok := v.(string)
		return ok && s == off
	case bool:
		b, ok := v.(bool)
		return ok && b == off
	default:
		return false
	}
}

func (f Field) blank(zero any) any {
	if f.Blank == BlankZero {
		return zero
	}
	return sparse.Unset
}

// clamp keeps numbers inside a declared range. Fields without a range
// (Max <= Min) are left alone.
func (f Field) clamp(n float64) float64 {
	if f.Max <= f.Min {
		return n
	}
	return math.Min(f.Max, math.Max(f.Min, n))
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes":
		return true
	}
	b, _ := strconv.ParseBool(strings.TrimSpace(raw))
	return b
}

// parseNumber reads a float, truncating toward zero for integer fields.
// NaN and infinities count as malformed.
func parseNumber(raw string, integer bool) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	if integer {
		n = math.Trunc(n)
	}
	return n, true
}
