package transform

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Keyword literals accepted in place of a number. They are field specific:
// radius takes "max", blur intensity and device pixel ratio take "auto".
const (
	KeywordMax  = "max"
	KeywordAuto = "auto"
)

// Radius is a corner radius: a pixel value or "max".
type Radius struct {
	Value float64
	Max   bool
}

// RadiusPx returns a numeric radius.
func RadiusPx(v float64) Radius { return Radius{Value: v} }

// MaxRadius returns the "max" radius.
func MaxRadius() Radius { return Radius{Max: true} }

func (r Radius) String() string {
	if r.Max {
		return KeywordMax
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

func (r Radius) MarshalJSON() ([]byte, error) {
	if r.Max {
		return json.Marshal(KeywordMax)
	}
	return json.Marshal(r.Value)
}

func (r *Radius) UnmarshalJSON(b []byte) error {
	v, kw, err := unmarshalNumberOrKeyword(b, KeywordMax)
	if err != nil {
		return fmt.Errorf("radius: %w", err)
	}
	*r = Radius{Value: v, Max: kw}
	return nil
}

// AutoNumber is a number or "auto".
type AutoNumber struct {
	Value float64
	Auto  bool
}

// Auto returns the "auto" value.
func Auto() AutoNumber { return AutoNumber{Auto: true} }

// Number returns a numeric AutoNumber.
func Number(v float64) AutoNumber { return AutoNumber{Value: v} }

func (a AutoNumber) String() string {
	if a.Auto {
		return KeywordAuto
	}
	return strconv.FormatFloat(a.Value, 'f', -1, 64)
}

func (a AutoNumber) MarshalJSON() ([]byte, error) {
	if a.Auto {
		return json.Marshal(KeywordAuto)
	}
	return json.Marshal(a.Value)
}

func (a *AutoNumber) UnmarshalJSON(b []byte) error {
	v, kw, err := unmarshalNumberOrKeyword(b, KeywordAuto)
	if err != nil {
		return fmt.Errorf("auto number: %w", err)
	}
	*a = AutoNumber{Value: v, Auto: kw}
	return nil
}

// unmarshalNumberOrKeyword accepts a JSON number, a numeric string, or the
// single keyword allowed for the field.
func unmarshalNumberOrKeyword(b []byte, keyword string) (float64, bool, error) {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		return f, false, nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return 0, false, fmt.Errorf("expected number or %q, got %s", keyword, string(b))
	}
	s = strings.TrimSpace(s)
	if s == keyword {
		return 0, true, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("expected number or %q, got %q", keyword, s)
	}
	return f, false, nil
}
