// Package sparse implements the sparse transformation tree and the patch merge
// used by every studio panel.
//
// A Section is a JSON-shaped map where the absence of a key means "do not
// apply this transformation". Patches are Sections too; a patch value of
// Unset removes the key instead of storing a no-op default.
package sparse

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Section is one level of the transformation tree.
type Section map[string]any

type unset struct{}

func (unset) String() string { return "<unset>" }

// Unset deletes a key when it appears as a patch value.
var Unset any = unset{}

// IsUnset reports whether v is the unset sentinel.
func IsUnset(v any) bool {
	_, ok := v.(unset)
	return ok
}

// Path addresses a nested section, e.g. background.generativeFill.
type Path []string

// ParsePath splits a dotted path. The empty string is the root.
func ParsePath(s string) Path {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return Path(strings.Split(s, "."))
}

func (p Path) String() string { return strings.Join(p, ".") }

// Child returns a new path with name appended.
func (p Path) Child(name string) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, name)
}

// Equal reports whether two paths address the same node.
func (p Path) Equal(o Path) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// AsSection returns v as a Section when it is a nested object.
func AsSection(v any) (Section, bool) {
	switch s := v.(type) {
	case Section:
		return s, true
	case map[string]any:
		return Section(s), true
	default:
		return nil, false
	}
}

// Has reports whether key is present.
func (s Section) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Get walks path and returns the value stored there.
func Get(root Section, path Path) (any, bool) {
	if len(path) == 0 {
		return root, root != nil
	}
	cur := root
	for i, name := range path {
		v, ok := cur[name]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return v, true
		}
		next, ok := AsSection(v)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// SectionAt returns the nested section at path, or an empty section when it
// is absent. The result must not be mutated.
func SectionAt(root Section, path Path) Section {
	v, ok := Get(root, path)
	if !ok {
		return Section{}
	}
	s, ok := AsSection(v)
	if !ok {
		return Section{}
	}
	return s
}

// Clone deep-copies a section. Nested objects become Sections.
func Clone(s Section) Section {
	if s == nil {
		return nil
	}
	out := make(Section, len(s))
	for k, v := range s {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Section:
		return Clone(t)
	case map[string]any:
		return Clone(Section(t))
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

// Normalize converts decoded JSON into canonical tree form: nested objects
// become Sections and every number becomes float64.
func Normalize(v any) any {
	switch t := v.(type) {
	case Section:
		out := make(Section, len(t))
		for k, inner := range t {
			out[k] = Normalize(inner)
		}
		return out
	case map[string]any:
		return Normalize(Section(t))
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Normalize(t[i])
		}
		return out
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case float32:
		return float64(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return t.String()
		}
		return f
	default:
		return v
	}
}

// Encode converts a typed value into a Section through its JSON form.
func Encode(v any) (Section, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode section: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode section: %w", err)
	}
	if m == nil {
		return Section{}, nil
	}
	return Normalize(m).(Section), nil
}

// Decode converts a Section into a typed value through its JSON form.
func Decode[T any](s Section) (T, error) {
	var out T
	if s == nil {
		return out, nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return out, fmt.Errorf("decode section: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode section: %w", err)
	}
	return out, nil
}

// Parse reads a JSON object into a Section.
func Parse(raw []byte) (Section, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse section: %w", err)
	}
	if m == nil {
		return Section{}, nil
	}
	return Normalize(m).(Section), nil
}

// MarshalJSON keeps the sentinel out of serialised output.
func (s Section) MarshalJSON() ([]byte, error) {
	plain := make(map[string]any, len(s))
	for k, v := range s {
		if IsUnset(v) {
			continue
		}
		plain[k] = v
	}
	return json.Marshal(plain)
}
