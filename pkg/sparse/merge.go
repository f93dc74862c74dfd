package sparse

// Merge returns cur with patch applied on top. Keys whose patch value is Unset
// are removed, other patch keys overwrite, and keys missing from patch are
// carried over. Neither input is modified.
func Merge(cur, patch Section) Section {
	out := make(Section, len(cur)+len(patch))
	for k, v := range cur {
		out[k] = v
	}
	for k, v := range patch {
		if IsUnset(v) {
			delete(out, k)
			continue
		}
		out[k] = v
	}
	return out
}

// PinFunc reports whether the section at path keeps meaning when empty, such
// as background.generativeFill whose presence alone enables the fill.
type PinFunc func(path Path) bool

// Pinned builds a PinFunc from a fixed list of paths.
func Pinned(paths ...Path) PinFunc {
	return func(p Path) bool {
		for _, candidate := range paths {
			if candidate.Equal(p) {
				return true
			}
		}
		return false
	}
}

// MergeAt merges patch into the section addressed by path and rebuilds every
// ancestor. Sections left empty along the path are dropped from their parent
// unless pin reports them as presence-significant. The root is never dropped.
func MergeAt(root Section, path Path, patch Section, pin PinFunc) Section {
	return mergeAt(root, nil, path, patch, pin)
}

func mergeAt(cur Section, at, rest Path, patch Section, pin PinFunc) Section {
	if len(rest) == 0 {
		return Merge(cur, patch)
	}
	name := rest[0]
	childPath := at.Child(name)
	child, _ := AsSection(cur[name])
	merged := mergeAt(child, childPath, rest[1:], patch, pin)

	if len(merged) == 0 && (pin == nil || !pin(childPath)) {
		return Merge(cur, Section{name: Unset})
	}
	return Merge(cur, Section{name: merged})
}

// Without removes the node at path. Reset uses this rather than a patch of
// unset fields, so the section itself disappears. Siblings are untouched.
func Without(root Section, path Path) Section {
	if len(path) == 0 {
		return Section{}
	}
	if len(path) == 1 {
		return Merge(root, Section{path[0]: Unset})
	}
	child, ok := AsSection(root[path[0]])
	if !ok {
		return Merge(root, nil)
	}
	return Merge(root, Section{path[0]: Without(child, path[1:])})
}

// WithoutAll removes every listed path.
func WithoutAll(root Section, paths ...Path) Section {
	out := Merge(root, nil)
	for _, p := range paths {
		out = Without(out, p)
	}
	return out
}

// Prune drops nested sections left empty, keeping those pin reports as
// presence-significant. The root is never dropped and is not modified.
func Prune(root Section, pin PinFunc) Section {
	return prune(root, nil, pin)
}

func prune(cur Section, at Path, pin PinFunc) Section {
	out := make(Section, len(cur))
	for k, v := range cur {
		child, ok := AsSection(v)
		if !ok {
			out[k] = v
			continue
		}
		childPath := at.Child(k)
		child = prune(child, childPath, pin)
		if len(child) == 0 && (pin == nil || !pin(childPath)) {
			continue
		}
		out[k] = child
	}
	return out
}
