package form

import (
	"slices"
	"strconv"
)

// Registry is the capability every other component uses to read and write
// field values, independent of how the fields are presented.
type Registry interface {
	// Value returns a scalar field's current text ("" when unset).
	Value(f Field) string
	SetValue(f Field, v string)

	// Checked returns the checked members of a checkbox group in the order
	// they were checked.
	Checked(f Field) []string
	SetChecked(f Field, values []string)
	IsChecked(f Field, v string) bool

	// Selected returns the chosen member of a radio group ("" when none).
	Selected(f Field) string
	Select(f Field, v string)
}

// Values is the in-memory Registry backing the wizard.
type Values struct {
	scalars map[Field]string
	sets    map[Field][]string
}

var _ Registry = (*Values)(nil)

// NewValues returns a registry holding the blank-form defaults.
func NewValues() *Values {
	v := &Values{}
	v.Reset()
	return v
}

// Reset restores every field to its blank-form default. Sliders return to
// their declared default so their displayed value follows.
func (v *Values) Reset() {
	v.scalars = make(map[Field]string, len(catalog))
	v.sets = make(map[Field][]string)
	for _, s := range catalog {
		if s.IsMulti() {
			continue
		}
		if d := s.DefaultValue(); d != "" {
			v.scalars[s.Field] = d
		}
	}
}

func (v *Values) Value(f Field) string {
	return v.scalars[f]
}

func (v *Values) SetValue(f Field, val string) {
	if val == "" {
		delete(v.scalars, f)
		return
	}
	v.scalars[f] = val
}

func (v *Values) Checked(f Field) []string {
	return slices.Clone(v.sets[f])
}

func (v *Values) SetChecked(f Field, values []string) {
	if len(values) == 0 {
		delete(v.sets, f)
		return
	}
	out := make([]string, 0, len(values))
	for _, val := range values {
		if !slices.Contains(out, val) {
			out = append(out, val)
		}
	}
	v.sets[f] = out
}

// IsChecked reports whether val is a checked member of the group f.
func (v *Values) IsChecked(f Field, val string) bool {
	return slices.Contains(v.sets[f], val)
}

// Toggle flips membership of val in the group f and reports the new state.
func (v *Values) Toggle(f Field, val string) bool {
	cur := v.sets[f]
	if i := slices.Index(cur, val); i >= 0 {
		v.SetChecked(f, slices.Delete(slices.Clone(cur), i, i+1))
		return false
	}
	v.SetChecked(f, append(slices.Clone(cur), val))
	return true
}

func (v *Values) Selected(f Field) string {
	return v.scalars[f]
}

func (v *Values) Select(f Field, val string) {
	v.SetValue(f, val)
}

// Snapshot returns every field value keyed by its JSON name: scalar, radio
// and derived fields as strings, checkbox groups as string slices. Unset
// fields are omitted.
func (v *Values) Snapshot() map[string]any {
	out := make(map[string]any, len(catalog))
	for _, s := range catalog {
		if s.IsMulti() {
			if set := v.sets[s.Field]; len(set) > 0 {
				out[string(s.Field)] = slices.Clone(set)
			}
			continue
		}
		if val, ok := v.scalars[s.Field]; ok {
			out[string(s.Field)] = val
		}
	}
	return out
}

// Restore writes every recognised entry of snap into the registry and
// returns how many fields were applied. Unknown keys, values of the wrong
// shape and options the catalog does not offer are skipped.
func (v *Values) Restore(snap map[string]any) int {
	applied := 0
	for key, raw := range snap {
		s, ok := Lookup(Field(key))
		if !ok {
			continue
		}
		if s.IsMulti() {
			members, ok := stringSlice(raw)
			if !ok {
				continue
			}
			var keep []string
			for _, m := range members {
				if s.HasOption(m) {
					keep = append(keep, m)
				}
			}
			v.SetChecked(s.Field, keep)
			applied++
			continue
		}
		val, ok := raw.(string)
		if !ok {
			continue
		}
		if !acceptsScalar(s, val) {
			continue
		}
		v.SetValue(s.Field, val)
		applied++
	}
	return applied
}

func acceptsScalar(s Spec, val string) bool {
	if val == "" {
		return true
	}
	switch s.Kind {
	case KindSelect, KindRadio:
		return s.HasOption(val)
	case KindSlider:
		n, err := strconv.Atoi(val)
		return err == nil && n >= s.Min && n <= s.Max
	}
	return true
}

func stringSlice(raw any) ([]string, bool) {
	switch t := raw.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
