// Package style resolves per-category display colors.
//
// A style [Assignment] is authored statically (config file or
// [DefaultAssignment]); [Build] aligns it with the categories actually
// present in a tidy table and parses every color once, so renderers only
// ever see a complete, validated [Map].
package style

import (
	"image/color"
	"slices"
	"sort"

	"github.com/matzehuels/facetplot/pkg/errors"
)

// Assignment maps category names to color strings. Colors are SVG/X11 names
// ("seagreen") or hex triplets ("#96bddd", "#abc").
//
// When Fallback is non-empty, categories without an entry resolve to it
// instead of failing.
type Assignment struct {
	Colors   map[string]string `toml:"colors"`
	Fallback string            `toml:"fallback"`
}

// Entry is one resolved category style.
type Entry struct {
	Category string
	Name     string // color as written in the assignment
	Color    color.RGBA
	Fallback bool // resolved through Assignment.Fallback
}

// Map is an ordered, validated category → color lookup.
// The zero Map is empty and safe to query.
type Map struct {
	entries []Entry
	index   map[string]int
}

// DefaultAssignment returns the eight-sample palette the original plots used.
func DefaultAssignment() Assignment {
	return Assignment{Colors: map[string]string{
		"Sample_1": "seagreen",
		"Sample_2": "skyblue",
		"Sample_3": "orange",
		"Sample_4": "purple",
		"Sample_5": "pink",
		"Sample_6": "gold",
		"Sample_7": "turquoise",
		"Sample_8": "brown",
	}}
}

// Build resolves a style for every category, in the given order.
// Duplicate categories are collapsed to their first occurrence.
//
// Categories without an assignment fail the whole call with a
// [errors.MissingStyleError] listing all of them, unless a Fallback is
// configured. An unparseable color fails with INVALID_STYLE.
func Build(categories []string, a Assignment) (*Map, error) {
	var fallback color.RGBA
	if a.Fallback != "" {
		c, err := ParseColor(a.Fallback)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "fallback color")
		}
		fallback = c
	}

	m := &Map{index: make(map[string]int, len(categories))}
	var missing []string
	for _, cat := range categories {
		if _, dup := m.index[cat]; dup {
			continue
		}
		name, ok := a.Colors[cat]
		if !ok {
			if a.Fallback == "" {
				missing = append(missing, cat)
				continue
			}
			m.add(Entry{Category: cat, Name: a.Fallback, Color: fallback, Fallback: true})
			continue
		}
		c, err := ParseColor(name)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "style for %q", cat)
		}
		m.add(Entry{Category: cat, Name: name, Color: c})
	}
	if len(missing) > 0 {
		return nil, &errors.MissingStyleError{Categories: missing}
	}
	return m, nil
}

func (m *Map) add(e Entry) {
	m.index[e.Category] = len(m.entries)
	m.entries = append(m.entries, e)
}

// Len returns the number of categories.
func (m *Map) Len() int { return len(m.entries) }

// Lookup returns the entry for a category.
func (m *Map) Lookup(category string) (Entry, bool) {
	i, ok := m.index[category]
	if !ok {
		return Entry{}, false
	}
	return m.entries[i], true
}

// Color returns the parsed color for a category.
func (m *Map) Color(category string) (color.RGBA, bool) {
	e, ok := m.Lookup(category)
	return e.Color, ok
}

// Categories returns the categories in build order.
func (m *Map) Categories() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Category
	}
	return out
}

// Entries returns a copy of the resolved entries in build order.
func (m *Map) Entries() []Entry {
	return slices.Clone(m.entries)
}

// Names returns the category → color string mapping as written in the
// assignment.
func (m *Map) Names() map[string]string {
	out := make(map[string]string, len(m.entries))
	for _, e := range m.entries {
		out[e.Category] = e.Name
	}
	return out
}

// Merge overlays b's colors on a. Fallback is taken from b when set.
func Merge(a, b Assignment) Assignment {
	out := Assignment{Colors: make(map[string]string, len(a.Colors)+len(b.Colors)), Fallback: a.Fallback}
	for k, v := range a.Colors {
		out.Colors[k] = v
	}
	for k, v := range b.Colors {
		out.Colors[k] = v
	}
	if b.Fallback != "" {
		out.Fallback = b.Fallback
	}
	return out
}

// Keys returns the assigned categories sorted by name.
func (a Assignment) Keys() []string {
	keys := make([]string, 0, len(a.Colors))
	for k := range a.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
