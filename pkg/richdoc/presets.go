package richdoc

import "sort"

const (
	PresetTitle    = "Title"
	PresetSubtitle = "Subtitle"
	PresetPlain    = "Plain"
	PresetBold     = "Bold"
	PresetItalic   = "Italic"
)

// Presets maps a style name to its style. Editors receive a table at
// construction and never modify it.
type Presets map[string]Style

func DefaultPresets() Presets {
	return Presets{
		PresetTitle:    {Bold: true, FontSize: 36, LineHeight: 48, TextColor: DefaultTextColor},
		PresetSubtitle: {FontSize: 28, LineHeight: 37, TextColor: DefaultTextColor},
		PresetPlain:    {FontSize: DefaultFontSize, LineHeight: DefaultLineHeight, TextColor: DefaultTextColor},
		PresetBold:     {Bold: true, FontSize: DefaultFontSize, LineHeight: DefaultLineHeight, TextColor: DefaultTextColor},
		PresetItalic:   {Italic: true, FontSize: DefaultFontSize, LineHeight: DefaultLineHeight, TextColor: DefaultTextColor},
	}
}

func (p Presets) Lookup(name string) (Style, bool) {
	s, ok := p[name]
	return s, ok
}

// Plain returns the Plain preset, falling back to the built-in one.
func (p Presets) Plain() Style {
	if s, ok := p[PresetPlain]; ok {
		return s
	}
	return DefaultPresets()[PresetPlain]
}

// With returns a copy of the table with the given entries added or replaced.
func (p Presets) With(overrides map[string]Style) Presets {
	out := make(Presets, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v.Normalize()
	}
	return out
}

func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for k := range p {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
