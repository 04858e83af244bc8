package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // confirmations of new rows
	Delete string `yaml:"delete"` // cascades and errors

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	BoardBorder    string `yaml:"board_border"`
	SelectedBorder string `yaml:"selected_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification foregrounds
	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// Presets lists the names GetPreset understands
func Presets() []string {
	return []string{"default", "monochrome", "wave", "dragon", "lotus"}
}

// GetPreset returns a preset color scheme by name.
// Unknown names fall back to the default scheme.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, preset.Accent)
	fill(&c.Create, preset.Create)
	fill(&c.Delete, preset.Delete)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.BoardBorder, preset.BoardBorder)
	fill(&c.SelectedBorder, preset.SelectedBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.WarningFg, preset.WarningFg)
	fill(&c.ErrorFg, preset.ErrorFg)
}

// MergeFrom overrides c with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Create, other.Create)
	merge(&c.Delete, other.Delete)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.BoardBorder, other.BoardBorder)
	merge(&c.SelectedBorder, other.SelectedBorder)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.InfoFg, other.InfoFg)
	merge(&c.WarningFg, other.WarningFg)
	merge(&c.ErrorFg, other.ErrorFg)
}
