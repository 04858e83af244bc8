package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",
		Accent: "#874BFD",

		Create: "#5FD75F",
		Delete: "#FF0000",

		ColumnBorder:   "#5F87D7",
		BoardBorder:    "#585858",
		SelectedBorder: "#D75FD7",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#00AFFF",
		WarningFg: "#FFD700",
		ErrorFg:   "#FF0000",
	}
}

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",
		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder:   "#FFFFFF",
		BoardBorder:    "#585858",
		SelectedBorder: "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:    "#FFFFFF",
		WarningFg: "#FFFFFF",
		ErrorFg:   "#FFFFFF",
	}
}

// Kanagawa palette entries used by the wave, dragon and lotus presets
const (
	sumiInk4     = "#54546D"
	sumiInk6     = "#727169"
	fujiWhite    = "#DCD7BA"
	fujiGray     = "#727169"
	oniViolet    = "#957FB8"
	crystalBlue  = "#7E9CD8"
	springGreen  = "#98BB6C"
	peachRed     = "#FF5D62"
	waveAqua2    = "#7AA89F"
	roninYellow  = "#FF9E3B"
	samuraiRed   = "#E82424"
	dragonBlue   = "#658594"
	dragonViolet = "#8992A7"
	dragonGreen2 = "#8A9A7B"
	dragonRed    = "#C4746E"
	dragonWhite  = "#C5C9C5"
	dragonAsh    = "#737C73"
	dragonBlack6 = "#625E5A"
	dragonAqua   = "#8EA4A2"
	dragonYellow = "#C4B28A"
	lotusInk1    = "#545464"
	lotusGray3   = "#8A8980"
	lotusViolet4 = "#624C83"
	lotusBlue4   = "#4D699B"
	lotusGreen   = "#6F894E"
	lotusRed     = "#C84053"
	lotusAqua    = "#597B75"
	lotusYellow  = "#77713F"
	lotusWhite5  = "#C7D7E0"
)

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",
		Accent: oniViolet,

		Create: springGreen,
		Delete: peachRed,

		ColumnBorder:   sumiInk6,
		BoardBorder:    sumiInk4,
		SelectedBorder: waveAqua2,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		InfoFg:    dragonBlue,
		WarningFg: roninYellow,
		ErrorFg:   samuraiRed,
	}
}

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",
		Accent: dragonViolet,

		Create: dragonGreen2,
		Delete: dragonRed,

		ColumnBorder:   dragonBlack6,
		BoardBorder:    dragonAsh,
		SelectedBorder: dragonAqua,

		Title:  dragonBlue,
		Subtle: dragonAsh,
		Normal: dragonWhite,

		InfoFg:    dragonBlue,
		WarningFg: dragonYellow,
		ErrorFg:   dragonRed,
	}
}

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",
		Accent: lotusViolet4,

		Create: lotusGreen,
		Delete: lotusRed,

		ColumnBorder:   lotusGray3,
		BoardBorder:    lotusWhite5,
		SelectedBorder: lotusAqua,

		Title:  lotusBlue4,
		Subtle: lotusGray3,
		Normal: lotusInk1,

		InfoFg:    lotusBlue4,
		WarningFg: lotusYellow,
		ErrorFg:   lotusRed,
	}
}
