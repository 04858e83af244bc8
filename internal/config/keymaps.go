package config

// KeyMappings defines all configurable key bindings of the live board view
type KeyMappings struct {
	// Boards
	MoveBoardUp    string `yaml:"move_board_up"`
	MoveBoardDown  string `yaml:"move_board_down"`
	MoveBoardLeft  string `yaml:"move_board_left"`
	MoveBoardRight string `yaml:"move_board_right"`

	// Columns
	MoveColumnLeft  string `yaml:"move_column_left"`
	MoveColumnRight string `yaml:"move_column_right"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevBoard  string `yaml:"prev_board"`
	NextBoard  string `yaml:"next_board"`

	// Projects
	PrevProject string `yaml:"prev_project"`
	NextProject string `yaml:"next_project"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		MoveBoardUp:    "K",
		MoveBoardDown:  "J",
		MoveBoardLeft:  "H",
		MoveBoardRight: "L",

		MoveColumnLeft:  "<",
		MoveColumnRight: ">",

		PrevColumn: "h",
		NextColumn: "l",
		PrevBoard:  "k",
		NextBoard:  "j",

		PrevProject: "[",
		NextProject: "]",

		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.MoveBoardUp, defaults.MoveBoardUp)
	fill(&k.MoveBoardDown, defaults.MoveBoardDown)
	fill(&k.MoveBoardLeft, defaults.MoveBoardLeft)
	fill(&k.MoveBoardRight, defaults.MoveBoardRight)
	fill(&k.MoveColumnLeft, defaults.MoveColumnLeft)
	fill(&k.MoveColumnRight, defaults.MoveColumnRight)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevBoard, defaults.PrevBoard)
	fill(&k.NextBoard, defaults.NextBoard)
	fill(&k.PrevProject, defaults.PrevProject)
	fill(&k.NextProject, defaults.NextProject)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
