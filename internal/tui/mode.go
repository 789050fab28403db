package tui

// Mode is the active interaction mode. Every mode except ModeNormal is an
// overlay that suspends the normal-mode keys.
type Mode int

const (
	ModeNormal Mode = iota
	ModeDeleteConfirm
	ModeThemeSelect
	ModeConfigSavePrompt
	ModeConfigSaveLocationSelect
	ModeAbout
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDeleteConfirm:
		return "delete-confirm"
	case ModeThemeSelect:
		return "theme-select"
	case ModeConfigSavePrompt:
		return "config-save-prompt"
	case ModeConfigSaveLocationSelect:
		return "config-save-location"
	case ModeAbout:
		return "about"
	default:
		return "unknown"
	}
}

// SelectionKind tells the caller what to do with a finished session.
type SelectionKind int

const (
	// SelectNone means the user aborted.
	SelectNone SelectionKind = iota
	// SelectFolder names an existing entry.
	SelectFolder
	// SelectNew asks the caller to create a folder.
	SelectNew
)

func (k SelectionKind) String() string {
	switch k {
	case SelectFolder:
		return "folder"
	case SelectNew:
		return "new"
	default:
		return "none"
	}
}

// Selection is the outcome of a session.
type Selection struct {
	Kind SelectionKind
	Name string
}

// Folder selects an existing entry by its on-disk name.
func Folder(name string) Selection {
	return Selection{Kind: SelectFolder, Name: name}
}

// New requests a new folder called name.
func New(name string) Selection {
	return Selection{Kind: SelectNew, Name: name}
}

// None is the aborted selection.
func None() Selection {
	return Selection{Kind: SelectNone}
}

// Result is what Run hands back to the caller.
type Result struct {
	Selection   Selection
	WantsEditor bool
}

// saveLocation is an item of the config location list.
type saveLocation int

const (
	locationSystem saveLocation = iota
	locationHome
	locationCount
)
