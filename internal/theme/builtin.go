package theme

import "github.com/charmbracelet/lipgloss"

// builtin lists the shipped palettes in display order.
var builtin = []Theme{
	{
		Name:             "Default",
		TitleTry:         lipgloss.Color("#89b4fa"),
		TitleRS:          lipgloss.Color("#f38ba8"),
		SearchTitle:      lipgloss.Color("#fab387"),
		SearchBorder:     lipgloss.Color("#9399b2"),
		FolderTitle:      lipgloss.Color("#a6e3a1"),
		FolderBorder:     lipgloss.Color("#9399b2"),
		DiskTitle:        lipgloss.Color("#f9e2af"),
		DiskBorder:       lipgloss.Color("#9399b2"),
		PreviewTitle:     lipgloss.Color("#89b4fa"),
		PreviewBorder:    lipgloss.Color("#9399b2"),
		LegendsTitle:     lipgloss.Color("#cba6f7"),
		LegendsBorder:    lipgloss.Color("#9399b2"),
		ListDate:         lipgloss.Color("#a6adc8"),
		ListHighlightBG:  lipgloss.Color("#585b70"),
		ListHighlightFG:  lipgloss.Color("#cdd6f4"),
		Helpers:          lipgloss.Color("#9399b2"),
		StatusMessage:    lipgloss.Color("#f9e2af"),
		PopupBG:          lipgloss.Color("#1e1e2e"),
		PopupText:        lipgloss.Color("#f38ba8"),
		IconRust:         lipgloss.Color("#e66432"),
		IconMaven:        lipgloss.Color("#ff9632"),
		IconFlutter:      lipgloss.Color("#027bde"),
		IconGo:           lipgloss.Color("#00add8"),
		IconPython:       lipgloss.Color("3"),
		IconMise:         lipgloss.Color("#fab387"),
		IconWorktree:     lipgloss.Color("#64b464"),
		IconWorktreeLock: lipgloss.Color("15"),
		IconGitmodules:   lipgloss.Color("#b482c8"),
		IconGit:          lipgloss.Color("#f05032"),
		IconFolder:       lipgloss.Color("#f9e2af"),
		IconFile:         lipgloss.Color("#a6adc8"),
	},
	{
		Name:             "Catppuccin Mocha",
		Background:       lipgloss.Color("#1e1e2e"),
		TitleTry:         lipgloss.Color("#89b4fa"),
		TitleRS:          lipgloss.Color("#f38ba8"),
		SearchTitle:      lipgloss.Color("#fab387"),
		SearchBorder:     lipgloss.Color("#9399b2"),
		FolderTitle:      lipgloss.Color("#a6e3a1"),
		FolderBorder:     lipgloss.Color("#9399b2"),
		DiskTitle:        lipgloss.Color("#f9e2af"),
		DiskBorder:       lipgloss.Color("#9399b2"),
		PreviewTitle:     lipgloss.Color("#89b4fa"),
		PreviewBorder:    lipgloss.Color("#9399b2"),
		LegendsTitle:     lipgloss.Color("#cba6f7"),
		LegendsBorder:    lipgloss.Color("#9399b2"),
		ListDate:         lipgloss.Color("#a6adc8"),
		ListHighlightBG:  lipgloss.Color("#585b70"),
		ListHighlightFG:  lipgloss.Color("#cdd6f4"),
		Helpers:          lipgloss.Color("#9399b2"),
		StatusMessage:    lipgloss.Color("#f9e2af"),
		PopupBG:          lipgloss.Color("#1e1e2e"),
		PopupText:        lipgloss.Color("#f38ba8"),
		IconRust:         lipgloss.Color("#fab387"),
		IconMaven:        lipgloss.Color("#f38ba8"),
		IconFlutter:      lipgloss.Color("#89b4fa"),
		IconGo:           lipgloss.Color("#94e2d5"),
		IconPython:       lipgloss.Color("#f9e2af"),
		IconMise:         lipgloss.Color("#fab387"),
		IconWorktree:     lipgloss.Color("#a6e3a1"),
		IconWorktreeLock: lipgloss.Color("#a6adc8"),
		IconGitmodules:   lipgloss.Color("#cba6f7"),
		IconGit:          lipgloss.Color("#f38ba8"),
		IconFolder:       lipgloss.Color("#f9e2af"),
		IconFile:         lipgloss.Color("#a6adc8"),
	},
	{
		Name:             "Catppuccin Macchiato",
		Background:       lipgloss.Color("#24273a"),
		TitleTry:         lipgloss.Color("#8aadf4"),
		TitleRS:          lipgloss.Color("#ee99a0"),
		SearchTitle:      lipgloss.Color("#f5a97f"),
		SearchBorder:     lipgloss.Color("#939ab7"),
		FolderTitle:      lipgloss.Color("#a6da95"),
		FolderBorder:     lipgloss.Color("#939ab7"),
		DiskTitle:        lipgloss.Color("#eed49f"),
		DiskBorder:       lipgloss.Color("#939ab7"),
		PreviewTitle:     lipgloss.Color("#8aadf4"),
		PreviewBorder:    lipgloss.Color("#939ab7"),
		LegendsTitle:     lipgloss.Color("#c6a0f6"),
		LegendsBorder:    lipgloss.Color("#939ab7"),
		ListDate:         lipgloss.Color("#a5adcb"),
		ListHighlightBG:  lipgloss.Color("#5b6078"),
		ListHighlightFG:  lipgloss.Color("#cad3f5"),
		Helpers:          lipgloss.Color("#939ab7"),
		StatusMessage:    lipgloss.Color("#eed49f"),
		PopupBG:          lipgloss.Color("#24273a"),
		PopupText:        lipgloss.Color("#ed8796"),
		IconRust:         lipgloss.Color("#f5a97f"),
		IconMaven:        lipgloss.Color("#ed8796"),
		IconFlutter:      lipgloss.Color("#8aadf4"),
		IconGo:           lipgloss.Color("#8bd5ca"),
		IconPython:       lipgloss.Color("#eed49f"),
		IconMise:         lipgloss.Color("#f5a97f"),
		IconWorktree:     lipgloss.Color("#a6da95"),
		IconWorktreeLock: lipgloss.Color("#a5adcb"),
		IconGitmodules:   lipgloss.Color("#c6a0f6"),
		IconGit:          lipgloss.Color("#ed8796"),
		IconFolder:       lipgloss.Color("#eed49f"),
		IconFile:         lipgloss.Color("#a5adcb"),
	},
	{
		Name:             "Dracula",
		Background:       lipgloss.Color("#282a36"),
		TitleTry:         lipgloss.Color("#bd93f9"),
		TitleRS:          lipgloss.Color("#ff79c6"),
		SearchTitle:      lipgloss.Color("#ffb86c"),
		SearchBorder:     lipgloss.Color("#6272a4"),
		FolderTitle:      lipgloss.Color("#50fa7b"),
		FolderBorder:     lipgloss.Color("#6272a4"),
		DiskTitle:        lipgloss.Color("#f1fa8c"),
		DiskBorder:       lipgloss.Color("#6272a4"),
		PreviewTitle:     lipgloss.Color("#8be9fd"),
		PreviewBorder:    lipgloss.Color("#6272a4"),
		LegendsTitle:     lipgloss.Color("#bd93f9"),
		LegendsBorder:    lipgloss.Color("#6272a4"),
		ListDate:         lipgloss.Color("#8be9fd"),
		ListHighlightBG:  lipgloss.Color("#44475a"),
		ListHighlightFG:  lipgloss.Color("#f8f8f2"),
		Helpers:          lipgloss.Color("#6272a4"),
		StatusMessage:    lipgloss.Color("#f1fa8c"),
		PopupBG:          lipgloss.Color("#282a36"),
		PopupText:        lipgloss.Color("#ff5555"),
		IconRust:         lipgloss.Color("#ffb86c"),
		IconMaven:        lipgloss.Color("#ff5555"),
		IconFlutter:      lipgloss.Color("#8be9fd"),
		IconGo:           lipgloss.Color("#8be9fd"),
		IconPython:       lipgloss.Color("#f1fa8c"),
		IconMise:         lipgloss.Color("#ffb86c"),
		IconWorktree:     lipgloss.Color("#50fa7b"),
		IconWorktreeLock: lipgloss.Color("#f8f8f2"),
		IconGitmodules:   lipgloss.Color("#bd93f9"),
		IconGit:          lipgloss.Color("#ff79c6"),
		IconFolder:       lipgloss.Color("#f1fa8c"),
		IconFile:         lipgloss.Color("#8be9fd"),
	},
	{
		Name:             "JetBrains Darcula",
		Background:       lipgloss.Color("#2b2b2b"),
		TitleTry:         lipgloss.Color("#4e7cee"),
		TitleRS:          lipgloss.Color("#cc7832"),
		SearchTitle:      lipgloss.Color("#6a8759"),
		SearchBorder:     lipgloss.Color("#808080"),
		FolderTitle:      lipgloss.Color("#ffc66d"),
		FolderBorder:     lipgloss.Color("#808080"),
		DiskTitle:        lipgloss.Color("#cc7832"),
		DiskBorder:       lipgloss.Color("#808080"),
		PreviewTitle:     lipgloss.Color("#4e7cee"),
		PreviewBorder:    lipgloss.Color("#808080"),
		LegendsTitle:     lipgloss.Color("#9876aa"),
		LegendsBorder:    lipgloss.Color("#808080"),
		ListDate:         lipgloss.Color("#808080"),
		ListHighlightBG:  lipgloss.Color("#214283"),
		ListHighlightFG:  lipgloss.Color("#bbbbbb"),
		Helpers:          lipgloss.Color("#808080"),
		StatusMessage:    lipgloss.Color("#ffc66d"),
		PopupBG:          lipgloss.Color("#3c3f41"),
		PopupText:        lipgloss.Color("#cc7832"),
		IconRust:         lipgloss.Color("#cc7832"),
		IconMaven:        lipgloss.Color("#ffc66d"),
		IconFlutter:      lipgloss.Color("#4e7cee"),
		IconGo:           lipgloss.Color("#00add8"),
		IconPython:       lipgloss.Color("#ffc66d"),
		IconMise:         lipgloss.Color("#cc7832"),
		IconWorktree:     lipgloss.Color("#6a8759"),
		IconWorktreeLock: lipgloss.Color("#bbbbbb"),
		IconGitmodules:   lipgloss.Color("#9876aa"),
		IconGit:          lipgloss.Color("#cc7832"),
		IconFolder:       lipgloss.Color("#ffc66d"),
		IconFile:         lipgloss.Color("#808080"),
	},
	{
		Name:             "Gruvbox Dark",
		Background:       lipgloss.Color("#282828"),
		TitleTry:         lipgloss.Color("#fb4934"),
		TitleRS:          lipgloss.Color("#fabd2f"),
		SearchTitle:      lipgloss.Color("#b8bb26"),
		SearchBorder:     lipgloss.Color("#a89984"),
		FolderTitle:      lipgloss.Color("#fabd2f"),
		FolderBorder:     lipgloss.Color("#a89984"),
		DiskTitle:        lipgloss.Color("#fe8019"),
		DiskBorder:       lipgloss.Color("#a89984"),
		PreviewTitle:     lipgloss.Color("#83a598"),
		PreviewBorder:    lipgloss.Color("#a89984"),
		LegendsTitle:     lipgloss.Color("#d3869b"),
		LegendsBorder:    lipgloss.Color("#a89984"),
		ListDate:         lipgloss.Color("#928374"),
		ListHighlightBG:  lipgloss.Color("#504945"),
		ListHighlightFG:  lipgloss.Color("#ebdbb2"),
		Helpers:          lipgloss.Color("#a89984"),
		StatusMessage:    lipgloss.Color("#d79921"),
		PopupBG:          lipgloss.Color("#282828"),
		PopupText:        lipgloss.Color("#fb4934"),
		IconRust:         lipgloss.Color("#fe8019"),
		IconMaven:        lipgloss.Color("#fb4934"),
		IconFlutter:      lipgloss.Color("#83a598"),
		IconGo:           lipgloss.Color("#83a598"),
		IconPython:       lipgloss.Color("#fabd2f"),
		IconMise:         lipgloss.Color("#fe8019"),
		IconWorktree:     lipgloss.Color("#b8bb26"),
		IconWorktreeLock: lipgloss.Color("#a89984"),
		IconGitmodules:   lipgloss.Color("#d3869b"),
		IconGit:          lipgloss.Color("#fb4934"),
		IconFolder:       lipgloss.Color("#fabd2f"),
		IconFile:         lipgloss.Color("#928374"),
	},
	{
		Name:             "Nord",
		Background:       lipgloss.Color("#2e3440"),
		TitleTry:         lipgloss.Color("#88c0d0"),
		TitleRS:          lipgloss.Color("#bf616a"),
		SearchTitle:      lipgloss.Color("#a3be8c"),
		SearchBorder:     lipgloss.Color("#4c566a"),
		FolderTitle:      lipgloss.Color("#ebcb8b"),
		FolderBorder:     lipgloss.Color("#4c566a"),
		DiskTitle:        lipgloss.Color("#d08770"),
		DiskBorder:       lipgloss.Color("#4c566a"),
		PreviewTitle:     lipgloss.Color("#88c0d0"),
		PreviewBorder:    lipgloss.Color("#4c566a"),
		LegendsTitle:     lipgloss.Color("#b48ead"),
		LegendsBorder:    lipgloss.Color("#4c566a"),
		ListDate:         lipgloss.Color("#d8dee9"),
		ListHighlightBG:  lipgloss.Color("#434c5e"),
		ListHighlightFG:  lipgloss.Color("#eceff4"),
		Helpers:          lipgloss.Color("#4c566a"),
		StatusMessage:    lipgloss.Color("#ebcb8b"),
		PopupBG:          lipgloss.Color("#2e3440"),
		PopupText:        lipgloss.Color("#bf616a"),
		IconRust:         lipgloss.Color("#d08770"),
		IconMaven:        lipgloss.Color("#bf616a"),
		IconFlutter:      lipgloss.Color("#88c0d0"),
		IconGo:           lipgloss.Color("#88c0d0"),
		IconPython:       lipgloss.Color("#ebcb8b"),
		IconMise:         lipgloss.Color("#d08770"),
		IconWorktree:     lipgloss.Color("#a3be8c"),
		IconWorktreeLock: lipgloss.Color("#d8dee9"),
		IconGitmodules:   lipgloss.Color("#b48ead"),
		IconGit:          lipgloss.Color("#bf616a"),
		IconFolder:       lipgloss.Color("#ebcb8b"),
		IconFile:         lipgloss.Color("#d8dee9"),
	},
	{
		Name:             "Tokyo Night",
		Background:       lipgloss.Color("#1a1b26"),
		TitleTry:         lipgloss.Color("#7aa2f7"),
		TitleRS:          lipgloss.Color("#f7768e"),
		SearchTitle:      lipgloss.Color("#9ece6a"),
		SearchBorder:     lipgloss.Color("#565f89"),
		FolderTitle:      lipgloss.Color("#e0af68"),
		FolderBorder:     lipgloss.Color("#565f89"),
		DiskTitle:        lipgloss.Color("#ff9e64"),
		DiskBorder:       lipgloss.Color("#565f89"),
		PreviewTitle:     lipgloss.Color("#7dcfff"),
		PreviewBorder:    lipgloss.Color("#565f89"),
		LegendsTitle:     lipgloss.Color("#bb9af7"),
		LegendsBorder:    lipgloss.Color("#565f89"),
		ListDate:         lipgloss.Color("#a9b1d6"),
		ListHighlightBG:  lipgloss.Color("#414868"),
		ListHighlightFG:  lipgloss.Color("#c0caf5"),
		Helpers:          lipgloss.Color("#565f89"),
		StatusMessage:    lipgloss.Color("#e0af68"),
		PopupBG:          lipgloss.Color("#1a1b26"),
		PopupText:        lipgloss.Color("#f7768e"),
		IconRust:         lipgloss.Color("#ff9e64"),
		IconMaven:        lipgloss.Color("#f7768e"),
		IconFlutter:      lipgloss.Color("#7dcfff"),
		IconGo:           lipgloss.Color("#7dcfff"),
		IconPython:       lipgloss.Color("#e0af68"),
		IconMise:         lipgloss.Color("#ff9e64"),
		IconWorktree:     lipgloss.Color("#9ece6a"),
		IconWorktreeLock: lipgloss.Color("#a9b1d6"),
		IconGitmodules:   lipgloss.Color("#bb9af7"),
		IconGit:          lipgloss.Color("#f7768e"),
		IconFolder:       lipgloss.Color("#e0af68"),
		IconFile:         lipgloss.Color("#a9b1d6"),
	},
	{
		Name:             "One Dark Pro",
		Background:       lipgloss.Color("#282c34"),
		TitleTry:         lipgloss.Color("#61afef"),
		TitleRS:          lipgloss.Color("#e06c75"),
		SearchTitle:      lipgloss.Color("#d19a66"),
		SearchBorder:     lipgloss.Color("#5c6370"),
		FolderTitle:      lipgloss.Color("#98c379"),
		FolderBorder:     lipgloss.Color("#5c6370"),
		DiskTitle:        lipgloss.Color("#e5c07b"),
		DiskBorder:       lipgloss.Color("#5c6370"),
		PreviewTitle:     lipgloss.Color("#56b6c2"),
		PreviewBorder:    lipgloss.Color("#5c6370"),
		LegendsTitle:     lipgloss.Color("#c678dd"),
		LegendsBorder:    lipgloss.Color("#5c6370"),
		ListDate:         lipgloss.Color("#abb2bf"),
		ListHighlightBG:  lipgloss.Color("#3e4451"),
		ListHighlightFG:  lipgloss.Color("#dcdfe4"),
		Helpers:          lipgloss.Color("#5c6370"),
		StatusMessage:    lipgloss.Color("#e5c07b"),
		PopupBG:          lipgloss.Color("#282c34"),
		PopupText:        lipgloss.Color("#e06c75"),
		IconRust:         lipgloss.Color("#d19a66"),
		IconMaven:        lipgloss.Color("#e06c75"),
		IconFlutter:      lipgloss.Color("#56b6c2"),
		IconGo:           lipgloss.Color("#56b6c2"),
		IconPython:       lipgloss.Color("#e5c07b"),
		IconMise:         lipgloss.Color("#d19a66"),
		IconWorktree:     lipgloss.Color("#98c379"),
		IconWorktreeLock: lipgloss.Color("#abb2bf"),
		IconGitmodules:   lipgloss.Color("#c678dd"),
		IconGit:          lipgloss.Color("#e06c75"),
		IconFolder:       lipgloss.Color("#e5c07b"),
		IconFile:         lipgloss.Color("#abb2bf"),
	},
	{
		Name:             "Everforest",
		Background:       lipgloss.Color("#2d3330"),
		TitleTry:         lipgloss.Color("#7fbbb3"),
		TitleRS:          lipgloss.Color("#e67e80"),
		SearchTitle:      lipgloss.Color("#e69875"),
		SearchBorder:     lipgloss.Color("#7f8478"),
		FolderTitle:      lipgloss.Color("#a7c080"),
		FolderBorder:     lipgloss.Color("#7f8478"),
		DiskTitle:        lipgloss.Color("#dbbc7f"),
		DiskBorder:       lipgloss.Color("#7f8478"),
		PreviewTitle:     lipgloss.Color("#7fbbb3"),
		PreviewBorder:    lipgloss.Color("#7f8478"),
		LegendsTitle:     lipgloss.Color("#d699b6"),
		LegendsBorder:    lipgloss.Color("#7f8478"),
		ListDate:         lipgloss.Color("#d3c6aa"),
		ListHighlightBG:  lipgloss.Color("#50584d"),
		ListHighlightFG:  lipgloss.Color("#d3c6aa"),
		Helpers:          lipgloss.Color("#7f8478"),
		StatusMessage:    lipgloss.Color("#dbbc7f"),
		PopupBG:          lipgloss.Color("#2d3330"),
		PopupText:        lipgloss.Color("#e67e80"),
		IconRust:         lipgloss.Color("#e69875"),
		IconMaven:        lipgloss.Color("#e67e80"),
		IconFlutter:      lipgloss.Color("#7fbbb3"),
		IconGo:           lipgloss.Color("#7fbbb3"),
		IconPython:       lipgloss.Color("#dbbc7f"),
		IconMise:         lipgloss.Color("#e69875"),
		IconWorktree:     lipgloss.Color("#a7c080"),
		IconWorktreeLock: lipgloss.Color("#d3c6aa"),
		IconGitmodules:   lipgloss.Color("#d699b6"),
		IconGit:          lipgloss.Color("#e67e80"),
		IconFolder:       lipgloss.Color("#dbbc7f"),
		IconFile:         lipgloss.Color("#d3c6aa"),
	},
	{
		Name:             "SynthWave '84",
		Background:       lipgloss.Color("#261d35"),
		TitleTry:         lipgloss.Color("#36f4f4"),
		TitleRS:          lipgloss.Color("#ff7eb9"),
		SearchTitle:      lipgloss.Color("#ffcb6b"),
		SearchBorder:     lipgloss.Color("#815ba4"),
		FolderTitle:      lipgloss.Color("#72f1b1"),
		FolderBorder:     lipgloss.Color("#815ba4"),
		DiskTitle:        lipgloss.Color("#ffcb6b"),
		DiskBorder:       lipgloss.Color("#815ba4"),
		PreviewTitle:     lipgloss.Color("#36f4f4"),
		PreviewBorder:    lipgloss.Color("#815ba4"),
		LegendsTitle:     lipgloss.Color("#fe4eae"),
		LegendsBorder:    lipgloss.Color("#815ba4"),
		ListDate:         lipgloss.Color("#bbbac9"),
		ListHighlightBG:  lipgloss.Color("#392b4b"),
		ListHighlightFG:  lipgloss.Color("#ffffff"),
		Helpers:          lipgloss.Color("#815ba4"),
		StatusMessage:    lipgloss.Color("#ffcb6b"),
		PopupBG:          lipgloss.Color("#261d35"),
		PopupText:        lipgloss.Color("#fe4eae"),
		IconRust:         lipgloss.Color("#ff8c42"),
		IconMaven:        lipgloss.Color("#ff7eb9"),
		IconFlutter:      lipgloss.Color("#36f4f4"),
		IconGo:           lipgloss.Color("#36f4f4"),
		IconPython:       lipgloss.Color("#ffcb6b"),
		IconMise:         lipgloss.Color("#ff8c42"),
		IconWorktree:     lipgloss.Color("#72f1b1"),
		IconWorktreeLock: lipgloss.Color("#bbbac9"),
		IconGitmodules:   lipgloss.Color("#fe4eae"),
		IconGit:          lipgloss.Color("#ff7eb9"),
		IconFolder:       lipgloss.Color("#ffcb6b"),
		IconFile:         lipgloss.Color("#bbbac9"),
	},
	{
		Name:             "OLED True Black",
		Background:       lipgloss.Color("#000000"),
		TitleTry:         lipgloss.Color("#00c8ff"),
		TitleRS:          lipgloss.Color("#ff5064"),
		SearchTitle:      lipgloss.Color("#ffb400"),
		SearchBorder:     lipgloss.Color("#3c3c3c"),
		FolderTitle:      lipgloss.Color("#00e682"),
		FolderBorder:     lipgloss.Color("#3c3c3c"),
		DiskTitle:        lipgloss.Color("#ffdc00"),
		DiskBorder:       lipgloss.Color("#3c3c3c"),
		PreviewTitle:     lipgloss.Color("#00c8ff"),
		PreviewBorder:    lipgloss.Color("#3c3c3c"),
		LegendsTitle:     lipgloss.Color("#c864ff"),
		LegendsBorder:    lipgloss.Color("#3c3c3c"),
		ListDate:         lipgloss.Color("#b4b4b4"),
		ListHighlightBG:  lipgloss.Color("#1e1e1e"),
		ListHighlightFG:  lipgloss.Color("#ffffff"),
		Helpers:          lipgloss.Color("#646464"),
		StatusMessage:    lipgloss.Color("#ffdc00"),
		PopupBG:          lipgloss.Color("#000000"),
		PopupText:        lipgloss.Color("#ff5064"),
		IconRust:         lipgloss.Color("#ff7832"),
		IconMaven:        lipgloss.Color("#ff5064"),
		IconFlutter:      lipgloss.Color("#00c8ff"),
		IconGo:           lipgloss.Color("#00c8ff"),
		IconPython:       lipgloss.Color("#ffdc00"),
		IconMise:         lipgloss.Color("#ffb400"),
		IconWorktree:     lipgloss.Color("#00e682"),
		IconWorktreeLock: lipgloss.Color("#b4b4b4"),
		IconGitmodules:   lipgloss.Color("#c864ff"),
		IconGit:          lipgloss.Color("#ff5064"),
		IconFolder:       lipgloss.Color("#ffdc00"),
		IconFile:         lipgloss.Color("#b4b4b4"),
	},
	{
		Name:             "Silver Gray",
		Background:       lipgloss.Color("#2f2f2f"),
		TitleTry:         lipgloss.Color("#6495ed"),
		TitleRS:          lipgloss.Color("#cd5c5c"),
		SearchTitle:      lipgloss.Color("#daa520"),
		SearchBorder:     lipgloss.Color("#808080"),
		FolderTitle:      lipgloss.Color("#90ee90"),
		FolderBorder:     lipgloss.Color("#808080"),
		DiskTitle:        lipgloss.Color("#f0e68c"),
		DiskBorder:       lipgloss.Color("#808080"),
		PreviewTitle:     lipgloss.Color("#b0c4de"),
		PreviewBorder:    lipgloss.Color("#808080"),
		LegendsTitle:     lipgloss.Color("#ba55d3"),
		LegendsBorder:    lipgloss.Color("#808080"),
		ListDate:         lipgloss.Color("#c0c0c0"),
		ListHighlightBG:  lipgloss.Color("#464646"),
		ListHighlightFG:  lipgloss.Color("#f5f5f5"),
		Helpers:          lipgloss.Color("#808080"),
		StatusMessage:    lipgloss.Color("#f0e68c"),
		PopupBG:          lipgloss.Color("#2f2f2f"),
		PopupText:        lipgloss.Color("#cd5c5c"),
		IconRust:         lipgloss.Color("#d2691e"),
		IconMaven:        lipgloss.Color("#cd5c5c"),
		IconFlutter:      lipgloss.Color("#6495ed"),
		IconGo:           lipgloss.Color("#b0c4de"),
		IconPython:       lipgloss.Color("#f0e68c"),
		IconMise:         lipgloss.Color("#daa520"),
		IconWorktree:     lipgloss.Color("#90ee90"),
		IconWorktreeLock: lipgloss.Color("#c0c0c0"),
		IconGitmodules:   lipgloss.Color("#ba55d3"),
		IconGit:          lipgloss.Color("#cd5c5c"),
		IconFolder:       lipgloss.Color("#f0e68c"),
		IconFile:         lipgloss.Color("#c0c0c0"),
	},
	{
		Name:             "Black & White",
		Background:       lipgloss.Color("0"),
		TitleTry:         lipgloss.Color("15"),
		TitleRS:          lipgloss.Color("15"),
		SearchTitle:      lipgloss.Color("15"),
		SearchBorder:     lipgloss.Color("7"),
		FolderTitle:      lipgloss.Color("15"),
		FolderBorder:     lipgloss.Color("7"),
		DiskTitle:        lipgloss.Color("15"),
		DiskBorder:       lipgloss.Color("7"),
		PreviewTitle:     lipgloss.Color("15"),
		PreviewBorder:    lipgloss.Color("7"),
		LegendsTitle:     lipgloss.Color("15"),
		LegendsBorder:    lipgloss.Color("7"),
		ListDate:         lipgloss.Color("7"),
		ListHighlightBG:  lipgloss.Color("15"),
		ListHighlightFG:  lipgloss.Color("0"),
		Helpers:          lipgloss.Color("7"),
		StatusMessage:    lipgloss.Color("15"),
		PopupBG:          lipgloss.Color("0"),
		PopupText:        lipgloss.Color("15"),
		IconRust:         lipgloss.Color("15"),
		IconMaven:        lipgloss.Color("15"),
		IconFlutter:      lipgloss.Color("15"),
		IconGo:           lipgloss.Color("15"),
		IconPython:       lipgloss.Color("15"),
		IconMise:         lipgloss.Color("7"),
		IconWorktree:     lipgloss.Color("15"),
		IconWorktreeLock: lipgloss.Color("7"),
		IconGitmodules:   lipgloss.Color("7"),
		IconGit:          lipgloss.Color("15"),
		IconFolder:       lipgloss.Color("15"),
		IconFile:         lipgloss.Color("7"),
	},
	{
		Name:             "Matrix",
		Background:       lipgloss.Color("#000a00"),
		TitleTry:         lipgloss.Color("#00ff41"),
		TitleRS:          lipgloss.Color("#00c832"),
		SearchTitle:      lipgloss.Color("#00ff41"),
		SearchBorder:     lipgloss.Color("#00641e"),
		FolderTitle:      lipgloss.Color("#00ff41"),
		FolderBorder:     lipgloss.Color("#00641e"),
		DiskTitle:        lipgloss.Color("#00ff41"),
		DiskBorder:       lipgloss.Color("#00641e"),
		PreviewTitle:     lipgloss.Color("#00ff41"),
		PreviewBorder:    lipgloss.Color("#00641e"),
		LegendsTitle:     lipgloss.Color("#00c832"),
		LegendsBorder:    lipgloss.Color("#00641e"),
		ListDate:         lipgloss.Color("#009628"),
		ListHighlightBG:  lipgloss.Color("#005019"),
		ListHighlightFG:  lipgloss.Color("#00ff41"),
		Helpers:          lipgloss.Color("#009628"),
		StatusMessage:    lipgloss.Color("#00ff41"),
		PopupBG:          lipgloss.Color("#000a00"),
		PopupText:        lipgloss.Color("#00ff41"),
		IconRust:         lipgloss.Color("#00ff41"),
		IconMaven:        lipgloss.Color("#00dc37"),
		IconFlutter:      lipgloss.Color("#00c832"),
		IconGo:           lipgloss.Color("#00b42d"),
		IconPython:       lipgloss.Color("#00ff41"),
		IconMise:         lipgloss.Color("#009628"),
		IconWorktree:     lipgloss.Color("#00c832"),
		IconWorktreeLock: lipgloss.Color("#007823"),
		IconGitmodules:   lipgloss.Color("#00b42d"),
		IconGit:          lipgloss.Color("#00ff41"),
		IconFolder:       lipgloss.Color("#00dc37"),
		IconFile:         lipgloss.Color("#009628"),
	},
	{
		Name:             "Tron",
		Background:       lipgloss.Color("#000a0f"),
		TitleTry:         lipgloss.Color("#00ffff"),
		TitleRS:          lipgloss.Color("#ff9600"),
		SearchTitle:      lipgloss.Color("#00ffff"),
		SearchBorder:     lipgloss.Color("#0096b4"),
		FolderTitle:      lipgloss.Color("#00ffff"),
		FolderBorder:     lipgloss.Color("#0096b4"),
		DiskTitle:        lipgloss.Color("#ff9600"),
		DiskBorder:       lipgloss.Color("#0096b4"),
		PreviewTitle:     lipgloss.Color("#00ffff"),
		PreviewBorder:    lipgloss.Color("#0096b4"),
		LegendsTitle:     lipgloss.Color("#00c8dc"),
		LegendsBorder:    lipgloss.Color("#0096b4"),
		ListDate:         lipgloss.Color("#00b4c8"),
		ListHighlightBG:  lipgloss.Color("#005064"),
		ListHighlightFG:  lipgloss.Color("#00ffff"),
		Helpers:          lipgloss.Color("#0096b4"),
		StatusMessage:    lipgloss.Color("#ff9600"),
		PopupBG:          lipgloss.Color("#000a0f"),
		PopupText:        lipgloss.Color("#00ffff"),
		IconRust:         lipgloss.Color("#ff9600"),
		IconMaven:        lipgloss.Color("#ff6400"),
		IconFlutter:      lipgloss.Color("#00ffff"),
		IconGo:           lipgloss.Color("#00dce6"),
		IconPython:       lipgloss.Color("#ffc800"),
		IconMise:         lipgloss.Color("#ff9600"),
		IconWorktree:     lipgloss.Color("#00ffff"),
		IconWorktreeLock: lipgloss.Color("#0096b4"),
		IconGitmodules:   lipgloss.Color("#00c8dc"),
		IconGit:          lipgloss.Color("#ff9600"),
		IconFolder:       lipgloss.Color("#00ffff"),
		IconFile:         lipgloss.Color("#00b4c8"),
	},
}
