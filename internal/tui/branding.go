package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/contesthub/contesthub/internal/config"
)

const AppName = "contesthub"

// ASCII art logo lines - canonical definition
var LogoLines = []string{
	" ▄████▄ ██   ██",
	"██▀  ▀▀ ██   ██",
	"██      ███████",
	"██▄  ▄▄ ██   ██",
	" ▀████▀ ██   ██",
}

const CompactLogo = "contesthub ›"

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#5B8DEF"),
	lipgloss.Color("#4ECDC4"),
	lipgloss.Color("#FFE66D"),
	lipgloss.Color("#95E1D3"),
	lipgloss.Color("#5B8DEF"),
}

var (
	PrimaryColor   = lipgloss.Color("#5B8DEF")
	SecondaryColor = lipgloss.Color("#4ECDC4")
	AccentColor    = lipgloss.Color("#FFE66D")

	TextColor  = lipgloss.Color("#EAEAEA")
	MutedColor = lipgloss.Color("#94A3B8")

	ErrorColor   = lipgloss.Color("#EF4444")
	SuccessColor = lipgloss.Color("#10B981")
)

// ApplyTheme overrides the palette from configuration. Empty values keep the
// built-in colors.
func ApplyTheme(cfg *config.Config) {
	set := func(dst *lipgloss.Color, val string) {
		if val != "" {
			*dst = lipgloss.Color(val)
		}
	}
	set(&PrimaryColor, cfg.UI.Colors.Primary)
	set(&SecondaryColor, cfg.UI.Colors.Secondary)
	set(&AccentColor, cfg.UI.Colors.Accent)
	set(&TextColor, cfg.UI.Colors.Text)
	set(&MutedColor, cfg.UI.Colors.Muted)
	set(&ErrorColor, cfg.UI.Colors.Error)
	set(&SuccessColor, cfg.UI.Colors.Success)
	rebuildStyles()
}

// Styled components
var (
	LogoStyle    lipgloss.Style
	TitleStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	HelpStyle    lipgloss.Style
	TimeStyle    lipgloss.Style
	RunningStyle lipgloss.Style

	StatusInfoStyle    lipgloss.Style
	StatusSuccessStyle lipgloss.Style
	StatusWarnStyle    lipgloss.Style
	StatusErrorStyle   lipgloss.Style
)

func rebuildStyles() {
	LogoStyle = lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true)
	TitleStyle = lipgloss.NewStyle().Foreground(TextColor).Bold(true).Padding(0, 2)
	HeaderStyle = lipgloss.NewStyle().Foreground(SecondaryColor).Bold(true)
	HelpStyle = lipgloss.NewStyle().Foreground(MutedColor).Italic(true)
	TimeStyle = lipgloss.NewStyle().Foreground(MutedColor).Faint(true)
	RunningStyle = lipgloss.NewStyle().Foreground(SuccessColor).Bold(true)

	StatusInfoStyle = lipgloss.NewStyle().Foreground(MutedColor)
	StatusSuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	StatusWarnStyle = lipgloss.NewStyle().Foreground(AccentColor)
	StatusErrorStyle = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
}

func init() {
	rebuildStyles()
}

func GetWelcomeMessage() string {
	return GetCompactBanner("Press r to load contests")
}

func GetCompactBanner(message string) string {
	var coloredLines []string
	for _, line := range LogoLines {
		coloredLines = append(coloredLines, LogoStyle.Render(line))
	}

	logo := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		HelpStyle.Render(message),
	)
}

// ShowBanner prints the startup banner before the program takes over the
// terminal.
func ShowBanner(version string) {
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)
	lines[len(LogoLines)] = ""

	versionTag := version
	if versionTag != "" && versionTag != "dev" {
		if versionTag[0] != 'v' && versionTag[0] != 'V' {
			versionTag = "v" + versionTag
		}
		lines = append(lines, fmt.Sprintf("    Contest Tracker %s", versionTag))
	} else {
		lines = append(lines, "    Contest Tracker")
	}

	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}

		colorIdx := i % len(BannerColors)
		style := lipgloss.NewStyle().
			Foreground(BannerColors[colorIdx]).
			Bold(i < len(LogoLines))

		coloredLines = append(coloredLines, style.Render(line))
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(SecondaryColor).
		Padding(1, 3).
		MarginTop(1)

	banner := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)
	output := borderStyle.Render(banner)

	fmt.Println(lipgloss.NewStyle().
		Width(70).
		Align(lipgloss.Center).
		Render(output))
}
