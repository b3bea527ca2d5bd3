package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, defaults from the Clinic theme
var (
	ColorPrimary     color.Color = lipgloss.Color("#0E7490") // Deep teal
	ColorSecondary   color.Color = lipgloss.Color("#14B8A6") // Teal
	ColorMuted       color.Color = lipgloss.Color("#A3B1C2") // Slate
	ColorBorder      color.Color = lipgloss.Color("#334155") // Dark slate
	ColorBorderFocus color.Color = lipgloss.Color("#0E7490")
	ColorBg          color.Color = lipgloss.Color("#0F172A")
	ColorText        color.Color = lipgloss.Color("#F8FAFC")
	ColorTextMuted   color.Color = lipgloss.Color("#A3B1C2")
	ColorTextInverse color.Color = lipgloss.Color("#0F172A")
	ColorUser        color.Color = lipgloss.Color("#38BDF8") // Sky for the user's bubbles
	ColorAssistant   color.Color = lipgloss.Color("#2DD4BF") // Aqua for the assistant
	ColorWarning     color.Color = lipgloss.Color("#F59E0B") // Amber for the emergency banner
	ColorInfo        color.Color = lipgloss.Color("#5EEAD4")
	ColorError       color.Color = lipgloss.Color("#EF4444")
	ColorSuccess     color.Color = lipgloss.Color("#22C55E")
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
	HeaderMenuStyle  lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	// LiveRegionStyle renders the latest status announcement
	LiveRegionStyle lipgloss.Style
)

// Panel and list styles
var (
	PanelStyle         lipgloss.Style
	PanelFocusedStyle  lipgloss.Style
	PanelTitleStyle    lipgloss.Style
	ListItemStyle      lipgloss.Style
	ListSelectedStyle  lipgloss.Style
	ListSectionStyle   lipgloss.Style
	ListSampleStyle    lipgloss.Style
	BannerStyle        lipgloss.Style
	DisclaimerStyle    lipgloss.Style
	QuickReplyStyle    lipgloss.Style
	QuickReplyKeyStyle lipgloss.Style
	VoiceActiveStyle   lipgloss.Style
)

// Chat styles
var (
	ChatUserStyle         lipgloss.Style
	ChatAssistantStyle    lipgloss.Style
	ChatMessageStyle      lipgloss.Style
	ChatTimeStyle         lipgloss.Style
	ChatUserBubble        lipgloss.Style
	ChatAssistantBubble   lipgloss.Style
	ChatTypingStyle       lipgloss.Style
	ChatInputStyle        lipgloss.Style
	ChatInputFocusedStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusErrorStyle   lipgloss.Style
	StatusSuccessStyle lipgloss.Style
)

func init() {
	buildStyles(currentTheme)
	RefreshModalStyles()
}

// buildStyles derives every style from the color variables and t.
func buildStyles(t Theme) {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	HeaderMenuStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	LiveRegionStyle = lipgloss.NewStyle().
		Foreground(ColorInfo).
		Italic(true)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	ListItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	ListSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text)).
		Bold(true).
		Padding(0, 1)
	if t.BgSelected != "" {
		// Light selection backgrounds need dark text
		ListSelectedStyle = ListSelectedStyle.Foreground(ColorTextInverse)
	}

	ListSectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	ListSampleStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	BannerStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorWarning).
		Foreground(ColorWarning).
		Bold(true).
		PaddingLeft(1)

	DisclaimerStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	QuickReplyStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Foreground(ColorText).
		Padding(0, 1)

	QuickReplyKeyStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	VoiceActiveStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ChatTimeStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	ChatUserBubble = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorUser).
		Padding(0, 1)

	ChatAssistantBubble = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAssistant).
		Padding(0, 1)

	ChatTypingStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Italic(true)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StatusSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
}
