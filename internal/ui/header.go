package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// MenuItem is one header action with its shortcut
type MenuItem struct {
	Key   string
	Label string
}

// Header represents the top header bar: localized title on one side, the
// active language and the menu on the other. RTL swaps the sides.
type Header struct {
	width    int
	title    string
	language string
	menu     []MenuItem
	rtl      bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{title: "Health Chat"}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle sets the localized application title
func (h *Header) SetTitle(title string) {
	h.title = title
}

// SetLanguage sets the native name of the active language
func (h *Header) SetLanguage(native string) {
	h.language = native
}

// SetMenu sets the header actions
func (h *Header) SetMenu(items []MenuItem) {
	h.menu = items
}

// SetRTL mirrors the header layout
func (h *Header) SetRTL(rtl bool) {
	h.rtl = rtl
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + h.title + " "

	var parts []string
	for _, item := range h.menu {
		parts = append(parts, item.Key+" "+item.Label)
	}
	rightText := strings.Join(parts, " · ")
	if h.language != "" {
		if rightText != "" {
			rightText = "[" + h.language + "]  " + rightText
		} else {
			rightText = "[" + h.language + "]"
		}
	}
	rightText += " "

	// Drop the menu before the title when the terminal is narrow
	if ansi.StringWidth(titleText)+ansi.StringWidth(rightText) > h.width && h.width > 0 {
		rightText = ansi.Truncate(rightText, max(h.width-ansi.StringWidth(titleText), 0), "…")
	}

	paddingLen := h.width - ansi.StringWidth(titleText) - ansi.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	var fullContent string
	boldEnd := len([]rune(titleText))
	if h.rtl {
		fullContent = rightText + strings.Repeat(" ", paddingLen) + titleText
		boldEnd = -1
	} else {
		fullContent = titleText + strings.Repeat(" ", paddingLen) + rightText
	}

	return h.renderGradient(fullContent, boldEnd, len([]rune(fullContent))-len([]rune(titleText)))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// Runes before boldEnd are bold in LTR; in RTL (boldEnd < 0) runes from
// rtlBoldStart on are bold.
func (h *Header) renderGradient(content string, boldEnd, rtlBoldStart int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	if h.rtl {
		startR, startG, startB, endR, endG, endB = endR, endG, endB, startR, startG, startB
	}

	textColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		bold := i < boldEnd
		if boldEnd < 0 {
			bold = i >= rtlBoldStart
		}

		style := lipgloss.NewStyle().
			Background(bgColor).
			Foreground(textColor).
			Bold(bold)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
