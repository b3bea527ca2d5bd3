package modals

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/healthchat/internal/keys"
	"github.com/zhubert/healthchat/internal/locale"
)

// LanguagePicker is a searchable language list. The welcome screen shows it
// with a common-languages section; the language modal shows the flat list.
type LanguagePicker struct {
	catalog    *locale.Catalog
	strings    locale.Strings
	input      textinput.Model
	entries    []pickerEntry
	cursor     int
	active     string
	showCommon bool
	width      int
}

type pickerEntry struct {
	lang    locale.Language
	section string // set on the first row of a section
}

// NewLanguagePicker creates a focused picker with the cursor on active.
func NewLanguagePicker(catalog *locale.Catalog, active locale.Language, s locale.Strings, showCommon bool) *LanguagePicker {
	ti := textinput.New()
	ti.Placeholder = s.SearchLang
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	ti.Focus()

	p := &LanguagePicker{
		catalog:    catalog,
		strings:    s,
		input:      ti,
		active:     active.Code,
		showCommon: showCommon,
		width:      ModalInputWidth,
	}
	p.refresh()
	p.moveTo(active.Code)
	return p
}

// SetStrings relabels the picker after a language change.
func (p *LanguagePicker) SetStrings(s locale.Strings) {
	p.strings = s
	p.input.Placeholder = s.SearchLang
	p.refresh()
}

// SetActive marks code as the applied language.
func (p *LanguagePicker) SetActive(code string) {
	p.active = code
}

// SetWidth sets the width available to rows.
func (p *LanguagePicker) SetWidth(width int) {
	p.width = width
	p.input.SetWidth(max(width-4, 10))
}

// Focus focuses the search input.
func (p *LanguagePicker) Focus() tea.Cmd {
	return p.input.Focus()
}

// Blur blurs the search input.
func (p *LanguagePicker) Blur() {
	p.input.Blur()
}

// Query returns the search text.
func (p *LanguagePicker) Query() string {
	return p.input.Value()
}

// SetQuery replaces the search text and refilters.
func (p *LanguagePicker) SetQuery(q string) {
	p.input.SetValue(q)
	p.refresh()
}

// Len returns the number of visible rows.
func (p *LanguagePicker) Len() int {
	return len(p.entries)
}

// Selected returns the language under the cursor.
func (p *LanguagePicker) Selected() (locale.Language, bool) {
	if p.cursor < 0 || p.cursor >= len(p.entries) {
		return locale.Language{}, false
	}
	return p.entries[p.cursor].lang, true
}

// Update moves the cursor on up/down and sends everything else to the
// search input.
func (p *LanguagePicker) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up:
			if p.cursor > 0 {
				p.cursor--
			}
			return nil
		case keys.Down:
			if p.cursor < len(p.entries)-1 {
				p.cursor++
			}
			return nil
		}
	}

	before := p.input.Value()
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.refresh()
		p.cursor = 0
	}
	return cmd
}

// refresh rebuilds the rows from the catalog and the query.
func (p *LanguagePicker) refresh() {
	p.entries = p.entries[:0]
	query := strings.TrimSpace(p.input.Value())

	if p.showCommon && query == "" {
		for i, l := range p.catalog.Common() {
			e := pickerEntry{lang: l}
			if i == 0 {
				e.section = p.strings.CommonLanguages
			}
			p.entries = append(p.entries, e)
		}
		for i, l := range p.catalog.All() {
			e := pickerEntry{lang: l}
			if i == 0 {
				e.section = p.strings.AllLanguages
			}
			p.entries = append(p.entries, e)
		}
	} else {
		for _, l := range p.catalog.Filter(query) {
			p.entries = append(p.entries, pickerEntry{lang: l})
		}
	}

	if p.cursor >= len(p.entries) {
		p.cursor = max(len(p.entries)-1, 0)
	}
}

func (p *LanguagePicker) moveTo(code string) {
	for i, e := range p.entries {
		if e.lang.Code == code {
			p.cursor = i
			return
		}
	}
}

// View renders the search input, the visible rows and the sample of the
// language under the cursor.
func (p *LanguagePicker) View() string {
	var b strings.Builder
	b.WriteString(p.input.View())
	b.WriteString("\n\n")

	if len(p.entries) == 0 {
		b.WriteString(ListSampleStyle.Render("—"))
		return b.String()
	}

	start, end := window(len(p.entries), p.cursor, LanguageListMaxVisible)
	for i := start; i < end; i++ {
		e := p.entries[i]
		if e.section != "" {
			b.WriteString(ListSectionStyle.Render(e.section) + "\n")
		}

		label := TruncateLabel(e.lang.Label(), p.width-6)
		if e.lang.Code == p.active {
			label += " ✓"
		}

		style := ListItemStyle
		prefix := "  "
		if i == p.cursor {
			style = ListSelectedStyle
			prefix = "> "
		}
		b.WriteString(style.Render(prefix+label) + "\n")
	}

	if sel, ok := p.Selected(); ok && sel.Sample != "" {
		align := lipgloss.Left
		if sel.IsRTL() {
			align = lipgloss.Right
		}
		b.WriteString("\n" + ListSampleStyle.Width(p.width).Align(align).Render(sel.Sample))
	}
	return b.String()
}
