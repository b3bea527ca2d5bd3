package ui

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
	"github.com/zhubert/healthchat/internal/keys"
	"github.com/zhubert/healthchat/internal/locale"
	"github.com/zhubert/healthchat/internal/transcript"
)

// TypingTickMsg advances the typing indicator animation
type TypingTickMsg time.Time

// typingFrames are the dots of the animated typing indicator
var typingFrames = []string{"●○○", "○●○", "○○●", "○●○"}

// staticTypingFrame is shown instead of the animation under reduced motion
const staticTypingFrame = "•••"

// TypingTick returns a command that sends a tick message after a delay
func TypingTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(t time.Time) tea.Msg {
		return TypingTickMsg(t)
	})
}

// Chat is the conversation screen: message bubbles, quick replies, the
// growing input and the disclaimer under it.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool

	messages []transcript.Message
	typing   bool
	strings  locale.Strings
	timeFmt  locale.TimeFormatter
	rtl      bool

	reducedMotion bool
	voice         bool
	frame         int
	ticking       bool
}

// NewChat creates a new chat screen
func NewChat() *Chat {
	ti := textarea.New()
	ti.CharLimit = 0
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	ti.MaxHeight = InputMaxLines
	ti.SetHeight(InputMinLines)
	// Enter submits; the app handles it before the textarea sees it
	ti.KeyMap.InsertNewline.SetKeys(keys.ShiftEnter, keys.AltEnter)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
		strings:  locale.StringsFor("en"),
		timeFmt:  locale.TimeFormatterFor("en"),
	}
	c.input.Placeholder = c.strings.DescribeSymptoms
	c.updateContent()
	return c
}

// SetSize sets the chat screen dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()
	c.input.SetWidth(ctx.InnerWidth(width) - InputPaddingWidth)
	c.layout()

	ctx.Log("Chat.SetSize", "width", width, "height", height, "viewport", c.viewport.Height())
}

// layout sizes the viewport around the current input height
func (c *Chat) layout() {
	ctx := GetViewContext()
	panelHeight := c.panelHeight()
	c.viewport.SetWidth(ctx.InnerWidth(c.width))
	c.viewport.SetHeight(max(ctx.InnerHeight(panelHeight), 1))
	c.updateContent()
}

func (c *Chat) inputHeight() int {
	return c.input.Height() + InputBorderHeight
}

func (c *Chat) panelHeight() int {
	return c.height - c.inputHeight() - QuickReplyHeight - DisclaimerHeight
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) tea.Cmd {
	c.focused = focused
	if focused {
		return c.input.Focus()
	}
	c.input.Blur()
	return nil
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetStrings relabels the screen for a new language
func (c *Chat) SetStrings(s locale.Strings, tf locale.TimeFormatter) {
	c.strings = s
	c.timeFmt = tf
	c.input.Placeholder = s.DescribeSymptoms
	c.updateContent()
}

// SetRTL mirrors bubble alignment
func (c *Chat) SetRTL(rtl bool) {
	c.rtl = rtl
	c.updateContent()
}

// SetReducedMotion freezes the typing indicator when on
func (c *Chat) SetReducedMotion(on bool) {
	c.reducedMotion = on
	c.updateContent()
}

// SetVoice shows whether voice input is on
func (c *Chat) SetVoice(on bool) {
	c.voice = on
}

// SetConversation replaces the rendered conversation. It returns the tick
// command that starts the typing animation when one is needed.
func (c *Chat) SetConversation(state transcript.State) tea.Cmd {
	c.messages = state.Messages
	c.typing = state.IsAssistantTyping
	c.updateContent()
	return c.startTyping()
}

func (c *Chat) startTyping() tea.Cmd {
	if !c.typing || c.reducedMotion || c.ticking {
		return nil
	}
	c.ticking = true
	return TypingTick()
}

// IsTyping returns whether the typing indicator is shown
func (c *Chat) IsTyping() bool {
	return c.typing
}

// GetInput returns the current input text
func (c *Chat) GetInput() string {
	return c.input.Value()
}

// ClearInput clears the input field
func (c *Chat) ClearInput() {
	c.input.Reset()
	c.resizeInput()
}

// SetInput sets the input field value
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
	c.resizeInput()
}

// InputLines returns the number of display rows the input text needs,
// clamped to [InputMinLines, InputMaxLines].
func (c *Chat) InputLines() int {
	return displayLines(c.input.Value(), c.input.Width())
}

// displayLines counts wrapped rows of text at width cells
func displayLines(text string, width int) int {
	if width <= 0 {
		width = DefaultWrapWidth
	}
	rows := 0
	for _, line := range strings.Split(text, "\n") {
		w := uniseg.StringWidth(line)
		if w == 0 {
			rows++
			continue
		}
		rows += (w + width - 1) / width
	}
	return min(max(rows, InputMinLines), InputMaxLines)
}

func (c *Chat) resizeInput() {
	if lines := c.InputLines(); lines != c.input.Height() {
		c.input.SetHeight(lines)
		c.layout()
	}
}

// bubbleWidth is the widest a message bubble may be, borders included
func (c *Chat) bubbleWidth() int {
	w := c.viewport.Width()
	if w <= 0 {
		w = DefaultWrapWidth
	}
	return max(w*3/BubbleWidthRatio, 20)
}

// renderMessage renders one message as an aligned bubble with its label.
// User messages sit at the end of the reading direction, assistant
// messages at the start.
func (c *Chat) renderMessage(msg transcript.Message, panelWidth int) string {
	isUser := msg.Role == transcript.RoleUser

	labelStyle, bubble := ChatAssistantStyle, ChatAssistantBubble
	name := c.strings.AssistantName
	if isUser {
		labelStyle, bubble = ChatUserStyle, ChatUserBubble
		name = c.strings.You
	}

	// Bubble frame takes the border and padding on each side
	const frame = 4
	textWidth := c.bubbleWidth() - frame
	body := ansi.Wordwrap(msg.Text, textWidth, " ")
	contentWidth := min(blockWidth(body), textWidth)

	textAlign := lipgloss.Left
	if c.rtl {
		textAlign = lipgloss.Right
	}
	rendered := bubble.Width(contentWidth + frame).Align(textAlign).Render(ChatMessageStyle.Render(body))

	label := labelStyle.Render(name) + ChatTimeStyle.Render(" · "+c.timeFmt.Format(msg.CreatedAt))
	block := lipgloss.JoinVertical(lipgloss.Left, label, rendered)

	end := isUser != c.rtl
	pos := lipgloss.Left
	if end {
		pos = lipgloss.Right
	}
	return lipgloss.PlaceHorizontal(panelWidth, pos, block)
}

// blockWidth is the widest line of s in terminal cells, ignoring ANSI codes
func blockWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

// typingIndicator renders the "assistant is typing" row
func (c *Chat) typingIndicator() string {
	dots := staticTypingFrame
	if !c.reducedMotion {
		dots = typingFrames[c.frame%len(typingFrames)]
	}
	return ChatTypingStyle.Render(dots + " " + c.strings.AssistantTyping)
}

func (c *Chat) updateContent() {
	panelWidth := c.viewport.Width()
	if panelWidth <= 0 {
		panelWidth = DefaultWrapWidth
	}

	var parts []string
	for _, msg := range c.messages {
		parts = append(parts, c.renderMessage(msg, panelWidth))
	}
	if c.typing {
		pos := lipgloss.Left
		if c.rtl {
			pos = lipgloss.Right
		}
		parts = append(parts, lipgloss.PlaceHorizontal(panelWidth, pos, c.typingIndicator()))
	}

	c.viewport.SetContent(strings.Join(parts, "\n\n"))
	c.viewport.GotoBottom()
}

// renderQuickReplies renders the quick-reply chips and the voice toggle
func (c *Chat) renderQuickReplies() string {
	var chips []string
	for i, label := range c.strings.QuickReplies() {
		chips = append(chips, QuickReplyStyle.Render(QuickReplyKeyStyle.Render(keys.QuickReply[i])+" "+label))
	}

	voicePlain := keys.CtrlR + " " + c.strings.VoiceStart
	voice := QuickReplyKeyStyle.Render(keys.CtrlR) + " " + c.strings.VoiceStart
	if c.voice {
		voicePlain = "● " + c.strings.VoiceStop + " " + keys.CtrlR
		voice = VoiceActiveStyle.Render("● "+c.strings.VoiceStop) + " " + QuickReplyKeyStyle.Render(keys.CtrlR)
	}
	chips = append(chips, QuickReplyStyle.Render(voice))

	if c.rtl {
		for i, j := 0, len(chips)-1; i < j; i, j = i+1, j-1 {
			chips[i], chips[j] = chips[j], chips[i]
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	if blockWidth(row) > c.width && c.width > 0 {
		// Narrow terminals get the plain labels on one line
		var plain []string
		for i, label := range c.strings.QuickReplies() {
			plain = append(plain, keys.QuickReply[i]+" "+label)
		}
		row = "\n" + ansi.Truncate(voicePlain+"  "+strings.Join(plain, " · "), c.width, "…") + "\n"
	}
	return row
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case TypingTickMsg:
		c.ticking = false
		if c.typing && !c.reducedMotion {
			c.frame++
			c.updateContent()
			cmds = append(cmds, c.startTyping())
		}
		return c, tea.Batch(cmds...)
	}

	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		switch keyMsg.String() {
		case "pgup", "pgdown", "ctrl+up", "ctrl+down", "home", "end":
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		}

		if c.focused {
			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			c.resizeInput()
			return c, cmd
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return c, tea.Batch(cmds...)
}

// View renders the chat screen
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}
	chatPanel := panelStyle.Width(c.width).Height(c.panelHeight()).Render(c.viewport.View())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	disclaimerAlign := lipgloss.Left
	if c.rtl {
		disclaimerAlign = lipgloss.Right
	}
	disclaimer := DisclaimerStyle.Width(c.width).Align(disclaimerAlign).
		Render(ansi.Truncate(c.strings.NotDiagnosis, c.width, "…"))

	return lipgloss.JoinVertical(lipgloss.Left, chatPanel, c.renderQuickReplies(), inputArea, disclaimer)
}
