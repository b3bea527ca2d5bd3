// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines (bindings + live region)
	FooterHeight = 2

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// InputMinLines and InputMaxLines bound the growing chat input
	InputMinLines = 1
	InputMaxLines = 6

	// InputBorderHeight is the border size around the input
	InputBorderHeight = 2

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// QuickReplyHeight is the height of the quick-reply row (bordered chips)
	QuickReplyHeight = 3

	// DisclaimerHeight is the line under the input
	DisclaimerHeight = 1

	// BubbleWidthRatio is the denominator of the bubble width cap (3/4 of the panel)
	BubbleWidthRatio = 4

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 16
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is used by the help modal
	ModalWidthWide = 76

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 64

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// LanguageListMaxVisible caps the rows of a language list
	LanguageListMaxVisible = 8
)
