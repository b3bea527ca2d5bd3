// Package ui provides the visual components of Health Chat.
//
// # Overview
//
// The ui package implements the screens of Health Chat using the Bubble Tea
// framework and Lipgloss styling library. Components hold only presentation
// state; language, transcript and overlay state live in the session package
// and are pushed in by the app model.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header: title, [language], menu                     │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Welcome (language picker)  or  Chat (bubbles)     │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer: key bindings                                │
//	│         live region (latest announcement)           │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Localized title, the native name of the active language and the
// menu shortcuts, over a gradient background. Mirrored for RTL languages.
//
// Footer: Context-aware key bindings and the live region, which shows only
// the most recent announcement.
//
// Welcome: Searchable language picker with a common-languages section, the
// emergency banner and the start/apply actions.
//
// Chat: Message bubbles (user at the end of the reading direction), typing
// indicator, quick replies, the input that grows from one to six rows, and
// the disclaimer under it.
//
// Modal: Container for the overlays in the modals package (language, help,
// confirm).
//
// # RTL
//
// When the active language is right-to-left, bubble alignment, header and
// quick-reply order are mirrored. The terminal itself still renders text
// left to right.
package ui
