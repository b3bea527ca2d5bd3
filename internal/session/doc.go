// Package session composes the language, the persisted first-run flag, the
// transcript and the overlay state into one AppSession, and routes user
// intents to the right component.
//
// # State
//
// AppSession is the single source of truth for:
//   - the active language (resolved at startup, persisted on every change)
//   - whether the user has started a chat on this device
//   - which screen is visible, derived from the started flag
//   - which overlay is open
//
// # Intents
//
// ChangeLanguage: apply and persist a language, restart the transcript in
// it, close any overlay and announce the change.
//
// SelectLanguage: preview a language on the welcome screen. Only announces.
//
// Start: optionally change language, then persist the started flag and move
// to the chat screen.
//
// StartOver: ask the Confirmer, and on confirmation clear the transcript.
//
// # Threading
//
// AppSession is not safe for concurrent use. Every method, and every task
// handed to the Scheduler, must run on the UI event loop. The reduced-motion
// value is the one exception: it is stored atomically because the preference
// watcher updates it from its own goroutine.
package session
