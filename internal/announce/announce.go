// Package announce carries short, ephemeral status messages to the user.
// A LiveRegion keeps only the most recent announcement; older ones are
// overwritten rather than accumulated.
package announce

import "github.com/zhubert/healthchat/internal/notification"

// Politeness is how urgently an announcement should interrupt.
type Politeness int

const (
	Polite Politeness = iota
	Assertive
)

func (p Politeness) String() string {
	if p == Assertive {
		return "assertive"
	}
	return "polite"
}

// Event identifies what happened, independent of the localized text.
type Event int

const (
	EventTyping Event = iota
	EventNewMessage
	EventCleared
	EventLanguageSelected
	EventLanguageApplied
	EventCopied
)

// Announcement is one status message.
type Announcement struct {
	Event      Event
	Politeness Politeness
	Text       string
}

// Announcer receives announcements.
type Announcer interface {
	Announce(Announcement)
}

// Func adapts a function to Announcer.
type Func func(Announcement)

func (f Func) Announce(a Announcement) { f(a) }

// Discard drops every announcement.
var Discard Announcer = Func(func(Announcement) {})

// LiveRegion holds the latest announcement.
type LiveRegion struct {
	current Announcement
	present bool
	seq     uint64
}

// NewLiveRegion returns an empty live region.
func NewLiveRegion() *LiveRegion {
	return &LiveRegion{}
}

// Announce replaces the current announcement.
func (r *LiveRegion) Announce(a Announcement) {
	r.current = a
	r.present = true
	r.seq++
}

// Current returns the latest announcement and whether there is one.
func (r *LiveRegion) Current() (Announcement, bool) {
	return r.current, r.present
}

// Seq increases by one with every announcement. The UI uses it to expire
// a rendered announcement only if nothing newer arrived.
func (r *LiveRegion) Seq() uint64 {
	return r.seq
}

// Clear empties the region. It counts as a change, so Seq advances.
func (r *LiveRegion) Clear() {
	r.current = Announcement{}
	r.present = false
	r.seq++
}

// Multi fans an announcement out to several announcers in order.
type Multi []Announcer

func (m Multi) Announce(a Announcement) {
	for _, an := range m {
		an.Announce(a)
	}
}

// Desktop forwards new-message announcements as desktop notifications.
// Notifications are sent from a goroutine so a slow notifier never holds
// up the caller.
type Desktop struct {
	// Title returns the localized product title at the time of the event.
	Title   func() string
	Enabled bool
}

func (d Desktop) Announce(a Announcement) {
	if !d.Enabled || a.Event != EventNewMessage {
		return
	}
	title := ""
	if d.Title != nil {
		title = d.Title()
	}
	// Errors are logged by the notification package
	go notification.NewMessage(title, a.Text)
}
