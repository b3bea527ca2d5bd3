// Package transcript owns the conversation log and the simulated
// request/response protocol between the user and the assistant.
//
// Every reply task captures the transcript epoch and language code at the
// time it was scheduled. Initialize and Clear bump the epoch, so a reply
// scheduled before a reset is discarded when it fires.
package transcript

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/healthchat/internal/announce"
	"github.com/zhubert/healthchat/internal/locale"
	"github.com/zhubert/healthchat/internal/logger"
	"github.com/zhubert/healthchat/internal/schedule"
)

// DefaultReplyDelay is the artificial delay before a simulated reply.
const DefaultReplyDelay = 900 * time.Millisecond

// Role is who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one immutable transcript entry.
type Message struct {
	ID        string
	Role      Role
	Text      string
	CreatedAt time.Time
}

// State is a snapshot of the conversation.
type State struct {
	Messages          []Message
	IsAssistantTyping bool
}

// IDGenerator returns a fresh unique message id.
type IDGenerator func() string

// Options configures a Transcript. Zero fields get defaults.
type Options struct {
	Clock      schedule.Clock
	IDs        IDGenerator
	Scheduler  schedule.Scheduler
	Announcer  announce.Announcer
	ReplyDelay time.Duration
}

// Transcript is the message log plus the reply protocol. It is not safe for
// concurrent use; all calls, including scheduled tasks, must come from one
// goroutine.
type Transcript struct {
	clock     schedule.Clock
	ids       IDGenerator
	scheduler schedule.Scheduler
	announcer announce.Announcer
	delay     time.Duration

	lang     locale.Language
	strings  locale.Strings
	messages []Message
	epoch    uint64
	awaiting int             // sends still waiting for their reply
	cancel   schedule.Cancel // the single outstanding reply task, if any

	log *slog.Logger
}

// New creates an uninitialized transcript. Call Initialize before use.
func New(opts Options) *Transcript {
	t := &Transcript{
		clock:     opts.Clock,
		ids:       opts.IDs,
		scheduler: opts.Scheduler,
		announcer: opts.Announcer,
		delay:     opts.ReplyDelay,
		log:       logger.ComponentLogger("Transcript"),
	}
	if t.clock == nil {
		t.clock = schedule.SystemClock
	}
	if t.ids == nil {
		t.ids = uuid.NewString
	}
	if t.announcer == nil {
		t.announcer = announce.Discard
	}
	if t.delay <= 0 {
		t.delay = DefaultReplyDelay
	}
	if t.scheduler == nil {
		panic("transcript: Options.Scheduler is required")
	}
	return t
}

// Initialize discards the conversation, invalidates any pending reply and
// starts over with a single assistant disclaimer in lang.
func (t *Transcript) Initialize(lang locale.Language) {
	t.epoch++
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.awaiting = 0
	t.lang = lang
	t.strings = locale.StringsFor(lang.Code)
	t.messages = []Message{t.newMessage(RoleAssistant, t.strings.NotDiagnosis)}

	t.log.Debug("Transcript initialized", "epoch", t.epoch, "lang", lang.Code)
}

// Clear is Initialize followed by a "conversation cleared" announcement.
func (t *Transcript) Clear(lang locale.Language) {
	t.Initialize(lang)
	t.announce(announce.EventCleared, announce.Polite, t.strings.ConversationCleared)
}

// Send appends a user message and queues its reply. Blank input is rejected
// and reported as false.
func (t *Transcript) Send(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		t.log.Debug("Ignoring empty submission")
		return false
	}

	t.messages = append(t.messages, t.newMessage(RoleUser, trimmed))
	t.awaiting++
	t.announce(announce.EventTyping, announce.Polite, t.strings.AssistantTyping)

	if t.cancel == nil {
		t.scheduleReply()
	}
	t.log.Debug("Message sent", "epoch", t.epoch, "awaiting", t.awaiting)
	return true
}

func (t *Transcript) scheduleReply() {
	epoch, code := t.epoch, t.lang.Code
	t.cancel = t.scheduler.Schedule(t.delay, func() {
		t.deliver(epoch, code)
	})
}

func (t *Transcript) deliver(epoch uint64, code string) {
	if epoch != t.epoch || code != t.lang.Code {
		t.log.Debug("Dropping stale reply",
			"task_epoch", epoch, "epoch", t.epoch,
			"task_lang", code, "lang", t.lang.Code)
		return
	}
	t.cancel = nil
	if t.awaiting == 0 {
		return
	}

	reply := t.newMessage(RoleAssistant, t.strings.ReplyBody())
	t.messages = append(t.messages, reply)
	t.awaiting--
	t.announce(announce.EventNewMessage, announce.Polite, t.strings.NewMessage)

	if t.awaiting > 0 {
		t.scheduleReply()
	}
	t.log.Debug("Reply delivered", "epoch", t.epoch, "awaiting", t.awaiting)
}

// State returns a snapshot of the conversation.
func (t *Transcript) State() State {
	msgs := make([]Message, len(t.messages))
	copy(msgs, t.messages)
	return State{Messages: msgs, IsAssistantTyping: t.awaiting > 0}
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// IsTyping reports whether a reply is pending.
func (t *Transcript) IsTyping() bool {
	return t.awaiting > 0
}

// Epoch returns the current generation counter.
func (t *Transcript) Epoch() uint64 {
	return t.epoch
}

// Language returns the language the transcript was initialized with.
func (t *Transcript) Language() locale.Language {
	return t.lang
}

// Export renders the conversation as plain text, one block per message.
func (t *Transcript) Export() string {
	tf := locale.TimeFormatterFor(t.lang.Code)
	var b strings.Builder
	for i, m := range t.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		speaker := t.strings.AssistantName
		if m.Role == RoleUser {
			speaker = t.strings.You
		}
		fmt.Fprintf(&b, "[%s] %s:\n%s", tf.Format(m.CreatedAt), speaker, m.Text)
	}
	return b.String()
}

func (t *Transcript) newMessage(role Role, text string) Message {
	return Message{ID: t.ids(), Role: role, Text: text, CreatedAt: t.clock.Now()}
}

func (t *Transcript) announce(ev announce.Event, p announce.Politeness, text string) {
	t.announcer.Announce(announce.Announcement{Event: ev, Politeness: p, Text: text})
}
