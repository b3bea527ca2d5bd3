// Package overlay manages the mutually exclusive modal dialogs and moves
// focus into and out of them.
package overlay

import (
	"log/slog"

	"github.com/zhubert/healthchat/internal/keys"
	"github.com/zhubert/healthchat/internal/logger"
	"github.com/zhubert/healthchat/internal/schedule"
)

// Kind is which overlay is open. At most one is open at a time.
type Kind int

const (
	None Kind = iota
	Language
	Help
)

func (k Kind) String() string {
	switch k {
	case Language:
		return "language"
	case Help:
		return "help"
	default:
		return "none"
	}
}

// Target identifies a focusable element.
type Target string

// ContainerTarget is the focus target of an overlay's container.
func ContainerTarget(k Kind) Target {
	return Target("overlay:" + k.String())
}

// Focus is the host's focus model.
type Focus interface {
	Focused() Target
	Focus(Target)
	Exists(Target) bool
}

// Controller owns the overlay state.
type Controller struct {
	active  Kind
	restore Target
	gen     uint64
	focus   Focus
	sched   schedule.Scheduler
	log     *slog.Logger
}

// NewController creates a controller with no overlay open.
func NewController(focus Focus, sched schedule.Scheduler) *Controller {
	return &Controller{
		focus: focus,
		sched: sched,
		log:   logger.ComponentLogger("Overlay"),
	}
}

// Active returns the open overlay, or None.
func (c *Controller) Active() Kind {
	return c.active
}

// IsOpen reports whether any overlay is open.
func (c *Controller) IsOpen() bool {
	return c.active != None
}

// Open shows kind, closing any other overlay first. Focus moves into the
// overlay container on the next scheduler turn, once layout has settled.
func (c *Controller) Open(kind Kind) {
	if kind == None {
		c.Close()
		return
	}
	if c.active != None {
		c.Close()
	}

	c.restore = c.focus.Focused()
	c.active = kind
	c.gen++
	gen := c.gen
	c.log.Debug("Overlay opened", "kind", kind, "restore", c.restore)

	c.sched.Schedule(0, func() {
		if c.gen != gen || c.active != kind {
			return
		}
		c.focus.Focus(ContainerTarget(kind))
	})
}

// Close hides the open overlay and returns focus to where it was before the
// overlay opened, if that target still exists.
func (c *Controller) Close() {
	if c.active == None {
		return
	}
	c.log.Debug("Overlay closed", "kind", c.active)
	c.active = None
	c.gen++

	if c.restore != "" && c.focus.Exists(c.restore) {
		c.focus.Focus(c.restore)
	}
	c.restore = ""
}

// HandleKey closes the open overlay on Escape and reports whether the key
// was consumed.
func (c *Controller) HandleKey(key string) bool {
	if key == keys.Escape && c.active != None {
		c.Close()
		return true
	}
	return false
}
