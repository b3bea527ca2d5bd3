// Package schedule provides deferred execution on the UI event loop and a
// manually driven scheduler for tests.
package schedule

import (
	"sort"
	"time"
)

// Cancel stops a scheduled task. Calling it after the task ran, or more than
// once, is a no-op.
type Cancel func()

// Scheduler runs a task after a delay. Tasks must run on the same logical
// thread as the code that scheduled them.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) Cancel
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Manual is a Scheduler driven by explicit Advance calls. Tasks run
// synchronously inside Advance in due-time order, ties in scheduling order.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	at        time.Duration
	seq       int
	fn        func()
	cancelled bool
}

// NewManual returns a scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule implements Scheduler.
func (s *Manual) Schedule(delay time.Duration, task func()) Cancel {
	t := &manualTask{at: s.now + delay, seq: s.seq, fn: task}
	s.seq++
	s.tasks = append(s.tasks, t)
	return func() { t.cancelled = true }
}

// Pending returns the number of tasks that have not run or been cancelled.
func (s *Manual) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, running every task that falls due,
// including tasks scheduled by earlier tasks within the window.
func (s *Manual) Advance(d time.Duration) {
	deadline := s.now + d
	for {
		next := s.next(deadline)
		if next == nil {
			break
		}
		s.now = next.at
		next.cancelled = true
		next.fn()
	}
	s.now = deadline
}

// Flush runs tasks until none are pending.
func (s *Manual) Flush() {
	for {
		next := s.next(-1)
		if next == nil {
			return
		}
		s.Advance(next.at - s.now)
	}
}

// next returns the earliest live task due by deadline. A negative deadline
// means no limit.
func (s *Manual) next(deadline time.Duration) *manualTask {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.cancelled {
			live = append(live, t)
		}
	}
	s.tasks = live

	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].at != s.tasks[j].at {
			return s.tasks[i].at < s.tasks[j].at
		}
		return s.tasks[i].seq < s.tasks[j].seq
	})
	if len(s.tasks) == 0 {
		return nil
	}
	if deadline >= 0 && s.tasks[0].at > deadline {
		return nil
	}
	return s.tasks[0]
}

// Func adapts a function to Scheduler.
type Func func(delay time.Duration, task func()) Cancel

func (f Func) Schedule(delay time.Duration, task func()) Cancel { return f(delay, task) }
