package schedule

import (
	"sync"
	"time"
)

// Loop is a Scheduler for a single-threaded event loop. Timers fire on their
// own goroutines but only hand the task to Tasks; the loop owner receives
// from Tasks and runs each task itself.
type Loop struct {
	mu      sync.Mutex
	tasks   chan func()
	timers  map[uint64]*time.Timer
	next    uint64
	stopped bool
	done    chan struct{}
}

// NewLoop creates a Loop. buffer bounds how many fired tasks may wait for
// the owner before timers block.
func NewLoop(buffer int) *Loop {
	return &Loop{
		tasks:  make(chan func(), buffer),
		timers: make(map[uint64]*time.Timer),
		done:   make(chan struct{}),
	}
}

// Schedule implements Scheduler.
func (l *Loop) Schedule(delay time.Duration, task func()) Cancel {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stopped {
		return func() {}
	}

	id := l.next
	l.next++
	l.timers[id] = time.AfterFunc(delay, func() {
		l.mu.Lock()
		_, live := l.timers[id]
		delete(l.timers, id)
		l.mu.Unlock()
		if !live {
			return
		}
		select {
		case l.tasks <- task:
		case <-l.done:
		}
	})

	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if t, ok := l.timers[id]; ok {
			t.Stop()
			delete(l.timers, id)
		}
	}
}

// Tasks delivers fired tasks to the loop owner.
func (l *Loop) Tasks() <-chan func() {
	return l.tasks
}

// Done is closed once Stop has been called.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Pending returns the number of armed timers.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

// Stop cancels every armed timer and releases goroutines blocked on Tasks.
// Later Schedule calls are ignored.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.stopped = true
	for id, t := range l.timers {
		t.Stop()
		delete(l.timers, id)
	}
	close(l.done)
}
