package schedule

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestManual(t *testing.T) {
	s := NewManual()
	var order []string
	s.Schedule(20*time.Millisecond, func() { order = append(order, "b") })
	s.Schedule(10*time.Millisecond, func() {
		order = append(order, "a")
		s.Schedule(5*time.Millisecond, func() { order = append(order, "a2") })
	})
	cancel := s.Schedule(15*time.Millisecond, func() { order = append(order, "cancelled") })
	cancel()
	cancel()

	s.Advance(20 * time.Millisecond)
	if strings.Join(order, ",") != "a,a2,b" {
		t.Errorf("order = %v", order)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d", s.Pending())
	}
}

func TestManual_Flush(t *testing.T) {
	s := NewManual()
	ran := 0
	s.Schedule(time.Hour, func() {
		ran++
		s.Schedule(time.Hour, func() { ran++ })
	})
	s.Flush()
	if ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}
}

func TestLoop_DeliversTask(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(1)
	defer l.Stop()

	ran := false
	l.Schedule(time.Millisecond, func() { ran = true })

	select {
	case task := <-l.Tasks():
		task()
	case <-time.After(2 * time.Second):
		t.Fatal("task was not delivered")
	}
	if !ran {
		t.Error("delivered task did not run")
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d after delivery", l.Pending())
	}
}

func TestLoop_CancelPreventsDelivery(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(1)
	defer l.Stop()

	cancel := l.Schedule(20*time.Millisecond, func() { t.Error("cancelled task ran") })
	cancel()
	cancel()

	select {
	case task := <-l.Tasks():
		task()
	case <-time.After(60 * time.Millisecond):
	}
}

func TestLoop_StopReleasesBlockedTimers(t *testing.T) {
	defer goleak.VerifyNone(t)

	l := NewLoop(0)
	l.Schedule(0, func() {})
	l.Schedule(0, func() {})

	// Nobody drains Tasks; Stop must unblock the fired timers.
	time.Sleep(20 * time.Millisecond)
	l.Stop()
	l.Stop()

	if cancel := l.Schedule(0, func() {}); cancel == nil {
		t.Error("Schedule after Stop should return a no-op cancel")
	}
	select {
	case <-l.Done():
	default:
		t.Error("Done() should be closed after Stop")
	}
}
