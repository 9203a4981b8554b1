package anim

import (
	"reflect"
	"testing"
	"time"
)

func TestTickSchedulerRunsAfterDelay(t *testing.T) {
	s := NewTickScheduler()
	fired := 0
	s.After(100*time.Millisecond, func() { fired++ })

	if n := s.Advance(99 * time.Millisecond); n != 0 || fired != 0 {
		t.Fatalf("Callback ran early (ran=%d fired=%d)", n, fired)
	}
	if n := s.Advance(time.Millisecond); n != 1 || fired != 1 {
		t.Fatalf("Expected callback at 100ms (ran=%d fired=%d)", n, fired)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty scheduler, got %d pending", s.Len())
	}
}

func TestTickSchedulerOrdering(t *testing.T) {
	s := NewTickScheduler()
	var order []string
	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(10*time.Millisecond, func() { order = append(order, "b") })
	s.After(50*time.Millisecond, func() { order = append(order, "late") })

	s.Advance(40 * time.Millisecond)

	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(order, want) {
		t.Errorf("Expected %v, got %v", want, order)
	}
	if s.Len() != 1 {
		t.Errorf("Expected one pending callback, got %d", s.Len())
	}
}

func TestTickSchedulerDefersNestedCallbacks(t *testing.T) {
	s := NewTickScheduler()
	count := 0
	var tick func()
	tick = func() {
		count++
		s.After(0, tick)
	}
	s.After(0, tick)

	s.Advance(0)
	if count != 1 {
		t.Fatalf("Expected one run per Advance, got %d", count)
	}
	s.Advance(0)
	s.Advance(0)
	if count != 3 {
		t.Errorf("Expected 3 runs after three Advances, got %d", count)
	}
}

func TestTickSchedulerCancel(t *testing.T) {
	s := NewTickScheduler()
	fired := false
	id := s.After(time.Second, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Expected Cancel to remove the callback")
	}
	if s.Cancel(id) {
		t.Error("Expected second Cancel to report false")
	}

	s.Advance(2 * time.Second)
	if fired {
		t.Error("Cancelled callback ran")
	}
}

func TestTickSchedulerNegativeDelay(t *testing.T) {
	s := NewTickScheduler()
	s.Advance(time.Second)
	fired := false
	s.After(-time.Minute, func() { fired = true })

	s.Advance(0)
	if !fired {
		t.Error("Expected negative delay to behave like zero")
	}
	if s.Now() != time.Second {
		t.Errorf("Expected clock at 1s, got %v", s.Now())
	}
}
