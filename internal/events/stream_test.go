package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// fakeSource replays events from a channel; PollEvent returns nil once the
// channel is closed.
type fakeSource struct {
	ch chan tcell.Event
}

func newFakeSource() *fakeSource {
	return &fakeSource{ch: make(chan tcell.Event, 16)}
}

func (f *fakeSource) PollEvent() tcell.Event {
	ev, ok := <-f.ch
	if !ok {
		return nil
	}
	return ev
}

func (f *fakeSource) send(ev tcell.Event) { f.ch <- ev }
func (f *fakeSource) close()              { close(f.ch) }

func drain(t *testing.T, s *Stream) []Event {
	t.Helper()

	done := make(chan []Event, 1)
	go func() {
		var out []Event
		for ev := range s.All() {
			out = append(out, ev)
		}
		done <- out
	}()

	select {
	case out := <-done:
		return out
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not end after producers stopped")
		return nil
	}
}

func countTicks(evs []Event) int {
	n := 0
	for _, ev := range evs {
		if _, ok := ev.(Tick); ok {
			n++
		}
	}
	return n
}

func TestStartRejectsInvalidFPS(t *testing.T) {
	for _, fps := range []int{0, -1} {
		if _, err := Start(context.Background(), fps, nil); !errors.Is(err, ErrInvalidFPS) {
			t.Errorf("Start(fps=%d) error = %v, expected %v", fps, err, ErrInvalidFPS)
		}
	}
}

func TestIntervalFromFPS(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Start(ctx, 20, nil)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if s.Interval() != 50*time.Millisecond {
		t.Errorf("Interval() = %v, expected 50ms", s.Interval())
	}
}

func TestIntervalFloorForHugeFPS(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := Start(ctx, 2_000_000_000, nil)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	if s.Interval() != time.Nanosecond {
		t.Errorf("Interval() = %v, expected 1ns", s.Interval())
	}

	// The tick producer must run and stop normally.
	if ticks := countTicks(drain(t, s)); ticks < 1 {
		t.Errorf("got %d ticks, expected at least 1", ticks)
	}
}

func TestTickLiveness(t *testing.T) {
	const (
		fps    = 50
		window = 500 * time.Millisecond
	)

	ctx, cancel := context.WithTimeout(context.Background(), window)
	defer cancel()

	s, err := Start(ctx, fps, nil)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	evs := drain(t, s)

	minTicks := int(window.Seconds()*fps) - 1
	if got := countTicks(evs); got < minTicks {
		t.Errorf("got %d ticks in %v at %d fps, expected at least %d", got, window, fps, minTicks)
	}

	var last time.Time
	for _, ev := range evs {
		tick := ev.(Tick)
		if tick.At.Before(last) {
			t.Fatalf("tick timestamps went backwards: %v after %v", tick.At, last)
		}
		last = tick.At
	}
}

func TestKeyArrivesBetweenTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src := newFakeSource()
	s, err := Start(ctx, 100, src)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	time.Sleep(60 * time.Millisecond)
	src.send(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	time.Sleep(60 * time.Millisecond)

	cancel()
	src.close()
	evs := drain(t, s)

	keyAt := -1
	for i, ev := range evs {
		if k, ok := ev.(Key); ok {
			if keyAt != -1 {
				t.Fatal("expected exactly one key event")
			}
			if k.Rune() != 'x' {
				t.Errorf("key rune = %q, expected 'x'", k.Rune())
			}
			keyAt = i
		}
	}
	if keyAt == -1 {
		t.Fatal("key event was not delivered")
	}
	if countTicks(evs[:keyAt]) == 0 {
		t.Error("expected ticks before the key")
	}
	if countTicks(evs[keyAt+1:]) == 0 {
		t.Error("expected ticks after the key")
	}
}

func TestNonKeyInputIsDiscarded(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // a single tick, then the tick producer exits

	src := newFakeSource()
	src.send(tcell.NewEventResize(120, 40))
	src.send(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone))
	src.send(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	src.send(tcell.NewEventError(errors.New("read: interrupted")))
	src.send(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	src.close()

	s, err := Start(ctx, 10, src)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	var keys []Key
	for _, ev := range drain(t, s) {
		switch e := ev.(type) {
		case Key:
			keys = append(keys, e)
		case Tick:
		default:
			t.Errorf("unexpected event type %T", ev)
		}
	}

	if len(keys) != 2 {
		t.Fatalf("got %d key events, expected 2", len(keys))
	}
	if keys[0].Rune() != 'a' {
		t.Errorf("first key rune = %q, expected 'a'", keys[0].Rune())
	}
	if keys[1].Key() != tcell.KeyUp {
		t.Errorf("second key = %v, expected KeyUp", keys[1].Key())
	}
}

func TestSlowConsumerBacklogIsKept(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Start(ctx, 200, nil)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	// Do not consume for a while; ticks pile up.
	time.Sleep(300 * time.Millisecond)
	backlog := s.Pending()
	if backlog < 20 {
		t.Errorf("Pending() = %d after 300ms at 200 fps, expected a growing backlog", backlog)
	}

	cancel()
	evs := drain(t, s)
	if len(evs) < backlog {
		t.Errorf("drained %d events, expected at least the %d pending (none dropped)", len(evs), backlog)
	}
}

func TestStreamEndsOnlyWhenAllProducersStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	src := newFakeSource()

	s, err := Start(ctx, 100, src)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	cancel()
	// The tick producer is gone but the key producer still blocks on input.
	time.Sleep(50 * time.Millisecond)
	for s.Pending() > 0 {
		s.Next()
	}

	got := make(chan Event, 1)
	go func() {
		ev, ok := s.Next()
		if ok {
			got <- ev
		} else {
			got <- nil
		}
	}()

	select {
	case <-got:
		t.Fatal("Next() returned while the key producer was still running")
	case <-time.After(50 * time.Millisecond):
	}

	src.send(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	select {
	case ev := <-got:
		if _, ok := ev.(Key); !ok {
			t.Fatalf("Next() = %T, expected Key", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("Next() did not wake up for the key")
	}

	src.close()
	if evs := drain(t, s); len(evs) != 0 {
		t.Errorf("expected empty tail, got %d events", len(evs))
	}
}

func TestAllStopsOnBreak(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := Start(ctx, 100, nil)
	if err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	n := 0
	for range s.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d events, expected 3", n)
	}
}
