package events

import (
	"context"
	"errors"
	"io"
	"iter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
)

// ErrInvalidFPS is returned when the frame rate is not positive.
var ErrInvalidFPS = errors.New("events: fps must be positive")

// Stream is the consumer side of the multiplexer.
//
// Ticks are never coalesced: a consumer slower than the frame rate sees the
// backlog grow without bound. That is expected, not an error.
type Stream struct {
	q        *queue
	interval time.Duration
	logger   *log.Logger
}

// Option configures a Stream.
type Option func(*Stream)

// WithLogger sets the logger used by the producers.
func WithLogger(l *log.Logger) Option {
	return func(s *Stream) {
		if l != nil {
			s.logger = l
		}
	}
}

// Start launches the producers and returns the stream.
//
// The tick producer emits a Tick immediately and then every second/fps until
// ctx is done. If src is non-nil a key producer forwards its keyboard events;
// other input (resize, mouse, paste, focus) is discarded and read errors are
// skipped. The key producer exits when src is finalized.
func Start(ctx context.Context, fps int, src InputSource, opts ...Option) (*Stream, error) {
	if fps <= 0 {
		return nil, ErrInvalidFPS
	}

	s := &Stream{
		q:        newQueue(),
		interval: tickInterval(fps),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	if src != nil {
		s.q.addProducer()
		go s.readKeys(src)
	}

	s.q.addProducer()
	go s.tick(ctx)

	return s, nil
}

// tickInterval is second/fps, floored at one nanosecond so rates above 1e9
// still give the ticker a positive period.
func tickInterval(fps int) time.Duration {
	return max(time.Second/time.Duration(fps), time.Nanosecond)
}

// Interval returns the time between ticks.
func (s *Stream) Interval() time.Duration {
	return s.interval
}

// Next blocks until an event is available. It returns false only after every
// producer has exited and the backlog is drained.
func (s *Stream) Next() (Event, bool) {
	return s.q.pop()
}

// All iterates over the stream until it ends or the loop breaks.
func (s *Stream) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			ev, ok := s.Next()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Pending returns the number of events waiting to be consumed.
func (s *Stream) Pending() int {
	return s.q.len()
}

func (s *Stream) tick(ctx context.Context) {
	defer s.q.producerDone()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.q.push(Tick{At: time.Now()})

		select {
		case <-ctx.Done():
			s.logger.Debug("tick producer stopped", "reason", ctx.Err())
			return
		case <-ticker.C:
		}
	}
}

func (s *Stream) readKeys(src InputSource) {
	defer s.q.producerDone()

	for {
		ev := src.PollEvent()
		if ev == nil {
			s.logger.Debug("input source closed")
			return
		}

		switch e := ev.(type) {
		case *tcell.EventKey:
			s.q.push(Key{EventKey: e})
		case *tcell.EventError:
			s.logger.Debug("input read failed", "err", e.Error())
		}
	}
}
