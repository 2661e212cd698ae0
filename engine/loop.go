package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/tickdown/counter"
	"github.com/lixenwraith/tickdown/events"
	"github.com/lixenwraith/tickdown/render"
)

// Alerter is notified when a countdown runs to completion
type Alerter interface {
	Completed()
}

// TickStarter launches a tick source whose lifetime is scoped to ctx.
// Tests substitute one to drive ticks by hand.
type TickStarter func(ctx context.Context, p *events.Producer, interval time.Duration)

// Loop is the countdown control loop: a state machine consuming the
// merged event stream and mutating the shared counter. It owns control
// flow entirely; the producers only ever write into the merger.
type Loop struct {
	counter   *counter.Counter
	merger    *events.Merger
	renderer  render.Renderer
	alerter   Alerter // optional
	interval  time.Duration
	startTick TickStarter

	state      State
	cancelTick context.CancelFunc
}

// NewLoop creates a control loop in the Idle state.
func NewLoop(c *counter.Counter, m *events.Merger, r render.Renderer, interval time.Duration) *Loop {
	return &Loop{
		counter:   c,
		merger:    m,
		renderer:  r,
		interval:  interval,
		startTick: StartTicker,
		state:     StateIdle,
	}
}

// SetAlerter installs the completion notifier. A nil alerter is fine;
// the countdown runs silently.
func (l *Loop) SetAlerter(a Alerter) {
	l.alerter = a
}

// SetTickStarter overrides how tick sources are spawned.
func (l *Loop) SetTickStarter(s TickStarter) {
	l.startTick = s
}

// State returns the current state. Only meaningful between iterations;
// the loop goroutine is the sole writer.
func (l *Loop) State() State {
	return l.state
}

// Run consumes merged events until the loop terminates. A draw is
// issued once per iteration, so the displayed value never lags more
// than one event behind the counter. Returns nil on a user-requested
// exit and an error when the merged channel closes underneath the
// loop (all producers gone).
func (l *Loop) Run() error {
	defer l.shutdown()

	for {
		l.draw()

		ev, ok := <-l.merger.Events()
		if !ok {
			return fmt.Errorf("control loop: merged event channel closed")
		}

		l.Handle(ev)
		if l.state == StateTerminated {
			return nil
		}
	}
}

// Handle applies one event to the state machine. Exported so tests can
// drive transitions without goroutines; Run is the only caller in the
// program itself.
func (l *Loop) Handle(ev events.Event) {
	switch l.state {
	case StateIdle:
		l.handleIdle(ev)
	case StateRunning:
		l.handleRunning(ev)
	}
}

// handleIdle ignores everything except the start and quit keys. Stale
// ticks, resizes and unrecognized keys fall through to the redraw.
func (l *Loop) handleIdle(ev events.Event) {
	if ev.Type != events.TypeKey {
		return
	}
	switch ev.Key {
	case events.KeyEnter:
		l.enterRunning()
	case events.KeyQuit, events.KeyEscape:
		l.state = StateTerminated
	}
}

func (l *Loop) handleRunning(ev events.Event) {
	switch ev.Type {
	case events.TypeTick:
		if !l.counter.DecrementIfPositive() {
			// Counter already drained: countdown finished
			l.exitRunning()
			l.state = StateIdle
			if l.alerter != nil {
				l.alerter.Completed()
			}
		}
	case events.TypeKey:
		switch ev.Key {
		case events.KeyEscape:
			// Cancel: back to idle, counter keeps its last value
			l.exitRunning()
			l.state = StateIdle
		case events.KeyQuit:
			l.exitRunning()
			l.state = StateTerminated
		}
	}
}

// enterRunning spawns a fresh tick source scoped to this countdown.
func (l *Loop) enterRunning() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancelTick = cancel
	l.startTick(ctx, l.merger.Attach(), l.interval)
	l.state = StateRunning
}

// exitRunning cancels the tick source of the current countdown.
func (l *Loop) exitRunning() {
	if l.cancelTick != nil {
		l.cancelTick()
		l.cancelTick = nil
	}
}

// shutdown drops the merger receiver so outstanding producer sends
// fail, which the producers treat as their own termination signal.
func (l *Loop) shutdown() {
	l.exitRunning()
	l.merger.Close()
}

// draw paints the current counter value. A failed frame is logged and
// skipped, not fatal: the next event redraws anyway.
func (l *Loop) draw() {
	if err := l.renderer.Draw(l.counter.Get()); err != nil {
		log.Printf("render: frame skipped: %v", err)
	}
}
