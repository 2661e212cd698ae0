package input

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tickdown/core"
	"github.com/lixenwraith/tickdown/events"
)

// Poller is the subset of tcell.Screen the input source needs.
// Tests substitute a scripted poller.
type Poller interface {
	PollEvent() tcell.Event
}

// Start runs the input source on its own goroutine for the lifetime of
// the program. It block-reads terminal events, maps them to logical
// events and publishes them into the merger. A nil poll result (screen
// finalized) or a failed publish ends the source; the failed publish is
// the normal shutdown path once the control loop drops its receiver.
func Start(poller Poller, p *events.Producer) {
	core.Go(func() {
		defer p.Close()
		for {
			ev := poller.PollEvent()
			if ev == nil {
				return
			}
			out, ok := translate(ev)
			if !ok {
				continue
			}
			if err := p.Publish(out); err != nil {
				log.Printf("input: shutting down: %v", err)
				return
			}
		}
	})
}

// translate maps a raw terminal event to a merged event. Unrecognized
// keys still publish as KeyOther: the loop consumes them and redraws
// without a state change.
func translate(ev tcell.Event) (events.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return events.Event{Type: events.TypeKey, Key: mapKey(ev)}, true
	case *tcell.EventResize:
		return events.Event{Type: events.TypeResize}, true
	}
	return events.Event{}, false
}

func mapKey(ev *tcell.EventKey) events.Key {
	switch ev.Key() {
	case tcell.KeyEnter:
		return events.KeyEnter
	case tcell.KeyEscape:
		return events.KeyEscape
	case tcell.KeyCtrlC:
		return events.KeyQuit
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return events.KeyQuit
		}
	}
	return events.KeyOther
}
