package events

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func recvOne(t *testing.T, m *Merger) (Event, bool) {
	t.Helper()
	select {
	case ev, ok := <-m.Events():
		return ev, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for merged event")
		return Event{}, false
	}
}

// TestSingleProducerFIFO verifies events from one producer arrive in
// publish order.
func TestSingleProducerFIFO(t *testing.T) {
	m := NewMerger(16)
	p := m.Attach()

	want := []Event{
		{Type: TypeKey, Key: KeyEnter},
		{Type: TypeTick},
		{Type: TypeKey, Key: KeyEscape},
		{Type: TypeResize},
	}
	for _, ev := range want {
		if err := p.Publish(ev); err != nil {
			t.Fatalf("Publish(%v) = %v", ev, err)
		}
	}

	for i, w := range want {
		got, ok := recvOne(t, m)
		if !ok {
			t.Fatalf("event %d: channel closed early", i)
		}
		if got != w {
			t.Errorf("event %d = %v, want %v", i, got, w)
		}
	}
}

// TestPublishAfterConsumerClose verifies a dropped receiver turns
// every subsequent publish into ErrClosed, the producers' shutdown
// signal.
func TestPublishAfterConsumerClose(t *testing.T) {
	m := NewMerger(16)
	p := m.Attach()

	m.Close()

	if err := p.Publish(Event{Type: TypeTick}); !errors.Is(err, ErrClosed) {
		t.Errorf("Publish after Close = %v, want ErrClosed", err)
	}
	// Close is idempotent on both sides
	m.Close()
	p.Close()
	p.Close()
}

// TestLastProducerDetachClosesChannel verifies the consumer observes
// receive failure once every producer has detached.
func TestLastProducerDetachClosesChannel(t *testing.T) {
	m := NewMerger(16)
	p1 := m.Attach()
	p2 := m.Attach()

	if err := p1.Publish(Event{Type: TypeTick}); err != nil {
		t.Fatalf("Publish = %v", err)
	}

	p1.Close()

	// Channel must stay open while p2 is attached
	if _, ok := recvOne(t, m); !ok {
		t.Fatal("channel closed while a producer is still attached")
	}

	p2.Close()

	if _, ok := recvOne(t, m); ok {
		t.Fatal("channel open after last producer detached")
	}
}

func TestPublishOnClosedProducer(t *testing.T) {
	m := NewMerger(1)
	p := m.Attach()
	keepAlive := m.Attach() // keeps the channel open past p's detach
	defer keepAlive.Close()

	p.Close()

	if err := p.Publish(Event{Type: TypeTick}); !errors.Is(err, ErrClosed) {
		t.Errorf("Publish on closed producer = %v, want ErrClosed", err)
	}
}

// TestConcurrentProducers verifies the fan-in delivers everything from
// independent producer goroutines.
func TestConcurrentProducers(t *testing.T) {
	const perProducer = 100

	m := NewMerger(16)
	keys := m.Attach()
	ticks := m.Attach()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer keys.Close()
		for i := 0; i < perProducer; i++ {
			if err := keys.Publish(Event{Type: TypeKey, Key: KeyOther}); err != nil {
				t.Errorf("key publish: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		defer ticks.Close()
		for i := 0; i < perProducer; i++ {
			if err := ticks.Publish(Event{Type: TypeTick}); err != nil {
				t.Errorf("tick publish: %v", err)
				return
			}
		}
	}()

	var gotKeys, gotTicks int
	for {
		ev, ok := recvOne(t, m)
		if !ok {
			break
		}
		switch ev.Type {
		case TypeKey:
			gotKeys++
		case TypeTick:
			gotTicks++
		}
	}
	wg.Wait()

	if gotKeys != perProducer || gotTicks != perProducer {
		t.Errorf("received %d keys and %d ticks, want %d each", gotKeys, gotTicks, perProducer)
	}
}
