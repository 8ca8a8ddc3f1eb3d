package watch

import (
	"context"
	"testing"
	"time"

	"atvremote"
)

func TestSubscribeSeesSnapshot(t *testing.T) {
	b := NewBroker()
	b.Publish(atvremote.Status{State: atvremote.StateSearching})

	snap, _ := b.Subscribe(context.Background())
	if snap.State != atvremote.StateSearching {
		t.Fatalf("snapshot state = %v, want searching", snap.State)
	}
}

func TestPublishReachesSubscribers(t *testing.T) {
	b := NewBroker()
	_, ch := b.Subscribe(context.Background())

	want := atvremote.Status{State: atvremote.StateConnected, Device: "192.0.2.9"}
	b.Publish(want)

	select {
	case got := <-ch:
		if got != want {
			t.Fatalf("received %+v, want %+v", got, want)
		}
	case <-time.After(time.Second):
		t.Fatal("no status delivered")
	}
}

func TestSlowSubscriberDropsOldest(t *testing.T) {
	b := NewBroker()
	_, ch := b.Subscribe(context.Background())

	for i := 0; i < subscriberBufferCap+5; i++ {
		b.Publish(atvremote.Status{Message: "m", State: atvremote.State(i % 4)})
	}
	last := atvremote.Status{State: atvremote.StateConnected, Message: "final"}
	b.Publish(last)

	var got atvremote.Status
	for {
		select {
		case st := <-ch:
			got = st
			continue
		default:
		}
		break
	}
	if got != last {
		t.Fatalf("last delivered = %+v, want %+v", got, last)
	}
}

func TestCancelClosesChannel(t *testing.T) {
	b := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())
	_, ch := b.Subscribe(ctx)
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel never closed after cancel")
		}
	}
}
