// Package watch publishes the latest connection status to any number of
// subscribers. One topic, latest-value semantics: a new subscriber gets the
// current snapshot immediately, then every subsequent change in order. Slow
// subscribers drop intermediate values rather than block the publisher.
package watch

import (
	"context"
	"sync"

	"atvremote"
)

const subscriberBufferCap = 16

// Broker fans a Status stream out to subscribers.
type Broker struct {
	mu     sync.Mutex
	subs   map[uint64]chan atvremote.Status
	nextID uint64
	latest atvremote.Status
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[uint64]chan atvremote.Status)}
}

// Publish records st as the latest snapshot and delivers it to all
// subscribers. Delivery never blocks; a full subscriber channel loses the
// oldest pending value.
func (b *Broker) Publish(st atvremote.Status) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.latest = st
	for _, ch := range b.subs {
		select {
		case ch <- st:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- st:
			default:
			}
		}
	}
}

// Latest returns the current snapshot.
func (b *Broker) Latest() atvremote.Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest
}

// Subscribe returns the current snapshot plus a channel of subsequent
// changes. The subscription ends (and the channel closes) when ctx is done.
func (b *Broker) Subscribe(ctx context.Context) (atvremote.Status, <-chan atvremote.Status) {
	ch := make(chan atvremote.Status, subscriberBufferCap)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	snapshot := b.latest
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
		b.mu.Unlock()
	}()

	return snapshot, ch
}
