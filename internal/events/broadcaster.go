package events

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"pergunu/internal/metrics"
)

// Event names pushed to subscribed clients. Payloads mirror the mutated
// record.
const (
	Connected                  = "connected"
	NewsAdded                  = "news-added"
	NewsUpdated                = "news-updated"
	NewsDeleted                = "news-deleted"
	NewsFeatured               = "news-featured"
	BeasiswaAdded              = "beasiswa-added"
	BeasiswaUpdated            = "beasiswa-updated"
	BeasiswaDeleted            = "beasiswa-deleted"
	ApplicationUpdated         = "application-updated"
	BeasiswaApplicationAdded   = "beasiswa-application-added"
	BeasiswaApplicationUpdated = "beasiswa-application-updated"
)

// subscriberBuffer bounds how far a client may lag before it is dropped.
const subscriberBuffer = 16

// Broadcaster fans out named events to every open push subscription as
// server-sent-event frames. Delivery is best-effort with no replay buffer:
// clients that connect after an event never see it.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[chan []byte]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan []byte]struct{})}
}

// Subscribe registers a new client and returns its frame channel together
// with a cancel func that removes the subscription. The channel is closed by
// whichever side gives up first, cancel or a failed delivery.
func (b *Broadcaster) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, subscriberBuffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	metrics.SSEClients.Inc()

	cancel := func() { b.remove(ch) }
	return ch, cancel
}

// Broadcast serializes payload as JSON and writes one framed event to every
// open channel. A subscriber whose buffer is full is dropped on the spot;
// zero subscribers is a no-op.
func (b *Broadcaster) Broadcast(event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("broadcast %s: marshal failed: %v", event, err)
		return
	}
	frame := Frame(event, data)

	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- frame:
		default:
			delete(b.subs, ch)
			close(ch)
			metrics.SSEClients.Dec()
			log.Printf("broadcast %s: dropping stalled subscriber", event)
		}
	}
	b.mu.Unlock()

	metrics.BroadcastEvents.WithLabelValues(event).Inc()
}

// SubscriberCount returns the number of open subscriptions.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Broadcaster) remove(ch chan []byte) {
	b.mu.Lock()
	_, ok := b.subs[ch]
	if ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
	if ok {
		metrics.SSEClients.Dec()
	}
}

// Frame renders one SSE wire frame for the given event and raw JSON data.
func Frame(event string, data []byte) []byte {
	return []byte(fmt.Sprintf("event: %s\ndata: %s\n\n", event, data))
}
