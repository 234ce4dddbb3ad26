package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrame(t *testing.T) {
	got := Frame(NewsAdded, []byte(`{"id":"1"}`))
	require.Equal(t, "event: news-added\ndata: {\"id\":\"1\"}\n\n", string(got))
}

func TestBroadcast_NoSubscribers(t *testing.T) {
	b := NewBroadcaster()
	// must not panic or block
	b.Broadcast(NewsAdded, map[string]string{"id": "1"})
	require.Equal(t, 0, b.SubscriberCount())
}

func TestSubscribeAndBroadcast(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	defer cancel()

	b.Broadcast(NewsDeleted, map[string]string{"id": "42"})

	frame := <-ch
	require.Equal(t, "event: news-deleted\ndata: {\"id\":\"42\"}\n\n", string(frame))
}

func TestCancel_RemovesSubscriber(t *testing.T) {
	b := NewBroadcaster()
	ch, cancel := b.Subscribe()
	require.Equal(t, 1, b.SubscriberCount())

	cancel()
	require.Equal(t, 0, b.SubscriberCount())

	_, open := <-ch
	require.False(t, open, "channel must be closed after cancel")

	// second cancel is a no-op
	cancel()
}

func TestBroadcast_DropsStalledSubscriber(t *testing.T) {
	b := NewBroadcaster()
	stalled, cancelStalled := b.Subscribe()
	defer cancelStalled()
	healthy, cancelHealthy := b.Subscribe()
	defer cancelHealthy()

	// fill both buffers, then drain only the healthy subscriber
	for i := 0; i < subscriberBuffer; i++ {
		b.Broadcast(NewsUpdated, map[string]int{"n": i})
	}
	for i := 0; i < subscriberBuffer; i++ {
		<-healthy
	}

	// the next frame overflows the stalled subscriber and drops it
	b.Broadcast(NewsUpdated, map[string]int{"n": subscriberBuffer})
	require.Equal(t, 1, b.SubscriberCount())
	<-healthy

	// stalled channel still yields its buffered frames, then closes
	for i := 0; i < subscriberBuffer; i++ {
		_, open := <-stalled
		require.True(t, open)
	}
	_, open := <-stalled
	require.False(t, open)
}
