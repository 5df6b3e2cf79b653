package realtime

import (
	"github.com/damassweet/damas/pkg/logger"
	"github.com/damassweet/damas/pkg/metrics"
	"github.com/damassweet/damas/pkg/ws"
)

// Broadcaster delivers events to all connected dashboards. Services publish
// after every successful mutation; delivery is best-effort and must never
// block or fail the mutation itself.
type Broadcaster interface {
	Publish(e Event)
}

// HubBroadcaster fans events out through a websocket hub.
type HubBroadcaster struct {
	hub *ws.Hub
}

// NewHubBroadcaster wraps the given hub. The hub must already be running.
func NewHubBroadcaster(hub *ws.Hub) *HubBroadcaster {
	return &HubBroadcaster{hub: hub}
}

func (b *HubBroadcaster) Publish(e Event) {
	data, err := e.Encode()
	if err != nil {
		logger.Error("realtime: encode event", "type", e.Type(), "error", err)
		return
	}
	b.hub.Broadcast(data)
	metrics.EventsPublished.WithLabelValues(e.Type()).Inc()
}

// NopBroadcaster drops every event. Used in tests and CLI commands that
// mutate data without a running hub.
type NopBroadcaster struct{}

func (NopBroadcaster) Publish(Event) {}

// Recorder captures published events in order. Test helper.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Publish(e Event) { r.Events = append(r.Events, e) }
