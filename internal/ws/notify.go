package ws

import (
	"encoding/json"
	"time"
)

type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
}

type SessionChangedEvent struct {
	Type      string `json:"type"`
	Change    string `json:"change"`
	Timestamp string `json:"timestamp"`
}

// NotifyJobsUpdated tells connected listings to re-query.
func NotifyJobsUpdated(h *Hub) {
	if h == nil {
		return
	}
	b, err := json.Marshal(JobsUpdatedEvent{
		Type:      "jobs_updated",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	h.Broadcast(b)
}

// NotifySessionChanged mirrors a sign-in or sign-out onto the event stream.
// The payload carries no identity; tabs re-resolve the session themselves.
func NotifySessionChanged(h *Hub, change string) {
	if h == nil {
		return
	}
	b, err := json.Marshal(SessionChangedEvent{
		Type:      "session_changed",
		Change:    change,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	h.Broadcast(b)
}
