// Package queue defines message payloads exchanged over the message broker.
package queue

// MovieQueriedEvent is published once per request to a movie route. It holds
// enough context for an audit trail or usage analytics without touching the
// movie store.
type MovieQueriedEvent struct {
	Method     string            `json:"method"`
	Route      string            `json:"route"`
	Path       string            `json:"path"`
	Params     map[string]string `json:"params,omitempty"`
	Status     int               `json:"status"`
	RemoteIP   string            `json:"remote_ip"`
	LatencyMs  int64             `json:"latency_ms"`
	Cache      string            `json:"cache,omitempty"`
	OccurredAt string            `json:"occurred_at"`
}
