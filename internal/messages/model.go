package messages

// Message is one directed message. Records are immutable except for the
// read flag, which only ever transitions false to true. JSON field names
// match the persisted collection.
type Message struct {
	ID       int    `json:"id"`
	From     string `json:"from"`
	FromName string `json:"fromName"`
	To       string `json:"to"`
	Text     string `json:"text"`
	// Timestamp is an ISO-8601 (RFC 3339) string, kept as written so
	// collections produced by earlier deployments sort correctly.
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}
