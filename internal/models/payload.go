// internal/models/payload.go
package models

// Payload is the id/name record exchanged with the echo service. It lives for
// one request/response cycle and is never persisted.
type Payload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EchoEnvelope is the echo service's response shape (httpbin /post). Only the
// re-parsed payload under "json" is kept; the rest is request metadata echoed
// back by the service.
type EchoEnvelope struct {
	Args    map[string]string `json:"args"`
	Data    string            `json:"data"`
	Files   map[string]string `json:"files"`
	Form    map[string]string `json:"form"`
	Headers map[string]string `json:"headers"`
	JSON    Payload           `json:"json"`
	Origin  string            `json:"origin"`
	URL     string            `json:"url"`
}
