// Package protocol models the connection scopes a server hands to an app and
// the events the app sends back.
package protocol

import (
	"context"
	"io"
	"net/http"
)

// Kind identifies the protocol a Scope belongs to.
type Kind string

const (
	KindHTTP      Kind = "http"
	KindWebSocket Kind = "websocket"
	KindLifespan  Kind = "lifespan"
)

// Scope describes one connection or lifecycle event offered to an app.
type Scope interface {
	Kind() Kind
}

// HTTPScope is a single HTTP request.
type HTTPScope struct {
	Method   string
	Path     string
	RawQuery string
	Headers  http.Header
	Body     io.Reader
}

func (HTTPScope) Kind() Kind { return KindHTTP }

// WebSocketScope is an HTTP request asking to upgrade to a websocket.
type WebSocketScope struct {
	Path    string
	Headers http.Header
}

func (WebSocketScope) Kind() Kind { return KindWebSocket }

// LifespanScope is the startup/shutdown handshake a server offers once per process.
type LifespanScope struct{}

func (LifespanScope) Kind() Kind { return KindLifespan }

// Event is a message an app sends back to the server.
type Event interface {
	event()
}

// ResponseStart opens an HTTP response. It must precede any ResponseBody.
type ResponseStart struct {
	Status  int
	Headers http.Header
}

// ResponseBody carries response bytes. MoreBody reports whether further
// ResponseBody events follow.
type ResponseBody struct {
	Body     []byte
	MoreBody bool
}

func (ResponseStart) event() {}
func (ResponseBody) event()  {}

// Sender delivers an event to the server side of the connection.
type Sender func(ctx context.Context, ev Event) error

// App handles one scope.
type App interface {
	Serve(ctx context.Context, scope Scope, send Sender) error
}
