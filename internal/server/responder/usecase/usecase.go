package usecase

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Alwanly/sec-edgar-navigator/internal/server/responder/protocol"
)

const (
	ContentType = "text/plain"
	Greeting    = "Hello, world!"
)

// HelloApp answers every HTTP request with the same plain-text greeting.
type HelloApp struct{}

func NewHelloApp() *HelloApp {
	return &HelloApp{}
}

// Serve ignores everything about the request except its protocol kind.
func (a *HelloApp) Serve(ctx context.Context, scope protocol.Scope, send protocol.Sender) error {
	if _, ok := scope.(protocol.HTTPScope); !ok {
		return &protocol.UnsupportedProtocolError{Kind: scope.Kind()}
	}

	headers := http.Header{}
	headers.Set("Content-Type", ContentType)

	if err := send(ctx, protocol.ResponseStart{Status: http.StatusOK, Headers: headers}); err != nil {
		return fmt.Errorf("failed to send response start: %w", err)
	}
	if err := send(ctx, protocol.ResponseBody{Body: []byte(Greeting)}); err != nil {
		return fmt.Errorf("failed to send response body: %w", err)
	}
	return nil
}
