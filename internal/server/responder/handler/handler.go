package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Alwanly/sec-edgar-navigator/internal/server/responder/protocol"
	"github.com/Alwanly/sec-edgar-navigator/pkg/deps"
	"github.com/Alwanly/sec-edgar-navigator/pkg/logger"
)

var (
	errResponseAlreadyStarted = errors.New("response already started")
	errResponseNotStarted     = errors.New("response body sent before response start")
)

// Handler adapts fiber requests to protocol scopes served by App.
type Handler struct {
	Logger *logger.CanonicalLogger
	App    protocol.App
}

// NewHandler mounts app on every method and path of the fiber app.
func NewHandler(d deps.App, app protocol.App) *Handler {
	h := &Handler{
		Logger: d.Logger,
		App:    app,
	}

	d.Fiber.Use(h.serve)

	return h
}

// Startup offers the app the lifespan handshake. Apps that do not speak it are
// logged and otherwise ignored.
func (h *Handler) Startup(ctx context.Context) error {
	err := h.App.Serve(ctx, protocol.LifespanScope{}, func(context.Context, protocol.Event) error {
		return nil
	})
	if errors.Is(err, protocol.ErrUnsupportedProtocol) {
		h.Logger.Info("lifespan protocol unsupported", logger.String(logger.FieldProtocol, string(protocol.KindLifespan)))
		return nil
	}
	return err
}

func (h *Handler) serve(c *fiber.Ctx) error {
	scope := scopeFromRequest(c)
	logger.AddToContext(c.UserContext(), logger.String(logger.FieldProtocol, string(scope.Kind())))

	started := false
	send := func(_ context.Context, ev protocol.Event) error {
		switch e := ev.(type) {
		case protocol.ResponseStart:
			if started {
				return errResponseAlreadyStarted
			}
			started = true
			c.Status(e.Status)
			for key, values := range e.Headers {
				for i, v := range values {
					if i == 0 {
						c.Response().Header.Set(key, v)
						continue
					}
					c.Response().Header.Add(key, v)
				}
			}
		case protocol.ResponseBody:
			if !started {
				return errResponseNotStarted
			}
			c.Response().AppendBody(e.Body)
		}
		return nil
	}

	err := h.App.Serve(c.UserContext(), scope, send)
	discardBody(scope)
	return err
}

// discardBody consumes whatever the app left unread so the connection can
// carry the next request.
func discardBody(scope protocol.Scope) {
	if s, ok := scope.(protocol.HTTPScope); ok && s.Body != nil {
		_, _ = io.Copy(io.Discard, s.Body)
	}
}

// requestBody streams the body when the server runs with StreamRequestBody.
func requestBody(c *fiber.Ctx) io.Reader {
	if stream := c.Request().BodyStream(); stream != nil {
		return stream
	}
	return bytes.NewReader(c.Body())
}

func scopeFromRequest(c *fiber.Ctx) protocol.Scope {
	headers := make(http.Header)
	for key, values := range c.GetReqHeaders() {
		headers[http.CanonicalHeaderKey(key)] = values
	}

	if strings.EqualFold(c.Get(fiber.HeaderUpgrade), "websocket") {
		return protocol.WebSocketScope{Path: c.Path(), Headers: headers}
	}

	return protocol.HTTPScope{
		Method:   c.Method(),
		Path:     c.Path(),
		RawQuery: string(c.Request().URI().QueryString()),
		Headers:  headers,
		Body:     requestBody(c),
	}
}
