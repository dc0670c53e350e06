package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Alwanly/sec-edgar-navigator/pkg/logger"
	"github.com/Alwanly/sec-edgar-navigator/pkg/middleware"
)

// ReadBufferSize bounds the request line plus headers.
const ReadBufferSize = 16 * 1024

// FiberConfig is the server configuration the responder runs with.
// Bodies are streamed: BodyLimit only caps how much is buffered up front,
// anything larger is still handed to the app as a stream.
func FiberConfig(log *logger.CanonicalLogger) fiber.Config {
	return fiber.Config{
		AppName:               "Responder",
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(log),
		StreamRequestBody:     true,
		ReadBufferSize:        ReadBufferSize,
	}
}
