package deps

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Alwanly/sec-edgar-navigator/pkg/cache"
	"github.com/Alwanly/sec-edgar-navigator/pkg/logger"
)

// App bundles the shared dependencies a binary hands to its handlers and usecases.
// Fields a binary does not use stay nil.
type App struct {
	Fiber    *fiber.App
	Logger   *logger.CanonicalLogger
	Database *gorm.DB
	Cache    cache.Cache
}
