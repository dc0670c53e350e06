package usecase

import (
	"context"

	"github.com/Alwanly/sec-edgar-navigator/internal/config"
	"github.com/Alwanly/sec-edgar-navigator/internal/models"
)

// IUseCase defines the business logic interface for the fetcher
type IUseCase interface {
	// Fetch retrieves the filings described by req and returns what was written to disk
	Fetch(ctx context.Context, req config.FilingRequest) ([]models.FilingArtifact, error)
}
