package repository

import (
	"context"

	"github.com/Alwanly/sec-edgar-navigator/internal/models"
)

// IFilingsRepository retrieves filings from a filings archive and persists them locally.
type IFilingsRepository interface {
	// FetchLatest persists up to limit most recent filings of filingType for ticker
	// and returns one artifact per written file.
	FetchLatest(ctx context.Context, ticker, filingType string, limit int) ([]models.FilingArtifact, error)
}

// IArtifactStorage writes filing files to local disk.
type IArtifactStorage interface {
	// Save writes body under the directory for key and returns the final path.
	Save(key ArtifactKey, fileName string, body []byte) (string, error)
}

// ILedger keeps track of every artifact written to disk.
type ILedger interface {
	// Record inserts artifacts, updating rows that already exist.
	Record(ctx context.Context, artifacts []models.FilingArtifact) error
	// ListByTicker returns recorded artifacts for ticker, newest filing first.
	ListByTicker(ctx context.Context, ticker string) ([]models.FilingArtifact, error)
}
