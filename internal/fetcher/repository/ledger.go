package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Alwanly/sec-edgar-navigator/internal/models"
)

type Ledger struct {
	DB *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{DB: db}
}

func (l *Ledger) Record(ctx context.Context, artifacts []models.FilingArtifact) error {
	if len(artifacts) == 0 {
		return nil
	}
	err := l.DB.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&artifacts).Error
	if err != nil {
		return fmt.Errorf("failed to record artifacts: %w", err)
	}
	return nil
}

func (l *Ledger) ListByTicker(ctx context.Context, ticker string) ([]models.FilingArtifact, error) {
	var artifacts []models.FilingArtifact
	err := l.DB.WithContext(ctx).
		Where("ticker = ?", ticker).
		Order("filing_date DESC").
		Order("file_name ASC").
		Find(&artifacts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts for %s: %w", ticker, err)
	}
	return artifacts, nil
}
