package usecase

import (
	"context"
	"fmt"

	"github.com/Alwanly/sec-edgar-navigator/internal/config"
	"github.com/Alwanly/sec-edgar-navigator/internal/fetcher/repository"
	"github.com/Alwanly/sec-edgar-navigator/internal/models"
	"github.com/Alwanly/sec-edgar-navigator/pkg/deps"
	"github.com/Alwanly/sec-edgar-navigator/pkg/logger"
	"github.com/Alwanly/sec-edgar-navigator/pkg/validator"
)

// RepositoryFactory builds a filings repository that declares identity to EDGAR.
type RepositoryFactory func(identity config.Identity) (repository.IFilingsRepository, error)

type UseCase struct {
	newRepository RepositoryFactory
	ledger        repository.ILedger
	logger        *logger.CanonicalLogger
}

func New(newRepository RepositoryFactory, ledger repository.ILedger, log *logger.CanonicalLogger) *UseCase {
	return &UseCase{
		newRepository: newRepository,
		ledger:        ledger,
		logger:        log,
	}
}

// NewUseCase wires the EDGAR client, file storage and ledger from the shared dependencies.
func NewUseCase(d deps.App, cfg *config.FetcherConfig) *UseCase {
	edgarCfg := repository.DefaultEdgarConfig()
	edgarCfg.RequestTimeout = cfg.RequestTimeout
	edgarCfg.Retry.MaxRetries = cfg.MaxRetries
	edgarCfg.DownloadDetails = cfg.DownloadDetails
	edgarCfg.ArchivesURL = cfg.ArchivesURL
	edgarCfg.DataURL = cfg.DataURL

	storage := repository.NewFileStorage(cfg.DownloadRoot)
	factory := func(identity config.Identity) (repository.IFilingsRepository, error) {
		return repository.NewEdgarClient(edgarCfg, identity, storage, d.Cache, d.Logger), nil
	}

	var ledger repository.ILedger
	if d.Database != nil {
		ledger = repository.NewLedger(d.Database)
	}

	return New(factory, ledger, d.Logger)
}

func (uc *UseCase) Fetch(ctx context.Context, req config.FilingRequest) ([]models.FilingArtifact, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("invalid filing request: %w", err)
	}

	logger.AddToContext(ctx,
		logger.String(logger.FieldOperation, "fetch_latest"),
		logger.Ticker(req.Ticker),
		logger.String(logger.FieldFilingType, req.FilingType),
		logger.Int(logger.FieldLimit, req.Limit),
	)

	uc.logPreviousRuns(ctx, req)

	repo, err := uc.newRepository(req.Identity)
	if err != nil {
		return nil, fmt.Errorf("failed to create filings repository: %w", err)
	}

	artifacts, err := repo.FetchLatest(ctx, req.Ticker, req.FilingType, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s filings for %s: %w", req.FilingType, req.Ticker, err)
	}
	logger.AddToContext(ctx, logger.Int(logger.FieldArtifactCnt, len(artifacts)))

	if len(artifacts) == 0 {
		uc.logger.WithTicker(req.Ticker).Info("no matching filings found",
			logger.String(logger.FieldFilingType, req.FilingType))
		return artifacts, nil
	}

	runID := logger.GetCorrelationID(ctx)
	for i := range artifacts {
		artifacts[i].RunID = runID
	}

	if uc.ledger != nil {
		if err := uc.ledger.Record(ctx, artifacts); err != nil {
			return nil, fmt.Errorf("failed to record downloaded filings: %w", err)
		}
	}

	return artifacts, nil
}

// logPreviousRuns reports what earlier runs already stored for the ticker.
// The ledger is informational here, so a failed lookup does not stop the run.
func (uc *UseCase) logPreviousRuns(ctx context.Context, req config.FilingRequest) {
	if uc.ledger == nil {
		return
	}
	previous, err := uc.ledger.ListByTicker(ctx, req.Ticker)
	if err != nil {
		uc.logger.WithError(err).Warn("failed to read download ledger", logger.Ticker(req.Ticker))
		return
	}
	logger.AddToContext(ctx, logger.Int(logger.FieldPreviousCnt, len(previous)))
	if len(previous) > 0 {
		latest := previous[0]
		uc.logger.WithTicker(req.Ticker).Info("filings already recorded",
			logger.Int(logger.FieldPreviousCnt, len(previous)),
			logger.Accession(latest.AccessionNumber),
			logger.String("filing_date", latest.FilingDate),
		)
	}
}
