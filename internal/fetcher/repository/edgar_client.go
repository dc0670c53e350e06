package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Alwanly/sec-edgar-navigator/internal/config"
	"github.com/Alwanly/sec-edgar-navigator/internal/fetcher/dto"
	"github.com/Alwanly/sec-edgar-navigator/internal/models"
	"github.com/Alwanly/sec-edgar-navigator/pkg/cache"
	"github.com/Alwanly/sec-edgar-navigator/pkg/logger"
	"github.com/Alwanly/sec-edgar-navigator/pkg/retry"
)

const (
	FullSubmissionFile  = "full-submission.txt"
	PrimaryDocumentBase = "primary-document"

	cikCachePrefix = "cik:"
)

type EdgarConfig struct {
	// ArchivesURL serves the ticker map and filing archives.
	ArchivesURL string
	// DataURL serves the submissions API.
	DataURL        string
	RequestTimeout time.Duration
	// MinInterval is the minimum spacing between two requests.
	MinInterval     time.Duration
	Retry           retry.Config
	DownloadDetails bool
	CIKCacheTTL     time.Duration
}

// DefaultEdgarConfig targets the public EDGAR hosts and stays within their
// 10 requests per second fair access limit.
func DefaultEdgarConfig() EdgarConfig {
	return EdgarConfig{
		ArchivesURL:    "https://www.sec.gov",
		DataURL:        "https://data.sec.gov",
		RequestTimeout: 30 * time.Second,
		MinInterval:    100 * time.Millisecond,
		Retry: retry.Config{
			MaxRetries:     5,
			InitialBackoff: 500 * time.Millisecond,
			MaxBackoff:     10 * time.Second,
			Multiplier:     2.0,
			Jitter:         true,
		},
		CIKCacheTTL: 24 * time.Hour,
	}
}

type edgarClient struct {
	http     *resty.Client
	cfg      EdgarConfig
	storage  IArtifactStorage
	cikCache cache.Cache
	throttle *throttle
	logger   *logger.CanonicalLogger
}

// NewEdgarClient creates a filings repository that identifies itself to EDGAR as identity.
// cikCache may be nil.
func NewEdgarClient(cfg EdgarConfig, identity config.Identity, storage IArtifactStorage, cikCache cache.Cache, log *logger.CanonicalLogger) IFilingsRepository {
	client := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("User-Agent", identity.UserAgent()).
		SetHeader("Accept", "*/*")

	return &edgarClient{
		http:     client,
		cfg:      cfg,
		storage:  storage,
		cikCache: cikCache,
		throttle: newThrottle(cfg.MinInterval),
		logger:   log.Component("edgar"),
	}
}

// download is a file fetched in full but not yet written.
type download struct {
	key      ArtifactKey
	fileName string
	body     []byte
	filing   models.Filing
}

func (c *edgarClient) FetchLatest(ctx context.Context, ticker, filingType string, limit int) ([]models.FilingArtifact, error) {
	company, err := c.resolveCompany(ctx, ticker)
	if err != nil {
		return nil, err
	}
	logger.AddToContext(ctx, logger.CIK(company.CIK))

	filings, err := c.listFilings(ctx, company.CIK, filingType, limit)
	if err != nil {
		return nil, err
	}
	if len(filings) == 0 {
		c.logger.WithTicker(company.Ticker).Info("no filings matched",
			logger.String(logger.FieldFilingType, filingType))
		return nil, nil
	}

	// Everything is downloaded before anything is written so a failed run leaves no files behind.
	var downloads []download
	for _, f := range filings {
		key := ArtifactKey{Ticker: company.Ticker, Form: filingType, Accession: f.AccessionNumber}

		body, err := c.get(ctx, c.archiveURL(company.CIK, f.AccessionNumber, f.AccessionNumber+".txt"))
		if err != nil {
			return nil, fmt.Errorf("failed to download filing %s: %w", f.AccessionNumber, err)
		}
		downloads = append(downloads, download{key: key, fileName: FullSubmissionFile, body: body, filing: f})

		if c.cfg.DownloadDetails && f.PrimaryDocument != "" {
			body, err := c.get(ctx, c.archiveURL(company.CIK, f.AccessionNumber, f.PrimaryDocument))
			if err != nil {
				return nil, fmt.Errorf("failed to download primary document of %s: %w", f.AccessionNumber, err)
			}
			downloads = append(downloads, download{key: key, fileName: primaryDocumentName(f.PrimaryDocument), body: body, filing: f})
		}
	}

	artifacts := make([]models.FilingArtifact, 0, len(downloads))
	for _, d := range downloads {
		p, err := c.storage.Save(d.key, d.fileName, d.body)
		if err != nil {
			return nil, fmt.Errorf("failed to save %s of %s: %w", d.fileName, d.filing.AccessionNumber, err)
		}
		c.logger.Info("filing saved",
			logger.Accession(d.filing.AccessionNumber),
			logger.String("path", p),
			logger.Int("size_bytes", len(d.body)),
		)
		artifacts = append(artifacts, models.FilingArtifact{
			AccessionNumber: d.filing.AccessionNumber,
			FileName:        d.fileName,
			Ticker:          company.Ticker,
			CIK:             company.CIK,
			FilingType:      filingType,
			FilingDate:      d.filing.FilingDate,
			PrimaryDocument: d.filing.PrimaryDocument,
			Path:            p,
			SizeBytes:       int64(len(d.body)),
		})
	}

	return artifacts, nil
}

// resolveCompany maps a ticker, or a bare CIK, to a zero-padded CIK.
func (c *edgarClient) resolveCompany(ctx context.Context, ticker string) (models.Company, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return models.Company{}, fmt.Errorf("%w: empty ticker", ErrTickerNotFound)
	}

	if isCIK(ticker) {
		n, _ := strconv.ParseInt(ticker, 10, 64)
		return models.Company{CIK: padCIK(n), Ticker: ticker}, nil
	}

	if c.cikCache != nil {
		cik, err := c.cikCache.Get(ctx, cikCachePrefix+ticker)
		switch {
		case err == nil:
			return models.Company{CIK: cik, Ticker: ticker}, nil
		case !errors.Is(err, cache.ErrMiss):
			c.logger.WithError(err).Warn("cik cache lookup failed", logger.Ticker(ticker))
		}
	}

	body, err := c.get(ctx, c.cfg.ArchivesURL+"/files/company_tickers.json")
	if err != nil {
		return models.Company{}, fmt.Errorf("failed to load ticker map: %w", err)
	}

	var tickers dto.CompanyTickers
	if err := json.Unmarshal(body, &tickers); err != nil {
		return models.Company{}, fmt.Errorf("failed to decode ticker map: %w", err)
	}

	for _, entry := range tickers {
		if !strings.EqualFold(entry.Ticker, ticker) {
			continue
		}
		company := models.Company{CIK: padCIK(entry.CIK), Ticker: ticker, Title: entry.Title}
		if c.cikCache != nil {
			if err := c.cikCache.Set(ctx, cikCachePrefix+ticker, company.CIK, c.cfg.CIKCacheTTL); err != nil {
				c.logger.WithError(err).Warn("cik cache store failed", logger.Ticker(ticker))
			}
		}
		return company, nil
	}

	return models.Company{}, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
}

// listFilings walks the recent filings and then older pages until limit matches are found.
func (c *edgarClient) listFilings(ctx context.Context, cik, form string, limit int) ([]models.Filing, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/submissions/CIK%s.json", c.cfg.DataURL, cik))
	if err != nil {
		return nil, fmt.Errorf("failed to load submissions for CIK %s: %w", cik, err)
	}

	var sub dto.Submissions
	if err := json.Unmarshal(body, &sub); err != nil {
		return nil, fmt.Errorf("failed to decode submissions for CIK %s: %w", cik, err)
	}

	filings := sub.Filings.Recent.Match(form, limit)
	for _, page := range sub.Filings.Files {
		if len(filings) >= limit {
			break
		}
		body, err := c.get(ctx, fmt.Sprintf("%s/submissions/%s", c.cfg.DataURL, page.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to load submissions page %s: %w", page.Name, err)
		}
		var cols dto.FilingColumns
		if err := json.Unmarshal(body, &cols); err != nil {
			return nil, fmt.Errorf("failed to decode submissions page %s: %w", page.Name, err)
		}
		filings = append(filings, cols.Match(form, limit-len(filings))...)
	}

	return filings, nil
}

func (c *edgarClient) archiveURL(cik, accession, file string) string {
	trimmed := strings.TrimLeft(cik, "0")
	return fmt.Sprintf("%s/Archives/edgar/data/%s/%s/%s",
		c.cfg.ArchivesURL, trimmed, strings.ReplaceAll(accession, "-", ""), file)
}

// get fetches url, retrying transport failures and retryable statuses.
func (c *edgarClient) get(ctx context.Context, url string) ([]byte, error) {
	retryCfg := c.cfg.Retry
	retryCfg.OnRetry = func(attempt int, wait time.Duration, err error) {
		c.logger.WithError(err).Warn("edgar request failed, retrying",
			logger.URL(url),
			logger.Int("attempt", attempt),
			logger.Duration("wait", wait),
		)
	}

	var body []byte
	err := retry.WithExponentialBackoff(ctx, retryCfg, func(ctx context.Context) error {
		if err := c.throttle.Wait(ctx); err != nil {
			return retry.Permanent(err)
		}

		resp, err := c.http.R().SetContext(ctx).Get(url)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Permanent(err)
			}
			return fmt.Errorf("request %s: %w", url, err)
		}

		if resp.StatusCode() != http.StatusOK {
			serr := &StatusError{Code: resp.StatusCode(), URL: url}
			if serr.Retryable() {
				return serr
			}
			return retry.Permanent(serr)
		}

		body = resp.Body()
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("edgar request done", logger.URL(url), logger.Int("bytes", len(body)))
	return body, nil
}

func isCIK(s string) bool {
	if len(s) == 0 || len(s) > 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func padCIK(n int64) string {
	return fmt.Sprintf("%010d", n)
}

func primaryDocumentName(doc string) string {
	ext := path.Ext(doc)
	if ext == "" || ext == ".htm" {
		ext = ".html"
	}
	return PrimaryDocumentBase + ext
}
