package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/Alwanly/sec-edgar-navigator/pkg/validator"
)

// BindHost is the interface the responder listens on.
const BindHost = "0.0.0.0"

// Fixed filing parameters of the fetcher.
const (
	DefaultIdentityName  = "Constantine"
	DefaultIdentityEmail = "your.email@example.com"
	DefaultFilingType    = "10-K"
	DefaultTicker        = "NVDA"
	DefaultLimit         = 1
)

type ResponderConfig struct {
	Port int `env:"PORT" env-default:"8000" validate:"gte=0,lte=65535"`
}

// Addr returns the listen address for the responder.
func (c *ResponderConfig) Addr() string {
	return net.JoinHostPort(BindHost, strconv.Itoa(c.Port))
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT" env-default:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
	// Prefix namespaces every key this binary writes.
	Prefix string `env:"REDIS_PREFIX" env-default:"edgar:"`
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

type FetcherConfig struct {
	DownloadRoot    string        `env:"DOWNLOAD_ROOT" env-default:"." validate:"required"`
	DatabasePath    string        `env:"DATABASE_PATH" env-default:"./data/filings.db"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s" validate:"gt=0"`
	MaxRetries      int           `env:"EDGAR_MAX_RETRIES" env-default:"5" validate:"gte=0"`
	DownloadDetails bool          `env:"EDGAR_DOWNLOAD_DETAILS" env-default:"false"`
	// Base URLs, overridable for mirrors and tests.
	ArchivesURL string `env:"EDGAR_ARCHIVES_URL" env-default:"https://www.sec.gov" validate:"url"`
	DataURL     string `env:"EDGAR_DATA_URL" env-default:"https://data.sec.gov" validate:"url"`
	Redis       RedisConfig
}

// Identity is the caller identity EDGAR asks every client to declare.
type Identity struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// UserAgent renders the identity the way EDGAR's fair access policy expects it.
func (i Identity) UserAgent() string {
	return fmt.Sprintf("%s %s", i.Name, i.Email)
}

// FilingRequest describes which filings a fetcher run retrieves.
type FilingRequest struct {
	Identity   Identity
	FilingType string `validate:"required"`
	Ticker     string `validate:"required"`
	Limit      int    `validate:"gte=1"`
}

// DefaultFilingRequest returns the request the fetcher binary runs with.
func DefaultFilingRequest() FilingRequest {
	return FilingRequest{
		Identity: Identity{
			Name:  DefaultIdentityName,
			Email: DefaultIdentityEmail,
		},
		FilingType: DefaultFilingType,
		Ticker:     DefaultTicker,
		Limit:      DefaultLimit,
	}
}

// LoadResponderConfig reads responder config from environment or returns defaults
func LoadResponderConfig() (*ResponderConfig, error) {
	cfg := new(ResponderConfig)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read responder config: %w", err)
	}
	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid responder config: %w", err)
	}
	return cfg, nil
}

// LoadFetcherConfig reads fetcher operational settings from environment or returns defaults
func LoadFetcherConfig() (*FetcherConfig, error) {
	cfg := new(FetcherConfig)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read fetcher config: %w", err)
	}
	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("invalid fetcher config: %w", err)
	}
	return cfg, nil
}
