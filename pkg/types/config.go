package types

import "time"

// HTTPConfig holds settings for the outbound HTTP client.
type HTTPConfig struct {
	// Timeout is the per-request HTTP timeout. The dispatcher adds none of its own.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with API requests
	// (e.g. "fanout-extractor/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// APIConfig holds the DataForSEO endpoint and credentials.
type APIConfig struct {
	// Endpoint is the LLM scraper live URL. Empty means the production endpoint.
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	Credentials `yaml:",inline"`
}

// SearchConfig holds settings for one batch run.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// LocationCode is the default location when none is given (default 2032).
	LocationCode int `json:"location_code" yaml:"location_code"`

	// LanguageCode is the default language when none is given (default "es-419").
	LanguageCode string `json:"language_code" yaml:"language_code"`

	// Concurrency caps in-flight requests per batch (default 10).
	// Zero or negative means one goroutine per keyword with no cap.
	Concurrency int `json:"concurrency" yaml:"concurrency"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// ServeConfig holds settings for the web form server.
type ServeConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// AppConfig groups all configuration sections.
type AppConfig struct {
	API    APIConfig    `json:"api" yaml:"api"`
	Search SearchConfig `json:"search" yaml:"search"`
	Log    LogConfig    `json:"log" yaml:"log"`
	Serve  ServeConfig  `json:"serve" yaml:"serve"`
}
