// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataforseo issues batched keyword lookups against the DataForSEO
// ChatGPT LLM scraper live endpoint and aggregates the per-keyword outcomes.
//
// Each keyword is sent as its own single-task request. The live endpoint
// tends to answer multi-task batches with 40401 (task not found) once its
// internal timeout is reached, so one request per keyword gives every task
// its own execution window.
package dataforseo

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/fanout-extractor/internal/credentials"
	"github.com/pdiddy/fanout-extractor/internal/httputil"
	"github.com/pdiddy/fanout-extractor/pkg/types"
)

// DefaultEndpoint is the LLM scraper live advanced endpoint.
const DefaultEndpoint = "https://api.dataforseo.com/v3/ai_optimization/chat_gpt/llm_scraper/live/advanced"

// DefaultConcurrency caps in-flight requests when the config leaves it unset.
const DefaultConcurrency = 10

// Dispatcher issues one request per keyword and returns one Outcome per
// keyword, in keyword order.
type Dispatcher interface {
	Dispatch(ctx context.Context, params types.SearchParams, token string) []Outcome
}

// Client is the HTTP Dispatcher for the DataForSEO API.
type Client struct {
	HTTPClient *http.Client

	// Endpoint overrides DefaultEndpoint when set.
	Endpoint string

	UserAgent string

	// Concurrency caps in-flight requests. Zero or negative is unbounded.
	Concurrency int

	Logger logrus.FieldLogger
}

// NewClient builds a Client from cfg.
func NewClient(api types.APIConfig, cfg types.SearchConfig, logger logrus.FieldLogger) *Client {
	return &Client{
		HTTPClient:  &http.Client{Timeout: cfg.Timeout},
		Endpoint:    api.Endpoint,
		UserAgent:   cfg.UserAgent,
		Concurrency: cfg.Concurrency,
		Logger:      logger,
	}
}

// Dispatch sends every keyword concurrently and waits for all of them to
// settle. A failing keyword never cancels or short-circuits its siblings;
// it becomes a Failure in its own slot. The returned slice has exactly
// len(params.Keywords) entries.
func (c *Client) Dispatch(ctx context.Context, params types.SearchParams, token string) []Outcome {
	log := c.logger().WithFields(logrus.Fields{
		"batch_id": uuid.NewString(),
		"keywords": len(params.Keywords),
	})
	log.Info("dispatching batch")

	outcomes := make([]Outcome, len(params.Keywords))

	// A plain Group, not WithContext: per-call errors are values and must
	// not cancel the rest of the batch.
	var g errgroup.Group
	if c.Concurrency > 0 {
		g.SetLimit(c.Concurrency)
	}
	for i, kw := range params.Keywords {
		g.Go(func() error {
			outcomes[i] = c.lookup(ctx, kw, params, token, log)
			return nil
		})
	}
	g.Wait()

	return outcomes
}

// lookup issues the request for a single keyword and classifies it.
func (c *Client) lookup(ctx context.Context, kw string, params types.SearchParams, token string, log logrus.FieldLogger) Outcome {
	payload := []taskRequest{{
		Keyword:        kw,
		LocationCode:   params.LocationCode,
		LanguageCode:   params.LanguageCode,
		ForceWebSearch: true,
	}}

	header := http.Header{}
	header.Set("Authorization", credentials.Header(token))
	if c.UserAgent != "" {
		header.Set("User-Agent", c.UserAgent)
	}

	resp, err := httputil.PostJSON(ctx, c.HTTPClient, c.endpoint(), header, payload)
	out := Classify(kw, resp, err)

	entry := log.WithFields(logrus.Fields{"keyword": kw, "http_status": resp.StatusCode})
	switch o := out.(type) {
	case Success:
		entry.WithField("fan_out_queries", len(o.Result.FanOutQueries)).Debug("keyword succeeded")
	case Failure:
		entry.WithFields(logrus.Fields{"kind": o.Kind.String(), "error": o.Message}).Warn("keyword failed")
	}
	return out
}

func (c *Client) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return DefaultEndpoint
}

func (c *Client) logger() logrus.FieldLogger {
	if c.Logger != nil {
		return c.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
