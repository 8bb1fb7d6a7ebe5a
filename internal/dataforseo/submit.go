// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataforseo

import (
	"context"
	"strings"

	"github.com/pdiddy/fanout-extractor/internal/credentials"
	"github.com/pdiddy/fanout-extractor/internal/keywords"
	"github.com/pdiddy/fanout-extractor/pkg/types"
)

const (
	msgMissingCredentials = "Please configure API credentials first."
	msgMissingKeywords    = "Please enter at least one keyword."
	msgNoResults          = "No results found and no specific error returned."
)

// ValidationError is returned when a submission is rejected before any
// request is sent.
type ValidationError struct {
	// Field is "credentials" or "keywords".
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// BatchError is returned when no keyword in a batch succeeded. Messages
// holds the keyword-prefixed failures in keyword order.
type BatchError struct {
	Messages []string
}

func (e *BatchError) Error() string {
	if len(e.Messages) == 0 {
		return msgNoResults
	}
	return strings.Join(e.Messages, " | ")
}

// Input is one user submission: credentials, the raw keyword text as typed
// (newline or comma separated), and the shared location and language.
type Input struct {
	Credentials  types.Credentials
	Keywords     string
	LocationCode int
	LanguageCode string
}

// Submission is a usable batch: at least one keyword succeeded.
type Submission struct {
	Params types.SearchParams
	Batch  types.BatchResult
}

// Warnings returns the failures of a partially successful batch.
func (s Submission) Warnings() []string { return s.Batch.Errors }

// Submit validates in, dispatches one request per keyword, and aggregates
// the outcomes. Validation failures return a *ValidationError without
// calling d. A batch where every keyword failed returns a *BatchError.
func Submit(ctx context.Context, d Dispatcher, in Input) (Submission, error) {
	if !in.Credentials.IsComplete() {
		return Submission{}, &ValidationError{Field: "credentials", Message: msgMissingCredentials}
	}

	kws := keywords.Parse(in.Keywords)
	if len(kws) == 0 {
		return Submission{}, &ValidationError{Field: "keywords", Message: msgMissingKeywords}
	}

	params := types.SearchParams{
		Keywords:     kws,
		LocationCode: in.LocationCode,
		LanguageCode: in.LanguageCode,
	}
	token := credentials.Encode(in.Credentials.Login, in.Credentials.Password)

	batch := Aggregate(d.Dispatch(ctx, params, token))
	if len(batch.Results) == 0 {
		return Submission{Params: params, Batch: batch}, &BatchError{Messages: batch.Errors}
	}
	return Submission{Params: params, Batch: batch}, nil
}
