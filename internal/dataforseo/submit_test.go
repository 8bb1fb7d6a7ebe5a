// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataforseo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fanout-extractor/internal/credentials"
	"github.com/pdiddy/fanout-extractor/pkg/types"
)

// stubDispatcher answers from a fixed table and counts calls.
type stubDispatcher struct {
	calls   int
	params  types.SearchParams
	token   string
	outcome func(kw string) Outcome
}

func (s *stubDispatcher) Dispatch(_ context.Context, params types.SearchParams, token string) []Outcome {
	s.calls++
	s.params = params
	s.token = token
	out := make([]Outcome, len(params.Keywords))
	for i, kw := range params.Keywords {
		out[i] = s.outcome(kw)
	}
	return out
}

func succeed(kw string) Outcome {
	return NewSuccess(kw, types.TaskResult{Keyword: kw})
}

func emptyResult(kw string) Outcome {
	return NewFailure(kw, TaskError, "no result found (Code: 0)")
}

var creds = types.Credentials{Login: "user@example.com", Password: "secret"}

func TestAggregate(t *testing.T) {
	br := Aggregate([]Outcome{
		succeed("A"),
		emptyResult("B"),
		succeed("C"),
		NewFailure("D", TransportError, "HTTP 502: bad gateway"),
	})

	require.Len(t, br.Results, 2)
	assert.Equal(t, "A", br.Results[0].Keyword)
	assert.Equal(t, "C", br.Results[1].Keyword)
	assert.Equal(t, []string{
		`Keyword "B": no result found (Code: 0)`,
		`Keyword "D": HTTP 502: bad gateway`,
	}, br.Errors)
}

func TestAggregate_Empty(t *testing.T) {
	br := Aggregate(nil)
	assert.Empty(t, br.Results)
	assert.Empty(t, br.Errors)
}

func TestSubmit_ValidationRejectsBeforeDispatch(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantField string
		wantMsg   string
	}{
		{"missing login", Input{Credentials: types.Credentials{Password: "p"}, Keywords: "a"}, "credentials", msgMissingCredentials},
		{"missing password", Input{Credentials: types.Credentials{Login: "l"}, Keywords: "a"}, "credentials", msgMissingCredentials},
		{"credentials checked first", Input{Keywords: ""}, "credentials", msgMissingCredentials},
		{"no keywords", Input{Credentials: creds, Keywords: " ,\n , "}, "keywords", msgMissingKeywords},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &stubDispatcher{outcome: succeed}
			_, err := Submit(context.Background(), d, tt.in)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, tt.wantMsg, ve.Error())
			assert.Equal(t, 0, d.calls)
		})
	}
}

func TestSubmit_AllSucceed(t *testing.T) {
	d := &stubDispatcher{outcome: succeed}
	sub, err := Submit(context.Background(), d, Input{Credentials: creds, Keywords: "a, b\nc", LocationCode: 2840, LanguageCode: "en"})
	require.NoError(t, err)

	assert.Equal(t, 1, d.calls)
	assert.Equal(t, []string{"a", "b", "c"}, d.params.Keywords)
	assert.Equal(t, 2840, d.params.LocationCode)
	assert.Equal(t, "en", d.params.LanguageCode)
	assert.Equal(t, credentials.Encode(creds.Login, creds.Password), d.token)

	assert.Len(t, sub.Batch.Results, 3)
	assert.Empty(t, sub.Warnings())
}

func TestSubmit_PartialSuccessKeepsWarnings(t *testing.T) {
	d := &stubDispatcher{outcome: func(kw string) Outcome {
		if kw == "B" {
			return emptyResult(kw)
		}
		return succeed(kw)
	}}
	sub, err := Submit(context.Background(), d, Input{Credentials: creds, Keywords: "A\nB"})
	require.NoError(t, err)

	require.Len(t, sub.Batch.Results, 1)
	assert.Equal(t, "A", sub.Batch.Results[0].Keyword)
	assert.Equal(t, []string{`Keyword "B": no result found (Code: 0)`}, sub.Warnings())
}

func TestSubmit_AllFailJoinsMessages(t *testing.T) {
	d := &stubDispatcher{outcome: emptyResult}
	sub, err := Submit(context.Background(), d, Input{Credentials: creds, Keywords: "x,y"})

	var be *BatchError
	require.True(t, errors.As(err, &be))
	assert.Len(t, be.Messages, 2)
	assert.Equal(t, `Keyword "x": no result found (Code: 0) | Keyword "y": no result found (Code: 0)`, err.Error())
	assert.Empty(t, sub.Batch.Results)
}

func TestBatchError_NoMessages(t *testing.T) {
	assert.Equal(t, "No results found and no specific error returned.", (&BatchError{}).Error())
}
