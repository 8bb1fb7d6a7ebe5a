// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataforseo

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fanout-extractor/internal/httputil"
)

const sampleSuccessJSON = `{
  "version": "0.1.20250101",
  "status_code": 20000,
  "status_message": "Ok.",
  "time": "7.1 sec.",
  "cost": 0.0032,
  "tasks_count": 1,
  "tasks_error": 0,
  "tasks": [
    {
      "id": "01011234-5678-0066-0000-abcdef012345",
      "status_code": 20000,
      "status_message": "Ok.",
      "result_count": 1,
      "path": ["v3", "ai_optimization", "chat_gpt", "llm_scraper", "live", "advanced"],
      "result": [
        {
          "keyword": "seo services",
          "location_code": 2032,
          "language_code": "es-419",
          "fan_out_queries": ["best seo services argentina", "seo agency pricing"],
          "brand_entities": [{"type": "brand_entity", "title": "Acme SEO", "category": "Agency"}],
          "search_results": [{"type": "search_result", "url": "https://a.example", "domain": "a.example", "title": "A"}],
          "sources": [{"type": "source", "title": "", "url": "https://b.example", "domain": "b.example", "source_name": "B News"}],
          "items": [{"type": "chat_gpt_text", "rank_group": 1, "rank_absolute": 1, "markdown": "Here are some options."}]
        }
      ]
    }
  ]
}`

func ok(body string) httputil.Response {
	return httputil.Response{StatusCode: http.StatusOK, Body: []byte(body)}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		resp     httputil.Response
		err      error
		wantKind FailureKind
		wantMsg  string
	}{
		{
			name:     "transport error",
			err:      errors.New("dial tcp: connection refused"),
			wantKind: TransportError,
			wantMsg:  "dial tcp: connection refused",
		},
		{
			name:     "transport error wins over body",
			resp:     ok(sampleSuccessJSON),
			err:      errors.New("boom"),
			wantKind: TransportError,
			wantMsg:  "boom",
		},
		{
			name:     "non-2xx status",
			resp:     httputil.Response{StatusCode: http.StatusUnauthorized, Body: []byte(`{"status_code":40100}`)},
			wantKind: TransportError,
			wantMsg:  `HTTP 401: {"status_code":40100}`,
		},
		{
			name:     "undecodable body",
			resp:     ok("<html>"),
			wantKind: TransportError,
			wantMsg:  "decoding response: invalid character '<' looking for beginning of value",
		},
		{
			name:     "envelope error",
			resp:     ok(`{"status_code": 40200, "status_message": "Payment Required.", "tasks": []}`),
			wantKind: EnvelopeError,
			wantMsg:  "Payment Required. (Code: 40200)",
		},
		{
			name:     "envelope error wins over task result",
			resp:     ok(`{"status_code": 50000, "status_message": "Internal Error.", "tasks": [{"status_code": 20000, "result": [{"keyword": "x"}]}]}`),
			wantKind: EnvelopeError,
			wantMsg:  "Internal Error. (Code: 50000)",
		},
		{
			name:     "task not found inside 200",
			resp:     ok(`{"status_code": 20000, "tasks": [{"status_code": 40401, "status_message": "Task Not Found.", "result": null}]}`),
			wantKind: TaskError,
			wantMsg:  "Task Not Found. (Code: 40401)",
		},
		{
			name:     "empty result without task message",
			resp:     ok(`{"status_code": 20000, "tasks": [{"result": []}]}`),
			wantKind: TaskError,
			wantMsg:  "no result found (Code: 0)",
		},
		{
			name:     "no tasks",
			resp:     ok(`{"status_code": 20000, "tasks": []}`),
			wantKind: TaskError,
			wantMsg:  "no result found (Code: 0)",
		},
		{
			name:     "null task",
			resp:     ok(`{"status_code": 20000, "tasks": [null]}`),
			wantKind: TaskError,
			wantMsg:  "no result found (Code: 0)",
		},
		{
			name:     "null first result",
			resp:     ok(`{"status_code": 20000, "tasks": [{"status_code": 20000, "status_message": "Ok.", "result": [null]}]}`),
			wantKind: TaskError,
			wantMsg:  "Ok. (Code: 20000)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Classify("kw", tt.resp, tt.err)
			f, isFailure := out.(Failure)
			require.True(t, isFailure, "expected Failure, got %T", out)
			assert.Equal(t, "kw", f.Keyword())
			assert.Equal(t, tt.wantKind, f.Kind)
			assert.Equal(t, tt.wantMsg, f.Message)
		})
	}
}

func TestClassify_SuccessTakesFirstResult(t *testing.T) {
	out := Classify("seo services", ok(sampleSuccessJSON), nil)
	s, isSuccess := out.(Success)
	require.True(t, isSuccess, "expected Success, got %T", out)

	assert.Equal(t, "seo services", s.Keyword())
	assert.Equal(t, "seo services", s.Result.Keyword)
	assert.Equal(t, 2032, s.Result.LocationCode)
	assert.Equal(t, "es-419", s.Result.LanguageCode)
	assert.Equal(t, []string{"best seo services argentina", "seo agency pricing"}, s.Result.FanOutQueries)
	require.Len(t, s.Result.Items, 1)
	assert.Equal(t, "Here are some options.", s.Result.Items[0].Markdown)
	require.Len(t, s.Result.Sources, 1)
	assert.Equal(t, "B News", s.Result.Sources[0].SourceName)
}

func TestFailureString(t *testing.T) {
	f := NewFailure(`Café "Rio"`, TaskError, "no result found (Code: 0)")
	assert.Equal(t, `Keyword "Café "Rio"": no result found (Code: 0)`, f.String())
	assert.Equal(t, "task", f.Kind.String())
}
