// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataforseo

import (
	"encoding/json"
	"fmt"

	"github.com/pdiddy/fanout-extractor/internal/httputil"
)

// defaultTaskMessage is reported when a task carries no status message.
const defaultTaskMessage = "no result found"

// Classify turns one settled call into an Outcome. Checks run in order:
// transport error, HTTP status, body decode, envelope status, task status
// and result. Status codes are copied into messages as received.
func Classify(keyword string, resp httputil.Response, err error) Outcome {
	if err != nil {
		return NewFailure(keyword, TransportError, err.Error())
	}
	if !resp.OK() {
		return NewFailure(keyword, TransportError, fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.Body))
	}

	var env envelope
	if err := json.Unmarshal(resp.Body, &env); err != nil {
		return NewFailure(keyword, TransportError, fmt.Sprintf("decoding response: %v", err))
	}

	if env.StatusCode != statusOK {
		return NewFailure(keyword, EnvelopeError, fmt.Sprintf("%s (Code: %d)", env.StatusMessage, env.StatusCode))
	}

	var t *task
	if len(env.Tasks) > 0 {
		t = env.Tasks[0]
	}
	if t == nil || len(t.Result) == 0 || t.Result[0] == nil {
		msg, code := defaultTaskMessage, 0
		if t != nil {
			if t.StatusMessage != "" {
				msg = t.StatusMessage
			}
			code = t.StatusCode
		}
		return NewFailure(keyword, TaskError, fmt.Sprintf("%s (Code: %d)", msg, code))
	}

	return NewSuccess(keyword, *t.Result[0])
}
