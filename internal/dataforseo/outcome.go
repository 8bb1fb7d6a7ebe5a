// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataforseo

import (
	"fmt"

	"github.com/pdiddy/fanout-extractor/pkg/types"
)

// Outcome is the settled result of one keyword request: either a Success
// or a Failure. The interface is sealed; no other implementations exist.
type Outcome interface {
	// Keyword returns the keyword the request was issued for.
	Keyword() string
	isOutcome()
}

// Success carries the first task result returned for a keyword.
type Success struct {
	Result types.TaskResult
	kw     string
}

// NewSuccess returns a Success for keyword.
func NewSuccess(keyword string, result types.TaskResult) Success {
	return Success{Result: result, kw: keyword}
}

func (s Success) Keyword() string { return s.kw }
func (Success) isOutcome() {}

// FailureKind identifies which layer a per-keyword failure came from.
type FailureKind int

const (
	// TransportError is a network failure, a non-2xx status, or an
	// unreadable body.
	TransportError FailureKind = iota + 1
	// EnvelopeError is a non-20000 status_code on the response envelope.
	EnvelopeError
	// TaskError is a missing task, a failed task, or an empty task result.
	TaskError
)

func (k FailureKind) String() string {
	switch k {
	case TransportError:
		return "transport"
	case EnvelopeError:
		return "envelope"
	case TaskError:
		return "task"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure carries the keyword and the message describing why it failed.
type Failure struct {
	Kind    FailureKind
	Message string
	kw      string
}

// NewFailure returns a Failure for keyword.
func NewFailure(keyword string, kind FailureKind, message string) Failure {
	return Failure{Kind: kind, Message: message, kw: keyword}
}

func (f Failure) Keyword() string { return f.kw }
func (Failure) isOutcome() {}

// String formats the failure the way it is reported to users.
func (f Failure) String() string {
	return fmt.Sprintf("Keyword \"%s\": %s", f.kw, f.Message)
}
