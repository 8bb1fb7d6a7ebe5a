// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP helpers used by API clients.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes bounds how much of a response body PostJSON reads. Longer
// bodies are truncated, which only matters for error text.
var MaxBodyBytes int64 = 32 << 20

// Response is the settled result of one request: the status code and the
// body read in full.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the status code is 2xx.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// PostJSON marshals payload, POSTs it to url with the given headers plus
// Content-Type: application/json, and returns the status and body. Only
// transport failures (marshal, request build, network, body read) are
// returned as errors; a non-2xx status is a normal Response. The request
// is sent once.
func PostJSON(ctx context.Context, client *http.Client, url string, header http.Header, payload any) (Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return Response{}, fmt.Errorf("creating request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return Response{StatusCode: resp.StatusCode}, fmt.Errorf("reading response body: %w", err)
	}
	// Drain whatever the limit left so the connection can be reused.
	io.Copy(io.Discard, resp.Body)

	return Response{StatusCode: resp.StatusCode, Body: body}, nil
}
