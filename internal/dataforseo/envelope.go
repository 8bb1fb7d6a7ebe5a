// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataforseo

import "github.com/pdiddy/fanout-extractor/pkg/types"

// statusOK is the envelope status_code DataForSEO uses for success.
const statusOK = 20000

// taskRequest is one element of the POST body array.
type taskRequest struct {
	Keyword        string `json:"keyword"`
	LocationCode   int    `json:"location_code"`
	LanguageCode   string `json:"language_code"`
	ForceWebSearch bool   `json:"force_web_search"`
}

// DataForSEO response envelope.
type envelope struct {
	Version       string  `json:"version"`
	StatusCode    int     `json:"status_code"`
	StatusMessage string  `json:"status_message"`
	Time          string  `json:"time"`
	Cost          float64 `json:"cost"`
	TasksCount    int     `json:"tasks_count"`
	TasksError    int     `json:"tasks_error"`
	Tasks         []*task `json:"tasks"`
}

type task struct {
	ID            string              `json:"id"`
	StatusCode    int                 `json:"status_code"`
	StatusMessage string              `json:"status_message"`
	Time          string              `json:"time"`
	Cost          float64             `json:"cost"`
	ResultCount   int                 `json:"result_count"`
	Path          []string            `json:"path"`
	Result        []*types.TaskResult `json:"result"`
}
