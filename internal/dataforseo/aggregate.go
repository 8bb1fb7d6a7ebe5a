// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataforseo

import "github.com/pdiddy/fanout-extractor/pkg/types"

// Aggregate partitions outcomes into task results and keyword-prefixed
// error messages, keeping the order of outcomes in each.
func Aggregate(outcomes []Outcome) types.BatchResult {
	var br types.BatchResult
	for _, o := range outcomes {
		switch o := o.(type) {
		case Success:
			br.Results = append(br.Results, o.Result)
		case Failure:
			br.Errors = append(br.Errors, o.String())
		}
	}
	return br
}
