package validate

import "github.com/canvasmith/canvasmith/core/schema"

// validateScorecard checks the scorecard payload: a numeric score in
// [MinScore, MaxScore] plus optional summary, wins and fixes. Scorecards are
// raw model responses and carry no type/version envelope.
func validateScorecard(res *Result, obj map[string]any) {
	warnUnknownKeys(res, obj, "score", "summary", "wins", "fixes")

	score, ok := numberField(obj, "score")
	if !ok {
		res.errorf("score is missing or invalid")
	} else if score < schema.MinScore || score > schema.MaxScore {
		res.errorf("score must be between %d and %d, got %v", schema.MinScore, schema.MaxScore, score)
	}

	if raw, present := obj["summary"]; present {
		if _, ok := raw.(string); !ok {
			res.warnf("summary is not a string and will be defaulted")
		}
	}

	checkStringArray(res, obj, "wins")
	checkStringArray(res, obj, "fixes")
}

// checkStringArray reports non-array fields and non-string items without
// aborting on the first bad item.
func checkStringArray(res *Result, obj map[string]any, field string) {
	raw, present := obj[field]
	if !present {
		return
	}
	arr, ok := raw.([]any)
	if !ok {
		res.errorf("%s must be an array of strings", field)
		return
	}
	for i, item := range arr {
		if _, ok := item.(string); !ok {
			res.errorf("%s[%d] must be a string", field, i)
		}
	}
}
