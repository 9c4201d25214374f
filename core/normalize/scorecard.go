package normalize

import "github.com/canvasmith/canvasmith/core/schema"

// Scorecard normalizes a decoded payload into a schema.Scorecard. The score is
// clamped into the valid range so a wild value still renders on the gauge;
// validation is where out-of-range scores get reported.
func Scorecard(decoded any) schema.Scorecard {
	obj := asObject(decoded)
	n := noticeFrom(obj)

	score := num(obj, "score", 0)
	if score < schema.MinScore {
		score = schema.MinScore
	}
	if score > schema.MaxScore {
		score = schema.MaxScore
	}

	return schema.Scorecard{
		Score:            score,
		Summary:          str(obj, "summary", ""),
		Wins:             stringItems(obj, "wins"),
		Fixes:            stringItems(obj, "fixes"),
		TruncationNotice: n.text,
	}
}
