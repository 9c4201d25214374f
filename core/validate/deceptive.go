package validate

import (
	"fmt"

	"github.com/canvasmith/canvasmith/core/schema"
)

// validateDeceptiveReport checks a dark-pattern report: at least one pattern
// entry, each naming the pattern and optionally scoring its severity.
func validateDeceptiveReport(res *Result, obj map[string]any) {
	warnUnknownKeys(res, obj, "summary", "patterns")

	patterns, ok := arrayField(obj, "patterns")
	if !ok {
		res.errorf("patterns is missing or invalid")
		return
	}
	if len(patterns) == 0 {
		res.errorf("patterns must contain at least one entry")
	}

	for i, raw := range patterns {
		item, ok := raw.(map[string]any)
		if !ok {
			res.errorf("patterns[%d] must be an object", i)
			continue
		}
		path := indexedPath("patterns", i)
		requireString(res, item, path, "name")
		checkEnum(res, item, path, "severity", schema.Severities)
	}
}

func indexedPath(field string, i int) string {
	return fmt.Sprintf("%s[%d]", field, i)
}
