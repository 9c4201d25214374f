package normalize

import "github.com/canvasmith/canvasmith/core/schema"

// DeceptiveReport normalizes a decoded payload into a schema.DeceptiveReport.
// A missing or empty pattern list is populated with a single placeholder so
// the artifact always has something to render.
func DeceptiveReport(decoded any) schema.DeceptiveReport {
	obj := asObject(decoded)
	n := noticeFrom(obj)

	raw := arr(obj, "patterns")
	patterns := make([]schema.DeceptivePattern, 0, len(raw))
	for _, entry := range raw {
		item := asObject(entry)
		if item == nil {
			continue
		}
		patterns = append(patterns, schema.DeceptivePattern{
			Name:     trimmedStr(item, "name", "Unnamed pattern"),
			Severity: enum(item, "severity", schema.Severities, "medium"),
			Evidence: str(item, "evidence", ""),
		})
	}
	if len(patterns) == 0 {
		patterns = append(patterns, schema.DeceptivePattern{
			Name:     "No patterns identified",
			Severity: "low",
			Evidence: "",
		})
	}

	return schema.DeceptiveReport{
		Summary:          str(obj, "summary", ""),
		Patterns:         patterns,
		TruncationNotice: n.text,
	}
}
