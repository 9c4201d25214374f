package validate

import "github.com/canvasmith/canvasmith/core/schema"

// validateDiscoverySpec checks a discoverySpec/v1 payload. The problem frame
// is the only hard requirement; every bounded array warns past its ceiling
// and every item failure carries its index.
func validateDiscoverySpec(res *Result, obj map[string]any) {
	warnUnknownKeys(res, obj, "type", "version", "meta", "problemFrame",
		"risks", "hypotheses", "decisionLog", "asyncTasks")

	if meta, ok := objectField(obj, "meta"); ok {
		if raw, present := meta["title"]; present {
			if _, ok := raw.(string); !ok {
				res.warnf("meta.title is not a string and will be derived from meta.userRequest")
			}
		}
	} else {
		res.warnf("meta is missing; the session title will be a placeholder")
	}

	frame, ok := objectField(obj, "problemFrame")
	if !ok {
		res.errorf("problemFrame is missing or invalid")
	} else {
		requireString(res, frame, "problemFrame", "what")
		requireString(res, frame, "problemFrame", "who")
		requireString(res, frame, "problemFrame", "why")
	}

	validateItems(res, obj, "risks", schema.MaxRisks, func(path string, item map[string]any) {
		requireString(res, item, path, "title")
		checkEnum(res, item, path, "severity", schema.Severities)
	})
	validateItems(res, obj, "hypotheses", schema.MaxHypotheses, func(path string, item map[string]any) {
		requireString(res, item, path, "statement")
	})
	validateItems(res, obj, "decisionLog", schema.MaxDecisionLog, func(path string, item map[string]any) {
		requireString(res, item, path, "decision")
	})
	validateItems(res, obj, "asyncTasks", schema.MaxAsyncTasks, func(path string, item map[string]any) {
		requireString(res, item, path, "task")
		checkEnum(res, item, path, "status", schema.TaskStatuses)
	})
}

// validateItems applies check to every object item of an optional bounded
// array. Non-object items are reported in place; the walk never aborts.
func validateItems(res *Result, obj map[string]any, field string, ceiling int, check func(path string, item map[string]any)) {
	raw, present := obj[field]
	if !present {
		return
	}
	arr, ok := raw.([]any)
	if !ok {
		res.errorf("%s must be an array", field)
		return
	}
	warnCeiling(res, field, len(arr), ceiling)

	for i, entry := range arr {
		item, ok := entry.(map[string]any)
		if !ok {
			res.errorf("%s must be an object", indexedPath(field, i))
			continue
		}
		check(indexedPath(field, i), item)
	}
}
