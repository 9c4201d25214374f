package validate

import (
	"math"
	"strings"

	"github.com/canvasmith/canvasmith/core/schema"
)

// Validate checks decoded against the schema identified by kind and returns
// the accumulated diagnostics. The decoded value is read-only; Validate never
// mutates it and never panics, whatever shape it has.
func Validate(decoded any, kind schema.Kind) Result {
	var res Result

	obj, ok := asObject(decoded)
	if !ok {
		res.errorf("payload must be a JSON object, got %s", jsonTypeName(decoded))
		return res
	}

	if typ, version, required := kind.Discriminant(); required {
		checkDiscriminant(&res, obj, typ, version)
	}

	switch kind {
	case schema.KindScorecard:
		validateScorecard(&res, obj)
	case schema.KindDeceptiveReport:
		validateDeceptiveReport(&res, obj)
	case schema.KindDesignSpecV1:
		validateDesignSpec(&res, obj)
	case schema.KindDiscoverySpecV1:
		validateDiscoverySpec(&res, obj)
	case schema.KindContentTableV1:
		validateContentTable(&res, obj)
	default:
		res.errorf("unsupported schema kind %s", kind)
	}

	return res
}

func checkDiscriminant(res *Result, obj map[string]any, typ, version string) {
	if got, ok := stringField(obj, "type"); !ok || got != typ {
		res.errorf("type must be the literal %q", typ)
	}
	if got, ok := stringField(obj, "version"); !ok || got != version {
		res.errorf("version must be the literal %q", version)
	}
}

// warnUnknownKeys reports top-level keys outside the known set. Unknown keys
// are warnings, never errors: schemas grow additively and an older validator
// must not reject a newer payload.
func warnUnknownKeys(res *Result, obj map[string]any, known ...string) {
	for key := range obj {
		if !schema.InSet(key, known) {
			res.warnf("unknown field %q ignored", key)
		}
	}
}

func warnCeiling(res *Result, path string, length, ceiling int) {
	if ceiling > 0 && length > ceiling {
		res.warnf("%s has %d entries, exceeding the maximum of %d; extra entries will be truncated", path, length, ceiling)
	}
}

// checkEnum reports a field whose value falls outside a closed set, naming the
// allowed values. An absent field is not reported here; defaults are the
// normalizer's job.
func checkEnum(res *Result, obj map[string]any, path, field string, allowed []string) {
	raw, present := obj[field]
	if !present {
		return
	}
	s, ok := raw.(string)
	if !ok || !schema.InSet(s, allowed) {
		res.errorf("%s must be one of %s", joinPath(path, field), strings.Join(allowed, "|"))
	}
}

func requireString(res *Result, obj map[string]any, path, field string) (string, bool) {
	s, ok := stringField(obj, field)
	if !ok || strings.TrimSpace(s) == "" {
		res.errorf("%s is missing or invalid", joinPath(path, field))
		return "", false
	}
	return s, true
}

// --- decoded-tree accessors ---

func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

func objectField(obj map[string]any, field string) (map[string]any, bool) {
	nested, ok := obj[field].(map[string]any)
	return nested, ok
}

func arrayField(obj map[string]any, field string) ([]any, bool) {
	arr, ok := obj[field].([]any)
	return arr, ok
}

func stringField(obj map[string]any, field string) (string, bool) {
	s, ok := obj[field].(string)
	return s, ok
}

func numberField(obj map[string]any, field string) (float64, bool) {
	n, ok := obj[field].(float64)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return "unknown"
	}
}

func joinPath(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}
