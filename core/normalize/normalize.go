package normalize

import (
	"fmt"
	"strings"

	"github.com/canvasmith/canvasmith/core/schema"
)

// Normalize dispatches to the kind-specific normalizer and returns the
// concrete spec struct as any. Callers that know the kind statically should
// prefer the typed functions ([Scorecard], [DesignSpec], ...).
func Normalize(decoded any, kind schema.Kind) any {
	switch kind {
	case schema.KindScorecard:
		return Scorecard(decoded)
	case schema.KindDeceptiveReport:
		return DeceptiveReport(decoded)
	case schema.KindDesignSpecV1:
		return DesignSpec(decoded)
	case schema.KindDiscoverySpecV1:
		return DiscoverySpec(decoded)
	case schema.KindContentTableV1:
		return ContentTable(decoded)
	default:
		return nil
	}
}

// notice tracks the single truncation notice per spec. The first truncation
// wins; a notice already present in the input (from a previous normalization
// pass) is preserved untouched.
type notice struct {
	text string
}

func noticeFrom(obj map[string]any) notice {
	if obj == nil {
		return notice{}
	}
	if existing, ok := obj["truncationNotice"].(string); ok {
		return notice{text: existing}
	}
	return notice{}
}

func (n *notice) set(field string, kept, total int) {
	if n.text != "" {
		return
	}
	n.text = fmt.Sprintf("Showing the first %d of %d %s entries.", kept, total, field)
}

// --- decoded-tree accessors, nil-safe ---

func asObject(v any) map[string]any {
	obj, _ := v.(map[string]any)
	return obj
}

func str(obj map[string]any, field, fallback string) string {
	if s, ok := obj[field].(string); ok {
		return s
	}
	return fallback
}

func trimmedStr(obj map[string]any, field, fallback string) string {
	if s, ok := obj[field].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func num(obj map[string]any, field string, fallback float64) float64 {
	if n, ok := obj[field].(float64); ok {
		return n
	}
	return fallback
}

func arr(obj map[string]any, field string) []any {
	a, _ := obj[field].([]any)
	return a
}

func enum(obj map[string]any, field string, allowed []string, fallback string) string {
	if s, ok := obj[field].(string); ok && schema.InSet(s, allowed) {
		return s
	}
	return fallback
}

// stringItems extracts the string members of a decoded array, dropping
// anything else. A missing array yields an empty (non-nil) slice.
func stringItems(obj map[string]any, field string) []string {
	raw := arr(obj, field)
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// capped truncates items to ceiling, keeping the first entries in their
// original order, and records the truncation on n. A ceiling of zero means
// unbounded.
func capped[T any](items []T, ceiling int, field string, n *notice) []T {
	if ceiling <= 0 || len(items) <= ceiling {
		return items
	}
	n.set(field, ceiling, len(items))
	return items[:ceiling]
}
