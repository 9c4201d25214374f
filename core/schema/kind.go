package schema

import "fmt"

// Kind identifies one of the supported artifact schemas.
type Kind int

const (
	KindScorecard Kind = iota
	KindDeceptiveReport
	KindDesignSpecV1
	KindDiscoverySpecV1
	KindContentTableV1
)

// String returns the canonical name of the kind, matching the CLI surface.
func (k Kind) String() string {
	switch k {
	case KindScorecard:
		return "scorecard"
	case KindDeceptiveReport:
		return "deceptiveReport"
	case KindDesignSpecV1:
		return "designSpecV1"
	case KindDiscoverySpecV1:
		return "discoverySpecV1"
	case KindContentTableV1:
		return "contentTableV1"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts a canonical kind name back into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "scorecard":
		return KindScorecard, nil
	case "deceptiveReport":
		return KindDeceptiveReport, nil
	case "designSpecV1":
		return KindDesignSpecV1, nil
	case "discoverySpecV1":
		return KindDiscoverySpecV1, nil
	case "contentTableV1":
		return KindContentTableV1, nil
	default:
		return 0, fmt.Errorf("unknown schema kind %q", s)
	}
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindScorecard,
		KindDeceptiveReport,
		KindDesignSpecV1,
		KindDiscoverySpecV1,
		KindContentTableV1,
	}
}

// Discriminant returns the required top-level "type" and "version" literals for
// kinds that carry them. Scorecard and DeceptiveReport payloads are plain model
// responses with no envelope, so ok is false for those.
func (k Kind) Discriminant() (typ, version string, ok bool) {
	switch k {
	case KindDesignSpecV1:
		return "designSpec", "v1", true
	case KindDiscoverySpecV1:
		return "discoverySpec", "v1", true
	case KindContentTableV1:
		return "contentTable", "v1", true
	default:
		return "", "", false
	}
}
