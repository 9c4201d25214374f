package schema

// Array ceilings per kind. Exceeding a ceiling is a warning at validation time
// and a stable first-N truncation at normalization time; it is never a
// rejection. Scorecard and ContentTableV1 arrays have no ceiling.
const (
	MaxScreens     = 5
	MaxRisks       = 12
	MaxHypotheses  = 12
	MaxDecisionLog = 20
	MaxAsyncTasks  = 6
)

// Score bounds for the Scorecard kind, inclusive.
const (
	MinScore = 0
	MaxScore = 100
)

// MaxDerivedTitleLen caps titles derived from a discovery user request.
const MaxDerivedTitleLen = 48

// Severities is the closed set accepted for risk and deceptive-pattern
// severity fields.
var Severities = []string{"low", "medium", "high"}

// Fidelities is the closed set accepted for the design-spec fidelity field.
var Fidelities = []string{"low", "medium", "high"}

// DeviceKinds is the closed set accepted for the design-spec device field.
var DeviceKinds = []string{"mobile", "tablet", "desktop"}

// ButtonVariants is the closed set accepted for button block variants.
var ButtonVariants = []string{"primary", "secondary", "ghost"}

// TaskStatuses is the closed set accepted for async task status fields.
var TaskStatuses = []string{"todo", "doing", "done"}

// DeviceSize returns the default canvas dimensions for a device kind.
// Unrecognized kinds get the mobile default.
func DeviceSize(device string) (width, height float64) {
	switch device {
	case "tablet":
		return 768, 1024
	case "desktop":
		return 1920, 1080
	default:
		return 375, 812
	}
}

// InSet reports whether v is one of the allowed values.
func InSet(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
