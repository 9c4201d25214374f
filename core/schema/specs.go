package schema

// The structs below are the normalizer's output shapes. Every field is
// populated after normalization; bounded slices respect the ceilings in
// limits.go. TruncationNotice is set at most once per spec, by whichever
// truncation fired first.

// Scorecard grades a piece of work on a 0-100 scale with headline wins and
// suggested fixes.
type Scorecard struct {
	Score            float64  `json:"score"`
	Summary          string   `json:"summary"`
	Wins             []string `json:"wins"`
	Fixes            []string `json:"fixes"`
	TruncationNotice string   `json:"truncationNotice,omitempty"`
}

// DeceptivePattern is a single dark-pattern finding.
type DeceptivePattern struct {
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Evidence string `json:"evidence"`
}

// DeceptiveReport lists deceptive design patterns found in a reviewed surface.
type DeceptiveReport struct {
	Summary          string             `json:"summary"`
	Patterns         []DeceptivePattern `json:"patterns"`
	TruncationNotice string             `json:"truncationNotice,omitempty"`
}

// Block is one renderable element inside a design screen. Exactly the fields
// relevant to its Type are meaningful; the rest stay zero.
type Block struct {
	Type        string `json:"type"`
	Text        string `json:"text,omitempty"`
	Level       int    `json:"level,omitempty"`
	Label       string `json:"label,omitempty"`
	Variant     string `json:"variant,omitempty"`
	Alt         string `json:"alt,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Screen is one device-sized frame of a design spec.
type Screen struct {
	Name   string  `json:"name"`
	Device string  `json:"device"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Blocks []Block `json:"blocks"`
}

// DesignSpec is the normalized designSpec/v1 artifact.
type DesignSpec struct {
	Type             string   `json:"type"`
	Version          string   `json:"version"`
	Title            string   `json:"title"`
	Fidelity         string   `json:"fidelity"`
	Screens          []Screen `json:"screens"`
	TruncationNotice string   `json:"truncationNotice,omitempty"`
}

// DiscoveryMeta holds the session title and the raw user request it was
// derived from.
type DiscoveryMeta struct {
	Title       string `json:"title"`
	UserRequest string `json:"userRequest"`
}

// ProblemFrame captures the what/who/why of a discovery session.
type ProblemFrame struct {
	What            string   `json:"what"`
	Who             string   `json:"who"`
	Why             string   `json:"why"`
	SuccessCriteria []string `json:"successCriteria"`
}

// Risk is one identified project risk.
type Risk struct {
	Title      string `json:"title"`
	Severity   string `json:"severity"`
	Mitigation string `json:"mitigation"`
}

// Hypothesis is one testable assumption.
type Hypothesis struct {
	Statement  string `json:"statement"`
	Validation string `json:"validation"`
}

// Decision is one decision-log entry.
type Decision struct {
	Decision  string `json:"decision"`
	Rationale string `json:"rationale"`
}

// AsyncTask is one follow-up task spawned by the session.
type AsyncTask struct {
	Task   string `json:"task"`
	Owner  string `json:"owner"`
	Status string `json:"status"`
}

// DiscoverySpec is the normalized discoverySpec/v1 artifact.
type DiscoverySpec struct {
	Type             string       `json:"type"`
	Version          string       `json:"version"`
	Meta             DiscoveryMeta `json:"meta"`
	ProblemFrame     ProblemFrame `json:"problemFrame"`
	Risks            []Risk       `json:"risks"`
	Hypotheses       []Hypothesis `json:"hypotheses"`
	DecisionLog      []Decision   `json:"decisionLog"`
	AsyncTasks       []AsyncTask  `json:"asyncTasks"`
	TruncationNotice string       `json:"truncationNotice,omitempty"`
}

// ContentTable is the normalized contentTable/v1 artifact. Every row has
// exactly len(Columns) cells after normalization.
type ContentTable struct {
	Type             string     `json:"type"`
	Version          string     `json:"version"`
	Title            string     `json:"title"`
	Columns          []string   `json:"columns"`
	Rows             [][]string `json:"rows"`
	TruncationNotice string     `json:"truncationNotice,omitempty"`
}
