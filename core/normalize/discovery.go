package normalize

import (
	"strings"

	"github.com/canvasmith/canvasmith/core/schema"
)

// DiscoverySpec normalizes a decoded payload into a schema.DiscoverySpec.
// Each bounded array keeps its first N entries; the session title falls back
// to a derivation from the user request.
func DiscoverySpec(decoded any) schema.DiscoverySpec {
	obj := asObject(decoded)
	n := noticeFrom(obj)

	meta := asObject(obj["meta"])
	userRequest := str(meta, "userRequest", "")
	title := trimmedStr(meta, "title", "")
	if title == "" {
		title = deriveTitle(userRequest)
	}

	frame := asObject(obj["problemFrame"])

	risks := make([]schema.Risk, 0)
	for _, entry := range arr(obj, "risks") {
		item := asObject(entry)
		if item == nil {
			continue
		}
		risks = append(risks, schema.Risk{
			Title:      str(item, "title", ""),
			Severity:   enum(item, "severity", schema.Severities, "medium"),
			Mitigation: str(item, "mitigation", ""),
		})
	}
	risks = capped(risks, schema.MaxRisks, "risks", &n)

	hypotheses := make([]schema.Hypothesis, 0)
	for _, entry := range arr(obj, "hypotheses") {
		item := asObject(entry)
		if item == nil {
			continue
		}
		hypotheses = append(hypotheses, schema.Hypothesis{
			Statement:  str(item, "statement", ""),
			Validation: str(item, "validation", ""),
		})
	}
	hypotheses = capped(hypotheses, schema.MaxHypotheses, "hypotheses", &n)

	decisions := make([]schema.Decision, 0)
	for _, entry := range arr(obj, "decisionLog") {
		item := asObject(entry)
		if item == nil {
			continue
		}
		decisions = append(decisions, schema.Decision{
			Decision:  str(item, "decision", ""),
			Rationale: str(item, "rationale", ""),
		})
	}
	decisions = capped(decisions, schema.MaxDecisionLog, "decisionLog", &n)

	tasks := make([]schema.AsyncTask, 0)
	for _, entry := range arr(obj, "asyncTasks") {
		item := asObject(entry)
		if item == nil {
			continue
		}
		tasks = append(tasks, schema.AsyncTask{
			Task:   str(item, "task", ""),
			Owner:  str(item, "owner", ""),
			Status: enum(item, "status", schema.TaskStatuses, "todo"),
		})
	}
	tasks = capped(tasks, schema.MaxAsyncTasks, "asyncTasks", &n)

	return schema.DiscoverySpec{
		Type:    "discoverySpec",
		Version: "v1",
		Meta: schema.DiscoveryMeta{
			Title:       title,
			UserRequest: userRequest,
		},
		ProblemFrame: schema.ProblemFrame{
			What:            str(frame, "what", ""),
			Who:             str(frame, "who", ""),
			Why:             str(frame, "why", ""),
			SuccessCriteria: stringItems(frame, "successCriteria"),
		},
		Risks:            risks,
		Hypotheses:       hypotheses,
		DecisionLog:      decisions,
		AsyncTasks:       tasks,
		TruncationNotice: n.text,
	}
}

// deriveTitle builds a session title from the raw user request: trimmed,
// truncated at schema.MaxDerivedTitleLen with an ellipsis marker. An empty
// request yields a fixed placeholder.
func deriveTitle(userRequest string) string {
	trimmed := strings.TrimSpace(userRequest)
	if trimmed == "" {
		return "Discovery session"
	}
	if len(trimmed) <= schema.MaxDerivedTitleLen {
		return trimmed
	}
	return trimmed[:schema.MaxDerivedTitleLen] + "..."
}
