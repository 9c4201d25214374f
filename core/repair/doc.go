// Package repair coerces a non-conformant scorecard response into schema-valid
// JSON with a single re-prompt. The orchestrator is a three-state machine:
// the initial extraction/validation attempt, one repair round through the
// model transport, then terminal. There is no second repair attempt; unbounded
// retries are rejected to bound latency and cost, and callers that see
// [ErrRepairFailed] fall back to rendering the response as unstructured text.
package repair
