// Package ai defines the model transport collaborator: the minimal chat
// interface the repair orchestrator re-prompts through. The openai subpackage
// implements it against any OpenAI-compatible chat completions endpoint.
package ai
