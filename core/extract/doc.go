// Package extract recovers a single candidate JSON object from arbitrary model
// output. Language models frequently wrap JSON in narrative prose, markdown
// code fences, or trailing commentary, so extraction tries a whole-text parse
// first, then the contents of a fenced code block, then a string-aware brace
// walk, before giving up.
//
// Extraction is a pure function of its input. Decoding the resulting candidate
// into a JSON value tree is a separate step, [Decode], which tolerates mildly
// malformed JSON by repairing it and retrying.
package extract
