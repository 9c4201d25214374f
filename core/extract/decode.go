package extract

import (
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// Decode parses a candidate JSON string into a generic value tree
// (map[string]any / []any / scalars). If strict unmarshaling fails the
// candidate is repaired with jsonrepair and the unmarshal retried, so mildly
// malformed output (single quotes, trailing commas, unquoted keys) still
// decodes.
func Decode(candidate string) (any, error) {
	var decoded any
	err := json.Unmarshal([]byte(candidate), &decoded)
	if err == nil {
		return decoded, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(candidate)
	if repairErr != nil {
		return nil, fmt.Errorf("failed to decode candidate JSON: unmarshal error: %w, repair error: %v", err, repairErr)
	}

	if err := json.Unmarshal([]byte(repaired), &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode repaired JSON: %w", err)
	}
	return decoded, nil
}
