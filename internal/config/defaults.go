package config

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"model":            "gpt-4o-mini",
		"base_url":         "https://api.openai.com/v1",
		"api_key":          "",
		"placement_mode":   "left",
		"placement_offset": 40.0,
		"min_x":            0.0,
		"min_y":            40.0,
		"viewport_x":       0.0,
		"viewport_y":       0.0,
		"verbose":          false,
	}
}
