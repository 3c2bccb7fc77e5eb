package common

// StringArg extracts a string argument, returning the empty string
// when absent or of the wrong type.
func StringArg(args map[string]interface{}, key string) string {
	if value, ok := args[key].(string); ok {
		return value
	}
	return ""
}

// BoolArg extracts a boolean argument, returning fallback when absent
// or of the wrong type.
func BoolArg(args map[string]interface{}, key string, fallback bool) bool {
	if value, ok := args[key].(bool); ok {
		return value
	}
	return fallback
}

// IntArg extracts an integer argument. JSON numbers decode as
// float64, so both representations are accepted.
func IntArg(args map[string]interface{}, key string, fallback int) int {
	switch value := args[key].(type) {
	case float64:
		return int(value)
	case int:
		return value
	default:
		return fallback
	}
}
