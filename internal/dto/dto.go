package dto

// stringField extracts a string-valued document field; anything else (absent,
// nil, or a non-string leftover) comes back empty and is dropped from the
// response by omitempty.
func stringField(fields map[string]any, name string) string {
	value, ok := fields[name].(string)
	if !ok {
		return ""
	}
	return value
}
