package common

// GetUserFromArgs extracts the user identifier from request arguments.
// Returns an empty string when no user_id argument is present.
func GetUserFromArgs(args map[string]interface{}) string {
	if userID, ok := args["user_id"].(string); ok {
		return userID
	}
	return ""
}

// GetStringArg extracts an optional string argument, returning the fallback
// when the argument is missing or empty.
func GetStringArg(args map[string]interface{}, key, fallback string) string {
	if val, ok := args[key].(string); ok && val != "" {
		return val
	}
	return fallback
}
