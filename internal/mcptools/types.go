package mcptools

// MoodResult is a catalog entry.
type MoodResult struct {
	Index       int    `json:"index"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// RecordResult is a recorded mood.
type RecordResult struct {
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	Timestamp   int64  `json:"timestamp"`
	Time        string `json:"time"`
}

// ListMoodsInput is the input schema for the list_moods MCP tool.
type ListMoodsInput struct{}

// ListMoodsOutput is the output schema for the list_moods MCP tool.
type ListMoodsOutput struct {
	Moods []MoodResult `json:"moods"`
}

// GetHistoryInput is the input schema for the get_history MCP tool.
type GetHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema-description:"Return only the most recent N records (0 for all)"`
}

// GetHistoryOutput is the output schema for the get_history MCP tool.
type GetHistoryOutput struct {
	Records []RecordResult `json:"records"`
	Total   int            `json:"total"`
}

// RecordMoodInput is the input schema for the record_mood MCP tool.
type RecordMoodInput struct {
	Mood string `json:"mood" jsonschema-description:"Mood emoji or description, e.g. happy"`
}

// RecordMoodOutput is the output schema for the record_mood MCP tool.
type RecordMoodOutput struct {
	Record RecordResult `json:"record"`
}
