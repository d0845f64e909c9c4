package mcptools

import (
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
)

func toRecordResult(r mood.Record) RecordResult {
	return RecordResult{
		Emoji:       r.Mood.Emoji,
		Description: r.Mood.Description,
		Timestamp:   r.Timestamp,
		Time:        r.Time().Format(time.RFC3339),
	}
}
