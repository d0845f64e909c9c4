package mood

import (
	"fmt"
	"strings"
	"time"
)

// Option is a single entry of the mood palette.
type Option struct {
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// String returns the emoji followed by its description.
func (o Option) String() string {
	return o.Emoji + " " + o.Description
}

// Record is a confirmed mood paired with the confirmation time.
type Record struct {
	Mood      Option `json:"mood"`
	Timestamp int64  `json:"timestamp"` // milliseconds since epoch, UTC
}

// NewRecord stamps option with now.
func NewRecord(option Option, now time.Time) Record {
	return Record{Mood: option, Timestamp: now.UnixMilli()}
}

// Time returns the record timestamp as a time.Time in UTC.
func (r Record) Time() time.Time {
	return time.UnixMilli(r.Timestamp).UTC()
}

// History is the chronological list of recorded moods.
type History []Record

// Append returns a new history with r added at the end. The receiver's
// backing array is never written to, so earlier snapshots stay valid.
func (h History) Append(r Record) History {
	next := make(History, len(h), len(h)+1)
	copy(next, h)
	return append(next, r)
}

// Concat returns a new history holding h followed by tail.
func (h History) Concat(tail History) History {
	next := make(History, 0, len(h)+len(tail))
	next = append(next, h...)
	return append(next, tail...)
}

// Latest returns the most recent record, if any.
func (h History) Latest() (Record, bool) {
	if len(h) == 0 {
		return Record{}, false
	}
	return h[len(h)-1], true
}

// Recent returns at most n records, newest first.
func (h History) Recent(n int) []Record {
	if n <= 0 || n > len(h) {
		n = len(h)
	}
	out := make([]Record, 0, n)
	for i := len(h) - 1; i >= len(h)-n; i-- {
		out = append(out, h[i])
	}
	return out
}

// ValidateRecord checks that a decoded record carries a mood.
func ValidateRecord(r Record) error {
	if strings.TrimSpace(r.Mood.Emoji) == "" {
		return fmt.Errorf("mood record at %d has no emoji", r.Timestamp)
	}
	return nil
}
