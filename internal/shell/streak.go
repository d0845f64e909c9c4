package shell

import (
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
)

// Status is the prompt summary of a mood history.
type Status struct {
	Latest     *mood.Record
	TodayCount int
	Streak     int
}

// ComputeStatus summarizes the history relative to now in now's location:
// the latest record, how many records fall on today, and the number of
// consecutive days ending today that have at least one record.
func ComputeStatus(h mood.History, now time.Time) Status {
	var st Status
	if latest, ok := h.Latest(); ok {
		st.Latest = &latest
	}

	loc := now.Location()
	today := now.Format("2006-01-02")
	days := make(map[string]bool, len(h))
	for _, r := range h {
		d := r.Time().In(loc).Format("2006-01-02")
		days[d] = true
		if d == today {
			st.TodayCount++
		}
	}

	check := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	for days[check.Format("2006-01-02")] {
		st.Streak++
		check = check.AddDate(0, 0, -1)
	}
	return st
}
