package moodstore

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/chris-regnier/moodctl/internal/mood"
)

// appData is the persisted blob shape.
type appData struct {
	MoodList mood.History `json:"moodList"`
}

// Encode serializes a history into the persisted blob.
func Encode(h mood.History) ([]byte, error) {
	if h == nil {
		h = mood.History{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(appData{MoodList: h}); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a persisted blob. A blob without a mood list decodes to an
// empty history.
func Decode(data []byte) (mood.History, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("decoding mood history: payload is not a JSON object")
	}

	var d appData
	if err := json.Unmarshal(trimmed, &d); err != nil {
		return nil, fmt.Errorf("decoding mood history: %w", err)
	}
	for _, r := range d.MoodList {
		if err := mood.ValidateRecord(r); err != nil {
			return nil, fmt.Errorf("decoding mood history: %w", err)
		}
	}
	if d.MoodList == nil {
		return mood.History{}, nil
	}
	return d.MoodList, nil
}
