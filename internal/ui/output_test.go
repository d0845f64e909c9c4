package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
)

func TestFormatHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatHistory(&buf, nil)
	if !strings.Contains(buf.String(), "No moods recorded") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormatHistoryOrder(t *testing.T) {
	h := mood.History{
		mood.NewRecord(mood.DefaultCatalog[0], time.UnixMilli(1000)),
		mood.NewRecord(mood.DefaultCatalog[2], time.UnixMilli(2000)),
	}
	var buf bytes.Buffer
	FormatHistory(&buf, h)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "studious") || !strings.Contains(lines[1], "happy") {
		t.Errorf("expected oldest first, got %v", lines)
	}
}

func TestHistoryMarkdownGroupsByDay(t *testing.T) {
	day1 := time.Date(2024, 5, 31, 9, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)
	h := mood.History{
		mood.NewRecord(mood.DefaultCatalog[0], day1),
		mood.NewRecord(mood.DefaultCatalog[1], day1.Add(time.Hour)),
		mood.NewRecord(mood.DefaultCatalog[3], day2),
	}

	md := HistoryMarkdown(h)
	if strings.Count(md, "## ") != 2 {
		t.Errorf("expected two day headings, got:\n%s", md)
	}
	if !strings.Contains(md, "## 2024-05-31") || !strings.Contains(md, "## 2024-06-01") {
		t.Errorf("missing day headings:\n%s", md)
	}
	if !strings.Contains(md, "| 10:00 | 🤔 | pensive |") {
		t.Errorf("missing table row:\n%s", md)
	}
}

func TestFormatCatalog(t *testing.T) {
	var buf bytes.Buffer
	FormatCatalog(&buf, mood.DefaultCatalog)
	out := buf.String()
	if lineCount(strings.TrimSpace(out)) != mood.CatalogSize {
		t.Errorf("expected %d lines, got:\n%s", mood.CatalogSize, out)
	}
	if !strings.HasPrefix(out, "1  🧑‍💻  studious") {
		t.Errorf("unexpected first line: %q", out)
	}
}

func TestFormatJSONKeepsEmoji(t *testing.T) {
	r := mood.NewRecord(mood.DefaultCatalog[3], time.UnixMilli(1717171717171))
	var buf bytes.Buffer
	if err := FormatJSON(&buf, ToRecordJSON(r)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "🥳") {
		t.Errorf("expected literal emoji, got %s", buf.String())
	}

	var got RecordJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Timestamp != 1717171717171 || got.Description != "celebratory" {
		t.Errorf("unexpected record %+v", got)
	}
}
