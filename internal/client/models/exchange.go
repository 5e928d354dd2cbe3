// Package models defines client-side data models used by the textfix client.
package models

import (
	"encoding/json"
	"time"
)

// Exchange is one stored correction: the text the user submitted and the
// server's corrected version.
type Exchange struct {
	ID            int64     `json:"id"`
	InputText     string    `json:"input_text"`
	CorrectedText string    `json:"corrected_text"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
}

// timestampLayouts are tried in order. Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// UnmarshalJSON reads the creation time from "created_at" or, failing that,
// "timestamp". A time in a format it does not know leaves CreatedAt zero
// instead of failing the whole record.
func (e *Exchange) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID            int64           `json:"id"`
		InputText     string          `json:"input_text"`
		CorrectedText string          `json:"corrected_text"`
		CreatedAt     json.RawMessage `json:"created_at"`
		Timestamp     json.RawMessage `json:"timestamp"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	e.ID = raw.ID
	e.InputText = raw.InputText
	e.CorrectedText = raw.CorrectedText
	e.CreatedAt = parseTimestamp(raw.CreatedAt)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = parseTimestamp(raw.Timestamp)
	}
	return nil
}

func parseTimestamp(v json.RawMessage) time.Time {
	var s string
	if len(v) == 0 || json.Unmarshal(v, &s) != nil || s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Preview is the label shown for the exchange in history lists.
func (e Exchange) Preview() string {
	if e.InputText == "" {
		return "No input"
	}
	return e.InputText
}
