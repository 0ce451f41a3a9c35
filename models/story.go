package models

import (
	"encoding/json"
	"errors"
	"strings"
)

var errMissingStories = errors.New(`payload has no "stories" array`)

type Publication struct {
	Title string `json:"title"`
}

// Story is a story record as served by the backend. Only the fields the
// front end reads are decoded; attribution is kept as raw JSON so it can be
// passed through untouched whatever shape the backend uses.
type Story struct {
	OrderNumber  int64           `json:"orderNumber"`
	Publications []Publication   `json:"publications"`
	WrittenBy    json.RawMessage `json:"writtenBy"`
	DrawnBy      json.RawMessage `json:"drawnBy"`
}

type StorySummary struct {
	OrderNumber int64           `json:"orderNumber"`
	Title       string          `json:"title"`
	WrittenBy   json.RawMessage `json:"writtenBy"`
	DrawnBy     json.RawMessage `json:"drawnBy"`
}

type StoriesPayload struct {
	Stories []Story `json:"stories"`
}

// UnmarshalJSON rejects payloads without a "stories" array.
func (p *StoriesPayload) UnmarshalJSON(data []byte) error {
	var raw struct {
		Stories *[]Story `json:"stories"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Stories == nil {
		return errMissingStories
	}
	p.Stories = *raw.Stories
	return nil
}

type SummariesPayload struct {
	Stories []StorySummary `json:"stories"`
}

// Summarize projects a story down to the fields shown in listings. The title
// comes from the first publication and is empty when there is none.
func Summarize(s Story) StorySummary {
	var title string
	if len(s.Publications) > 0 {
		title = s.Publications[0].Title
	}
	return StorySummary{
		OrderNumber: s.OrderNumber,
		Title:       title,
		WrittenBy:   s.WrittenBy,
		DrawnBy:     s.DrawnBy,
	}
}

// SummarizeAll keeps the upstream order.
func SummarizeAll(p StoriesPayload) SummariesPayload {
	summaries := make([]StorySummary, 0, len(p.Stories))
	for _, s := range p.Stories {
		summaries = append(summaries, Summarize(s))
	}
	return SummariesPayload{Stories: summaries}
}

// Byline renders an attribution value for display. Plain strings are returned
// as is, lists of strings or of objects with a "name" are joined.
func Byline(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err == nil {
		return strings.Join(names, ", ")
	}

	var named []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &named); err == nil {
		parts := make([]string, 0, len(named))
		for _, n := range named {
			if n.Name != "" {
				parts = append(parts, n.Name)
			}
		}
		return strings.Join(parts, ", ")
	}

	return string(raw)
}
