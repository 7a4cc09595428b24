package progress

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/nihongo/pkg/models"
)

// DefaultCategories are the category maps present in every new progress file.
// Categories are an open set: callers may introduce new ones at any time and
// unknown categories found in an existing file are kept.
var DefaultCategories = []string{"kana", "vocab", "grammar", "kanji"}

// Data is the full persisted progress state. On disk it is a single JSON
// object with the well-known keys (streak, last_date, achievements, settings,
// stats) plus one object per category mapping item keys to cards.
type Data struct {
	Streak       int
	LastDate     string
	Achievements []string
	Settings     models.Settings
	Stats        models.Stats
	Categories   map[string]map[string]models.Card

	// Unknown top-level keys from older or foreign files, preserved verbatim
	// so a save never drops data this version does not understand.
	extra map[string]json.RawMessage
}

// defaultData builds the state of a brand-new progress file.
func defaultData(now time.Time) *Data {
	categories := make(map[string]map[string]models.Card, len(DefaultCategories))
	for _, name := range DefaultCategories {
		categories[name] = make(map[string]models.Card)
	}
	return &Data{
		Streak:       0,
		LastDate:     now.Format(models.DateLayout),
		Achievements: []string{},
		Settings:     models.DefaultSettings(),
		Stats:        models.Stats{},
		Categories:   categories,
	}
}

// marshal renders the data as the pretty-printed progress file JSON.
func (d *Data) marshal() ([]byte, error) {
	obj := make(map[string]interface{}, 5+len(d.Categories)+len(d.extra))
	obj["streak"] = d.Streak
	obj["last_date"] = d.LastDate
	obj["achievements"] = d.Achievements
	obj["settings"] = d.Settings
	obj["stats"] = d.Stats
	for name, cards := range d.Categories {
		obj[name] = cards
	}
	for key, raw := range d.extra {
		obj[key] = raw
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		return nil, fmt.Errorf("failed to encode progress data: %v", err)
	}
	return buf.Bytes(), nil
}

// migrate parses a progress file written by this or any older schema version.
// Missing top-level keys are filled from defaults, missing nested settings and
// stats fields are filled individually, and missing category maps default to
// empty. Unknown top-level object-of-objects keys are treated as categories;
// everything else unknown is preserved opaquely.
func migrate(raw []byte, now time.Time) (*Data, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return nil, fmt.Errorf("failed to parse progress data: %v", err)
	}

	data := defaultData(now)

	if v, ok := top["streak"]; ok {
		_ = json.Unmarshal(v, &data.Streak)
	}
	if v, ok := top["last_date"]; ok {
		_ = json.Unmarshal(v, &data.LastDate)
	}
	if v, ok := top["achievements"]; ok {
		var ids []string
		if err := json.Unmarshal(v, &ids); err == nil {
			data.Achievements = ids
		}
	}
	if v, ok := top["settings"]; ok {
		// Unmarshal over the defaults so absent fields keep their
		// default values and present ones win.
		settings := models.DefaultSettings()
		if err := json.Unmarshal(v, &settings); err == nil {
			data.Settings = settings
		}
	}
	if v, ok := top["stats"]; ok {
		var stats models.Stats
		if err := json.Unmarshal(v, &stats); err == nil {
			data.Stats = stats
		}
	}

	for key, v := range top {
		switch key {
		case "streak", "last_date", "achievements", "settings", "stats":
			continue
		}
		cards, ok := decodeCategory(v)
		if !ok {
			if data.extra == nil {
				data.extra = make(map[string]json.RawMessage)
			}
			data.extra[key] = v
			continue
		}
		data.Categories[key] = cards
	}

	return data, nil
}

// decodeCategory decodes a top-level value as a category map. Each card is
// decoded over the default card so fields absent in old files keep their
// default values.
func decodeCategory(raw json.RawMessage) (map[string]models.Card, bool) {
	var entries map[string]json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	cards := make(map[string]models.Card, len(entries))
	for key, entry := range entries {
		card := models.NewCard()
		if err := json.Unmarshal(entry, &card); err != nil {
			return nil, false
		}
		cards[key] = card
	}
	return cards, true
}
