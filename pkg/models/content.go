package models

// Item is a learnable content entry. The scheduling engine only ever looks at
// the key; everything else is display and reference metadata for sessions.
type Item struct {
	Key            string `json:"key"`
	Romaji         string `json:"romaji"`
	Meaning        string `json:"meaning"`
	JLPT           string `json:"jlpt,omitempty"`
	Example        string `json:"example,omitempty"`
	ExampleRomaji  string `json:"example_romaji,omitempty"`
	ExampleEnglish string `json:"example_english,omitempty"`
}
