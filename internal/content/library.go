package content

import (
	"sort"

	"github.com/example/nihongo/pkg/models"
)

// Library holds the static reference data sessions draw their questions from:
// item keys with display metadata, grouped by category. The scheduling engine
// never reads it; it only sees the item keys.
type Library struct {
	categories map[string]map[string]models.Item
}

// New creates an empty library.
func New() *Library {
	return &Library{categories: make(map[string]map[string]models.Item)}
}

// Default returns a library seeded with the built-in kana, vocabulary,
// grammar and kanji data.
func Default() *Library {
	l := New()
	for key, romaji := range hiragana {
		l.Add("kana", models.Item{Key: key, Romaji: romaji, Meaning: romaji})
	}
	for key, romaji := range katakana {
		l.Add("kana", models.Item{Key: key, Romaji: romaji, Meaning: romaji})
	}
	for _, item := range vocabulary {
		l.Add("vocab", item)
	}
	for _, item := range grammar {
		l.Add("grammar", item)
	}
	for _, item := range kanji {
		l.Add("kanji", item)
	}
	return l
}

// Add inserts or replaces an item in a category, creating the category if
// needed.
func (l *Library) Add(category string, item models.Item) {
	items, ok := l.categories[category]
	if !ok {
		items = make(map[string]models.Item)
		l.categories[category] = items
	}
	items[item.Key] = item
}

// Get returns the item for a key in a category.
func (l *Library) Get(category, key string) (models.Item, bool) {
	item, ok := l.categories[category][key]
	return item, ok
}

// Keys returns all item keys in a category in sorted order.
func (l *Library) Keys(category string) []string {
	items := l.categories[category]
	keys := make([]string, 0, len(items))
	for key := range items {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Categories returns all category names in sorted order.
func (l *Library) Categories() []string {
	names := make([]string, 0, len(l.categories))
	for name := range l.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of items in a category.
func (l *Library) Count(category string) int {
	return len(l.categories[category])
}
