package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/example/nihongo/internal/content"
	"github.com/example/nihongo/pkg/models"
)

func writeCSV(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.csv")
	require.NoError(t, os.WriteFile(path, []byte(rows), 0644))
	return path
}

func TestImportItems_CSV(t *testing.T) {
	path := writeCSV(t, `key,romaji,meaning,category,jlpt,example,example_romaji,example_english
水,mizu,water,vocab,n5,水を飲みます,mizu o nomimasu,I drink water
犬,inu,dog,vocab,n5,,,
雨,ame,rain,,n5,,,
`)

	library := content.New()
	config := DefaultImportConfig()
	config.FilePath = path

	result, err := ImportItems(config, library)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Errors)

	item, ok := library.Get("vocab", "水")
	require.True(t, ok)
	assert.Equal(t, "mizu", item.Romaji)
	assert.Equal(t, "water", item.Meaning)
	assert.Equal(t, "N5", item.JLPT)
	assert.Equal(t, "水を飲みます", item.Example)

	// Empty category column falls back to vocab.
	_, ok = library.Get("vocab", "雨")
	assert.True(t, ok)
}

func TestImportItems_CSVSkipsIncompleteRows(t *testing.T) {
	path := writeCSV(t, `key,romaji,meaning
水,mizu,water
,nashi,no key
火,hi,
`)

	library := content.New()
	config := DefaultImportConfig()
	config.FilePath = path

	result, err := ImportItems(config, library)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 2, result.Skipped)
	assert.Equal(t, 1, library.Count("vocab"))
}

func TestImportItems_CSVUpdatesExisting(t *testing.T) {
	path := writeCSV(t, `key,romaji,meaning
水,mizu,water (n.)
`)

	library := content.New()
	library.Add("vocab", models.Item{Key: "水", Romaji: "mizu", Meaning: "water"})

	config := DefaultImportConfig()
	config.FilePath = path

	result, err := ImportItems(config, library)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)
	item, _ := library.Get("vocab", "水")
	assert.Equal(t, "water (n.)", item.Meaning)
}

func TestImportItems_Excel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.xlsx")
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"key", "romaji", "meaning", "category"},
		{"ありがとう", "arigatou", "thank you", "vocab"},
		{"〜たい", "-tai", "want to do", "grammar"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	library := content.New()
	config := DefaultImportConfig()
	config.FilePath = path

	result, err := ImportItems(config, library)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, 2, result.Created)

	item, ok := library.Get("grammar", "〜たい")
	require.True(t, ok)
	assert.Equal(t, "want to do", item.Meaning)
}

func TestImportItems_MissingFile(t *testing.T) {
	config := DefaultImportConfig()
	config.FilePath = filepath.Join(t.TempDir(), "missing.csv")

	_, err := ImportItems(config, content.New())
	assert.Error(t, err)
}

func TestColumnToIndex(t *testing.T) {
	tests := []struct {
		column string
		want   int
	}{
		{"A", 0},
		{"B", 1},
		{"Z", 25},
		{"AA", 26},
		{"AB", 27},
		{"b", 1},
		{" C ", 2},
		{"", -1},
		{"A1", -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, columnToIndex(tt.column), "column %q", tt.column)
	}
}
