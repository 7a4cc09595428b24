package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/nihongo/internal/content"
	"github.com/example/nihongo/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath             string // Path to the Excel or CSV file
	KeyColumn            string // Column with the item key (the Japanese text)
	RomajiColumn         string // Column with the romaji reading
	MeaningColumn        string // Column with the meaning
	CategoryColumn       string // Column with the category
	JLPTColumn           string // Column with the JLPT level
	ExampleColumn        string // Column with the example sentence
	ExampleRomajiColumn  string // Column with the example romaji
	ExampleEnglishColumn string // Column with the example translation
	SheetName            string // Name of the sheet to import
	StartRow             int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		KeyColumn:            "A",
		RomajiColumn:         "B",
		MeaningColumn:        "C",
		CategoryColumn:       "D",
		JLPTColumn:           "E",
		ExampleColumn:        "F",
		ExampleRomajiColumn:  "G",
		ExampleEnglishColumn: "H",
		SheetName:            "Sheet1",
		StartRow:             2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Updated        int
	Skipped        int
	Errors         []string
}

// ImportItems imports content items from an Excel or CSV file into the
// library. The scheduling state of already-tracked items is unaffected: only
// the reference metadata changes.
func ImportItems(config ImportConfig, library *content.Library) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config, library)
	}
	return importFromExcel(config, library)
}

// importFromExcel imports items from an Excel file
func importFromExcel(config ImportConfig, library *content.Library) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := processRow(row, config, library, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
		}
	}
	return result, nil
}

// importFromCSV imports items from a CSV file
func importFromCSV(config ImportConfig, library *content.Library) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++
		if err := processRow(row, config, library, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		}
	}
	return result, nil
}

// processRow processes a single row from either source
func processRow(row []string, config ImportConfig, library *content.Library, result *ImportResult) error {
	cell := func(column string) string {
		if column == "" {
			return ""
		}
		if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	key := cell(config.KeyColumn)
	meaning := cell(config.MeaningColumn)
	if key == "" || meaning == "" {
		result.Skipped++
		return nil
	}

	category := strings.ToLower(cell(config.CategoryColumn))
	if category == "" {
		category = "vocab"
	}

	item := models.Item{
		Key:            key,
		Romaji:         cell(config.RomajiColumn),
		Meaning:        meaning,
		JLPT:           strings.ToUpper(cell(config.JLPTColumn)),
		Example:        cell(config.ExampleColumn),
		ExampleRomaji:  cell(config.ExampleRomajiColumn),
		ExampleEnglish: cell(config.ExampleEnglishColumn),
	}

	if _, exists := library.Get(category, key); exists {
		result.Updated++
	} else {
		result.Created++
	}
	library.Add(category, item)
	return nil
}

// columnToIndex converts a column letter ("A", "B", ... "AA") to a zero-based
// index. Returns -1 for anything that is not a column reference.
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	idx := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return -1
		}
		idx = idx*26 + int(r-'A') + 1
	}
	return idx - 1
}
