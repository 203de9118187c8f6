// Package excel imports flashcard decks from Excel workbooks and CSV files.
package excel

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/prepdeck/internal/deck"
	"github.com/example/prepdeck/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath         string // Path to the Excel or CSV file
	IDColumn         string // Column with the card ID
	FrontColumn      string // Column with the question
	BackColumn       string // Column with the answer
	CategoryColumn   string // Column with the category tag
	DifficultyColumn string // Column with the difficulty (optional)
	ExamplesColumn   string // Column with ';'-separated examples (optional)
	SheetName        string // Name of the sheet to import
	StartRow         int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		IDColumn:         "A",
		FrontColumn:      "B",
		BackColumn:       "C",
		CategoryColumn:   "D",
		DifficultyColumn: "E",
		ExamplesColumn:   "F",
		SheetName:        "Sheet1",
		StartRow:         2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
}

// columns holds zero-based indexes resolved from the configured letters; -1 means unused.
type columns struct {
	id, front, back, category, difficulty, examples int
}

// ImportCards reads flashcards from an Excel or CSV file.
// Rows that fail validation are skipped and reported in the result.
func ImportCards(config ImportConfig) ([]models.Flashcard, *ImportResult, error) {
	cols, err := resolveColumns(config)
	if err != nil {
		return nil, nil, err
	}

	var rows [][]string
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config.FilePath, config.SheetName)
	}
	if err != nil {
		return nil, nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	seen := make(map[string]bool)
	var cards []models.Flashcard

	for i, row := range rows {
		// Skip header rows
		if i < config.StartRow-1 {
			continue
		}
		if isBlank(row) {
			continue
		}
		result.TotalProcessed++

		card, err := processRow(row, cols)
		if err == nil && seen[card.ID] {
			err = fmt.Errorf("%w: %q", deck.ErrDuplicateCard, card.ID)
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}

		seen[card.ID] = true
		cards = append(cards, card)
		result.Imported++
	}

	return cards, result, nil
}

// readExcel returns all rows of a sheet
func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

// readCSV returns all records of a CSV file
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// processRow turns a single row into a validated flashcard
func processRow(row []string, cols columns) (models.Flashcard, error) {
	category, err := models.ParseCategory(cell(row, cols.category))
	if err != nil {
		return models.Flashcard{}, err
	}
	difficulty, err := models.ParseDifficulty(cell(row, cols.difficulty))
	if err != nil {
		return models.Flashcard{}, err
	}

	card := models.Flashcard{
		ID:         cell(row, cols.id),
		Front:      cell(row, cols.front),
		Back:       cell(row, cols.back),
		Category:   category,
		Difficulty: difficulty,
		Examples:   splitExamples(cell(row, cols.examples)),
	}
	if err := deck.Validate(card); err != nil {
		return models.Flashcard{}, err
	}
	return card, nil
}

func resolveColumns(config ImportConfig) (columns, error) {
	var cols columns
	required := []struct {
		name   string
		letter string
		dst    *int
	}{
		{"id", config.IDColumn, &cols.id},
		{"front", config.FrontColumn, &cols.front},
		{"back", config.BackColumn, &cols.back},
		{"category", config.CategoryColumn, &cols.category},
	}
	for _, c := range required {
		idx, err := columnToIndex(c.letter)
		if err != nil {
			return columns{}, fmt.Errorf("%s column: %w", c.name, err)
		}
		*c.dst = idx
	}

	cols.difficulty, cols.examples = -1, -1
	if config.DifficultyColumn != "" {
		idx, err := columnToIndex(config.DifficultyColumn)
		if err != nil {
			return columns{}, fmt.Errorf("difficulty column: %w", err)
		}
		cols.difficulty = idx
	}
	if config.ExamplesColumn != "" {
		idx, err := columnToIndex(config.ExamplesColumn)
		if err != nil {
			return columns{}, fmt.Errorf("examples column: %w", err)
		}
		cols.examples = idx
	}
	return cols, nil
}

// columnToIndex converts a column letter such as "C" to a zero-based index
func columnToIndex(column string) (int, error) {
	n, err := excelize.ColumnNameToNumber(strings.TrimSpace(column))
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func splitExamples(raw string) []string {
	var examples []string
	for _, part := range strings.Split(raw, ";") {
		if part = strings.TrimSpace(part); part != "" {
			examples = append(examples, part)
		}
	}
	return examples
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
