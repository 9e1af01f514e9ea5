// Package sheet imports question records from xlsx workbooks. The
// first row of the first sheet is the header; every required column
// must be present before a single row is converted.
package sheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mahued73/examapp/internal/question"
)

// ErrMissingColumn reports a header without one of the required
// columns. Validation is fail-fast: no rows are imported.
var ErrMissingColumn = errors.New("missing column")

// requiredColumns in storage order. The header may list them in any
// order and may carry extra columns, which are ignored.
var requiredColumns = []string{
	"level", "subject", "text",
	"option1", "option2", "option3", "option4",
	"correct", "explanation",
}

// Read loads every data row of the workbook's first sheet as a
// question record. Header validation happens before any conversion,
// so a malformed workbook never yields a partial import.
func Read(path string) ([]question.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s has no header row", sheets[0])
	}

	cols, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	var records []question.Record
	for i, row := range rows[1:] {
		rec, err := rowToRecord(row, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// columnIndex maps required column names to their positions in the
// header, rejecting a header that misses any of them.
func columnIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

func rowToRecord(row []string, cols map[string]int) (question.Record, error) {
	// Trailing empty cells are trimmed by the reader; treat anything
	// past the row's end as an empty cell.
	cell := func(name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return row[i]
	}

	correct, err := strconv.Atoi(strings.TrimSpace(cell("correct")))
	if err != nil {
		return question.Record{}, fmt.Errorf("correct %q is not an integer", cell("correct"))
	}

	rec := question.Record{
		Level:       cell("level"),
		Subject:     cell("subject"),
		Text:        cell("text"),
		Correct:     correct,
		Explanation: cell("explanation"),
	}
	for i := 0; i < question.OptionCount; i++ {
		rec.Options[i] = cell(fmt.Sprintf("option%d", i+1))
	}
	return rec, nil
}
