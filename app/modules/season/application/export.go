package seasonservice

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const standingsSheet = "Standings"

var standingsHeader = []any{"Rank", "Player", "Points", "Total Score"}

// BuildStandingsWorkbook writes standings to a single-sheet XLSX workbook.
func BuildStandingsWorkbook(st *Standings) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), standingsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(standingsSheet, "A1", &standingsHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, s := range st.Standings {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{i + 1, s.Username, s.TotalPoints, s.TotalScore}
		if err := f.SetSheetRow(standingsSheet, axis, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(standingsSheet, "B", "B", 24); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(standingsSheet, "D", "D", 16); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
