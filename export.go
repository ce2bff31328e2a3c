package tourney

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

// PeriodRow is one line of the per-period export.
type PeriodRow struct {
	Period string `csv:"period"`
	Count  int    `csv:"count"`
	ITMPct string `csv:"itm_pct"`
	ROIPct string `csv:"roi_pct"`
	Profit string `csv:"profit"`
}

// PeriodRows formats group summaries as export rows.
func PeriodRows(stats []GroupStats) []PeriodRow {
	rows := make([]PeriodRow, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, PeriodRow{
			Period: s.Key,
			Count:  s.Count,
			ITMPct: s.ITMPercent.Fixed(),
			ROIPct: s.ROIPercent.Fixed(),
			Profit: s.Profit.StringFixed(2),
		})
	}
	return rows
}

// WritePeriodsCSV writes the summaries as CSV, with a header line.
func WritePeriodsCSV(w io.Writer, stats []GroupStats) error {
	rows := PeriodRows(stats)
	return gocsv.Marshal(&rows, w)
}

// PeriodsSheet is the name of the worksheet written by WritePeriodsXLSX.
const PeriodsSheet = "Periods"

var periodsHeader = []any{"period", "count", "itm_pct", "roi_pct", "profit"}

// WritePeriodsXLSX writes the summaries as an Excel workbook with a single sheet.
func WritePeriodsXLSX(w io.Writer, stats []GroupStats) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PeriodsSheet); err != nil {
		return fmt.Errorf("could not create sheet: %w", err)
	}
	if err := f.SetSheetRow(PeriodsSheet, "A1", &periodsHeader); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}
	for i, s := range stats {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			s.Key,
			s.Count,
			s.ITMPercent.Round(),
			s.ROIPercent.Round(),
			s.Profit.Round(2).InexactFloat64(),
		}
		if err := f.SetSheetRow(PeriodsSheet, cell, &row); err != nil {
			return fmt.Errorf("could not write period %q: %w", s.Key, err)
		}
	}
	return f.Write(w)
}

// ExportPeriods writes the summaries to the file at path. The format is
// chosen from the extension: ".xlsx" for Excel, CSV otherwise.
func ExportPeriods(path string, stats []GroupStats) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create export file %q: %w", path, err)
	}
	defer out.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		err = WritePeriodsXLSX(out, stats)
	} else {
		err = WritePeriodsCSV(out, stats)
	}
	if err != nil {
		return fmt.Errorf("could not export periods to %q: %w", path, err)
	}
	return out.Close()
}
