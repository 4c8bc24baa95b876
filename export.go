package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/andareed/siftly-plot/series"
)

const summarySheet = "Summary"

// writeSummaryXLSX writes the Min/Avg/Max summary as a spreadsheet, one row
// per field.
func writeSummaryXLSX(path string, stats []series.SummaryStat) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headers := []string{"Field", "Min", "Avg", "Max"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return err
		}
	}

	for r, st := range stats {
		values := []any{st.Field, st.Min, st.Mean, st.Max}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// writeRowsCSV writes the filtered rows, timestamp first then the selected
// fields, in display order.
func writeRowsCSV(path string, tbl *series.Table, fields []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := append([]string{"datetime"}, fields...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	idx := make([]int, len(fields))
	for i, name := range fields {
		idx[i] = tbl.FieldIndex(name)
		if idx[i] < 0 {
			return fmt.Errorf("unknown field %q", name)
		}
	}

	for n, row := range tbl.Rows {
		out := make([]string, 0, len(fields)+1)
		out = append(out, row.Timestamp.Format(timeInputLayout))
		for _, j := range idx {
			out = append(out, formatValue(row.Values[j]))
		}
		if err := w.Write(out); err != nil {
			return fmt.Errorf("write row %d: %w", n+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// exportArtifact dispatches on the file extension: .xlsx summary spreadsheet,
// .png line chart, .csv filtered rows.
func (m *model) exportArtifact(path string) error {
	disp := m.data.displayed
	if disp == nil {
		return fmt.Errorf("nothing to export yet")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return writeSummaryXLSX(path, disp.Summary)
	case ".png":
		return renderChartPNG(disp.Filtered, disp.Fields, path)
	case ".csv":
		return writeRowsCSV(path, disp.Filtered, disp.Fields)
	default:
		return fmt.Errorf("unsupported export extension %q (want .xlsx, .png or .csv)", filepath.Ext(path))
	}
}

func defaultExportName(m *model) string {
	return "summary.xlsx"
}

func defaultSessionName(m *model) string {
	if m.data.sourcePath == "" {
		return "session.json"
	}
	base := filepath.Base(m.data.sourcePath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".session.json"
}
