package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andareed/siftly-plot/series"
)

var (
	summaryFrom   string
	summaryTo     string
	summaryFields string
	summaryOut    string
	summaryChart  string
	summaryRows   string
)

var summaryCmd = &cobra.Command{
	Use:   "summary [file.csv]",
	Short: "Compute the window summary without the TUI",
	Long: `summary runs the same validate/filter/summarize pipeline as the dashboard
and prints the per-field min/avg/max table. Without --from/--to the full time
range of the file is used; without --fields the first two numeric columns.

Examples:
  sfplot summary data.csv
  sfplot summary --from "2024-01-01 00:00:00" --to "2024-01-02 00:00:00" data.csv
  sfplot summary --fields "Suction Temp,Discharge Temp" --out summary.xlsx data.csv
  sfplot summary --chart chart.png --rows window.csv data.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFrom, "from", "", "window start (YYYY-MM-DD [HH:MM[:SS]]), default: first timestamp")
	summaryCmd.Flags().StringVar(&summaryTo, "to", "", "window end, default: last timestamp")
	summaryCmd.Flags().StringVar(&summaryFields, "fields", "", "comma-separated field names, default: first two columns")
	summaryCmd.Flags().StringVar(&summaryOut, "out", "", "write the summary as a spreadsheet (.xlsx)")
	summaryCmd.Flags().StringVar(&summaryChart, "chart", "", "write the windowed rows as a PNG line chart")
	summaryCmd.Flags().StringVar(&summaryRows, "rows", "", "write the windowed rows as CSV")
}

func runSummary(cmd *cobra.Command, args []string) error {
	var table *series.Table
	var err error
	if len(args) == 0 {
		table, err = series.ReadTable(strings.NewReader(defaultDataset))
	} else {
		var f *os.File
		f, err = os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		table, err = series.ReadTable(f)
	}
	if err != nil {
		return err
	}

	min, max, ok := table.TimeBounds()
	if !ok {
		return fmt.Errorf("no rows in source")
	}

	start, end := min, max
	if summaryFrom != "" {
		ts, ok := parseWindowInput(summaryFrom, time.Local)
		if !ok {
			return fmt.Errorf("invalid --from value %q", summaryFrom)
		}
		start = ts
	}
	if summaryTo != "" {
		ts, ok := parseWindowInput(summaryTo, time.Local)
		if !ok {
			return fmt.Errorf("invalid --to value %q", summaryTo)
		}
		end = ts
	}

	fields := table.Fields
	if len(fields) > 2 {
		fields = fields[:2]
	}
	if summaryFields != "" {
		fields = nil
		for _, name := range strings.Split(summaryFields, ",") {
			fields = append(fields, strings.TrimSpace(name))
		}
	}

	window, err := series.NewTimeRange(start, end)
	if err != nil {
		return err
	}
	filtered, err := table.Filter(window)
	if err != nil {
		return err
	}
	stats, err := filtered.Summarize(fields)
	if err != nil {
		return err
	}

	printSummary(cmd, window, filtered.Len(), stats)

	if summaryOut != "" {
		if err := writeSummaryXLSX(summaryOut, stats); err != nil {
			return err
		}
		cmd.Printf("Summary written to %s\n", summaryOut)
	}
	if summaryChart != "" {
		if err := renderChartPNG(filtered, fields, summaryChart); err != nil {
			return err
		}
		cmd.Printf("Chart written to %s\n", summaryChart)
	}
	if summaryRows != "" {
		if err := writeRowsCSV(summaryRows, filtered, fields); err != nil {
			return err
		}
		cmd.Printf("Rows written to %s\n", summaryRows)
	}
	return nil
}

func printSummary(cmd *cobra.Command, window series.TimeRange, rows int, stats []series.SummaryStat) {
	cmd.Printf("Window: %s - %s (%d rows)\n",
		window.Start.Format(timeInputLayout),
		window.End.Format(timeInputLayout),
		rows)

	nameWidth := len("Field")
	for _, st := range stats {
		if len(st.Field) > nameWidth {
			nameWidth = len(st.Field)
		}
	}

	cmd.Printf("%-*s %*s %*s %*s\n", nameWidth, "Field",
		summaryColWidth, "Min", summaryColWidth, "Avg", summaryColWidth, "Max")
	for _, st := range stats {
		cmd.Printf("%-*s %*s %*s %*s\n", nameWidth, st.Field,
			summaryColWidth, formatValue(st.Min),
			summaryColWidth, formatValue(st.Mean),
			summaryColWidth, formatValue(st.Max))
	}
}
