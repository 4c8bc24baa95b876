package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/andareed/siftly-plot/logging"
	"github.com/andareed/siftly-plot/series"
)

// Version is stamped by the release build.
var Version = "0.2.0"

// Bundled dataset, shown when no file is given.
//
//go:embed sample_data.csv
var defaultDataset string

var logFile string

var rootCmd = &cobra.Command{
	Use:   "sfplot [file.csv|session.json]",
	Short: "Terminal dashboard for time-series CSV files",
	Long: `sfplot loads a time-series CSV (or a bundled sample dataset), lets you pick
a date/time window and a set of numeric fields, shows the rows in that window
with min/avg/max statistics, and exports the result as a spreadsheet, a PNG
line chart or a CSV.

A .json argument restores a previously saved session.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Version:", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "debug", "", "write debug logs to file")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(summaryCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cleanup, err := logging.SetupLogging(logFile)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer cleanup()

	log.Println("siftly-plot: started")

	inputPath := ""
	if len(args) > 0 {
		inputPath = args[0]
	}

	m, err := loadModelAuto(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load %q: %w", inputPath, err)
	}

	if m.data.sourcePath != "" {
		w, err := watchFile(m.data.sourcePath)
		if err != nil {
			logging.Warnf("watch: cannot watch %s: %v", m.data.sourcePath, err)
		} else {
			m.watcher = w
			defer w.Close()
		}
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
	}
	return err
}

func loadModelAuto(path string) (*model, error) {
	if path == "" {
		return newModelFromDefault()
	}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return newModelFromSessionFile(path)
	case ".csv":
		return newModelFromCSVFile(path)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (want .csv or .json)", ext)
	}
}

func newModelFromDefault() (*model, error) {
	table, err := series.ReadTable(strings.NewReader(defaultDataset))
	if err != nil {
		return nil, fmt.Errorf("bundled dataset: %w", err)
	}
	return newModel(table, ""), nil
}

func newModelFromCSVFile(path string) (*model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	table, err := series.ReadTable(f)
	if err != nil {
		return nil, err
	}

	m := newModel(table, path)
	m.InitialPath = path
	return m, nil
}

// Sessions reference their source CSV; the dataset is reloaded from there.
func newModelFromSessionFile(path string) (*model, error) {
	dto, err := loadSession(path)
	if err != nil {
		return nil, err
	}

	var m *model
	if dto.Source == "" {
		m, err = newModelFromDefault()
	} else {
		m, err = newModelFromCSVFile(dto.Source)
	}
	if err != nil {
		return nil, err
	}

	applySession(m, dto)
	m.InitialPath = path
	return m, nil
}
