package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Header is the column layout of the results file.
var Header = []string{
	"Algorithm",
	"Avg_Time",
	"Avg_Memory",
	"Success_Rate",
	"Avg_Solution_Length",
	"Avg_States_Explored",
	"Map_ID",
}

// WriteCSV writes rows to w. Avg_Time is in seconds and Avg_Memory in bytes.
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			r.Algorithm,
			strconv.FormatFloat(r.AvgTime.Seconds(), 'f', 6, 64),
			strconv.FormatFloat(r.AvgMemory, 'f', 0, 64),
			strconv.FormatFloat(r.SuccessRate, 'f', 2, 64),
			strconv.FormatFloat(r.AvgSolutionLength, 'f', 2, 64),
			strconv.FormatFloat(r.AvgStatesExplored, 'f', 2, 64),
			r.MapID,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes rows to path, creating parent directories.
func WriteCSVFile(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer f.Close()

	return WriteCSV(f, rows)
}
