package bench

import (
	"fmt"

	"github.com/vovakirdan/rushhour/internal/storage"
)

// Recorder stores benchmark rows. *storage.Store satisfies it.
type Recorder interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// Record converts a row into its stored form.
func (r Row) Record() storage.RunRecord {
	return storage.RunRecord{
		MapID:             r.MapID,
		Algorithm:         r.Algorithm,
		Runs:              r.Runs,
		AvgTimeMS:         float64(r.AvgTime.Microseconds()) / 1000,
		AvgMemoryBytes:    r.AvgMemory,
		SuccessRate:       r.SuccessRate,
		AvgSolutionLength: r.AvgSolutionLength,
		AvgStatesExplored: r.AvgStatesExplored,
	}
}

// Persist saves every row, stopping at the first failure.
func Persist(rec Recorder, rows []Row) error {
	for _, r := range rows {
		if _, err := rec.SaveRun(r.Record()); err != nil {
			return fmt.Errorf("persist %s/%s: %w", r.MapID, r.Algorithm, err)
		}
	}
	return nil
}
