package llcases

import (
	"fmt"

	"go.uber.org/zap"
)

// A Change describes one record whose stored fingerprint
// did not match its solution.
type Change struct {
	Index int
	ID    string
	Old   Fingerprint
	New   Fingerprint
}

// A RepairReport summarizes a repair pass.
type RepairReport struct {
	Total   int
	Changed int
	Changes []Change

	// Saved is set once the corrected collection has been
	// written back to the store.
	Saved bool
}

// RepairOptions controls RepairStore.
type RepairOptions struct {
	// DryRun computes the report without saving.
	DryRun bool

	// CheckLayers replays every solution on an independent
	// cubie model and logs a warning for solutions which
	// disturb the first two layers.
	CheckLayers bool

	// Log receives progress messages. If nil, nothing is
	// logged.
	Log *zap.SugaredLogger
}

// RepairCases recomputes the fingerprint of every record
// and corrects the ones that differ.
//
// The records are only modified if every record is valid
// and every solution parses.
func RepairCases(records []CaseRecord) (*RepairReport, error) {
	if err := ValidateRecords(records); err != nil {
		return nil, err
	}

	computed := make([]Fingerprint, len(records))
	for i, rec := range records {
		fp, err := FingerprintOf(rec.Solution)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.ID, err)
		}
		computed[i] = fp
	}

	report := &RepairReport{Total: len(records)}
	for i := range records {
		rec := &records[i]
		if old := rec.Fingerprint(); old != computed[i] {
			rec.SetFingerprint(computed[i])
			report.Changed++
			report.Changes = append(report.Changes, Change{
				Index: i,
				ID:    rec.ID,
				Old:   old,
				New:   computed[i],
			})
		}
	}
	return report, nil
}

// RepairStore loads every record from a store, repairs
// them, and saves the full collection back.
//
// Nothing is written if any step fails.
func RepairStore(store Store, opts RepairOptions) (*RepairReport, error) {
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	records, err := store.Load()
	if err != nil {
		return nil, err
	}
	log.Infow("Loaded case records", "count", len(records))

	report, err := RepairCases(records)
	if err != nil {
		return nil, err
	}
	for _, c := range report.Changes {
		log.Infow("Updating case", "id", c.ID, "old", c.Old.String(), "new", c.New.String())
	}

	if opts.CheckLayers {
		for _, rec := range records {
			check, err := CheckLastLayer(rec.Solution)
			if err != nil {
				log.Warnw("Could not replay solution", "id", rec.ID, "error", err)
			} else if !check.F2LSolved {
				log.Warnw("Solution disturbs the first two layers", "id", rec.ID,
					"crossSolved", check.CrossSolved)
			}
		}
	}

	if opts.DryRun {
		log.Infow("Dry run, not saving", "changed", report.Changed)
		return report, nil
	}
	if err := store.Save(records); err != nil {
		return nil, err
	}
	report.Saved = true
	log.Infow("Saved case records", "count", len(records), "changed", report.Changed)
	return report, nil
}
