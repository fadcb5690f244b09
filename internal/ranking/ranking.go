// Package ranking produces the top-N scores for a single (task, scorer)
// pair, sorted by mean descending. Every matching score is an independent
// observation - multiple runs of one model rank as separate entries.
package ranking

import (
	"sort"
	"time"

	"github.com/benchhub/benchscope/pkg/records"
)

// DefaultLimit is the number of entries returned when the caller does not
// specify one.
const DefaultLimit = 10

// Entry is one ranked score.
type Entry struct {
	ModelID     string
	ReleaseDate *time.Time // nil for undated models; no date dependency here
	Mean        float64
	Stderr      float64
}

// Top returns the limit highest-mean scores for the task path and scorer.
// A limit <= 0 falls back to DefaultLimit. The sort is stable, so equal
// means keep their snapshot order and output is deterministic.
func Top(snap *records.Snapshot, taskPath, scorer string, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var entries []Entry
	for i := range snap.Scores {
		score := &snap.Scores[i]
		if score.Scorer != scorer {
			continue
		}
		_, model, task, ok := snap.ScoreContext(score)
		if !ok || task.Path != taskPath {
			continue
		}

		entries = append(entries, Entry{
			ModelID:     model.ModelID,
			ReleaseDate: model.ReleaseDate,
			Mean:        score.Mean,
			Stderr:      score.Stderr,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Mean > entries[j].Mean
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
