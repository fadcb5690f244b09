// Package timeline builds the chronological "best so far" progression for a
// single (task, scorer) pair: which model first reached each record score,
// ordered by model release date.
package timeline

import (
	"math"
	"sort"
	"time"

	"github.com/benchhub/benchscope/pkg/records"
)

// Entry is one record-breaking score.
type Entry struct {
	Date    time.Time // release date of the model that set the record
	ModelID string
	Mean    float64
	Stderr  float64
}

// Result is the built timeline. ExcludedModels lists models that had
// matching scores but no release date - they cannot participate in a
// chronology and are reported rather than silently dropped. An empty Entries
// with empty ExcludedModels means no scores matched at all.
type Result struct {
	Entries        []Entry
	ExcludedModels []string // deduplicated, sorted model IDs without release dates
}

// dated pairs a matching score with its model's resolved release date.
type dated struct {
	date    time.Time
	modelID string
	mean    float64
	stderr  float64
}

// Build computes the best-so-far timeline for one task path and scorer.
//
// Scores whose model lacks a release date are partitioned out and reported
// via ExcludedModels. The remainder is sorted by (release date, model_id) -
// the secondary key keeps same-day ordering deterministic - then scanned
// with a running maximum: only strict improvements over the best mean seen
// so far produce entries, so equal scores never appear twice.
func Build(snap *records.Snapshot, taskPath, scorer string) Result {
	var (
		candidates []dated
		undated    = make(map[string]struct{})
	)

	for i := range snap.Scores {
		score := &snap.Scores[i]
		if score.Scorer != scorer {
			continue
		}
		_, model, task, ok := snap.ScoreContext(score)
		if !ok || task.Path != taskPath {
			continue
		}

		if model.ReleaseDate == nil {
			undated[model.ModelID] = struct{}{}
			continue
		}

		candidates = append(candidates, dated{
			date:    *model.ReleaseDate,
			modelID: model.ModelID,
			mean:    score.Mean,
			stderr:  score.Stderr,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].date.Equal(candidates[j].date) {
			return candidates[i].date.Before(candidates[j].date)
		}
		return candidates[i].modelID < candidates[j].modelID
	})

	result := Result{ExcludedModels: sortedKeys(undated)}

	best := math.Inf(-1)
	for _, c := range candidates {
		if c.mean > best {
			best = c.mean
			result.Entries = append(result.Entries, Entry{
				Date:    c.date,
				ModelID: c.modelID,
				Mean:    c.mean,
				Stderr:  c.stderr,
			})
		}
	}

	return result
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
