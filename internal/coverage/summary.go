package coverage

import "sort"

// topOffenderCount is how many worst models/tasks the summary lists.
const topOffenderCount = 5

// EntityGap is one model or task ranked by how many combinations it is
// missing, with its own completion percentage over the full universe.
type EntityGap struct {
	ID            string  // model_id or task_path
	MissingCount  int     // combinations missing for this entity
	CompletionPct float64 // (universe - missing) / universe * 100
}

// Summary holds aggregate statistics over the missing set. Unlike Analyze,
// percentages here are computed against the FULL model and task universes,
// not just active models.
type Summary struct {
	TotalModels          int
	TotalTasks           int
	PossibleCombinations int // TotalModels * TotalTasks
	MissingCount         int
	CompletionPct        float64    // 0 when there are no possible combinations
	TopModels            []EntityGap // up to 5 models with most missing tasks
	TopTasks             []EntityGap // up to 5 tasks with most missing models
}

// Summarize computes summary statistics for a report against the full
// model/task universes.
func Summarize(r *Report, totalModels, totalTasks int) Summary {
	s := Summary{
		TotalModels:          totalModels,
		TotalTasks:           totalTasks,
		PossibleCombinations: totalModels * totalTasks,
		MissingCount:         len(r.Missing),
	}

	if s.PossibleCombinations > 0 {
		existing := s.PossibleCombinations - s.MissingCount
		s.CompletionPct = float64(existing) / float64(s.PossibleCombinations) * 100
	}

	modelMissing := make(map[string]int)
	taskMissing := make(map[string]int)
	for _, pair := range r.Missing {
		modelMissing[pair.ModelID]++
		taskMissing[pair.TaskPath]++
	}

	s.TopModels = topOffenders(modelMissing, totalTasks)
	s.TopTasks = topOffenders(taskMissing, totalModels)
	return s
}

// topOffenders ranks entities by missing count descending (ties broken by ID
// for deterministic output) and annotates each with its completion
// percentage over the given universe size.
func topOffenders(missingByID map[string]int, universe int) []EntityGap {
	gaps := make([]EntityGap, 0, len(missingByID))
	for id, count := range missingByID {
		gap := EntityGap{ID: id, MissingCount: count}
		if universe > 0 {
			gap.CompletionPct = float64(universe-count) / float64(universe) * 100
		}
		gaps = append(gaps, gap)
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].MissingCount != gaps[j].MissingCount {
			return gaps[i].MissingCount > gaps[j].MissingCount
		}
		return gaps[i].ID < gaps[j].ID
	})

	if len(gaps) > topOffenderCount {
		gaps = gaps[:topOffenderCount]
	}
	return gaps
}
