// Package cohort selects named groups of models for comparison, driven by
// configuration: model_id prefixes, explicit IDs and exclusion substrings.
package cohort

import (
	"sort"
	"strings"

	"github.com/benchhub/benchscope/pkg/records"
)

// Spec describes how a cohort is selected. A model is included when its
// model_id matches any prefix OR appears in Models, and is then dropped if
// its model_id contains any Exclude substring.
type Spec struct {
	Prefixes []string // model_id prefixes (e.g., "o1-", "o3-")
	Models   []string // explicit model_ids (e.g., "DeepSeek-R1")
	Exclude  []string // substrings that disqualify a matched model (e.g., "preview")
}

// Select picks the cohort from the model collection and orders it by release
// date ascending with undated models first, tie-broken by model_id. That
// ordering feeds straight into the comparison matrix's row order.
func (s Spec) Select(models []records.Model) []records.Model {
	explicit := make(map[string]struct{}, len(s.Models))
	for _, id := range s.Models {
		explicit[id] = struct{}{}
	}

	var selected []records.Model
	for _, model := range models {
		if !s.matches(model.ModelID, explicit) {
			continue
		}
		if s.excluded(model.ModelID) {
			continue
		}
		selected = append(selected, model)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		di, dj := selected[i].ReleaseDate, selected[j].ReleaseDate
		switch {
		case di == nil && dj == nil:
			return selected[i].ModelID < selected[j].ModelID
		case di == nil:
			return true
		case dj == nil:
			return false
		case !di.Equal(*dj):
			return di.Before(*dj)
		default:
			return selected[i].ModelID < selected[j].ModelID
		}
	})

	return selected
}

func (s Spec) matches(modelID string, explicit map[string]struct{}) bool {
	if _, ok := explicit[modelID]; ok {
		return true
	}
	for _, prefix := range s.Prefixes {
		if strings.HasPrefix(modelID, prefix) {
			return true
		}
	}
	return false
}

func (s Spec) excluded(modelID string) bool {
	for _, sub := range s.Exclude {
		if strings.Contains(modelID, sub) {
			return true
		}
	}
	return false
}
