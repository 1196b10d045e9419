// Package algo has ranking helpers for evaluation results.
package algo

import (
	"sort"

	"github.com/huangsam/esgscore/schema"
)

// RankEvaluations sorts evaluations by overall score in descending order
// and returns the top 'limit' entries. Ties keep the better environmental
// score first, then the profile name. A non-positive limit returns everything.
func RankEvaluations(evals []schema.Evaluation, limit int) []schema.Evaluation {
	sort.SliceStable(evals, func(i, j int) bool {
		a, b := evals[i].Score, evals[j].Score
		if a.Overall != b.Overall {
			return a.Overall > b.Overall
		}
		if a.Environmental != b.Environmental {
			return a.Environmental > b.Environmental
		}
		return evals[i].Profile.Name < evals[j].Profile.Name
	})
	if limit > 0 && len(evals) > limit {
		return evals[:limit]
	}
	return evals
}
