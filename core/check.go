package core

import (
	"fmt"

	"github.com/huangsam/esgscore/schema"
)

// CheckEvaluations enforces a minimum rating and a minimum overall score.
// A profile fails when either bound is missed; both reasons are reported.
func CheckEvaluations(evals []schema.Evaluation, minRating schema.Rating, minOverall int) schema.CheckResult {
	result := schema.CheckResult{
		MinRating:  minRating,
		MinOverall: minOverall,
		Checked:    len(evals),
		Failures:   []schema.CheckFailure{},
	}
	for _, ev := range evals {
		var reasons []string
		if minRating != "" && !ev.Score.Rating.AtLeast(minRating) {
			reasons = append(reasons, fmt.Sprintf("rating %s below %s", ev.Score.Rating, minRating))
		}
		if ev.Score.Overall < minOverall {
			reasons = append(reasons, fmt.Sprintf("overall %d below %d", ev.Score.Overall, minOverall))
		}
		if len(reasons) == 0 {
			continue
		}
		reason := reasons[0]
		if len(reasons) > 1 {
			reason = reasons[0] + "; " + reasons[1]
		}
		result.Failures = append(result.Failures, schema.CheckFailure{
			Name:    ev.Profile.Name,
			Overall: ev.Score.Overall,
			Rating:  ev.Score.Rating,
			Reason:  reason,
		})
	}
	return result
}
