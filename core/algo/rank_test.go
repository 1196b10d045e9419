package algo

import (
	"testing"

	"github.com/huangsam/esgscore/schema"
	"github.com/stretchr/testify/assert"
)

func eval(name string, overall, env int) schema.Evaluation {
	return schema.Evaluation{
		Profile: schema.InvestorProfile{Name: name},
		Score:   schema.ESGScore{Overall: overall, Environmental: env},
	}
}

func names(evals []schema.Evaluation) []string {
	out := make([]string, len(evals))
	for i, e := range evals {
		out[i] = e.Profile.Name
	}
	return out
}

func TestRankEvaluations(t *testing.T) {
	tests := []struct {
		name     string
		input    []schema.Evaluation
		limit    int
		expected []string
	}{
		{
			name:     "orders by overall",
			input:    []schema.Evaluation{eval("b", 60, 50), eval("a", 80, 50), eval("c", 70, 50)},
			limit:    10,
			expected: []string{"a", "c", "b"},
		},
		{
			name:     "environmental breaks ties",
			input:    []schema.Evaluation{eval("low-env", 70, 40), eval("high-env", 70, 90)},
			limit:    10,
			expected: []string{"high-env", "low-env"},
		},
		{
			name:     "name breaks full ties",
			input:    []schema.Evaluation{eval("zeta", 70, 60), eval("alpha", 70, 60)},
			limit:    10,
			expected: []string{"alpha", "zeta"},
		},
		{
			name:     "limit trims",
			input:    []schema.Evaluation{eval("b", 60, 50), eval("a", 80, 50), eval("c", 70, 50)},
			limit:    2,
			expected: []string{"a", "c"},
		},
		{
			name:     "non-positive limit keeps all",
			input:    []schema.Evaluation{eval("b", 60, 50), eval("a", 80, 50)},
			limit:    0,
			expected: []string{"a", "b"},
		},
		{
			name:     "empty input",
			input:    []schema.Evaluation{},
			limit:    5,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, names(RankEvaluations(tt.input, tt.limit)))
		})
	}
}
