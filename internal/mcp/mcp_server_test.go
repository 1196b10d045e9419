package mcp_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/huangsam/esgscore/core"
	mcp_internal "github.com/huangsam/esgscore/internal/mcp"
	"github.com/huangsam/esgscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(core.NewEngine())
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestMCPServerTools(t *testing.T) {
	s := mcp_internal.NewMCPServer(core.NewEngine())
	for _, name := range []string{
		"calculate_esg_score",
		"compare_esg_with_peers",
		"calculate_carbon_footprint",
		"get_green_metrics",
		"get_sustainability_goals",
		"get_green_incentives",
	} {
		assert.NotNil(t, s.GetTool(name), "Tool %s should exist", name)
	}
}

func TestMCPServerHandlers(t *testing.T) {
	t.Run("calculate_esg_score", func(t *testing.T) {
		res := callTool(t, "calculate_esg_score", map[string]any{
			"sector":                   "Technology & IT",
			"certifications":           []any{"ISO 14001", "B Corp"},
			"has_etp":                  true,
			"has_solar_power":          true,
			"green_cover_percent":      25.0,
			"female_workforce_percent": 45.0,
			"safety_incidents":         0.0,
		})
		require.False(t, res.IsError)

		var score schema.ESGScore
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &score))
		assert.Equal(t, 85, score.Overall)
		assert.Equal(t, schema.RatingAA, score.Rating)
		assert.Equal(t, []string{"ISO 14001", "B Corp"}, score.Certifications)
	})

	t.Run("compare_esg_with_peers", func(t *testing.T) {
		res := callTool(t, "compare_esg_with_peers", map[string]any{"sector": "Manufacturing", "safety_incidents": 2.0})
		require.False(t, res.IsError)
		assert.Contains(t, resultText(t, res), `"comparison"`)
		assert.Contains(t, resultText(t, res), `"percentileRank"`)
	})

	t.Run("calculate_carbon_footprint", func(t *testing.T) {
		res := callTool(t, "calculate_carbon_footprint", map[string]any{
			"sector":            "Manufacturing",
			"employee_count":    250.0,
			"annual_energy_kwh": 1200000.0,
		})
		require.False(t, res.IsError)

		var result schema.CarbonFootprintResult
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &result))
		assert.InDelta(t, 1100.0, result.TotalCO2Tons, 0.001)
	})

	t.Run("get_green_metrics", func(t *testing.T) {
		res := callTool(t, "get_green_metrics", map[string]any{"investment_size": 120.0})
		require.False(t, res.IsError)

		var metrics []schema.GreenMetric
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &metrics))
		assert.Len(t, metrics, 5)
	})

	t.Run("catalogs", func(t *testing.T) {
		for _, name := range []string{"get_sustainability_goals", "get_green_incentives"} {
			res := callTool(t, name, map[string]any{})
			assert.False(t, res.IsError, name)
			assert.NotEmpty(t, resultText(t, res))
		}
	})
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		expected string
	}{
		{name: "score without sector", tool: "calculate_esg_score", args: map[string]any{}, expected: "invalid investor parameters"},
		{name: "peers without sector", tool: "compare_esg_with_peers", args: map[string]any{"has_etp": true}, expected: "invalid investor parameters"},
		{name: "carbon without employees", tool: "calculate_carbon_footprint", args: map[string]any{"sector": "Manufacturing"}, expected: "invalid carbon parameters"},
		{name: "carbon with zero employees", tool: "calculate_carbon_footprint", args: map[string]any{"employee_count": 0.0}, expected: "carbon estimate failed"},
		{name: "metrics without size", tool: "get_green_metrics", args: map[string]any{}, expected: "invalid metrics parameters"},
		{name: "metrics with negative size", tool: "get_green_metrics", args: map[string]any{"investment_size": -1.0}, expected: "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, tt.tool, tt.args)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, resultText(t, res), tt.expected)
		})
	}
}
