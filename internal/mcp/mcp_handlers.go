package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/esgscore/internal/contract"
	"github.com/huangsam/esgscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	engine contract.ScoringEngine
}

// investorFromRequest reads the investor arguments shared by the scoring tools.
func investorFromRequest(request mcp.CallToolRequest) (schema.InvestorProfile, error) {
	sector, err := request.RequireString("sector")
	if err != nil {
		return schema.InvestorProfile{}, err
	}
	return schema.InvestorProfile{
		Sector:                 strings.TrimSpace(sector),
		Certifications:         request.GetStringSlice("certifications", []string{}),
		HasETP:                 request.GetBool("has_etp", false),
		HasSolarPower:          request.GetBool("has_solar_power", false),
		GreenCoverPercent:      request.GetFloat("green_cover_percent", 0),
		FemaleWorkforcePercent: request.GetFloat("female_workforce_percent", 0),
		SafetyIncidents:        request.GetInt("safety_incidents", 0),
	}, nil
}

// jsonResult marshals a result into a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) score(p schema.InvestorProfile) schema.ESGScore {
	return h.engine.CalculateESGScore(p.Sector, p.Certifications, p.HasETP, p.HasSolarPower, p.GreenCoverPercent, p.FemaleWorkforcePercent, p.SafetyIncidents)
}

func (h *toolHandler) handleCalculateESGScore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := investorFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid investor parameters: %v", err)), nil
	}
	return jsonResult(h.score(p))
}

func (h *toolHandler) handleCompareESGWithPeers(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := investorFromRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid investor parameters: %v", err)), nil
	}
	score := h.score(p)
	return jsonResult(struct {
		Score      schema.ESGScore             `json:"score"`
		Comparison schema.PeerComparisonResult `json:"comparison"`
	}{Score: score, Comparison: h.engine.CompareESGWithPeers(score, p.Sector)})
}

func (h *toolHandler) handleCalculateCarbonFootprint(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employees, err := request.RequireInt("employee_count")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid carbon parameters: %v", err)), nil
	}
	result, err := h.engine.CalculateCarbonFootprint(
		request.GetString("sector", ""),
		employees,
		request.GetFloat("annual_energy_kwh", 0),
		request.GetBool("has_renewable_energy", false),
	)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("carbon estimate failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleGetGreenMetrics(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	size, err := request.RequireFloat("investment_size")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid metrics parameters: %v", err)), nil
	}
	if size < 0 {
		return mcp.NewToolResultError(fmt.Sprintf("investment_size must not be negative (received %v)", size)), nil
	}
	return jsonResult(h.engine.GetGreenMetrics(request.GetString("sector", ""), size))
}

func (h *toolHandler) handleGetSustainabilityGoals(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.engine.GetSustainabilityGoals(request.GetString("sector", "")))
}

func (h *toolHandler) handleGetGreenIncentives(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(h.engine.GetGreenIncentives())
}
