// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/esgscore/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// investorOptions are the tool arguments that describe an investor for scoring.
func investorOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("sector", mcp.Description("Industry sector, e.g. 'Technology & IT' or 'Textiles & Apparel'. Unknown sectors use a uniform baseline."), mcp.Required()),
		mcp.WithArray("certifications", mcp.Description("Certifications held, e.g. 'ISO 14001', 'SA8000'."), mcp.WithStringItems()),
		mcp.WithBoolean("has_etp", mcp.Description("Whether an effluent treatment plant is present.")),
		mcp.WithBoolean("has_solar_power", mcp.Description("Whether the site runs on solar power.")),
		mcp.WithNumber("green_cover_percent", mcp.Description("Green cover of the site, 0-100.")),
		mcp.WithNumber("female_workforce_percent", mcp.Description("Share of women in the workforce, 0-100.")),
		mcp.WithNumber("safety_incidents", mcp.Description("Safety incidents in the last year.")),
	}
}

// NewMCPServer initializes and configures the ESG MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(engine contract.ScoringEngine) *server.MCPServer {
	s := server.NewMCPServer(
		"ESG Scoring Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{engine: engine}

	// --- 1. Tool: calculate_esg_score ---
	s.AddTool(mcp.NewTool("calculate_esg_score",
		append([]mcp.ToolOption{mcp.WithDescription("Score an investor on environmental, social and governance pillars and return the letter rating.")}, investorOptions()...)...,
	), h.handleCalculateESGScore)

	// --- 2. Tool: compare_esg_with_peers ---
	s.AddTool(mcp.NewTool("compare_esg_with_peers",
		append([]mcp.ToolOption{mcp.WithDescription("Score an investor and compare the result with the average of its sector.")}, investorOptions()...)...,
	), h.handleCompareESGWithPeers)

	// --- 3. Tool: calculate_carbon_footprint ---
	s.AddTool(mcp.NewTool("calculate_carbon_footprint",
		mcp.WithDescription("Estimate annual CO2e emissions, offsets needed and their cost."),
		mcp.WithString("sector", mcp.Description("Industry sector.")),
		mcp.WithNumber("employee_count", mcp.Description("Number of employees, must be greater than zero."), mcp.Required()),
		mcp.WithNumber("annual_energy_kwh", mcp.Description("Annual electricity consumption in kWh.")),
		mcp.WithBoolean("has_renewable_energy", mcp.Description("Whether electricity comes from renewable sources.")),
	), h.handleCalculateCarbonFootprint)

	// --- 4. Tool: get_green_metrics ---
	s.AddTool(mcp.NewTool("get_green_metrics",
		mcp.WithDescription("Return illustrative green metrics scaled to an investment size."),
		mcp.WithString("sector", mcp.Description("Industry sector.")),
		mcp.WithNumber("investment_size", mcp.Description("Investment size in crore."), mcp.Required()),
	), h.handleGetGreenMetrics)

	// --- 5. Tool: get_sustainability_goals ---
	s.AddTool(mcp.NewTool("get_sustainability_goals",
		mcp.WithDescription("List the sustainability goals with progress and SDG mapping."),
		mcp.WithString("sector", mcp.Description("Industry sector.")),
	), h.handleGetSustainabilityGoals)

	// --- 6. Tool: get_green_incentives ---
	s.AddTool(mcp.NewTool("get_green_incentives",
		mcp.WithDescription("List the green incentives available to investors."),
	), h.handleGetGreenIncentives)

	return s
}

// StartMCPServer starts the ESG MCP server on stdio.
func StartMCPServer(_ context.Context, engine contract.ScoringEngine) error {
	s := NewMCPServer(engine)
	return server.ServeStdio(s)
}
