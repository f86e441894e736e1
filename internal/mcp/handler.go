package mcp

import (
	"context"
	"encoding/json"

	"github.com/2beens/sensefit/internal/workout"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler handles MCP tool requests and responses: parses input, calls the service, formats MCP result.
type Handler struct {
	service contextService
}

// NewHandler builds a handler with the given service.
func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

// GetProgressStatsTool returns the MCP tool handler for get_progress_stats.
func (h *Handler) GetProgressStatsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.GetProgress(ctx)), nil, nil
	}
}

// GetMuscleGroupStatsTool returns the MCP tool handler for get_muscle_group_stats.
func (h *Handler) GetMuscleGroupStatsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.GetMuscleGroups(ctx)), nil, nil
	}
}

// GetWeeklyRecoveryScoreTool returns the MCP tool handler for get_weekly_recovery_score.
func (h *Handler) GetWeeklyRecoveryScoreTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(map[string]int{"score": h.service.GetRecoveryScore(ctx)}), nil, nil
	}
}

// GetPersonalBestsTool returns the MCP tool handler for get_personal_bests.
func (h *Handler) GetPersonalBestsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.GetPersonalBests(ctx)), nil, nil
	}
}

// ListWorkoutsInput is the input for list_workouts.
type ListWorkoutsInput struct {
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD or RFC3339), inclusive"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD or RFC3339), inclusive"`
}

// ListWorkoutsTool returns the MCP tool handler for list_workouts.
func (h *Handler) ListWorkoutsTool() func(context.Context, *mcp.CallToolRequest, ListWorkoutsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ListWorkoutsInput) (*mcp.CallToolResult, any, error) {
		from, to, err := workout.ParseDateRange(in.FromDate, in.ToDate)
		if err != nil {
			return errorResult("Invalid date range: " + err.Error()), nil, nil
		}
		return jsonResult(h.service.ListWorkouts(ctx, from, to)), nil, nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}
