package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with the training tools: progress, muscle groups,
// recovery score, personal bests and the workout history.
// Used by the HTTP backend when mounting MCP at /mcp and by cmd/sensefit_mcp over stdio.
func NewServer(statsSource StatsSource, workoutsRepo WorkoutsRepo) *mcp.Server {
	h := NewHandler(NewContextService(statsSource, workoutsRepo))
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "sensefit-context",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_progress_stats",
		Description: "Returns overall training progress: total workouts, total volume (completed sets only), average duration, personal record count, and this week's workouts, volume and target. Use when asked how training is going overall.",
	}, h.GetProgressStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_muscle_group_stats",
		Description: "Returns completed sets and volume per muscle group, with a percentage relative to the most trained group. Sorted by sets, descending. Use when analyzing training balance.",
	}, h.GetMuscleGroupStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weekly_recovery_score",
		Description: "Returns a 0-100 recovery score based on the number of workouts finished in the last 7 days (fewer workouts means more recovered).",
	}, h.GetWeeklyRecoveryScoreTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_bests",
		Description: "Returns the heaviest completed set per exercise with reps, estimated one rep max and the date it was done.",
	}, h.GetPersonalBestsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workouts",
		Description: "Returns finished workouts (exercises, sets, totals) whose date is within the given range, newest first. Args: from_date, to_date (YYYY-MM-DD, both inclusive, both optional).",
	}, h.ListWorkoutsTool())

	return s
}
