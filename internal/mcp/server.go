package mcp

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server with read-only fittrack tools: templates,
// sessions, predefined workouts, streak and weekly nutrition.
func NewServer(h *Handler) *mcp.Server {
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "fittrack",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_templates",
		Description: "Returns the owner's workout templates (title, template name, exercises with sets), newest first. Arg: owner_id.",
	}, h.ListTemplatesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_sessions",
		Description: "Returns the owner's workout sessions with completion progress, newest first. Args: owner_id; optional: completed_only, limit.",
	}, h.ListSessionsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workout_definitions",
		Description: "Returns the built-in predefined workouts that sessions can be started from.",
	}, h.ListDefinitionsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_streak",
		Description: "Returns the number of consecutive days with a completed workout, ending today or yesterday. Args: owner_id; optional: as_of (YYYY-MM-DD).",
	}, h.GetStreakTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_weekly_nutrition",
		Description: "Returns calories and macros (protein, carbs, fat) per day for the 7 days ending at as_of, with weekly totals and calorie shares. Args: owner_id; optional: as_of (YYYY-MM-DD).",
	}, h.GetWeeklyNutritionTool())

	return s
}

// NewHTTPHandler serves s over the streamable HTTP transport.
func NewHTTPHandler(s *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s
	}, nil)
}
