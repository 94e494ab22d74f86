package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/streak"
	"github.com/2beens/fittrack/internal/workout"
	"github.com/2beens/fittrack/pkg"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type workoutReader interface {
	ListTemplates(ctx context.Context, ownerID string) ([]workout.Template, error)
	ListSessions(ctx context.Context, ownerID string, params workout.ListSessionsParams) ([]workout.Session, error)
}

type streakComputer interface {
	ComputeStreak(ctx context.Context, ownerID string, asOf time.Time) (*streak.Result, error)
}

type weekAggregator interface {
	AggregateWeek(ctx context.Context, ownerID string, asOf time.Time) (*nutrition.WeekSummary, error)
}

// Handler turns tool calls into read-only service calls and formats the results.
type Handler struct {
	workouts  workoutReader
	streaks   streakComputer
	nutrition weekAggregator
	loc       *time.Location
}

func NewHandler(
	workouts workoutReader,
	streaks streakComputer,
	nutrition weekAggregator,
	loc *time.Location,
) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		workouts:  workouts,
		streaks:   streaks,
		nutrition: nutrition,
		loc:       loc,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
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

type OwnerInput struct {
	OwnerID string `json:"owner_id" jsonschema:"Owner (user) id"`
}

func (h *Handler) ListTemplatesTool() func(context.Context, *mcp.CallToolRequest, OwnerInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in OwnerInput) (*mcp.CallToolResult, any, error) {
		templates, err := h.workouts.ListTemplates(ctx, in.OwnerID)
		if err != nil {
			return errorResult("Error listing templates: " + err.Error()), nil, nil
		}
		return jsonResult(templates), nil, nil
	}
}

type SessionsInput struct {
	OwnerID       string `json:"owner_id" jsonschema:"Owner (user) id"`
	CompletedOnly bool   `json:"completed_only,omitempty" jsonschema:"Only return completed sessions"`
	Limit         int    `json:"limit,omitempty" jsonschema:"Max number of sessions, newest first (0 = all)"`
}

func (h *Handler) ListSessionsTool() func(context.Context, *mcp.CallToolRequest, SessionsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SessionsInput) (*mcp.CallToolResult, any, error) {
		if in.Limit < 0 {
			return errorResult("Invalid limit: must not be negative"), nil, nil
		}
		sessions, err := h.workouts.ListSessions(ctx, in.OwnerID, workout.ListSessionsParams{
			OnlyCompleted: in.CompletedOnly,
			Limit:         in.Limit,
		})
		if err != nil {
			return errorResult("Error listing sessions: " + err.Error()), nil, nil
		}
		resp := make([]workout.SessionResponse, 0, len(sessions))
		for _, s := range sessions {
			resp = append(resp, workout.NewSessionResponse(s))
		}
		return jsonResult(resp), nil, nil
	}
}

func (h *Handler) ListDefinitionsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(workout.Definitions()), nil, nil
	}
}

type AsOfInput struct {
	OwnerID string `json:"owner_id" jsonschema:"Owner (user) id"`
	AsOf    string `json:"as_of,omitempty" jsonschema:"Reference date (YYYY-MM-DD), defaults to today"`
}

func (h *Handler) GetStreakTool() func(context.Context, *mcp.CallToolRequest, AsOfInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AsOfInput) (*mcp.CallToolResult, any, error) {
		asOf, err := pkg.ParseDate(in.AsOf, h.loc)
		if err != nil {
			return errorResult("Invalid as_of: use YYYY-MM-DD"), nil, nil
		}
		result, err := h.streaks.ComputeStreak(ctx, in.OwnerID, asOf)
		if err != nil {
			return errorResult("Error computing streak: " + err.Error()), nil, nil
		}
		return jsonResult(result), nil, nil
	}
}

func (h *Handler) GetWeeklyNutritionTool() func(context.Context, *mcp.CallToolRequest, AsOfInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AsOfInput) (*mcp.CallToolResult, any, error) {
		asOf, err := pkg.ParseDate(in.AsOf, h.loc)
		if err != nil {
			return errorResult("Invalid as_of: use YYYY-MM-DD"), nil, nil
		}
		week, err := h.nutrition.AggregateWeek(ctx, in.OwnerID, asOf)
		if err != nil {
			return errorResult("Error aggregating week: " + err.Error()), nil, nil
		}
		return jsonResult(week), nil, nil
	}
}
