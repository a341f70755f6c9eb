// Package mcp provides the stdio MCP server exposing conversational context
// tools to agents that drive the playback dispatcher.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-ports/playctx/internal/buildinfo"
	"github.com/go-ports/playctx/internal/convo"
	"github.com/go-ports/playctx/internal/models"
	"github.com/go-ports/playctx/internal/service"
)

var updateCommands = []string{
	convo.CmdSearch, convo.CmdCurrent, convo.CmdPlaylists, convo.CmdDevices,
	convo.CmdPlay, convo.CmdNext, convo.CmdPrevious,
}

const resolveDescription = `Resolve an ambiguous user phrase against recent playback context before acting on it.

kind=reference: pronouns such as "play that again", "add this to my playlist", "play it".
kind=number: numbered picks from the last search such as "play #3", "number 2", "result 4".
kind=playlist: a loose playlist name such as "workout" for "Workout Mix".

Returns the matched record as JSON, or null when nothing matches. Treat null as "ask the user to clarify".`

const updateDescription = `Record the JSON output of a playback command so later phrases can refer to it. Call this after every search, now-playing fetch, playlist listing and device listing. play, next and previous are accepted and currently change nothing.` //nolint:lll

const hintsDescription = `List short hints about which conversational references currently resolve.`

const summaryDescription = `Summarise the stored playback context: result counts, current track, device and conversation mode.`

// NewServer creates and registers all context tools on a new MCP server.
// It is separate from Serve so that tests can obtain a configured server
// without committing to the stdio transport.
func NewServer(svc *service.Service) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer("playctx", buildinfo.Version)
	registerTools(s, svc)
	return s
}

// Serve starts the stdio MCP server rooted at home, blocking until stdin closes.
func Serve(_ context.Context, home string) error {
	svc, err := service.New(home)
	if err != nil {
		return fmt.Errorf("mcp: init service: %w", err)
	}
	defer svc.Close()

	return mcpserver.ServeStdio(NewServer(svc))
}

// registerTools wires all four MCP tools into the server.
func registerTools(s *mcpserver.MCPServer, svc *service.Service) {
	s.AddTool(mcp.NewTool("context_resolve",
		mcp.WithDescription(resolveDescription),
		mcp.WithString("kind",
			mcp.Description("What the phrase refers to."),
			mcp.Required(),
			mcp.Enum(service.ResolveKinds...),
		),
		mcp.WithString("phrase",
			mcp.Description("The user's words, verbatim."),
			mcp.Required(),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleResolve(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("context_update",
		mcp.WithDescription(updateDescription),
		mcp.WithString("command",
			mcp.Description("The playback command that produced data."),
			mcp.Required(),
			mcp.Enum(updateCommands...),
		),
		mcp.WithString("data",
			mcp.Description("The command's JSON output, verbatim."),
		),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleUpdate(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("context_hints",
		mcp.WithDescription(hintsDescription),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleHints(ctx, svc, req)
	})

	s.AddTool(mcp.NewTool("context_summary",
		mcp.WithDescription(summaryDescription),
	), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSummary(ctx, svc, req)
	})
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

func handleResolve(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	got, err := svc.Resolve(req.GetString("kind", ""), req.GetString("phrase", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(got)
}

func handleUpdate(_ context.Context, svc *service.Service, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	command := req.GetString("command", "")
	if !svc.Update(command, []byte(req.GetString("data", ""))) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown command %q", command)), nil
	}
	return jsonResult(summaryMap(svc.Store.Summary()))
}

func handleHints(_ context.Context, svc *service.Service, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hints := svc.Store.Hints()
	if hints == nil {
		hints = make([]string, 0)
	}
	return jsonResult(hints)
}

func handleSummary(_ context.Context, svc *service.Service, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(summaryMap(svc.Store.Summary()))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func summaryMap(sum models.Summary) map[string]any {
	out := map[string]any{
		"search_results":    sum.SearchResults,
		"playlists":         sum.Playlists,
		"conversation_mode": sum.ConversationMode,
		"current_track":     nil,
		"device":            nil,
	}
	if sum.CurrentTrack != nil {
		out["current_track"] = sum.CurrentTrack.Label()
	}
	if sum.Device != nil {
		out["device"] = sum.Device.Name
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
