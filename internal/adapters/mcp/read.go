package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"folderswap/internal/application/commands"
	"folderswap/internal/bootstrap"
	"folderswap/internal/domain"
)

// RegisterReadTools adds the tools that only inspect keywords and folders
func RegisterReadTools(s *server.MCPServer, svc *bootstrap.Services, logger zerolog.Logger) {
	s.AddTool(listKeywordsTool(), logged(logger, "list_keywords", listKeywordsHandler(svc)))
	s.AddTool(getDirectoriesTool(), logged(logger, "get_directories", getDirectoriesHandler(svc)))
	s.AddTool(listFoldersTool(), logged(logger, "list_folders", listFoldersHandler(svc)))
}

// --- list_keywords ---

func listKeywordsTool() mcp.Tool {
	return mcp.NewTool("list_keywords",
		mcp.WithDescription("List registered keywords, one per line."),
		mcp.WithString("search",
			mcp.Description("Only keywords containing this text (case-insensitive)"),
		),
		mcp.WithString("sort",
			mcp.Description("Order of the result: register (default, registration order) or alpha"),
			mcp.Enum("register", "alpha"),
		),
	)
}

func listKeywordsHandler(svc *bootstrap.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		order, err := commands.ParseKeywordOrder(req.GetString("sort", ""))
		if err != nil {
			return toolError(err)
		}

		keywords, err := commands.NewListKeywordsCommand(svc.Keywords, req.GetString("search", ""), order).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(keywords) == 0 {
			return mcp.NewToolResultText("No keywords."), nil
		}
		return mcp.NewToolResultText(strings.Join(keywords, "\n")), nil
	}
}

// --- get_directories ---

func getDirectoriesTool() mcp.Tool {
	return mcp.NewTool("get_directories",
		mcp.WithDescription("Show the configured source and target directories and whether swaps are possible."),
	)
}

func getDirectoriesHandler(svc *bootstrap.Services) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(formatDirectories(svc)), nil
	}
}

func formatDirectories(svc *bootstrap.Services) string {
	pair := svc.Directories.Pair()
	show := func(path string) string {
		if path == "" {
			return "(not set)"
		}
		return path
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "source: %s\n", show(pair.Source))
	fmt.Fprintf(&sb, "target: %s\n", show(pair.Target))
	if err := svc.Directories.Validate(); err != nil {
		fmt.Fprintf(&sb, "warning: %s\n", err)
	}
	return sb.String()
}

// --- list_folders ---

func listFoldersTool() mcp.Tool {
	return mcp.NewTool("list_folders",
		mcp.WithDescription("List the top-level folders of source and target whose name contains the keyword. "+
			"Each line is '[x] name' for a folder in target or '[ ] name' for a folder in source."),
		mcp.WithString("keyword",
			mcp.Description("Keyword to match folder names against (case-insensitive)"),
			mcp.Required(),
		),
	)
}

func listFoldersHandler(svc *bootstrap.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		idx, err := commands.NewListFoldersCommand(svc.Engine, svc.Directories, req.GetString("keyword", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatIndex(idx)), nil
	}
}

// formatIndex renders one checkbox line per entry
func formatIndex(idx *domain.FolderIndex) string {
	if idx.Len() == 0 {
		return fmt.Sprintf("No folders match %q.", idx.Keyword)
	}
	var sb strings.Builder
	for _, e := range idx.Entries {
		mark := " "
		if e.InTarget() {
			mark = "x"
		}
		fmt.Fprintf(&sb, "[%s] %s\n", mark, e.Name)
	}
	return sb.String()
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

// logged attaches logger to the handler context and records failed calls
func logged(logger zerolog.Logger, name string, h server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logger.With().Str("tool", name).Logger().WithContext(ctx)
		result, err := h(ctx, req)
		if err != nil || (result != nil && result.IsError) {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("tool call failed")
		} else {
			zerolog.Ctx(ctx).Debug().Msg("tool call")
		}
		return result, err
	}
}
