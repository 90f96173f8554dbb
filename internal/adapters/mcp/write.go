package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"folderswap/internal/application/commands"
	"folderswap/internal/bootstrap"
)

// RegisterWriteTools adds the tools that change keywords, directories or
// move folders on disk
func RegisterWriteTools(s *server.MCPServer, svc *bootstrap.Services, logger zerolog.Logger) {
	s.AddTool(addKeywordTool(), logged(logger, "add_keyword", addKeywordHandler(svc)))
	s.AddTool(removeKeywordTool(), logged(logger, "remove_keyword", removeKeywordHandler(svc)))
	s.AddTool(setDirectoryTool(), logged(logger, "set_directory", setDirectoryHandler(svc)))
	s.AddTool(setSideTool(), logged(logger, "set_side", setSideHandler(svc)))
}

// --- add_keyword ---

func addKeywordTool() mcp.Tool {
	return mcp.NewTool("add_keyword",
		mcp.WithDescription("Register a keyword. Keywords are stored lowercase; duplicates are ignored."),
		mcp.WithString("keyword",
			mcp.Description("Keyword to register"),
			mcp.Required(),
		),
	)
}

func addKeywordHandler(svc *bootstrap.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewAddKeywordCommand(svc.Keywords, req.GetString("keyword", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_keyword ---

func removeKeywordTool() mcp.Tool {
	return mcp.NewTool("remove_keyword",
		mcp.WithDescription("Remove a registered keyword. Folders on disk are not touched."),
		mcp.WithString("keyword",
			mcp.Description("Keyword to remove"),
			mcp.Required(),
		),
	)
}

func removeKeywordHandler(svc *bootstrap.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRemoveKeywordCommand(svc.Keywords, req.GetString("keyword", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_directory ---

func setDirectoryTool() mcp.Tool {
	return mcp.NewTool("set_directory",
		mcp.WithDescription("Set the source or target directory. The path must be an existing directory."),
		mcp.WithString("side",
			mcp.Description("Which directory to set"),
			mcp.Enum("source", "target"),
			mcp.Required(),
		),
		mcp.WithString("path",
			mcp.Description("Directory path; ~ is expanded and the path is stored absolute"),
			mcp.Required(),
		),
	)
}

func setDirectoryHandler(svc *bootstrap.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewSetDirectoryCommand(svc.Directories, req.GetString("side", ""), req.GetString("path", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_side ---

func setSideTool() mcp.Tool {
	return mcp.NewTool("set_side",
		mcp.WithDescription("Move a folder matching the keyword into source or target. "+
			"Moving a folder into target moves every other matching folder in target back to source. "+
			"Without side the folder's current side is flipped."),
		mcp.WithString("keyword",
			mcp.Description("Keyword the folder matches"),
			mcp.Required(),
		),
		mcp.WithString("folder",
			mcp.Description("Folder name as printed by list_folders"),
			mcp.Required(),
		),
		mcp.WithString("side",
			mcp.Description("Side to move the folder to; omit to flip"),
			mcp.Enum("source", "target"),
		),
	)
}

func setSideHandler(svc *bootstrap.Services) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewToggleCommand(svc.Engine, svc.Directories,
			req.GetString("keyword", ""),
			req.GetString("folder", ""),
			req.GetString("side", ""),
		)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s\n\n%s", result.Message, formatIndex(result.Index))), nil
	}
}
