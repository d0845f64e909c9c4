package mcptools

import (
	"context"
	"fmt"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListMoodsHandler returns the handler function for the list_moods MCP tool.
func ListMoodsHandler(catalog mood.Catalog) func(ctx context.Context, req *mcp.CallToolRequest, input ListMoodsInput) (*mcp.CallToolResult, ListMoodsOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListMoodsInput) (*mcp.CallToolResult, ListMoodsOutput, error) {
		moods := make([]MoodResult, len(catalog))
		for i, o := range catalog {
			moods[i] = MoodResult{Index: i + 1, Emoji: o.Emoji, Description: o.Description}
		}
		return nil, ListMoodsOutput{Moods: moods}, nil
	}
}

// GetHistoryHandler returns the handler function for the get_history MCP tool.
// Records are returned oldest first.
func GetHistoryHandler(store MoodStore) func(ctx context.Context, req *mcp.CallToolRequest, input GetHistoryInput) (*mcp.CallToolResult, GetHistoryOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetHistoryInput) (*mcp.CallToolResult, GetHistoryOutput, error) {
		h := store.History()
		if input.Limit > 0 && len(h) > input.Limit {
			h = h[len(h)-input.Limit:]
		}

		records := make([]RecordResult, len(h))
		for i, r := range h {
			records[i] = toRecordResult(r)
		}
		return nil, GetHistoryOutput{Records: records, Total: len(store.History())}, nil
	}
}

// RecordMoodHandler returns the handler function for the record_mood MCP tool.
// The reply is sent once the write has been handed to the slot.
func RecordMoodHandler(store MoodStore, catalog mood.Catalog) func(ctx context.Context, req *mcp.CallToolRequest, input RecordMoodInput) (*mcp.CallToolResult, RecordMoodOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecordMoodInput) (*mcp.CallToolResult, RecordMoodOutput, error) {
		option, ok := catalog.Lookup(input.Mood)
		if !ok {
			return nil, RecordMoodOutput{}, fmt.Errorf("unknown mood %q", input.Mood)
		}

		r := store.Append(option)
		if err := store.Flush(ctx); err != nil {
			return nil, RecordMoodOutput{}, err
		}
		return nil, RecordMoodOutput{Record: toRecordResult(r)}, nil
	}
}
