package mcptools

import (
	"context"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MoodStore is the part of the mood store the tools use.
type MoodStore interface {
	History() mood.History
	Append(option mood.Option) mood.Record
	Flush(ctx context.Context) error
}

// NewMoodMCPServer creates an in-memory MCP server exposing mood tools.
// Returns the server and a client transport for connecting to it.
func NewMoodMCPServer(store MoodStore) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered mood tools.
func CreateMCPServer(store MoodStore) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "moodctl",
		Version: "1.0.0",
	}, nil)

	catalog := mood.DefaultCatalog

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_moods",
		Description: "List the moods that can be recorded",
	}, ListMoodsHandler(catalog))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_history",
		Description: "Get recorded moods, oldest first",
	}, GetHistoryHandler(store))

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "record_mood",
		Description: "Record a mood by emoji or description",
	}, RecordMoodHandler(store, catalog))

	return server
}
