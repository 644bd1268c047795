package mcp

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/wmhttp/internal/platform"
)

const (
	ServerName    = "wmhttp"
	ServerVersion = "0.1.0"
)

// Server is the MCP server exposing window management as tools.
type Server struct {
	mcpServer *mcpsdk.Server
	backend   platform.Backend
	logger    *slog.Logger

	// mu serializes backend access across concurrent tool calls.
	mu sync.Mutex
}

// NewServer creates a new MCP server backed by the given window manager.
func NewServer(backend platform.Backend, logger *slog.Logger) (*Server, error) {
	if backend == nil {
		return nil, errors.New("window manager backend is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		backend: backend,
		logger:  logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List every managed window with its id, pid, title, monitor, workspace (-1 when on all workspaces), window type, fullscreen and hidden flags, and frame geometry.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_state",
		Description: "Report the active workspace index, the active monitor index, and the usable work area for all monitors and for the active monitor.",
	}, s.handleGetState)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "move_window",
		Description: "Move, resize and restack a window by id. When minimize is true the window is minimized and the geometry is ignored; otherwise it is restored, unmaximized and placed at x/y/width/height. above, focus, raise and stick are applied afterwards. Returns found=false when no window has that id.",
	}, s.handleMoveWindow)
}

func (s *Server) withBackend(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}
