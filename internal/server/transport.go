package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/server"
)

// SSEPaths returns the endpoint paths for an SSE transport mounted at
// ssePath. The message endpoint sits next to it: "/mcp/sse" pairs with
// "/mcp/message", any other path gets "/message" appended.
func SSEPaths(ssePath string) (sse, message string) {
	message = strings.Replace(ssePath, "/sse", "/message", 1)
	if message == ssePath {
		message = strings.TrimRight(ssePath, "/") + "/message"
	}
	return ssePath, message
}

// SSEMux mounts the SSE and message handlers of s on a fresh mux.
func SSEMux(s *server.MCPServer, ssePath string) *http.ServeMux {
	sse := server.NewSSEServer(s)
	ssePath, messagePath := SSEPaths(ssePath)
	mux := http.NewServeMux()
	mux.Handle(ssePath, sse.SSEHandler())
	mux.Handle(messagePath, sse.MessageHandler())
	return mux
}

// Serve runs s on the given transport until it fails.
func (h *Handlers) Serve(s *server.MCPServer, mode, addr, ssePath string) error {
	switch mode {
	case "stdio":
		return server.ServeStdio(s)
	case "sse":
		ssePath, messagePath := SSEPaths(ssePath)
		h.Logger.Info("starting SSE server", "addr", addr, "sse", ssePath, "message", messagePath)
		return http.ListenAndServe(addr, SSEMux(s, ssePath))
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}
