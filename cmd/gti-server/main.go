package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	handlers "go-type-input/internal/server"
)

func main() {
	mode := flag.String("mode", "stdio", "Transport mode: stdio or sse")
	addr := flag.String("addr", ":8080", "HTTP listen address for SSE")
	path := flag.String("path", "/mcp/sse", "HTTP path for SSE connections")
	level := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	h := handlers.NewHandlers()
	if lvl, err := log.ParseLevel(*level); err == nil {
		h.Logger.SetLevel(lvl)
	} else {
		h.Logger.Warn("unknown log level, using info", "level", *level)
	}

	s := server.NewMCPServer(
		"Go Type Input Resolver",
		"1.0.0",
		server.WithToolCapabilities(false),
	)
	handlers.RegisterTools(s, h)

	if err := h.Serve(s, *mode, *addr, *path); err != nil {
		h.Logger.Error("server stopped", "mode", *mode, "error", err)
		os.Exit(1)
	}
}
