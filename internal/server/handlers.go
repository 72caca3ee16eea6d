package server

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"go-type-input/internal/glob"
	"go-type-input/internal/input"
	"go-type-input/internal/output"
	"go-type-input/internal/tracer"
)

// Handlers serves the MCP tools. Every call loads the project afresh, so
// results always reflect the code on disk.
type Handlers struct {
	Logger *log.Logger
}

// NewHandlers returns handlers logging to stderr; stdout belongs to the
// stdio transport.
func NewHandlers() *Handlers {
	return &Handlers{Logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "gti-server"})}
}

// loadProject is a shared helper that loads Go packages from a project path.
func (h *Handlers) loadProject(ctx context.Context, projectPath string, depth int) (*tracer.Project, error) {
	return tracer.Load(ctx, projectPath, tracer.Options{
		AllowErrors: true,
		Depth:       depth,
		Logger:      h.Logger,
	})
}

// optionalStrings returns nil when key is absent so that absent and empty
// lists stay distinguishable.
func optionalStrings(request mcp.CallToolRequest, key string) []string {
	if _, ok := request.GetArguments()[key]; !ok {
		return nil
	}
	return request.GetStringSlice(key, []string{})
}

// structured returns v as structured content with its JSON encoding as the
// text fallback for clients without structured output support.
func structured(v any, tool string) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultStructured(v, tool)
	}
	return mcp.NewToolResultStructured(v, string(data))
}

// resolveInputsHandler handles requests for the 'resolve_inputs' tool.
func (h *Handlers) resolveInputsHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	req := input.Request{
		Names:       optionalStrings(request, "types"),
		Patterns:    optionalStrings(request, "patterns"),
		Application: request.GetString("application", ""),
		Excluded:    optionalStrings(request, "excluded"),
	}
	depth := request.GetInt("depth", tracer.DefaultDepth)
	if depth == 0 {
		depth = -1
	}

	p, err := h.loadProject(ctx, project, depth)
	if err != nil {
		return mcp.NewToolResultError("Failed to load project: " + err.Error()), nil
	}

	types, err := input.Resolve(req, input.Environment{
		Types:       p,
		Inventory:   p,
		Application: p,
		Logger:      h.Logger,
	})
	if err != nil {
		if errors.Is(err, input.ErrNoInput) {
			return mcp.NewToolResultError("No input types found: name types, add patterns or set an application."), nil
		}
		return mcp.NewToolResultError("Failed to resolve inputs: " + err.Error()), nil
	}

	return structured(output.Records(types), "resolve_inputs"), nil
}

// listTypesHandler handles requests for the 'list_types' tool.
func (h *Handlers) listTypesHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p, err := h.loadProject(ctx, project, tracer.DefaultDepth)
	if err != nil {
		return mcp.NewToolResultError("Failed to load project: " + err.Error()), nil
	}

	names := p.AllNames()
	if patterns := optionalStrings(request, "patterns"); len(patterns) > 0 {
		names = glob.Filter(names, glob.CompileAll(patterns))
	}
	return structured(names, "list_types"), nil
}

type compiledGlob struct {
	Pattern string   `json:"pattern"`
	Expr    string   `json:"expr"`
	Tokens  []string `json:"tokens"`
}

// compileGlobHandler handles requests for the 'compile_glob' tool.
func (h *Handlers) compileGlobHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern, err := request.RequireString("pattern")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	p := glob.Compile(pattern)
	result := compiledGlob{Pattern: p.String(), Expr: p.Expr(), Tokens: []string{}}
	for _, tok := range p.Tokens() {
		result.Tokens = append(result.Tokens, tok.Kind.String()+":"+tok.Text)
	}
	return structured(result, "compile_glob"), nil
}

// funcCodeHandler handles requests for the 'func_code' tool.
func (h *Handlers) funcCodeHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	file, err := request.RequireString("file")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	funcName, err := request.RequireString("func")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(project, file)
	}
	if abs, err := filepath.Abs(file); err == nil {
		file = abs
	}

	p, err := h.loadProject(ctx, project, tracer.DefaultDepth)
	if err != nil {
		return mcp.NewToolResultError("Failed to load project: " + err.Error()), nil
	}
	target, err := p.FindTarget(file, funcName)
	if err != nil {
		return mcp.NewToolResultError("Failed to find target: " + err.Error()), nil
	}
	code, err := tracer.GetFuncCode(target)
	if err != nil {
		return mcp.NewToolResultError("Failed to get function code: " + err.Error()), nil
	}

	return mcp.NewToolResultText(code), nil
}

// RegisterTools defines all tools on the server and registers their handlers.
func RegisterTools(s *server.MCPServer, h *Handlers) {
	// Tool 1: resolve the input types for code generation.
	resolveInputsTool := mcp.NewTool("resolve_inputs",
		mcp.WithDescription("Resolve the Go types a code generator should process. Types can be named explicitly ('types'), selected with glob patterns over qualified names ('patterns', where '*' stays within one segment and '**' crosses segments), or discovered from an application entry point ('application': a function or a type whose exported methods are scanned). Results keep the order types, patterns, application; a type reachable in several ways is listed once per way. Fails if any named type cannot be loaded or nothing is found."),
		mcp.WithString("project", mcp.Required(), mcp.Description("Absolute path to your Go project root directory (e.g., '/home/user/myproject')")),
		mcp.WithArray("types", mcp.WithStringItems(), mcp.Description("Qualified type names, e.g. 'example.com/shop/model.Order'")),
		mcp.WithArray("patterns", mcp.WithStringItems(), mcp.Description("Glob patterns over qualified type names, e.g. 'example.com/shop/api.*Request'")),
		mcp.WithString("application", mcp.Description("Qualified name of the application entry point, e.g. 'example.com/shop/api.Server'")),
		mcp.WithArray("excluded", mcp.WithStringItems(), mcp.Description("Types or functions to skip while scanning the application")),
		mcp.WithNumber("depth", mcp.Description("How many call levels to follow from the application entry point (default 1, 0 = entry point only)")),
	)
	s.AddTool(resolveInputsTool, h.resolveInputsHandler)

	// Tool 2: list the type names declared in the project.
	listTypesTool := mcp.NewTool("list_types",
		mcp.WithDescription("List the qualified names of all types declared in a Go project, optionally filtered by glob patterns. Use this to check what a pattern will select before calling 'resolve_inputs'."),
		mcp.WithString("project", mcp.Required(), mcp.Description("Absolute path to your Go project root directory")),
		mcp.WithArray("patterns", mcp.WithStringItems(), mcp.Description("Optional glob patterns; a name is listed if any pattern matches it")),
	)
	s.AddTool(listTypesTool, h.listTypesHandler)

	// Tool 3: show how a glob compiles.
	compileGlobTool := mcp.NewTool("compile_glob",
		mcp.WithDescription("Show the tokens and the anchored regular expression a glob pattern compiles to."),
		mcp.WithString("pattern", mcp.Required(), mcp.Description("Glob pattern, e.g. 'example.com/shop/**.*Dto'")),
	)
	s.AddTool(compileGlobTool, h.compileGlobHandler)

	// Tool 4: retrieve the source code of a specific target function.
	funcCodeTool := mcp.NewTool("func_code",
		mcp.WithDescription("Get the complete, formatted source code for any Go function or method, e.g. an application entry point found while resolving inputs."),
		mcp.WithString("project", mcp.Required(), mcp.Description("Absolute path to your Go project root directory")),
		mcp.WithString("file", mcp.Required(), mcp.Description("Path to the Go file containing the function, relative to project root (e.g., 'api/server.go')")),
		mcp.WithString("func", mcp.Required(), mcp.Description("Exact function or method name to retrieve (case-sensitive)")),
	)
	s.AddTool(funcCodeTool, h.funcCodeHandler)
}
