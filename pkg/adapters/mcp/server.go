// Package mcp exposes the decision engine to agent tooling over the Model
// Context Protocol: introspection tools plus per-process graph resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sharetribe/txprocess"
	"github.com/sharetribe/txprocess/internal/dto"
	"github.com/sharetribe/txprocess/internal/presentation/graph"
	"github.com/sharetribe/txprocess/pkg/domain"
	"github.com/sharetribe/txprocess/pkg/ports"
)

// Engine combines the decision surface with the registry access the graph
// resources need.
type Engine interface {
	ports.DecisionEngine
}

// Server wraps the engine and exposes it as an MCP server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server instance with all tools and resources
// registered.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("txprocess-mcp", txprocess.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	listTool := mcp.NewTool("list_processes",
		mcp.WithDescription("List the supported transaction processes with their aliases and unit types."),
	)
	s.mcpServer.AddTool(listTool, s.handleListProcesses)

	stateTool := mcp.NewTool("get_state",
		mcp.WithDescription("Compute the lifecycle state a transaction is in after a given transition."),
		mcp.WithString("process_name", mcp.Required(),
			mcp.Description("Process name, canonical or legacy (e.g. default-booking, flex-booking-default-process).")),
		mcp.WithString("last_transition", mcp.Required(),
			mcp.Description("Transition identifier, e.g. transition/confirm-payment.")),
	)
	s.mcpServer.AddTool(stateTool, s.handleGetState)

	dataTool := mcp.NewTool("resolve_state_data",
		mcp.WithDescription("Compute the UI-decision descriptor for a transaction as seen by a role."),
		mcp.WithObject("transaction", mcp.Required(),
			mcp.Description("Transaction document: {id, attributes: {process_name, last_transition, transitions}}.")),
		mcp.WithString("role", mcp.Required(),
			mcp.Description("Viewer role: customer or provider.")),
	)
	s.mcpServer.AddTool(dataTool, s.handleResolveStateData)
}

func (s *Server) registerResources() {
	for _, info := range s.engine.SupportedProcesses() {
		proc, err := s.engine.Process(info.Name)
		if err != nil {
			continue
		}
		uri := fmt.Sprintf("txprocess://processes/%s/graph", info.Name)
		resource := mcp.NewResource(uri,
			fmt.Sprintf("%s process graph", info.Name),
			mcp.WithResourceDescription("Mermaid diagram of the process state graph."),
			mcp.WithMIMEType("text/plain"),
		)
		mermaid := graph.GenerateMermaid(proc.Definition, nil)
		s.mcpServer.AddResource(resource, func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      uri,
					MIMEType: "text/plain",
					Text:     mermaid,
				},
			}, nil
		})
	}
}

func (s *Server) handleListProcesses(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := json.Marshal(s.engine.SupportedProcesses())
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) handleGetState(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	processName, err := req.RequireString("process_name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	lastTransition, err := req.RequireString("last_transition")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	proc, err := s.engine.Process(processName)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	state := proc.StateAfterTransition(lastTransition)
	if state == "" {
		return mcp.NewToolResultText(fmt.Sprintf("state cannot be determined for transition %q", lastTransition)), nil
	}
	return mcp.NewToolResultText(state), nil
}

func (s *Server) handleResolveStateData(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	rawTx, ok := args["transaction"].(map[string]any)
	if !ok {
		return mcp.NewToolResultError("transaction must be an object"), nil
	}
	doc, err := dto.DecodeTransaction(rawTx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	role := domain.Role(req.GetString("role", ""))
	if !role.Valid() {
		return mcp.NewToolResultError(fmt.Sprintf("unknown role %q", role)), nil
	}

	data, err := s.engine.StateData(doc.ToDomain(), role)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(out)), nil
}
