package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/ppda"
	"github.com/aretw0/ppda/pkg/catalog"
	"github.com/aretw0/ppda/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MaxGenerateCount bounds the count argument of the generate tool.
const MaxGenerateCount = 1000

// Service is the subset of ppda.Workspace the MCP server needs.
type Service interface {
	Models() []catalog.Model
	Engine(name string) (*ppda.Engine, error)
}

// ModelInfo describes one model in list_models.
type ModelInfo struct {
	Name        string          `json:"name" jsonschema_description:"Model name"`
	Description string          `json:"description" jsonschema_description:"What the model generates"`
	Alphabet    []domain.Symbol `json:"alphabet" jsonschema_description:"Input alphabet in canonical order"`
	Normalized  bool            `json:"normalized" jsonschema_description:"Whether every configuration is a probability distribution"`
}

// ListResponse is the output of list_models.
type ListResponse struct {
	Models []ModelInfo `json:"models"`
}

// AcceptArgs are the arguments of the accept tool.
type AcceptArgs struct {
	Model string `json:"model"`
	Text  string `json:"text"`
	Sep   string `json:"sep"`
}

// AcceptResponse is the output of the accept tool.
type AcceptResponse struct {
	Model   string          `json:"model"`
	Symbols []domain.Symbol `json:"symbols" jsonschema_description:"The scored string, tokenized"`
	Weight  string          `json:"weight" jsonschema_description:"Exact probability as n/d"`
}

// GenerateArgs are the arguments of the generate tool.
type GenerateArgs struct {
	Model string `json:"model"`
	Seed  int64  `json:"seed"`
	Count int    `json:"count"`
}

// GenerateResponse is the output of the generate tool.
type GenerateResponse struct {
	Samples []domain.Sample `json:"samples"`
}

// Server exposes a Workspace as an MCP Server.
type Server struct {
	service   Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(service Service) *Server {
	s := &Server{
		service:   service,
		mcpServer: server.NewMCPServer("ppda-mcp", ppda.Version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_models",
		mcp.WithDescription("List the available probabilistic pushdown automata."),
		mcp.WithOutputSchema[ListResponse](),
	), mcp.NewStructuredToolHandler(s.handleListModels))

	s.mcpServer.AddTool(mcp.NewTool("accept",
		mcp.WithDescription("Compute the exact probability that a model generates a string."),
		mcp.WithString("model", mcp.Required(), mcp.Description("Model name")),
		mcp.WithString("text", mcp.Required(), mcp.Description("String to score")),
		mcp.WithString("sep", mcp.Description("Symbol separator (empty: one symbol per character)")),
		mcp.WithOutputSchema[AcceptResponse](),
	), mcp.NewStructuredToolHandler(s.handleAccept))

	s.mcpServer.AddTool(mcp.NewTool("generate",
		mcp.WithDescription("Sample strings from a model. The same seed always yields the same strings."),
		mcp.WithString("model", mcp.Required(), mcp.Description("Model name")),
		mcp.WithNumber("seed", mcp.Description("Random seed (0 uses the default)")),
		mcp.WithNumber("count", mcp.Description(fmt.Sprintf("Number of samples, 1 to %d (default 1)", MaxGenerateCount))),
		mcp.WithOutputSchema[GenerateResponse](),
	), mcp.NewStructuredToolHandler(s.handleGenerate))
}

func (s *Server) handleListModels(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ListResponse, error) {
	models := s.service.Models()
	out := ListResponse{Models: make([]ModelInfo, 0, len(models))}
	for _, m := range models {
		eng, err := s.service.Engine(m.Name)
		if err != nil {
			return ListResponse{}, err
		}
		out.Models = append(out.Models, ModelInfo{
			Name:        m.Name,
			Description: m.Description,
			Alphabet:    eng.Model().Alphabet(),
			Normalized:  eng.Check() == nil,
		})
	}
	return out, nil
}

func (s *Server) handleAccept(ctx context.Context, request mcp.CallToolRequest, args AcceptArgs) (AcceptResponse, error) {
	eng, err := s.service.Engine(args.Model)
	if err != nil {
		return AcceptResponse{}, err
	}
	y := domain.Tokenize(args.Text, args.Sep)
	w, err := eng.Accept(ctx, y)
	if err != nil {
		return AcceptResponse{}, fmt.Errorf("accept failed: %w", err)
	}
	return AcceptResponse{
		Model:   args.Model,
		Symbols: []domain.Symbol(y),
		Weight:  w.RatString(),
	}, nil
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest, args GenerateArgs) (GenerateResponse, error) {
	if args.Count == 0 {
		args.Count = 1
	}
	if args.Count < 0 || args.Count > MaxGenerateCount {
		return GenerateResponse{}, fmt.Errorf("count must be between 1 and %d", MaxGenerateCount)
	}

	eng, err := s.service.Engine(args.Model)
	if err != nil {
		return GenerateResponse{}, err
	}

	if args.Count == 1 {
		sample, err := eng.Generate(ctx, args.Seed)
		if err != nil {
			return GenerateResponse{}, fmt.Errorf("generate failed: %w", err)
		}
		return GenerateResponse{Samples: []domain.Sample{*sample}}, nil
	}

	samples, err := eng.Batch(ctx, args.Count, args.Seed)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("generate failed: %w", err)
	}
	return GenerateResponse{Samples: samples}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: ppda://models
	s.mcpServer.AddResource(mcp.NewResource("ppda://models", "Available Models",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		list, err := s.handleListModels(ctx, mcp.CallToolRequest{}, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to list models: %w", err)
		}
		jsonBytes, _ := json.Marshal(list)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "ppda://models",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
