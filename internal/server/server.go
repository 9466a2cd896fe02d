package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ironsheep/image-mosaic/internal/imaging"
)

// Server answers MCP requests for the mosaic tools. Decoded images are cached
// for the lifetime of the server.
type Server struct {
	cache   *imaging.ImageCache
	version string
	methods map[string]methodHandler
}

// methodHandler answers one JSON-RPC method. A nil response means the
// request was a notification.
type methodHandler func(req *MCPRequest) *MCPResponse

// MCPRequest is one JSON-RPC 2.0 request line.
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse is one JSON-RPC 2.0 response line.
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError is the error member of a response.
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	protocolVersion = "2024-11-05"
	serverName      = "image-mosaic"

	// Requests are single JSON lines; rendered images only travel outward.
	maxRequestBytes = 1 << 20
)

// New returns a server that reports version in its initialize reply.
func New(version string) *Server {
	s := &Server{
		cache:   imaging.NewImageCache(),
		version: version,
	}
	s.methods = map[string]methodHandler{
		"initialize":                s.handleInitialize,
		"notifications/initialized": func(*MCPRequest) *MCPResponse { return nil },
		"ping":                      s.handlePing,
		"tools/list":                s.handleToolsList,
		"tools/call":                s.handleToolsCall,
	}
	return s
}

// Run serves stdin to stdout until stdin closes.
func (s *Server) Run() error {
	return s.Serve(os.Stdin, os.Stdout)
}

// Serve answers newline-delimited requests from in, one response line per
// request on out. Blank and malformed lines are skipped.
func (s *Server) Serve(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestBytes)
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Skipping malformed request: %v", err)
			continue
		}

		if resp := s.handleRequest(&req); resp != nil {
			if err := enc.Encode(resp); err != nil {
				return fmt.Errorf("failed to write response: %w", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}
	return nil
}

func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	handler, ok := s.methods[req.Method]
	if !ok {
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error:   &MCPError{Code: -32601, Message: "Method not found: " + req.Method},
		}
	}
	return handler(req)
}

func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": protocolVersion,
			"capabilities":    map[string]interface{}{"tools": map[string]interface{}{}},
			"serverInfo":      map[string]interface{}{"name": serverName, "version": s.version},
		},
	}
}

func (s *Server) handlePing(req *MCPRequest) *MCPResponse {
	return &MCPResponse{JSONRPC: "2.0", ID: req.ID, Result: map[string]interface{}{}}
}
