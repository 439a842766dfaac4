// Package mcp implements a Model Context Protocol stdio server that exposes
// path joining as tools.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/blackwell-systems/pathjoin/internal/config"
)

const protocolVersion = "2024-11-05"

// maxMessageSize bounds one newline-delimited request.
const maxMessageSize = 1 << 20

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

// Server answers newline-delimited JSON-RPC 2.0 requests with the join tools.
type Server struct {
	cfg     *config.Config
	version string
	tools   []toolDef
	methods map[string]method
}

// method answers one JSON-RPC method. A non-nil rpcError becomes the
// response's error member.
type method func(params json.RawMessage) (any, *rpcError)

type toolDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
	handler     func(args json.RawMessage) (any, error)
}

type request struct {
	ID     *json.RawMessage `json:"id,omitempty"`
	Method string           `json:"method"`
	Params json.RawMessage  `json:"params,omitempty"`
}

type response struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *json.RawMessage `json:"id,omitempty"`
	Result  any              `json:"result,omitempty"`
	Error   *rpcError        `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// toolResult is the MCP content envelope for tools/call.
type toolResult struct {
	Content []textContent `json:"content"`
	IsError bool          `json:"isError"`
}

type textContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewServer returns a Server with join_path and explain_path registered.
// cfg supplies named bases and may be nil.
func NewServer(cfg *config.Config, version string) *Server {
	if cfg == nil {
		cfg = &config.Config{}
	}
	s := &Server{cfg: cfg, version: version}
	s.methods = map[string]method{
		"initialize": s.initialize,
		"tools/list": s.listTools,
		"tools/call": s.callTool,
	}
	addTools(s)
	return s
}

func (s *Server) registerTool(def toolDef) {
	s.tools = append(s.tools, def)
}

func (s *Server) lookupTool(name string) (toolDef, bool) {
	for _, t := range s.tools {
		if t.Name == name {
			return t, true
		}
	}
	return toolDef{}, false
}

// inbound is one line read from the client, or the read error that ended input.
type inbound struct {
	line string
	err  error
}

// Run serves requests from r until r reaches EOF or ctx is done, writing one
// response line per request to w. Notifications get no response.
func (s *Server) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	in := make(chan inbound)
	go func() {
		defer close(in)
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxMessageSize)
		for sc.Scan() {
			select {
			case in <- inbound{line: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case in <- inbound{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	out := bufio.NewWriter(w)
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-in:
			if !ok {
				return nil
			}
			if msg.err != nil {
				return fmt.Errorf("reading request: %w", msg.err)
			}
			resp, reply := s.dispatch([]byte(msg.line))
			if !reply {
				continue
			}
			if err := writeLine(out, resp); err != nil {
				return fmt.Errorf("writing response: %w", err)
			}
		}
	}
}

// dispatch decodes one message and builds its response. reply is false for
// notifications.
func (s *Server) dispatch(raw []byte) (resp response, reply bool) {
	resp.JSONRPC = "2.0"

	var req request
	if err := json.Unmarshal(raw, &req); err != nil {
		resp.Error = &rpcError{Code: codeParseError, Message: "Parse error"}
		return resp, true
	}
	if req.ID == nil {
		return resp, false
	}
	resp.ID = req.ID

	m, ok := s.methods[req.Method]
	if !ok {
		resp.Error = &rpcError{Code: codeMethodNotFound, Message: "Method not found"}
		return resp, true
	}
	resp.Result, resp.Error = m(req.Params)
	return resp, true
}

func (s *Server) initialize(json.RawMessage) (any, *rpcError) {
	return map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities":    map[string]any{"tools": map[string]any{}},
		"serverInfo":      map[string]any{"name": "pathjoin", "version": s.version},
	}, nil
}

func (s *Server) listTools(json.RawMessage) (any, *rpcError) {
	tools := s.tools
	if tools == nil {
		tools = []toolDef{}
	}
	return map[string]any{"tools": tools}, nil
}

// callTool runs a tool. Failures inside the tool come back as an isError
// result; only undecodable params are a protocol error.
func (s *Server) callTool(params json.RawMessage) (any, *rpcError) {
	var call struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments,omitempty"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, &rpcError{Code: codeInvalidParams, Message: "Invalid params"}
	}

	tool, ok := s.lookupTool(call.Name)
	if !ok {
		return failed("unknown tool: " + call.Name), nil
	}
	args := call.Arguments
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}

	result, err := tool.handler(args)
	if err != nil {
		return failed(err.Error()), nil
	}
	text, err := json.Marshal(result)
	if err != nil {
		return failed(err.Error()), nil
	}
	return toolResult{Content: []textContent{{Type: "text", Text: string(text)}}}, nil
}

func failed(msg string) toolResult {
	return toolResult{Content: []textContent{{Type: "text", Text: msg}}, IsError: true}
}

func writeLine(w *bufio.Writer, resp response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.Flush()
}
