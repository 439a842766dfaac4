package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blackwell-systems/pathjoin/internal/pathjoin"
)

// JoinPathResult is returned by the join_path tool.
type JoinPathResult struct {
	Path string `json:"path"`
}

// ExplainPathResult is returned by the explain_path tool.
type ExplainPathResult struct {
	Path     string                  `json:"path"`
	Segments []pathjoin.SegmentTrace `json:"segments"`
}

type segmentArgs struct {
	Segments *[]string `json:"segments"`
	Base     string    `json:"base,omitempty"`
}

var (
	joinPathSchema = json.RawMessage(`{"type":"object","properties":{"segments":{"type":"array","items":{"type":"string"},"description":"Path segments in order"},"base":{"type":"string","description":"Name of a configured base path to prepend"}},"required":["segments"],"additionalProperties":false}`)
	explainSchema  = json.RawMessage(`{"type":"object","properties":{"segments":{"type":"array","items":{"type":"string"},"description":"Path segments in order"}},"required":["segments"],"additionalProperties":false}`)
)

func addTools(s *Server) {
	s.registerTool(toolDef{
		Name:        "join_path",
		Description: "Join path segments with '/', stripping leading and trailing slashes of each segment.",
		InputSchema: joinPathSchema,
		handler:     s.handleJoinPath,
	})
	s.registerTool(toolDef{
		Name:        "explain_path",
		Description: "Show how each segment is stripped and the resulting joined path.",
		InputSchema: explainSchema,
		handler:     s.handleExplainPath,
	})
}

func decodeSegmentArgs(raw json.RawMessage) (segmentArgs, error) {
	var args segmentArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return args, fmt.Errorf("invalid arguments: %w", err)
	}
	if args.Segments == nil {
		return args, errors.New("missing required argument: segments")
	}
	return args, nil
}

func (s *Server) handleJoinPath(raw json.RawMessage) (any, error) {
	args, err := decodeSegmentArgs(raw)
	if err != nil {
		return nil, err
	}
	if args.Base != "" {
		base, err := s.cfg.Base(args.Base)
		if err != nil {
			return nil, err
		}
		return JoinPathResult{Path: pathjoin.JoinBase(base, *args.Segments...)}, nil
	}
	return JoinPathResult{Path: pathjoin.Join(*args.Segments...)}, nil
}

func (s *Server) handleExplainPath(raw json.RawMessage) (any, error) {
	args, err := decodeSegmentArgs(raw)
	if err != nil {
		return nil, err
	}
	return ExplainPathResult{
		Path:     pathjoin.Join(*args.Segments...),
		Segments: pathjoin.Explain(*args.Segments...),
	}, nil
}
