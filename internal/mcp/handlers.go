package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/intelligrit/ulysses-guide/internal/analysis"
	"github.com/intelligrit/ulysses-guide/internal/segmenter"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers implements the MCP tools.
type Handlers struct {
	analyzer *analysis.Analyzer
	speakers []string
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

// SegmentText handles the segment_text tool.
func (h *Handlers) SegmentText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	segs, err := segmenter.Segment(text, request.GetStringSlice("speakers", h.speakers))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("segmentation failed: %v", err)), nil
	}
	return jsonResult(segs)
}

// Sentiment handles the sentiment tool.
func (h *Handlers) Sentiment(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	segs, err := segmenter.Segment(text, request.GetStringSlice("speakers", h.speakers))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("segmentation failed: %v", err)), nil
	}
	rec, err := h.analyzer.Score(segs)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("sentiment scoring failed: %v", err)), nil
	}
	return jsonResult(rec)
}

// PhraseStats handles the phrase_stats tool.
func (h *Handlers) PhraseStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	stats, err := h.analyzer.PhraseStats(text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("phrase stats failed: %v", err)), nil
	}
	return jsonResult(stats)
}

// NGrams handles the ngrams tool.
func (h *Handlers) NGrams(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	n := request.GetInt("n", 2)
	top := request.GetInt("top", 10)

	counter, err := h.analyzer.NGrams(text, n)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("n-gram counting failed: %v", err)), nil
	}
	return jsonResult(counter.MostCommon(top))
}

// Alliteration handles the alliteration tool.
func (h *Handlers) Alliteration(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	pairs, err := h.analyzer.Alliteration(text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("alliteration failed: %v", err)), nil
	}
	return jsonResult(pairs)
}
