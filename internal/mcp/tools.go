// Package mcp exposes segmentation and text statistics as MCP tools over
// stdio.
package mcp

import (
	"github.com/intelligrit/ulysses-guide/internal/analysis"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

var textProperty = map[string]any{
	"type":        "string",
	"description": "Raw text, one passage per line",
}

var speakersProperty = map[string]any{
	"type":        "array",
	"items":       map[string]any{"type": "string"},
	"description": "Known speaker names, matched in order as 'Name:' cues (default: configured speakers)",
}

// RegisterTools registers all MCP tools with the server.
func RegisterTools(server *mcpserver.MCPServer, a *analysis.Analyzer, speakers []string) *Handlers {
	h := &Handlers{analyzer: a, speakers: speakers}

	server.AddTool(mcp.Tool{
		Name:        "segment_text",
		Description: "Split text into passages attributed to speakers. Lines starting 'Name:' switch speaker, lines starting with an em-dash are unattributed dialogue.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"text":     textProperty,
				"speakers": speakersProperty,
			},
			Required: []string{"text"},
		},
	}, h.SegmentText)

	server.AddTool(mcp.Tool{
		Name:        "sentiment",
		Description: "Segment text by speaker and score each speaker's sentiment (negative, neutral, positive, compound).",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"text":     textProperty,
				"speakers": speakersProperty,
			},
			Required: []string{"text"},
		},
	}, h.Sentiment)

	server.AddTool(mcp.Tool{
		Name:        "phrase_stats",
		Description: "Sentence lengths in words and their average.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{"text": textProperty},
			Required:   []string{"text"},
		},
	}, h.PhraseStats)

	server.AddTool(mcp.Tool{
		Name:        "ngrams",
		Description: "Most frequent word n-grams after dropping punctuation and stop-words.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"text": textProperty,
				"n": map[string]any{
					"type":        "number",
					"description": "Window length (default: 2)",
					"default":     2,
				},
				"top": map[string]any{
					"type":        "number",
					"description": "How many n-grams to return, 0 for all (default: 10)",
					"default":     10,
				},
			},
			Required: []string{"text"},
		},
	}, h.NGrams)

	server.AddTool(mcp.Tool{
		Name:        "alliteration",
		Description: "Adjacent word pairs that start with the same letter.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{"text": textProperty},
			Required:   []string{"text"},
		},
	}, h.Alliteration)

	return h
}
