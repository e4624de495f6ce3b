package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/intelligrit/ulysses-guide/internal/analysis"
	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

type spaceTokenizer struct{}

func (spaceTokenizer) Tokenize(text string) ([]string, error) {
	return strings.Fields(text), nil
}

type lineSplitter struct{}

func (lineSplitter) Split(text string) ([]string, error) {
	return strings.Split(text, "\n"), nil
}

type flatScorer struct{}

func (flatScorer) PolarityScores(string) (model.SentimentScores, error) {
	return model.SentimentScores{Neutral: 1}, nil
}

func testHandlers() *Handlers {
	a := &analysis.Analyzer{
		Tokens:    spaceTokenizer{},
		Sentences: lineSplitter{},
		Sentiment: flatScorer{},
		StopWords: analysis.EnglishStopWords(),
	}
	return RegisterTools(mcpserver.NewMCPServer("test", "0.0.0"), a, []string{"Stephen"})
}

func call(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(res.Content))
	}
	tc, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return tc.Text
}

func TestSegmentTextTool(t *testing.T) {
	h := testHandlers()
	res, err := h.SegmentText(context.Background(), call(map[string]any{
		"text": "Stephen: I am here.\n—Hello.\nHe walked away.",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}

	var got map[string][]map[string]any
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if len(got["Stephen"]) != 2 || len(got[string(model.UnattributedDialogue)]) != 1 {
		t.Errorf("unexpected segments %v", got)
	}
}

func TestSegmentTextSpeakerOverride(t *testing.T) {
	h := testHandlers()
	res, _ := h.SegmentText(context.Background(), call(map[string]any{
		"text":     "Molly: yes",
		"speakers": []any{"Molly"},
	}))
	if !strings.Contains(resultText(t, res), `"Molly"`) {
		t.Errorf("expected Molly in result, got %s", resultText(t, res))
	}
}

func TestToolsRequireText(t *testing.T) {
	h := testHandlers()
	tools := map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"segment_text": h.SegmentText,
		"sentiment":    h.Sentiment,
		"phrase_stats": h.PhraseStats,
		"ngrams":       h.NGrams,
		"alliteration": h.Alliteration,
	}
	for name, fn := range tools {
		res, err := fn(context.Background(), call(map[string]any{}))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !res.IsError {
			t.Errorf("%s: expected a tool error without text", name)
		}
	}
}

func TestNGramsTool(t *testing.T) {
	h := testHandlers()
	res, _ := h.NGrams(context.Background(), call(map[string]any{
		"text": "the cat sat on the cat",
		"n":    2,
	}))
	if res.IsError {
		t.Fatalf("tool error: %s", resultText(t, res))
	}
	var got []model.NGramCount
	if err := json.Unmarshal([]byte(resultText(t, res)), &got); err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 bigrams, got %+v", got)
	}

	bad, _ := h.NGrams(context.Background(), call(map[string]any{"text": "x", "n": 0}))
	if !bad.IsError {
		t.Error("expected a tool error for n=0")
	}
}

func TestAlliterationTool(t *testing.T) {
	h := testHandlers()
	res, _ := h.Alliteration(context.Background(), call(map[string]any{"text": "sails soon"}))
	if got := resultText(t, res); !strings.Contains(got, "sails soon") {
		t.Errorf("unexpected result %s", got)
	}
}
