package lang

import (
	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/jdkato/prose/v2"
)

// Prose wraps github.com/jdkato/prose for tokenization, POS tagging and NER.
type Prose struct{}

// NewProse returns a prose-backed collaborator.
func NewProse() *Prose {
	return &Prose{}
}

// Tokenize returns word tokens in order.
func (p *Prose) Tokenize(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, model.Unavailable("prose tokenizer", err)
	}
	toks := doc.Tokens()
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out, nil
}

// Tag returns tokens with Penn Treebank tags.
func (p *Prose) Tag(text string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, model.Unavailable("prose tagger", err)
	}
	toks := doc.Tokens()
	out := make([]TaggedToken, len(toks))
	for i, t := range toks {
		out[i] = TaggedToken{Text: t.Text, Tag: t.Tag}
	}
	return out, nil
}

// Entities returns named entities with their labels.
func (p *Prose) Entities(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, model.Unavailable("prose entity recognizer", err)
	}
	ents := doc.Entities()
	out := make([]Entity, len(ents))
	for i, e := range ents {
		out[i] = Entity{Text: e.Text, Label: e.Label}
	}
	return out, nil
}
