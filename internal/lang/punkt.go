package lang

import (
	"strings"
	"sync"

	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// Punkt splits sentences with the pre-trained English Punkt model.
type Punkt struct {
	load func() (*sentences.DefaultSentenceTokenizer, error)
}

// NewPunkt returns a splitter that loads the model on first use.
func NewPunkt() *Punkt {
	return &Punkt{
		load: sync.OnceValues(func() (*sentences.DefaultSentenceTokenizer, error) {
			return english.NewSentenceTokenizer(nil)
		}),
	}
}

// Split returns the sentences of text with surrounding whitespace removed.
func (p *Punkt) Split(text string) ([]string, error) {
	tok, err := p.load()
	if err != nil {
		return nil, model.Unavailable("punkt sentence tokenizer", err)
	}
	var out []string
	for _, s := range tok.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}
