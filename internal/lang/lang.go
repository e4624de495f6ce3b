// Package lang adapts third-party language models to the small interfaces
// the analysis core consumes. Model handles are loaded lazily and memoized
// for the lifetime of the value that owns them.
package lang

import "github.com/intelligrit/ulysses-guide/internal/model"

// Tokenizer splits text into word tokens, punctuation included.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// SentenceSplitter splits text into sentences.
type SentenceSplitter interface {
	Split(text string) ([]string, error)
}

// SentimentScorer scores the polarity of a text.
type SentimentScorer interface {
	PolarityScores(text string) (model.SentimentScores, error)
}

// TaggedToken is a token with its part-of-speech tag.
type TaggedToken struct {
	Text string
	Tag  string
}

// Tagger assigns part-of-speech tags.
type Tagger interface {
	Tag(text string) ([]TaggedToken, error)
}

// Entity is a named-entity span.
type Entity struct {
	Text  string
	Label string
}

// EntityRecognizer finds named entities.
type EntityRecognizer interface {
	Entities(text string) ([]Entity, error)
}

// Models bundles the default collaborators.
type Models struct {
	Prose *Prose
	Punkt *Punkt
	Vader *Vader
}

// NewModels returns the default collaborator set. Nothing is loaded until
// first use.
func NewModels() *Models {
	return &Models{
		Prose: NewProse(),
		Punkt: NewPunkt(),
		Vader: NewVader(),
	}
}
