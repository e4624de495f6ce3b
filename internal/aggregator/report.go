// Package aggregator builds per-speaker reports from a segmented text and
// merges per-text location extractions into one placed set.
package aggregator

import (
	"fmt"

	"github.com/intelligrit/ulysses-guide/internal/analysis"
	"github.com/intelligrit/ulysses-guide/internal/model"
)

// Options controls which statistics Aggregate computes.
type Options struct {
	NGramSize int  // window length, default 2
	TopNGrams int  // windows kept per speaker, <= 0 keeps all
	Style     bool // include part-of-speech counts
}

// DefaultOptions returns bigram counts, ten per speaker, without style.
func DefaultOptions() Options {
	return Options{NGramSize: 2, TopNGrams: 10}
}

// Aggregate computes a statistics record for every speaker, in segment
// order. Collaborator failures abort the whole report.
func Aggregate(segments *model.SegmentMap, a *analysis.Analyzer, opts Options) (*model.Report, error) {
	if opts.NGramSize == 0 {
		opts.NGramSize = 2
	}

	sentiment, err := a.Score(segments)
	if err != nil {
		return nil, fmt.Errorf("scoring sentiment: %w", err)
	}

	report := &model.Report{Speakers: make([]model.SpeakerStats, 0, segments.Len())}
	for _, sp := range segments.Speakers() {
		text := segments.Joined(sp)
		stats := model.SpeakerStats{
			Speaker:  sp,
			Passages: len(segments.Passages(sp)),
		}
		if sc, ok := sentiment.Get(sp); ok {
			stats.Sentiment = &sc
		}

		if stats.Phrases, err = a.PhraseStats(text); err != nil {
			return nil, fmt.Errorf("phrase stats for %s: %w", sp, err)
		}
		grams, err := a.NGrams(text, opts.NGramSize)
		if err != nil {
			return nil, fmt.Errorf("n-grams for %s: %w", sp, err)
		}
		stats.TopNGrams = grams.MostCommon(opts.TopNGrams)
		if stats.Alliterations, err = a.Alliteration(text); err != nil {
			return nil, fmt.Errorf("alliteration for %s: %w", sp, err)
		}
		if opts.Style {
			style, err := a.Style(text)
			if err != nil {
				return nil, fmt.Errorf("style for %s: %w", sp, err)
			}
			stats.Style = &style
		}

		report.Speakers = append(report.Speakers, stats)
	}
	report.Graph = Transitions(segments, sentiment)
	return report, nil
}

// Transitions links each speaker to the next one in first-appearance order.
// Nodes carry the compound sentiment score, or 0 when the speaker has none.
func Transitions(segments *model.SegmentMap, sentiment model.SentimentRecord) model.TransitionGraph {
	speakers := segments.Speakers()
	g := model.TransitionGraph{
		Nodes: make([]model.GraphNode, 0, len(speakers)),
		Edges: make([]model.GraphEdge, 0, len(speakers)),
	}
	for i, sp := range speakers {
		var compound float64
		if sc, ok := sentiment.Get(sp); ok {
			compound = sc.Compound
		}
		g.Nodes = append(g.Nodes, model.GraphNode{Speaker: sp, Sentiment: compound})
		if i > 0 {
			g.Edges = append(g.Edges, model.GraphEdge{From: speakers[i-1], To: sp})
		}
	}
	return g
}
