package model

import (
	"sort"
	"strings"
)

// SentimentScores are the four VADER-style polarity scores. Compound is in
// [-1,1]; the others are in [0,1].
type SentimentScores struct {
	Negative float64 `json:"neg" yaml:"neg"`
	Neutral  float64 `json:"neu" yaml:"neu"`
	Positive float64 `json:"pos" yaml:"pos"`
	Compound float64 `json:"compound" yaml:"compound"`
}

// SpeakerSentiment is one entry of a SentimentRecord.
type SpeakerSentiment struct {
	Speaker SpeakerName     `json:"speaker" yaml:"speaker"`
	Scores  SentimentScores `json:"scores" yaml:"scores"`
}

// SentimentRecord holds scores per speaker in segment order. Speakers whose
// text was empty have no entry.
type SentimentRecord []SpeakerSentiment

// Get returns the scores for speaker.
func (r SentimentRecord) Get(speaker SpeakerName) (SentimentScores, bool) {
	for _, e := range r {
		if e.Speaker == speaker {
			return e.Scores, true
		}
	}
	return SentimentScores{}, false
}

// Speakers returns the speakers that have scores.
func (r SentimentRecord) Speakers() []SpeakerName {
	out := make([]SpeakerName, len(r))
	for i, e := range r {
		out[i] = e.Speaker
	}
	return out
}

// PhraseStats describes sentence-length rhythm.
type PhraseStats struct {
	SentenceLengths   []int   `json:"sentence_lengths" yaml:"sentence_lengths"`
	AvgSentenceLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`
}

// NGramCount is a distinct window and how often it occurred.
type NGramCount struct {
	Tokens []string `json:"tokens" yaml:"tokens"`
	Count  int      `json:"count" yaml:"count"`
}

// NGramCounter counts contiguous token windows, keeping windows in the order
// they first occurred.
type NGramCounter struct {
	N       int
	entries []NGramCount
	index   map[string]int
}

// NewNGramCounter returns an empty counter for windows of length n.
func NewNGramCounter(n int) *NGramCounter {
	return &NGramCounter{N: n, index: make(map[string]int)}
}

// tokens are alphabetic, so a space never appears inside one.
func ngramKey(tokens []string) string {
	return strings.Join(tokens, " ")
}

// Add records one occurrence of the window.
func (c *NGramCounter) Add(window []string) {
	key := ngramKey(window)
	if i, ok := c.index[key]; ok {
		c.entries[i].Count++
		return
	}
	tokens := make([]string, len(window))
	copy(tokens, window)
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, NGramCount{Tokens: tokens, Count: 1})
}

// Count returns how often the window occurred.
func (c *NGramCounter) Count(tokens ...string) int {
	if i, ok := c.index[ngramKey(tokens)]; ok {
		return c.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct windows.
func (c *NGramCounter) Len() int {
	return len(c.entries)
}

// Entries returns all windows in first-occurrence order.
func (c *NGramCounter) Entries() []NGramCount {
	out := make([]NGramCount, len(c.entries))
	copy(out, c.entries)
	return out
}

// MostCommon returns the k most frequent windows; ties keep first-occurrence
// order. k <= 0 returns all of them.
func (c *NGramCounter) MostCommon(k int) []NGramCount {
	out := c.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out
}

// AlliterationList holds adjacent token pairs sharing a first letter,
// formatted "tokenA tokenB".
type AlliterationList []string

// TagCount is one part-of-speech tag and its frequency.
type TagCount struct {
	Tag   string `json:"tag" yaml:"tag"`
	Count int    `json:"count" yaml:"count"`
}

// StyleStats summarises part-of-speech usage, most frequent tag first.
type StyleStats struct {
	Tags []TagCount `json:"pos_counts" yaml:"pos_counts"`
}

// Topic is one latent topic with its strongest words.
type Topic struct {
	ID        int      `json:"id" yaml:"id"`
	Words     []string `json:"words" yaml:"words"`
	Documents int      `json:"documents" yaml:"documents"`
}

// TopicModel is the result of topic modeling over a set of passages.
type TopicModel struct {
	Topics    []Topic `json:"topics" yaml:"topics"`
	Documents int     `json:"documents" yaml:"documents"`
}

// SpeakerStats is the per-speaker statistics record.
type SpeakerStats struct {
	Speaker       SpeakerName      `json:"speaker" yaml:"speaker"`
	Passages      int              `json:"passages" yaml:"passages"`
	Sentiment     *SentimentScores `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
	Phrases       PhraseStats      `json:"phrases" yaml:"phrases"`
	TopNGrams     []NGramCount     `json:"top_ngrams" yaml:"top_ngrams"`
	Alliterations AlliterationList `json:"alliterations" yaml:"alliterations"`
	Style         *StyleStats      `json:"style,omitempty" yaml:"style,omitempty"`
}

// Report is the aggregated analysis of one segmented text.
type Report struct {
	TextID   string          `json:"text_id,omitempty" yaml:"text_id,omitempty"`
	Speakers []SpeakerStats  `json:"speakers" yaml:"speakers"`
	Graph    TransitionGraph `json:"graph" yaml:"graph"`
}

// GraphNode is a speaker in the transition graph.
type GraphNode struct {
	Speaker   SpeakerName `json:"speaker" yaml:"speaker"`
	Sentiment float64     `json:"sentiment" yaml:"sentiment"`
}

// GraphEdge links two speakers.
type GraphEdge struct {
	From SpeakerName `json:"from" yaml:"from"`
	To   SpeakerName `json:"to" yaml:"to"`
}

// TransitionGraph is a directed graph of transitions between speakers.
type TransitionGraph struct {
	Nodes []GraphNode `json:"nodes" yaml:"nodes"`
	Edges []GraphEdge `json:"edges" yaml:"edges"`
}
