package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// ErrInsufficientText is returned when there are too few passages to model.
var ErrInsufficientText = fmt.Errorf("%w: not enough text for topic modeling", model.ErrInvalidInput)

const (
	topicWords    = 8
	ldaIterations = 50
	defaultTopics = 5
	ldaSeed       = 1904
)

// Topics fits an LDA topic model over texts (typically passages) and
// returns the strongest words of each topic together with how many texts
// have it as their dominant topic.
func (a *Analyzer) Topics(texts []string, minTopicSize, k int) (model.TopicModel, error) {
	if minTopicSize < 1 {
		minTopicSize = 1
	}
	if k <= 0 {
		k = defaultTopics
	}

	var corpus []string
	for _, t := range texts {
		if err := checkText(t); err != nil {
			return model.TopicModel{}, err
		}
		if t = strings.TrimSpace(t); t != "" {
			corpus = append(corpus, t)
		}
	}
	if len(corpus) == 0 || len(corpus) < minTopicSize {
		return model.TopicModel{}, ErrInsufficientText
	}

	vectoriser := nlp.NewCountVectoriser(a.StopWords.List()...)
	lda := nlp.NewLatentDirichletAllocation(k)
	lda.Iterations = ldaIterations
	lda.TransformationPasses = ldaIterations / 2
	lda.Processes = 1
	lda.Rnd = rand.New(rand.NewSource(ldaSeed))

	pipeline := nlp.NewPipeline(vectoriser, lda)
	docsOverTopics, err := pipeline.FitTransform(corpus...)
	if err != nil {
		return model.TopicModel{}, fmt.Errorf("fitting topic model: %w", err)
	}

	topics := topTopicWords(lda.Components(), vectoriser.Vocabulary)
	for topic, n := range dominantTopicCounts(docsOverTopics) {
		if topic < len(topics) {
			topics[topic].Documents = n
		}
	}
	return model.TopicModel{Topics: topics, Documents: len(corpus)}, nil
}

type weightedWord struct {
	word   string
	weight float64
}

func topTopicWords(topicsOverWords mat.Matrix, vocabulary map[string]int) []model.Topic {
	rows, cols := topicsOverWords.Dims()

	vocab := make([]string, len(vocabulary))
	for w, i := range vocabulary {
		vocab[i] = w
	}

	topics := make([]model.Topic, rows)
	for topic := 0; topic < rows; topic++ {
		words := make([]weightedWord, 0, cols)
		for w := 0; w < cols && w < len(vocab); w++ {
			words = append(words, weightedWord{word: vocab[w], weight: topicsOverWords.At(topic, w)})
		}
		sort.SliceStable(words, func(i, j int) bool {
			return words[i].weight > words[j].weight
		})
		n := topicWords
		if n > len(words) {
			n = len(words)
		}
		top := make([]string, n)
		for i := 0; i < n; i++ {
			top[i] = words[i].word
		}
		topics[topic] = model.Topic{ID: topic, Words: top}
	}
	return topics
}

// dominantTopicCounts counts, per topic, the documents for which it has the
// highest weight. docsOverTopics is topics x documents.
func dominantTopicCounts(docsOverTopics mat.Matrix) []int {
	rows, cols := docsOverTopics.Dims()
	counts := make([]int, rows)
	for doc := 0; doc < cols; doc++ {
		best, winner := -1.0, 0
		for topic := 0; topic < rows; topic++ {
			if v := docsOverTopics.At(topic, doc); v > best {
				best, winner = v, topic
			}
		}
		if rows > 0 {
			counts[winner]++
		}
	}
	return counts
}
