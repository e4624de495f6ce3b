package analysis

import (
	"errors"
	"reflect"
	"testing"

	"github.com/intelligrit/ulysses-guide/internal/lang"
	"github.com/intelligrit/ulysses-guide/internal/model"
)

type fakeTagger struct {
	tokens []lang.TaggedToken
}

func (f fakeTagger) Tag(string) ([]lang.TaggedToken, error) {
	return f.tokens, nil
}

func TestStyleCountsTags(t *testing.T) {
	a := &Analyzer{Tagger: fakeTagger{tokens: []lang.TaggedToken{
		{Text: "Buck", Tag: "NNP"},
		{Text: "Mulligan", Tag: "NNP"},
		{Text: "came", Tag: "VBD"},
		{Text: "down", Tag: "RB"},
		{Text: ".", Tag: "."},
	}}}

	got, err := a.Style("Buck Mulligan came down.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.TagCount{
		{Tag: "NNP", Count: 2},
		{Tag: ".", Count: 1},
		{Tag: "RB", Count: 1},
		{Tag: "VBD", Count: 1},
	}
	if !reflect.DeepEqual(got.Tags, want) {
		t.Errorf("got %+v, want %+v", got.Tags, want)
	}
}

func TestTopicsInsufficientText(t *testing.T) {
	a := testAnalyzer()
	_, err := a.Topics([]string{"one passage", "  "}, 3, 2)
	if !errors.Is(err, ErrInsufficientText) {
		t.Errorf("expected ErrInsufficientText, got %v", err)
	}
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("expected insufficient text to be an input error, got %v", err)
	}
}

func TestTopicsShape(t *testing.T) {
	a := testAnalyzer()
	texts := []string{
		"the sea the snotgreen sea the scrotumtightening sea",
		"kidneys breakfast kidneys butter bread",
		"the sea bay mailboat harbour sea",
		"breakfast tea kidneys cat milk",
		"sea waves strand shells sea",
	}

	tm, err := a.Topics(texts, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tm.Topics) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(tm.Topics))
	}
	if tm.Documents != len(texts) {
		t.Errorf("expected %d documents, got %d", len(texts), tm.Documents)
	}
	total := 0
	for _, topic := range tm.Topics {
		if len(topic.Words) == 0 {
			t.Errorf("topic %d has no words", topic.ID)
		}
		for _, w := range topic.Words {
			if a.StopWords.Contains(w) {
				t.Errorf("topic %d contains stop-word %q", topic.ID, w)
			}
		}
		total += topic.Documents
	}
	if total != len(texts) {
		t.Errorf("dominant-topic counts sum to %d, want %d", total, len(texts))
	}
}

func TestTopicsRepeatable(t *testing.T) {
	a := testAnalyzer()
	texts := []string{
		"the sea the snotgreen sea the scrotumtightening sea",
		"kidneys breakfast kidneys butter bread",
		"the sea bay mailboat harbour sea",
		"breakfast tea kidneys cat milk",
		"sea waves strand shells sea",
	}

	first, err := a.Topics(texts, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := a.Topics(texts, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical calls disagree:\n%+v\n%+v", first, second)
	}
}
