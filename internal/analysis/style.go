package analysis

import (
	"sort"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

// Style counts part-of-speech tags over text, most frequent first.
func (a *Analyzer) Style(text string) (model.StyleStats, error) {
	if err := checkText(text); err != nil {
		return model.StyleStats{}, err
	}
	if a.Tagger == nil {
		return model.StyleStats{}, model.Unavailable("tagger", nil)
	}
	toks, err := a.Tagger.Tag(text)
	if err != nil {
		return model.StyleStats{}, err
	}

	counts := make(map[string]int)
	for _, t := range toks {
		counts[t.Tag]++
	}
	tags := make([]model.TagCount, 0, len(counts))
	for tag, n := range counts {
		tags = append(tags, model.TagCount{Tag: tag, Count: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	return model.StyleStats{Tags: tags}, nil
}
