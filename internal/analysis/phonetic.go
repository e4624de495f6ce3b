package analysis

import (
	"unicode/utf8"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

// Alliteration returns adjacent alphabetic tokens that begin with the same
// letter. Punctuation and numbers are removed before pairing, so tokens
// separated only by them count as adjacent.
func (a *Analyzer) Alliteration(text string) (model.AlliterationList, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}
	toks, err := a.alphaTokens(text)
	if err != nil {
		return nil, err
	}

	out := model.AlliterationList{}
	for i := 0; i+1 < len(toks); i++ {
		if firstRune(toks[i]) == firstRune(toks[i+1]) {
			out = append(out, toks[i]+" "+toks[i+1])
		}
	}
	return out, nil
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
