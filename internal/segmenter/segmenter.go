package segmenter

import (
	"strings"
	"unicode/utf8"

	"github.com/intelligrit/ulysses-guide/internal/model"
)

// DialogueDash marks a line of unattributed spoken dialogue.
const DialogueDash = "—"

// Segment splits text into speaker-attributed passages.
//
// The scan is line oriented and carries one piece of state, the current
// speaker, which starts as Narrator. For each trimmed, non-empty line the
// first matching rule wins:
//
//  1. "Name:" cue for a known speaker (case-insensitive, caller order):
//     the speaker becomes current and the text after the first colon is
//     emitted for it.
//  2. Leading em-dash: the rest of the line is emitted as Unattributed
//     Dialogue; the current speaker is unchanged.
//  3. Anything else is emitted for the current speaker.
func Segment(text string, knownSpeakers []string) (*model.SegmentMap, error) {
	if !utf8.ValidString(text) {
		return nil, model.InvalidInput("text is not valid UTF-8")
	}

	cues := make([]cue, 0, len(knownSpeakers))
	for _, name := range knownSpeakers {
		if strings.TrimSpace(name) == "" {
			return nil, model.InvalidInput("empty speaker name")
		}
		if strings.ContainsAny(name, "\r\n") {
			return nil, model.InvalidInput("speaker name %q contains a newline", name)
		}
		cues = append(cues, cue{
			name:   model.SpeakerName(name),
			prefix: strings.ToLower(name) + ":",
		})
	}

	segments := model.NewSegmentMap()
	current := model.Narrator

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lineNo := i + 1

		if speaker, ok := matchCue(line, cues); ok {
			current = speaker
			_, rest, _ := strings.Cut(line, ":")
			segments.Append(current, model.Passage{Line: lineNo, Text: strings.TrimSpace(rest)})
			continue
		}

		if rest, ok := strings.CutPrefix(line, DialogueDash); ok {
			segments.Append(model.UnattributedDialogue, model.Passage{Line: lineNo, Text: strings.TrimSpace(rest)})
			continue
		}

		segments.Append(current, model.Passage{Line: lineNo, Text: line})
	}

	return segments, nil
}

type cue struct {
	name   model.SpeakerName
	prefix string
}

// matchCue returns the first speaker, in caller order, whose "name:" prefix
// starts the line.
func matchCue(line string, cues []cue) (model.SpeakerName, bool) {
	if len(cues) == 0 {
		return "", false
	}
	lower := strings.ToLower(line)
	for _, c := range cues {
		if strings.HasPrefix(lower, c.prefix) {
			return c.name, true
		}
	}
	return "", false
}
