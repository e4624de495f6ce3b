package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SpeakerName identifies who a passage is attributed to.
type SpeakerName string

// Synthetic speakers, used when no character cue applies.
const (
	Narrator             SpeakerName = "Narrator"
	UnattributedDialogue SpeakerName = "Unattributed Dialogue"
)

// IsSynthetic reports whether the name is one of the non-character buckets.
func (n SpeakerName) IsSynthetic() bool {
	return n == Narrator || n == UnattributedDialogue
}

// Passage is one trimmed source line attributed to a speaker.
type Passage struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// SpeakerPassages is one entry of a SegmentMap.
type SpeakerPassages struct {
	Speaker  SpeakerName `json:"speaker" yaml:"speaker"`
	Passages []Passage   `json:"passages" yaml:"passages"`
}

// SegmentMap maps speakers to their passages, keeping speakers in the order
// they were first emitted.
type SegmentMap struct {
	order    []SpeakerName
	passages map[SpeakerName][]Passage
}

// NewSegmentMap returns an empty map.
func NewSegmentMap() *SegmentMap {
	return &SegmentMap{passages: make(map[SpeakerName][]Passage)}
}

// Append adds p to the end of speaker's passages.
func (m *SegmentMap) Append(speaker SpeakerName, p Passage) {
	if _, ok := m.passages[speaker]; !ok {
		m.order = append(m.order, speaker)
	}
	m.passages[speaker] = append(m.passages[speaker], p)
}

// Speakers returns the keys in first-emission order.
func (m *SegmentMap) Speakers() []SpeakerName {
	out := make([]SpeakerName, len(m.order))
	copy(out, m.order)
	return out
}

// Passages returns the passages attributed to speaker, or nil.
func (m *SegmentMap) Passages(speaker SpeakerName) []Passage {
	return m.passages[speaker]
}

// Texts returns the passage texts attributed to speaker.
func (m *SegmentMap) Texts(speaker SpeakerName) []string {
	ps := m.passages[speaker]
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Text
	}
	return out
}

// Joined concatenates speaker's passages with single spaces.
func (m *SegmentMap) Joined(speaker SpeakerName) string {
	return strings.Join(m.Texts(speaker), " ")
}

// Len returns the number of speakers.
func (m *SegmentMap) Len() int {
	return len(m.order)
}

// PassageCount returns the number of passages across all speakers.
func (m *SegmentMap) PassageCount() int {
	n := 0
	for _, ps := range m.passages {
		n += len(ps)
	}
	return n
}

// Entries returns the map as an ordered slice.
func (m *SegmentMap) Entries() []SpeakerPassages {
	out := make([]SpeakerPassages, 0, len(m.order))
	for _, s := range m.order {
		out = append(out, SpeakerPassages{Speaker: s, Passages: m.passages[s]})
	}
	return out
}

// MarshalJSON encodes the map as a JSON object whose keys keep
// first-emission order.
func (m *SegmentMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(s))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.passages[s])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as an ordered list of entries.
func (m *SegmentMap) MarshalYAML() (any, error) {
	return m.Entries(), nil
}
