package model

import (
	"encoding/json"
	"testing"
)

func TestSegmentMapOrder(t *testing.T) {
	m := NewSegmentMap()
	m.Append("Stephen", Passage{Line: 1, Text: "I am here."})
	m.Append(UnattributedDialogue, Passage{Line: 2, Text: "Hello."})
	m.Append("Stephen", Passage{Line: 3, Text: "He walked away."})

	got := m.Speakers()
	want := []SpeakerName{"Stephen", UnattributedDialogue}
	if len(got) != len(want) {
		t.Fatalf("expected %d speakers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("speaker %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if m.PassageCount() != 3 {
		t.Errorf("expected 3 passages, got %d", m.PassageCount())
	}
	if j := m.Joined("Stephen"); j != "I am here. He walked away." {
		t.Errorf("unexpected joined text %q", j)
	}
}

func TestSegmentMapMarshalJSONKeepsOrder(t *testing.T) {
	m := NewSegmentMap()
	m.Append("Zed", Passage{Line: 1, Text: "z"})
	m.Append("Alpha", Passage{Line: 2, Text: "a"})

	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Zed":[{"line":1,"text":"z"}],"Alpha":[{"line":2,"text":"a"}]}`
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}

func TestSegmentMapEmptyMarshal(t *testing.T) {
	b, err := json.Marshal(NewSegmentMap())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "{}" {
		t.Errorf("expected {}, got %s", b)
	}
}

func TestNGramCounterMostCommon(t *testing.T) {
	c := NewNGramCounter(2)
	c.Add([]string{"cat", "sat"})
	c.Add([]string{"sat", "cat"})
	c.Add([]string{"sat", "cat"})

	if c.Len() != 2 {
		t.Fatalf("expected 2 windows, got %d", c.Len())
	}
	if c.Count("sat", "cat") != 2 {
		t.Errorf("expected count 2, got %d", c.Count("sat", "cat"))
	}
	if c.Count("dog", "sat") != 0 {
		t.Errorf("expected count 0 for unseen window")
	}

	top := c.MostCommon(1)
	if len(top) != 1 || top[0].Tokens[1] != "cat" || top[0].Count != 2 {
		t.Errorf("unexpected most common %+v", top)
	}
	// Entries keeps first-occurrence order regardless of counts.
	if e := c.Entries(); e[0].Tokens[0] != "cat" {
		t.Errorf("expected first entry to be (cat sat), got %v", e[0].Tokens)
	}
}

func TestSentimentRecordGet(t *testing.T) {
	r := SentimentRecord{
		{Speaker: Narrator, Scores: SentimentScores{Compound: 0.5}},
	}
	if s, ok := r.Get(Narrator); !ok || s.Compound != 0.5 {
		t.Errorf("expected narrator compound 0.5, got %+v %v", s, ok)
	}
	if _, ok := r.Get("Bloom"); ok {
		t.Error("expected no entry for Bloom")
	}
}
