package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/intelligrit/ulysses-guide/internal/aggregator"
	"github.com/intelligrit/ulysses-guide/internal/analysis"
	"github.com/intelligrit/ulysses-guide/internal/lang"
	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/intelligrit/ulysses-guide/internal/segmenter"
	"github.com/intelligrit/ulysses-guide/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	analyzeSpeakers []string
	analyzeNGram    int
	analyzeTop      int
	analyzeStyle    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text|file|->",
	Short: "Compute per-speaker sentiment, phrasing, n-grams and alliteration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("ngram") {
			analyzeNGram = cfg.Analysis.NGramSize
		}
		if !cmd.Flags().Changed("top") {
			analyzeTop = cfg.Analysis.TopNGrams
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		t, err := loadText(s, args[0])
		if err != nil {
			return err
		}

		segments, err := segmenter.Segment(t.Body, speakerList(analyzeSpeakers))
		if err != nil {
			return fmt.Errorf("segmenting %s: %w", t.Title, err)
		}

		logrus.WithFields(logrus.Fields{"text": t.Title, "speakers": segments.Len()}).Debug("analyzing")
		report, err := aggregator.Aggregate(segments, analysis.New(lang.NewModels()), aggregator.Options{
			NGramSize: analyzeNGram,
			TopNGrams: analyzeTop,
			Style:     analyzeStyle,
		})
		if err != nil {
			return err
		}
		report.TextID = t.ID

		if t.ID != "" {
			if err := s.WriteSegments(t.ID, segments); err != nil {
				return err
			}
			if err := s.WriteSentiment(t.ID, sentimentOf(report)); err != nil {
				return err
			}
		}

		return render(report, func(w io.Writer) {
			printReport(w, report)
		})
	},
}

func sentimentOf(r *model.Report) model.SentimentRecord {
	var rec model.SentimentRecord
	for _, st := range r.Speakers {
		if st.Sentiment != nil {
			rec = append(rec, model.SpeakerSentiment{Speaker: st.Speaker, Scores: *st.Sentiment})
		}
	}
	return rec
}

func printReport(w io.Writer, r *model.Report) {
	for _, st := range r.Speakers {
		fmt.Fprintf(w, "%s\n%s\n", st.Speaker, strings.Repeat("-", len(st.Speaker)))
		fmt.Fprintf(w, "  passages:   %d\n", st.Passages)
		if st.Sentiment != nil {
			fmt.Fprintf(w, "  sentiment:  compound %.3f (neg %.3f, neu %.3f, pos %.3f)\n",
				st.Sentiment.Compound, st.Sentiment.Negative, st.Sentiment.Neutral, st.Sentiment.Positive)
		}
		fmt.Fprintf(w, "  sentences:  %d, avg %.1f words\n", len(st.Phrases.SentenceLengths), st.Phrases.AvgSentenceLength)
		for _, ng := range st.TopNGrams {
			fmt.Fprintf(w, "  %3dx  %s\n", ng.Count, strings.Join(ng.Tokens, " "))
		}
		if len(st.Alliterations) > 0 {
			fmt.Fprintf(w, "  alliteration: %s\n", strings.Join(st.Alliterations, "; "))
		}
		if st.Style != nil {
			for i, tc := range st.Style.Tags {
				if i == 5 {
					break
				}
				fmt.Fprintf(w, "  %-5s %d\n", tc.Tag, tc.Count)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Graph.Edges) > 0 {
		fmt.Fprintf(w, "Transitions\n-----------\n")
		for _, e := range r.Graph.Edges {
			fmt.Fprintf(w, "  %s -> %s\n", e.From, e.To)
		}
	}
}

func init() {
	analyzeCmd.Flags().StringSliceVar(&analyzeSpeakers, "speakers", nil, "Known speaker names, in match order (default from config)")
	analyzeCmd.Flags().IntVar(&analyzeNGram, "ngram", 2, "N-gram window length")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 10, "N-grams to keep per speaker (0 keeps all)")
	analyzeCmd.Flags().BoolVar(&analyzeStyle, "style", false, "Include part-of-speech counts")
	rootCmd.AddCommand(analyzeCmd)
}
