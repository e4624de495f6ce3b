package cmd

import (
	"fmt"
	"io"

	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/intelligrit/ulysses-guide/internal/segmenter"
	"github.com/intelligrit/ulysses-guide/internal/store"
	"github.com/spf13/cobra"
)

var segmentSpeakers []string

var segmentCmd = &cobra.Command{
	Use:   "segment <text|file|->",
	Short: "Split a text into passages per speaker",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		t, err := loadText(s, args[0])
		if err != nil {
			return err
		}

		segments, err := segmenter.Segment(t.Body, speakerList(segmentSpeakers))
		if err != nil {
			return fmt.Errorf("segmenting %s: %w", t.Title, err)
		}

		if t.ID != "" {
			if err := s.WriteSegments(t.ID, segments); err != nil {
				return err
			}
		}

		return render(segments, func(w io.Writer) {
			printSegments(w, segments)
		})
	},
}

func printSegments(w io.Writer, m *model.SegmentMap) {
	for _, sp := range m.Speakers() {
		passages := m.Passages(sp)
		fmt.Fprintf(w, "%s (%d)\n", sp, len(passages))
		for _, p := range passages {
			fmt.Fprintf(w, "  %5d  %s\n", p.Line, p.Text)
		}
	}
}

func init() {
	segmentCmd.Flags().StringSliceVar(&segmentSpeakers, "speakers", nil, "Known speaker names, in match order (default from config)")
	rootCmd.AddCommand(segmentCmd)
}
