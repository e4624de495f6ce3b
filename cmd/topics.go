package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/intelligrit/ulysses-guide/internal/analysis"
	"github.com/intelligrit/ulysses-guide/internal/lang"
	"github.com/intelligrit/ulysses-guide/internal/segmenter"
	"github.com/intelligrit/ulysses-guide/internal/store"
	"github.com/spf13/cobra"
)

var (
	topicsCount   int
	topicsMinSize int
)

var topicsCmd = &cobra.Command{
	Use:   "topics <text|file|->...",
	Short: "Fit a topic model over the passages of one or more texts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("topics") {
			topicsCount = cfg.Analysis.Topics
		}
		if !cmd.Flags().Changed("min-size") {
			topicsMinSize = cfg.Analysis.MinTopicSize
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		var docs []string
		for _, ref := range args {
			t, err := loadText(s, ref)
			if err != nil {
				return err
			}
			segments, err := segmenter.Segment(t.Body, cfg.Analysis.Speakers)
			if err != nil {
				return fmt.Errorf("segmenting %s: %w", t.Title, err)
			}
			for _, sp := range segments.Speakers() {
				docs = append(docs, segments.Texts(sp)...)
			}
		}

		tm, err := analysis.New(lang.NewModels()).Topics(docs, topicsMinSize, topicsCount)
		if err != nil {
			return err
		}

		return render(tm, func(w io.Writer) {
			fmt.Fprintf(w, "%d passages, %d topics\n\n", tm.Documents, len(tm.Topics))
			for _, tp := range tm.Topics {
				fmt.Fprintf(w, "  #%-2d %4d  %s\n", tp.ID, tp.Documents, strings.Join(tp.Words, ", "))
			}
		})
	},
}

func init() {
	topicsCmd.Flags().IntVar(&topicsCount, "topics", 5, "Number of topics to fit")
	topicsCmd.Flags().IntVar(&topicsMinSize, "min-size", 2, "Minimum number of passages required to fit a model")
	rootCmd.AddCommand(topicsCmd)
}
