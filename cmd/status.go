package cmd

import (
	"fmt"

	"github.com/intelligrit/ulysses-guide/internal/store"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show pipeline progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		texts := s.TextCount()

		fmt.Printf("Pipeline Status\n")
		fmt.Printf("===============\n")
		fmt.Printf("Texts stored:         %d\n", texts)
		fmt.Printf("Texts segmented:      %d / %d\n", s.SegmentedCount(), texts)
		fmt.Printf("Texts scored:         %d / %d\n", s.ScoredCount(), texts)
		fmt.Printf("Texts extracted:      %d / %d\n", s.ExtractionCount(), texts)
		fmt.Printf("Aggregated locations: %d\n", s.LocationCount())
		fmt.Printf("Placed locations:     %d\n", s.CoordinateCount())
		if at := s.Meta("aggregated_at"); at != "" {
			fmt.Printf("Last aggregated:      %s\n", at)
		}

		list, err := s.ListTexts()
		if err != nil {
			return err
		}
		if len(list) > 0 {
			fmt.Printf("\nTexts\n-----\n")
			for _, t := range list {
				fmt.Printf("  %s  %s\n", t.ID, t.Title)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
