package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/intelligrit/ulysses-guide/internal/geocoder"
	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/intelligrit/ulysses-guide/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	extractBackend string
	extractForce   bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "Extract place names from stored texts",
	Long:  "Extract place names from the given stored texts, or from every stored text that has no extraction yet.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		ext, err := newExtractor(extractBackend)
		if err != nil {
			return err
		}

		var texts []*model.Text
		if len(args) == 0 {
			all, err := s.ListTexts()
			if err != nil {
				return err
			}
			for i := range all {
				texts = append(texts, &all[i])
			}
		} else {
			for _, ref := range args {
				t, err := s.ReadText(ref)
				if err != nil {
					return fmt.Errorf("%s: %w", ref, err)
				}
				texts = append(texts, t)
			}
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		fmt.Printf("Extracting locations with %s\n", ext.Name())
		var done, skipped, failed int
		for i, t := range texts {
			select {
			case <-ctx.Done():
				fmt.Printf("\nInterrupted after %d/%d texts\n", i, len(texts))
				return nil
			default:
			}

			if !extractForce && s.ExtractionExists(t.ID) {
				skipped++
				continue
			}

			if t.Body == "" {
				if t, err = s.ReadText(t.ID); err != nil {
					return err
				}
			}

			fmt.Printf("  [%d/%d] %s\n", i+1, len(texts), t.Title)
			locs, err := ext.Extract(ctx, t.Title, t.Body)
			if err != nil {
				if ctx.Err() != nil {
					fmt.Printf("\nInterrupted during %s\n", t.Title)
					return nil
				}
				fmt.Fprintf(os.Stderr, "  WARNING: %s: %v\n", t.Title, err)
				failed++
				continue
			}

			if err := s.WriteExtraction(&model.TextExtraction{
				TextID:      t.ID,
				TextTitle:   t.Title,
				Locations:   locs,
				Backend:     ext.Name(),
				ExtractedAt: time.Now().UTC().Format(time.RFC3339),
			}); err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"text": t.Title, "locations": len(locs)}).Debug("extracted")
			done++
		}

		fmt.Printf("\nExtracted: %d, skipped: %d, failed: %d\n", done, skipped, failed)
		return nil
	},
}

var locateBackend string

var locateCmd = &cobra.Command{
	Use:   "locate <text|file|->",
	Short: "Extract place names from a text and geocode them",
	Long: "Extract place names from a text and geocode each one, one request per second. " +
		"Names that fail or match nothing are left out of the result.",
	Args: cobra.ExactArgs(1),
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

		ext, err := newExtractor(locateBackend)
		if err != nil {
			return err
		}

		p := &geocoder.Pipeline{Extractor: ext, Batch: newBatch()}
		res, err := p.Locate(context.Background(), t.Body)
		if err != nil {
			return err
		}

		return render(res.Coordinates, func(w io.Writer) {
			for _, name := range sortedNames(res.Coordinates) {
				pos := res.Coordinates[name]
				fmt.Fprintf(w, "%-30s %9.5f %9.5f\n", name, pos.Lat, pos.Lon)
			}
			if n := len(res.Failures) + len(res.NotFound); n > 0 {
				fmt.Fprintf(w, "\n%d places could not be placed\n", n)
			}
		})
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractBackend, "backend", "", "Extraction backend: ner or claude (default from config)")
	extractCmd.Flags().BoolVar(&extractForce, "force", false, "Re-extract texts that already have an extraction")
	locateCmd.Flags().StringVar(&locateBackend, "backend", "", "Extraction backend: ner or claude (default from config)")
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(locateCmd)
}
