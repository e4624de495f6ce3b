package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/intelligrit/ulysses-guide/internal/pacer"
	"github.com/intelligrit/ulysses-guide/internal/scraper"
	"github.com/intelligrit/ulysses-guide/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	fetchTitle string
	fetchSplit bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url|file>...",
	Short: "Store texts from HTML editions or local files (rate-limited)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		f := &scraper.Fetcher{
			Pacer:     pacer.PerSecond(cfg.Scrape.RateLimit),
			UserAgent: cfg.Geocode.UserAgent,
		}

		for i, src := range args {
			select {
			case <-ctx.Done():
				fmt.Printf("\nInterrupted after %d/%d sources\n", i, len(args))
				return nil
			default:
			}

			texts, err := fetchSource(ctx, f, src)
			if err != nil {
				return err
			}
			for j := range texts {
				if err := s.WriteText(&texts[j]); err != nil {
					return err
				}
				fmt.Printf("  %s  %s (%d lines)\n", texts[j].ID, texts[j].Title, strings.Count(texts[j].Body, "\n")+1)
			}
		}
		return nil
	},
}

func fetchSource(ctx context.Context, f *scraper.Fetcher, src string) ([]model.Text, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		b, err := os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", src, err)
		}
		title := fetchTitle
		if title == "" {
			title = src
		}
		return []model.Text{{Title: title, Source: src, Body: string(b)}}, nil
	}

	logrus.WithField("url", src).Debug("fetching")
	doc, err := f.Document(ctx, src)
	if err != nil {
		return nil, err
	}

	if fetchSplit {
		eps, err := scraper.SplitEpisodes(doc, cfg.Scrape.Heading, cfg.Scrape.Selector)
		if err != nil {
			return nil, err
		}
		for i := range eps {
			eps[i].Source = src
		}
		return eps, nil
	}

	title := fetchTitle
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if title == "" {
		title = src
	}
	body := scraper.ExtractText(doc.Selection, cfg.Scrape.Selector)
	return []model.Text{{Title: title, Source: src, Body: body}}, nil
}

func init() {
	fetchCmd.Flags().StringVar(&fetchTitle, "title", "", "Title to store the text under (default: page title or file name)")
	fetchCmd.Flags().BoolVar(&fetchSplit, "split", false, "Split an HTML book into one text per chapter heading")
	rootCmd.AddCommand(fetchCmd)
}
