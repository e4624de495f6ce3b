package cmd

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/intelligrit/ulysses-guide/internal/store"
	"github.com/intelligrit/ulysses-guide/internal/web"
	"github.com/spf13/cobra"
)

var (
	browseHost    string
	browsePort    int
	browseRequire bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Browse speakers, sentiment transitions and mapped places in a web page",
	Long: "Serve the JSON API and the Dublin map page over the stored texts. " +
		"Segment and analyze texts first to see speakers; run extract and aggregate to see places.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("host") {
			browseHost = cfg.Server.Host
		}
		if !cmd.Flags().Changed("port") {
			browsePort = cfg.Server.Port
		}

		s, err := store.New(dataDir)
		if err != nil {
			return err
		}
		defer s.Close()

		texts, placed := s.TextCount(), s.CoordinateCount()
		if texts == 0 {
			if browseRequire {
				return fmt.Errorf("no texts in %s; run 'fetch' first", dataDir)
			}
			fmt.Fprintf(os.Stderr, "  WARNING: no texts in %s; the browser will be empty\n", dataDir)
		}
		fmt.Printf("%d texts (%d segmented), %d places on the map\n", texts, s.SegmentedCount(), placed)

		srv := &web.Server{
			Store: s,
			Addr:  net.JoinHostPort(browseHost, strconv.Itoa(browsePort)),
		}
		return srv.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&browseHost, "host", "localhost", "Interface the browser listens on (default from config)")
	serveCmd.Flags().IntVar(&browsePort, "port", 8080, "Port the browser listens on (default from config)")
	serveCmd.Flags().BoolVar(&browseRequire, "require-data", false, "Refuse to start when the store has no texts")
	rootCmd.AddCommand(serveCmd)
}
