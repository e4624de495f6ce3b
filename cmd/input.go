package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/intelligrit/ulysses-guide/internal/model"
	"github.com/intelligrit/ulysses-guide/internal/store"
)

// loadText resolves a text argument: "-" reads stdin, an existing file is
// read from disk, anything else is looked up in the store by id or title.
// Only stored texts come back with an id.
func loadText(s *store.Store, ref string) (*model.Text, error) {
	if ref == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return &model.Text{Title: "stdin", Source: "stdin", Body: string(b)}, nil
	}

	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		b, err := os.ReadFile(ref)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", ref, err)
		}
		title := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
		return &model.Text{Title: title, Source: ref, Body: string(b)}, nil
	}

	t, err := s.ReadText(ref)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%q is neither a file nor a stored text (see 'fetch')", ref)
	}
	return t, err
}

// speakerList returns the --speakers flag value, or the configured list.
func speakerList(flag []string) []string {
	if len(flag) > 0 {
		return flag
	}
	return cfg.Analysis.Speakers
}
