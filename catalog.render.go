package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	FormatText string = "text"
	FormatJSON string = "json"
	FormatYAML string = "yaml"
)

type renderDoc struct {
	Books []*BookEntry `json:"books" yaml:"books"`
}

// RenderCatalog writes all catalog entries to w in the given format.
func RenderCatalog(w io.Writer, catalog *Catalog, format string) error {
	entries := catalog.Entries()
	switch format {
	case FormatText:
		for i, entry := range entries {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, entry); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(renderDoc{Books: entries})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(renderDoc{Books: entries}); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
