package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// catalogDoc is the document layout read by LoadCatalog and written
// by RenderCatalog. JSON documents share it since the YAML decoder
// accepts them as well.
type catalogDoc struct {
	Books []yaml.Node `yaml:"books"`
}

// Rejection describes a catalog record which could not be added.
type Rejection struct {
	Index int
	Line  int
	Err   error
}

// LoadReport summarizes a catalog load.
type LoadReport struct {
	Accepted []string
	Rejected []Rejection
}

// LoadCatalog decodes every record of the document read from r and adds
// the valid ones to catalog. Invalid or duplicate records are reported
// and skipped. It only fails when the document itself cannot be parsed.
func LoadCatalog(r io.Reader, catalog *Catalog) (LoadReport, error) {
	var report LoadReport
	var doc catalogDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return report, nil
		}
		return report, fmt.Errorf("failed to parse catalog document: %w", err)
	}

	for i := range doc.Books {
		node := &doc.Books[i]
		if node.ShortTag() == "!!null" {
			report.Rejected = append(report.Rejected, Rejection{Index: i, Line: node.Line, Err: missingFieldError("entry")})
			continue
		}
		var entry BookEntry
		if err := node.Decode(&entry); err != nil {
			report.Rejected = append(report.Rejected, Rejection{Index: i, Line: node.Line, Err: err})
			continue
		}
		id, err := catalog.Add(&entry)
		if err != nil {
			report.Rejected = append(report.Rejected, Rejection{Index: i, Line: node.Line, Err: err})
			continue
		}
		report.Accepted = append(report.Accepted, id)
	}
	return report, nil
}
