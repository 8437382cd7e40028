package main

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = (*BookEntry)(nil)
	_ json.Unmarshaler = (*BookEntry)(nil)
	_ yaml.Marshaler   = (*BookEntry)(nil)
	_ yaml.Unmarshaler = (*BookEntry)(nil)
)

// bookEntryDoc is the encoded shape of a BookEntry.
type bookEntryDoc struct {
	Title   string   `json:"title" yaml:"title"`
	Authors []string `json:"authors" yaml:"authors,flow"`
	Rating  float32  `json:"rating" yaml:"rating"`
	ISBN    string   `json:"isbn" yaml:"isbn"`
	Pages   int      `json:"pages" yaml:"pages"`
}

func (b *BookEntry) doc() (bookEntryDoc, error) {
	if b.IsZero() {
		return bookEntryDoc{}, fmt.Errorf("cannot marshal unconstructed book entry: %w", ErrInvalidArgument)
	}
	return bookEntryDoc{
		Title:   b.title,
		Authors: b.Authors(),
		Rating:  b.rating,
		ISBN:    b.isbn,
		Pages:   b.pages,
	}, nil
}

// assign replaces the zero value b by a validated entry. Decoded ratings
// must also be finite so that every decoded entry can be encoded again.
func (b *BookEntry) assign(f BookEntryFields) error {
	if !b.IsZero() {
		return ErrEntryImmutable
	}
	entry, err := NewBookEntryFromFields(f)
	if err != nil {
		return err
	}
	if math.IsInf(float64(entry.rating), 0) {
		return &invalidFieldError{"rating", "must be finite"}
	}
	*b = *entry
	return nil
}

// MarshalJSON implements json.Marshaler.
func (b *BookEntry) MarshalJSON() ([]byte, error) {
	d, err := b.doc()
	if err != nil {
		return nil, err
	}
	return json.Marshal(d)
}

// UnmarshalJSON implements json.Unmarshaler. Missing or null fields are
// reported as ErrNilArgument, malformed values as ErrInvalidArgument.
func (b *BookEntry) UnmarshalJSON(data []byte) error {
	var f BookEntryFields
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to decode book entry: %w: %v", ErrInvalidArgument, err)
	}
	return b.assign(f)
}

// MarshalYAML implements yaml.Marshaler.
func (b *BookEntry) MarshalYAML() (interface{}, error) {
	d, err := b.doc()
	if err != nil {
		return nil, err
	}
	return d, nil
}

// UnmarshalYAML implements yaml.Unmarshaler with the same rules as UnmarshalJSON.
func (b *BookEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: book entry must be a mapping: %w", node.Line, ErrInvalidArgument)
	}
	var f BookEntryFields
	if err := node.Decode(&f); err != nil {
		return fmt.Errorf("failed to decode book entry: %w: %v", ErrInvalidArgument, err)
	}
	return b.assign(f)
}
