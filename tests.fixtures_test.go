package main

// This file contains test-only helpers to build book entries directly,
// bypassing the validating constructors.

const (
	defaultTitle          = "The Hobbit"
	defaultRating float32 = 4.25
	defaultISBN           = "618260307"
	defaultPages          = 366
	defaultString         = "Title: The Hobbit\nAuthors: J.R.R. Tolkien\nRating: 4.25\nISBN: 618260307\nPages: 366"
)

func defaultAuthors() []string {
	return []string{"J.R.R. Tolkien"}
}

type entryOption func(*BookEntry)

func withTitle(title string) entryOption {
	return func(b *BookEntry) { b.title = title }
}

func withAuthors(authors ...string) entryOption {
	return func(b *BookEntry) { b.authors = authors }
}

func withRating(rating float32) entryOption {
	return func(b *BookEntry) { b.rating = rating }
}

func withISBN(isbn string) entryOption {
	return func(b *BookEntry) { b.isbn = isbn }
}

func withPages(pages int) entryOption {
	return func(b *BookEntry) { b.pages = pages }
}

// newTestBookEntry returns the default entry with the given overrides applied.
func newTestBookEntry(opts ...entryOption) *BookEntry {
	b := &BookEntry{
		title:   defaultTitle,
		authors: defaultAuthors(),
		rating:  defaultRating,
		isbn:    defaultISBN,
		pages:   defaultPages,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func strPtr(s string) *string {
	return &s
}

// defaultFields returns construction input matching the default entry.
func defaultFields() BookEntryFields {
	return BookEntryFields{
		Title:   strPtr(defaultTitle),
		Authors: []*string{strPtr("J.R.R. Tolkien")},
		Rating:  defaultRating,
		ISBN:    strPtr(defaultISBN),
		Pages:   defaultPages,
	}
}
