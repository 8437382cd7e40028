package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// BookEntry represents one immutable book catalog entry. It can only be
// obtained through NewBookEntry or NewBookEntryFromFields (or decoding),
// which validate every field. An entry is safe for concurrent reads.
type BookEntry struct {
	title   string
	authors []string
	rating  float32
	isbn    string
	pages   int
}

// BookEntryFields holds the raw construction input. A nil pointer or a
// nil Authors slice stands for an absent value.
type BookEntryFields struct {
	Title   *string   `json:"title" yaml:"title"`
	Authors []*string `json:"authors" yaml:"authors"`
	Rating  float32   `json:"rating" yaml:"rating"`
	ISBN    *string   `json:"isbn" yaml:"isbn"`
	Pages   int       `json:"pages" yaml:"pages"`
}

// NewBookEntry builds a validated entry. A nil authors slice is reported
// as a missing field, every other violation as an invalid argument.
func NewBookEntry(title string, authors []string, rating float32, isbn string, pages int) (*BookEntry, error) {
	fields := BookEntryFields{
		Title:  &title,
		Rating: rating,
		ISBN:   &isbn,
		Pages:  pages,
	}
	if authors != nil {
		fields.Authors = make([]*string, len(authors))
		for i := range authors {
			author := authors[i]
			fields.Authors[i] = &author
		}
	}
	return NewBookEntryFromFields(fields)
}

// NewBookEntryFromFields builds a validated entry from raw input. Fields
// are checked in order title, authors, rating, isbn, pages and the first
// violation is returned.
func NewBookEntryFromFields(f BookEntryFields) (*BookEntry, error) {
	if f.Title == nil {
		return nil, missingFieldError("title")
	}
	if len(*f.Title) == 0 {
		return nil, &invalidFieldError{"title", "must not be empty"}
	}

	if f.Authors == nil {
		return nil, missingFieldError("authors")
	}
	authors := make([]string, len(f.Authors))
	for i, author := range f.Authors {
		if author == nil {
			return nil, missingFieldError(fmt.Sprintf("authors[%d]", i))
		}
		if len(*author) == 0 {
			return nil, &invalidFieldError{fmt.Sprintf("authors[%d]", i), "must not be empty"}
		}
		authors[i] = *author
	}

	// NaN fails this check as well.
	if !(f.Rating >= 0) {
		return nil, &invalidFieldError{"rating", fmt.Sprintf("must not be negative (got %v)", f.Rating)}
	}

	if f.ISBN == nil {
		return nil, missingFieldError("isbn")
	}
	if len(*f.ISBN) == 0 {
		return nil, &invalidFieldError{"isbn", "must not be empty"}
	}

	if f.Pages < 0 {
		return nil, &invalidFieldError{"pages", fmt.Sprintf("must not be negative (got %d)", f.Pages)}
	}

	return &BookEntry{
		title:   *f.Title,
		authors: authors,
		rating:  f.Rating,
		isbn:    *f.ISBN,
		pages:   f.Pages,
	}, nil
}

// Title returns the book title.
func (b *BookEntry) Title() string {
	return b.title
}

// Authors returns a copy of the ordered authors list.
func (b *BookEntry) Authors() []string {
	if b.authors == nil {
		return nil
	}
	authors := make([]string, len(b.authors))
	copy(authors, b.authors)
	return authors
}

// Rating returns the book rating.
func (b *BookEntry) Rating() float32 {
	return b.rating
}

// ISBN returns the book ISBN.
func (b *BookEntry) ISBN() string {
	return b.isbn
}

// Pages returns the number of pages.
func (b *BookEntry) Pages() int {
	return b.pages
}

// IsZero reports whether b is the zero value, i.e. was never constructed.
func (b *BookEntry) IsZero() bool {
	return b.title == "" && b.authors == nil && b.rating == 0 && b.isbn == "" && b.pages == 0
}

// Equal reports whether both entries hold the same five field values.
// Authors are compared element by element and ratings exactly.
func (b *BookEntry) Equal(other *BookEntry) bool {
	if b == nil || other == nil {
		return false
	}
	if b == other {
		return true
	}
	if b.title != other.title || b.rating != other.rating || b.isbn != other.isbn || b.pages != other.pages {
		return false
	}
	if len(b.authors) != len(other.authors) {
		return false
	}
	for i := range b.authors {
		if b.authors[i] != other.authors[i] {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal. A nil entry hashes to 0.
func (b *BookEntry) Hash() uint64 {
	if b == nil {
		return 0
	}
	d := xxhash.New()
	var buf [8]byte

	writeString := func(s string) {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		_, _ = d.Write(buf[:])
		_, _ = d.WriteString(s)
	}

	writeString(b.title)
	binary.LittleEndian.PutUint64(buf[:], uint64(len(b.authors)))
	_, _ = d.Write(buf[:])
	for _, author := range b.authors {
		writeString(author)
	}

	binary.LittleEndian.PutUint64(buf[:], uint64(math.Float32bits(b.normalizedRating())))
	_, _ = d.Write(buf[:])

	writeString(b.isbn)
	binary.LittleEndian.PutUint64(buf[:], uint64(b.pages))
	_, _ = d.Write(buf[:])

	return d.Sum64()
}

// normalizedRating folds -0 into +0 since both compare equal.
func (b *BookEntry) normalizedRating() float32 {
	if b.rating == 0 {
		return 0
	}
	return b.rating
}

// String renders the entry on five labeled lines.
func (b *BookEntry) String() string {
	if b == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString("Title: ")
	sb.WriteString(b.title)
	sb.WriteString("\nAuthors: ")
	sb.WriteString(strings.Join(b.authors, ", "))
	sb.WriteString("\nRating: ")
	sb.WriteString(strconv.FormatFloat(float64(b.normalizedRating()), 'f', 2, 32))
	sb.WriteString("\nISBN: ")
	sb.WriteString(b.isbn)
	sb.WriteString("\nPages: ")
	sb.WriteString(strconv.Itoa(b.pages))
	return sb.String()
}
