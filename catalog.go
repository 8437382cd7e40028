package main

import (
	"go.uber.org/zap"
)

// CatalogRecord pairs an entry with the id the catalog assigned to it.
type CatalogRecord struct {
	ID    string
	Entry *BookEntry
}

// Catalog is an in-memory, insertion-ordered collection of distinct book
// entries. It is meant to be used from a single goroutine.
type Catalog struct {
	logger   *zap.Logger
	ids      UIDHandler
	idPrefix string
	records  []CatalogRecord
	byID     map[string]int
	byHash   map[uint64][]int
}

// NewCatalog provides an empty catalog which names its entries
// with ids generated under idPrefix.
func NewCatalog(logger *zap.Logger, ids UIDHandler, idPrefix string) *Catalog {
	if idPrefix == "" {
		idPrefix = EntryIDPrefix
	}
	return &Catalog{
		logger:   logger,
		ids:      ids,
		idPrefix: idPrefix,
		byID:     make(map[string]int),
		byHash:   make(map[uint64][]int),
	}
}

// Add stores the entry and returns its newly assigned id.
func (c *Catalog) Add(entry *BookEntry) (string, error) {
	if entry == nil {
		return "", missingFieldError("entry")
	}
	if entry.IsZero() {
		return "", &invalidFieldError{"entry", "must be constructed"}
	}
	if c.Contains(entry) {
		return "", ErrDuplicateEntry
	}

	id := c.ids.Generate(c.idPrefix)
	h := entry.Hash()
	c.records = append(c.records, CatalogRecord{ID: id, Entry: entry})
	c.byID[id] = len(c.records) - 1
	c.byHash[h] = append(c.byHash[h], len(c.records)-1)
	c.logger.Debug("catalog: entry added", zap.String("id", id), zap.String("isbn", entry.ISBN()))
	return id, nil
}

// Get retrieves an entry by its id.
func (c *Catalog) Get(id string) (*BookEntry, error) {
	if !c.ids.IsValid(c.idPrefix, id) {
		return nil, ErrInvalidEntryID
	}
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrEntryNotFound
	}
	return c.records[i].Entry, nil
}

// Contains reports whether an entry equal to the given one is stored.
func (c *Catalog) Contains(entry *BookEntry) bool {
	if entry == nil {
		return false
	}
	for _, i := range c.byHash[entry.Hash()] {
		if c.records[i].Entry.Equal(entry) {
			return true
		}
	}
	return false
}

// Len returns the number of stored entries.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns the stored records in insertion order.
func (c *Catalog) Records() []CatalogRecord {
	records := make([]CatalogRecord, len(c.records))
	copy(records, c.records)
	return records
}

// Entries returns the stored entries in insertion order.
func (c *Catalog) Entries() []*BookEntry {
	entries := make([]*BookEntry, 0, len(c.records))
	for _, r := range c.records {
		entries = append(entries, r.Entry)
	}
	return entries
}
