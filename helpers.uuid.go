package main

import (
	"strings"

	"github.com/gofrs/uuid"
)

const EntryIDPrefix string = "e"

var _ UIDHandler = (*IDsHandler)(nil) // ensure IDsHandler implements UIDHandler.

// UIDHandler generates and checks prefixed unique identifiers.
type UIDHandler interface {
	Generate(prefix string) string
	IsValid(prefix string, id string) bool
}

// IDsHandler implements the UIDHandler interface with random v4 uuids.
type IDsHandler struct{}

// NewIDsHandler returns a ready to use IDsHandler.
func NewIDsHandler() *IDsHandler {
	return &IDsHandler{}
}

// Generate provides a random unique identifier in the form `<prefix>:<uuid>`.
func (idh *IDsHandler) Generate(prefix string) string {
	id, _ := uuid.NewV4()
	return prefix + ":" + id.String()
}

// IsValid checks if id carries the given prefix followed by a valid uuid.
func (idh *IDsHandler) IsValid(prefix, id string) bool {
	if !strings.HasPrefix(id, prefix+":") {
		return false
	}
	return uuid.FromStringOrNil(strings.TrimPrefix(id, prefix+":")) != uuid.Nil
}
