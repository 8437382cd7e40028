package main

import (
	"fmt"
	"time"
)

// This file contains mocks definitions needed to perform unit tests.

// MockClocker implements a fake zapcore.Clock.
type MockClocker struct {
	MockNow time.Time
}

// NewMockClocker returns a mocked instance with fixed time.
func NewMockClocker() *MockClocker {
	return &MockClocker{time.Date(2023, 0o7, 0o2, 0o0, 0o0, 0o0, 0o00000000, time.UTC)}
}

// Now returns an already defined time to be used as mock. This
// equals to `2023-07-02T00:00:00.000Z` in ISO8601 format.
func (mck *MockClocker) Now() time.Time {
	return mck.MockNow
}

func (mck *MockClocker) NewTicker(d time.Duration) *time.Ticker {
	return time.NewTicker(d)
}

// MockUIDHandler implements a fake UIDHandler.
type MockUIDHandler struct {
	MockedUID string
	Valid     bool
	count     int
}

// NewMockUIDHandler returns a mocked instance with predictable ids.
func NewMockUIDHandler(id string, valid bool) *MockUIDHandler {
	return &MockUIDHandler{MockedUID: id, Valid: valid}
}

// Generate constructs predictable ids `<prefix>:<id>-<n>` to be used as mock.
func (muid *MockUIDHandler) Generate(prefix string) string {
	muid.count++
	return fmt.Sprintf("%s:%s-%d", prefix, muid.MockedUID, muid.count)
}

// IsValid mocks IsValid behavior by providing configured status.
func (muid *MockUIDHandler) IsValid(_, _ string) bool {
	return muid.Valid
}
