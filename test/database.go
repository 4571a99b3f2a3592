package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns a path for a throwaway sqlite database. The file
// lives in a per-test temporary directory, so suites never share state
// and the test framework cleans it up.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.New().String()+".db")
}
