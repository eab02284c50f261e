package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns a unique path for an sqlite database file, inside a
// directory that is cleaned up when the test finishes. The file itself does
// not exist yet, the driver creates it on connect.
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}
