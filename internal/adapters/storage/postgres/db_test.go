package postgres

import (
	"strings"
	"testing"
)

func TestOpen_RejectsEmptyDSN(t *testing.T) {
	for _, dsn := range []string{"", "   "} {
		if _, err := Open(dsn); err == nil {
			t.Fatalf("expected error for dsn %q", dsn)
		} else if !strings.Contains(err.Error(), "empty dsn") {
			t.Fatalf("unexpected error for dsn %q: %v", dsn, err)
		}
	}
}
