package models

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/taskvault/internal/common"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"OPEN", "IN_PROGRESS", "DONE"} {
		got, err := ParseStatus(s)
		if err != nil {
			t.Fatalf("ParseStatus(%q) error: %v", s, err)
		}
		if string(got) != s {
			t.Fatalf("ParseStatus(%q) = %q", s, got)
		}
	}

	for _, s := range []string{"", "open", "CLOSED", "Done"} {
		if _, err := ParseStatus(s); !errors.Is(err, common.ErrorInvalidStatus) {
			t.Fatalf("ParseStatus(%q): want ErrorInvalidStatus, got %v", s, err)
		}
	}
}
