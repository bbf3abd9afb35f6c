package timezone_test

import (
	"pgsystem/shared/timezone"
	"testing"
	"time"
)

func TestSetLocation(t *testing.T) {
	original := timezone.GetLocation()
	defer func() { _ = timezone.SetLocation(original.String()) }()

	tests := []struct {
		name        string
		location    string
		expected    string
		expectError bool
	}{
		{name: "empty selects UTC", location: "", expected: "UTC"},
		{name: "iana name", location: "Asia/Jakarta", expected: "Asia/Jakarta"},
		{name: "unknown name keeps previous", location: "Mars/Olympus", expected: "Asia/Jakarta", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := timezone.SetLocation(tt.location)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
			if got := timezone.GetLocation().String(); got != tt.expected {
				t.Errorf("expected location %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestFormatAndParse(t *testing.T) {
	original := timezone.GetLocation()
	defer func() { _ = timezone.SetLocation(original.String()) }()

	if err := timezone.SetLocation("Asia/Jakarta"); err != nil {
		t.Fatalf("failed to set location: %v", err)
	}

	utc := time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC)
	if got := timezone.Format(utc, "2006-01-02 15:04"); got != "2024-01-02 03:00" {
		t.Errorf("expected shifted time, got %s", got)
	}

	if got := timezone.Format(time.Time{}, "2006-01-02"); got != "" {
		t.Errorf("expected empty string for zero time, got %s", got)
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if parsed.Location().String() != "Asia/Jakarta" {
		t.Errorf("expected parsed time in Asia/Jakarta, got %s", parsed.Location())
	}

	if _, err := timezone.Parse("2006-01-02", "not-a-date"); err == nil {
		t.Error("expected parse error, got nil")
	}

	if timezone.Now().Location().String() != "Asia/Jakarta" {
		t.Errorf("expected Now() in app location, got %s", timezone.Now().Location())
	}
}
