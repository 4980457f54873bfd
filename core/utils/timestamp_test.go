package utils

import (
	"testing"
	"time"
)

func TestNormalizeTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: "2026-09-20T18:00:00Z",
			want:  time.Date(2026, 9, 20, 18, 0, 0, 0, time.UTC),
		},
		{
			name:  "datetime local with seconds",
			input: "2026-09-20T18:00:30",
			want:  time.Date(2026, 9, 20, 18, 0, 30, 0, time.UTC),
		},
		{
			name:  "datetime local",
			input: "2026-09-20T18:00",
			want:  time.Date(2026, 9, 20, 18, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2026-09-20",
			want:  time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTimestamp(tt.input)
			if err != nil {
				t.Fatalf("NormalizeTimestamp(%q) returned error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NormalizeTimestamp(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTimestampRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "next tuesday", "20-09-2026", "2026/09/20"} {
		if _, err := NormalizeTimestamp(input); err == nil {
			t.Errorf("NormalizeTimestamp(%q) accepted invalid input", input)
		}
	}
}
