package youtube

import (
	"errors"
	"testing"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"watch url with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", false},
		{"short link path", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", false},
		{"embed path", "https://www.youtube.com/embed/abc-def_123", "abc-def_123", false},
		{"id with dash and underscore", "https://www.youtube.com/watch?v=a_b-c_d-e_f", "a_b-c_d-e_f", false},
		{"no id present", "https://www.youtube.com/", "", true},
		{"token too short", "https://www.youtube.com/watch?v=shortid", "", true},
		{"empty string", "", "", true},
		{"plain text", "not a url at all", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.url)
			if tt.wantErr {
				if !errors.Is(err, model.ErrInvalidURL) {
					t.Fatalf("err = %v, want ErrInvalidURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractVideoID_TakesFirstMatch(t *testing.T) {
	// A URL with an 11-char segment in the path and a v= parameter: the
	// pattern scans left to right, so the path segment wins.
	got, err := ExtractVideoID("https://example.com/abcdefghijk/watch?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "abcdefghijk" {
		t.Errorf("got %q, want %q", got, "abcdefghijk")
	}
}
