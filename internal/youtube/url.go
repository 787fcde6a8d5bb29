package youtube

import (
	"regexp"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
)

// videoIDRe matches an 11-character video ID following "v=" or a path
// separator. Shortened-domain links work only when the ID sits in the path.
var videoIDRe = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID pulls the 11-character video ID out of a watch URL.
func ExtractVideoID(rawURL string) (string, error) {
	m := videoIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", model.ErrInvalidURL
	}
	return m[1], nil
}
