package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
)

const oembedEndpoint = "https://www.youtube.com/oembed"

type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// MetadataClient fetches video title and uploader via the public oEmbed endpoint.
type MetadataClient struct {
	httpClient *http.Client
}

func NewMetadataClient() *MetadataClient {
	return &MetadataClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Metadata returns the title and channel name for a watch URL.
func (c *MetadataClient) Metadata(ctx context.Context, videoURL string) (model.VideoMeta, error) {
	u, err := url.Parse(oembedEndpoint)
	if err != nil {
		return model.VideoMeta{}, err
	}
	q := u.Query()
	q.Set("url", videoURL)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return model.VideoMeta{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.VideoMeta{}, fmt.Errorf("oembed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.VideoMeta{}, fmt.Errorf("oembed request: unexpected status %d", resp.StatusCode)
	}

	var body oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.VideoMeta{}, fmt.Errorf("oembed decode: %w", err)
	}

	if body.Title == "" || body.AuthorName == "" {
		return model.VideoMeta{}, fmt.Errorf("oembed response missing title or author for %s", videoURL)
	}

	return model.VideoMeta{Title: body.Title, Channel: body.AuthorName}, nil
}
