package youtube

// Provider bundles metadata and transcript lookups behind a single value,
// which is what the ingestion driver consumes.
type Provider struct {
	*MetadataClient
	*TranscriptClient
}

func NewProvider(languages []string) *Provider {
	return &Provider{
		MetadataClient:   NewMetadataClient(),
		TranscriptClient: NewTranscriptClient(languages),
	}
}
