package docstore

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
)

const docMimeType = "application/vnd.google-apps.document"

// Store wraps the Docs and Drive services with the handful of operations the
// two flows need: create, fill, relocate, list and read back documents.
type Store struct {
	docs  *docs.Service
	drive *drive.Service
}

func New(docsSvc *docs.Service, driveSvc *drive.Service) *Store {
	return &Store{docs: docsSvc, drive: driveSvc}
}

// CreateDocument creates an empty document with the given title and inserts
// the full body at the start. A doc created with no content inserted is a
// possible end state if the second call fails; no rollback is attempted.
func (s *Store) CreateDocument(ctx context.Context, title, body string) (string, error) {
	doc, err := s.docs.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}

	req := &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{
			{
				InsertText: &docs.InsertTextRequest{
					Location: &docs.Location{Index: 1},
					Text:     body,
				},
			},
		},
	}
	if _, err := s.docs.Documents.BatchUpdate(doc.DocumentId, req).Context(ctx).Do(); err != nil {
		return "", fmt.Errorf("insert content into %s: %w", doc.DocumentId, err)
	}

	return doc.DocumentId, nil
}

// MoveToFolder replaces a document's current parents with the single target
// folder, making the folder its only container.
func (s *Store) MoveToFolder(ctx context.Context, docID, folderID string) error {
	file, err := s.drive.Files.Get(docID).Fields("parents").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("read parents of %s: %w", docID, err)
	}
	previous := strings.Join(file.Parents, ",")

	_, err = s.drive.Files.Update(docID, nil).
		AddParents(folderID).
		RemoveParents(previous).
		Fields("id, parents").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("move %s to folder %s: %w", docID, folderID, err)
	}
	return nil
}

// ListFolder returns the documents (id and name) inside a folder,
// filtered to the Docs MIME type.
func (s *Store) ListFolder(ctx context.Context, folderID string) ([]model.DocRef, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType = '%s'", folderID, docMimeType)
	resp, err := s.drive.Files.List().Q(query).Fields("files(id, name)").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list folder %s: %w", folderID, err)
	}

	refs := make([]model.DocRef, 0, len(resp.Files))
	for _, f := range resp.Files {
		refs = append(refs, model.DocRef{ID: f.Id, Name: f.Name})
	}
	return refs, nil
}

// DocumentText fetches a document and flattens its paragraph runs into a
// single trimmed string.
func (s *Store) DocumentText(ctx context.Context, docID string) (string, error) {
	doc, err := s.docs.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", docID, err)
	}
	return ExtractText(doc), nil
}

// DocumentName returns the document's display name from Drive.
func (s *Store) DocumentName(ctx context.Context, docID string) (string, error) {
	file, err := s.drive.Files.Get(docID).Fields("name").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("read name of %s: %w", docID, err)
	}
	return file.Name, nil
}

// ExtractText concatenates the text-run content of every paragraph in the
// document body. Runs carry their own trailing newlines, so joining them
// reproduces the original paragraph boundaries.
func ExtractText(doc *docs.Document) string {
	if doc == nil || doc.Body == nil {
		return ""
	}

	var b strings.Builder
	for _, el := range doc.Body.Content {
		if el.Paragraph == nil {
			continue
		}
		for _, pe := range el.Paragraph.Elements {
			if pe.TextRun != nil {
				b.WriteString(pe.TextRun.Content)
			}
		}
	}
	return strings.TrimSpace(b.String())
}
