package docstore

import (
	"testing"

	"google.golang.org/api/docs/v1"
)

func docWithRuns(runs ...string) *docs.Document {
	elements := make([]*docs.StructuralElement, 0, len(runs))
	for _, r := range runs {
		elements = append(elements, &docs.StructuralElement{
			Paragraph: &docs.Paragraph{
				Elements: []*docs.ParagraphElement{
					{TextRun: &docs.TextRun{Content: r}},
				},
			},
		})
	}
	return &docs.Document{Body: &docs.Body{Content: elements}}
}

func TestExtractText_JoinsParagraphRuns(t *testing.T) {
	doc := docWithRuns("Title: Some Video\n", "Channel: Some Channel\n", "\n", "Transcript:\nhello world\n")

	want := "Title: Some Video\nChannel: Some Channel\n\nTranscript:\nhello world"
	if got := ExtractText(doc); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractText_RoundTripsInsertedBody(t *testing.T) {
	// A body inserted at document start comes back as paragraph runs split at
	// newlines; joining the runs must reproduce the body modulo trailing
	// whitespace.
	body := "Title: T\nChannel: C\n\nTranscript:\nline one\nline two"
	doc := docWithRuns("Title: T\n", "Channel: C\n", "\n", "Transcript:\n", "line one\n", "line two\n")

	if got := ExtractText(doc); got != body {
		t.Errorf("round trip mismatch:\ngot  %q\nwant %q", got, body)
	}
}

func TestExtractText_MultipleRunsPerParagraph(t *testing.T) {
	doc := &docs.Document{Body: &docs.Body{Content: []*docs.StructuralElement{
		{
			Paragraph: &docs.Paragraph{
				Elements: []*docs.ParagraphElement{
					{TextRun: &docs.TextRun{Content: "split "}},
					{TextRun: &docs.TextRun{Content: "across "}},
					{TextRun: &docs.TextRun{Content: "runs\n"}},
				},
			},
		},
	}}}

	if got := ExtractText(doc); got != "split across runs" {
		t.Errorf("got %q", got)
	}
}

func TestExtractText_SkipsNonParagraphElements(t *testing.T) {
	doc := &docs.Document{Body: &docs.Body{Content: []*docs.StructuralElement{
		{Table: &docs.Table{}},
		{SectionBreak: &docs.SectionBreak{}},
		{
			Paragraph: &docs.Paragraph{
				Elements: []*docs.ParagraphElement{
					{TextRun: &docs.TextRun{Content: "only this\n"}},
					{InlineObjectElement: &docs.InlineObjectElement{}},
				},
			},
		},
	}}}

	if got := ExtractText(doc); got != "only this" {
		t.Errorf("got %q", got)
	}
}

func TestExtractText_EmptyDocument(t *testing.T) {
	if got := ExtractText(nil); got != "" {
		t.Errorf("nil doc: got %q", got)
	}
	if got := ExtractText(&docs.Document{}); got != "" {
		t.Errorf("no body: got %q", got)
	}
	if got := ExtractText(docWithRuns("\n")); got != "" {
		t.Errorf("whitespace only: got %q", got)
	}
}
