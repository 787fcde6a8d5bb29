package service

import (
	"context"
	"testing"

	"github.com/TampaDave73/youtube-transcripts-bot/internal/model"
)

func TestNewCacheService_DisabledWithoutURL(t *testing.T) {
	c := NewCacheService("")
	if c.Enabled() {
		t.Error("expected cache to be disabled without a URL")
	}
	if c.Client() != nil {
		t.Error("expected nil client for disabled cache")
	}
}

func TestNewCacheService_DisabledOnBadURL(t *testing.T) {
	c := NewCacheService("not a redis url")
	if c.Enabled() {
		t.Error("expected cache to be disabled on an unparseable URL")
	}
}

func TestCacheService_DisabledOperationsAreNoOps(t *testing.T) {
	c := NewCacheService("")
	ctx := context.Background()

	text, err := c.GetDocText(ctx, "doc-1")
	if err != nil || text != "" {
		t.Errorf("GetDocText = (%q, %v), want empty, nil", text, err)
	}
	if err := c.SetDocText(ctx, "doc-1", "some text"); err != nil {
		t.Errorf("SetDocText error: %v", err)
	}

	data, err := c.GetListing(ctx, "folder-1")
	if err != nil || data != nil {
		t.Errorf("GetListing = (%v, %v), want nil, nil", data, err)
	}
	listing := []model.DocRef{{ID: "a", Name: "First Video"}}
	if err := c.SetListing(ctx, "folder-1", listing); err != nil {
		t.Errorf("SetListing error: %v", err)
	}

	if err := c.InvalidateListing(ctx, "folder-1"); err != nil {
		t.Errorf("InvalidateListing error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
}
