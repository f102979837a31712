package slack

import (
	"strings"
	"testing"
)

func TestAttachmentBuilder_Build(t *testing.T) {
	attachment, err := NewAttachmentBuilder().
		WithColor("#d9534f").
		WithFallback("RuntimeFailure: disk full").
		AddBlock(NewHeaderBlock("RuntimeFailure")).
		AddBlock(NewSectionBlock("*Message:*\ndisk full")).
		Build()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if attachment.Color != "#d9534f" {
		t.Errorf("expected color '#d9534f', got '%s'", attachment.Color)
	}
	if attachment.Fallback != "RuntimeFailure: disk full" {
		t.Errorf("expected fallback, got '%s'", attachment.Fallback)
	}
	if len(attachment.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(attachment.Blocks))
	}
	if attachment.Blocks[0].Type != BlockTypeHeader {
		t.Errorf("expected header block first, got '%s'", attachment.Blocks[0].Type)
	}
}

func TestAttachmentBuilder_RejectsOversizedHeader(t *testing.T) {
	_, err := NewAttachmentBuilder().
		AddBlock(NewHeaderBlock(strings.Repeat("x", maxHeaderTextLength+1))).
		Build()

	if err == nil {
		t.Fatal("expected validation error for oversized header")
	}
}

func TestAttachmentBuilder_RejectsOversizedSection(t *testing.T) {
	_, err := NewAttachmentBuilder().
		AddBlock(NewSectionBlock(strings.Repeat("x", maxSectionTextLength+1))).
		Build()

	if err == nil {
		t.Fatal("expected validation error for oversized section")
	}
}

func TestMessagePayloadBuilder_Build(t *testing.T) {
	payload := NewMessagePayloadBuilder().
		WithChannel("#alerts").
		WithUsername("errnotify").
		WithIconEmoji(":rotating_light:").
		AddAttachment(Attachment{Color: "good"}).
		Build()

	if payload.Channel != "#alerts" {
		t.Errorf("expected channel '#alerts', got '%s'", payload.Channel)
	}
	if payload.Username != "errnotify" {
		t.Errorf("expected username, got '%s'", payload.Username)
	}
	if len(payload.Attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(payload.Attachments))
	}
}
