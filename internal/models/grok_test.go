package models

import (
	"context"
	"testing"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

func TestBuildParamsMapsRolesAndSystemInstruction(t *testing.T) {
	m := &grokModel{name: "grok-4-fast"}

	params := m.buildParams(&model.LLMRequest{
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText("stay in character", "system"),
		},
		Contents: []*genai.Content{
			genai.NewContentFromText("hello there", "user"),
			genai.NewContentFromText("hi! good to see you", "model"),
			genai.NewContentFromText("", "user"),
			genai.NewContentFromText("[Emotional state: feeling positive and upbeat]", "system"),
		},
	})

	if params.Model != "grok-4-fast" {
		t.Fatalf("unexpected model: %q", params.Model)
	}
	// Empty contents are skipped, everything else maps to one message.
	if len(params.Messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(params.Messages))
	}
	if params.Messages[0].OfSystem == nil {
		t.Fatal("system instruction should map to a system message")
	}
	if params.Messages[1].OfUser == nil {
		t.Fatal("user content should map to a user message")
	}
	if params.Messages[2].OfAssistant == nil {
		t.Fatal("model content should map to an assistant message")
	}
	if params.Messages[3].OfSystem == nil {
		t.Fatal("system content should map to a system message")
	}
}

func TestBuildParamsNilRequest(t *testing.T) {
	m := &grokModel{name: "grok-4-fast"}

	params := m.buildParams(nil)
	if params.Model != "grok-4-fast" || len(params.Messages) != 0 {
		t.Fatalf("nil request should yield empty params, got %+v", params)
	}
}

func TestNewGrokModelValidatesInput(t *testing.T) {
	ctx := context.Background()
	if _, err := NewGrokModel(ctx, "grok-4-fast", ""); err == nil {
		t.Fatal("expected error for missing API key")
	}
	if _, err := NewGrokModel(ctx, "", "key"); err == nil {
		t.Fatal("expected error for missing model name")
	}
}
