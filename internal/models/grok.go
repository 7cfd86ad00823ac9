// Package models provides LLM provider adapters.
package models

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/easeaico/affect-engine/internal/utils"
)

// grokModel wraps the OpenAI-compatible x.ai chat endpoint behind the adk
// model interface.
type grokModel struct {
	client *openai.Client
	name   string
}

// NewGrokModel creates a Grok model instance targeting the x.ai API.
func NewGrokModel(ctx context.Context, modelName, apiKey string) (model.LLM, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL("https://api.x.ai/v1"),
	)

	return &grokModel{
		name:   modelName,
		client: &client,
	}, nil
}

func (m *grokModel) Name() string {
	return m.name
}

func (m *grokModel) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	params := m.buildParams(req)

	if stream {
		return m.generateStream(ctx, params)
	}
	return func(yield func(*model.LLMResponse, error) bool) {
		resp, err := m.generate(ctx, params)
		yield(resp, err)
	}
}

func (m *grokModel) generate(ctx context.Context, params openai.ChatCompletionNewParams) (*model.LLMResponse, error) {
	resp, err := m.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to call grok API: %w", err)
	}
	if resp == nil || len(resp.Choices) == 0 {
		return &model.LLMResponse{}, nil
	}
	return textResponse(resp.Choices[0].Message.Content, false), nil
}

func (m *grokModel) generateStream(ctx context.Context, params openai.ChatCompletionNewParams) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		stream := m.client.Chat.Completions.NewStreaming(ctx, params)
		defer stream.Close()

		var full strings.Builder
		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			full.WriteString(delta)
			if !yield(textResponse(delta, true), nil) {
				return
			}
		}
		if err := stream.Err(); err != nil {
			yield(nil, fmt.Errorf("grok stream failed: %w", err))
			return
		}
		yield(textResponse(full.String(), false), nil)
	}
}

// buildParams converts the genai request into chat-completion parameters,
// flattening each content into one text message.
func (m *grokModel) buildParams(req *model.LLMRequest) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: m.name,
	}
	if req == nil {
		return params
	}

	if req.Config != nil && req.Config.SystemInstruction != nil {
		if text := utils.ExtractContentText(req.Config.SystemInstruction); text != "" {
			params.Messages = append(params.Messages, openai.SystemMessage(text))
		}
	}

	for _, content := range req.Contents {
		text := utils.ExtractContentText(content)
		if text == "" {
			continue
		}
		switch content.Role {
		case "system":
			params.Messages = append(params.Messages, openai.SystemMessage(text))
		case "model", "assistant":
			params.Messages = append(params.Messages, openai.AssistantMessage(text))
		default:
			params.Messages = append(params.Messages, openai.UserMessage(text))
		}
	}
	return params
}

func textResponse(text string, partial bool) *model.LLMResponse {
	return &model.LLMResponse{
		Content: genai.NewContentFromText(text, "model"),
		Partial: partial,
	}
}
