// Package agent provides agent initialization.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"

	"github.com/easeaico/affect-engine/internal/callback"
	"github.com/easeaico/affect-engine/internal/config"
	"github.com/easeaico/affect-engine/internal/models"
	"github.com/easeaico/affect-engine/internal/prompt"
	"github.com/easeaico/affect-engine/internal/repository"
	"github.com/easeaico/affect-engine/internal/session"
)

// NewCompanionAgent builds the roleplay agent whose replies are colored by
// the affect engine.
func NewCompanionAgent(
	ctx context.Context,
	store *repository.Store,
	manager *session.Manager,
	cfg *config.Config,
) (agent.Agent, error) {
	if store == nil || manager == nil || cfg == nil {
		return nil, fmt.Errorf("store, session manager and config are required")
	}

	llmModel, err := models.NewGrokModel(ctx, cfg.LLMModel, cfg.XAIAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create grok model: %w", err)
	}

	character, err := store.Characters.GetByID(ctx, cfg.CharacterID)
	if err != nil {
		return nil, err
	}

	summary, err := manager.Summary(ctx, character.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read initial affect state: %w", err)
	}
	modifier, err := manager.Modifier(ctx, character.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read initial response modifier: %w", err)
	}

	builder := prompt.NewBuilder()
	instruction, err := builder.BuildInstruction(prompt.BuildContext{
		Character: character,
		Summary:   summary,
		Modifier:  modifier,
	})
	if err != nil {
		return nil, err
	}

	llmAgent, err := llmagent.New(llmagent.Config{
		Name:                 "affect_companion",
		Description:          "A roleplay companion with a simulated emotional life",
		Model:                llmModel,
		Instruction:          instruction,
		BeforeAgentCallbacks: []agent.BeforeAgentCallback{callback.EnsureSessionStateCallback(summary, modifier)},
		BeforeModelCallbacks: []llmagent.BeforeModelCallback{callback.NewAffectCallback(manager, character.ID)},
		AfterModelCallbacks:  []llmagent.AfterModelCallback{callback.NewAffectLogCallback(manager, character.ID)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create companion agent: %w", err)
	}

	return llmAgent, nil
}
