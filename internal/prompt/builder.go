// Package prompt assembles the system instruction consumed by the agent.
package prompt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/easeaico/affect-engine/internal/affect"
	"github.com/easeaico/affect-engine/internal/types"
)

// BuildContext contains all inputs for prompt assembly.
type BuildContext struct {
	Character *types.Character
	Summary   affect.Summary
	Modifier  string
}

// Builder renders the layered system instruction.
type Builder struct {
	nowFunc func() time.Time
}

// NewBuilder creates a prompt Builder.
func NewBuilder() *Builder {
	return &Builder{nowFunc: time.Now}
}

// BuildInstruction renders the instruction text for the agent.
func (b *Builder) BuildInstruction(ctx BuildContext) (string, error) {
	if ctx.Character == nil {
		return "", fmt.Errorf("character is required")
	}

	data := struct {
		Character       *types.Character
		Summary         affect.Summary
		Modifier        string
		Now             string
		ExampleDialogue string
	}{
		Character:       ctx.Character,
		Summary:         ctx.Summary,
		Modifier:        ctx.Modifier,
		Now:             b.nowFunc().Format(time.RFC3339),
		ExampleDialogue: replaceVars(ctx.Character.ExampleDialogue, ctx.Character.Name, "user"),
	}

	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}
	return buf.String(), nil
}
