package callback

import (
	"errors"
	"log/slog"
	"time"

	"google.golang.org/adk/agent"
	adksession "google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/easeaico/affect-engine/internal/affect"
)

// EnsureSessionStateCallback seeds session state with the character's
// initial emotional summary so downstream consumers always find the keys.
func EnsureSessionStateCallback(summary affect.Summary, modifier string) agent.BeforeAgentCallback {
	return func(cbCtx agent.CallbackContext) (*genai.Content, error) {
		state := cbCtx.State()
		if state == nil {
			slog.Warn("session state is nil, skipping state initialization")
			return nil, nil
		}

		ensureStateValue(state, "Emotion", summary.Emotion)
		ensureStateValue(state, "Modifier", modifier)
		ensureStateValue(state, "Now", time.Now().Format(time.RFC3339))

		return nil, nil
	}
}

func ensureStateValue(state adksession.State, key string, value any) {
	if value == nil {
		return
	}
	_, err := state.Get(key)
	if err == nil {
		// Existing keys are not overwritten.
		return
	}
	if !errors.Is(err, adksession.ErrStateKeyNotExist) {
		slog.Warn("failed to check session state key", "key", key, "error", err.Error())
		return
	}
	if err := state.Set(key, value); err != nil {
		// State write failures never block the turn.
		slog.Warn("failed to set session state", "key", key, "error", err.Error())
	}
}

// setStateValue overwrites a session state key, logging failures.
func setStateValue(cbCtx agent.CallbackContext, key string, value any) {
	state := cbCtx.State()
	if state == nil {
		return
	}
	if err := state.Set(key, value); err != nil {
		slog.Warn("failed to set session state", "key", key, "error", err.Error())
	}
}
