// Package callback wires the affect engine into the agent loop.
package callback

import (
	"log/slog"
	"strings"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/genai"

	"github.com/easeaico/affect-engine/internal/session"
	"github.com/easeaico/affect-engine/internal/utils"
)

// NewAffectCallback runs a full engine turn on the inbound user message
// before the model call: decay, appraisal, affect integration. The fresh
// response modifier is injected into the request so the generator sees the
// character's current emotional state.
func NewAffectCallback(manager *session.Manager, characterID int) llmagent.BeforeModelCallback {
	return func(cbCtx agent.CallbackContext, req *model.LLMRequest) (*model.LLMResponse, error) {
		if manager == nil || req == nil {
			return nil, nil
		}

		text := lastUserText(req)
		if strings.TrimSpace(text) == "" {
			return nil, nil
		}

		turn, err := manager.Touch(cbCtx, characterID, text)
		if err != nil {
			slog.Error("failed to update affect state", "error", err.Error())
			return nil, nil
		}

		// The modifier is a hint for the generator, not content to answer.
		req.Contents = append(req.Contents,
			genai.NewContentFromText(turn.Modifier, "system"))

		setStateValue(cbCtx, "Emotion", turn.Summary.Emotion)
		setStateValue(cbCtx, "Modifier", turn.Modifier)
		return nil, nil
	}
}

// NewAffectLogCallback logs the post-turn emotional summary once the final
// model response has arrived.
func NewAffectLogCallback(manager *session.Manager, characterID int) llmagent.AfterModelCallback {
	return func(cbCtx agent.CallbackContext, resp *model.LLMResponse, err error) (*model.LLMResponse, error) {
		if err != nil {
			return nil, err
		}
		if manager == nil || resp == nil || resp.Partial {
			return nil, nil
		}

		summary, sumErr := manager.Summary(cbCtx, characterID)
		if sumErr != nil {
			slog.Warn("failed to read affect summary", "error", sumErr.Error())
			return nil, nil
		}
		slog.Debug("affect state after turn",
			"character_id", characterID,
			"emotion", summary.Emotion,
			"confidence", summary.Confidence,
			"valence", summary.Valence,
			"arousal", summary.Arousal,
			"dominance", summary.Dominance,
			"dominant_system", summary.DominantSystem,
		)
		return nil, nil
	}
}

// lastUserText returns the text of the most recent user content in the
// request.
func lastUserText(req *model.LLMRequest) string {
	for i := len(req.Contents) - 1; i >= 0; i-- {
		content := req.Contents[i]
		if content == nil || content.Role != "user" {
			continue
		}
		return utils.ExtractContentText(content)
	}
	return ""
}
