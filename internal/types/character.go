// Package types holds the shared persisted data model.
package types

import "time"

// Character is the persisted profile, including the affective configuration
// the engine is constructed from and the last persisted affect snapshot.
type Character struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Personality     string `json:"personality"`
	Scenario        string `json:"scenario"`
	FirstMessage    string `json:"first_message"`
	ExampleDialogue string `json:"example_dialogue"`
	SystemPrompt    string `json:"system_prompt"`

	// Affective configuration consumed by the engine at construction.
	// Nullable so an explicit zero is distinguishable from an
	// unconfigured profile.
	BaselineValence   *float64 `json:"baseline_valence"`
	BaselineArousal   *float64 `json:"baseline_arousal"`
	BaselineDominance *float64 `json:"baseline_dominance"`
	EmotionalInertia  *float64 `json:"emotional_inertia"`

	// Persisted affect mirror, written back after each turn so state
	// survives process restarts. Activations is a JSON object keyed by
	// system name.
	Valence         float64   `json:"valence"`
	Arousal         float64   `json:"arousal"`
	Dominance       float64   `json:"dominance"`
	Activations     string    `json:"activations"`
	AffectUpdatedAt time.Time `json:"affect_updated_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AffectRecord is the serialized form of the engine's public state, written
// to a character row after each turn.
type AffectRecord struct {
	Valence     float64            `json:"valence"`
	Arousal     float64            `json:"arousal"`
	Dominance   float64            `json:"dominance"`
	Activations map[string]float64 `json:"activations"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
