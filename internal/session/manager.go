// Package session owns the lifecycle and concurrency discipline of affect
// engine states: one state per character, serialized access, best-effort
// persistence of the public fields across restarts.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"

	"github.com/easeaico/affect-engine/internal/affect"
	"github.com/easeaico/affect-engine/internal/types"
)

// CharacterRepo defines the character fetch and affect write-back behavior
// the manager needs.
type CharacterRepo interface {
	GetByID(ctx context.Context, id int) (*types.Character, error)
	GetDefault(ctx context.Context) (*types.Character, error)
	UpdateAffect(ctx context.Context, id int, record types.AffectRecord) error
}

// Defaults are the affective settings for characters whose profile does not
// configure them.
type Defaults struct {
	BaselineValence   float64
	BaselineArousal   float64
	BaselineDominance float64
	Inertia           float64
}

// entry pairs a state with the mutex serializing access to it. The engine
// itself is not internally synchronized; this is the caller-side lock the
// engine contract requires.
type entry struct {
	mu sync.Mutex
	// id is the resolved character id, which differs from the lookup key
	// when the caller asked for the default character.
	id    int
	state *affect.State
}

// Manager holds one affect engine state per character and serializes all
// access to it. States are lazily restored from the repository.
type Manager struct {
	characters CharacterRepo
	defaults   Defaults

	mu      sync.Mutex
	entries map[int]*entry
}

// NewManager returns a Manager backed by the given character repository.
func NewManager(characters CharacterRepo, defaults Defaults) *Manager {
	return &Manager{
		characters: characters,
		defaults:   defaults,
		entries:    map[int]*entry{},
	}
}

// Turn is the engine output for one processed message.
type Turn struct {
	Appraisal affect.Appraisal
	Summary   affect.Summary
	Modifier  string
}

// Touch runs one full engine turn for an inbound message: decay for the
// time since the last turn, appraise the text, integrate the appraisal,
// then mirror the state to storage. Persistence failures are logged and do
// not fail the turn; the in-memory state stays authoritative.
func (m *Manager) Touch(ctx context.Context, characterID int, text string) (Turn, error) {
	e, err := m.entry(ctx, characterID)
	if err != nil {
		return Turn{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Decay()
	appraisal := e.state.Appraise(text)
	e.state.UpdateAffect(appraisal)

	m.persist(ctx, e.id, e.state)

	return Turn{
		Appraisal: appraisal,
		Summary:   e.state.Summary(),
		Modifier:  e.state.ResponseModifier(),
	}, nil
}

// Summary decays and reads the current state without appraising anything.
func (m *Manager) Summary(ctx context.Context, characterID int) (affect.Summary, error) {
	e, err := m.entry(ctx, characterID)
	if err != nil {
		return affect.Summary{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Decay()
	return e.state.Summary(), nil
}

// Modifier decays and returns the current response modifier text.
func (m *Manager) Modifier(ctx context.Context, characterID int) (string, error) {
	e, err := m.entry(ctx, characterID)
	if err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Decay()
	return e.state.ResponseModifier(), nil
}

// entry returns the state entry for a character, restoring or creating it
// on first use.
func (m *Manager) entry(ctx context.Context, characterID int) (*entry, error) {
	m.mu.Lock()
	if e, ok := m.entries[characterID]; ok {
		m.mu.Unlock()
		return e, nil
	}
	m.mu.Unlock()

	// Load outside the map lock; a racing caller may restore the same
	// character, in which case the first stored entry wins.
	state, resolvedID, err := m.restore(ctx, characterID)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.entries[characterID]; ok {
		return e, nil
	}
	e := &entry{id: resolvedID, state: state}
	m.entries[characterID] = e
	return e, nil
}

// restore builds a state from the persisted character profile, rehydrating
// the last affect snapshot when one exists.
func (m *Manager) restore(ctx context.Context, characterID int) (*affect.State, int, error) {
	if m.characters == nil {
		return nil, 0, fmt.Errorf("character repo is nil")
	}

	var character *types.Character
	var err error
	if characterID > 0 {
		character, err = m.characters.GetByID(ctx, characterID)
	} else {
		character, err = m.characters.GetDefault(ctx)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load character %d: %w", characterID, err)
	}
	if character == nil {
		return nil, 0, fmt.Errorf("character %d not found", characterID)
	}

	opts := []affect.Option{
		affect.WithBaseline(m.baseline(character)),
		affect.WithInertia(m.inertia(character)),
	}

	if !character.AffectUpdatedAt.IsZero() {
		activations := map[affect.System]float64{}
		if character.Activations != "" {
			var byName map[string]float64
			if err := json.Unmarshal([]byte(character.Activations), &byName); err != nil {
				slog.Warn("failed to decode persisted activations, starting at zero",
					"character_id", character.ID, "error", err.Error())
			} else {
				for name, activation := range byName {
					if system, ok := affect.SystemFromName(name); ok {
						activations[system] = activation
					}
				}
			}
		}
		opts = append(opts, affect.WithRestoredAffect(
			affect.Dimensions{
				Valence:   character.Valence,
				Arousal:   character.Arousal,
				Dominance: character.Dominance,
			},
			activations,
			character.AffectUpdatedAt,
		))
	}

	state, err := affect.NewState(strconv.Itoa(character.ID), opts...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build affect state: %w", err)
	}
	return state, character.ID, nil
}

// baseline resolves the character's configured resting affect, falling back
// to the manager defaults for each unset field. The columns are nullable so
// an explicit zero counts as configured.
func (m *Manager) baseline(character *types.Character) (float64, float64, float64) {
	v := m.defaults.BaselineValence
	if character.BaselineValence != nil {
		v = *character.BaselineValence
	}
	a := m.defaults.BaselineArousal
	if character.BaselineArousal != nil {
		a = *character.BaselineArousal
	}
	d := m.defaults.BaselineDominance
	if character.BaselineDominance != nil {
		d = *character.BaselineDominance
	}
	return v, a, d
}

func (m *Manager) inertia(character *types.Character) float64 {
	if character.EmotionalInertia != nil {
		return *character.EmotionalInertia
	}
	return m.defaults.Inertia
}

// persist mirrors the state's public fields back to the character row.
func (m *Manager) persist(ctx context.Context, characterID int, state *affect.State) {
	activations := make(map[string]float64, len(state.Activations()))
	for system, activation := range state.Activations() {
		activations[system.String()] = activation
	}

	record := types.AffectRecord{
		Valence:     state.Current().Valence,
		Arousal:     state.Current().Arousal,
		Dominance:   state.Current().Dominance,
		Activations: activations,
		UpdatedAt:   state.LastUpdate(),
	}
	if err := m.characters.UpdateAffect(ctx, characterID, record); err != nil {
		slog.Error("failed to persist affect snapshot", "character_id", characterID, "error", err.Error())
	}
}
