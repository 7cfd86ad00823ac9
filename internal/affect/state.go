package affect

import (
	"fmt"
	"strings"
	"time"
)

// Snapshot is one recorded point of affect history.
type Snapshot struct {
	Time        time.Time           `json:"time"`
	Affect      Dimensions          `json:"affect"`
	Activations [numSystems]float64 `json:"activations"`
}

// State is the mutable emotional state of one character. It owns the current
// and baseline core affect, the per-system activations, the last appraisal
// and a bounded history. State performs no I/O and is not internally
// synchronized: one instance belongs to one character session, and
// concurrent access must be serialized by the caller.
type State struct {
	characterID string

	current  Dimensions
	baseline Dimensions

	activations   [numSystems]float64
	lastAppraisal Appraisal

	// inertia is resistance to emotional change in [0, 1]; higher values
	// make both core affect and system activations shift more slowly.
	inertia float64

	lastUpdate time.Time
	history    []Snapshot

	patterns []Pattern
	nowFunc  func() time.Time
}

// Option configures a State at construction.
type Option func(*State)

// WithBaseline sets the resting-state affect the character decays toward.
func WithBaseline(valence, arousal, dominance float64) Option {
	return func(s *State) {
		s.baseline = Dimensions{Valence: valence, Arousal: arousal, Dominance: dominance}
		s.current = s.baseline
	}
}

// WithInertia sets the character's resistance to emotional change.
func WithInertia(inertia float64) Option {
	return func(s *State) { s.inertia = inertia }
}

// WithPatterns replaces the built-in appraisal pattern table.
func WithPatterns(patterns []Pattern) Option {
	return func(s *State) { s.patterns = patterns }
}

// WithRestoredAffect rehydrates a previously persisted state: the current
// affect, system activations and last-update time as serialized by the
// owning session. Values are clamped to their declared bounds.
func WithRestoredAffect(current Dimensions, activations map[System]float64, lastUpdate time.Time) Option {
	return func(s *State) {
		s.current = NewDimensions(current.Valence, current.Arousal, current.Dominance)
		for system, activation := range activations {
			if system >= 0 && int(system) < numSystems {
				s.activations[system] = clampUnit(activation)
			}
		}
		if !lastUpdate.IsZero() {
			s.lastUpdate = lastUpdate
		}
	}
}

// NewState creates the emotional state for one character, starting at a
// slightly positive baseline unless configured otherwise. Baselines outside
// [-1, 1] or inertia outside [0, 1] are caller bugs and rejected outright
// rather than clamped.
func NewState(characterID string, opts ...Option) (*State, error) {
	s := &State{
		characterID: characterID,
		baseline: Dimensions{
			Valence:   defaultBaselineValence,
			Arousal:   defaultBaselineArousal,
			Dominance: defaultBaselineDominance,
		},
		inertia:  defaultInertia,
		patterns: defaultPatterns,
		nowFunc:  time.Now,
	}
	s.current = s.baseline
	s.lastUpdate = s.nowFunc()

	for _, opt := range opts {
		opt(s)
	}

	for _, axis := range []float64{s.baseline.Valence, s.baseline.Arousal, s.baseline.Dominance} {
		if axis < -1 || axis > 1 {
			return nil, fmt.Errorf("baseline affect out of range [-1,1]: %+v", s.baseline)
		}
	}
	if s.inertia < 0 || s.inertia > 1 {
		return nil, fmt.Errorf("emotional inertia out of range [0,1]: %v", s.inertia)
	}
	return s, nil
}

// CharacterID returns the owning character's id.
func (s *State) CharacterID() string { return s.characterID }

// Current returns the current core affect.
func (s *State) Current() Dimensions { return s.current }

// Baseline returns the resting-state affect.
func (s *State) Baseline() Dimensions { return s.baseline }

// Inertia returns the configured emotional inertia.
func (s *State) Inertia() float64 { return s.inertia }

// LastAppraisal returns the most recent appraisal result.
func (s *State) LastAppraisal() Appraisal { return s.lastAppraisal }

// LastUpdate returns the time of the most recent decay bookkeeping.
func (s *State) LastUpdate() time.Time { return s.lastUpdate }

// Activation returns the activation level of one system in [0, 1].
func (s *State) Activation(system System) float64 {
	if system < 0 || int(system) >= numSystems {
		return 0
	}
	return s.activations[system]
}

// Activations returns a copy of all system activations keyed by system.
func (s *State) Activations() map[System]float64 {
	out := make(map[System]float64, numSystems)
	for _, system := range Systems() {
		out[system] = s.activations[system]
	}
	return out
}

// History returns a copy of the recorded affect history, oldest first.
func (s *State) History() []Snapshot {
	out := make([]Snapshot, len(s.history))
	copy(out, s.history)
	return out
}

// Appraise evaluates a message against the pattern table, accumulating
// weighted effects into a new appraisal and stimulating triggered systems.
// Negative patterns weigh roughly twice as much as positive ones, and
// aversive systems activate faster. Text matching no pattern yields a zero
// appraisal; that is a valid outcome, not an error.
func (s *State) Appraise(text string) Appraisal {
	lowered := strings.ToLower(text)

	var appraisal Appraisal
	for _, pattern := range s.patterns {
		hits := 0
		for _, keyword := range pattern.Keywords {
			if strings.Contains(lowered, keyword) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}

		weight := float64(hits) * matchWeightStep
		if weight > 1 {
			weight = 1
		}
		if pattern.isNegative() {
			weight *= negativityAmplification
		}

		for field, effect := range pattern.Effects {
			appraisal.add(field, effect*weight)
		}

		if pattern.HasTrigger {
			intensity := weight * systemActivationWeight
			if pattern.Triggers.isNegative() {
				intensity *= negativeSystemBoost
			}
			s.activateSystem(pattern.Triggers, intensity)
		}
	}

	appraisal = appraisal.clamp()
	s.lastAppraisal = appraisal
	return appraisal
}

// activateSystem moves one system's activation toward the stimulus
// intensity. Inertia gives activations momentum: repeated small stimuli
// accumulate instead of resetting on every call.
func (s *State) activateSystem(system System, intensity float64) {
	if system < 0 || int(system) >= numSystems {
		return
	}
	current := s.activations[system]
	s.activations[system] = clampUnit(current + (intensity-current)*(1-s.inertia))
}

// UpdateAffect integrates an appraisal into the current core affect. The
// appraisal target is blended with the influence of active systems, then
// applied through an asymmetric transition: a negative state resists being
// pulled positive far more than a positive state resists sliding negative.
func (s *State) UpdateAffect(appraisal Appraisal) {
	target := appraisal.ToDimensions()

	var influence Dimensions
	var totalActivation float64
	for _, system := range Systems() {
		activation := s.activations[system]
		if activation <= activeSystemThreshold {
			continue
		}
		coords := system.Coordinates()
		influence.Valence += coords.Valence * activation
		influence.Arousal += coords.Arousal * activation
		influence.Dominance += coords.Dominance * activation
		totalActivation += activation
	}
	if totalActivation > 0 {
		influence.Valence /= totalActivation
		influence.Arousal /= totalActivation
		influence.Dominance /= totalActivation
	}

	combined := target.Blend(influence, systemInfluenceWeight)

	resistance := 1 - s.inertia
	switch {
	case s.current.Valence < -contaminationValenceGate && combined.Valence > 0:
		// Negative mood contaminates: a positive pull moves the state much
		// less than the same pull would from neutral.
		resistance *= positiveShiftResistance
	case s.current.Valence > contaminationValenceGate && combined.Valence < 0:
		resistance *= negativeShiftEase
	}
	if resistance > 1 {
		resistance = 1
	}

	s.current = s.current.Blend(combined, resistance)
	s.recordSnapshot()
}

// Decay applies homeostatic decay using wall-clock time elapsed since the
// last update.
func (s *State) Decay() {
	now := s.nowFunc()
	s.decay(now.Sub(s.lastUpdate), now)
}

// DecayFor applies homeostatic decay for an explicit elapsed duration,
// for callers that manage their own clock.
func (s *State) DecayFor(elapsed time.Duration) {
	s.decay(elapsed, s.nowFunc())
}

// decay moves core affect toward the baseline and bleeds system
// activations. Negative states decay slower than positive ones, and
// high-arousal negative states slower still; aversive system activations
// outlast nurturing ones.
func (s *State) decay(elapsed time.Duration, now time.Time) {
	defer func() { s.lastUpdate = now }()

	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return
	}

	baseRate := baseDecayPerMinute * (seconds / 60)

	var rate float64
	switch {
	case s.current.Valence < -decayValenceGate:
		arousalFactor := 1.0
		if s.current.Arousal > 0 {
			arousalFactor += s.current.Arousal * arousalPersistence
		}
		rate = baseRate * negativeDecayFactor / arousalFactor
	case s.current.Valence > decayValenceGate:
		rate = baseRate * positiveDecayFactor
	default:
		rate = baseRate
	}
	if rate > 1 {
		// Long gaps collapse straight to baseline; never overshoot.
		rate = 1
	}

	s.current = s.current.DecayToward(s.baseline, rate)

	for _, system := range Systems() {
		s.activations[system] = clampUnit(s.activations[system] * (1 - rate*system.activationDecayFactor()))
	}
}

// EmotionLabel returns the discrete emotion nearest to the current affect
// and a confidence in [0, 1].
func (s *State) EmotionLabel() (Label, float64) {
	return ClosestLabel(s.current)
}

// DominantSystem returns the most active system and its intensity. The
// third return is false when no system is meaningfully active.
func (s *State) DominantSystem() (System, float64, bool) {
	dominant := Seeking
	max := 0.0
	for _, system := range Systems() {
		if s.activations[system] > max {
			max = s.activations[system]
			dominant = system
		}
	}
	if max < activeSystemThreshold {
		return 0, 0, false
	}
	return dominant, max, true
}

// recordSnapshot appends the current state to history, trimming to the most
// recent maxHistory entries.
func (s *State) recordSnapshot() {
	s.history = append(s.history, Snapshot{
		Time:        s.nowFunc(),
		Affect:      s.current,
		Activations: s.activations,
	})
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
}
