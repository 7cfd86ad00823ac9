package affect

import "strings"

// Summary is a structured view of the emotional state for observability and
// prompt assembly.
type Summary struct {
	Emotion         string             `json:"emotion"`
	Confidence      float64            `json:"emotion_confidence"`
	Valence         float64            `json:"valence"`
	Arousal         float64            `json:"arousal"`
	Dominance       float64            `json:"dominance"`
	DominantSystem  string             `json:"dominant_system,omitempty"`
	SystemIntensity float64            `json:"system_intensity"`
	ActiveSystems   map[string]float64 `json:"active_systems,omitempty"`
}

// Summary returns the current emotional state as a structured record.
func (s *State) Summary() Summary {
	label, confidence := s.EmotionLabel()

	summary := Summary{
		Emotion:    label.String(),
		Confidence: confidence,
		Valence:    s.current.Valence,
		Arousal:    s.current.Arousal,
		Dominance:  s.current.Dominance,
	}

	if system, intensity, ok := s.DominantSystem(); ok {
		summary.DominantSystem = system.String()
		summary.SystemIntensity = intensity
	}

	active := make(map[string]float64)
	for _, system := range Systems() {
		if activation := s.activations[system]; activation > activeSystemThreshold {
			active[system.String()] = activation
		}
	}
	if len(active) > 0 {
		summary.ActiveSystems = active
	}
	return summary
}

// systemDescriptions are short behavioral hints per dominant system,
// phrased for inclusion in a generation prompt.
var systemDescriptions = [numSystems]string{
	Seeking:    "curious and explorative",
	Rage:       "frustrated or angered",
	Fear:       "cautious and wary",
	Lust:       "drawn to connection",
	Care:       "nurturing and protective",
	PanicGrief: "experiencing a sense of loss",
	Play:       "playful and lighthearted",
}

// descriptionIntensityGate is the dominant-system intensity below which the
// system hint is omitted from the modifier.
const descriptionIntensityGate = 0.3

// ResponseModifier assembles a short natural-language description of the
// emotional state. The text is a hint for an external response generator;
// it is meant to be consumed, not parsed.
func (s *State) ResponseModifier() string {
	var modifiers []string

	switch {
	case s.current.Valence > 0.5:
		modifiers = append(modifiers, "feeling positively inclined")
	case s.current.Valence < -0.5:
		modifiers = append(modifiers, "feeling negatively affected")
	}

	switch {
	case s.current.Arousal > 0.5:
		modifiers = append(modifiers, "in a heightened emotional state")
	case s.current.Arousal < -0.3:
		modifiers = append(modifiers, "in a calm, low-energy state")
	}

	switch {
	case s.current.Dominance > 0.5:
		modifiers = append(modifiers, "feeling confident and in control")
	case s.current.Dominance < -0.5:
		modifiers = append(modifiers, "feeling somewhat vulnerable")
	}

	if system, intensity, ok := s.DominantSystem(); ok && intensity > descriptionIntensityGate {
		modifiers = append(modifiers, systemDescriptions[system])
	}

	if label, confidence := s.EmotionLabel(); confidence > 0.5 {
		modifiers = append(modifiers, "experiencing "+label.String())
	}

	if len(modifiers) == 0 {
		return "[Emotional state: neutral]"
	}
	return "[Emotional state: " + strings.Join(modifiers, ", ") + "]"
}
