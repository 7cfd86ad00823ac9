package affect

// System is one of Panksepp's seven primary affective systems, the
// evolutionarily conserved circuits that generate basic emotional states.
// Systems are int ordinals so activations can live in a fixed-size array.
type System int

const (
	Seeking System = iota // exploration, curiosity, wanting
	Rage                  // frustration when goals are blocked
	Fear                  // threat detection, anxiety
	Lust                  // attraction, desire
	Care                  // nurturing, empathy, attachment
	PanicGrief            // separation distress, loneliness
	Play                  // social joy, humor, bonding

	numSystems = int(Play) + 1
)

var systemNames = [numSystems]string{
	Seeking:    "seeking",
	Rage:       "rage",
	Fear:       "fear",
	Lust:       "lust",
	Care:       "care",
	PanicGrief: "panic_grief",
	Play:       "play",
}

// String returns the canonical lowercase system name.
func (s System) String() string {
	if s < 0 || int(s) >= numSystems {
		return "unknown"
	}
	return systemNames[s]
}

// SystemFromName resolves a canonical system name back to its System; the
// second return is false for unknown names.
func SystemFromName(name string) (System, bool) {
	for _, s := range Systems() {
		if systemNames[s] == name {
			return s, true
		}
	}
	return 0, false
}

// Systems returns all seven systems in ordinal order.
func Systems() [numSystems]System {
	return [numSystems]System{Seeking, Rage, Fear, Lust, Care, PanicGrief, Play}
}

// systemCoordinates maps each system to its characteristic point in affect
// space. Static configuration; never mutated at runtime.
var systemCoordinates = [numSystems]Dimensions{
	Seeking:    {Valence: 0.5, Arousal: 0.6, Dominance: 0.4},
	Rage:       {Valence: -0.7, Arousal: 0.9, Dominance: 0.6},
	Fear:       {Valence: -0.8, Arousal: 0.7, Dominance: -0.6},
	Lust:       {Valence: 0.6, Arousal: 0.7, Dominance: 0.2},
	Care:       {Valence: 0.7, Arousal: 0.2, Dominance: 0.3},
	PanicGrief: {Valence: -0.8, Arousal: 0.4, Dominance: -0.7},
	Play:       {Valence: 0.8, Arousal: 0.6, Dominance: 0.3},
}

// Coordinates returns the system's static point in affect space.
func (s System) Coordinates() Dimensions {
	if s < 0 || int(s) >= numSystems {
		return Dimensions{}
	}
	return systemCoordinates[s]
}

// isNegative reports whether the system belongs to the aversive group that
// activates faster and persists longer than the others.
func (s System) isNegative() bool {
	return s == Rage || s == Fear || s == PanicGrief
}

// activationDecayFactor scales the homeostatic decay rate for this system's
// activation: aversive systems shed activation slowest, nurturing systems
// fastest, Seeking and Lust in between.
func (s System) activationDecayFactor() float64 {
	switch {
	case s.isNegative():
		return negativeSystemDecayFactor
	case s == Play || s == Care:
		return nurturingSystemDecayFactor
	default:
		return neutralSystemDecayFactor
	}
}
