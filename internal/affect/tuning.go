package affect

// Tuning constants for the engine's asymmetric dynamics. The magnitudes are
// model parameters, not structural requirements; the directional asymmetries
// they encode (negativity bias, emotional contamination, hedonic adaptation)
// are part of the engine's contract.
const (
	// matchWeightStep converts a pattern's keyword hit count into an effect
	// weight: weight = min(1, hits * matchWeightStep).
	matchWeightStep = 0.3

	// negativityAmplification scales the effect weight of patterns whose
	// pleasantness or goal conduciveness is strongly negative. Bad is
	// stronger than good.
	negativityAmplification = 1.8

	// negativePatternThreshold is the effect level below which a pattern
	// counts as negative for amplification purposes.
	negativePatternThreshold = -0.3

	// systemActivationWeight converts a pattern's effect weight into the
	// stimulus intensity fed to its triggered system.
	systemActivationWeight = 0.5

	// negativeSystemBoost further scales stimulus intensity for Rage, Fear
	// and PanicGrief; aversive systems activate faster.
	negativeSystemBoost = 1.5

	// systemInfluenceWeight blends the activation-weighted system average
	// into the appraisal target during affect integration.
	systemInfluenceWeight = 0.4

	// activeSystemThreshold is the minimum activation for a system to
	// contribute influence or count as dominant.
	activeSystemThreshold = 0.1

	// positiveShiftResistance scales transition resistance when a negative
	// state is pulled positive: it is much harder to improve a bad mood.
	positiveShiftResistance = 0.4

	// negativeShiftEase scales transition resistance when a positive state
	// is pulled negative: sliding down is easier than climbing up.
	negativeShiftEase = 1.3

	// contaminationValenceGate is the |valence| beyond which the transition
	// asymmetry engages.
	contaminationValenceGate = 0.3

	// baseDecayPerMinute is the homeostatic decay rate for one minute of
	// elapsed time in the neutral valence band.
	baseDecayPerMinute = 0.05

	// negativeDecayFactor slows decay of negative states (they stick);
	// positiveDecayFactor speeds decay of positive states (hedonic
	// adaptation). decayValenceGate bounds the neutral band between them.
	negativeDecayFactor = 0.4
	positiveDecayFactor = 1.5
	decayValenceGate    = 0.2

	// arousalPersistence slows decay of high-arousal negative states
	// further: fear and anger outlast quiet sadness.
	arousalPersistence = 0.5

	// Per-group multipliers applied to the decay rate when shedding system
	// activations.
	negativeSystemDecayFactor  = 0.5
	nurturingSystemDecayFactor = 1.0
	neutralSystemDecayFactor   = 0.8

	// defaultInertia is the default resistance to emotional change.
	defaultInertia = 0.25

	// Slightly positive resting state: characters are open to interaction.
	defaultBaselineValence   = 0.15
	defaultBaselineArousal   = 0.1
	defaultBaselineDominance = 0.0

	// maxHistory bounds the affect history ring.
	maxHistory = 50
)
