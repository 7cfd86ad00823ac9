package affect

// Pattern detects appraisal-relevant content in text. A keyword hit adds the
// pattern's effects to the running appraisal, weighted by hit count, and
// optionally stimulates one affective system. The table is static, read-only
// configuration shared by every State.
type Pattern struct {
	Keywords []string
	Effects  map[appraisalField]float64
	Triggers System
	// HasTrigger distinguishes "triggers Seeking" from "triggers nothing",
	// since Seeking is the zero System.
	HasTrigger bool
}

// isNegative reports whether the pattern's effects qualify for negativity
// amplification: a strongly unpleasant or goal-obstructive stimulus.
func (p Pattern) isNegative() bool {
	return p.Effects[fieldPleasantness] < negativePatternThreshold ||
		p.Effects[fieldGoalConduciveness] < negativePatternThreshold
}

// defaultPatterns is the built-in lexical appraisal table. Keyword lists
// carry English plus Italian variants for bilingual characters.
var defaultPatterns = []Pattern{
	// Seeking: curiosity, exploration.
	{
		Keywords: []string{
			"tell me", "what", "why", "how", "explain", "curious", "wonder",
			"interesting", "discover", "explore", "learn", "understand",
			"dimmi", "cosa", "perché", "come", "spiega", "curioso",
		},
		Effects: map[appraisalField]float64{
			fieldNovelty:       0.5,
			fieldGoalRelevance: 0.6,
			fieldPleasantness:  0.3,
		},
		Triggers:   Seeking,
		HasTrigger: true,
	},
	// Rage: frustration, blocked goals.
	{
		Keywords: []string{
			"angry", "furious", "hate", "unfair", "frustrating", "annoying",
			"enemy", "betrayed", "cheated", "stolen", "injustice",
			"arrabbiato", "odio", "ingiusto", "tradito", "nemico",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      -0.7,
			fieldGoalConduciveness: -0.8,
			fieldUrgency:           0.6,
			fieldPower:             0.4,
		},
		Triggers:   Rage,
		HasTrigger: true,
	},
	// Fear: threat, danger.
	{
		Keywords: []string{
			"danger", "threat", "afraid", "scared", "terrified", "attack",
			"enemy", "death", "kill", "destroy", "monster", "dark",
			"pericolo", "paura", "minaccia", "morte", "attacco",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      -0.8,
			fieldUrgency:           0.8,
			fieldControl:           -0.5,
			fieldGoalConduciveness: -0.6,
		},
		Triggers:   Fear,
		HasTrigger: true,
	},
	// Care: nurturing, attachment.
	{
		Keywords: []string{
			"help", "protect", "care", "love", "friend", "family", "child",
			"safe", "comfort", "support", "together", "trust",
			"aiuto", "proteggere", "amore", "amico", "famiglia",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      0.7,
			fieldGoalRelevance:     0.6,
			fieldInternalStandards: 0.5,
		},
		Triggers:   Care,
		HasTrigger: true,
	},
	// PanicGrief: loss, separation.
	{
		Keywords: []string{
			"lost", "gone", "died", "death", "miss", "alone", "lonely",
			"abandoned", "left", "goodbye", "never", "farewell",
			"perso", "morto", "solo", "addio", "abbandonato",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      -0.8,
			fieldGoalConduciveness: -0.7,
			fieldControl:           -0.6,
			fieldAdjustment:        -0.5,
		},
		Triggers:   PanicGrief,
		HasTrigger: true,
	},
	// Play: joy, humor.
	{
		Keywords: []string{
			"fun", "play", "game", "joke", "laugh", "happy", "joy", "party",
			"celebrate", "dance", "sing", "wonderful", "amazing", "great",
			"fantastic", "awesome", "brilliant", "lovely", "beautiful",
			"divertente", "gioco", "ridere", "felice", "festa", "bello",
			"fantastico", "meraviglioso", "stupendo", "magnifico",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      0.9,
			fieldNovelty:           0.4,
			fieldControl:           0.5,
			fieldGoalConduciveness: 0.6,
		},
		Triggers:   Play,
		HasTrigger: true,
	},
	// Gratitude.
	{
		Keywords: []string{
			"thank", "grateful", "appreciate", "thanks", "blessing",
			"grazie", "grato", "apprezzo", "benedizione", "gentile",
			"kind", "generous", "thoughtful",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      0.8,
			fieldExternalStandards: 0.6,
			fieldGoalConduciveness: 0.5,
			fieldInternalStandards: 0.4,
		},
		Triggers:   Care,
		HasTrigger: true,
	},
	// Hope.
	{
		Keywords: []string{
			"hope", "maybe", "possible", "future", "better", "tomorrow",
			"chance", "opportunity", "dream", "wish",
			"speranza", "forse", "futuro", "domani", "sogno",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      0.6,
			fieldGoalConduciveness: 0.5,
			fieldAdjustment:        0.5,
		},
		Triggers:   Seeking,
		HasTrigger: true,
	},
	// Shame and guilt; no system trigger.
	{
		Keywords: []string{
			"sorry", "apologize", "fault", "mistake", "wrong", "failed",
			"ashamed", "embarrassed", "regret",
			"scusa", "errore", "sbagliato", "vergogna", "colpa",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      -0.5,
			fieldInternalStandards: -0.6,
			fieldExternalStandards: -0.5,
			fieldControl:           -0.3,
		},
	},
	// Pride.
	{
		Keywords: []string{
			"proud", "accomplished", "achieved", "success", "won", "victory",
			"best", "excellent", "mastered", "hero", "well done", "bravo",
			"orgoglioso", "successo", "vittoria", "eroe", "campione",
			"complimenti", "bravissimo",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      0.8,
			fieldInternalStandards: 0.8,
			fieldPower:             0.7,
			fieldControl:           0.6,
		},
		Triggers:   Play,
		HasTrigger: true,
	},
	// Surprise.
	{
		Keywords: []string{
			"surprise", "unexpected", "sudden", "shocking", "unbelievable",
			"wow", "amazing", "incredible", "really",
			"sorpresa", "improvviso", "incredibile", "davvero",
		},
		Effects: map[appraisalField]float64{
			fieldNovelty: 0.9,
			fieldUrgency: 0.4,
		},
		Triggers:   Seeking,
		HasTrigger: true,
	},
	// Friendly greetings.
	{
		Keywords: []string{
			"hello", "hi", "hey", "good morning", "good evening", "greetings",
			"welcome", "nice to meet", "pleasure", "good to see",
			"ciao", "salve", "buongiorno", "buonasera", "piacere",
			"benvenuto", "come stai", "come va",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      0.6,
			fieldExternalStandards: 0.4,
			fieldGoalConduciveness: 0.3,
		},
		Triggers:   Play,
		HasTrigger: true,
	},
	// Compliments.
	{
		Keywords: []string{
			"you're great", "you're amazing", "impressive", "admire",
			"respect", "wise", "smart", "clever", "talented", "skilled",
			"powerful", "strong", "beautiful", "magnificent", "noble",
			"sei grande", "sei fantastico", "ammiro", "rispetto",
			"saggio", "intelligente", "bravo", "forte", "potente",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      0.85,
			fieldInternalStandards: 0.7,
			fieldPower:             0.5,
			fieldExternalStandards: 0.6,
		},
		Triggers:   Play,
		HasTrigger: true,
	},
	// Agreement.
	{
		Keywords: []string{
			"yes", "agree", "right", "true", "correct", "exactly",
			"indeed", "absolutely", "of course", "certainly",
			"sì", "giusto", "vero", "esatto", "certo", "certamente",
			"proprio così", "hai ragione", "concordo",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      0.5,
			fieldGoalConduciveness: 0.4,
			fieldExternalStandards: 0.3,
		},
		Triggers:   Care,
		HasTrigger: true,
	},
	// Positive interest.
	{
		Keywords: []string{
			"tell me more", "fascinating", "intriguing", "love to hear",
			"want to know", "sounds good", "sounds great", "exciting",
			"raccontami", "affascinante", "interessante", "vorrei sapere",
			"mi piace", "che bello", "entusiasmante",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      0.6,
			fieldNovelty:           0.5,
			fieldGoalRelevance:     0.5,
			fieldGoalConduciveness: 0.4,
		},
		Triggers:   Seeking,
		HasTrigger: true,
	},
	// Adventure.
	{
		Keywords: []string{
			"adventure", "quest", "journey", "mission", "let's go",
			"ready", "brave", "courage", "together", "allies",
			"avventura", "missione", "viaggio", "andiamo", "pronti",
			"coraggio", "insieme", "alleati", "compagni",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:      0.7,
			fieldGoalRelevance:     0.7,
			fieldGoalConduciveness: 0.6,
			fieldPower:             0.5,
		},
		Triggers:   Seeking,
		HasTrigger: true,
	},
	// Peace and tranquility.
	{
		Keywords: []string{
			"peace", "calm", "quiet", "rest", "relax", "serene", "tranquil",
			"pace", "calma", "tranquillo", "riposo", "sereno",
			"rilassante", "quiete", "armonia",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness: 0.6,
			fieldControl:      0.5,
			fieldAdjustment:   0.5,
			fieldUrgency:      -0.4,
		},
		Triggers:   Care,
		HasTrigger: true,
	},
	// Narrative engagement.
	{
		Keywords: []string{
			"story", "tale", "legend", "once upon", "long ago", "tell",
			"storia", "racconto", "leggenda", "c'era una volta",
			"narra", "racconta",
		},
		Effects: map[appraisalField]float64{
			fieldPleasantness:  0.5,
			fieldNovelty:       0.6,
			fieldGoalRelevance: 0.4,
		},
		Triggers:   Seeking,
		HasTrigger: true,
	},
}
