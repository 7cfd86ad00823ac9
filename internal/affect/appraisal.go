package affect

// Appraisal is the cognitive evaluation of a stimulus along Scherer's
// component-process dimensions. Every field is bounded to [-1, 1];
// GoalRelevance is conceptually [0, 1] but shares the same clamp.
type Appraisal struct {
	// Relevance check.
	Novelty       float64 `json:"novelty"`
	Pleasantness  float64 `json:"pleasantness"`
	GoalRelevance float64 `json:"goal_relevance"`

	// Implication check.
	GoalConduciveness float64 `json:"goal_conduciveness"`
	Urgency           float64 `json:"urgency"`

	// Coping potential check.
	Control    float64 `json:"control"`
	Power      float64 `json:"power"`
	Adjustment float64 `json:"adjustment"`

	// Normative significance.
	InternalStandards float64 `json:"internal_standards"`
	ExternalStandards float64 `json:"external_standards"`
}

// ToDimensions derives the target core affect from the appraisal:
// valence from pleasantness and goal conduciveness, arousal from novelty,
// urgency and goal relevance, dominance from control and power.
func (a Appraisal) ToDimensions() Dimensions {
	return NewDimensions(
		(a.Pleasantness+a.GoalConduciveness)/2,
		(a.Novelty+a.Urgency+a.GoalRelevance)/3,
		(a.Control+a.Power)/2,
	)
}

// IsZero reports whether no appraisal dimension was touched, which is the
// correct outcome for text matching no pattern.
func (a Appraisal) IsZero() bool {
	return a == Appraisal{}
}

// clamp bounds every field to [-1, 1].
func (a Appraisal) clamp() Appraisal {
	return Appraisal{
		Novelty:           clampAxis(a.Novelty),
		Pleasantness:      clampAxis(a.Pleasantness),
		GoalRelevance:     clampAxis(a.GoalRelevance),
		GoalConduciveness: clampAxis(a.GoalConduciveness),
		Urgency:           clampAxis(a.Urgency),
		Control:           clampAxis(a.Control),
		Power:             clampAxis(a.Power),
		Adjustment:        clampAxis(a.Adjustment),
		InternalStandards: clampAxis(a.InternalStandards),
		ExternalStandards: clampAxis(a.ExternalStandards),
	}
}

// appraisalField identifies one Appraisal dimension inside a pattern's
// effect map.
type appraisalField int

const (
	fieldNovelty appraisalField = iota
	fieldPleasantness
	fieldGoalRelevance
	fieldGoalConduciveness
	fieldUrgency
	fieldControl
	fieldPower
	fieldAdjustment
	fieldInternalStandards
	fieldExternalStandards
)

// add accumulates delta onto one field without clamping; the caller clamps
// once after all patterns have been applied.
func (a *Appraisal) add(field appraisalField, delta float64) {
	switch field {
	case fieldNovelty:
		a.Novelty += delta
	case fieldPleasantness:
		a.Pleasantness += delta
	case fieldGoalRelevance:
		a.GoalRelevance += delta
	case fieldGoalConduciveness:
		a.GoalConduciveness += delta
	case fieldUrgency:
		a.Urgency += delta
	case fieldControl:
		a.Control += delta
	case fieldPower:
		a.Power += delta
	case fieldAdjustment:
		a.Adjustment += delta
	case fieldInternalStandards:
		a.InternalStandards += delta
	case fieldExternalStandards:
		a.ExternalStandards += delta
	}
}
