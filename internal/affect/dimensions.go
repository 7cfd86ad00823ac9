// Package affect implements a dimensional emotional engine for simulated
// characters: core affect on the valence/arousal/dominance circumplex,
// Panksepp's primary affective systems, lexical cognitive appraisal, and
// homeostatic decay toward a configurable baseline.
package affect

import "math"

// Dimensions is a point in core affect space. Each axis is bounded to
// [-1, 1]: valence runs unpleasant to pleasant, arousal deactivated to
// activated, dominance submissive to in-control. Dimensions is an immutable
// value; operations return new values and never mutate the receiver.
type Dimensions struct {
	Valence   float64 `json:"valence"`
	Arousal   float64 `json:"arousal"`
	Dominance float64 `json:"dominance"`
}

// NewDimensions returns a Dimensions with every axis clamped to [-1, 1].
func NewDimensions(valence, arousal, dominance float64) Dimensions {
	return Dimensions{
		Valence:   clampAxis(valence),
		Arousal:   clampAxis(arousal),
		Dominance: clampAxis(dominance),
	}
}

// Blend linearly interpolates toward other. A weight of 0 returns the
// receiver, 1 returns other.
func (d Dimensions) Blend(other Dimensions, weight float64) Dimensions {
	return NewDimensions(
		d.Valence*(1-weight)+other.Valence*weight,
		d.Arousal*(1-weight)+other.Arousal*weight,
		d.Dominance*(1-weight)+other.Dominance*weight,
	)
}

// DistanceTo returns the Euclidean distance to other in affect space.
func (d Dimensions) DistanceTo(other Dimensions) float64 {
	dv := d.Valence - other.Valence
	da := d.Arousal - other.Arousal
	dd := d.Dominance - other.Dominance
	return math.Sqrt(dv*dv + da*da + dd*dd)
}

// DecayToward moves each axis a rate fraction of the way toward baseline.
// For rate in (0, 1] the result never overshoots the baseline.
func (d Dimensions) DecayToward(baseline Dimensions, rate float64) Dimensions {
	return NewDimensions(
		d.Valence+(baseline.Valence-d.Valence)*rate,
		d.Arousal+(baseline.Arousal-d.Arousal)*rate,
		d.Dominance+(baseline.Dominance-d.Dominance)*rate,
	)
}

// clampAxis bounds a single affect axis to [-1, 1].
func clampAxis(v float64) float64 {
	switch {
	case v < -1:
		return -1
	case v > 1:
		return 1
	default:
		return v
	}
}

// clampUnit bounds an activation or rate to [0, 1].
func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
