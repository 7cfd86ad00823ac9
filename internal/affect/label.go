package affect

import "math"

// Label is a discrete emotion category constructed from core affect. Labels
// are conceptual regions of affect space, not mechanisms: the engine reports
// the nearest one for human-readable output.
type Label int

const (
	// High arousal, positive valence.
	Excitement Label = iota
	Joy
	Enthusiasm
	Delight

	// Low arousal, positive valence.
	Contentment
	Serenity
	Calm
	Peace

	// High arousal, negative valence.
	Anger
	Fearful
	Anxiety
	Frustration
	Panic

	// Low arousal, negative valence.
	Sadness
	Melancholy
	Grief
	Despair
	Boredom

	// Social emotions.
	Love
	Compassion
	Pride
	Shame
	Guilt
	Contempt
	Disgust
	Envy
	Jealousy
	Gratitude
	Awe

	// Cognitive emotions.
	Curiosity
	Interest
	Surprise
	Confusion
	Determination
	Hope

	Neutral

	numLabels = int(Neutral) + 1
)

var labelNames = [numLabels]string{
	Excitement:    "excitement",
	Joy:           "joy",
	Enthusiasm:    "enthusiasm",
	Delight:       "delight",
	Contentment:   "contentment",
	Serenity:      "serenity",
	Calm:          "calm",
	Peace:         "peace",
	Anger:         "anger",
	Fearful:       "fear",
	Anxiety:       "anxiety",
	Frustration:   "frustration",
	Panic:         "panic",
	Sadness:       "sadness",
	Melancholy:    "melancholy",
	Grief:         "grief",
	Despair:       "despair",
	Boredom:       "boredom",
	Love:          "love",
	Compassion:    "compassion",
	Pride:         "pride",
	Shame:         "shame",
	Guilt:         "guilt",
	Contempt:      "contempt",
	Disgust:       "disgust",
	Envy:          "envy",
	Jealousy:      "jealousy",
	Gratitude:     "gratitude",
	Awe:           "awe",
	Curiosity:     "curiosity",
	Interest:      "interest",
	Surprise:      "surprise",
	Confusion:     "confusion",
	Determination: "determination",
	Hope:          "hope",
	Neutral:       "neutral",
}

// String returns the canonical lowercase label name.
func (l Label) String() string {
	if l < 0 || int(l) >= numLabels {
		return "unknown"
	}
	return labelNames[l]
}

// labelCoordinates maps every label to its point in affect space, in the
// fixed order the nearest-label scan iterates. A slice keeps iteration
// deterministic so distance ties break toward the earlier entry.
var labelCoordinates = [numLabels]Dimensions{
	Excitement:    {Valence: 0.7, Arousal: 0.8, Dominance: 0.5},
	Joy:           {Valence: 0.8, Arousal: 0.6, Dominance: 0.4},
	Enthusiasm:    {Valence: 0.7, Arousal: 0.7, Dominance: 0.6},
	Delight:       {Valence: 0.8, Arousal: 0.5, Dominance: 0.3},
	Contentment:   {Valence: 0.6, Arousal: -0.2, Dominance: 0.3},
	Serenity:      {Valence: 0.7, Arousal: -0.4, Dominance: 0.4},
	Calm:          {Valence: 0.4, Arousal: -0.5, Dominance: 0.3},
	Peace:         {Valence: 0.6, Arousal: -0.6, Dominance: 0.5},
	Anger:         {Valence: -0.6, Arousal: 0.8, Dominance: 0.6},
	Fearful:       {Valence: -0.8, Arousal: 0.7, Dominance: -0.6},
	Anxiety:       {Valence: -0.5, Arousal: 0.6, Dominance: -0.4},
	Frustration:   {Valence: -0.5, Arousal: 0.6, Dominance: -0.2},
	Panic:         {Valence: -0.9, Arousal: 0.9, Dominance: -0.8},
	Sadness:       {Valence: -0.6, Arousal: -0.3, Dominance: -0.3},
	Melancholy:    {Valence: -0.4, Arousal: -0.4, Dominance: -0.2},
	Grief:         {Valence: -0.8, Arousal: 0.2, Dominance: -0.6},
	Despair:       {Valence: -0.9, Arousal: -0.2, Dominance: -0.8},
	Boredom:       {Valence: -0.3, Arousal: -0.6, Dominance: -0.1},
	Love:          {Valence: 0.9, Arousal: 0.4, Dominance: 0.2},
	Compassion:    {Valence: 0.6, Arousal: 0.2, Dominance: 0.4},
	Pride:         {Valence: 0.7, Arousal: 0.4, Dominance: 0.7},
	Shame:         {Valence: -0.7, Arousal: 0.4, Dominance: -0.6},
	Guilt:         {Valence: -0.6, Arousal: 0.3, Dominance: -0.4},
	Contempt:      {Valence: -0.5, Arousal: 0.2, Dominance: 0.6},
	Disgust:       {Valence: -0.7, Arousal: 0.3, Dominance: 0.3},
	Envy:          {Valence: -0.5, Arousal: 0.4, Dominance: -0.3},
	Jealousy:      {Valence: -0.6, Arousal: 0.6, Dominance: -0.2},
	Gratitude:     {Valence: 0.8, Arousal: 0.3, Dominance: -0.1},
	Awe:           {Valence: 0.6, Arousal: 0.5, Dominance: -0.3},
	Curiosity:     {Valence: 0.4, Arousal: 0.5, Dominance: 0.3},
	Interest:      {Valence: 0.3, Arousal: 0.4, Dominance: 0.2},
	Surprise:      {Valence: 0.1, Arousal: 0.7, Dominance: -0.1},
	Confusion:     {Valence: -0.2, Arousal: 0.4, Dominance: -0.3},
	Determination: {Valence: 0.3, Arousal: 0.6, Dominance: 0.7},
	Hope:          {Valence: 0.6, Arousal: 0.3, Dominance: 0.2},
	Neutral:       {Valence: 0.0, Arousal: 0.0, Dominance: 0.0},
}

// Coordinates returns the label's static point in affect space.
func (l Label) Coordinates() Dimensions {
	if l < 0 || int(l) >= numLabels {
		return Dimensions{}
	}
	return labelCoordinates[l]
}

// ClosestLabel scans the label table for the point nearest to d and returns
// the label plus a confidence in [0, 1] derived from the distance. Ties
// break toward the earlier table entry, so the result is deterministic.
func ClosestLabel(d Dimensions) (Label, float64) {
	closest := Neutral
	minDistance := math.Inf(1)
	for l := 0; l < numLabels; l++ {
		if distance := d.DistanceTo(labelCoordinates[l]); distance < minDistance {
			minDistance = distance
			closest = Label(l)
		}
	}
	confidence := 1 - minDistance/2
	if confidence < 0 {
		confidence = 0
	}
	return closest, confidence
}
