package analysis

// These types describe the JSON the prompts ask for. They drive schema
// generation for providers that support structured output; model responses
// are not decoded into them.

// CBTReport is the response shape requested by the CBT prompt.
type CBTReport struct {
	Summary              string           `json:"summary"`
	ThoughtPatterns      []string         `json:"thought_patterns"`
	MoodTrends           MoodTrends       `json:"mood_trends"`
	BehavioralPatterns   []string         `json:"behavioral_patterns"`
	PositiveObservations []string         `json:"positive_observations"`
	Recommendations      []Recommendation `json:"recommendations"`
	RiskLevel            string           `json:"risk_level" jsonschema:"enum=low,enum=moderate,enum=high"`
	FollowUpSuggested    bool             `json:"follow_up_suggested"`
}

type MoodTrends struct {
	OverallTrend   string   `json:"overall_trend" jsonschema:"enum=improving,enum=declining,enum=stable"`
	CommonEmotions []string `json:"common_emotions"`
	Triggers       []string `json:"triggers"`
}

// MBTReport is the response shape requested by the MBT prompt.
type MBTReport struct {
	Summary                string             `json:"summary"`
	SelfReflection         SelfReflection     `json:"self_reflection"`
	EmotionalAwareness     EmotionalAwareness `json:"emotional_awareness"`
	InterpersonalPatterns  []string           `json:"interpersonal_patterns"`
	AttachmentObservations []string           `json:"attachment_observations"`
	Recommendations        []Recommendation   `json:"recommendations"`
	RiskLevel              string             `json:"risk_level" jsonschema:"enum=low,enum=moderate,enum=high"`
	FollowUpSuggested      bool               `json:"follow_up_suggested"`
}

type SelfReflection struct {
	CapacityLevel string   `json:"capacity_level" jsonschema:"enum=developing,enum=adequate,enum=strong"`
	Observations  []string `json:"observations"`
}

type EmotionalAwareness struct {
	IdentifiedEmotions          []string `json:"identified_emotions"`
	EmotionalVocabularyRichness string   `json:"emotional_vocabulary_richness" jsonschema:"enum=limited,enum=moderate,enum=rich"`
	EmotionalRegulation         string   `json:"emotional_regulation" jsonschema:"enum=struggling,enum=developing,enum=stable"`
}

// Recommendation is one suggested exercise.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Exercise    string `json:"exercise"`
}
