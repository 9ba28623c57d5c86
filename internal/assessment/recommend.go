package assessment

import "mindpulse/internal/model"

// MaxRecommendations caps the list returned by Recommend
const MaxRecommendations = 3

// Recommendation thresholds. These differ from the branch thresholds.
const (
	HighStressThreshold        = 70
	LowMoodThreshold           = 40
	HighCognitiveLoadThreshold = 60
)

// Designated crisis answers
const (
	SelfHarmQuestionID = "q_mood_harm"
	SelfHarmOptionID   = "yes"
	SafetyQuestionID   = "q_stress_safe"
	UnsafeOptionID     = "no"
)

type crisisRule struct {
	questionID string
	optionID   string
}

var crisisRules = []crisisRule{
	{questionID: SelfHarmQuestionID, optionID: SelfHarmOptionID},
	{questionID: SafetyQuestionID, optionID: UnsafeOptionID},
}

// Recommendation catalog
var (
	CrisisHelpline = model.Recommendation{
		ID:          "crisis-helpline",
		Title:       "Emergency Support",
		Description: "You are not alone. Connect with a crisis counselor now.",
		Kind:        model.KindCrisis,
		Priority:    model.PriorityHigh,
		Route:       "/therapy/crisis",
		Color:       "bg-red-600",
	}
	Breathing478 = model.Recommendation{
		ID:          "breathing-478",
		Title:       "4-7-8 Breathing",
		Description: "Immediate physiological reset for stress.",
		Kind:        model.KindAction,
		Priority:    model.PriorityHigh,
		Route:       "/games/breath",
		Color:       "bg-blue-500",
	}
	RainSounds = model.Recommendation{
		ID:          "sound-rain",
		Title:       "Rain Sounds",
		Description: "Calm your environment.",
		Kind:        model.KindResource,
		Priority:    model.PriorityMedium,
		Route:       "/therapy",
		Color:       "bg-cyan-500",
	}
	VentJournal = model.Recommendation{
		ID:          "journal-vent",
		Title:       "Vent Journal",
		Description: "Release negative thoughts safely.",
		Kind:        model.KindAction,
		Priority:    model.PriorityHigh,
		Route:       "/journal",
		Color:       "bg-indigo-500",
	}
	BubblePop = model.Recommendation{
		ID:          "game-bubble",
		Title:       "Bubble Pop",
		Description: "Low-effort satisfaction.",
		Kind:        model.KindAction,
		Priority:    model.PriorityMedium,
		Route:       "/games/bubble",
		Color:       "bg-pink-500",
	}
	FocusFlow = model.Recommendation{
		ID:          "game-focus",
		Title:       "Focus Flow",
		Description: "Ground your attention.",
		Kind:        model.KindAction,
		Priority:    model.PriorityHigh,
		Route:       "/games/focus",
		Color:       "bg-amber-500",
	}
	ShapeMatch = model.Recommendation{
		ID:          "challenge-shape",
		Title:       "Shape Match",
		Description: "Keep your mind sharp.",
		Kind:        model.KindAction,
		Priority:    model.PriorityMedium,
		Route:       "/games/shape-match",
		Color:       "bg-emerald-500",
	}
	CommunityCheckIn = model.Recommendation{
		ID:          "community",
		Title:       "Community Check-in",
		Description: "See how others are doing.",
		Kind:        model.KindResource,
		Priority:    model.PriorityLow,
		Route:       "/community",
		Color:       "bg-purple-500",
	}
)

// IsCrisis reports whether answers contain a designated crisis answer
func IsCrisis(answers map[string]string) bool {
	for _, rule := range crisisRules {
		if answers[rule.questionID] == rule.optionID {
			return true
		}
	}
	return false
}

// Recommend derives at most MaxRecommendations suggestions from the final
// state and answers. A crisis answer short-circuits to the helpline alone.
// Blocks append in a fixed order and truncation keeps that order.
func Recommend(state model.EmotionalState, answers map[string]string) []model.Recommendation {
	if IsCrisis(answers) {
		return []model.Recommendation{CrisisHelpline}
	}

	var recs []model.Recommendation
	if state.Stress >= HighStressThreshold {
		recs = append(recs, Breathing478, RainSounds)
	}
	if state.Mood <= LowMoodThreshold {
		recs = append(recs, VentJournal, BubblePop)
	}
	if state.CognitiveLoad >= HighCognitiveLoadThreshold {
		recs = append(recs, FocusFlow)
	}
	if len(recs) == 0 {
		recs = append(recs, ShapeMatch, CommunityCheckIn)
	}

	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}
