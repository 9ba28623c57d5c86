package assessment

import "mindpulse/internal/model"

// Branch selection thresholds, checked in this order
const (
	StressBranchThreshold       = 70 // stress >= selects the stress branch
	MoodBranchThreshold         = 35 // mood <= selects the mood branch
	OverthinkingBranchThreshold = 65 // cognitive load >= selects the overthinking branch
)

// SelectBranch maps the post-base state to the deep-dive branch.
// The first matching rule wins; light reflection is the fallback.
func SelectBranch(state model.EmotionalState) model.Branch {
	switch {
	case state.Stress >= StressBranchThreshold:
		return model.BranchStress
	case state.Mood <= MoodBranchThreshold:
		return model.BranchMood
	case state.CognitiveLoad >= OverthinkingBranchThreshold:
		return model.BranchOverthinking
	default:
		return model.BranchLightReflection
	}
}
