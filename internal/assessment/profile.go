package assessment

import "mindpulse/internal/model"

// Profile labels
const (
	LabelHighStress  = "High Stress"
	LabelLowMood     = "Low Mood"
	LabelHighEnergy  = "High Energy"
	LabelOverwhelmed = "Overwhelmed"
	LabelBalanced    = "Balanced"
)

// ProfileLabel summarizes a state in a short human label
func ProfileLabel(state model.EmotionalState) string {
	switch {
	case state.Stress > 70:
		return LabelHighStress
	case state.Mood < 40:
		return LabelLowMood
	case state.Energy > 70 && state.Mood > 60:
		return LabelHighEnergy
	case state.CognitiveLoad > 60:
		return LabelOverwhelmed
	default:
		return LabelBalanced
	}
}

// WellnessAxes projects a state onto the radar chart.
// Stress and cognitive load are inverted so every axis reads "bigger is better".
func WellnessAxes(state model.EmotionalState) []model.WellnessAxis {
	return []model.WellnessAxis{
		{Name: "Mood", Value: state.Mood},
		{Name: "Energy", Value: state.Energy},
		{Name: "Calmness", Value: model.IndexMax - state.Stress},
		{Name: "Clarity", Value: model.IndexMax - state.CognitiveLoad},
	}
}
