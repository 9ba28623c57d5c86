package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindpulse/internal/model"
)

func ids(recs []model.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.ID
	}
	return out
}

func TestRecommend_CrisisShortCircuit(t *testing.T) {
	states := []model.EmotionalState{
		model.NeutralState(),
		{Mood: 0, Stress: 100, Energy: 0, CognitiveLoad: 100},
		{Mood: 100, Stress: 0, Energy: 100, CognitiveLoad: 0},
	}
	answers := []map[string]string{
		{SelfHarmQuestionID: SelfHarmOptionID},
		{SafetyQuestionID: UnsafeOptionID},
		{SelfHarmQuestionID: SelfHarmOptionID, SafetyQuestionID: UnsafeOptionID, "q_base_1": "good"},
	}

	for _, state := range states {
		for _, a := range answers {
			recs := Recommend(state, a)
			require.Len(t, recs, 1)
			assert.Equal(t, model.KindCrisis, recs[0].Kind)
			assert.Equal(t, CrisisHelpline.ID, recs[0].ID)
		}
	}
}

func TestRecommend_NonCrisisAnswersOnDesignatedQuestions(t *testing.T) {
	answers := map[string]string{
		SelfHarmQuestionID: "no",
		SafetyQuestionID:   "yes",
	}
	recs := Recommend(model.NeutralState(), answers)
	assert.False(t, model.HasCrisis(recs))
}

func TestRecommend_Blocks(t *testing.T) {
	tests := []struct {
		name  string
		state model.EmotionalState
		want  []string
	}{
		{
			name:  "midpoint gets the fallback pair",
			state: model.NeutralState(),
			want:  []string{ShapeMatch.ID, CommunityCheckIn.ID},
		},
		{
			name:  "high stress only",
			state: model.EmotionalState{Mood: 50, Stress: 70, Energy: 50, CognitiveLoad: 50},
			want:  []string{Breathing478.ID, RainSounds.ID},
		},
		{
			name:  "low mood only",
			state: model.EmotionalState{Mood: 40, Stress: 50, Energy: 50, CognitiveLoad: 50},
			want:  []string{VentJournal.ID, BubblePop.ID},
		},
		{
			name:  "high cognitive load only",
			state: model.EmotionalState{Mood: 50, Stress: 50, Energy: 50, CognitiveLoad: 60},
			want:  []string{FocusFlow.ID},
		},
		{
			name:  "all three blocks truncate in append order",
			state: model.EmotionalState{Mood: 20, Stress: 80, Energy: 50, CognitiveLoad: 90},
			want:  []string{Breathing478.ID, RainSounds.ID, VentJournal.ID},
		},
		{
			name:  "mood and cognitive load fit exactly",
			state: model.EmotionalState{Mood: 30, Stress: 10, Energy: 50, CognitiveLoad: 75},
			want:  []string{VentJournal.ID, BubblePop.ID, FocusFlow.ID},
		},
		{
			name:  "stress and cognitive load",
			state: model.EmotionalState{Mood: 80, Stress: 90, Energy: 50, CognitiveLoad: 60},
			want:  []string{Breathing478.ID, RainSounds.ID, FocusFlow.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := Recommend(tt.state, map[string]string{})
			assert.Equal(t, tt.want, ids(recs))
			assert.LessOrEqual(t, len(recs), MaxRecommendations)
			assert.False(t, model.HasCrisis(recs))
		})
	}
}

func TestRecommend_TruncationKeepsAppendOrderOverPriority(t *testing.T) {
	recs := Recommend(model.EmotionalState{Mood: 20, Stress: 80, Energy: 50, CognitiveLoad: 50}, nil)
	require.Len(t, recs, 3)
	assert.Equal(t, model.PriorityMedium, recs[1].Priority)
	assert.Equal(t, model.PriorityHigh, recs[2].Priority)
}
