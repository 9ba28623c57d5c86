package assessment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"mindpulse/internal/model"
)

func TestApplyAnswer(t *testing.T) {
	tests := []struct {
		name   string
		state  model.EmotionalState
		option model.Option
		want   model.EmotionalState
	}{
		{
			name:   "weighted indices move by coefficient times value",
			state:  model.NeutralState(),
			option: model.Option{ID: "very_good", Value: 2, Weight: model.Weight{model.IndexMood: 10, model.IndexEnergy: 5}},
			want:   model.EmotionalState{Mood: 70, Stress: 50, Energy: 60, CognitiveLoad: 50},
		},
		{
			name:   "negative value with positive weight lowers the index",
			state:  model.NeutralState(),
			option: model.Option{ID: "very_low", Value: -2, Weight: model.Weight{model.IndexMood: 20}},
			want:   model.EmotionalState{Mood: 10, Stress: 50, Energy: 50, CognitiveLoad: 50},
		},
		{
			name:   "empty weight leaves state unchanged",
			state:  model.EmotionalState{Mood: 12, Stress: 34, Energy: 56, CognitiveLoad: 78},
			option: model.Option{ID: "work", Value: 0},
			want:   model.EmotionalState{Mood: 12, Stress: 34, Energy: 56, CognitiveLoad: 78},
		},
		{
			name:   "clamps at upper bound",
			state:  model.EmotionalState{Mood: 50, Stress: 90, Energy: 50, CognitiveLoad: 50},
			option: model.Option{ID: "4", Value: 2, Weight: model.Weight{model.IndexStress: 25}},
			want:   model.EmotionalState{Mood: 50, Stress: 100, Energy: 50, CognitiveLoad: 50},
		},
		{
			name:   "clamps at lower bound",
			state:  model.EmotionalState{Mood: 50, Stress: 50, Energy: 5, CognitiveLoad: 50},
			option: model.Option{ID: "0", Value: -2, Weight: model.Weight{model.IndexEnergy: 15}},
			want:   model.EmotionalState{Mood: 50, Stress: 50, Energy: 0, CognitiveLoad: 50},
		},
		{
			name:  "each index clamps independently",
			state: model.EmotionalState{Mood: 95, Stress: 50, Energy: 3, CognitiveLoad: 50},
			option: model.Option{ID: "mixed", Value: 1, Weight: model.Weight{
				model.IndexMood:   10,
				model.IndexEnergy: -10,
				model.IndexStress: 5,
			}},
			want: model.EmotionalState{Mood: 100, Stress: 55, Energy: 0, CognitiveLoad: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyAnswer(tt.state, tt.option))
		})
	}
}

func TestApplyAnswer_IsPure(t *testing.T) {
	state := model.EmotionalState{Mood: 40, Stress: 60, Energy: 45, CognitiveLoad: 55}
	before := state
	opt := model.Option{ID: "x", Value: 1, Weight: model.Weight{model.IndexMood: 10, model.IndexStress: -5}}

	first := ApplyAnswer(state, opt)
	second := ApplyAnswer(state, opt)

	assert.Equal(t, first, second)
	assert.Equal(t, before, state, "input state must not be modified")
}

func TestApplyAnswer_StaysInRange(t *testing.T) {
	bank := DefaultBank()
	doc := bank.Document()

	var options []model.Option
	for _, q := range doc.Questions {
		options = append(options, q.Options...)
	}

	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 200; run++ {
		state := model.NeutralState()
		for step := 0; step < 30; step++ {
			state = ApplyAnswer(state, options[rng.Intn(len(options))])
			assert.True(t, state.InRange(), "run %d step %d produced %+v", run, step, state)
		}
	}
}
