package assessment

import "mindpulse/internal/model"

// ApplyAnswer folds one chosen option into state and returns the new state.
// Every weighted index is updated from the same pre-answer snapshot and
// clamped independently; indices without a weight are left unchanged.
// The input state is never modified.
func ApplyAnswer(state model.EmotionalState, opt model.Option) model.EmotionalState {
	next := state
	for name, coefficient := range opt.Weight {
		delta := coefficient * opt.Value
		next = next.With(name, state.Get(name)+delta)
	}
	return next
}
