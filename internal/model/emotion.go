package model

// IndexName names one of the four emotional indices
type IndexName string

const (
	IndexMood          IndexName = "mood"
	IndexStress        IndexName = "stress"
	IndexEnergy        IndexName = "energy"
	IndexCognitiveLoad IndexName = "cognitiveLoad"
)

// IndexNames is the fixed set of indices, in display order
var IndexNames = []IndexName{IndexMood, IndexStress, IndexEnergy, IndexCognitiveLoad}

// Valid reports whether n is one of the four known indices
func (n IndexName) Valid() bool {
	switch n {
	case IndexMood, IndexStress, IndexEnergy, IndexCognitiveLoad:
		return true
	}
	return false
}

// Index bounds
const (
	IndexMin      = 0
	IndexMax      = 100
	IndexMidpoint = 50
)

// EmotionalState is the four-index vector produced by an assessment.
// Every index stays within [IndexMin, IndexMax].
type EmotionalState struct {
	Mood          int `json:"mood" bson:"mood"`                   // low = negative affect
	Stress        int `json:"stress" bson:"stress"`               // high = overwhelmed
	Energy        int `json:"energy" bson:"energy"`               // low = depleted
	CognitiveLoad int `json:"cognitiveLoad" bson:"cognitiveLoad"` // high = overthinking
}

// NeutralState returns the midpoint state every session starts from
func NeutralState() EmotionalState {
	return EmotionalState{
		Mood:          IndexMidpoint,
		Stress:        IndexMidpoint,
		Energy:        IndexMidpoint,
		CognitiveLoad: IndexMidpoint,
	}
}

// Get returns the value of the named index; unknown names read as 0
func (s EmotionalState) Get(name IndexName) int {
	switch name {
	case IndexMood:
		return s.Mood
	case IndexStress:
		return s.Stress
	case IndexEnergy:
		return s.Energy
	case IndexCognitiveLoad:
		return s.CognitiveLoad
	}
	return 0
}

// With returns a copy of s with the named index set to the clamped value
func (s EmotionalState) With(name IndexName, value int) EmotionalState {
	value = ClampIndex(value)
	switch name {
	case IndexMood:
		s.Mood = value
	case IndexStress:
		s.Stress = value
	case IndexEnergy:
		s.Energy = value
	case IndexCognitiveLoad:
		s.CognitiveLoad = value
	}
	return s
}

// InRange reports whether every index lies within bounds
func (s EmotionalState) InRange() bool {
	for _, name := range IndexNames {
		v := s.Get(name)
		if v < IndexMin || v > IndexMax {
			return false
		}
	}
	return true
}

// ClampIndex bounds v to [IndexMin, IndexMax]
func ClampIndex(v int) int {
	if v < IndexMin {
		return IndexMin
	}
	if v > IndexMax {
		return IndexMax
	}
	return v
}

// WellnessAxis is one spoke of the wellness radar chart; larger is better
type WellnessAxis struct {
	Name  string `json:"name" bson:"name"`
	Value int    `json:"value" bson:"value"`
}
