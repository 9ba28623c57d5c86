package model

// QuestionType describes the shape of a question's answers
type QuestionType string

const (
	QuestionTypeSingle  QuestionType = "single"  // Pick one of several labelled options
	QuestionTypeScale   QuestionType = "scale"   // Ordinal 0-4 scale
	QuestionTypeBoolean QuestionType = "boolean" // Yes / no
)

// Valid reports whether t is a known question type
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeSingle, QuestionTypeScale, QuestionTypeBoolean:
		return true
	}
	return false
}

// Weight maps index names to signed coefficients. An empty weight
// contributes nothing to the emotional state.
type Weight map[IndexName]int

// Option is one selectable answer of a question
type Option struct {
	ID     string `json:"id" bson:"id" yaml:"id"`
	Label  string `json:"label" bson:"label" yaml:"label"`
	Glyph  string `json:"glyph,omitempty" bson:"glyph,omitempty" yaml:"glyph,omitempty"`
	Value  int    `json:"value" bson:"value" yaml:"value"`                                // Intensity/direction, typically -2..2
	Weight Weight `json:"weight,omitempty" bson:"weight,omitempty" yaml:"weight,omitempty"` // Per-index coefficient
}

// Question is an entry of the question bank
type Question struct {
	ID      string       `json:"id" bson:"id" yaml:"id"`
	Prompt  string       `json:"prompt" bson:"prompt" yaml:"prompt"`
	Type    QuestionType `json:"type" bson:"type" yaml:"type"`
	Branch  Branch       `json:"branch,omitempty" bson:"branch,omitempty" yaml:"branch,omitempty"`
	Options []Option     `json:"options" bson:"options" yaml:"options"`
}

// Option returns the option with the given ID
func (q *Question) Option(id string) (Option, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
