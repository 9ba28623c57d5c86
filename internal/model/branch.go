package model

// Branch identifies a question flow. The base flow always runs first;
// exactly one deep-dive branch follows it.
type Branch string

const (
	BranchBase            Branch = "base"
	BranchStress          Branch = "stress"
	BranchMood            Branch = "mood"
	BranchOverthinking    Branch = "overthinking"
	BranchLightReflection Branch = "light_reflection"
)

// DeepDiveBranches lists the mutually exclusive follow-up branches
var DeepDiveBranches = []Branch{BranchStress, BranchMood, BranchOverthinking, BranchLightReflection}

// Valid reports whether b is a known branch
func (b Branch) Valid() bool {
	switch b {
	case BranchBase, BranchStress, BranchMood, BranchOverthinking, BranchLightReflection:
		return true
	}
	return false
}

// FlowTable maps each branch to its ordered question IDs
type FlowTable struct {
	Base            []string `json:"base" bson:"base" yaml:"base"`
	Stress          []string `json:"stress" bson:"stress" yaml:"stress"`
	Mood            []string `json:"mood" bson:"mood" yaml:"mood"`
	Overthinking    []string `json:"overthinking" bson:"overthinking" yaml:"overthinking"`
	LightReflection []string `json:"lightReflection" bson:"lightReflection" yaml:"light_reflection"`
}

// Flow returns the question IDs for branch b, or nil for an unknown branch
func (f FlowTable) Flow(b Branch) []string {
	switch b {
	case BranchBase:
		return f.Base
	case BranchStress:
		return f.Stress
	case BranchMood:
		return f.Mood
	case BranchOverthinking:
		return f.Overthinking
	case BranchLightReflection:
		return f.LightReflection
	}
	return nil
}
