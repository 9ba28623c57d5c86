package model

import "time"

// QuestionBank is the static catalog an assessment runs against
type QuestionBank struct {
	ID        string     `json:"id" bson:"_id" yaml:"id,omitempty"`
	Version   int        `json:"version" bson:"version" yaml:"version"`
	Questions []Question `json:"questions" bson:"questions" yaml:"questions"`
	Flows     FlowTable  `json:"flows" bson:"flows" yaml:"flows"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt" yaml:"-"`
}
