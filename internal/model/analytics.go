package model

// CheckInStats aggregates completed check-ins across all users
type CheckInStats struct {
	Completed int            `json:"completed"`
	Crisis    int            `json:"crisis"`
	Branches  map[string]int `json:"branches"`
	Labels    map[string]int `json:"labels"`
}

// QuestionStats is the answer distribution of one question over completed check-ins
type QuestionStats struct {
	QuestionID   string         `json:"questionId"`
	AnswerCount  int            `json:"answerCount"`
	OptionCounts map[string]int `json:"optionCounts"`
}
