package assessment

import (
	"fmt"

	"mindpulse/internal/model"
)

// Session drives one check-in: base flow, one deep-dive branch, then
// recommendations. A Session is not safe for concurrent use; hosts keep
// one per user check-in.
type Session struct {
	bank    *Bank
	phase   model.Phase
	branch  model.Branch
	flow    []string
	pointer int
	state   model.EmotionalState
	answers map[string]string
	recs    []model.Recommendation
}

// NewSession returns a session in the not-started phase
func NewSession(bank *Bank) *Session {
	return &Session{
		bank:    bank,
		phase:   model.PhaseNotStarted,
		state:   model.NeutralState(),
		answers: make(map[string]string),
	}
}

// Start resets the session to the first base question. It is valid from any phase.
func (s *Session) Start() {
	s.phase = model.PhaseBase
	s.branch = model.BranchBase
	s.flow = s.bank.Flow(model.BranchBase)
	s.pointer = 0
	s.state = model.NeutralState()
	s.answers = make(map[string]string)
	s.recs = nil
}

// Answer records optionID for the current question and advances the session.
// On error nothing is changed.
func (s *Session) Answer(optionID string) error {
	q, ok := s.CurrentQuestion()
	if !ok {
		return fmt.Errorf("%w: phase %s", ErrInvalidState, s.phase)
	}
	opt, ok := q.Option(optionID)
	if !ok {
		return fmt.Errorf("%w: %s has no option %q", ErrUnknownOption, q.ID, optionID)
	}

	s.state = ApplyAnswer(s.state, opt)
	s.answers[q.ID] = opt.ID

	if s.pointer < len(s.flow)-1 {
		s.pointer++
		return nil
	}

	if s.phase == model.PhaseBase {
		s.branch = SelectBranch(s.state)
		if next := s.bank.Flow(s.branch); len(next) > 0 {
			s.flow = next
			s.pointer = 0
			s.phase = model.PhaseDeepDive
			return nil
		}
	}
	s.complete()
	return nil
}

// AnswerOption is Answer for a caller holding the option itself
func (s *Session) AnswerOption(opt model.Option) error {
	return s.Answer(opt.ID)
}

func (s *Session) complete() {
	s.recs = Recommend(s.state, s.answers)
	s.flow = nil
	s.pointer = 0
	s.phase = model.PhaseCompleted
}

// CurrentQuestion returns the question awaiting an answer, if any
func (s *Session) CurrentQuestion() (*model.Question, bool) {
	if s.phase != model.PhaseBase && s.phase != model.PhaseDeepDive {
		return nil, false
	}
	if s.pointer < 0 || s.pointer >= len(s.flow) {
		return nil, false
	}
	q, ok := s.bank.Question(s.flow[s.pointer])
	if !ok {
		panic(fmt.Sprintf("assessment: flow references unknown question %s", s.flow[s.pointer]))
	}
	return q, true
}

// Progress returns display progress in [0, 1]. The base flow covers the
// first half and the deep-dive branch the second.
func (s *Session) Progress() float64 {
	switch s.phase {
	case model.PhaseBase:
		return 0.5 * float64(s.pointer) / float64(max(len(s.flow), 1))
	case model.PhaseDeepDive:
		return 0.5 + 0.5*float64(s.pointer)/float64(max(len(s.flow), 1))
	case model.PhaseCompleted:
		return 1
	}
	return 0
}

// Phase returns the current lifecycle phase
func (s *Session) Phase() model.Phase { return s.phase }

// Branch returns the active flow's branch; the selected deep-dive branch once base is done
func (s *Session) Branch() model.Branch { return s.branch }

// State returns the running emotional state
func (s *Session) State() model.EmotionalState { return s.state }

// Answers returns a copy of the answers recorded so far
func (s *Session) Answers() map[string]string {
	out := make(map[string]string, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Recommendations returns a copy of the final recommendations; empty until completed
func (s *Session) Recommendations() []model.Recommendation {
	return append([]model.Recommendation(nil), s.recs...)
}

// IsCrisis reports whether the session completed with a crisis recommendation
func (s *Session) IsCrisis() bool {
	return model.HasCrisis(s.recs)
}

// Snapshot captures the session for storage outside the process
func (s *Session) Snapshot() model.SessionSnapshot {
	return model.SessionSnapshot{
		Phase:           s.phase,
		Branch:          s.branch,
		Pointer:         s.pointer,
		State:           s.state,
		Answers:         s.Answers(),
		Recommendations: s.Recommendations(),
	}
}

// RestoreSession rebuilds a session from a snapshot taken against bank
func RestoreSession(bank *Bank, snap model.SessionSnapshot) (*Session, error) {
	s := NewSession(bank)
	if !snap.State.InRange() {
		return nil, fmt.Errorf("%w: state out of range", ErrInvalidSnapshot)
	}
	for qid, oid := range snap.Answers {
		q, ok := bank.Question(qid)
		if !ok {
			return nil, fmt.Errorf("%w: unknown question %s", ErrInvalidSnapshot, qid)
		}
		if _, ok := q.Option(oid); !ok {
			return nil, fmt.Errorf("%w: question %s has no option %s", ErrInvalidSnapshot, qid, oid)
		}
	}

	switch snap.Phase {
	case model.PhaseNotStarted:
		return s, nil
	case model.PhaseBase:
		if snap.Branch != "" && snap.Branch != model.BranchBase {
			return nil, fmt.Errorf("%w: base phase on branch %s", ErrInvalidSnapshot, snap.Branch)
		}
		s.branch = model.BranchBase
	case model.PhaseDeepDive, model.PhaseCompleted:
		if snap.Branch == model.BranchBase || !snap.Branch.Valid() {
			return nil, fmt.Errorf("%w: %s phase on branch %q", ErrInvalidSnapshot, snap.Phase, snap.Branch)
		}
		s.branch = snap.Branch
	default:
		return nil, fmt.Errorf("%w: unknown phase %q", ErrInvalidSnapshot, snap.Phase)
	}

	s.phase = snap.Phase
	s.state = snap.State
	for k, v := range snap.Answers {
		s.answers[k] = v
	}

	if snap.Phase == model.PhaseCompleted {
		s.recs = append([]model.Recommendation(nil), snap.Recommendations...)
		return s, nil
	}

	s.flow = bank.Flow(s.branch)
	if snap.Pointer < 0 || snap.Pointer >= len(s.flow) {
		return nil, fmt.Errorf("%w: pointer %d outside %s flow of %d", ErrInvalidSnapshot, snap.Pointer, s.branch, len(s.flow))
	}
	s.pointer = snap.Pointer
	return s, nil
}
