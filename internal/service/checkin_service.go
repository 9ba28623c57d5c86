package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"mindpulse/internal/assessment"
	"mindpulse/internal/cache"
	"mindpulse/internal/model"
	"mindpulse/internal/repository"
)

var (
	ErrCheckInNotFound  = errors.New("check-in not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// DefaultHistoryLimit caps History when the caller asks for everything
const DefaultHistoryLimit = 20

// CheckInService runs assessment sessions on behalf of users. In-flight
// sessions live in the session cache; completed ones are persisted.
type CheckInService struct {
	bank         *assessment.Bank
	checkInRepo  repository.CheckInRepo
	sessionCache cache.SessionCache
	trendCache   cache.TrendCache
	authSvc      *AuthService
	analytics    cache.AnalyticsCache
	broadcaster  Broadcaster
}

// NewCheckInService creates a new check-in service
func NewCheckInService(
	bank *assessment.Bank,
	checkInRepo repository.CheckInRepo,
	sessionCache cache.SessionCache,
	trendCache cache.TrendCache,
	authSvc *AuthService,
) *CheckInService {
	return &CheckInService{
		bank:         bank,
		checkInRepo:  checkInRepo,
		sessionCache: sessionCache,
		trendCache:   trendCache,
		authSvc:      authSvc,
	}
}

// SetAnalytics enables aggregate counters over completed check-ins
func (s *CheckInService) SetAnalytics(a cache.AnalyticsCache) {
	s.analytics = a
}

// SetBroadcaster sets the WebSocket broadcaster
func (s *CheckInService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start opens a new check-in for userID, or for a fresh guest when userID is empty
func (s *CheckInService) Start(ctx context.Context, userID string) (*model.StartCheckInResponse, error) {
	if userID == "" {
		userID = s.authSvc.NewGuestUserID()
	}

	sess := assessment.NewSession(s.bank)
	sess.Start()

	active := &model.ActiveCheckIn{
		ID:        "c_" + uuid.New().String(),
		UserID:    userID,
		StartedAt: time.Now(),
		Session:   sess.Snapshot(),
	}
	if err := s.sessionCache.Set(ctx, active); err != nil {
		return nil, fmt.Errorf("failed to cache check-in: %w", err)
	}

	token, err := s.authSvc.GenerateCheckInToken(active.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Printf("Check-in %s started for %s", active.ID, userID)

	return &model.StartCheckInResponse{
		CheckInID: active.ID,
		UserID:    userID,
		Token:     token,
		View:      s.view(active.ID, sess),
	}, nil
}

// Current returns where the check-in stands
func (s *CheckInService) Current(ctx context.Context, id string) (*model.CheckInView, error) {
	active, sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return s.view(id, sess), nil
	}

	// Cached session expired; a completed check-in is still served from storage
	checkIn, err := s.Result(ctx, id)
	if err != nil {
		return nil, err
	}
	return completedView(checkIn), nil
}

// Answer records optionID for the current question. Assessment errors are
// returned unwrapped so callers can match them with errors.Is.
func (s *CheckInService) Answer(ctx context.Context, id, optionID string) (*model.CheckInView, error) {
	active, sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if active == nil {
		if _, err := s.Result(ctx, id); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: check-in %s is completed", assessment.ErrInvalidState, id)
	}

	if err := sess.Answer(optionID); err != nil {
		return nil, err
	}
	active.Session = sess.Snapshot()
	view := s.view(id, sess)

	if sess.Phase() == model.PhaseCompleted {
		if err := s.finish(ctx, active, sess); err != nil {
			return nil, err
		}
		return view, nil
	}

	if err := s.sessionCache.Set(ctx, active); err != nil {
		return nil, fmt.Errorf("failed to cache check-in: %w", err)
	}
	s.broadcast(id, EventProgress, view)
	return view, nil
}

// finish persists a completed check-in. The cached session is only
// overwritten once the record is stored, so a failed save can be retried.
func (s *CheckInService) finish(ctx context.Context, active *model.ActiveCheckIn, sess *assessment.Session) error {
	state := sess.State()
	checkIn := &model.CheckIn{
		ID:              active.ID,
		UserID:          active.UserID,
		Branch:          sess.Branch(),
		State:           state,
		Answers:         sess.Answers(),
		Recommendations: sess.Recommendations(),
		ProfileLabel:    assessment.ProfileLabel(state),
		Crisis:          sess.IsCrisis(),
		StartedAt:       active.StartedAt,
		CompletedAt:     time.Now(),
	}
	if err := s.checkInRepo.Save(ctx, checkIn); err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}

	if err := s.sessionCache.Set(ctx, active); err != nil {
		log.Printf("Failed to cache completed check-in %s: %v", active.ID, err)
	}

	point := model.TrendPoint{
		CheckInID:    checkIn.ID,
		State:        checkIn.State,
		ProfileLabel: checkIn.ProfileLabel,
		Crisis:       checkIn.Crisis,
		At:           checkIn.CompletedAt,
	}
	if err := s.trendCache.Record(ctx, checkIn.UserID, point); err != nil {
		log.Printf("Failed to record trend for %s: %v", checkIn.UserID, err)
	}
	if s.analytics != nil {
		if err := s.analytics.RecordCheckIn(ctx, checkIn); err != nil {
			log.Printf("Failed to record analytics for %s: %v", checkIn.ID, err)
		}
	}

	log.Printf("Check-in %s completed (branch=%s, label=%s)", checkIn.ID, checkIn.Branch, checkIn.ProfileLabel)

	s.broadcast(checkIn.ID, EventCompleted, completedView(checkIn))
	if checkIn.Crisis {
		log.Printf("Check-in %s flagged crisis for %s", checkIn.ID, checkIn.UserID)
		s.broadcast(checkIn.ID, EventCrisis, map[string]interface{}{
			"checkInId":      checkIn.ID,
			"recommendation": assessment.CrisisHelpline,
		})
	}
	return nil
}

// Restart discards all progress and returns the check-in to its first question
func (s *CheckInService) Restart(ctx context.Context, id string) (*model.CheckInView, error) {
	active, sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if active == nil {
		checkIn, err := s.Result(ctx, id)
		if err != nil {
			return nil, err
		}
		active = &model.ActiveCheckIn{ID: checkIn.ID, UserID: checkIn.UserID}
		sess = assessment.NewSession(s.bank)
	}

	sess.Start()
	active.StartedAt = time.Now()
	active.Session = sess.Snapshot()
	if err := s.sessionCache.Set(ctx, active); err != nil {
		return nil, fmt.Errorf("failed to cache check-in: %w", err)
	}

	view := s.view(id, sess)
	s.broadcast(id, EventRestarted, view)
	return view, nil
}

// Result returns the stored outcome of a completed check-in
func (s *CheckInService) Result(ctx context.Context, id string) (*model.CheckIn, error) {
	checkIn, err := s.checkInRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get check-in: %w", err)
	}
	if checkIn == nil {
		return nil, ErrCheckInNotFound
	}
	return checkIn, nil
}

// History returns the user's most recent completed check-ins, newest first
func (s *CheckInService) History(ctx context.Context, userID string, limit int64) ([]*model.CheckIn, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	checkIns, err := s.checkInRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	return checkIns, nil
}

// Trend returns the user's recent mood trend, newest first
func (s *CheckInService) Trend(ctx context.Context, userID string, limit int) ([]model.TrendPoint, error) {
	points, err := s.trendCache.Recent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get trend: %w", err)
	}
	return points, nil
}

// Stats returns counters over every completed check-in
func (s *CheckInService) Stats(ctx context.Context) (*model.CheckInStats, error) {
	if s.analytics == nil {
		return &model.CheckInStats{Branches: map[string]int{}, Labels: map[string]int{}}, nil
	}
	stats, err := s.analytics.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}

// QuestionStats returns how often each option of a question was chosen
func (s *CheckInService) QuestionStats(ctx context.Context, questionID string) (*model.QuestionStats, error) {
	if _, ok := s.bank.Question(questionID); !ok {
		return nil, ErrQuestionNotFound
	}
	if s.analytics == nil {
		return &model.QuestionStats{QuestionID: questionID, OptionCounts: map[string]int{}}, nil
	}
	stats, err := s.analytics.GetQuestionStats(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get question stats: %w", err)
	}
	return stats, nil
}

// load returns (nil, nil, nil) when nothing is cached under id
func (s *CheckInService) load(ctx context.Context, id string) (*model.ActiveCheckIn, *assessment.Session, error) {
	active, err := s.sessionCache.Get(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get check-in: %w", err)
	}
	if active == nil {
		return nil, nil, nil
	}
	sess, err := assessment.RestoreSession(s.bank, active.Session)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to restore check-in %s: %w", id, err)
	}
	return active, sess, nil
}

func (s *CheckInService) view(id string, sess *assessment.Session) *model.CheckInView {
	v := &model.CheckInView{
		CheckInID: id,
		Phase:     sess.Phase(),
		Progress:  sess.Progress(),
	}
	if q, ok := sess.CurrentQuestion(); ok {
		qc := *q
		v.Question = &qc
	}
	if sess.Phase() == model.PhaseCompleted {
		state := sess.State()
		v.Done = true
		v.State = &state
		v.ProfileLabel = assessment.ProfileLabel(state)
		v.Axes = assessment.WellnessAxes(state)
		v.Recommendations = sess.Recommendations()
		v.Crisis = sess.IsCrisis()
	}
	return v
}

func completedView(c *model.CheckIn) *model.CheckInView {
	state := c.State
	return &model.CheckInView{
		CheckInID:       c.ID,
		Phase:           model.PhaseCompleted,
		Progress:        1,
		Done:            true,
		State:           &state,
		ProfileLabel:    c.ProfileLabel,
		Axes:            assessment.WellnessAxes(state),
		Recommendations: c.Recommendations,
		Crisis:          c.Crisis,
	}
}

func (s *CheckInService) broadcast(id, msgType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastToCheckIn(id, msgType, payload)
	}
}
