package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"learnread/internal/curriculum"
	"learnread/internal/models"
	"learnread/internal/speech"

	"github.com/google/uuid"
)

// LessonPhase is one step of the fixed lesson flow.
type LessonPhase string

const (
	PhaseIntro    LessonPhase = "intro"
	PhaseGame     LessonPhase = "game"
	PhaseReading  LessonPhase = "reading"
	PhaseCreative LessonPhase = "creative"
	PhaseDone     LessonPhase = "done"
)

var (
	// ErrNoSuchDay means the requested day is outside the catalog.
	ErrNoSuchDay = errors.New("no such day")
	// ErrDayLocked means the learner has not reached the day yet.
	ErrDayLocked = errors.New("day is locked")
	// ErrNoSuchSession means the session ID is unknown or swept.
	ErrNoSuchSession = errors.New("no such lesson session")
	// ErrWrongPhase means the event does not apply to the session's
	// current phase.
	ErrWrongPhase = errors.New("event not valid in current phase")
)

// LessonSession is one learner's pass through a lesson day. All state
// transitions happen on discrete events delivered by the caller.
type LessonSession struct {
	ID        string              `json:"id"`
	LearnerID string              `json:"learnerId"`
	Day       curriculum.LessonDay `json:"day"`
	Phase     LessonPhase         `json:"phase"`

	CorrectAnswers int      `json:"correctAnswers"`
	Phases         []string `json:"completedPhases"`

	StartedAt   time.Time `json:"startedAt"`
	LastEventAt time.Time `json:"lastEventAt"`
}

// snapshot returns a copy safe to hand outside the service mutex.
// Callers JSON-encode sessions while other events mutate the live one.
func (l *LessonSession) snapshot() *LessonSession {
	c := *l
	c.Phases = append([]string(nil), l.Phases...)
	return &c
}

// LessonService drives lesson sessions through the fixed phase flow
// Intro -> Game -> Reading -> Creative -> Done, skipping Reading when
// the game table says the mini-game already covers it. Completing a
// session reports exactly one result to the progress service.
type LessonService struct {
	progress *ProgressService
	speaker  speech.Speaker

	mu       sync.Mutex
	sessions map[string]*LessonSession

	now func() time.Time
}

// NewLessonService creates a new lesson service
func NewLessonService(progress *ProgressService, speaker speech.Speaker) *LessonService {
	return &LessonService{
		progress: progress,
		speaker:  speaker,
		sessions: make(map[string]*LessonSession),
		now:      time.Now,
	}
}

// StartLesson opens a session for a day in the Intro phase. The day
// must exist and be reachable for the learner.
func (s *LessonService) StartLesson(ctx context.Context, learnerID string, day int) (*LessonSession, error) {
	dayData := curriculum.GetDayData(day)
	if dayData == nil || day == 0 {
		return nil, ErrNoSuchDay
	}
	if !s.progress.CanPlayDay(learnerID, day) {
		return nil, ErrDayLocked
	}

	session := &LessonSession{
		ID:        uuid.New().String(),
		LearnerID: learnerID,
		Day:       *dayData,
		Phase:     PhaseIntro,
		Phases:    []string{},
		StartedAt: s.now(),
	}
	session.LastEventAt = session.StartedAt

	s.mu.Lock()
	s.sessions[session.ID] = session
	out := session.snapshot()
	s.mu.Unlock()

	// Spoken title is an enhancement; a mute speech engine never
	// blocks the lesson.
	if err := s.speaker.Speak(ctx, dayData.Title, speech.Options{}); err != nil {
		log.Printf("Speech failed for lesson intro: %v", err)
	}

	return out, nil
}

// GetSession returns a copy of a session by ID.
func (s *LessonService) GetSession(sessionID string) (*LessonSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNoSuchSession
	}
	return session.snapshot(), nil
}

// Begin moves Intro -> Game on the learner's explicit start action and
// speaks the game's instruction.
func (s *LessonService) Begin(ctx context.Context, sessionID string) (*LessonSession, error) {
	session, err := s.transition(sessionID, PhaseIntro, PhaseGame)
	if err != nil {
		return nil, err
	}

	instruction := curriculum.GameFor(session.Day.Game).Instruction
	if err := s.speaker.Speak(ctx, instruction, speech.Options{}); err != nil {
		log.Printf("Speech failed for game instruction: %v", err)
	}

	return session, nil
}

// GameComplete moves Game -> Reading or Game -> Creative when the
// mini-game reports completion, crediting the correct answers it
// counted.
func (s *LessonService) GameComplete(ctx context.Context, sessionID string, correct int) (*LessonSession, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoSuchSession
	}
	if session.Phase != PhaseGame {
		s.mu.Unlock()
		return nil, ErrWrongPhase
	}

	if correct > 0 {
		session.CorrectAnswers += correct
	}
	session.Phases = append(session.Phases, string(PhaseGame))
	session.Phase = NextPhaseAfterGame(session.Day)
	session.LastEventAt = s.now()
	out := session.snapshot()
	s.mu.Unlock()

	if err := s.speaker.SpeakEncouragement(ctx, speech.EncourageSuccess); err != nil {
		log.Printf("Speech failed for encouragement: %v", err)
	}

	return out, nil
}

// ReadingComplete moves Reading -> Creative when the reading activity
// reports completion.
func (s *LessonService) ReadingComplete(ctx context.Context, sessionID string) (*LessonSession, error) {
	return s.transition(sessionID, PhaseReading, PhaseCreative)
}

// CreativeComplete finishes the session when the creative activity
// reports completion.
func (s *LessonService) CreativeComplete(ctx context.Context, sessionID string) (*models.LessonResult, error) {
	return s.finish(ctx, sessionID, true)
}

// SkipCreative finishes the session when the learner skips the
// creative activity. The result is the same terminal one.
func (s *LessonService) SkipCreative(ctx context.Context, sessionID string) (*models.LessonResult, error) {
	return s.finish(ctx, sessionID, false)
}

// finish moves Creative -> Done, reports the aggregated result to the
// progress store exactly once and drops the session.
func (s *LessonService) finish(ctx context.Context, sessionID string, creativeDone bool) (*models.LessonResult, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoSuchSession
	}
	if session.Phase != PhaseCreative {
		s.mu.Unlock()
		return nil, ErrWrongPhase
	}

	if creativeDone {
		session.Phases = append(session.Phases, string(PhaseCreative))
	}
	session.Phase = PhaseDone
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	reward, achievement := ClassifyReward(session.Day)
	result := &models.LessonResult{
		DayResult: models.DayResult{
			CorrectAnswers: session.CorrectAnswers,
			KnownLetters:   session.Day.Letters,
		},
		Day:             session.Day.Day,
		CompletedPhases: session.Phases,
		Reward:          reward,
		Achievement:     achievement,
	}

	s.progress.CompleteDay(session.LearnerID, session.Day.Day, result.DayResult)
	if achievement != "" {
		s.progress.AddAchievement(session.LearnerID, achievement)
	}

	if reward != models.RewardNone {
		if err := s.speaker.SpeakEncouragement(ctx, speech.EncourageReward); err != nil {
			log.Printf("Speech failed for reward: %v", err)
		}
	}

	return result, nil
}

// transition performs a simple from -> to phase move, recording the
// phase left behind.
func (s *LessonService) transition(sessionID string, from, to LessonPhase) (*LessonSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNoSuchSession
	}
	if session.Phase != from {
		return nil, ErrWrongPhase
	}

	if from != PhaseIntro {
		session.Phases = append(session.Phases, string(from))
	}
	session.Phase = to
	session.LastEventAt = s.now()
	return session.snapshot(), nil
}

// SweepAbandoned drops sessions idle longer than maxIdle and returns
// how many were removed. A torn-down front end simply stops sending
// events, so this is the only cleanup a session needs.
func (s *LessonService) SweepAbandoned(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for id, session := range s.sessions {
		if session.LastEventAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// NextPhaseAfterGame decides where a finished game leads. Pure
// function of the day's game classification and content so the 30-day
// mapping stays auditable: reading-heavy games and content-free days
// skip the reading phase.
func NextPhaseAfterGame(day curriculum.LessonDay) LessonPhase {
	if curriculum.GameFor(day.Game).ReadingHeavy {
		return PhaseCreative
	}
	if len(day.Words) == 0 && len(day.Syllables) == 0 && len(day.Sentences) == 0 {
		return PhaseCreative
	}
	return PhaseReading
}

// ClassifyReward maps a day's flags to the celebration it earns and
// the achievement recorded with it.
func ClassifyReward(day curriculum.LessonDay) (models.RewardKind, string) {
	switch {
	case day.IsFinal:
		return models.RewardFinal, "Читатель"
	case day.IsStageComplete:
		return models.RewardStage, "Этап пройден!"
	case day.IsCheckpoint:
		return models.RewardCheckpoint, ""
	default:
		return models.RewardNone, ""
	}
}
