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

// DiagnosticPhase is one step of the first-run letter check.
type DiagnosticPhase string

const (
	DiagnosticIntro    DiagnosticPhase = "intro"
	DiagnosticTesting  DiagnosticPhase = "testing"
	DiagnosticComplete DiagnosticPhase = "complete"
)

var (
	// ErrDiagnosticNotDone means Complete was requested before every
	// letter was presented.
	ErrDiagnosticNotDone = errors.New("diagnostic still in progress")
	// ErrUnknownLetter means an answer referenced a letter outside the
	// diagnostic set.
	ErrUnknownLetter = errors.New("letter is not part of the diagnostic")
)

// DiagnosticSession walks the child through the ten diagnostic
// letters. Answers are keyed by letter so a re-answer overwrites the
// previous one, and the final partition of the answer map structurally
// guarantees no letter lands in both output lists.
type DiagnosticSession struct {
	ID        string          `json:"id"`
	LearnerID string          `json:"learnerId"`
	Letters   []string        `json:"letters"`
	Index     int             `json:"index"`
	Phase     DiagnosticPhase `json:"phase"`

	answers map[string]bool

	StartedAt   time.Time `json:"startedAt"`
	LastEventAt time.Time `json:"lastEventAt"`
}

// CurrentLetter returns the letter being presented, or "" when testing
// is over.
func (d *DiagnosticSession) CurrentLetter() string {
	if d.Index < len(d.Letters) {
		return d.Letters[d.Index]
	}
	return ""
}

// snapshot returns a copy safe to hand outside the service mutex. The
// answer map stays with the live session.
func (d *DiagnosticSession) snapshot() *DiagnosticSession {
	c := *d
	c.answers = nil
	return &c
}

// DiagnosticService runs the day-0 flow Intro -> Testing -> Complete.
type DiagnosticService struct {
	speaker speech.Speaker

	mu       sync.Mutex
	sessions map[string]*DiagnosticSession

	now func() time.Time
}

// NewDiagnosticService creates a new diagnostic service
func NewDiagnosticService(speaker speech.Speaker) *DiagnosticService {
	return &DiagnosticService{
		speaker:  speaker,
		sessions: make(map[string]*DiagnosticSession),
		now:      time.Now,
	}
}

// Start opens a diagnostic session in the Intro phase.
func (s *DiagnosticService) Start(learnerID string) *DiagnosticSession {
	letters := curriculum.GetDayData(0).Letters

	session := &DiagnosticSession{
		ID:        uuid.New().String(),
		LearnerID: learnerID,
		Letters:   letters,
		Phase:     DiagnosticIntro,
		answers:   make(map[string]bool, len(letters)),
		StartedAt: s.now(),
	}
	session.LastEventAt = session.StartedAt

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session.snapshot()
}

// GetSession returns a copy of a session by ID.
func (s *DiagnosticService) GetSession(sessionID string) (*DiagnosticSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrNoSuchSession
	}
	return session.snapshot(), nil
}

// Begin moves Intro -> Testing and speaks the intro line plus the
// first letter.
func (s *DiagnosticService) Begin(ctx context.Context, sessionID string) (*DiagnosticSession, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoSuchSession
	}
	if session.Phase != DiagnosticIntro {
		s.mu.Unlock()
		return nil, ErrWrongPhase
	}
	session.Phase = DiagnosticTesting
	session.LastEventAt = s.now()
	letter := session.CurrentLetter()
	out := session.snapshot()
	s.mu.Unlock()

	if err := s.speaker.Speak(ctx, "Давай проверим, какие буквы ты уже знаешь!", speech.Options{}); err != nil {
		log.Printf("Speech failed for diagnostic intro: %v", err)
	}
	if err := s.speaker.SpeakLetter(ctx, letter); err != nil {
		log.Printf("Speech failed for diagnostic letter: %v", err)
	}

	return out, nil
}

// Answer records whether the child knows a letter. The answer
// overwrites any previous one for that letter; the index advances
// unconditionally, and reaching the end completes the session.
func (s *DiagnosticService) Answer(ctx context.Context, sessionID, letter string, known bool) (*DiagnosticSession, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoSuchSession
	}
	if session.Phase != DiagnosticTesting {
		s.mu.Unlock()
		return nil, ErrWrongPhase
	}
	if !inLetters(session.Letters, letter) {
		s.mu.Unlock()
		return nil, ErrUnknownLetter
	}

	session.answers[letter] = known
	session.Index++
	session.LastEventAt = s.now()
	if session.Index >= len(session.Letters) {
		session.Phase = DiagnosticComplete
	}
	next := session.CurrentLetter()
	out := session.snapshot()
	s.mu.Unlock()

	if known {
		if err := s.speaker.SpeakEncouragement(ctx, speech.EncourageSuccess); err != nil {
			log.Printf("Speech failed for encouragement: %v", err)
		}
	} else {
		if err := s.speaker.Speak(ctx, "Ничего, мы этому научимся!", speech.Options{}); err != nil {
			log.Printf("Speech failed for consolation: %v", err)
		}
	}
	if next != "" {
		if err := s.speaker.SpeakLetter(ctx, next); err != nil {
			log.Printf("Speech failed for next letter: %v", err)
		}
	}

	return out, nil
}

// Complete partitions the answer map into known and unknown letters
// (in presentation order, so the result is deterministic), drops the
// session and returns the result for the caller to feed into
// CompleteDay(0, ...).
func (s *DiagnosticService) Complete(ctx context.Context, sessionID string) (*models.DiagnosticResult, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoSuchSession
	}
	if session.Phase != DiagnosticComplete {
		s.mu.Unlock()
		return nil, ErrDiagnosticNotDone
	}
	delete(s.sessions, sessionID)

	result := &models.DiagnosticResult{
		KnownLetters:   []string{},
		UnknownLetters: []string{},
	}
	for _, letter := range session.Letters {
		known, answered := session.answers[letter]
		if !answered {
			// Unanswered letters count as unknown; they were
			// presented but the child gave no answer.
			result.UnknownLetters = append(result.UnknownLetters, letter)
			continue
		}
		if known {
			result.KnownLetters = append(result.KnownLetters, letter)
		} else {
			result.UnknownLetters = append(result.UnknownLetters, letter)
		}
	}
	s.mu.Unlock()

	if err := s.speaker.Speak(ctx, "Отлично! Давай начнём учиться!", speech.Options{}); err != nil {
		log.Printf("Speech failed for diagnostic finish: %v", err)
	}

	return result, nil
}

// SweepAbandoned drops sessions idle longer than maxIdle.
func (s *DiagnosticService) SweepAbandoned(maxIdle time.Duration) int {
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

func inLetters(letters []string, letter string) bool {
	for _, l := range letters {
		if l == letter {
			return true
		}
	}
	return false
}
